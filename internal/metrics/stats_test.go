package metrics

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestCheckFailed_TableDriven(t *testing.T) {
	tests := []struct {
		name   string
		stats  Stats
		strict bool
		want   bool
	}{
		{"all matched", Stats{Matched: 3}, false, false},
		{"mismatch", Stats{Matched: 2, Mismatched: 1}, false, true},
		{"unreadable", Stats{Unreadable: 1}, false, true},
		{"unreadable manifest", Stats{UnreadableManifests: 1}, false, true},
		{"malformed only", Stats{Matched: 1, Malformed: 4}, false, false},
		{"malformed strict", Stats{Matched: 1, Malformed: 4}, true, true},
		{"empty manifest", Stats{EmptyManifests: 1, Malformed: 2}, false, false},
		{"empty manifest strict", Stats{EmptyManifests: 1}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.CheckFailed(tt.strict); got != tt.want {
				t.Fatalf("CheckFailed(%v) = %v, want %v for %+v", tt.strict, got, tt.want, tt.stats)
			}
		})
	}
}

func TestProduceFailed(t *testing.T) {
	if (&Stats{Written: 2}).ProduceFailed() {
		t.Fatalf("no failures should not fail")
	}
	if !(&Stats{Written: 2, Failed: 1}).ProduceFailed() {
		t.Fatalf("one failure should fail")
	}
}

func TestDuration(t *testing.T) {
	var s Stats
	if s.Duration() != 0 {
		t.Fatalf("unstarted duration should be zero")
	}
	s.Started = time.Unix(100, 0)
	s.Finished = time.Unix(102, 0)
	if s.Duration() != 2*time.Second {
		t.Fatalf("duration: got %v", s.Duration())
	}
}

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := &Stats{Manifests: 1, Matched: 1, Malformed: 1, Unreadable: 1}
	s.AddBytes(10)
	s.AddBytes(5)
	Log(logger, s)

	out := buf.String()
	for _, want := range []string{"run summary", "bytes_hashed=15", "matched=1", "malformed=1", "unreadable=1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q:\n%s", want, out)
		}
	}

	Log(nil, s)
}
