package manifest_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"skeinsum/internal/manifest"
)

func TestReader_Records(t *testing.T) {
	long := strings.Repeat("n", 200_000)
	input := "aa  one\n" +
		"garbage\n" +
		"\n" +
		"bb *" + long + "\n" +
		"cc  last-without-newline"

	r := manifest.NewReader(strings.NewReader(input))

	var got []manifest.Record
	for {
		rec, ok := r.Next()
		if !ok {
			break
		}
		got = append(got, rec)
	}
	if err := r.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("records: got %d want 5", len(got))
	}
	if r.Lines() != 5 {
		t.Fatalf("Lines: got %d want 5", r.Lines())
	}

	for i, rec := range got {
		if rec.Number != i+1 {
			t.Fatalf("record %d has Number %d", i, rec.Number)
		}
	}

	if got[0].Err != nil || got[0].Entry.Filename != "one" {
		t.Fatalf("record 1: %+v", got[0])
	}
	if got[1].Err == nil || got[2].Err == nil {
		t.Fatalf("records 2 and 3 should be malformed: %+v %+v", got[1], got[2])
	}
	if got[3].Err != nil || got[3].Entry.Filename != long || got[3].Entry.Mode != manifest.Binary {
		t.Fatalf("record 4 not parsed as long binary entry")
	}
	if got[4].Err != nil || got[4].Entry.Filename != "last-without-newline" {
		t.Fatalf("record 5: %+v", got[4])
	}
}

func TestReader_Empty(t *testing.T) {
	r := manifest.NewReader(strings.NewReader(""))
	if _, ok := r.Next(); ok {
		t.Fatalf("expected no records")
	}
	if r.Err() != nil {
		t.Fatalf("unexpected error: %v", r.Err())
	}
}

type failingReader struct {
	data string
	done bool
}

var errBoom = errors.New("boom")

func (f *failingReader) Read(p []byte) (int, error) {
	if f.done {
		return 0, errBoom
	}
	f.done = true
	return copy(p, f.data), nil
}

func TestReader_ReadError(t *testing.T) {
	r := manifest.NewReader(&failingReader{data: "aa  one\nbb  tw"})

	rec, ok := r.Next()
	if !ok || rec.Err != nil {
		t.Fatalf("first record: %+v ok=%v", rec, ok)
	}
	if _, ok := r.Next(); ok {
		t.Fatalf("expected read error to stop iteration")
	}
	if !errors.Is(r.Err(), errBoom) {
		t.Fatalf("Err: got %v want %v", r.Err(), errBoom)
	}
	if errors.Is(r.Err(), io.EOF) {
		t.Fatalf("EOF must not be reported")
	}
}
