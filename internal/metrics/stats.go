package metrics

import "time"

// Stats is the run summary. It is owned by the single goroutine that
// drives a produce or check run.
type Stats struct {
	// check mode, per manifest line
	Matched    int64
	Mismatched int64
	Malformed  int64
	Unreadable int64

	// check mode, per manifest
	Manifests           int64
	UnreadableManifests int64
	EmptyManifests      int64

	// produce mode, per source
	Written int64
	Failed  int64

	BytesHashed int64
	Started     time.Time
	Finished    time.Time
}

func (s *Stats) Start() { s.Started = time.Now() }
func (s *Stats) Stop()  { s.Finished = time.Now() }
func (s *Stats) Duration() time.Duration {
	if s.Started.IsZero() {
		return 0
	}
	if s.Finished.IsZero() {
		return time.Since(s.Started)
	}
	return s.Finished.Sub(s.Started)
}

// AddBytes is shaped to be passed as a hasher read callback.
func (s *Stats) AddBytes(n int64) { s.BytesHashed += n }

// CheckFailed reports whether a check run must exit non-zero. Malformed
// lines and manifests without a single well-formed line only fail the
// run when strict is set.
func (s *Stats) CheckFailed(strict bool) bool {
	if s.Mismatched > 0 || s.Unreadable > 0 || s.UnreadableManifests > 0 {
		return true
	}
	return strict && (s.Malformed > 0 || s.EmptyManifests > 0)
}

// ProduceFailed reports whether any requested source was skipped.
func (s *Stats) ProduceFailed() bool { return s.Failed > 0 }
