package metrics

import "log/slog"

type Snapshot struct {
	DurationMs          int64
	Matched             int64
	Mismatched          int64
	Malformed           int64
	Unreadable          int64
	Manifests           int64
	UnreadableManifests int64
	EmptyManifests      int64
	Written             int64
	Failed              int64
	BytesHashed         int64
}

func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		DurationMs:          s.Duration().Milliseconds(),
		Matched:             s.Matched,
		Mismatched:          s.Mismatched,
		Malformed:           s.Malformed,
		Unreadable:          s.Unreadable,
		Manifests:           s.Manifests,
		UnreadableManifests: s.UnreadableManifests,
		EmptyManifests:      s.EmptyManifests,
		Written:             s.Written,
		Failed:              s.Failed,
		BytesHashed:         s.BytesHashed,
	}
}

// Log writes the run summary at debug level.
func Log(logger *slog.Logger, s *Stats) {
	if logger == nil {
		return
	}
	snap := s.Snapshot()

	attrs := []any{
		"duration_ms", snap.DurationMs,
		"bytes_hashed", snap.BytesHashed,
	}
	if snap.Manifests > 0 || snap.UnreadableManifests > 0 {
		attrs = append(attrs,
			"manifests", snap.Manifests,
			"unreadable_manifests", snap.UnreadableManifests,
			"empty_manifests", snap.EmptyManifests,
			"matched", snap.Matched,
			"mismatched", snap.Mismatched,
			"malformed", snap.Malformed,
			"unreadable", snap.Unreadable,
		)
	} else {
		attrs = append(attrs,
			"written", snap.Written,
			"failed", snap.Failed,
		)
	}
	if snap.DurationMs > 0 {
		secs := float64(snap.DurationMs) / 1000.0
		attrs = append(attrs, "throughput_mb_per_sec", float64(snap.BytesHashed)/secs/1_000_000.0)
	}

	logger.Debug("run summary", attrs...)
}
