// Package produce writes one manifest line per input source.
package produce

import (
	"fmt"
	"io"
	"log/slog"

	"skeinsum/internal/hasher"
	"skeinsum/internal/manifest"
	"skeinsum/internal/metrics"
)

type Options struct {
	Mode   manifest.Mode
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// Produce hashes every source in the order given and writes its
// manifest line to Stdout. A source that cannot be read is reported on
// Stderr and skipped. It returns the results of the sources that were
// written.
func Produce(h *hasher.Hasher, sources []string, opts Options, stats *metrics.Stats) []hasher.Result {
	if opts.Stdout == nil {
		opts.Stdout = io.Discard
	}
	if opts.Stderr == nil {
		opts.Stderr = io.Discard
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if stats == nil {
		stats = &metrics.Stats{}
	}

	written := make([]hasher.Result, 0, len(sources))
	for _, src := range sources {
		res := h.File(src, opts.Mode)
		if res.Err != nil {
			stats.Failed++
			fmt.Fprintf(opts.Stderr, "skeinsum: %s: %s\n", src, hasher.Reason(res.Err))
			continue
		}

		line := manifest.Format(res.Digest.Hex(), src, opts.Mode)
		if _, err := io.WriteString(opts.Stdout, line); err != nil {
			stats.Failed++
			logger.Warn("writing manifest line failed", "source", src, "error", err)
			continue
		}
		stats.Written++
		written = append(written, res)
	}
	return written
}
