package verify

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"skeinsum/internal/hasher"
	"skeinsum/internal/manifest"
	"skeinsum/internal/metrics"
)

const progName = "skeinsum"

// Verifier checks files against manifests one line at a time.
type Verifier struct {
	opts    Options
	stats   *metrics.Stats
	log     *slog.Logger
	res     *Result
	hashers map[int]*hasher.Hasher
	open    func(name string) (io.ReadCloser, error)
}

func New(opts Options, stats *metrics.Stats) *Verifier {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
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
	return &Verifier{
		opts:    opts,
		stats:   stats,
		log:     logger,
		res:     &Result{},
		hashers: make(map[int]*hasher.Hasher),
		open: func(name string) (io.ReadCloser, error) {
			return os.Open(name) // #nosec G304
		},
	}
}

// Verify checks every manifest in order and returns the failures.
// Counters accumulate in stats.
func Verify(manifests []string, opts Options, stats *metrics.Stats) *Result {
	v := New(opts, stats)
	for _, m := range manifests {
		v.CheckManifest(m)
	}
	return v.Result()
}

func (v *Verifier) Result() *Result { return v.res }

// CheckManifest verifies every line of one manifest. "-" reads the
// manifest from standard input.
func (v *Verifier) CheckManifest(name string) {
	if name == hasher.StdinName {
		v.checkReader(name, v.opts.Stdin)
		return
	}

	f, err := v.open(name)
	if err != nil {
		v.stats.UnreadableManifests++
		v.warn("%s: %s: %s", progName, name, hasher.Reason(err))
		return
	}
	defer func() {
		_ = f.Close()
	}()
	v.checkReader(name, f)
}

func (v *Verifier) checkReader(name string, r io.Reader) {
	rd := manifest.NewReader(r)
	wellFormed := 0

	for {
		rec, ok := rd.Next()
		if !ok {
			break
		}

		if rec.Err != nil {
			v.stats.Malformed++
			v.log.Debug("malformed manifest line", "manifest", name, "line", rec.Number, "error", rec.Err)
			if v.opts.Flags.Warn {
				v.warn("%s: %d: improperly formatted Skein checksum line", name, rec.Number)
			}
			v.res.Failures = append(v.res.Failures, Failure{
				Manifest: name,
				Line:     rec.Number,
				Outcome:  MalformedLine,
				Err:      rec.Err,
			})
			continue
		}

		wellFormed++
		v.checkLine(name, rec)
	}

	if err := rd.Err(); err != nil {
		v.stats.UnreadableManifests++
		v.warn("%s: %s: %s", progName, name, hasher.Reason(err))
		return
	}

	v.stats.Manifests++
	v.log.Debug("manifest checked", "manifest", name, "lines", rd.Lines(), "well_formed", wellFormed)
	if wellFormed == 0 {
		v.stats.EmptyManifests++
		v.warn("%s: %s: no properly formatted Skein checksum lines found", progName, name)
	}
}

func (v *Verifier) checkLine(manifestName string, rec manifest.Record) {
	e := rec.Entry
	outcome, computed, err := v.CheckEntry(e)

	v.log.Debug("verified", "manifest", manifestName, "line", rec.Number, "file", e.Filename, "outcome", outcome.String())

	switch outcome {
	case Match:
		v.stats.Matched++
		if !v.opts.Flags.Quiet {
			v.report("%s: OK\n", e.Filename)
		}
		return
	case Mismatch:
		v.stats.Mismatched++
		v.report("%s: FAILED\n", e.Filename)
	case UnreadableFile:
		v.stats.Unreadable++
		v.diag("%s: %s: %s", progName, e.Filename, hasher.Reason(err))
		v.report("%s: FAILED open or read\n", e.Filename)
	}

	v.res.Failures = append(v.res.Failures, Failure{
		Manifest: manifestName,
		Line:     rec.Number,
		Path:     e.Filename,
		Outcome:  outcome,
		Expected: e.Hex,
		Computed: computed,
		Err:      err,
	})
}

// CheckEntry recomputes the digest of one well-formed entry and
// compares it to the recorded one. It does not touch the counters.
func (v *Verifier) CheckEntry(e manifest.Entry) (Outcome, string, error) {
	h, err := v.hasherFor(len(e.Hex) * 4)
	if err != nil {
		return UnreadableFile, "", err
	}

	res := h.File(e.Filename, e.Mode)
	if res.Err != nil {
		return UnreadableFile, "", res.Err
	}

	computed := res.Digest.Hex()
	if !strings.EqualFold(computed, e.Hex) {
		return Mismatch, computed, nil
	}
	return Match, computed, nil
}

// hasherFor returns a hasher for the output length implied by a
// manifest digest of entryBits bits, creating it on first use.
func (v *Verifier) hasherFor(entryBits int) (*hasher.Hasher, error) {
	cfg := v.opts.Digest
	if !v.opts.LengthSet {
		if c, ok := cfg.WithOutputBits(entryBits); ok {
			cfg = c
		}
	}

	if h, ok := v.hashers[cfg.OutputBits]; ok {
		return h, nil
	}
	if v.opts.Engine == nil {
		return nil, errors.New("no digest engine configured")
	}

	h, err := hasher.New(v.opts.Engine, cfg,
		hasher.WithStdin(v.opts.Stdin),
		hasher.WithOnRead(v.stats.AddBytes),
		hasher.WithLogger(v.log),
	)
	if err != nil {
		return nil, err
	}
	v.hashers[cfg.OutputBits] = h
	return h, nil
}

// report writes a per-file line to stdout unless --status is set.
func (v *Verifier) report(format string, args ...any) {
	if v.opts.Flags.Status {
		return
	}
	fmt.Fprintf(v.opts.Stdout, format, args...)
}

// diag writes a diagnostic line to stderr unless --status is set.
func (v *Verifier) diag(format string, args ...any) {
	if v.opts.Flags.Status {
		return
	}
	fmt.Fprintf(v.opts.Stderr, format+"\n", args...)
}

// warn writes a manifest-level diagnostic to stderr. These are not
// per-file output and are shown even with --status.
func (v *Verifier) warn(format string, args ...any) {
	fmt.Fprintf(v.opts.Stderr, format+"\n", args...)
}
