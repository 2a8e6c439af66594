package hasher

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"skeinsum/internal/config"
	"skeinsum/internal/digest"
	"skeinsum/internal/engine"
	"skeinsum/internal/manifest"
)

// DefaultChunkSize is the read size of the original tool.
const DefaultChunkSize = 4 * 1024

// StdinName is the source name that selects standard input.
const StdinName = "-"

// ReadError is returned when a source cannot be opened or drained.
type ReadError struct {
	Source string
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Reason returns the text shown after "<source>: " in diagnostics. Open
// and read failures are reduced to the underlying system error.
func Reason(err error) string {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}
	var re *ReadError
	if errors.As(err, &re) {
		return re.Err.Error()
	}
	return err.Error()
}

// Result is the outcome of hashing one source.
type Result struct {
	Source string
	Mode   manifest.Mode
	Digest digest.Digest
	Err    error
}

// Hasher drives a single engine over one stream at a time.
type Hasher struct {
	eng       engine.Engine
	cfg       config.DigestConfig
	chunkSize int
	stdin     io.Reader
	onRead    func(n int64)
	log       *slog.Logger
	openFile  func(name string) (io.ReadCloser, error)
}

type Option func(*Hasher)

// WithChunkSize sets the read buffer size. Values below 1 are ignored.
func WithChunkSize(n int) Option {
	return func(h *Hasher) {
		if n >= 1 {
			h.chunkSize = n
		}
	}
}

// WithStdin sets the reader used for the "-" source.
func WithStdin(r io.Reader) Option {
	return func(h *Hasher) { h.stdin = r }
}

// WithOnRead registers a callback invoked with the size of every chunk
// fed to the engine.
func WithOnRead(fn func(n int64)) Option {
	return func(h *Hasher) { h.onRead = fn }
}

func WithLogger(l *slog.Logger) Option {
	return func(h *Hasher) {
		if l != nil {
			h.log = l
		}
	}
}

// New prepares and initialises an engine from factory. The returned
// error is an *engine.Error when the engine rejects cfg.
func New(factory engine.Factory, cfg config.DigestConfig, opts ...Option) (*Hasher, error) {
	eng := factory()
	if err := eng.Prepare(cfg.StateWidth); err != nil {
		return nil, asEngineError(err, "prepare")
	}
	if err := eng.Init(cfg.OutputBits); err != nil {
		return nil, asEngineError(err, "init")
	}

	h := &Hasher{
		eng:       eng,
		cfg:       cfg,
		chunkSize: DefaultChunkSize,
		stdin:     os.Stdin,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		openFile: func(name string) (io.ReadCloser, error) {
			return os.Open(name) // #nosec G304
		},
	}
	for _, o := range opts {
		o(h)
	}
	return h, nil
}

func asEngineError(err error, op string) error {
	var ee *engine.Error
	if errors.As(err, &ee) {
		return err
	}
	return &engine.Error{Engine: "unknown", Op: op, Err: err}
}

// Config returns the digest configuration the engine was set up with.
func (h *Hasher) Config() config.DigestConfig { return h.cfg }

// DigestOf streams r through the engine. A read error aborts the
// stream without finalising. The engine is reset on every path so the
// next call starts clean.
func (h *Hasher) DigestOf(r io.Reader) (digest.Digest, error) {
	defer h.eng.Reset()

	buf := make([]byte, h.chunkSize)
	for {
		n, rerr := r.Read(buf)
		if n > 0 {
			h.eng.Update(buf[:n])
			if h.onRead != nil {
				h.onRead(int64(n))
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return digest.Digest{}, rerr
		}
	}

	d, err := h.eng.Final()
	if err != nil {
		return digest.Digest{}, asEngineError(err, "final")
	}
	return d, nil
}

// File opens source ("-" for standard input), hashes it and closes it.
// The mode is recorded only; bytes are never translated.
func (h *Hasher) File(source string, mode manifest.Mode) Result {
	res := Result{Source: source, Mode: mode}

	var rd io.Reader
	if source == StdinName {
		rd = h.stdin
	} else {
		f, err := h.openFile(source)
		if err != nil {
			res.Err = &ReadError{Source: source, Err: err}
			return res
		}
		defer func() {
			_ = f.Close()
		}()
		rd = f
	}

	d, err := h.DigestOf(rd)
	if err != nil {
		var ee *engine.Error
		if errors.As(err, &ee) {
			res.Err = err
		} else {
			res.Err = &ReadError{Source: source, Err: err}
		}
		h.log.Debug("hash failed", "source", source, "error", err)
		return res
	}

	res.Digest = d
	h.log.Debug("hashed", "source", source, "mode", mode.String(), "digest", d.Hex())
	return res
}
