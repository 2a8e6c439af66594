// Package engine defines the digest engine capability used by the
// checksum core and ships the concrete engines the tool can select.
//
// An engine follows a fixed call protocol: Prepare(stateWidth) once,
// Init(outputBits), any number of Update calls, Final exactly once, and
// Reset to return to the post-Init state for the next stream.
package engine

import (
	"errors"
	"fmt"

	"skeinsum/internal/digest"
)

// Engine is the capability interface every digest primitive implements.
type Engine interface {
	Prepare(stateWidth int) error
	Init(outputBits int) error
	Update(p []byte)
	Final() (digest.Digest, error)
	Reset()
}

// Error is returned when an engine rejects a configuration or fails to
// finalise a digest.
type Error struct {
	Engine string
	Op     string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s engine: %s: %v", e.Engine, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

var (
	ErrNotPrepared    = errors.New("engine not prepared")
	ErrNotInitialized = errors.New("engine not initialized")
	ErrFinalized      = errors.New("digest already finalized")
)

// sponge is the minimal surface an extendable-output primitive needs
// to back an Engine.
type sponge interface {
	Write(p []byte) (int, error)
	Output(p []byte) error
}

type spongeFactory func(stateWidth int) (sponge, error)

type state int

const (
	stateNew state = iota
	statePrepared
	stateReady
	stateFinal
)

// xofEngine implements the call protocol over any sponge. Output length
// does not feed into the absorbed state, so shorter digests are prefixes
// of longer ones for the same state width.
type xofEngine struct {
	name       string
	newSponge  spongeFactory
	stateWidth int
	outputBits int
	sp         sponge
	st         state
}

func newXOFEngine(name string, f spongeFactory) *xofEngine {
	return &xofEngine{name: name, newSponge: f}
}

func (e *xofEngine) fail(op string, err error) error {
	return &Error{Engine: e.name, Op: op, Err: err}
}

func (e *xofEngine) Prepare(stateWidth int) error {
	sp, err := e.newSponge(stateWidth)
	if err != nil {
		return e.fail("prepare", err)
	}
	e.stateWidth = stateWidth
	e.outputBits = 0
	e.sp = sp
	e.st = statePrepared
	return nil
}

func (e *xofEngine) Init(outputBits int) error {
	if e.st == stateNew {
		return e.fail("init", ErrNotPrepared)
	}
	if outputBits <= 0 || outputBits > e.stateWidth || outputBits > digest.MaxBits {
		return e.fail("init", fmt.Errorf("output length %d bits not supported with %d-bit state", outputBits, e.stateWidth))
	}
	if e.st != statePrepared {
		if err := e.restart(); err != nil {
			return e.fail("init", err)
		}
	}
	e.outputBits = outputBits
	e.st = stateReady
	return nil
}

func (e *xofEngine) Update(p []byte) {
	if e.st != stateReady || len(p) == 0 {
		return
	}
	_, _ = e.sp.Write(p)
}

func (e *xofEngine) Final() (digest.Digest, error) {
	switch e.st {
	case stateNew:
		return digest.Digest{}, e.fail("final", ErrNotPrepared)
	case statePrepared:
		return digest.Digest{}, e.fail("final", ErrNotInitialized)
	case stateFinal:
		return digest.Digest{}, e.fail("final", ErrFinalized)
	}
	e.st = stateFinal

	var out [digest.MaxBytes]byte
	n := digest.BytesFor(e.outputBits)
	if err := e.sp.Output(out[:n]); err != nil {
		return digest.Digest{}, e.fail("final", err)
	}
	d, err := digest.New(out[:n], e.outputBits)
	if err != nil {
		return digest.Digest{}, e.fail("final", err)
	}
	return d, nil
}

// Reset discards absorbed input and keeps the prepared state width and
// output length.
func (e *xofEngine) Reset() {
	if e.st == stateNew {
		return
	}
	if err := e.restart(); err != nil {
		e.st = stateNew
		return
	}
	if e.outputBits > 0 {
		e.st = stateReady
	} else {
		e.st = statePrepared
	}
}

func (e *xofEngine) restart() error {
	sp, err := e.newSponge(e.stateWidth)
	if err != nil {
		return err
	}
	e.sp = sp
	return nil
}

func unsupportedWidth(stateWidth int) error {
	return fmt.Errorf("unsupported state width %d", stateWidth)
}
