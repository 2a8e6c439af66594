package verify

import (
	"io"
	"log/slog"

	"skeinsum/internal/config"
	"skeinsum/internal/engine"
)

// Outcome classifies one manifest line.
type Outcome int

const (
	Match Outcome = iota
	Mismatch
	MalformedLine
	UnreadableFile
)

func (o Outcome) String() string {
	switch o {
	case Match:
		return "match"
	case Mismatch:
		return "mismatch"
	case MalformedLine:
		return "malformed"
	case UnreadableFile:
		return "unreadable"
	default:
		return "unknown"
	}
}

// Failure records a manifest line that did not verify. Path, Expected
// and Computed are empty for a MalformedLine.
type Failure struct {
	Manifest string
	Line     int
	Path     string
	Outcome  Outcome
	Expected string
	Computed string
	Err      error
}

type Result struct {
	Failures []Failure
}

type Options struct {
	Engine engine.Factory
	Digest config.DigestConfig
	// LengthSet pins the output length; otherwise it is taken from the
	// length of each manifest digest.
	LengthSet bool
	Flags     config.CheckFlags

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}
