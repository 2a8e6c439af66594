// Package config validates the run configuration before any I/O is
// attempted.
package config

import (
	"fmt"

	"skeinsum/internal/digest"
	"skeinsum/internal/engine"
	"skeinsum/internal/manifest"
)

const (
	// DefaultStateWidth matches the original tool.
	DefaultStateWidth = 512
	// MinOutputBits is the shortest digest the tool emits.
	MinOutputBits = 8
)

// StateWidths lists the supported internal state widths.
var StateWidths = []int{256, 512, 1024}

// Error is a configuration error. Hint tells the user where to look.
type Error struct {
	Msg  string
	Hint string
}

func (e *Error) Error() string { return e.Msg }

func configErr(format string, args ...any) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...), Hint: "Try `skeinsum --help' for more info."}
}

// DigestConfig is the validated engine configuration for one run.
type DigestConfig struct {
	StateWidth int
	OutputBits int
}

// NewDigestConfig validates stateWidth and outputBits. An outputBits of
// zero selects the state width.
func NewDigestConfig(stateWidth, outputBits int) (DigestConfig, error) {
	if !validWidth(stateWidth) {
		return DigestConfig{}, configErr("invalid state size: %d (must be 256, 512, or 1024)", stateWidth)
	}
	if outputBits == 0 {
		outputBits = stateWidth
	}
	if outputBits < MinOutputBits || outputBits > digest.MaxBits {
		return DigestConfig{}, configErr("invalid bit length size: %d (must be %d to %d)", outputBits, MinOutputBits, digest.MaxBits)
	}
	if outputBits > stateWidth {
		return DigestConfig{}, configErr("invalid bit length size: %d (exceeds state size %d)", outputBits, stateWidth)
	}
	return DigestConfig{StateWidth: stateWidth, OutputBits: outputBits}, nil
}

// WithOutputBits returns a copy using a different output length, or
// false when that length is not valid for the state width.
func (c DigestConfig) WithOutputBits(bits int) (DigestConfig, bool) {
	if bits < MinOutputBits || bits > c.StateWidth || bits > digest.MaxBits {
		return c, false
	}
	c.OutputBits = bits
	return c, true
}

func validWidth(w int) bool {
	for _, v := range StateWidths {
		if v == w {
			return true
		}
	}
	return false
}

// CheckFlags drives the verifier's reporting policy.
type CheckFlags struct {
	Quiet  bool
	Status bool
	Warn   bool
	Strict bool
}

// Options is everything the command line can configure.
type Options struct {
	Engine     string
	StateWidth int
	OutputBits int
	// LengthSet is true when the output length was given explicitly.
	LengthSet bool
	Binary    bool
	Text      bool
	Check     bool
	Flags     CheckFlags
	Debug     bool
	Files     []string
}

// DefaultOptions returns the options of a bare invocation.
func DefaultOptions() Options {
	return Options{StateWidth: DefaultStateWidth}
}

// Validated is the result of Options.Validate.
type Validated struct {
	Engine    engine.Factory
	Name      string
	Digest    DigestConfig
	LengthSet bool
	Mode      manifest.Mode
	Check     bool
	Flags     CheckFlags
	Files     []string
}

// Validate checks the options and resolves defaults. It never touches
// the filesystem.
func (o Options) Validate() (Validated, error) {
	name := o.Engine
	if name == "" {
		name = engine.Default
	}
	factory, err := engine.Lookup(name)
	if err != nil {
		return Validated{}, configErr("%v", err)
	}

	bits := o.OutputBits
	if o.LengthSet && bits == 0 {
		return Validated{}, configErr("invalid bit length size: 0")
	}
	dc, err := NewDigestConfig(o.StateWidth, bits)
	if err != nil {
		return Validated{}, err
	}

	if o.Binary && o.Text {
		return Validated{}, configErr("the --binary and --text options are mutually exclusive")
	}

	if o.Check {
		if o.Binary || o.Text {
			return Validated{}, configErr("the --binary and --text options are meaningless when verifying checksums")
		}
	} else {
		switch {
		case o.Flags.Quiet:
			return Validated{}, configErr("the --quiet option is meaningful only when verifying checksums")
		case o.Flags.Status:
			return Validated{}, configErr("the --status option is meaningful only when verifying checksums")
		case o.Flags.Warn:
			return Validated{}, configErr("the --warn option is meaningful only when verifying checksums")
		case o.Flags.Strict:
			return Validated{}, configErr("the --strict option is meaningful only when verifying checksums")
		}
	}

	mode := manifest.Text
	if o.Binary {
		mode = manifest.Binary
	}

	files := o.Files
	if len(files) == 0 {
		files = []string{"-"}
	}

	return Validated{
		Engine:    factory,
		Name:      name,
		Digest:    dc,
		LengthSet: o.LengthSet,
		Mode:      mode,
		Check:     o.Check,
		Flags:     o.Flags,
		Files:     files,
	}, nil
}

// UsageError wraps a flag parsing failure as a configuration error.
func UsageError(err error) *Error {
	return configErr("%v", err)
}
