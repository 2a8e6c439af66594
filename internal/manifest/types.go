package manifest

import "fmt"

// Mode records how a file was read when its digest was produced.
type Mode int

const (
	Text Mode = iota
	Binary
)

func (m Mode) String() string {
	if m == Binary {
		return "binary"
	}
	return "text"
}

// marker is the second separator character for the mode.
func (m Mode) marker() byte {
	if m == Binary {
		return '*'
	}
	return ' '
}

// Entry is a well-formed manifest line.
type Entry struct {
	Hex      string
	Filename string
	Mode     Mode
}

// MalformedLineError is returned by Parse for a line that does not
// follow the manifest grammar.
type MalformedLineError struct {
	Raw    string
	Reason string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("improperly formatted checksum line (%s): %q", e.Reason, e.Raw)
}

// Record is one line read from a manifest. Exactly one of Entry or Err
// is meaningful.
type Record struct {
	Number int
	Entry  Entry
	Err    error
}
