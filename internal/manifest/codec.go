package manifest

import (
	"strings"

	"skeinsum/internal/digest"
)

// Parse interprets one manifest line of the form
// "<hex><space><space-or-asterisk><filename>". The line terminator
// ("\n" or "\r\n") is dropped first; the filename is otherwise taken
// verbatim, including trailing blanks.
func Parse(line string) (Entry, error) {
	trimmed := strings.TrimSuffix(line, "\n")
	trimmed = strings.TrimSuffix(trimmed, "\r")
	malformed := func(reason string) (Entry, error) {
		return Entry{}, &MalformedLineError{Raw: trimmed, Reason: reason}
	}

	if trimmed == "" {
		return malformed("empty line")
	}

	sep := strings.IndexByte(trimmed, ' ')
	if sep < 0 {
		return malformed("missing separator")
	}
	hx := trimmed[:sep]
	if hx == "" {
		return malformed("missing digest")
	}
	if _, err := digest.Decode(hx); err != nil {
		return malformed("digest is not hex")
	}

	rest := trimmed[sep+1:]
	if rest == "" {
		return malformed("missing mode marker")
	}
	var mode Mode
	switch rest[0] {
	case ' ':
		mode = Text
	case '*':
		mode = Binary
	default:
		return malformed("missing mode marker")
	}

	name := rest[1:]
	if name == "" {
		return malformed("missing filename")
	}

	return Entry{Hex: hx, Filename: name, Mode: mode}, nil
}

// Format renders one manifest line including the trailing newline.
func Format(hex, filename string, mode Mode) string {
	var b strings.Builder
	b.Grow(len(hex) + len(filename) + 3)
	b.WriteString(hex)
	b.WriteByte(' ')
	b.WriteByte(mode.marker())
	b.WriteString(filename)
	b.WriteByte('\n')
	return b.String()
}
