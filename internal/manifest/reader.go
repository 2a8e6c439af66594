package manifest

import (
	"bufio"
	"errors"
	"io"
)

// Reader walks a manifest one line at a time. Lines have no length
// limit and a final line without a terminator is still returned.
type Reader struct {
	br   *bufio.Reader
	line int
	err  error
	done bool
}

func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Next returns the next record, or false once the input is exhausted
// or a read error occurred. Check Err afterwards.
func (r *Reader) Next() (Record, bool) {
	if r.done {
		return Record{}, false
	}

	text, err := r.br.ReadString('\n')
	if err != nil {
		r.done = true
		if !errors.Is(err, io.EOF) {
			r.err = err
			return Record{}, false
		}
		if text == "" {
			return Record{}, false
		}
	}

	r.line++
	entry, perr := Parse(text)
	return Record{Number: r.line, Entry: entry, Err: perr}, true
}

// Err returns the first non-EOF read error.
func (r *Reader) Err() error { return r.err }

// Lines returns how many lines have been read so far.
func (r *Reader) Lines() int { return r.line }
