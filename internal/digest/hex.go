package digest

import (
	"encoding/hex"
	"fmt"
)

// FormatError reports a hex string that cannot be decoded.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid hex digest %q: %s", e.Input, e.Reason)
}

// Encode returns exactly BytesFor(outputBits)*2 lowercase hex characters
// taken from the front of the digest buffer.
func Encode(d Digest, outputBits int) string {
	n := BytesFor(outputBits)
	if n > MaxBytes {
		n = MaxBytes
	}
	if n < 0 {
		n = 0
	}
	return hex.EncodeToString(d.buf[:n])
}

// Decode parses a hex digest. Upper and lower case are both accepted.
func Decode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, &FormatError{Input: s, Reason: "odd length"}
	}
	for i := 0; i < len(s); i++ {
		if !IsHexByte(s[i]) {
			return nil, &FormatError{Input: s, Reason: fmt.Sprintf("non-hex character at offset %d", i)}
		}
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, &FormatError{Input: s, Reason: err.Error()}
	}
	return b, nil
}

// IsHexByte reports whether c is 0-9, a-f or A-F.
func IsHexByte(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}
