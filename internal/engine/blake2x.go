package engine

import (
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
)

// BLAKE2X maps the 256-bit state to BLAKE2Xs and the 512-bit state to
// BLAKE2Xb. There is no 1024-bit member of the family.
const BLAKE2X = "blake2x"

type blake2xSponge struct {
	w io.Writer
	r io.Reader
}

func newBLAKE2XSponge(stateWidth int) (sponge, error) {
	switch stateWidth {
	case 256:
		x, err := blake2s.NewXOF(blake2s.OutputLengthUnknown, nil)
		if err != nil {
			return nil, err
		}
		return &blake2xSponge{w: x, r: x}, nil
	case 512:
		x, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
		if err != nil {
			return nil, err
		}
		return &blake2xSponge{w: x, r: x}, nil
	case 1024:
		return nil, fmt.Errorf("state width 1024 has no BLAKE2X variant")
	default:
		return nil, unsupportedWidth(stateWidth)
	}
}

func (s *blake2xSponge) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

func (s *blake2xSponge) Output(p []byte) error {
	_, err := io.ReadFull(s.r, p)
	return err
}

// NewBLAKE2X returns an unprepared BLAKE2X engine.
func NewBLAKE2X() Engine {
	return newXOFEngine(BLAKE2X, newBLAKE2XSponge)
}
