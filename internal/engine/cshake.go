package engine

import (
	"fmt"
	"io"

	"golang.org/x/crypto/sha3"
)

// CSHAKE uses cSHAKE128 for the 256-bit state and cSHAKE256 for the
// wider ones, customised with the state width.
const CSHAKE = "cshake"

var cshakeFunctionName = []byte("skeinsum")

type cshakeSponge struct {
	h sha3.ShakeHash
}

func newCSHAKESponge(stateWidth int) (sponge, error) {
	custom := []byte(fmt.Sprintf("state-%d", stateWidth))
	switch stateWidth {
	case 256:
		return &cshakeSponge{h: sha3.NewCShake128(cshakeFunctionName, custom)}, nil
	case 512, 1024:
		return &cshakeSponge{h: sha3.NewCShake256(cshakeFunctionName, custom)}, nil
	default:
		return nil, unsupportedWidth(stateWidth)
	}
}

func (s *cshakeSponge) Write(p []byte) (int, error) {
	return s.h.Write(p)
}

func (s *cshakeSponge) Output(p []byte) error {
	_, err := io.ReadFull(s.h, p)
	return err
}

// NewCSHAKE returns an unprepared cSHAKE engine.
func NewCSHAKE() Engine {
	return newXOFEngine(CSHAKE, newCSHAKESponge)
}
