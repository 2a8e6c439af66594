package engine

import (
	"fmt"

	"github.com/zeebo/blake3"
)

// BLAKE3 is the default engine. Each state width selects its own
// derive-key context, so widths never share digests.
const BLAKE3 = "blake3"

type blake3Sponge struct {
	h *blake3.Hasher
}

func newBLAKE3Sponge(stateWidth int) (sponge, error) {
	switch stateWidth {
	case 256, 512, 1024:
	default:
		return nil, unsupportedWidth(stateWidth)
	}
	ctx := fmt.Sprintf("skeinsum 2011-09-01 state-%d", stateWidth)
	return &blake3Sponge{h: blake3.NewDeriveKey(ctx)}, nil
}

func (s *blake3Sponge) Write(p []byte) (int, error) {
	return s.h.Write(p)
}

func (s *blake3Sponge) Output(p []byte) error {
	_, err := s.h.Digest().Read(p)
	return err
}

// NewBLAKE3 returns an unprepared BLAKE3 engine.
func NewBLAKE3() Engine {
	return newXOFEngine(BLAKE3, newBLAKE3Sponge)
}
