package digest

import "fmt"

const (
	// MaxBits is the widest output any supported state width can produce.
	MaxBits = 1024
	// MaxBytes is the capacity of every Digest buffer.
	MaxBytes = MaxBits / 8
)

// Digest is a fixed-capacity digest value. Only the first Len() bytes
// are meaningful.
type Digest struct {
	buf  [MaxBytes]byte
	bits int
}

// BytesFor returns ceil(bits/8).
func BytesFor(bits int) int {
	return (bits + 7) / 8
}

// New copies the first BytesFor(bits) bytes of b into a Digest. The low
// bits of the last byte are kept when bits is not a multiple of 8, so a
// digest is always the byte prefix of any longer output.
func New(b []byte, bits int) (Digest, error) {
	if bits <= 0 || bits > MaxBits {
		return Digest{}, fmt.Errorf("digest length %d bits out of range (1..%d)", bits, MaxBits)
	}
	n := BytesFor(bits)
	if len(b) < n {
		return Digest{}, fmt.Errorf("digest needs %d bytes, got %d", n, len(b))
	}

	var d Digest
	d.bits = bits
	copy(d.buf[:n], b[:n])
	return d, nil
}

func (d Digest) Bits() int { return d.bits }

func (d Digest) Len() int { return BytesFor(d.bits) }

// Bytes returns a copy of the meaningful part of the digest.
func (d Digest) Bytes() []byte {
	out := make([]byte, d.Len())
	copy(out, d.buf[:d.Len()])
	return out
}

// Hex is Encode(d, d.Bits()).
func (d Digest) Hex() string {
	return Encode(d, d.bits)
}

func (d Digest) String() string { return d.Hex() }
