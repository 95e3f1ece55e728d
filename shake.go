package sha3

import (
	"io"

	"github.com/Giulio2002/sha3/internal/sponge"
)

var (
	_ io.Writer = (*Shake)(nil)
	_ io.Reader = (*Shake)(nil)
)

// Shake is a streaming extendable-output function. Writes absorb input; the
// first Read finalizes absorption and every Read continues the same output
// stream.
type Shake struct {
	s sponge.Sponge
}

// NewShake128 returns a SHAKE128 instance. Its generic security strength is
// 128 bits if at least 32 bytes of output are read.
func NewShake128() *Shake { return newShake(sponge.RateSHAKE128) }

// NewShake256 returns a SHAKE256 instance. Its generic security strength is
// 256 bits if at least 64 bytes of output are read.
func NewShake256() *Shake { return newShake(sponge.RateSHAKE256) }

func newShake(rate int) *Shake {
	d := new(Shake)
	if err := d.s.Init(rate, sponge.DomainSHAKE); err != nil {
		panic(err)
	}
	return d
}

// Write absorbs p. Writing after the first Read fails with
// ErrInvalidSequence.
func (d *Shake) Write(p []byte) (int, error) {
	if err := d.s.Absorb(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Read fills p with the next len(p) output bytes. It only fails on a Shake
// not created by NewShake128 or NewShake256.
func (d *Shake) Read(p []byte) (int, error) {
	if d.s.Phase() != sponge.Squeezing {
		if err := d.s.Pad(); err != nil {
			return 0, err
		}
	}
	if err := d.s.Squeeze(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Squeeze returns the next n output bytes.
func (d *Shake) Squeeze(n int) ([]byte, error) {
	out := make([]byte, n)
	if _, err := d.Read(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Reset discards all input and output.
func (d *Shake) Reset() { d.s.Reset() }

// BlockSize returns the sponge rate in bytes.
func (d *Shake) BlockSize() int { return d.s.Rate() }

// Clone returns an independent copy of d in its current state.
func (d *Shake) Clone() *Shake {
	c := *d
	return &c
}
