package sha3

import (
	"hash"

	"github.com/Giulio2002/sha3/internal/sponge"
)

var _ hash.Hash = (*Hasher)(nil)

// Hasher is a streaming fixed-output hash. It implements hash.Hash.
// A Hasher is not safe for concurrent use.
type Hasher struct {
	s    sponge.Sponge
	size int
}

// New224 returns a streaming SHA3-224 hasher.
func New224() *Hasher { return newHasher(sponge.RateSHA3_224, sponge.DomainSHA3, Size224) }

// New256 returns a streaming SHA3-256 hasher.
func New256() *Hasher { return newHasher(sponge.RateSHA3_256, sponge.DomainSHA3, Size256) }

// New384 returns a streaming SHA3-384 hasher.
func New384() *Hasher { return newHasher(sponge.RateSHA3_384, sponge.DomainSHA3, Size384) }

// New512 returns a streaming SHA3-512 hasher.
func New512() *Hasher { return newHasher(sponge.RateSHA3_512, sponge.DomainSHA3, Size512) }

func newHasher(rate int, domain byte, size int) *Hasher {
	h := &Hasher{size: size}
	if err := h.s.Init(rate, domain); err != nil {
		panic(err)
	}
	return h
}

// Write absorbs p. It only fails after Finalize, with ErrInvalidSequence.
func (h *Hasher) Write(p []byte) (int, error) {
	if err := h.s.Absorb(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sum appends the digest of the data written so far to b.
// Does not modify the hasher state. It panics after Finalize.
func (h *Hasher) Sum(b []byte) []byte {
	s := h.s
	ret, out := sliceForAppend(b, h.size)
	if err := s.Pad(); err != nil {
		panic(err)
	}
	if err := s.Squeeze(out); err != nil {
		panic(err)
	}
	return ret
}

// Finalize returns the digest and ends the computation. Subsequent Write,
// Sum or Finalize calls fail until Reset.
func (h *Hasher) Finalize() ([]byte, error) {
	if err := h.s.Pad(); err != nil {
		return nil, err
	}
	out := make([]byte, h.size)
	if err := h.s.Squeeze(out); err != nil {
		return nil, err
	}
	h.s.Finish()
	return out, nil
}

// Reset resets the hasher to its initial state.
func (h *Hasher) Reset() { h.s.Reset() }

// Size returns the digest length in bytes.
func (h *Hasher) Size() int { return h.size }

// BlockSize returns the sponge rate in bytes.
func (h *Hasher) BlockSize() int { return h.s.Rate() }

// Clone returns an independent copy of h in its current state.
func (h *Hasher) Clone() *Hasher {
	c := *h
	return &c
}

// sliceForAppend extends in by n bytes and returns the whole slice and the
// new tail.
func sliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return head, tail
}
