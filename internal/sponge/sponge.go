// Package sponge implements the sponge construction over Keccak-p[1600, 24]
// with the multi-rate pad10*1 padding of FIPS 202.
//
// This is the generic low-level entry point: callers choose the rate and the
// domain separation byte. The public sha3 package only ever uses the
// standard parameter sets.
package sponge

import (
	"github.com/pkg/errors"

	"github.com/Giulio2002/sha3/internal/keccakf"
)

// Supported rates in bytes. The capacity is keccakf.Size minus the rate.
const (
	RateSHAKE128 = 168
	RateSHA3_224 = 144
	RateSHA3_256 = 136
	RateSHA3_384 = 104
	RateSHA3_512 = 72
	RateSHAKE256 = RateSHA3_256

	// MaxRate is the largest supported rate.
	MaxRate = RateSHAKE128
)

// Domain separation bytes. Using a little-endian bit order the low bits hold
// the suffix ("01" for SHA-3, "1111" for SHAKE, nothing for the original
// Keccak submission) immediately followed by the first "1" bit of pad10*1.
const (
	DomainKeccak byte = 0x01
	DomainSHA3   byte = 0x06
	DomainSHAKE  byte = 0x1f
)

var (
	// ErrConfiguration is returned for an unsupported rate or domain byte.
	ErrConfiguration = errors.New("sponge: unsupported configuration")
	// ErrInvalidSequence is returned when absorb, pad and squeeze are called
	// out of order.
	ErrInvalidSequence = errors.New("sponge: invalid call sequence")
)

// Phase is the lifecycle position of a Sponge.
type Phase uint8

const (
	Created Phase = iota
	Absorbing
	Squeezing
	Finished
)

func (p Phase) String() string {
	switch p {
	case Created:
		return "created"
	case Absorbing:
		return "absorbing"
	case Squeezing:
		return "squeezing"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// ValidRate reports whether rate is one of the standard FIPS 202 rates.
func ValidRate(rate int) bool {
	switch rate {
	case RateSHAKE128, RateSHA3_224, RateSHA3_256, RateSHA3_384, RateSHA3_512:
		return true
	default:
		return false
	}
}

// Sponge is a single hash or XOF computation. It holds no pointers, so a
// value copy is an independent clone. The zero value must be initialized
// with Init before use.
type Sponge struct {
	a [keccakf.Lanes]uint64
	// buf holds a partial input block while absorbing and the current
	// output block while squeezing.
	buf    [MaxRate]byte
	rate   int
	domain byte
	// pos is the number of bytes buffered (absorbing) or consumed (squeezing)
	// in the current block.
	pos   int
	phase Phase
}

// New returns an initialized sponge.
func New(rate int, domain byte) (*Sponge, error) {
	s := new(Sponge)
	if err := s.Init(rate, domain); err != nil {
		return nil, err
	}
	return s, nil
}

// Init resets s to a zero state with the given parameters.
func (s *Sponge) Init(rate int, domain byte) error {
	if !ValidRate(rate) {
		return errors.Wrapf(ErrConfiguration, "rate %d bytes", rate)
	}
	if domain == 0 {
		return errors.Wrap(ErrConfiguration, "domain byte must carry the first padding bit")
	}
	*s = Sponge{rate: rate, domain: domain}
	return nil
}

// Rate returns the rate in bytes.
func (s *Sponge) Rate() int { return s.rate }

// Capacity returns the capacity in bytes.
func (s *Sponge) Capacity() int { return keccakf.Size - s.rate }

// Phase returns the current lifecycle phase.
func (s *Sponge) Phase() Phase { return s.phase }

// Absorb XORs p into the state, permuting after every full block. Any number
// of calls is equivalent to a single call with the concatenated input.
func (s *Sponge) Absorb(p []byte) error {
	if s.rate == 0 {
		return errors.Wrap(ErrConfiguration, "sponge not initialized")
	}
	switch s.phase {
	case Created:
		s.phase = Absorbing
	case Absorbing:
	default:
		return errors.Wrapf(ErrInvalidSequence, "absorb while %s", s.phase)
	}

	if s.pos > 0 {
		n := copy(s.buf[s.pos:s.rate], p)
		s.pos += n
		p = p[n:]
		if s.pos == s.rate {
			keccakf.XorIn(&s.a, s.buf[:s.rate])
			keccakf.Permute(&s.a)
			s.pos = 0
		}
	}

	for len(p) >= s.rate {
		keccakf.XorIn(&s.a, p[:s.rate])
		keccakf.Permute(&s.a)
		p = p[s.rate:]
	}

	if len(p) > 0 {
		s.pos = copy(s.buf[:], p)
	}
	return nil
}

// Pad finishes absorption: it appends the domain byte and the final pad10*1
// bit, permutes and switches to squeezing.
func (s *Sponge) Pad() error {
	if s.rate == 0 {
		return errors.Wrap(ErrConfiguration, "sponge not initialized")
	}
	if s.phase != Created && s.phase != Absorbing {
		return errors.Wrapf(ErrInvalidSequence, "pad while %s", s.phase)
	}
	// pos < rate always holds here since a full buffer is absorbed eagerly,
	// so the domain byte and the final bit fit in the current block. When
	// pos == rate-1 they share a byte.
	keccakf.XorIn(&s.a, s.buf[:s.pos])
	keccakf.XorByte(&s.a, s.pos, s.domain)
	keccakf.XorByte(&s.a, s.rate-1, 0x80)
	keccakf.Permute(&s.a)
	keccakf.CopyOut(s.buf[:s.rate], &s.a)
	s.pos = 0
	s.phase = Squeezing
	return nil
}

// Squeeze fills out with the next len(out) bytes of the output stream.
// Consecutive calls continue where the previous one stopped.
func (s *Sponge) Squeeze(out []byte) error {
	if s.phase != Squeezing {
		return errors.Wrapf(ErrInvalidSequence, "squeeze while %s", s.phase)
	}
	for len(out) > 0 {
		if s.pos == s.rate {
			keccakf.Permute(&s.a)
			keccakf.CopyOut(s.buf[:s.rate], &s.a)
			s.pos = 0
		}
		n := copy(out, s.buf[s.pos:s.rate])
		s.pos += n
		out = out[n:]
	}
	return nil
}

// Finish wipes the state. Every further call except Reset fails.
func (s *Sponge) Finish() {
	rate, domain := s.rate, s.domain
	*s = Sponge{rate: rate, domain: domain, phase: Finished}
}

// Reset returns s to the Created phase with a zero state and the same
// parameters.
func (s *Sponge) Reset() {
	rate, domain := s.rate, s.domain
	*s = Sponge{rate: rate, domain: domain}
}

// Sum absorbs msg in one go and squeezes len(dst) bytes into dst.
func Sum(dst []byte, rate int, domain byte, msg []byte) error {
	var s Sponge
	if err := s.Init(rate, domain); err != nil {
		return err
	}
	if err := s.Absorb(msg); err != nil {
		return err
	}
	if err := s.Pad(); err != nil {
		return err
	}
	if err := s.Squeeze(dst); err != nil {
		return err
	}
	s.Finish()
	return nil
}
