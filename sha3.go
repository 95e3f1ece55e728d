// Package sha3 implements the FIPS 202 hash functions SHA3-224, SHA3-256,
// SHA3-384 and SHA3-512, the extendable-output functions SHAKE128 and
// SHAKE256, and the legacy Keccak-256 used by Ethereum.
//
// All functions run on a pure-Go Keccak-p[1600, 24] permutation. Digests do
// not depend on the host byte order. The one-shot SumN functions make no heap
// allocations.
package sha3

import "github.com/Giulio2002/sha3/internal/sponge"

// Digest sizes in bytes.
const (
	Size224 = 28
	Size256 = 32
	Size384 = 48
	Size512 = 64
)

var (
	// ErrConfiguration reports an unsupported rate or domain byte. The
	// constructors of this package never produce it.
	ErrConfiguration = sponge.ErrConfiguration
	// ErrInvalidSequence reports absorbing after output was read, or reading
	// from a finalized hasher.
	ErrInvalidSequence = sponge.ErrInvalidSequence
)

// Sum224 returns the SHA3-224 digest of data.
func Sum224(data []byte) (out [Size224]byte) {
	sum(out[:], sponge.RateSHA3_224, sponge.DomainSHA3, data)
	return out
}

// Sum256 returns the SHA3-256 digest of data.
func Sum256(data []byte) (out [Size256]byte) {
	sum(out[:], sponge.RateSHA3_256, sponge.DomainSHA3, data)
	return out
}

// Sum384 returns the SHA3-384 digest of data.
func Sum384(data []byte) (out [Size384]byte) {
	sum(out[:], sponge.RateSHA3_384, sponge.DomainSHA3, data)
	return out
}

// Sum512 returns the SHA3-512 digest of data.
func Sum512(data []byte) (out [Size512]byte) {
	sum(out[:], sponge.RateSHA3_512, sponge.DomainSHA3, data)
	return out
}

// ShakeSum128 returns n bytes of SHAKE128 output for data.
// It panics if n is negative.
func ShakeSum128(data []byte, n int) []byte {
	out := make([]byte, n)
	sum(out, sponge.RateSHAKE128, sponge.DomainSHAKE, data)
	return out
}

// ShakeSum256 returns n bytes of SHAKE256 output for data.
// It panics if n is negative.
func ShakeSum256(data []byte, n int) []byte {
	out := make([]byte, n)
	sum(out, sponge.RateSHAKE256, sponge.DomainSHAKE, data)
	return out
}

func sum(dst []byte, rate int, domain byte, data []byte) {
	if err := sponge.Sum(dst, rate, domain, data); err != nil {
		panic(err)
	}
}
