package sha3

import "github.com/Giulio2002/sha3/internal/sponge"

// Keccak-256 is the original Keccak submission with capacity 512, as used by
// Ethereum. It shares the rate of SHA3-256 but pads with domain byte 0x01
// instead of SHA-3's 0x06, so the two never agree.

// LegacyKeccak256 returns the Keccak-256 digest of data. Zero heap allocations.
func LegacyKeccak256(data []byte) (out [Size256]byte) {
	sum(out[:], sponge.RateSHA3_256, sponge.DomainKeccak, data)
	return out
}

// NewLegacyKeccak256 returns a streaming Keccak-256 hasher.
func NewLegacyKeccak256() *Hasher {
	return newHasher(sponge.RateSHA3_256, sponge.DomainKeccak, Size256)
}
