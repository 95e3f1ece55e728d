// Package keccakf implements the Keccak-p[1600, 24] permutation and the
// boundary between the raw byte view of the state and its 64-bit lanes.
//
// The round function works purely on lane values. Byte order only matters in
// XorIn, XorByte and CopyOut, which read and write lanes as little-endian
// words on every host.
package keccakf

import "math/bits"

const (
	// Rounds is the number of rounds of Keccak-f[1600].
	Rounds = 24
	// Lanes is the number of 64-bit lanes in the state.
	Lanes = 25
	// Size is the width of the state in bytes.
	Size = Lanes * 8
)

// Permute applies Keccak-p[1600, 24] to a in place. Lane (x, y) is a[x+5*y].
func Permute(a *[Lanes]uint64) {
	for round := 0; round < Rounds; round++ {
		theta(a)
		rho(a)
		pi(a)
		chi(a)
		addRoundConstant(a, round)
	}
}

// theta XORs every lane with the parity of its two neighbouring columns.
func theta(a *[Lanes]uint64) {
	var c, d [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
	}
	for x := 0; x < 5; x++ {
		d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
	}
	for i := 0; i < Lanes; i++ {
		a[i] ^= d[i%5]
	}
}

func rho(a *[Lanes]uint64) {
	for i := 0; i < Lanes; i++ {
		a[i] = bits.RotateLeft64(a[i], rhoOffsets[i])
	}
}

func pi(a *[Lanes]uint64) {
	var b [Lanes]uint64
	for i := 0; i < Lanes; i++ {
		b[piLane[i]] = a[i]
	}
	*a = b
}

// chi is the only non-linear step: a[x] ^= ^a[x+1] & a[x+2] along each row.
func chi(a *[Lanes]uint64) {
	var row [5]uint64
	for y := 0; y < Lanes; y += 5 {
		copy(row[:], a[y:y+5])
		for x := 0; x < 5; x++ {
			a[y+x] = row[x] ^ (^row[(x+1)%5] & row[(x+2)%5])
		}
	}
}

// addRoundConstant is the iota step.
func addRoundConstant(a *[Lanes]uint64, round int) {
	a[0] ^= roundConstants[round]
}
