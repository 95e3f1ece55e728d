package keccakf

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// XorIn XORs p into the state starting at byte 0. len(p) must not exceed Size.
func XorIn(a *[Lanes]uint64, p []byte) {
	if cpu.IsBigEndian {
		xorInGeneric(a, p)
		return
	}
	xorInLE(a, p)
}

// XorByte XORs b into the state byte at offset i.
func XorByte(a *[Lanes]uint64, i int, b byte) {
	a[i>>3] ^= uint64(b) << (8 * (i & 7))
}

// CopyOut fills dst with the first len(dst) bytes of the state.
// len(dst) must not exceed Size.
func CopyOut(dst []byte, a *[Lanes]uint64) {
	if cpu.IsBigEndian {
		copyOutGeneric(dst, a)
		return
	}
	copyOutLE(dst, a)
}

// xorInGeneric works on any host: lanes are assembled from little-endian
// bytes with shifts.
func xorInGeneric(a *[Lanes]uint64, p []byte) {
	n := len(p) >> 3
	for i := 0; i < n; i++ {
		a[i] ^= le64(p[8*i:])
	}
	for i := n << 3; i < len(p); i++ {
		XorByte(a, i, p[i])
	}
}

func copyOutGeneric(dst []byte, a *[Lanes]uint64) {
	n := len(dst) >> 3
	for i := 0; i < n; i++ {
		putLE64(dst[8*i:], a[i])
	}
	for i := n << 3; i < len(dst); i++ {
		dst[i] = byte(a[i>>3] >> (8 * (i & 7)))
	}
}

// xorInLE is only valid on little-endian hosts, where the in-memory layout
// of the lanes is already the byte view of the state.
func xorInLE(a *[Lanes]uint64, p []byte) {
	n := len(p) >> 3
	for i := 0; i < n; i++ {
		a[i] ^= le64(p[8*i:])
	}
	b := (*[Size]byte)(unsafe.Pointer(a))
	for i := n << 3; i < len(p); i++ {
		b[i] ^= p[i]
	}
}

func copyOutLE(dst []byte, a *[Lanes]uint64) {
	copy(dst, (*[Size]byte)(unsafe.Pointer(a))[:len(dst)])
}

// le64 reads a little-endian uint64 from at least 8 bytes.
func le64(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

func putLE64(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}
