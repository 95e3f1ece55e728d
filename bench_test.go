package sha3

import (
	"fmt"
	"testing"

	xsha3 "golang.org/x/crypto/sha3"
)

// Comparison benchmarks: this package vs golang.org/x/crypto/sha3.
var benchSizes = []int{32, 128, 256, 1024, 4096, 500 * 1024}

func benchName(size int) string {
	switch {
	case size >= 1024:
		return fmt.Sprintf("%dK", size/1024)
	default:
		return fmt.Sprintf("%dB", size)
	}
}

func benchData(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func BenchmarkSum256(b *testing.B) {
	for _, size := range benchSizes {
		data := benchData(size)
		b.Run(benchName(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			for b.Loop() {
				Sum256(data)
			}
		})
	}
}

func BenchmarkXCryptoSum256(b *testing.B) {
	for _, size := range benchSizes {
		data := benchData(size)
		b.Run(benchName(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			for b.Loop() {
				xsha3.Sum256(data)
			}
		})
	}
}

func BenchmarkHasher256(b *testing.B) {
	for _, size := range benchSizes {
		data := benchData(size)
		b.Run(benchName(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			h := New256()
			var out [Size256]byte
			for b.Loop() {
				h.Reset()
				h.Write(data)
				h.Sum(out[:0])
			}
		})
	}
}

func BenchmarkLegacyKeccak256(b *testing.B) {
	for _, size := range benchSizes {
		data := benchData(size)
		b.Run(benchName(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			for b.Loop() {
				LegacyKeccak256(data)
			}
		})
	}
}

func BenchmarkShake128(b *testing.B) {
	for _, size := range benchSizes {
		data := benchData(size)
		b.Run(benchName(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			d := NewShake128()
			out := make([]byte, 64)
			for b.Loop() {
				d.Reset()
				d.Write(data)
				d.Read(out)
			}
		})
	}
}
