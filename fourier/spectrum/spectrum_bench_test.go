package spectrum

import (
	"testing"

	"github.com/cwbudde/algo-dft/internal/testutil"
)

func BenchmarkMagnitude(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"64", 64},
		{"256", 256},
		{"1K", 1024},
		{"4K", 4096},
	}

	for _, testCase := range sizes {
		b.Run(testCase.name, func(b *testing.B) {
			bins := testutil.RandomComplex(1, testCase.size)

			b.SetBytes(int64(testCase.size * 16)) // complex128 = 16 bytes
			b.ResetTimer()

			for range b.N {
				_ = Magnitude(bins)
			}
		})
	}
}

func BenchmarkPower(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"64", 64},
		{"256", 256},
		{"1K", 1024},
		{"4K", 4096},
	}

	for _, testCase := range sizes {
		b.Run(testCase.name, func(b *testing.B) {
			bins := testutil.RandomComplex(1, testCase.size)

			b.SetBytes(int64(testCase.size * 16)) // complex128 = 16 bytes
			b.ResetTimer()

			for range b.N {
				_ = Power(bins)
			}
		})
	}
}

func BenchmarkMagnitudeFromParts(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"64", 64},
		{"256", 256},
		{"1K", 1024},
		{"4K", 4096},
	}

	for _, testCase := range sizes {
		b.Run(testCase.name, func(b *testing.B) {
			bins := testutil.RandomComplex(1, testCase.size)
			re := make([]float64, testCase.size)
			im := make([]float64, testCase.size)
			dst := make([]float64, testCase.size)
			for i, c := range bins {
				re[i] = real(c)
				im[i] = imag(c)
			}

			b.SetBytes(int64(testCase.size * 16)) // re+im = 16 bytes per element
			b.ResetTimer()

			for range b.N {
				MagnitudeFromParts(dst, re, im)
			}
		})
	}
}

func BenchmarkDominantBin(b *testing.B) {
	bins := testutil.RandomComplex(1, 1024)

	b.SetBytes(int64(1024 * 16)) // complex128 = 16 bytes
	b.ResetTimer()

	for range b.N {
		_ = DominantBin(bins)
	}
}
