package testutil

import "math/rand"

// RandomComplex generates deterministic complex noise with real and
// imaginary parts in [-1, 1], seeded for reproducibility.
func RandomComplex(seed int64, n int) []complex128 {
	out := make([]complex128, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}
	return out
}

// RandomReal generates deterministic real-valued noise in [-1, 1] widened
// to complex samples with zero imaginary part.
func RandomReal(seed int64, n int) []complex128 {
	out := make([]complex128, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = complex(rng.Float64()*2-1, 0)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(n, pos int) []complex128 {
	out := make([]complex128, n)
	if pos >= 0 && pos < n {
		out[pos] = 1
	}
	return out
}

// Constant generates a constant-valued sequence.
func Constant(c complex128, n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = c
	}
	return out
}

// Ones returns a sequence of length n filled with 1.
func Ones(n int) []complex128 {
	return Constant(1, n)
}
