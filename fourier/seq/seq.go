package seq

import (
	"errors"
	"math/cmplx"
)

// Errors returned by sequence functions.
var (
	ErrLengthMismatch = errors.New("seq: length mismatch")
)

// Default tolerances for approximate comparison. Accumulated rounding
// differs between transform algorithms, so callers compare results with
// NearlyEqual rather than exact equality.
const (
	DefaultAtol = 1e-8
	DefaultRtol = 1e-5
)

// FromReal widens real samples to complex samples with zero imaginary part.
func FromReal(xs []float64) []complex128 {
	out := make([]complex128, len(xs))
	for i, v := range xs {
		out[i] = complex(v, 0)
	}
	return out
}

// Real returns the real part of each sample.
func Real(xs []complex128) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = real(v)
	}
	return out
}

// Imag returns the imaginary part of each sample.
func Imag(xs []complex128) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = imag(v)
	}
	return out
}

// Clone returns an independent copy of xs.
func Clone(xs []complex128) []complex128 {
	out := make([]complex128, len(xs))
	copy(out, xs)
	return out
}

// EvenOdd splits xs into its even- and odd-indexed subsequences.
//
// Both results are freshly allocated copies; xs is never aliased or
// modified. For odd-length input the even part holds one extra element.
func EvenOdd(xs []complex128) (even, odd []complex128) {
	n := len(xs)
	even = make([]complex128, (n+1)/2)
	odd = make([]complex128, n/2)
	for i := 0; i < n; i += 2 {
		even[i/2] = xs[i]
	}
	for i := 1; i < n; i += 2 {
		odd[i/2] = xs[i]
	}
	return even, odd
}

// Sum returns the sum of all samples. The sum equals the DC bin of the
// sequence's discrete Fourier transform.
func Sum(xs []complex128) complex128 {
	var acc complex128
	for _, v := range xs {
		acc += v
	}
	return acc
}

// Add returns the elementwise sum x + y as a new slice.
func Add(x, y []complex128) ([]complex128, error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	out := make([]complex128, len(x))
	for i := range x {
		out[i] = x[i] + y[i]
	}
	return out, nil
}

// Scale returns c·xs as a new slice.
func Scale(c complex128, xs []complex128) []complex128 {
	out := make([]complex128, len(xs))
	for i, v := range xs {
		out[i] = c * v
	}
	return out
}

// NearlyEqual reports whether a and b agree within atol plus rtol scaled
// by |b|. Negative tolerances fall back to the package defaults.
func NearlyEqual(a, b complex128, atol, rtol float64) bool {
	if atol < 0 {
		atol = DefaultAtol
	}
	if rtol < 0 {
		rtol = DefaultRtol
	}
	return cmplx.Abs(a-b) <= atol+rtol*cmplx.Abs(b)
}

// SlicesNearlyEqual reports whether a and b have equal length and agree
// elementwise per NearlyEqual.
func SlicesNearlyEqual(a, b []complex128, atol, rtol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !NearlyEqual(a[i], b[i], atol, rtol) {
			return false
		}
	}
	return true
}
