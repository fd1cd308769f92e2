package dft

import (
	"github.com/cwbudde/algo-dft/fourier/seq"
)

// Recursive computes the transform by full Cooley-Tukey decimation in
// time. Returns a new slice of the same length as ys.
//
// The even/odd decomposition of Split is applied recursively: each half
// is transformed by self-invocation until the base case, a length-1
// sequence, which is its own transform. Combination work per recursion
// level totals O(N) across log₂N levels, giving O(N log N).
//
// The length must be a power of two (1 is allowed); anything else,
// including zero, returns ErrInvalidLength. The check happens once at
// the top level; a non-power-of-two length would otherwise surface deep
// in the recursion as an ambiguous odd-length remainder.
//
// WithBaseSize stops the recursion early and hands blocks at or below
// the threshold to the direct sum; the output is unchanged within
// floating-point tolerance.
func Recursive(ys []complex128, opts ...Option) ([]complex128, error) {
	n := len(ys)
	if !IsPowerOfTwo(n) {
		return nil, ErrInvalidLength
	}
	cfg := applyOptions(opts...)
	out := make([]complex128, n)
	recurseInto(out, ys, twiddles(n), 1, cfg.baseSize)
	return out, nil
}

// recurseInto writes the transform of src into dst. tw is the top-level
// twiddle table, sampled at stride for the current depth so that
// W^j = tw[j·stride]; halving the problem doubles the stride, which lets
// every recursion level share the one cached table. Blocks of base or
// fewer samples go to the direct sum.
func recurseInto(dst, src, tw []complex128, stride, base int) {
	n := len(src)
	if n == 1 {
		dst[0] = src[0]
		return
	}
	if n <= base {
		naiveAccumulate(dst, src, tw, stride)
		return
	}
	even, odd := seq.EvenOdd(src)
	half := n / 2
	he := make([]complex128, half)
	ho := make([]complex128, half)
	recurseInto(he, even, tw, stride*2, base)
	recurseInto(ho, odd, tw, stride*2, base)
	combine(dst, he, ho, tw, stride)
}
