package dft

import (
	"github.com/cwbudde/algo-dft/fourier/seq"
)

// Split computes the transform via one level of decimation in time.
// Returns a new slice of the same length as ys.
//
// The sequence is split into even- and odd-indexed halves and each half
// is transformed by the direct sum; twiddle-factor recombination then
// reassembles the full spectrum. The decomposition is exact, but with the
// sub-transforms still costing O((N/2)²) each the total stays O(N²): a
// constant-factor improvement over Naive, not an order-of-growth one.
// Recursive applies the same decomposition all the way down.
//
// The length must be even; odd lengths return ErrInvalidLength. A length
// of zero yields an empty result.
func Split(ys []complex128) ([]complex128, error) {
	n := len(ys)
	if n%2 != 0 {
		return nil, ErrInvalidLength
	}
	out := make([]complex128, n)
	if n == 0 {
		return out, nil
	}
	splitInto(out, ys, twiddles(n))
	return out, nil
}

// splitInto performs the one-level decomposition for even, non-zero n.
func splitInto(dst, src, tw []complex128) {
	even, odd := seq.EvenOdd(src)
	he := make([]complex128, len(even))
	ho := make([]complex128, len(odd))
	NaiveTo(he, even)
	NaiveTo(ho, odd)
	combine(dst, he, ho, tw, 1)
}

// combine applies the decimation-in-time recombination
//
//	X[j] = He[j mod n/2] + W[j]·Ho[j mod n/2]    j = 0..n-1
//
// where W[j] = tw[j·stride] walks a twiddle table sampled at stride.
// he and ho hold the even- and odd-index sub-transforms, each of length
// n/2; the modular index reuses them across both halves of the output,
// exploiting the periodicity of the half-length transform.
func combine(dst, he, ho, tw []complex128, stride int) {
	n := len(dst)
	half := n / 2
	for j := range n {
		dst[j] = he[j%half] + tw[j*stride]*ho[j%half]
	}
}
