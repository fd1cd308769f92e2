package dft

// Naive computes the transform by direct evaluation of the DFT sum.
// Returns a new slice of the same length as xs.
//
// This is an O(N²) algorithm valid for any length, including zero. It has
// no failure modes; non-finite samples propagate per floating-point rules.
// For power-of-two lengths, Recursive computes the same result in
// O(N log N).
func Naive(xs []complex128) []complex128 {
	out := make([]complex128, len(xs))
	NaiveTo(out, xs)
	return out
}

// NaiveTo computes the direct transform into a preallocated destination.
// dst must have the same length as src and must not overlap it.
func NaiveTo(dst, src []complex128) {
	n := len(src)
	if n == 0 {
		return
	}
	naiveAccumulate(dst, src, twiddles(n), 1)
}

// naiveAccumulate evaluates X[k] = Σ src[j]·W^(k·j) for every k, walking
// the shared twiddle table instead of materializing the N×N coefficient
// matrix. tw must hold the roots for length len(src) sampled at stride,
// so W^m = tw[m·stride]. The twiddle index advances by k modulo n per
// term, which keeps index arithmetic overflow-free for any k·j.
func naiveAccumulate(dst, src, tw []complex128, stride int) {
	n := len(src)
	for k := range n {
		var acc complex128
		idx := 0
		for _, v := range src {
			acc += v * tw[idx*stride]
			idx += k
			if idx >= n {
				idx -= n
			}
		}
		dst[k] = acc
	}
}

// Matrix returns the N×N transform coefficient matrix
//
//	M[k][j] = exp(-2πi·k·j/N)
//
// whose matrix-vector product with a sequence equals its transform.
// Naive computes that product without building the matrix; Matrix exists
// for verification and for callers that want the operator itself.
func Matrix(n int) [][]complex128 {
	m := make([][]complex128, n)
	if n == 0 {
		return m
	}
	tw := twiddles(n)
	for k := range n {
		row := make([]complex128, n)
		idx := 0
		for j := range n {
			row[j] = tw[idx]
			idx += k
			if idx >= n {
				idx -= n
			}
		}
		m[k] = row
	}
	return m
}
