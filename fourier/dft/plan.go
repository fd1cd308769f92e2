package dft

// Plan is a reusable transform bound to a fixed algorithm and length.
//
// Construction validates the length once and captures the cached twiddle
// table; Transform then runs without per-call validation beyond buffer
// checks. A Plan holds no per-call state and is safe for concurrent use.
type Plan struct {
	n    int
	alg  Algorithm
	base int
	tw   []complex128
}

// NewPlan creates a plan for transforms of length n with the selected
// algorithm. The length is validated against the algorithm's domain:
// any n ≥ 0 for AlgorithmNaive, even n for AlgorithmSplit, a power of
// two for AlgorithmRecursive.
func NewPlan(alg Algorithm, n int, opts ...Option) (*Plan, error) {
	if n < 0 {
		return nil, ErrInvalidLength
	}
	switch alg {
	case AlgorithmNaive:
	case AlgorithmSplit:
		if n%2 != 0 {
			return nil, ErrInvalidLength
		}
	case AlgorithmRecursive:
		if !IsPowerOfTwo(n) {
			return nil, ErrInvalidLength
		}
	default:
		return nil, ErrUnknownAlgorithm
	}
	cfg := applyOptions(opts...)
	return &Plan{
		n:    n,
		alg:  alg,
		base: cfg.baseSize,
		tw:   twiddles(n),
	}, nil
}

// Len returns the transform length the plan was created for.
func (p *Plan) Len() int {
	return p.n
}

// Algorithm returns the strategy the plan applies.
func (p *Plan) Algorithm() Algorithm {
	return p.alg
}

// Transform computes the transform of src into dst. Both slices must
// have length Len and must not overlap; src is never modified.
func (p *Plan) Transform(dst, src []complex128) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}
	if len(dst) != p.n || len(src) != p.n {
		return ErrLengthMismatch
	}
	if p.n == 0 {
		return nil
	}
	switch p.alg {
	case AlgorithmNaive:
		naiveAccumulate(dst, src, p.tw, 1)
	case AlgorithmSplit:
		splitInto(dst, src, p.tw)
	case AlgorithmRecursive:
		recurseInto(dst, src, p.tw, 1, p.base)
	}
	return nil
}
