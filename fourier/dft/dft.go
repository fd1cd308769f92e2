package dft

// Algorithm selects the transform strategy.
type Algorithm int

const (
	// AlgorithmNaive evaluates the DFT sum directly. O(N²), any length.
	AlgorithmNaive Algorithm = iota

	// AlgorithmSplit applies one level of decimation in time with direct
	// sub-transforms. O(N²) with half the constant, even lengths only.
	AlgorithmSplit

	// AlgorithmRecursive applies decimation in time recursively.
	// O(N log N), power-of-two lengths only.
	AlgorithmRecursive
)

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmNaive:
		return "naive"
	case AlgorithmSplit:
		return "split"
	case AlgorithmRecursive:
		return "recursive"
	default:
		return "unknown"
	}
}

// config holds tuning parameters shared by the transform entry points.
type config struct {
	baseSize int
}

// Option configures a transform call or plan.
type Option func(*config)

// WithBaseSize sets the recursion cutoff for the recursive algorithm:
// blocks of n or fewer samples are handed to the direct sum instead of
// recursing further. The default of 1 recurses all the way to scalars;
// values below 1 are treated as 1. Other algorithms ignore the option.
func WithBaseSize(n int) Option {
	return func(c *config) {
		c.baseSize = n
	}
}

func applyOptions(opts ...Option) config {
	cfg := config{baseSize: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.baseSize < 1 {
		cfg.baseSize = 1
	}
	return cfg
}

// Transform computes the transform of xs with the selected algorithm.
//
// Length requirements follow the algorithm: any length for
// AlgorithmNaive, even for AlgorithmSplit, a power of two for
// AlgorithmRecursive. Undefined Algorithm values return
// ErrUnknownAlgorithm.
func Transform(alg Algorithm, xs []complex128, opts ...Option) ([]complex128, error) {
	switch alg {
	case AlgorithmNaive:
		return Naive(xs), nil
	case AlgorithmSplit:
		return Split(xs)
	case AlgorithmRecursive:
		return Recursive(xs, opts...)
	default:
		return nil, ErrUnknownAlgorithm
	}
}
