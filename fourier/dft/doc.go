// Package dft computes the discrete Fourier transform of complex sequences.
//
// The package offers three transform strategies with identical output and
// very different cost profiles:
//
//   - Naive: direct evaluation of the DFT sum, O(N²) time, valid for any
//     length. The reference every other strategy is measured against.
//   - Split: one level of decimation in time, two half-size direct
//     transforms recombined with twiddle factors. Still O(N²) overall but
//     with half the constant; requires an even length.
//   - Recursive: full Cooley-Tukey decimation in time, O(N log N);
//     requires a power-of-two length.
//
// # Usage
//
// For one-shot transforms, call the strategy directly:
//
//	spectrum := dft.Naive(samples)
//	spectrum, err := dft.Recursive(samples)
//
// For repeated transforms of the same length, create a reusable plan so
// length validation happens once:
//
//	plan, err := dft.NewPlan(dft.AlgorithmRecursive, 1024)
//	err = plan.Transform(spectrum, samples)
//
// # Conventions
//
// All strategies compute the unnormalized forward transform
//
//	X[k] = Σ_{j=0}^{N-1} x[j] · exp(-2πi·k·j/N)
//
// Twiddle factor tables are deterministic functions of the length alone
// and are cached per length; callers never pay for recomputation.
// Transforms never modify their input and allocate fresh output, so every
// call is a pure function of its argument.
package dft
