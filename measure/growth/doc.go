// Package growth measures how a transform's runtime scales with problem
// size and fits the scaling to a power law.
//
// The harness is a pure caller of the transform under test. Inputs are
// generated outside the timed region and each size is timed over several
// repeats; the per-size minimum serves as the noise-robust estimate.
// Fitting runs least squares on (ln n, ln t), so the fitted exponent
// separates O(N²) behavior from O(N log N) empirically (roughly 2 versus
// just above 1) without asserting exact constants.
package growth
