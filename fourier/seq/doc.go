// Package seq provides utilities for fixed-length complex sequences.
//
// Time-domain signals and frequency-domain spectra share the same
// representation, a plain []complex128; the distinction is purely semantic.
// The package covers construction from real samples, copying, even/odd
// index splitting, elementwise arithmetic, and approximate comparison.
package seq
