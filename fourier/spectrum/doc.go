// Package spectrum inspects transform outputs: per-bin magnitude, power,
// and phase, plus bin-frequency mapping and peak location. It operates on
// the []complex128 spectra the transforms produce and does not compute
// transforms itself.
package spectrum
