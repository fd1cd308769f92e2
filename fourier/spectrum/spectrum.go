package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each spectrum bin.
//
// The complex input is unpacked into pooled real/imaginary planes and
// handed to vectorized kernels, so in steady state only the output slice
// is allocated.
func Magnitude(bins []complex128) []float64 {
	if len(bins) == 0 {
		return nil
	}

	out := make([]float64, len(bins))
	re, im, buf := getScratch(len(bins))

	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// MagnitudeFromParts computes |X[k]| = sqrt(re[k]² + im[k]²) into dst.
//
// This is the zero-allocation path for callers that already hold the
// real and imaginary planes separately. All three slices must have the
// same length.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// Power returns |X[k]|² for each spectrum bin.
//
// Like Magnitude, scratch planes are pooled and the squaring runs through
// vectorized kernels.
func Power(bins []complex128) []float64 {
	if len(bins) == 0 {
		return nil
	}

	out := make([]float64, len(bins))
	re, im, buf := getScratch(len(bins))

	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// PowerFromParts computes |X[k]|² = re[k]² + im[k]² into dst.
//
// All three slices must have the same length.
func PowerFromParts(dst, re, im []float64) {
	vecmath.Power(dst, re, im)
}

// Phase returns arg(X[k]) for each spectrum bin in radians.
func Phase(bins []complex128) []float64 {
	if len(bins) == 0 {
		return nil
	}
	out := make([]float64, len(bins))
	for i, c := range bins {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// UnwrapPhase returns a new phase slice with ±2π discontinuities removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return out
}

// BinFrequencies returns the center frequency of each bin of a length-n
// transform at the given sample rate: f[k] = k·sampleRate/n.
func BinFrequencies(n int, sampleRate float64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("bin frequencies require n > 0: %d", n)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("bin frequencies require sample rate > 0: %f", sampleRate)
	}
	out := make([]float64, n)
	step := sampleRate / float64(n)
	for k := range out {
		out[k] = float64(k) * step
	}
	return out, nil
}

// DominantBin returns the index of the bin with the largest magnitude,
// or -1 for an empty spectrum. Ties resolve to the lowest index.
func DominantBin(bins []complex128) int {
	if len(bins) == 0 {
		return -1
	}
	best := 0
	bestPow := 0.0
	for i, c := range bins {
		p := real(c)*real(c) + imag(c)*imag(c)
		if p > bestPow {
			bestPow = p
			best = i
		}
	}
	return best
}
