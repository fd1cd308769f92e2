package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Impulse generates a length-n sequence with a unit sample at pos and
// zeros elsewhere. Its transform has unit magnitude in every bin.
func Impulse(n, pos int) ([]complex128, error) {
	if n <= 0 {
		return nil, fmt.Errorf("impulse samples must be > 0: %d", n)
	}
	if pos < 0 || pos >= n {
		return nil, fmt.Errorf("impulse position out of range [0,%d): %d", n, pos)
	}
	out := make([]complex128, n)
	out[pos] = 1
	return out, nil
}

// Constant generates a length-n sequence with every sample set to value.
func Constant(value complex128, n int) ([]complex128, error) {
	if n <= 0 {
		return nil, fmt.Errorf("constant samples must be > 0: %d", n)
	}
	out := make([]complex128, n)
	for i := range out {
		out[i] = value
	}
	return out, nil
}

// Tone generates a complex exponential at the given bin:
//
//	x[j] = amplitude · exp(+2πi·bin·j/n)
//
// Its forward transform concentrates amplitude·n in that bin and is zero
// elsewhere, up to rounding.
func Tone(bin int, amplitude float64, n int) ([]complex128, error) {
	if n <= 0 {
		return nil, fmt.Errorf("tone samples must be > 0: %d", n)
	}
	if bin < 0 || bin >= n {
		return nil, fmt.Errorf("tone bin out of range [0,%d): %d", n, bin)
	}
	out := make([]complex128, n)
	step := 2 * math.Pi * float64(bin) / float64(n)
	for j := range out {
		angle := step * float64(j)
		out[j] = complex(amplitude*math.Cos(angle), amplitude*math.Sin(angle))
	}
	return out, nil
}

// Noise generates deterministic complex white noise with real and
// imaginary parts in [-amplitude, amplitude].
func Noise(seed int64, amplitude float64, n int) ([]complex128, error) {
	if n <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", n)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]complex128, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(re, im)
	}
	return out, nil
}

// RealNoise generates deterministic real-valued white noise widened to
// complex samples with zero imaginary part.
func RealNoise(seed int64, amplitude float64, n int) ([]complex128, error) {
	if n <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", n)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]complex128, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = complex((rng.Float64()*2-1)*amplitude, 0)
	}
	return out, nil
}
