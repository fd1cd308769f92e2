package dft

import (
	"math"
	"sync"
)

// twoPi is the full rotation shared by all twiddle computations.
const twoPi = 2 * math.Pi

// twiddleCache holds computed tables keyed by transform length. Tables
// are immutable once stored and shared by all callers.
var twiddleCache sync.Map // map[int][]complex128

// twiddles returns the length-n table W[k] = exp(-2πi·k/n).
//
// The returned slice is shared and must not be modified.
func twiddles(n int) []complex128 {
	if v, ok := twiddleCache.Load(n); ok {
		return v.([]complex128)
	}
	tw := computeTwiddles(n)
	if v, loaded := twiddleCache.LoadOrStore(n, tw); loaded {
		return v.([]complex128)
	}
	return tw
}

// computeTwiddles builds a fresh table without touching the cache.
func computeTwiddles(n int) []complex128 {
	tw := make([]complex128, n)
	for k := range n {
		angle := -twoPi * float64(k) / float64(n)
		tw[k] = complex(math.Cos(angle), math.Sin(angle))
	}
	return tw
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
