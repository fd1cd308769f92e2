// Package timing summarizes repeated duration measurements. Values are
// carried as float64 nanoseconds so downstream fitting and reporting can
// stay in one unit.
package timing

import (
	"math"
	"time"
)

// Stats holds summary statistics over a set of measurements in
// nanoseconds.
type Stats struct {
	Count    int
	Mean     float64
	Variance float64 // population variance
	StdDev   float64
	Min      float64
	MinPos   int
	Max      float64
	MaxPos   int
	Total    float64
}

// Calculate computes all statistics in a single pass using Welford's
// online algorithm for a numerically stable variance.
func Calculate(samples []float64) Stats {
	n := len(samples)
	if n == 0 {
		return Stats{}
	}

	// Welford accumulators.
	var (
		mean float64
		m2   float64
	)

	// Running aggregates.
	var (
		total  float64
		maxVal = samples[0]
		maxPos int
		minVal = samples[0]
		minPos int
	)

	for i, x := range samples {
		ni := float64(i + 1)
		delta := x - mean
		mean += delta / ni
		m2 += delta * (x - mean)

		total += x

		if x > maxVal {
			maxVal = x
			maxPos = i
		}

		if x < minVal {
			minVal = x
			minPos = i
		}
	}

	nf := float64(n)
	variance := m2 / nf

	return Stats{
		Count:    n,
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Min:      minVal,
		MinPos:   minPos,
		Max:      maxVal,
		MaxPos:   maxPos,
		Total:    total,
	}
}

// FromDurations converts durations to nanoseconds and summarizes them.
func FromDurations(ds []time.Duration) Stats {
	samples := make([]float64, len(ds))
	for i, d := range ds {
		samples[i] = float64(d.Nanoseconds())
	}
	return Calculate(samples)
}

// Accumulator builds statistics incrementally across measurements. It
// processes each sample with the same update steps as Calculate to
// guarantee bit-for-bit identical results.
type Accumulator struct {
	n       int
	mean    float64
	m2      float64
	total   float64
	maxVal  float64
	maxPos  int
	minVal  float64
	minPos  int
	hasData bool
}

// Add records one measurement in nanoseconds.
func (a *Accumulator) Add(x float64) {
	a.n++
	ni := float64(a.n)

	delta := x - a.mean
	a.mean += delta / ni
	a.m2 += delta * (x - a.mean)

	a.total += x

	if !a.hasData {
		a.maxVal = x
		a.maxPos = a.n - 1
		a.minVal = x
		a.minPos = a.n - 1
		a.hasData = true
		return
	}

	if x > a.maxVal {
		a.maxVal = x
		a.maxPos = a.n - 1
	}

	if x < a.minVal {
		a.minVal = x
		a.minPos = a.n - 1
	}
}

// AddDuration records one measurement.
func (a *Accumulator) AddDuration(d time.Duration) {
	a.Add(float64(d.Nanoseconds()))
}

// Result computes the final statistics from accumulated measurements.
func (a *Accumulator) Result() Stats {
	if a.n == 0 {
		return Stats{}
	}

	nf := float64(a.n)
	variance := a.m2 / nf

	return Stats{
		Count:    a.n,
		Mean:     a.mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Min:      a.minVal,
		MinPos:   a.minPos,
		Max:      a.maxVal,
		MaxPos:   a.maxPos,
		Total:    a.total,
	}
}

// Reset clears all accumulated data, allowing the Accumulator to be
// reused.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}
