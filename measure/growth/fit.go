package growth

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// PowerLaw describes a fitted runtime model t(n) ≈ Scale · n^Exponent.
type PowerLaw struct {
	Exponent float64 // slope of the log-log fit
	Scale    float64 // exp of the log-log intercept, in nanoseconds
	R2       float64 // coefficient of determination of the fit
}

// String formats the model as a growth order with fit quality.
func (p PowerLaw) String() string {
	return fmt.Sprintf("n^%.2f (R2=%.3f)", p.Exponent, p.R2)
}

// FitPoints fits a power law to measured points by least squares on
// (ln n, ln t), using each point's minimum elapsed time. At least two
// points with positive sizes and timings are required.
func FitPoints(points []Point) (PowerLaw, error) {
	if len(points) < 2 {
		return PowerLaw{}, ErrTooFewPoints
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, pt := range points {
		ns := float64(pt.Elapsed.Nanoseconds())
		if pt.Size <= 0 || ns <= 0 {
			return PowerLaw{}, ErrNonPositive
		}
		xs[i] = math.Log(float64(pt.Size))
		ys[i] = math.Log(ns)
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	r2 := stat.RSquared(xs, ys, nil, alpha, beta)

	return PowerLaw{
		Exponent: beta,
		Scale:    math.Exp(alpha),
		R2:       r2,
	}, nil
}

// Fit fits a power law to the series' points.
func (s Series) Fit() (PowerLaw, error) {
	return FitPoints(s.Points)
}
