package growth

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/cwbudde/algo-dft/fourier/signal"
	"github.com/cwbudde/algo-dft/stats/timing"
)

// Errors returned by measurement functions.
var (
	ErrNoTransform    = errors.New("growth: transform must not be nil")
	ErrInvalidSizes   = errors.New("growth: sizes must be positive and strictly increasing")
	ErrInvalidRepeats = errors.New("growth: repeats must be >= 1")
	ErrTooFewPoints   = errors.New("growth: need at least two points to fit")
	ErrNonPositive    = errors.New("growth: fit requires positive sizes and timings")
)

// Transform is the callable under measurement. It receives a freshly
// generated sequence and returns its transform.
type Transform func([]complex128) ([]complex128, error)

// Generator produces the input sequence for a given problem size.
// Generation happens outside the timed region.
type Generator func(n int) []complex128

// Point is one measured problem size.
type Point struct {
	Size    int
	Elapsed time.Duration // minimum over repeats
	Stats   timing.Stats  // summary over all repeats, in nanoseconds
}

// Series is a named sequence of measurements over increasing sizes.
type Series struct {
	Name   string
	Points []Point
}

type options struct {
	repeats int
	warmup  int
	gen     Generator
}

// Option configures a measurement run.
type Option func(*options)

// WithRepeats sets how many timed calls are made per size. The default
// is 5; the per-size Elapsed is the minimum across repeats.
func WithRepeats(n int) Option {
	return func(o *options) {
		o.repeats = n
	}
}

// WithWarmup sets how many untimed calls precede the timed ones at each
// size. The default is 1.
func WithWarmup(n int) Option {
	return func(o *options) {
		o.warmup = n
	}
}

// WithGenerator replaces the default input generator, deterministic
// complex noise seeded by the problem size.
func WithGenerator(g Generator) Option {
	return func(o *options) {
		o.gen = g
	}
}

func defaultGenerator(n int) []complex128 {
	xs, err := signal.Noise(int64(n), 1.0, n)
	if err != nil {
		// Sizes are validated positive before generation runs.
		panic(err)
	}
	return xs
}

// Measure times transform across the given sizes and returns one Point
// per size. Sizes must be positive and strictly increasing. The input
// for each size is generated before timing starts; a garbage collection
// runs between generation and the timed region so collector work from
// setup does not land in the measurements.
func Measure(name string, transform Transform, sizes []int, opts ...Option) (Series, error) {
	if transform == nil {
		return Series{}, ErrNoTransform
	}
	if len(sizes) == 0 {
		return Series{}, ErrInvalidSizes
	}
	for i, n := range sizes {
		if n <= 0 || (i > 0 && n <= sizes[i-1]) {
			return Series{}, ErrInvalidSizes
		}
	}

	cfg := options{repeats: 5, warmup: 1, gen: defaultGenerator}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.repeats < 1 {
		return Series{}, ErrInvalidRepeats
	}
	if cfg.warmup < 0 {
		cfg.warmup = 0
	}
	if cfg.gen == nil {
		cfg.gen = defaultGenerator
	}

	series := Series{Name: name, Points: make([]Point, 0, len(sizes))}

	for _, n := range sizes {
		input := cfg.gen(n)
		if len(input) != n {
			return Series{}, fmt.Errorf("growth: generator produced %d samples for size %d", len(input), n)
		}

		for range cfg.warmup {
			if _, err := transform(input); err != nil {
				return Series{}, fmt.Errorf("growth: transform failed at size %d: %w", n, err)
			}
		}

		runtime.GC()

		var acc timing.Accumulator
		best := time.Duration(-1)
		for range cfg.repeats {
			start := time.Now()
			out, err := transform(input)
			elapsed := time.Since(start)
			if err != nil {
				return Series{}, fmt.Errorf("growth: transform failed at size %d: %w", n, err)
			}
			if len(out) != n {
				return Series{}, fmt.Errorf("growth: transform returned %d samples for size %d", len(out), n)
			}
			acc.AddDuration(elapsed)
			if best < 0 || elapsed < best {
				best = elapsed
			}
		}

		series.Points = append(series.Points, Point{
			Size:    n,
			Elapsed: best,
			Stats:   acc.Result(),
		})
	}

	return series, nil
}

// Doublings returns count sizes starting at start, doubling each step.
// Growth comparisons need at least four doublings to separate quadratic
// from linearithmic behavior.
func Doublings(start, count int) ([]int, error) {
	if start < 1 || count < 1 {
		return nil, ErrInvalidSizes
	}
	sizes := make([]int, count)
	n := start
	for i := range sizes {
		if n < start {
			// Doubling overflowed int.
			return nil, ErrInvalidSizes
		}
		sizes[i] = n
		n *= 2
	}
	return sizes, nil
}
