// Command dftbench measures transform runtime growth across problem sizes.
//
// Usage:
//
//	dftbench [flags]
//
// It times each selected algorithm over a doubling ladder of transform
// sizes and prints per-size timings. A power law fitted to each
// algorithm's growth lets O(N²) and O(N log N) behavior be compared
// empirically.
//
// Besides the algorithms of this module (naive, split, recursive), two
// external baselines can be timed: extfft (algo-fft plans) and gonum
// (gonum's complex FFT).
//
// Examples:
//
//	dftbench
//	dftbench -algos naive,recursive -start 64 -doublings 5
//	dftbench -algos recursive,extfft,gonum -repeats 9
//	dftbench -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-dft/fourier/dft"
	"github.com/cwbudde/algo-dft/fourier/signal"
	"github.com/cwbudde/algo-dft/measure/growth"
	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

type algoEntry struct {
	name      string
	transform growth.Transform
}

func registry() []algoEntry {
	return []algoEntry{
		{"naive", func(xs []complex128) ([]complex128, error) {
			return dft.Naive(xs), nil
		}},
		{"split", dft.Split},
		{"recursive", func(xs []complex128) ([]complex128, error) {
			return dft.Recursive(xs)
		}},
		{"extfft", extfftTransform()},
		{"gonum", gonumTransform()},
	}
}

// extfftTransform adapts algo-fft plans as a baseline. Plans are cached
// per size; with at least one warmup call per size, plan construction
// stays outside the timed region.
func extfftTransform() growth.Transform {
	plans := make(map[int]*algofft.Plan[complex128])
	return func(xs []complex128) ([]complex128, error) {
		n := len(xs)
		plan, ok := plans[n]
		if !ok {
			var err error
			plan, err = algofft.NewPlan64(n)
			if err != nil {
				return nil, fmt.Errorf("extfft plan for size %d: %w", n, err)
			}
			plans[n] = plan
		}
		out := make([]complex128, n)
		if err := plan.Forward(out, xs); err != nil {
			return nil, err
		}
		return out, nil
	}
}

// gonumTransform adapts gonum's complex FFT as a second baseline.
func gonumTransform() growth.Transform {
	ffts := make(map[int]*fourier.CmplxFFT)
	return func(xs []complex128) ([]complex128, error) {
		n := len(xs)
		f, ok := ffts[n]
		if !ok {
			f = fourier.NewCmplxFFT(n)
			ffts[n] = f
		}
		out := make([]complex128, n)
		f.Coefficients(out, xs)
		return out, nil
	}
}

func main() {
	algos := flag.String("algos", "naive,split,recursive,extfft,gonum", "comma-separated algorithms to time")
	start := flag.Int("start", 64, "smallest transform size (power of two)")
	doublings := flag.Int("doublings", 5, "number of sizes, doubling from start")
	repeats := flag.Int("repeats", 5, "timed repetitions per size")
	warmup := flag.Int("warmup", 1, "untimed warmup calls per size")
	seed := flag.Int64("seed", 1, "seed for the generated input signal")
	fit := flag.Bool("fit", true, "fit and print a power law per algorithm")
	list := flag.Bool("list", false, "list available algorithm names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dftbench [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Times DFT algorithms over doubling sizes and fits runtime growth.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  dftbench\n")
		fmt.Fprintf(os.Stderr, "  dftbench -algos naive,recursive -start 64 -doublings 5\n")
		fmt.Fprintf(os.Stderr, "  dftbench -algos recursive,extfft,gonum -repeats 9\n")
	}
	flag.Parse()

	entries := registry()

	if *list {
		for _, e := range entries {
			fmt.Println(e.name)
		}
		return
	}

	if !dft.IsPowerOfTwo(*start) {
		fmt.Fprintf(os.Stderr, "error: start size must be a power of two: %d\n", *start)
		os.Exit(1)
	}

	sizes, err := growth.Doublings(*start, *doublings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid size ladder: %v\n", err)
		os.Exit(1)
	}

	selected := resolveEntries(entries, *algos)
	if len(selected) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching algorithms\n")
		os.Exit(1)
	}

	gen := func(n int) []complex128 {
		xs, genErr := signal.Noise(*seed+int64(n), 1.0, n)
		if genErr != nil {
			fmt.Fprintf(os.Stderr, "error: failed to generate input: %v\n", genErr)
			os.Exit(1)
		}
		return xs
	}

	series := make([]growth.Series, 0, len(selected))
	for _, e := range selected {
		s, measureErr := growth.Measure(e.name, e.transform, sizes,
			growth.WithRepeats(*repeats),
			growth.WithWarmup(*warmup),
			growth.WithGenerator(gen),
		)
		if measureErr != nil {
			fmt.Fprintf(os.Stderr, "error: measuring %s: %v\n", e.name, measureErr)
			os.Exit(1)
		}
		series = append(series, s)
	}

	printTimings(series)

	if *fit {
		printFits(series)
	}
}

func resolveEntries(entries []algoEntry, csv string) []algoEntry {
	byName := make(map[string]algoEntry, len(entries))
	for _, e := range entries {
		byName[e.name] = e
	}

	var result []algoEntry
	for _, name := range strings.Split(csv, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown algorithm %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printTimings(series []growth.Series) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Algorithm\tSize\tBest [ns]\tMean [ns]\tStdDev [ns]\tvs %s\n", series[0].Name)
	fmt.Fprintf(tw, "---------\t----\t---------\t---------\t-----------\t------\n")

	for _, s := range series {
		for i, p := range s.Points {
			base := float64(series[0].Points[i].Elapsed.Nanoseconds())
			rel := base / float64(p.Elapsed.Nanoseconds())
			fmt.Fprintf(tw, "%s\t%d\t%d\t%.0f\t%.0f\t%.2fx\n",
				s.Name,
				p.Size,
				p.Elapsed.Nanoseconds(),
				p.Stats.Mean,
				p.Stats.StdDev,
				rel,
			)
		}
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printFits(series []growth.Series) {
	fmt.Println()
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Algorithm\tGrowth\tScale [ns]\n")
	fmt.Fprintf(tw, "---------\t------\t----------\n")

	for _, s := range series {
		law, err := s.Fit()
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: fit failed for %s: %v\n", s.Name, err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%.3g\n", s.Name, law, law.Scale)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
