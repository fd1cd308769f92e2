package dft

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-dft/internal/testutil"
	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Accumulated rounding differs between algorithms, so equivalence is
// checked with the package's documented comparison tolerances.
const (
	equivAtol = 1e-8
	equivRtol = 1e-5
)

func TestAlgorithms_AgreeOnPowerOfTwoSizes(t *testing.T) {
	for n := 1; n <= 1024; n *= 2 {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			xs := testutil.RandomComplex(int64(n), n)
			want := Naive(xs)

			if n%2 == 0 {
				got, err := Split(xs)
				if err != nil {
					t.Fatalf("split: %v", err)
				}
				testutil.RequireComplexNearlyEqual(t, got, want, equivAtol, equivRtol)
			}

			got, err := Recursive(xs)
			if err != nil {
				t.Fatalf("recursive: %v", err)
			}
			testutil.RequireComplexNearlyEqual(t, got, want, equivAtol, equivRtol)
		})
	}
}

func TestAlgorithms_AgreeOnRealInput(t *testing.T) {
	for n := 2; n <= 512; n *= 2 {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			xs := testutil.RandomReal(int64(n), n)
			want := Naive(xs)

			got, err := Split(xs)
			if err != nil {
				t.Fatalf("split: %v", err)
			}
			testutil.RequireComplexNearlyEqual(t, got, want, equivAtol, equivRtol)

			got, err = Recursive(xs)
			if err != nil {
				t.Fatalf("recursive: %v", err)
			}
			testutil.RequireComplexNearlyEqual(t, got, want, equivAtol, equivRtol)
		})
	}
}

func TestNaive_MatchesReferenceFFT(t *testing.T) {
	for n := 2; n <= 1024; n *= 2 {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			xs := testutil.RandomComplex(int64(n), n)

			plan, err := algofft.NewPlan64(n)
			if err != nil {
				t.Fatalf("NewPlan64 error: %v", err)
			}
			want := make([]complex128, n)
			if err := plan.Forward(want, xs); err != nil {
				t.Fatalf("Forward error: %v", err)
			}

			testutil.RequireComplexNearlyEqual(t, Naive(xs), want, equivAtol, equivRtol)
		})
	}
}

func TestRecursive_MatchesReferenceFFT(t *testing.T) {
	for n := 2; n <= 1024; n *= 2 {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			xs := testutil.RandomComplex(int64(n)+1, n)

			plan, err := algofft.NewPlan64(n)
			if err != nil {
				t.Fatalf("NewPlan64 error: %v", err)
			}
			want := make([]complex128, n)
			if err := plan.Forward(want, xs); err != nil {
				t.Fatalf("Forward error: %v", err)
			}

			got, err := Recursive(xs)
			if err != nil {
				t.Fatalf("recursive: %v", err)
			}
			testutil.RequireComplexNearlyEqual(t, got, want, equivAtol, equivRtol)
		})
	}
}

func TestNaive_MatchesGoDSPArbitraryLengths(t *testing.T) {
	// go-dsp handles arbitrary lengths, which pins down the direct sum at
	// sizes the fast paths cannot reach.
	for _, n := range []int{1, 2, 3, 5, 6, 7, 12, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			xs := testutil.RandomComplex(int64(n), n)
			want := fft.FFT(xs)

			testutil.RequireComplexNearlyEqual(t, Naive(xs), want, equivAtol, equivRtol)
		})
	}
}

func TestSplit_MatchesGoDSPEvenLengths(t *testing.T) {
	for _, n := range []int{2, 6, 12, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			xs := testutil.RandomComplex(int64(n)+7, n)
			want := fft.FFT(xs)

			got, err := Split(xs)
			if err != nil {
				t.Fatalf("split: %v", err)
			}
			testutil.RequireComplexNearlyEqual(t, got, want, equivAtol, equivRtol)
		})
	}
}

func TestRecursive_MatchesGonum(t *testing.T) {
	for n := 1; n <= 1024; n *= 2 {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			xs := testutil.RandomComplex(int64(n)+13, n)
			want := fourier.NewCmplxFFT(n).Coefficients(nil, xs)

			got, err := Recursive(xs)
			if err != nil {
				t.Fatalf("recursive: %v", err)
			}
			testutil.RequireComplexNearlyEqual(t, got, want, equivAtol, equivRtol)
		})
	}
}

func TestPlan_MatchesReferenceFFT(t *testing.T) {
	const n = 256
	xs := testutil.RandomComplex(99, n)

	refPlan, err := algofft.NewPlan64(n)
	if err != nil {
		t.Fatalf("NewPlan64 error: %v", err)
	}
	want := make([]complex128, n)
	if err := refPlan.Forward(want, xs); err != nil {
		t.Fatalf("Forward error: %v", err)
	}

	for _, alg := range []Algorithm{AlgorithmNaive, AlgorithmSplit, AlgorithmRecursive} {
		t.Run(alg.String(), func(t *testing.T) {
			p, err := NewPlan(alg, n)
			if err != nil {
				t.Fatalf("NewPlan: %v", err)
			}
			got := make([]complex128, n)
			if err := p.Transform(got, xs); err != nil {
				t.Fatalf("Transform: %v", err)
			}
			testutil.RequireComplexNearlyEqual(t, got, want, equivAtol, equivRtol)
		})
	}
}
