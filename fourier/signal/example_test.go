package signal_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dft/fourier/signal"
)

func ExampleImpulse() {
	x, err := signal.Impulse(4, 0)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.0f %.0f %.0f %.0f\n", real(x[0]), real(x[1]), real(x[2]), real(x[3]))

	// Output:
	// 1 0 0 0
}

func ExampleTone() {
	// Bin 1 of a length-4 tone walks the unit circle in quarter turns.
	x, err := signal.Tone(1, 1, 4)
	if err != nil {
		panic(err)
	}
	for i, v := range x {
		re, im := real(v), imag(v)
		if math.Abs(re) < 1e-12 {
			re = 0
		}
		if math.Abs(im) < 1e-12 {
			im = 0
		}
		fmt.Printf("x[%d] = %.0f%+.0fi\n", i, re, im)
	}

	// Output:
	// x[0] = 1+0i
	// x[1] = 0+1i
	// x[2] = -1+0i
	// x[3] = 0-1i
}
