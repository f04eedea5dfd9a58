package sampler_test

import (
	"fmt"

	"github.com/cwbudde/algo-sampling/dsp/sampler"
)

func ExampleSample() {
	set, err := sampler.Sample(func(float64) float64 { return 1 }, 0, 1, 4)
	if err != nil {
		panic(err)
	}

	fmt.Println(set.Times)
	fmt.Println(set.Values)
	// Output:
	// [0 0.25 0.5 0.75]
	// [1 1 1 1]
}
