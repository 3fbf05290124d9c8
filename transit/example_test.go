package transit_test

import (
	"fmt"

	"github.com/astrolite/lightcurve/body"
	"github.com/astrolite/lightcurve/transit"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDerive
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A hot-Jupiter analogue: 1 jovian radius at 0.05 AU around a solar
//	twin. The closed forms give the transit geometry directly:
//	  depth    = (R_p/R_s)²
//	  fraction = R_s/(2π·a)
//
// Use case:
//
//	Sanity-checking a physical system before synthesizing its curve.
//
// Complexity: O(1).
func ExampleDerive() {
	planet, err := body.NewPlanet(1, 0.05) // 1 R_J at 0.05 AU
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	star := body.NewStar(1) // 1 R_sun

	depth, fraction, err := transit.Derive(planet, star)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("depth=%.5f\nduration_samples=%.5f\n", depth, fraction*100)
	// Output:
	// depth=0.01056
	// duration_samples=1.48029
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSeries_Inject
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A noiseless two-period curve under the Periodic policy. Window
//	geometry is fully deterministic: duration 0.1 of a 100-sample
//	period centers a 10-sample dip in each block, the last at
//	[145, 155) before the circular phase shift.
//
// Use case:
//
//	Generating clean reference curves for plotting or as labels for
//	noisy training draws.
//
// Complexity: O(total samples).
func ExampleSeries_Inject() {
	opts := transit.DefaultOptions()
	opts.Placement = transit.Periodic
	opts.Depth = 0.02
	opts.Duration = 0.1
	opts.NoiseSigma = 0
	opts.PeriodCount = 2

	s, err := transit.NewSeries(opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res, err := s.Inject()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("samples=%d\nbounds=[%d, %d)\noverflow=%v\n",
		len(res.Flux), res.Lower, res.Upper, res.Overflow)
	// Output:
	// samples=200
	// bounds=[145, 155)
	// overflow=false
}
