package units_test

import (
	"fmt"

	"github.com/astrolite/lightcurve/units"
)

// ExampleQuantity_Ratio shows the dimensionless reduction the transit
// formulas are built on: a jovian radius over a solar radius.
func ExampleQuantity_Ratio() {
	planet := units.MustNew(1, units.JupiterRadius)
	star := units.MustNew(1, units.SolarRadius)

	ratio, err := planet.Ratio(star)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%s / %s = %.5f\n", planet, star, ratio)
	// Output:
	// 1 R_J / 1 R_sun = 0.10276
}

// ExampleParseUnit shows the fail-fast behavior on unit strings.
func ExampleParseUnit() {
	u, _ := units.ParseUnit("AU")
	fmt.Println(u.Symbol(), u.Dimension() == units.Length)

	_, err := units.ParseUnit("lightyear")
	fmt.Println(err)
	// Output:
	// AU true
	// units: unknown unit: "lightyear"
}
