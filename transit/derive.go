package transit

import (
	"math"

	"github.com/astrolite/lightcurve/body"
)

// Derive computes the transit geometry of a star–planet system.
//
// Description:
//
//	Two closed forms connect the system to the signal:
//	  depth            = (R_planet / R_star)²
//	  durationFraction = R_star / (2π · a)
//	where a is the planet's semi-major axis. Both are dimensionless;
//	the unit layer reduces the operands to canonical meters first.
//	durationFraction is the fraction of one orbital period the planet
//	spends in front of the stellar disk (central transit, point-planet
//	approximation — no limb darkening, no impact parameter).
//
// Errors:
//   - propagates units.ErrDimensionMismatch when either ratio cannot be
//     reduced to a dimensionless number.
//
// Pure function, no side effects. Complexity: O(1).
func Derive(p body.Planet, s body.Star) (depth, durationFraction float64, err error) {
	radiusRatio, err := p.Radius().Ratio(s.Radius())
	if err != nil {
		return 0, 0, err
	}

	circumferenceRatio, err := s.Radius().Ratio(p.SemiMajorAxis())
	if err != nil {
		return 0, 0, err
	}

	return radiusRatio * radiusRatio, circumferenceRatio / (2 * math.Pi), nil
}
