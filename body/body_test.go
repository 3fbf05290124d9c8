package body_test

import (
	"testing"

	"github.com/astrolite/lightcurve/body"
	"github.com/astrolite/lightcurve/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewPlanet_Defaults verifies the default unit strings: radius in
// jovian radii, semi-major axis in astronomical units.
func TestNewPlanet_Defaults(t *testing.T) {
	p, err := body.NewPlanet(1, 0.05)
	require.NoError(t, err, "defaults must construct")

	assert.Equal(t, units.JupiterRadius, p.Radius().Unit(), "default radius unit")
	assert.Equal(t, 1.0, p.Radius().Value(), "radius magnitude")
	assert.Equal(t, units.AstronomicalUnit, p.SemiMajorAxis().Unit(), "default axis unit")
	assert.Equal(t, 0.05, p.SemiMajorAxis().Value(), "axis magnitude")
}

// TestNewPlanet_ExplicitUnits covers every accepted unit-string combination.
func TestNewPlanet_ExplicitUnits(t *testing.T) {
	for _, radiusUnit := range []string{"R_J", "R_earth", "m"} {
		for _, axisUnit := range []string{"AU", "m"} {
			_, err := body.NewPlanet(1, 1,
				body.WithRadiusUnit(radiusUnit), body.WithAxisUnit(axisUnit))
			assert.NoError(t, err, "radius %q axis %q must construct", radiusUnit, axisUnit)
		}
	}
}

// TestNewPlanet_BadRadiusUnit ensures an unaccepted radius unit fails fast.
func TestNewPlanet_BadRadiusUnit(t *testing.T) {
	_, err := body.NewPlanet(1, 0.05, body.WithRadiusUnit("R_sun"))
	assert.ErrorIs(t, err, body.ErrRadiusUnit, "stellar radius unit is not a planet unit")

	_, err = body.NewPlanet(1, 0.05, body.WithRadiusUnit("furlong"))
	assert.ErrorIs(t, err, body.ErrRadiusUnit, "nonsense radius unit must error")
}

// TestNewPlanet_BadAxisUnit ensures an unaccepted axis unit fails fast.
func TestNewPlanet_BadAxisUnit(t *testing.T) {
	_, err := body.NewPlanet(1, 0.05, body.WithAxisUnit("km"))
	assert.ErrorIs(t, err, body.ErrAxisUnit, "km is not an accepted axis unit")
}

// TestNewStar_SolarRadii verifies the stellar radius is tagged R_sun.
func TestNewStar_SolarRadii(t *testing.T) {
	s := body.NewStar(1.2)

	assert.Equal(t, units.SolarRadius, s.Radius().Unit(), "star radius unit")
	assert.Equal(t, 1.2, s.Radius().Value(), "star radius magnitude")
}

// TestPlanetStar_RatioIsDimensionless checks the cross-entity ratio the
// deriver depends on reduces through canonical meters.
func TestPlanetStar_RatioIsDimensionless(t *testing.T) {
	p, err := body.NewPlanet(1, 0.05)
	require.NoError(t, err)
	s := body.NewStar(1)

	r, err := p.Radius().Ratio(s.Radius())
	require.NoError(t, err)
	assert.Equal(t, 7.1492e7/6.957e8, r, "R_J / R_sun through meters")
}
