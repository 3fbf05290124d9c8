// Package units defines core types and sentinel errors for the units
// subpackage of github.com/astrolite/lightcurve.
package units

import "errors"

// Sentinel errors for units operations.
var (
	// ErrUnknownUnit indicates a unit value or unit string outside the recognized set.
	ErrUnknownUnit = errors.New("units: unknown unit")
	// ErrDimensionMismatch indicates arithmetic across incompatible dimensions.
	ErrDimensionMismatch = errors.New("units: dimension mismatch")
)

// Dimension identifies the physical dimension a Unit measures.
type Dimension int

const (
	// Dimensionless covers pure numbers (ratios of like quantities).
	Dimensionless Dimension = iota
	// Length covers all linear extent units (radii, orbital distances).
	Length
)

// Unit is a named scale for a supported Dimension.
type Unit int

const (
	// Scalar is the dimensionless unit; magnitude 1, Dimension Dimensionless.
	Scalar Unit = iota
	// Meter is the SI base length unit.
	Meter
	// AstronomicalUnit is the IAU astronomical unit, exactly 1.495978707e11 m.
	AstronomicalUnit
	// SolarRadius is the IAU nominal solar radius, 6.957e8 m.
	SolarRadius
	// JupiterRadius is the IAU nominal (equatorial) jovian radius, 7.1492e7 m.
	JupiterRadius
	// EarthRadius is the IAU nominal (equatorial) terrestrial radius, 6.3781e6 m.
	EarthRadius

	// unitCount bounds the valid Unit range; keep last.
	unitCount
)

// Meters-per-unit conversion factors (IAU 2015 nominal values; exact).
const (
	metersPerAU          = 1.495978707e11
	metersPerSolarRadius = 6.957e8
	metersPerJupiterRad  = 7.1492e7
	metersPerEarthRad    = 6.3781e6
)

// Quantity is an immutable magnitude-with-unit value object.
// The zero Quantity is the dimensionless zero.
type Quantity struct {
	value float64
	unit  Unit
}
