package body

import (
	"errors"
	"fmt"

	"github.com/astrolite/lightcurve/units"
)

// Sentinel errors for entity construction.
var (
	// ErrRadiusUnit indicates a planet radius unit outside {"R_J", "R_earth", "m"}.
	ErrRadiusUnit = errors.New(`body: radius unit must be "R_J", "R_earth", or "m"`)
	// ErrAxisUnit indicates a semi-major-axis unit outside {"AU", "m"}.
	ErrAxisUnit = errors.New(`body: semi-major-axis unit must be "AU" or "m"`)
)

// Default unit strings for NewPlanet.
const (
	// DefaultRadiusUnit expresses planet radii in jovian radii.
	DefaultRadiusUnit = "R_J"
	// DefaultAxisUnit expresses semi-major axes in astronomical units.
	DefaultAxisUnit = "AU"
)

// Planet is an orbiting body: a radius and a semi-major axis.
// Immutable after construction.
type Planet struct {
	radius units.Quantity
	axis   units.Quantity
}

// Star is a host body: a radius in solar radii.
// Immutable after construction.
type Star struct {
	radius units.Quantity
}

// Option adjusts NewPlanet construction.
type Option func(*planetConfig)

// planetConfig carries the unit strings NewPlanet validates.
type planetConfig struct {
	radiusUnit string
	axisUnit   string
}

// WithRadiusUnit sets the unit string the radius magnitude is expressed in.
// Must be one of "R_J", "R_earth", "m"; anything else fails NewPlanet with
// ErrRadiusUnit.
func WithRadiusUnit(unit string) Option {
	return func(c *planetConfig) { c.radiusUnit = unit }
}

// WithAxisUnit sets the unit string the semi-major-axis magnitude is
// expressed in. Must be "AU" or "m"; anything else fails NewPlanet with
// ErrAxisUnit.
func WithAxisUnit(unit string) Option {
	return func(c *planetConfig) { c.axisUnit = unit }
}

// NewPlanet constructs a Planet from a radius and a semi-major axis.
// Defaults: radius in jovian radii ("R_J"), axis in astronomical units
// ("AU"). Unit strings outside the closed sets fail fast.
//
// Complexity: O(1).
func NewPlanet(radius, axis float64, opts ...Option) (Planet, error) {
	cfg := planetConfig{radiusUnit: DefaultRadiusUnit, axisUnit: DefaultAxisUnit}
	for _, opt := range opts {
		opt(&cfg)
	}

	var radiusUnit units.Unit
	switch cfg.radiusUnit {
	case "R_J":
		radiusUnit = units.JupiterRadius
	case "R_earth":
		radiusUnit = units.EarthRadius
	case "m":
		radiusUnit = units.Meter
	default:
		return Planet{}, fmt.Errorf("%w: got %q", ErrRadiusUnit, cfg.radiusUnit)
	}

	var axisUnit units.Unit
	switch cfg.axisUnit {
	case "AU":
		axisUnit = units.AstronomicalUnit
	case "m":
		axisUnit = units.Meter
	default:
		return Planet{}, fmt.Errorf("%w: got %q", ErrAxisUnit, cfg.axisUnit)
	}

	return Planet{
		radius: units.MustNew(radius, radiusUnit),
		axis:   units.MustNew(axis, axisUnit),
	}, nil
}

// NewStar constructs a Star from a radius in solar radii.
//
// Complexity: O(1).
func NewStar(radius float64) Star {
	return Star{radius: units.MustNew(radius, units.SolarRadius)}
}

// Radius returns the planetary radius.
func (p Planet) Radius() units.Quantity { return p.radius }

// SemiMajorAxis returns the orbital semi-major axis.
func (p Planet) SemiMajorAxis() units.Quantity { return p.axis }

// Radius returns the stellar radius.
func (s Star) Radius() units.Quantity { return s.radius }
