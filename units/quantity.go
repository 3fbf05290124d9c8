package units

import "fmt"

// Valid reports whether u is one of the recognized units.
func (u Unit) Valid() bool { return u >= Scalar && u < unitCount }

// Dimension returns the physical dimension u measures.
func (u Unit) Dimension() Dimension {
	if u == Scalar {
		return Dimensionless
	}

	return Length
}

// factor returns the canonical (meters for Length, 1 for Scalar)
// magnitude of one u. Callers must have validated u.
func (u Unit) factor() float64 {
	switch u {
	case Meter:
		return 1
	case AstronomicalUnit:
		return metersPerAU
	case SolarRadius:
		return metersPerSolarRadius
	case JupiterRadius:
		return metersPerJupiterRad
	case EarthRadius:
		return metersPerEarthRad
	default:
		return 1
	}
}

// Symbol returns the conventional short name of u.
func (u Unit) Symbol() string {
	switch u {
	case Scalar:
		return ""
	case Meter:
		return "m"
	case AstronomicalUnit:
		return "AU"
	case SolarRadius:
		return "R_sun"
	case JupiterRadius:
		return "R_J"
	case EarthRadius:
		return "R_earth"
	default:
		return "?"
	}
}

// ParseUnit maps a unit string onto its Unit value.
// Accepted: "m", "AU", "R_sun", "R_J", "R_earth", and "" for Scalar.
// Any other string yields ErrUnknownUnit.
//
// Complexity: O(1).
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "":
		return Scalar, nil
	case "m":
		return Meter, nil
	case "AU":
		return AstronomicalUnit, nil
	case "R_sun":
		return SolarRadius, nil
	case "R_J":
		return JupiterRadius, nil
	case "R_earth":
		return EarthRadius, nil
	default:
		return Scalar, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
}

// New constructs a Quantity of value magnitudes of unit u.
// Returns ErrUnknownUnit if u is outside the recognized set.
func New(value float64, u Unit) (Quantity, error) {
	if !u.Valid() {
		return Quantity{}, fmt.Errorf("%w: unit %d", ErrUnknownUnit, u)
	}

	return Quantity{value: value, unit: u}, nil
}

// MustNew is New for compile-time-known units; panics on an invalid unit
// (programmer error, never data).
func MustNew(value float64, u Unit) Quantity {
	q, err := New(value, u)
	if err != nil {
		panic(err)
	}

	return q
}

// Value returns the magnitude of q in its own unit.
func (q Quantity) Value() float64 { return q.value }

// Unit returns the unit q is expressed in.
func (q Quantity) Unit() Unit { return q.unit }

// Meters returns the canonical magnitude of q.
// For dimensionless quantities this is the bare value.
func (q Quantity) Meters() float64 { return q.value * q.unit.factor() }

// Convert re-expresses q in unit to.
// Returns ErrDimensionMismatch when the dimensions differ.
//
// Conversion is a single exact multiply-divide; no precision is lost
// beyond one float64 rounding step.
func (q Quantity) Convert(to Unit) (Quantity, error) {
	if !to.Valid() {
		return Quantity{}, fmt.Errorf("%w: unit %d", ErrUnknownUnit, to)
	}
	if q.unit.Dimension() != to.Dimension() {
		return Quantity{}, fmt.Errorf("%w: convert %s to %s",
			ErrDimensionMismatch, q.unit.Symbol(), to.Symbol())
	}

	return Quantity{value: q.Meters() / to.factor(), unit: to}, nil
}

// Ratio divides q by other, producing a dimensionless float64.
// Both operands must share a dimension; otherwise ErrDimensionMismatch.
// Division by a zero-magnitude other yields ±Inf, as plain float64
// division would — callers own that precondition.
func (q Quantity) Ratio(other Quantity) (float64, error) {
	if q.unit.Dimension() != other.unit.Dimension() {
		return 0, fmt.Errorf("%w: ratio %s / %s",
			ErrDimensionMismatch, q.unit.Symbol(), other.unit.Symbol())
	}

	return q.Meters() / other.Meters(), nil
}

// String renders q as "<value> <symbol>" ("<value>" when dimensionless).
func (q Quantity) String() string {
	if q.unit == Scalar {
		return fmt.Sprintf("%g", q.value)
	}

	return fmt.Sprintf("%g %s", q.value, q.unit.Symbol())
}
