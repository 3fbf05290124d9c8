// Package units provides the small set of physical quantities the
// light-curve synthesizer needs: exact length units and dimensionless
// ratios between them.
//
// What:
//
//   - Unit enumerates the recognized scales: Meter, AstronomicalUnit,
//     SolarRadius, JupiterRadius, EarthRadius, plus Scalar for
//     dimensionless values.
//   - Quantity pairs a float64 magnitude with a Unit and canonicalizes
//     to meters for arithmetic.
//   - ParseUnit maps the accepted unit strings ("m", "AU", "R_sun",
//     "R_J", "R_earth") onto Unit values, failing fast on anything else.
//
// Why:
//
//   - Transit depth and duration are pure ratios of lengths
//     (planet radius / star radius, star radius / orbital circumference);
//     getting a unit silently wrong produces a plausible but bogus curve.
//   - A closed, validated unit set turns that failure mode into an
//     immediate ErrUnknownUnit / ErrDimensionMismatch at construction.
//
// Conversion factors are the IAU nominal constants and are exact; Ratio
// of two lengths is exact division of canonical magnitudes.
//
// Errors:
//
//   - ErrUnknownUnit: a unit value or unit string outside the recognized set.
//   - ErrDimensionMismatch: arithmetic across incompatible dimensions.
package units
