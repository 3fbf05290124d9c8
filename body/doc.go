// Package body defines the physical entities a transit is derived from:
// an orbiting Planet and its host Star.
//
// What:
//
//   - Planet holds a radius and a semi-major axis, both canonical
//     units.Quantity values; constructed from a magnitude plus a unit
//     string drawn from a closed set (radius: "R_J", "R_earth", "m";
//     axis: "AU", "m").
//   - Star holds a radius in solar radii.
//   - Both are immutable value objects; construct once, pass by value.
//
// Why:
//
//   - Transit depth is (R_planet/R_star)² and the in-transit fraction is
//     R_star/(2π·a); feeding those formulas a radius in the wrong unit
//     yields a curve that looks right and is quietly wrong. Constructors
//     therefore reject unit strings outside the closed sets immediately.
//
// Errors:
//
//   - ErrRadiusUnit: planet radius unit outside {"R_J", "R_earth", "m"}.
//   - ErrAxisUnit: semi-major-axis unit outside {"AU", "m"}.
package body
