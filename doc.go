// Package lightcurve synthesizes one-dimensional stellar brightness
// time-series with injected exoplanet transit signals — from arbitrary
// transit parameters or from physically derived star–planet geometry.
//
// 🚀 What is lightcurve?
//
//	A small, deterministic library that brings together:
//		• Physical quantities: length units (m, AU, R_sun, R_jup, R_earth)
//		  with exact conversions and dimensionless ratios
//		• Physical entities: Planet & Star value objects with unit-validated
//		  construction
//		• Transit synthesis: noisy baseline flux plus periodic dips with
//		  ingress/egress slopes, circular phase shifts and wraparound-aware
//		  window placement
//		• Presentation contract: the core returns data; any renderer
//		  (terminal, CSV, plotting backend) plugs in behind one interface
//
// ✨ Why choose lightcurve?
//
//   - Reproducible – every random draw flows through an explicit seed;
//     same seed ⇒ byte-identical series
//   - Testable – synthesis is split from rendering; no graphics dependency
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under four subpackages:
//
//	units/   — physical length quantities & dimensionless ratios
//	body/    — Planet and Star entities in canonical units
//	transit/ — baseline synthesis, placement policies, parameter derivation
//	render/  — adapter contract handing (x, y) data to a plotting backend
//
// Quick ASCII example:
//
//	flux
//	1.0 ─────╮        ╭─────────╮        ╭─────
//	         ╰────────╯         ╰────────╯
//	       transit p=0        transit p=1       → time
//
// Dive into the per-package docs and the runnable demos in examples/ for
// full walkthroughs.
//
//	go get github.com/astrolite/lightcurve/transit
package lightcurve
