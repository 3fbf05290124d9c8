// Package transit synthesizes light curves: noisy baseline flux with
// periodic transit dips injected at configurable depth, duration and phase.
//
// 🚀 What is transit?
//
//	The core of the lightcurve module. A Series owns a baseline signal
//	(1.0 + Gaussian noise, kept pristine) plus the transit geometry, and
//	injects dips under one of two placement policies:
//	  • Periodic  — one dip centered in every period block, linear
//	    ingress/egress slopes, whole-signal circular shift to the phase
//	    offset (a full rendering pass each call).
//	  • Windowed  — a single hard-edged window anchored at the phase
//	    offset, split across the buffer ends on wraparound; Advance moves
//	    the window one period forward between calls.
//
// ✨ Key features:
//   - direct parameters (depth, duration, noise, periods) or physically
//     derived ones from a body.Planet / body.Star pair:
//     depth = (R_p/R_s)², in-transit fraction = R_s/(2π·a)
//   - zero sentinels randomize depth and duration within the
//     conventional training-data ranges
//   - every draw flows through an explicit seed; same seed ⇒
//     byte-identical series (no ambient RNG anywhere)
//   - all malformed configurations are rejected at construction with
//     sentinel errors; injection itself cannot fail on a valid Series
//
// ⚙️ Usage:
//
//	opts := transit.DefaultOptions()
//	opts.Depth = 0.02
//	opts.Duration = 0.1
//	opts.Seed = 42
//
//	s, err := transit.NewSeries(opts)
//	if err != nil { ... }
//	res, err := s.Inject()
//	// res.Flux, res.Timestamps, res.Lower, res.Upper, res.Overflow
//
// Concurrency: a Series is NOT goroutine-safe; it owns a *rand.Rand and
// mutable working state. Use one Series per goroutine.
//
// Complexity: construction and every injection pass are O(total samples).
//
// Errors: see types.go — ErrSampleCount, ErrPeriodCount, ErrNegativeNoise,
// ErrDepthRange, ErrDurationRange, ErrRampOverflow, ErrPolicy.
package transit
