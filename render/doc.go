// Package render is the presentation boundary of the lightcurve module:
// the synthesis core hands it data, and a pluggable Renderer draws it.
//
// What:
//
//   - Frame packages one injection pass for display: (x, y) samples,
//     dip bounds, wraparound flag, phase-fold flag, and labels.
//   - NewFrame builds a Frame from a transit.Result, folding the time
//     axis modulo one period when phase-folding is requested.
//   - Renderer is the single-method contract any backend implements
//     (terminal, CSV writer, plotting library bridge).
//   - TextRenderer ships as the in-repo backend: a dependency-free
//     ASCII chart for examples and smoke tests.
//
// Why:
//
//   - The core stays testable without a display: synthesis never
//     imports a graphics dependency, and any plotting stack can sit on
//     the other side of Renderer.
//
// Errors:
//
//   - ErrEmptyFrame: a frame without samples.
//   - ErrLengthMismatch: timestamps and flux of differing lengths.
//   - ErrNilWriter: a TextRenderer without an output writer.
package render
