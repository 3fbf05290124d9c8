// Package transit defines options, placement policies, and sentinel
// errors for the transit subpackage of github.com/astrolite/lightcurve.
package transit

import "errors"

// Sentinel errors for Series construction and injection.
var (
	// ErrSampleCount indicates SamplesPerPeriod < 1.
	ErrSampleCount = errors.New("transit: samples per period must be positive")
	// ErrPeriodCount indicates PeriodCount < 1.
	ErrPeriodCount = errors.New("transit: period count must be positive")
	// ErrNegativeNoise indicates NoiseSigma < 0.
	ErrNegativeNoise = errors.New("transit: noise sigma must be non-negative")
	// ErrDepthRange indicates a depth outside the open interval (0, 1).
	ErrDepthRange = errors.New("transit: depth must lie in (0, 1)")
	// ErrDurationRange indicates a duration fraction outside the open interval (0, 1).
	ErrDurationRange = errors.New("transit: duration must lie in (0, 1) of one period")
	// ErrRampOverflow indicates the Periodic ingress/egress slopes would
	// extend past a period block for the configured duration.
	ErrRampOverflow = errors.New("transit: ingress/egress ramp does not fit inside one period")
	// ErrPolicy indicates an unrecognized PlacementPolicy value.
	ErrPolicy = errors.New("transit: unknown placement policy")
)

// PlacementPolicy selects how Inject places transit windows.
//
//   - Windowed — a single hard-edged dip anchored at the series' phase
//     offset; windows crossing either buffer end are split and applied
//     at the opposite end (wraparound). Advance moves the anchor one
//     period forward between calls. No slope smoothing.
//
//   - Periodic — one dip centered in the middle of every period block,
//     with linear ingress/egress slopes of one tenth the duration, then
//     a circular shift of the whole signal to the phase offset. Each
//     call is a full rendering pass restarted from the baseline.
type PlacementPolicy int

const (
	// Windowed mode: single anchored window, wraparound-aware, hard edges.
	Windowed PlacementPolicy = iota

	// Periodic mode: per-period centered dips, sloped edges, circular shift.
	Periodic
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultSamplesPerPeriod is the number of timesteps in one period.
	DefaultSamplesPerPeriod = 100

	// DefaultNoiseSigma is the Gaussian sigma of the baseline noise.
	DefaultNoiseSigma = 0.001

	// DefaultPeriodCount is the number of period blocks in the buffer.
	DefaultPeriodCount = 1

	// RandomDepthMin / RandomDepthMax bound the uniform draw used when
	// Depth is left at the 0 sentinel.
	RandomDepthMin = 0.01
	RandomDepthMax = 0.20

	// RandomDurationMinFrac / RandomDurationMaxFrac bound (as fractions
	// of one period) the integer sample-count draw used when Duration is
	// left at the 0 sentinel.
	RandomDurationMinFrac = 0.02
	RandomDurationMaxFrac = 0.15

	// slopeDivisor sets the Periodic ingress/egress ramp length to
	// duration/slopeDivisor samples.
	slopeDivisor = 10

	// periodicJitterSigma is the Gaussian sigma of the depth drift applied
	// between consecutive periods of a Periodic pass.
	periodicJitterSigma = 1e-4

	// windowedJitterSigma is the Gaussian sigma of the depth perturbation
	// applied by Advance between Windowed passes.
	windowedJitterSigma = 1e-3
)

// Options configures Series construction.
//
// Fields:
//   - SamplesPerPeriod — timesteps per period; must be positive.
//   - Depth            — fractional flux drop in (0,1). The 0 sentinel
//     draws uniformly from [RandomDepthMin, RandomDepthMax).
//   - Duration         — in-transit fraction of one period in (0,1).
//     The 0 sentinel draws an integer sample count from
//     [RandomDurationMinFrac·N, RandomDurationMaxFrac·N).
//   - NoiseSigma       — baseline Gaussian sigma; must be ≥ 0.
//   - PeriodCount      — period blocks in the buffer; must be positive.
//   - Placement        — Windowed or Periodic (see PlacementPolicy).
//   - Seed             — deterministic RNG seed; 0 selects a fixed
//     default seed, so the zero value is still reproducible.
//   - Name             — free-form label forwarded to renderers.
//
// Example:
//
//	opts := transit.DefaultOptions()
//	opts.Placement = transit.Periodic
//	opts.PeriodCount = 3
//	s, err := transit.NewSeries(opts)
type Options struct {
	SamplesPerPeriod int
	Depth            float64
	Duration         float64
	NoiseSigma       float64
	PeriodCount      int
	Placement        PlacementPolicy
	Seed             int64
	Name             string
}

// DefaultOptions returns the documented defaults: 100 samples per period,
// randomized depth and duration (0 sentinels), noise sigma 0.001, one
// period, Windowed placement, fixed default seed.
func DefaultOptions() Options {
	return Options{
		SamplesPerPeriod: DefaultSamplesPerPeriod,
		NoiseSigma:       DefaultNoiseSigma,
		PeriodCount:      DefaultPeriodCount,
		Placement:        Windowed,
	}
}

// Result is the outcome of one injection pass.
type Result struct {
	// Flux is the working signal after the pass (an independent copy;
	// later passes do not mutate it).
	Flux []float64

	// Timestamps holds sample positions in period units:
	// Timestamps[i] = i / SamplesPerPeriod.
	Timestamps []float64

	// Lower and Upper are the post-adjustment dip bounds. For a
	// wrapped Windowed pass they delimit the gap between the two
	// applied sub-ranges (see Overflow); for a Periodic pass they are
	// the final period's window before the circular phase shift.
	Lower, Upper int

	// Overflow reports that the window crossed a buffer end and was
	// split (Windowed only; always false for Periodic).
	Overflow bool

	// Period is the rendering counter value when the pass began;
	// renderers use it for axis labeling only.
	Period int
}
