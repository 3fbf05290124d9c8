package transit

import (
	"fmt"
	"math/rand"

	"github.com/astrolite/lightcurve/body"
)

// Series owns one synthetic light curve: an immutable noisy baseline,
// the transit geometry, and the mutable working signal the placement
// policies write into.
//
// Lifecycle: construct (baseline drawn immediately), then call Inject
// zero or more times; Windowed series interleave Inject with Advance to
// walk the window across period blocks. Reset restores the working
// signal from the pristine baseline.
//
// A Series is not goroutine-safe.
type Series struct {
	samplesPerPeriod int
	periodCount      int
	totalSamples     int

	depth           float64 // drifts under jitter; see Inject and Advance
	durationSamples float64
	noiseSigma      float64
	transitCenter   int
	currentPeriod   int

	placement PlacementPolicy
	name      string

	baseline []float64 // pristine; never written after construction
	flux     []float64 // working signal
	rng      *rand.Rand
}

// NewSeries constructs a theoretical Series from explicit or randomized
// transit parameters.
//
// Zero sentinels: Depth==0 draws uniformly from
// [RandomDepthMin, RandomDepthMax); Duration==0 draws an integer sample
// count from [RandomDurationMinFrac·N, RandomDurationMaxFrac·N).
// Explicit values are validated against (0, 1).
//
// Errors: ErrSampleCount, ErrPeriodCount, ErrNegativeNoise, ErrDepthRange,
// ErrDurationRange, ErrRampOverflow (Periodic only), ErrPolicy.
//
// Complexity: O(total samples) — the baseline is drawn here.
func NewSeries(opts Options) (*Series, error) {
	if err := validateCommon(opts); err != nil {
		return nil, err
	}

	n := opts.SamplesPerPeriod
	rng := rngFromSeed(opts.Seed)

	// Resolve depth: sentinel ⇒ uniform draw, explicit ⇒ range check.
	depth := opts.Depth
	if depth == 0 {
		depth = uniformRange(rng, RandomDepthMin, RandomDepthMax)
	} else if depth < 0 || depth >= 1 {
		return nil, fmt.Errorf("%w: got %v", ErrDepthRange, opts.Depth)
	}

	// Resolve duration: sentinel ⇒ integer sample-count draw, explicit ⇒
	// fraction of one period.
	var durationSamples float64
	if opts.Duration == 0 {
		lo := int(RandomDurationMinFrac * float64(n))
		hi := int(RandomDurationMaxFrac * float64(n))
		if hi <= lo {
			return nil, fmt.Errorf("%w: cannot randomize for %d samples per period",
				ErrDurationRange, n)
		}
		durationSamples = float64(lo + rng.Intn(hi-lo))
	} else if opts.Duration < 0 || opts.Duration >= 1 {
		return nil, fmt.Errorf("%w: got %v", ErrDurationRange, opts.Duration)
	} else {
		durationSamples = opts.Duration * float64(n)
	}

	return finishSeries(opts, depth, durationSamples, rng)
}

// NewSystemSeries constructs a Series whose depth and duration are
// derived from star–planet geometry (see Derive); Options.Depth and
// Options.Duration are ignored in favor of the derived values.
//
// Beyond the NewSeries validations, the derived depth and in-transit
// fraction must land in (0, 1): a planet at least as large as its star,
// or an orbit tight enough that the "fraction" reaches one, is rejected
// rather than synthesized into a nonsensical curve.
//
// Errors: everything NewSeries returns, plus unit errors from Derive.
func NewSystemSeries(p body.Planet, s body.Star, opts Options) (*Series, error) {
	if err := validateCommon(opts); err != nil {
		return nil, err
	}

	depth, durationFraction, err := Derive(p, s)
	if err != nil {
		return nil, err
	}
	if depth <= 0 || depth >= 1 {
		return nil, fmt.Errorf("%w: derived %v", ErrDepthRange, depth)
	}
	if durationFraction <= 0 || durationFraction >= 1 {
		return nil, fmt.Errorf("%w: derived fraction %v",
			ErrDurationRange, durationFraction)
	}

	rng := rngFromSeed(opts.Seed)
	durationSamples := durationFraction * float64(opts.SamplesPerPeriod)

	return finishSeries(opts, depth, durationSamples, rng)
}

// finishSeries runs the policy-specific geometry checks, draws the phase
// offset and the baseline, and assembles the Series.
func finishSeries(opts Options, depth, durationSamples float64, rng *rand.Rand) (*Series, error) {
	n := opts.SamplesPerPeriod

	if opts.Placement == Periodic {
		// The per-period window plus both ramps must fit inside one block;
		// out-of-range ramp indices are a configuration error, not a
		// runtime surprise.
		slope := int(durationSamples / slopeDivisor)
		lower := int(float64(n)/2 - durationSamples/2)
		upper := int(float64(n)/2 + durationSamples/2)
		if lower-slope < 0 || upper+slope > n {
			return nil, fmt.Errorf("%w: duration %v samples of %d per period",
				ErrRampOverflow, durationSamples, n)
		}
	}

	total := n * opts.PeriodCount
	s := &Series{
		samplesPerPeriod: n,
		periodCount:      opts.PeriodCount,
		totalSamples:     total,
		depth:            depth,
		durationSamples:  durationSamples,
		noiseSigma:       opts.NoiseSigma,
		transitCenter:    rng.Intn(n),
		placement:        opts.Placement,
		name:             opts.Name,
		baseline:         make([]float64, total),
		flux:             make([]float64, total),
		rng:              rng,
	}

	// Baseline: unit flux plus Gaussian noise, drawn once and kept
	// pristine so any pass can restart from it without redrawing.
	for i := range s.baseline {
		s.baseline[i] = 1 + gaussian(rng, 0, s.noiseSigma)
	}
	copy(s.flux, s.baseline)

	return s, nil
}

// validateCommon rejects malformed sizing/noise/policy configuration.
func validateCommon(opts Options) error {
	if opts.SamplesPerPeriod < 1 {
		return fmt.Errorf("%w: got %d", ErrSampleCount, opts.SamplesPerPeriod)
	}
	if opts.PeriodCount < 1 {
		return fmt.Errorf("%w: got %d", ErrPeriodCount, opts.PeriodCount)
	}
	if opts.NoiseSigma < 0 {
		return fmt.Errorf("%w: got %v", ErrNegativeNoise, opts.NoiseSigma)
	}
	if opts.Placement != Windowed && opts.Placement != Periodic {
		return fmt.Errorf("%w: got %d", ErrPolicy, opts.Placement)
	}

	return nil
}

// Depth returns the current fractional flux drop. It drifts under the
// per-period jitter of Periodic passes and under Advance.
func (s *Series) Depth() float64 { return s.depth }

// DurationSamples returns the dip width in samples.
func (s *Series) DurationSamples() float64 { return s.durationSamples }

// SamplesPerPeriod returns the number of timesteps in one period.
func (s *Series) SamplesPerPeriod() int { return s.samplesPerPeriod }

// PeriodCount returns the number of period blocks in the buffer.
func (s *Series) PeriodCount() int { return s.periodCount }

// TotalSamples returns samples-per-period × period-count.
func (s *Series) TotalSamples() int { return s.totalSamples }

// TransitCenter returns the current phase offset in samples. It is drawn
// once at construction and only moves forward, by exactly one period per
// Advance.
func (s *Series) TransitCenter() int { return s.transitCenter }

// Period returns the rendering counter: how many passes have completed.
func (s *Series) Period() int { return s.currentPeriod }

// Placement returns the configured placement policy.
func (s *Series) Placement() PlacementPolicy { return s.placement }

// Name returns the free-form label forwarded to renderers.
func (s *Series) Name() string { return s.name }

// Baseline returns an independent copy of the pristine baseline signal.
func (s *Series) Baseline() []float64 {
	out := make([]float64, len(s.baseline))
	copy(out, s.baseline)

	return out
}

// Reset restores the working signal from the pristine baseline and
// rewinds the rendering counter. Depth keeps any accumulated drift; the
// phase offset keeps its position.
func (s *Series) Reset() {
	copy(s.flux, s.baseline)
	s.currentPeriod = 0
}

// Advance perturbs the depth with Gaussian jitter and moves the phase
// offset forward by exactly one period, preparing the next Windowed pass
// to render a transit one period later.
func (s *Series) Advance() {
	s.depth = gaussian(s.rng, s.depth, windowedJitterSigma)
	s.transitCenter += s.samplesPerPeriod
}
