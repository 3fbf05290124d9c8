package transit

// Injector is the shared capability of both placement policies:
// run one rendering pass given current state, returning the dip bounds
// and the resulting signal.
type Injector interface {
	Inject() (Result, error)
}

// Inject — transit injection pass
//
// Description:
//
//	Mutates the working signal according to the configured placement
//	policy and returns the pass outcome.
//
//	Periodic:
//	 1. Reset the working signal from the pristine baseline.
//	 2. For each period block p, center a dip at N/2·(1+2p), subtract
//	    the depth over [lower, upper), and lay linear ingress/egress
//	    ramps of ⌊duration/10⌋ samples on both flanks.
//	 3. After each block, drift the depth by N(0, 1e-4) into the next.
//	 4. Circularly shift the whole signal by the phase offset, so the
//	    dips land at an arbitrary phase instead of the block middle.
//	 Ramp fit is guaranteed at construction (ErrRampOverflow), so the
//	 pass itself cannot index out of range.
//
//	Windowed:
//	 1. Anchor a window of the configured duration at the phase offset.
//	 2. A window crossing either buffer end is split and applied at the
//	    opposite end (wraparound); the reported bounds then delimit the
//	    gap between the two applied sub-ranges and Overflow is true.
//	 3. Edges are hard steps; no ramps. The working signal accumulates
//	    across calls — pair with Advance to render successive transits
//	    one period apart, or Reset to start over.
//
// Complexity: O(total samples) per pass.
//
// Errors: ErrPolicy for an unrecognized placement (unreachable on a
// Series built by this package).
func (s *Series) Inject() (Result, error) {
	switch s.placement {
	case Periodic:
		return s.injectPeriodic(), nil
	case Windowed:
		return s.injectWindowed(), nil
	default:
		return Result{}, ErrPolicy
	}
}

// injectPeriodic renders every period block in one pass: centered dip,
// sloped flanks, per-block depth drift, then a circular phase shift.
func (s *Series) injectPeriodic() Result {
	copy(s.flux, s.baseline)
	s.currentPeriod = 0

	n := float64(s.samplesPerPeriod)
	slope := int(s.durationSamples / slopeDivisor)

	var lower, upper int
	for s.currentPeriod < s.periodCount {
		center := n / 2 * float64(1+2*s.currentPeriod)
		lower = int(center - s.durationSamples/2)
		upper = int(center + s.durationSamples/2)

		for i := lower; i < upper; i++ {
			s.flux[i] -= s.depth
		}

		// Ingress: 1 → 1−depth across [lower−slope, lower).
		for i := lower - slope; i < lower; i++ {
			s.flux[i] = 1 - float64(i-(lower-slope))/float64(slope)*s.depth
		}
		// Egress: 1−depth → 1 across [upper, upper+slope).
		for i := upper; i < upper+slope; i++ {
			s.flux[i] = 1 + float64(i-(upper+slope))/float64(slope)*s.depth
		}

		s.currentPeriod++
		s.depth = gaussian(s.rng, s.depth, periodicJitterSigma)
	}

	rotateRight(s.flux, s.transitCenter)

	return Result{
		Flux:       s.fluxCopy(),
		Timestamps: s.timestamps(),
		Lower:      lower,
		Upper:      upper,
		Overflow:   false,
		Period:     0,
	}
}

// injectWindowed subtracts one hard-edged window anchored at the phase
// offset, splitting it across the buffer ends on wraparound.
func (s *Series) injectWindowed() Result {
	total := s.totalSamples
	lower := int(float64(s.transitCenter) - s.durationSamples/2)
	upper := int(float64(s.transitCenter) + s.durationSamples/2)

	var lb, ub int
	var overflow bool
	switch {
	case lower < 0:
		// Wraps past the start: head [0, upper) plus tail [total+lower, total).
		for i := 0; i < upper; i++ {
			s.flux[i] -= s.depth
		}
		for i := total + lower; i < total; i++ {
			s.flux[i] -= s.depth
		}
		lb, ub, overflow = upper, total+lower, true

	case upper > total:
		// Wraps past the end: head [0, upper−total) plus tail [lower, total).
		for i := 0; i < upper-total; i++ {
			s.flux[i] -= s.depth
		}
		for i := lower; i < total; i++ {
			s.flux[i] -= s.depth
		}
		lb, ub, overflow = upper-total, lower, true

	default:
		for i := lower; i < upper; i++ {
			s.flux[i] -= s.depth
		}
		lb, ub, overflow = lower, upper, false
	}

	// Keep the reported bounds one sample inside the buffer so renderers
	// can index a ±1 halo around them.
	if lb == 0 {
		lb = 1
	}
	if ub == total {
		ub = total - 1
	}

	period := s.currentPeriod
	s.currentPeriod++

	return Result{
		Flux:       s.fluxCopy(),
		Timestamps: s.timestamps(),
		Lower:      lb,
		Upper:      ub,
		Overflow:   overflow,
		Period:     period,
	}
}

// fluxCopy snapshots the working signal for the Result.
func (s *Series) fluxCopy() []float64 {
	out := make([]float64, len(s.flux))
	copy(out, s.flux)

	return out
}

// timestamps returns sample positions in period units: i / N.
func (s *Series) timestamps() []float64 {
	out := make([]float64, s.totalSamples)
	n := float64(s.samplesPerPeriod)
	for i := range out {
		out[i] = float64(i) / n
	}

	return out
}

// rotateRight circularly shifts a right by k samples in place
// (out[(i+k) mod n] = in[i]).
//
// Complexity: O(n) time, O(n) scratch.
func rotateRight(a []float64, k int) {
	n := len(a)
	if n == 0 {
		return
	}
	k %= n
	if k < 0 {
		k += n
	}
	if k == 0 {
		return
	}

	tmp := make([]float64, n)
	copy(tmp, a)
	for i := 0; i < n; i++ {
		a[(i+k)%n] = tmp[i]
	}
}
