package render

import (
	"errors"
	"math"

	"github.com/astrolite/lightcurve/transit"
)

// Sentinel errors for frame construction and rendering.
var (
	// ErrEmptyFrame indicates a frame without samples.
	ErrEmptyFrame = errors.New("render: frame has no samples")
	// ErrLengthMismatch indicates timestamps and flux of differing lengths.
	ErrLengthMismatch = errors.New("render: timestamps and flux lengths differ")
	// ErrNilWriter indicates a TextRenderer without an output writer.
	ErrNilWriter = errors.New("render: output writer is nil")
)

// DefaultTransitThreshold is the flux level below which a sample is
// considered in-transit when highlighting the dip.
const DefaultTransitThreshold = 0.995

// Frame is one injection pass prepared for display.
type Frame struct {
	// X holds the horizontal positions: period units, or phase in [0, 1)
	// when the frame was built phase-folded.
	X []float64

	// Flux holds the vertical positions (normalized flux).
	Flux []float64

	// Lower and Upper are the dip bounds reported by the pass.
	Lower, Upper int

	// Overflow reports that the dip wrapped around the buffer ends.
	Overflow bool

	// PhaseFold records whether X was folded modulo one period.
	PhaseFold bool

	// Period is the rendering counter of the pass (legend bookkeeping).
	Period int

	// Name labels the curve in the title.
	Name string
}

// Renderer draws one Frame on some backend.
type Renderer interface {
	Render(Frame) error
}

// NewFrame prepares a transit.Result for display. With phaseFold set the
// time axis is re-expressed modulo one period, so repeated transits
// overlay at the same horizontal position.
//
// The Result's slices are referenced, not copied: Results already hand
// out independent snapshots.
//
// Complexity: O(samples).
func NewFrame(res transit.Result, phaseFold bool, name string) Frame {
	x := res.Timestamps
	if phaseFold {
		x = make([]float64, len(res.Timestamps))
		for i, ts := range res.Timestamps {
			x[i] = math.Mod(ts, 1)
		}
	}

	return Frame{
		X:         x,
		Flux:      res.Flux,
		Lower:     res.Lower,
		Upper:     res.Upper,
		Overflow:  res.Overflow,
		PhaseFold: phaseFold,
		Period:    res.Period,
		Name:      name,
	}
}

// XLabel returns the semantic label of the horizontal axis:
// "Phase" when folded, "Period" otherwise.
func (f Frame) XLabel() string {
	if f.PhaseFold {
		return "Phase"
	}

	return "Period"
}

// YLabel returns the vertical axis label.
func (f Frame) YLabel() string { return "Normalized Flux" }

// Title returns the chart title, including the curve name when set.
func (f Frame) Title() string {
	if f.Name == "" {
		return "Generated Light Curve"
	}

	return "Generated Light Curve of " + f.Name
}

// TransitIndices returns the sample indices whose flux sits below
// threshold, letting a backend highlight the dip after any circular
// shift. Pass DefaultTransitThreshold for the conventional cut.
//
// Complexity: O(samples).
func (f Frame) TransitIndices(threshold float64) []int {
	var idx []int
	for i, v := range f.Flux {
		if v < threshold {
			idx = append(idx, i)
		}
	}

	return idx
}

// validate rejects malformed frames before a backend touches them.
func (f Frame) validate() error {
	if len(f.Flux) == 0 {
		return ErrEmptyFrame
	}
	if len(f.X) != len(f.Flux) {
		return ErrLengthMismatch
	}

	return nil
}
