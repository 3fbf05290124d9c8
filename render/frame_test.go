package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/astrolite/lightcurve/render"
	"github.com/astrolite/lightcurve/transit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TextRenderer must satisfy the backend contract.
var _ render.Renderer = render.TextRenderer{}

// TestNewFrame_PhaseFold verifies the time axis folds modulo one period
// and the axis label follows the fold flag.
func TestNewFrame_PhaseFold(t *testing.T) {
	res := transit.Result{
		Timestamps: []float64{0, 0.5, 1.0, 1.5},
		Flux:       []float64{1, 1, 1, 1},
	}

	folded := render.NewFrame(res, true, "")
	assert.Equal(t, []float64{0, 0.5, 0, 0.5}, folded.X, "x folds modulo one period")
	assert.Equal(t, "Phase", folded.XLabel())
	assert.True(t, folded.PhaseFold)

	flat := render.NewFrame(res, false, "")
	assert.Equal(t, res.Timestamps, flat.X, "unfolded x is the raw timeline")
	assert.Equal(t, "Period", flat.XLabel())
}

// TestFrame_Title covers the named and unnamed title forms.
func TestFrame_Title(t *testing.T) {
	named := render.NewFrame(transit.Result{}, false, "WASP-12b")
	assert.Equal(t, "Generated Light Curve of WASP-12b", named.Title())

	unnamed := render.NewFrame(transit.Result{}, false, "")
	assert.Equal(t, "Generated Light Curve", unnamed.Title())
	assert.Equal(t, "Normalized Flux", unnamed.YLabel())
}

// TestFrame_TransitIndices verifies the sub-threshold highlight set.
func TestFrame_TransitIndices(t *testing.T) {
	f := render.Frame{
		X:    []float64{0, 0.1, 0.2, 0.3},
		Flux: []float64{1.0, 0.98, 0.99, 1.0},
	}

	assert.Equal(t, []int{1, 2}, f.TransitIndices(render.DefaultTransitThreshold))
	assert.Nil(t, f.TransitIndices(0.9), "nothing below a deep threshold")
}

// TestTextRenderer_Validation covers writer and frame shape errors.
func TestTextRenderer_Validation(t *testing.T) {
	frame := render.Frame{X: []float64{0}, Flux: []float64{1}}

	err := render.TextRenderer{}.Render(frame)
	assert.ErrorIs(t, err, render.ErrNilWriter, "missing writer")

	var buf bytes.Buffer
	r := render.TextRenderer{W: &buf}

	err = r.Render(render.Frame{})
	assert.ErrorIs(t, err, render.ErrEmptyFrame, "no samples")

	err = r.Render(render.Frame{X: []float64{0, 1}, Flux: []float64{1}})
	assert.ErrorIs(t, err, render.ErrLengthMismatch, "ragged frame")
}

// TestTextRenderer_ChartShape pins the exact chart for a tiny frame:
// ten columns, two rows, dip in the middle.
func TestTextRenderer_ChartShape(t *testing.T) {
	x := make([]float64, 10)
	flux := make([]float64, 10)
	for i := range x {
		x[i] = float64(i) / 10
		flux[i] = 1
	}
	flux[4], flux[5] = 0.98, 0.98

	var buf bytes.Buffer
	r := render.TextRenderer{W: &buf, Width: 10, Height: 2}
	require.NoError(t, r.Render(render.Frame{X: x, Flux: flux, Name: "demo"}))

	want := strings.Join([]string{
		"Generated Light Curve of demo",
		"****  ****",
		"    **",
		"x: Period",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

// TestTextRenderer_PhaseFoldedPipeline is the end-to-end smoke test:
// synthesize, inject, fold, render. Must not error and must label the
// axis as phase.
func TestTextRenderer_PhaseFoldedPipeline(t *testing.T) {
	opts := transit.DefaultOptions()
	opts.Placement = transit.Periodic
	opts.Depth = 0.05
	opts.Duration = 0.1
	opts.PeriodCount = 3
	opts.Seed = 29
	opts.Name = "fold-check"

	s, err := transit.NewSeries(opts)
	require.NoError(t, err)
	res, err := s.Inject()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = render.TextRenderer{W: &buf}.Render(render.NewFrame(res, true, s.Name()))

	require.NoError(t, err, "phase-folded rendering must not fail")
	assert.Contains(t, buf.String(), "x: Phase", "axis labeled as phase when folded")
	assert.Contains(t, buf.String(), "fold-check", "curve name reaches the title")
}
