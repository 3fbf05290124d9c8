package render

import (
	"fmt"
	"io"
	"strings"
)

// Default TextRenderer geometry.
const (
	// DefaultWidth is the chart width in columns.
	DefaultWidth = 72
	// DefaultHeight is the chart height in rows.
	DefaultHeight = 10
)

// TextRenderer draws a Frame as a compact ASCII chart: samples are
// binned into columns, each column keeps its minimum flux (so the dip
// always wins the bin), and the column minima are plotted top-down.
// Phase-folded frames overlay naturally, since folding maps repeated
// transits into the same columns.
//
// The zero value is not usable; set W. Width/Height fall back to the
// package defaults when left at zero.
type TextRenderer struct {
	W      io.Writer
	Width  int
	Height int
}

// Render writes the chart: a title line, Height plot rows, and an axis
// footer naming the horizontal dimension ("Phase" or "Period").
//
// Errors: ErrNilWriter, ErrEmptyFrame, ErrLengthMismatch, plus any
// writer error.
//
// Complexity: O(samples + Width·Height).
func (r TextRenderer) Render(f Frame) error {
	if r.W == nil {
		return ErrNilWriter
	}
	if err := f.validate(); err != nil {
		return err
	}

	width := r.Width
	if width <= 0 {
		width = DefaultWidth
	}
	height := r.Height
	if height <= 0 {
		height = DefaultHeight
	}

	// Horizontal extent of the frame.
	xMin, xMax := f.X[0], f.X[0]
	for _, x := range f.X {
		if x < xMin {
			xMin = x
		}
		if x > xMax {
			xMax = x
		}
	}
	span := xMax - xMin
	if span == 0 {
		span = 1
	}

	// Column minima: the transit dip dominates its bin.
	cols := make([]float64, width)
	filled := make([]bool, width)
	for i, x := range f.X {
		c := int((x - xMin) / span * float64(width))
		if c >= width {
			c = width - 1
		}
		if !filled[c] || f.Flux[i] < cols[c] {
			cols[c], filled[c] = f.Flux[i], true
		}
	}

	// Vertical extent of the plotted minima.
	var yMin, yMax float64
	var seeded bool
	for c := range cols {
		if !filled[c] {
			continue
		}
		if !seeded {
			yMin, yMax, seeded = cols[c], cols[c], true
			continue
		}
		if cols[c] < yMin {
			yMin = cols[c]
		}
		if cols[c] > yMax {
			yMax = cols[c]
		}
	}

	if _, err := fmt.Fprintln(r.W, f.Title()); err != nil {
		return err
	}

	rows := make([][]byte, height)
	for i := range rows {
		rows[i] = []byte(strings.Repeat(" ", width))
	}
	for c := range cols {
		if !filled[c] {
			continue
		}
		row := 0
		if yMax > yMin {
			row = int((yMax-cols[c])/(yMax-yMin)*float64(height-1) + 0.5)
		}
		rows[row][c] = '*'
	}
	for _, line := range rows {
		if _, err := fmt.Fprintln(r.W, strings.TrimRight(string(line), " ")); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(r.W, "x: %s\n", f.XLabel()); err != nil {
		return err
	}

	return nil
}
