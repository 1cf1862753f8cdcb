// Package render draws strokes for export and for the terminal view.
//
// Every renderer takes a region of canvas space and a list of strokes in
// paint order; strokes outside the region are skipped.
package render

import (
	"errors"
	"image/color"
	"iter"

	"inkwell/internal/geom"
	"inkwell/internal/ink"
)

// ErrEmptyRegion is returned when asked to render a region with no area.
var ErrEmptyRegion = errors.New("render: empty region")

// projection maps canvas space into output space: subtract the region
// origin, then scale.
type projection struct {
	origin geom.Point
	scale  float64
}

func (p projection) apply(q geom.Point) geom.Point {
	return q.Translate(-p.origin.X, -p.origin.Y).Scale(p.scale)
}

// visible yields the strokes whose bounds touch region.
func visible(region geom.Rect, strokes []*ink.Stroke) iter.Seq[*ink.Stroke] {
	return func(yield func(*ink.Stroke) bool) {
		for _, s := range strokes {
			if s.Bounds().Intersects(region) && !yield(s) {
				return
			}
		}
	}
}

// penWidth is the on-screen width of a stroke's pen, at least one output
// unit so zero-size pens stay visible.
func penWidth(s *ink.Stroke, scale float64) float64 {
	a := s.Attributes()
	w := max(a.Size.Width, a.Size.Height) * s.Transform().ScaleFactor() * scale
	return max(w, 1)
}

// inkColor is the stroke color, half transparent for highlighters.
func inkColor(a ink.Attributes) color.NRGBA {
	c := a.Color
	if a.Highlighter {
		c.A /= 2
	}
	return c
}
