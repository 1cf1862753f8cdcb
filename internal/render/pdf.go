package render

import (
	"io"
	"math"

	"github.com/jung-kurt/gofpdf"

	"inkwell/internal/geom"
	"inkwell/internal/ink"
)

// A4 portrait, in millimetres.
const (
	pageWidth  = 210.0
	pageHeight = 297.0
	pageMargin = 10.0
)

// PDF writes the strokes inside viewport to a single A4 page, scaled to
// fit inside the margins.
func PDF(w io.Writer, viewport geom.Rect, strokes []*ink.Stroke) error {
	if viewport.IsEmpty() || viewport.Width() == 0 || viewport.Height() == 0 {
		return ErrEmptyRegion
	}
	k := math.Min((pageWidth-2*pageMargin)/viewport.Width(), (pageHeight-2*pageMargin)/viewport.Height())
	proj := projection{viewport.Origin(), k}

	p := gofpdf.New("P", "mm", "A4", "")
	p.SetCreator("inkwell", true)
	p.AddPage()
	p.SetLineJoinStyle("round")

	for s := range visible(viewport, strokes) {
		a := s.Attributes()
		c := inkColor(a)
		p.SetDrawColor(int(c.R), int(c.G), int(c.B))
		p.SetFillColor(int(c.R), int(c.G), int(c.B))
		p.SetAlpha(float64(c.A)/0xff, "Normal")
		lw := math.Max(penWidth(s, k), 0.1)
		p.SetLineWidth(lw)
		if a.PenTip == ink.TipRectangle {
			p.SetLineCapStyle("square")
		} else {
			p.SetLineCapStyle("round")
		}

		var prev geom.Point
		started, moved := false, false
		for q := range s.Positions() {
			q = proj.apply(q).Translate(pageMargin, pageMargin)
			if started {
				moved = moved || q != prev
				p.Line(prev.X, prev.Y, q.X, q.Y)
			}
			prev, started = q, true
		}
		if !moved {
			p.Circle(prev.X, prev.Y, lw/2, "F")
		}
	}
	p.SetAlpha(1, "Normal")
	return p.Output(w)
}
