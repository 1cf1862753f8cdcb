package render

import (
	"fmt"
	"image/color"
	"io"
	"iter"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"inkwell/internal/geom"
	"inkwell/internal/ink"
)

// Options control raster output.
type Options struct {
	// Background fills the image before any ink. Nil means white.
	Background color.Color
	// Caption is drawn in the bottom left corner when not empty.
	Caption     string
	CaptionSize float64
}

var captionFont = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(goregular.TTF)
})

// PNG renders the strokes inside viewport at the given scale and writes
// the result as a PNG image. The image is viewport.Size() * scale pixels.
func PNG(w io.Writer, viewport geom.Rect, scale float64, strokes []*ink.Stroke, opts Options) error {
	dc, err := newContext(viewport.Size().Scale(scale), opts.Background)
	if err != nil {
		return err
	}
	drawStrokes(dc, projection{viewport.Origin(), scale}, visible(viewport, strokes))

	if opts.Caption != "" {
		f, err := captionFont()
		if err != nil {
			return fmt.Errorf("failed to parse font: %w", err)
		}
		size := opts.CaptionSize
		if size <= 0 {
			size = 12
		}
		dc.SetFontFace(truetype.NewFace(f, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		}))
		dc.SetColor(color.Gray{0x60})
		dc.DrawString(opts.Caption, size/2, float64(dc.Height())-size/2)
	}
	return dc.EncodePNG(w)
}

// Minimap renders the whole canvas scaled down so its longer side is edge
// pixels, with the viewport outlined.
func Minimap(w io.Writer, canvas geom.Size, viewport geom.Rect, strokes []*ink.Stroke, edge int) error {
	if canvas.Width <= 0 || canvas.Height <= 0 || edge <= 0 {
		return ErrEmptyRegion
	}
	scale := math.Min(float64(edge)/canvas.Width, float64(edge)/canvas.Height)
	dc, err := newContext(canvas.Scale(scale), nil)
	if err != nil {
		return err
	}
	whole := geom.R(0, 0, canvas.Width, canvas.Height)
	drawStrokes(dc, projection{scale: scale}, visible(whole, strokes))

	v := viewport.Scale(scale)
	dc.SetColor(color.NRGBA{0x30, 0x60, 0xd0, 0xff})
	dc.SetLineWidth(1)
	dc.DrawRectangle(v.Left(), v.Top(), v.Width(), v.Height())
	dc.Stroke()
	return dc.EncodePNG(w)
}

func newContext(size geom.Size, bg color.Color) (*gg.Context, error) {
	w, h := int(math.Ceil(size.Width)), int(math.Ceil(size.Height))
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyRegion
	}
	if bg == nil {
		bg = color.White
	}
	dc := gg.NewContext(w, h)
	dc.SetColor(bg)
	dc.Clear()
	return dc, nil
}

func drawStrokes(dc *gg.Context, proj projection, strokes iter.Seq[*ink.Stroke]) {
	for s := range strokes {
		a := s.Attributes()
		lw := penWidth(s, proj.scale)
		dc.SetColor(inkColor(a))
		dc.SetLineWidth(lw)
		dc.SetLineJoin(gg.LineJoinRound)
		if a.PenTip == ink.TipRectangle {
			dc.SetLineCap(gg.LineCapSquare)
		} else {
			dc.SetLineCap(gg.LineCapRound)
		}

		started, moved := false, false
		var first geom.Point
		for p := range s.Positions() {
			q := proj.apply(p)
			if !started {
				first, started = q, true
				dc.MoveTo(q.X, q.Y)
				continue
			}
			moved = moved || q != first
			dc.LineTo(q.X, q.Y)
		}
		// A stroke that never left its first point is a dot.
		if !moved {
			dc.ClearPath()
			dc.DrawCircle(first.X, first.Y, lw/2)
			dc.Fill()
			continue
		}
		dc.Stroke()
	}
}
