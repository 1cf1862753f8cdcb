package render

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"inkwell/internal/geom"
	"inkwell/internal/ink"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// pen returns a stroke through xy pairs drawn with a black pen of the
// given width.
func pen(width float64, xy ...float64) *ink.Stroke {
	return penColor(width, color.NRGBA{A: 0xff}, xy...)
}

func penColor(width float64, c color.NRGBA, xy ...float64) *ink.Stroke {
	attrs := ink.DefaultAttributes()
	attrs.Size = geom.Size{Width: width, Height: width}
	attrs.Color = c
	var pts []ink.Point
	for i := 0; i+1 < len(xy); i += 2 {
		pts = append(pts, ink.Point{Position: geom.Pt(xy[i], xy[i+1]), Pressure: 0.5, Timestamp: uint64(i)})
	}
	return ink.New(attrs, pts...)
}
