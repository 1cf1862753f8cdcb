package ink

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"inkwell/internal/geom"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// line returns a zero-width stroke through the given coordinate pairs.
func line(xy ...float64) *Stroke {
	var pts []Point
	for i := 0; i+1 < len(xy); i += 2 {
		pts = append(pts, Point{Position: geom.Pt(xy[i], xy[i+1]), Pressure: 0.5, Timestamp: uint64(i)})
	}
	attrs := DefaultAttributes()
	attrs.Size = geom.Size{}
	return New(attrs, pts...)
}

func ids(strokes []*Stroke) []string {
	out := make([]string, len(strokes))
	for i, s := range strokes {
		out[i] = s.ID().String()
	}
	return out
}
