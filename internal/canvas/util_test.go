package canvas

import (
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

// dot returns a zero-width single point stroke at (x, y).
func dot(x, y float64) *ink.Stroke {
	return line(x, y, x, y)
}

func line(x0, y0, x1, y1 float64) *ink.Stroke {
	attrs := ink.DefaultAttributes()
	attrs.Size = geom.Size{}
	return ink.New(attrs,
		ink.Point{Position: geom.Pt(x0, y0), Pressure: 0.5},
		ink.Point{Position: geom.Pt(x1, y1), Pressure: 0.5, Timestamp: 1},
	)
}

// at returns the effective position of a stroke's first point.
func at(s *ink.Stroke) geom.Point {
	for p := range s.Positions() {
		return p
	}
	return geom.Point{}
}

func ids(strokes []*ink.Stroke) []string {
	out := make([]string, len(strokes))
	for i, s := range strokes {
		out[i] = s.ID().String()
	}
	return out
}

// screenW and screenH give a 1000×800 viewport at scale 1.
const screenW, screenH = 1000, 800

func newSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	s := New(opts...)
	s.SetScreenSize(screenW, screenH)
	s.MoveToCenter()
	return s
}

// state captures everything undo and redo must restore.
type state struct {
	Canvas    geom.Size
	Viewport  geom.Rect
	IDs       []string
	Positions []geom.Point
}

func capture(s *Session) state {
	st := state{Canvas: s.CanvasSize(), Viewport: s.Viewport()}
	for _, k := range s.Strokes() {
		st.IDs = append(st.IDs, k.ID().String())
		st.Positions = append(st.Positions, at(k))
	}
	return st
}
