// Package canvas is the state engine behind an infinite drawing surface:
// the live strokes, the canvas bounds that grow as ink nears an edge, and
// the undo history over both.
//
// A Session is not safe for concurrent use. It expects to be driven from
// a single event loop.
package canvas

import (
	"context"
	"math"

	"inkwell/internal/geom"
	"inkwell/internal/ink"
	"inkwell/internal/persist"
)

// Session is the drawing surface facade. All coordinates passed to its
// canvas-space methods are in canvas units; the *Viewport variants take
// screen units relative to the visible area.
type Session struct {
	opts    options
	store   *ink.Store
	bounds  *Bounds
	history *History
	obs     observers

	scale  float64
	screen geom.Size
}

// New returns an empty session at the default canvas size.
func New(opt ...Option) *Session {
	o := defaultOptions()
	for _, fn := range opt {
		fn(&o)
	}
	s := &Session{
		opts:   o,
		store:  ink.NewStore(),
		bounds: NewBounds(o.defaultSize),
		scale:  1,
	}
	s.history = NewHistory(s.store, s.bounds)
	s.bounds.notify = s.emit
	return s
}

// Subscribe registers fn to be called after every state change. The
// returned function removes it.
func (s *Session) Subscribe(fn func(Event)) (cancel func()) {
	return s.obs.add(fn)
}

func (s *Session) emit(k EventKind) {
	s.obs.emit(Event{Kind: k, Canvas: s.bounds.Size(), Viewport: s.bounds.Viewport()})
}

// Draw adds strokes that are already in canvas space, grows the canvas if
// they come close to an edge, and records the whole thing as one undo
// entry. Strokes already on the canvas are ignored.
func (s *Session) Draw(strokes ...*ink.Stroke) {
	batch := make([]*ink.Stroke, 0, len(strokes))
	for _, st := range strokes {
		if st != nil && !s.store.Contains(st) {
			batch = append(batch, st)
		}
	}
	if len(batch) == 0 {
		return
	}
	s.store.Add(batch...)

	actions := []Action{DrawAction{Strokes: batch}}
	if g := s.bounds.Growth(ink.UnionBounds(batch)); !g.IsZero() {
		Logger().Debug("canvas growth", "x", g.X, "y", g.Y)
		actions = append(actions, ResizeAction{ExtendX: g.X, ExtendY: g.Y})
		s.bounds.Apply(g, false, s.history.tracked())
	}
	s.history.Record(actions...)
	s.emit(StrokesChanged)
}

// Erase removes the topmost stroke near p. It reports whether anything
// was removed.
func (s *Session) Erase(p geom.Point) bool {
	return s.erase(p, s.opts.eraseTolerance)
}

func (s *Session) erase(p geom.Point, tolerance float64) bool {
	st := s.store.FindNearest(p, tolerance)
	if st == nil {
		return false
	}
	s.history.Record(EraseAction{Strokes: []*ink.Stroke{st}})
	s.store.Remove(st)
	s.emit(StrokesChanged)
	return true
}

// ResetAll erases every stroke and returns the canvas to its default
// size, as a single undo entry.
func (s *Session) ResetAll() {
	s.history.Record(
		EraseAction{Strokes: s.store.All()},
		DefaultSizeAction{Viewport: s.bounds.Snapshot()},
	)
	s.bounds.Reset()
	s.store.Clear()
	s.emit(StrokesChanged)
}

// Undo reverts the latest edit. It reports false if there was none.
func (s *Session) Undo() bool {
	if !s.history.Undo() {
		return false
	}
	s.emit(StrokesChanged)
	return true
}

// Redo reapplies the latest undone edit. It reports false if there was
// none.
func (s *Session) Redo() bool {
	if !s.history.Redo() {
		return false
	}
	s.emit(StrokesChanged)
	return true
}

func (s *Session) CanUndo() bool { return s.history.CanUndo() }
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// Strokes returns the live strokes in paint order.
func (s *Session) Strokes() []*ink.Stroke { return s.store.All() }

// StrokesIn returns the strokes whose bounds touch region, in paint
// order. This is what a renderer needs for a damaged region.
func (s *Session) StrokesIn(region geom.Rect) []*ink.Stroke {
	return s.store.Intersecting(region)
}

// CanvasSize returns the current canvas size.
func (s *Session) CanvasSize() geom.Size { return s.bounds.Size() }

// Viewport returns the visible area in canvas space.
func (s *Session) Viewport() geom.Rect { return s.bounds.Viewport() }

// Scale returns the zoom factor: screen units per canvas unit.
func (s *Session) Scale() float64 { return s.scale }

// SetScreenSize tells the session how large the visible area is, in
// screen units.
func (s *Session) SetScreenSize(w, h float64) {
	s.screen = geom.Size{Width: w, Height: h}
	s.bounds.SetViewSize(w/s.scale, h/s.scale)
}

// SetOffset moves the viewport to (x, y) in canvas space.
func (s *Session) SetOffset(x, y float64) { s.bounds.SetOffset(x, y) }

// Pan scrolls the viewport by (dx, dy) screen units, keeping it inside
// the canvas.
func (s *Session) Pan(dx, dy float64) {
	off := s.bounds.Offset()
	x, y := s.bounds.ClampOffset(off.X+dx/s.scale, off.Y+dy/s.scale)
	s.bounds.SetOffset(x, y)
}

// Zoom multiplies the scale by factor, clamped to the configured range,
// keeping the canvas point under center (screen units) in place.
func (s *Session) Zoom(factor float64, center geom.Point) {
	next := math.Min(s.opts.maxScale, math.Max(s.opts.minScale, s.scale*factor))
	if next == s.scale {
		return
	}
	off := s.bounds.Offset()
	step := next / s.scale
	scaledX, scaledY := off.X*s.scale, off.Y*s.scale
	cx, cy := center.X+scaledX, center.Y+scaledY
	scaledX += cx*step - cx
	scaledY += cy*step - cy

	s.scale = next
	s.bounds.SetOffset(scaledX/next, scaledY/next)
	s.bounds.SetViewSize(s.screen.Width/next, s.screen.Height/next)
}

// MoveToCenter centres the viewport on the canvas.
func (s *Session) MoveToCenter() { s.bounds.MoveToCenter() }

// ScreenToCanvas maps a point relative to the visible area into canvas
// space.
func (s *Session) ScreenToCanvas(p geom.Point) geom.Point {
	off := s.bounds.Offset()
	return p.Translate(off.X*s.scale, off.Y*s.scale).Scale(1 / s.scale)
}

// DrawViewport is Draw for strokes captured in screen units relative to
// the visible area. The strokes are copied into canvas space first; the
// copies are what the canvas keeps.
func (s *Session) DrawViewport(strokes ...*ink.Stroke) {
	off := s.bounds.Offset()
	moved := make([]*ink.Stroke, 0, len(strokes))
	for _, st := range strokes {
		if st == nil {
			continue
		}
		moved = append(moved, st.Translate(off.X*s.scale, off.Y*s.scale, 1/s.scale))
	}
	s.Draw(moved...)
}

// EraseViewport is Erase for a point in screen units relative to the
// visible area. The erase tolerance is taken in screen units too, so the
// eraser covers the same on-screen area at every zoom.
func (s *Session) EraseViewport(p geom.Point) bool {
	return s.erase(s.ScreenToCanvas(p), s.opts.eraseTolerance/s.scale)
}

// Snapshot captures the persistent part of the session.
func (s *Session) Snapshot() persist.State {
	return persist.State{Strokes: s.store.All(), Viewport: s.bounds.Snapshot()}
}

// Load replaces the whole session state with st and forgets history.
func (s *Session) Load(st persist.State) {
	s.store.Replace(st.Strokes)
	s.bounds.RestoreSnapshot(st.Viewport)
	s.history.Clear()
	s.emit(StrokesChanged)
}

// Save writes the session to b.
func (s *Session) Save(ctx context.Context, b persist.Backend) error {
	data, err := persist.Marshal(s.Snapshot())
	if err != nil {
		return err
	}
	return b.Save(ctx, data)
}

// Restore loads the session from b. Missing or unreadable state leaves
// the session as it was and reports false.
func (s *Session) Restore(ctx context.Context, b persist.Backend) bool {
	data, err := b.Load(ctx)
	if err != nil {
		Logger().Warn("no state restored", "err", err)
		return false
	}
	st, err := persist.Unmarshal(data)
	if err != nil {
		Logger().Warn("discarding saved state", "err", err)
		return false
	}
	s.Load(st)
	return true
}
