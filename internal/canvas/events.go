package canvas

import (
	"slices"

	"inkwell/internal/geom"
)

// EventKind says what part of the session state changed.
type EventKind int

const (
	// CanvasResized fires when the canvas width or height changes.
	CanvasResized EventKind = iota
	// ViewportChanged fires when the viewport offset or size changes.
	ViewportChanged
	// StrokesChanged fires after any edit, undo, redo or restore that may
	// have changed what is drawn.
	StrokesChanged
)

func (k EventKind) String() string {
	switch k {
	case CanvasResized:
		return "CanvasResized"
	case ViewportChanged:
		return "ViewportChanged"
	case StrokesChanged:
		return "StrokesChanged"
	}
	return "EventKind(?)"
}

// Event carries the session state at the time of a change.
type Event struct {
	Kind     EventKind
	Canvas   geom.Size
	Viewport geom.Rect
}

type subscriber struct {
	id int
	fn func(Event)
}

type observers struct {
	next int
	subs []subscriber
}

func (o *observers) add(fn func(Event)) (cancel func()) {
	o.next++
	id := o.next
	o.subs = append(o.subs, subscriber{id, fn})
	return func() {
		o.subs = slices.DeleteFunc(o.subs, func(s subscriber) bool { return s.id == id })
	}
}

func (o *observers) emit(e Event) {
	for _, s := range slices.Clone(o.subs) {
		s.fn(e)
	}
}
