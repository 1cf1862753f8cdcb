package canvas

import (
	"fmt"

	"inkwell/internal/geom"
	"inkwell/internal/ink"
)

// Action is one reversible edit. The set of implementations is closed:
// DrawAction, EraseAction, ResizeAction and DefaultSizeAction.
type Action interface {
	action()
}

// DrawAction records strokes appended to the store.
type DrawAction struct {
	Strokes []*ink.Stroke
}

// EraseAction records strokes removed from the store.
type EraseAction struct {
	Strokes []*ink.Stroke
}

// ResizeAction records a canvas growth. The signs say which edges grew.
type ResizeAction struct {
	ExtendX, ExtendY float64
}

// DefaultSizeAction records a reset to the default canvas. Viewport holds
// the state before the reset as {offsetX, offsetY, canvasWidth,
// canvasHeight}.
type DefaultSizeAction struct {
	Viewport geom.Rect
}

func (DrawAction) action()        {}
func (EraseAction) action()       {}
func (ResizeAction) action()      {}
func (DefaultSizeAction) action() {}

func (a DrawAction) String() string  { return fmt.Sprintf("Draw(%d)", len(a.Strokes)) }
func (a EraseAction) String() string { return fmt.Sprintf("Erase(%d)", len(a.Strokes)) }
func (a ResizeAction) String() string {
	return fmt.Sprintf("Resize(%g, %g)", a.ExtendX, a.ExtendY)
}
func (a DefaultSizeAction) String() string { return fmt.Sprintf("DefaultSize(%v)", a.Viewport) }

// Composite is a group of actions undone and redone as one history entry.
type Composite []Action
