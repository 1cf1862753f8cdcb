package canvas

import (
	"fmt"
	"iter"

	"github.com/google/uuid"

	"inkwell/internal/ink"
)

// History is the undo and redo stacks over a stroke store and canvas
// bounds. Each entry is a Composite that is replayed as a whole, in its
// original order, in both directions.
type History struct {
	store  *ink.Store
	bounds *Bounds

	undoStack []Composite
	redoStack []Composite
}

func NewHistory(store *ink.Store, bounds *Bounds) *History {
	return &History{store: store, bounds: bounds}
}

// Record pushes a new entry and drops everything that could be redone.
// An empty composite is ignored.
func (h *History) Record(actions ...Action) {
	if len(actions) == 0 {
		return
	}
	h.undoStack = append(h.undoStack, Composite(actions))
	h.redoStack = h.redoStack[:0]
}

// Undo reverts the latest entry. It reports false when there is nothing
// to undo.
func (h *History) Undo() bool {
	if len(h.undoStack) == 0 {
		return false
	}
	last := len(h.undoStack) - 1
	entry := h.undoStack[last]
	h.undoStack = h.undoStack[:last]
	h.redoStack = append(h.redoStack, entry)

	Logger().Debug("undo", "actions", fmt.Sprint(entry))
	for _, a := range entry {
		h.apply(a, true)
	}
	return true
}

// Redo reapplies the latest undone entry. It reports false when there is
// nothing to redo.
func (h *History) Redo() bool {
	if len(h.redoStack) == 0 {
		return false
	}
	last := len(h.redoStack) - 1
	entry := h.redoStack[last]
	h.redoStack = h.redoStack[:last]
	h.undoStack = append(h.undoStack, entry)

	Logger().Debug("redo", "actions", fmt.Sprint(entry))
	for _, a := range entry {
		h.apply(a, false)
	}
	return true
}

func (h *History) apply(a Action, undoing bool) {
	switch a := a.(type) {
	case DrawAction:
		if undoing {
			h.store.Remove(a.Strokes...)
		} else {
			h.store.Add(a.Strokes...)
		}
	case EraseAction:
		if undoing {
			h.store.Add(a.Strokes...)
		} else {
			h.store.Remove(a.Strokes...)
		}
	case ResizeAction:
		h.bounds.Apply(Growth{X: a.ExtendX, Y: a.ExtendY}, undoing, h.tracked())
	case DefaultSizeAction:
		if undoing {
			h.bounds.RestoreSnapshot(a.Viewport)
		} else {
			h.bounds.Reset()
		}
	default:
		panic(fmt.Sprintf("canvas: unknown action %T in history", a))
	}
}

func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }
func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

// Depth returns the number of undoable and redoable entries.
func (h *History) Depth() (undo, redo int) { return len(h.undoStack), len(h.redoStack) }

// Clear forgets all history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// tracked yields every stroke the session knows about, each once: the
// live strokes followed by strokes only referenced from history. All of
// them live in canvas space, so all of them follow the origin when the
// canvas grows to the left or top.
func (h *History) tracked() iter.Seq[*ink.Stroke] {
	return func(yield func(*ink.Stroke) bool) {
		seen := make(map[uuid.UUID]struct{}, h.store.Len())
		visit := func(s *ink.Stroke) bool {
			if _, ok := seen[s.ID()]; ok {
				return true
			}
			seen[s.ID()] = struct{}{}
			return yield(s)
		}
		for s := range h.store.Strokes() {
			if !visit(s) {
				return
			}
		}
		for _, stack := range [][]Composite{h.undoStack, h.redoStack} {
			for _, entry := range stack {
				for _, a := range entry {
					var strokes []*ink.Stroke
					switch a := a.(type) {
					case DrawAction:
						strokes = a.Strokes
					case EraseAction:
						strokes = a.Strokes
					}
					for _, s := range strokes {
						if !visit(s) {
							return
						}
					}
				}
			}
		}
	}
}
