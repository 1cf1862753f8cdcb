package ink

import (
	"iter"
	"math"
	"slices"

	"github.com/google/uuid"

	"inkwell/internal/geom"
)

// Store is the ordered set of live strokes. Order is insertion order,
// which is also paint order: later strokes are drawn on top.
type Store struct {
	strokes []*Stroke
	ids     map[uuid.UUID]struct{}
}

func NewStore() *Store {
	return &Store{ids: make(map[uuid.UUID]struct{})}
}

// Add appends strokes in order, skipping nil strokes and strokes already
// present. It returns how many were added.
func (s *Store) Add(strokes ...*Stroke) int {
	n := 0
	for _, st := range strokes {
		if st == nil {
			continue
		}
		if _, ok := s.ids[st.id]; ok {
			continue
		}
		s.ids[st.id] = struct{}{}
		s.strokes = append(s.strokes, st)
		n++
	}
	return n
}

// Remove deletes strokes by identity. Absent strokes are ignored. The
// relative order of the remaining strokes is kept. It returns how many
// were removed.
func (s *Store) Remove(strokes ...*Stroke) int {
	drop := make(map[uuid.UUID]struct{}, len(strokes))
	for _, st := range strokes {
		if st == nil {
			continue
		}
		if _, ok := s.ids[st.id]; ok {
			drop[st.id] = struct{}{}
		}
	}
	if len(drop) == 0 {
		return 0
	}
	s.strokes = slices.DeleteFunc(s.strokes, func(st *Stroke) bool {
		_, ok := drop[st.id]
		return ok
	})
	for id := range drop {
		delete(s.ids, id)
	}
	return len(drop)
}

// All returns the strokes in insertion order. The slice is a copy.
func (s *Store) All() []*Stroke { return slices.Clone(s.strokes) }

// Strokes yields the strokes in insertion order.
func (s *Store) Strokes() iter.Seq[*Stroke] { return slices.Values(s.strokes) }

func (s *Store) Len() int { return len(s.strokes) }

func (s *Store) Contains(st *Stroke) bool {
	if st == nil {
		return false
	}
	_, ok := s.ids[st.id]
	return ok
}

// Clear removes every stroke.
func (s *Store) Clear() {
	s.strokes = nil
	clear(s.ids)
}

// Replace swaps the whole content for strokes, as on restore.
func (s *Store) Replace(strokes []*Stroke) {
	s.Clear()
	s.Add(strokes...)
}

// Bounds is the union of every stroke's bounds.
func (s *Store) Bounds() geom.Rect { return UnionBounds(s.strokes) }

// Intersecting returns the strokes whose bounds intersect r, in paint
// order.
func (s *Store) Intersecting(r geom.Rect) []*Stroke {
	var out []*Stroke
	for _, st := range s.strokes {
		if st.Bounds().Intersects(r) {
			out = append(out, st)
		}
	}
	return out
}

// FindNearest returns the topmost stroke with a point within tolerance of
// p on both axes, or nil. Strokes are tried newest first and only when
// their bounds contain p; the first qualifying point wins.
func (s *Store) FindNearest(p geom.Point, tolerance float64) *Stroke {
	for _, st := range slices.Backward(s.strokes) {
		if !st.Bounds().Contains(p) {
			continue
		}
		for q := range st.Positions() {
			if math.Abs(p.X-q.X) < tolerance && math.Abs(p.Y-q.Y) < tolerance {
				return st
			}
		}
	}
	return nil
}
