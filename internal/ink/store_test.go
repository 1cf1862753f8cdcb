package ink

import (
	"testing"

	"inkwell/internal/geom"
)

func TestStoreAddRemoveByIdentity(t *testing.T) {
	s := NewStore()
	a, b, c := line(0, 0, 1, 1), line(0, 0, 1, 1), line(5, 5, 6, 6)
	if n := s.Add(a, b, c, a, nil); n != 3 {
		t.Errorf("Add added %d, want 3", n)
	}
	diff(t, ids([]*Stroke{a, b, c}), ids(s.All()))

	// b is value-equal to a but must survive a's removal.
	if n := s.Remove(a); n != 1 {
		t.Errorf("Remove removed %d, want 1", n)
	}
	diff(t, ids([]*Stroke{b, c}), ids(s.All()))

	if n := s.Remove(a, nil); n != 0 {
		t.Errorf("removing an absent stroke removed %d", n)
	}
	if s.Contains(a) || !s.Contains(b) {
		t.Error("Contains disagrees with content")
	}
}

func TestStoreKeepsOrderOnRemove(t *testing.T) {
	s := NewStore()
	strokes := []*Stroke{line(0, 0), line(1, 1), line(2, 2), line(3, 3)}
	s.Add(strokes...)
	s.Remove(strokes[1], strokes[3])
	diff(t, ids([]*Stroke{strokes[0], strokes[2]}), ids(s.All()))
}

func TestStoreReplaceAndClear(t *testing.T) {
	s := NewStore()
	s.Add(line(0, 0))
	fresh := []*Stroke{line(1, 1), line(2, 2)}
	s.Replace(fresh)
	diff(t, ids(fresh), ids(s.All()))
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() = %d after Clear", s.Len())
	}
	if s.Add(fresh[0]) != 1 {
		t.Error("could not re-add a stroke after Clear")
	}
}

func TestStoreIntersecting(t *testing.T) {
	s := NewStore()
	a, b := line(0, 0, 10, 10), line(100, 100, 110, 110)
	s.Add(a, b)
	diff(t, ids([]*Stroke{a}), ids(s.Intersecting(geom.R(5, 5, 20, 20))))
	diff(t, ids([]*Stroke{a, b}), ids(s.Intersecting(geom.R(0, 0, 200, 200))))
}

func TestFindNearestPrefersNewest(t *testing.T) {
	s := NewStore()
	older := line(0, 0, 50, 50)
	newer := line(0, 0, 50, 50)
	s.Add(older, newer)
	if got := s.FindNearest(geom.Pt(1, 1), 5); got != newer {
		t.Errorf("FindNearest = %v, want newer stroke", got)
	}
}

func TestFindNearestOverlapping(t *testing.T) {
	s := NewStore()
	// Both strokes' boxes contain (20, 20), but only the later one has a
	// point near it.
	earlier := line(0, 0, 40, 0, 40, 40)
	later := line(0, 40, 20, 21, 40, 0)
	s.Add(earlier, later)

	p := geom.Pt(20, 20)
	if got := s.FindNearest(p, 5); got != later {
		t.Fatalf("FindNearest = %v, want later stroke", got)
	}
	s.Remove(later)
	if got := s.FindNearest(p, 5); got != nil {
		t.Errorf("FindNearest after erase = %v, want nil", got)
	}
	if got := s.FindNearest(geom.Pt(40, 38), 5); got != earlier {
		t.Errorf("FindNearest near earlier stroke = %v, want earlier", got)
	}
}

func TestFindNearestBoxTest(t *testing.T) {
	s := NewStore()
	st := line(0, 0, 100, 100)
	s.Add(st)
	// (4.9, 4.9) is within 5 of (0, 0) on both axes.
	if got := s.FindNearest(geom.Pt(4.9, 4.9), 5); got != st {
		t.Error("Chebyshev box test should accept a diagonal offset within tolerance")
	}
	// Tolerance is strict.
	if got := s.FindNearest(geom.Pt(5, 0), 5); got != nil {
		t.Error("point exactly at tolerance should not match")
	}
	// Outside the stroke's bounds, nothing matches even within tolerance.
	if got := s.FindNearest(geom.Pt(-1, -1), 5); got != nil {
		t.Error("point outside bounds should not match")
	}
}

func TestFindNearestUsesTransform(t *testing.T) {
	s := NewStore()
	st := line(0, 0, 10, 0)
	s.Add(st)
	st.Rebase(1000, 0)
	if got := s.FindNearest(geom.Pt(1000, 0), 1); got != st {
		t.Error("FindNearest ignored the stroke transform")
	}
	if got := s.FindNearest(geom.Pt(0, 0), 1); got != nil {
		t.Error("FindNearest matched the untransformed position")
	}
}
