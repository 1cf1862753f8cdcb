package ink

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"inkwell/internal/geom"
)

func TestBuildRejectsEmpty(t *testing.T) {
	if _, err := Build(Record{}); !errors.Is(err, ErrNoPoints) {
		t.Errorf("Build(empty) error = %v, want ErrNoPoints", err)
	}
}

func TestBuildDefaults(t *testing.T) {
	s, err := Build(Record{Points: []Point{{Position: geom.Pt(1, 1)}}})
	if err != nil {
		t.Fatal(err)
	}
	if s.ID() == uuid.Nil {
		t.Error("stroke got nil ID")
	}
	if !s.Transform().IsIdentity() {
		t.Errorf("Transform() = %v, want identity", s.Transform())
	}
	if _, ok := s.StartedAt(); ok {
		t.Error("StartedAt reported present")
	}
	if _, ok := s.Duration(); ok {
		t.Error("Duration reported present")
	}
}

func TestRecordRoundTrip(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	d := 1500 * time.Millisecond
	attrs := DefaultAttributes()
	attrs.Extra = map[string]string{"layer": "sketch"}
	r := Record{
		ID:         uuid.New(),
		Points:     []Point{{Position: geom.Pt(1, 2), Pressure: 0.7, TiltX: 3, TiltY: 4, Timestamp: 9}},
		Transform:  geom.Translate(5, 6),
		Attributes: attrs,
		StartedAt:  &start,
		Duration:   &d,
	}
	s, err := Build(r)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, r, s.Record())

	// The stroke must not share state with the record it was built from.
	r.Points[0].Pressure = 0
	r.Attributes.Extra["layer"] = "changed"
	if s.Points()[0].Pressure != 0.7 || s.Attributes().Extra["layer"] != "sketch" {
		t.Error("stroke aliases its input record")
	}
}

func TestBoundsFollowTransform(t *testing.T) {
	s := line(10, 10, 20, 30)
	diff(t, geom.R(10, 10, 10, 20), s.Bounds())
	s.Rebase(100, 0)
	diff(t, geom.R(110, 10, 10, 20), s.Bounds())
}

func TestBoundsIncludePen(t *testing.T) {
	attrs := DefaultAttributes()
	attrs.Size = geom.Size{Width: 4, Height: 2}
	s := New(attrs, Point{Position: geom.Pt(10, 10)})
	diff(t, geom.R(8, 9, 4, 2), s.Bounds())
}

func TestTranslate(t *testing.T) {
	s := line(0, 0, 10, 10)
	s.SetTransform(geom.Translate(1, 1))
	got := s.Translate(100, 50, 0.5)
	if got.ID() == s.ID() {
		t.Error("Translate kept the source identity")
	}
	diff(t, geom.Pt(50, 25), got.Points()[0].Position)
	diff(t, geom.Pt(55, 30), got.Points()[1].Position)
	diff(t, s.Transform(), got.Transform())
	diff(t, geom.Pt(0, 0), s.Points()[0].Position)
}

func TestUnionBounds(t *testing.T) {
	got := UnionBounds([]*Stroke{line(0, 0, 5, 5), line(10, 10, 20, 20)})
	diff(t, geom.R(0, 0, 20, 20), got)
	if !UnionBounds(nil).IsEmpty() {
		t.Error("bounds of no strokes should be empty")
	}
}

func TestBuilder(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := NewBuilder(DefaultAttributes())
	b.now = func() time.Time { return now }

	if _, err := b.End(); !errors.Is(err, ErrNoPoints) {
		t.Errorf("End() without Begin error = %v, want ErrNoPoints", err)
	}

	b.Begin(geom.Pt(0, 0), 0.5)
	b.Append(geom.Pt(0, 0), 0.5) // duplicate position, dropped
	b.Append(geom.Pt(1, 0), 0.5)
	now = now.Add(10 * time.Microsecond)
	b.Append(geom.Pt(2, 0), 0.5)
	if !b.Active() {
		t.Fatal("builder not active during a stroke")
	}
	s, err := b.End()
	if err != nil {
		t.Fatal(err)
	}
	if b.Active() {
		t.Error("builder still active after End")
	}
	pts := s.Points()
	if len(pts) != 3 {
		t.Fatalf("got %d points, want 3", len(pts))
	}
	for i := 1; i < len(pts); i++ {
		if pts[i].Timestamp <= pts[i-1].Timestamp {
			t.Errorf("timestamps not increasing: %d then %d", pts[i-1].Timestamp, pts[i].Timestamp)
		}
	}
	if d, ok := s.Duration(); !ok || d != 10*time.Microsecond {
		t.Errorf("Duration() = %v, %v", d, ok)
	}
}

func TestBuilderPreview(t *testing.T) {
	b := NewBuilder(DefaultAttributes())
	if b.Preview() != nil {
		t.Error("Preview() without a stroke in progress is not nil")
	}
	b.Begin(geom.Pt(1, 1), 0.5)
	b.Append(geom.Pt(5, 1), 0.5)
	p := b.Preview()
	if p == nil || p.Len() != 2 {
		t.Fatalf("Preview() = %v, want two points", p)
	}
	b.Append(geom.Pt(9, 1), 0.5)
	if p.Len() != 2 {
		t.Error("preview shares points with the builder")
	}
	b.Cancel()
	if b.Preview() != nil {
		t.Error("Preview() after Cancel is not nil")
	}
}
