package ink

import (
	"time"

	"inkwell/internal/geom"
)

// Builder collects points from an input device into a stroke. Timestamps
// are microseconds since Begin and always strictly increase.
type Builder struct {
	attrs  Attributes
	now    func() time.Time
	start  time.Time
	points []Point
	last   uint64
	active bool
}

// NewBuilder returns a builder that stamps new strokes with attrs.
func NewBuilder(attrs Attributes) *Builder {
	return &Builder{attrs: attrs, now: time.Now}
}

func (b *Builder) SetAttributes(attrs Attributes) { b.attrs = attrs }

func (b *Builder) Attributes() Attributes { return b.attrs.Clone() }

// Active reports whether a stroke is in progress.
func (b *Builder) Active() bool { return b.active }

// Begin starts a new stroke at p, dropping any stroke in progress.
func (b *Builder) Begin(p geom.Point, pressure float32) {
	b.start = b.now()
	b.points = b.points[:0]
	b.last = 0
	b.active = true
	b.points = append(b.points, Point{Position: p, Pressure: pressure})
}

// Append adds a point to the stroke in progress. It is ignored when no
// stroke is active or p repeats the previous position.
func (b *Builder) Append(p geom.Point, pressure float32) {
	if !b.active {
		return
	}
	if n := len(b.points); n > 0 && b.points[n-1].Position == p {
		return
	}
	ts := uint64(b.now().Sub(b.start).Microseconds())
	if ts <= b.last {
		ts = b.last + 1
	}
	b.last = ts
	b.points = append(b.points, Point{Position: p, Pressure: pressure, Timestamp: ts})
}

// End finishes the stroke in progress.
func (b *Builder) End() (*Stroke, error) {
	if !b.active {
		return nil, ErrNoPoints
	}
	b.active = false
	start := b.start
	d := b.now().Sub(start)
	return Build(Record{
		Points:     b.points,
		Transform:  geom.Identity,
		Attributes: b.attrs,
		StartedAt:  &start,
		Duration:   &d,
	})
}

// Cancel drops the stroke in progress.
func (b *Builder) Cancel() {
	b.active = false
	b.points = b.points[:0]
}

// Preview returns the stroke in progress as it stands, or nil when no
// stroke is active. Each call builds a fresh stroke.
func (b *Builder) Preview() *Stroke {
	if !b.active {
		return nil
	}
	s, err := Build(Record{Points: b.points, Transform: geom.Identity, Attributes: b.attrs})
	if err != nil {
		return nil
	}
	return s
}
