// Package ink holds freehand strokes and the ordered store the canvas
// keeps them in.
package ink

import (
	"errors"
	"fmt"
	"image/color"
	"iter"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"

	"inkwell/internal/geom"
)

// ErrNoPoints is returned when a stroke is built from an empty point list.
var ErrNoPoints = errors.New("ink: stroke has no points")

// Point is a single captured ink sample.
type Point struct {
	Position  geom.Point `json:"position"`
	Pressure  float32    `json:"pressure"`
	TiltX     float32    `json:"tiltX"`
	TiltY     float32    `json:"tiltY"`
	Timestamp uint64     `json:"timestamp"`
}

// PenTip is the nib shape used to render a stroke.
type PenTip string

const (
	TipCircle    PenTip = "circle"
	TipRectangle PenTip = "rectangle"
)

// Attributes are the rendering properties of a stroke. The canvas never
// interprets them beyond the pen size, which feeds into Bounds.
type Attributes struct {
	Color       color.NRGBA       `json:"color"`
	Size        geom.Size         `json:"size"`
	PenTip      PenTip            `json:"penTip,omitempty"`
	Highlighter bool              `json:"drawAsHighlighter,omitempty"`
	FitToCurve  bool              `json:"fitToCurve,omitempty"`
	Extra       map[string]string `json:"extra,omitempty"`
}

// DefaultAttributes is a 2 unit black round pen.
func DefaultAttributes() Attributes {
	return Attributes{
		Color:      color.NRGBA{A: 0xff},
		Size:       geom.Size{Width: 2, Height: 2},
		PenTip:     TipCircle,
		FitToCurve: true,
	}
}

// Clone returns a copy that shares no map with a.
func (a Attributes) Clone() Attributes {
	a.Extra = maps.Clone(a.Extra)
	return a
}

// Scaled returns a copy with the pen size multiplied by s.
func (a Attributes) Scaled(s float64) Attributes {
	a = a.Clone()
	a.Size = a.Size.Scale(s)
	return a
}

// Stroke is one freehand line. Its points and attributes never change
// after creation; only the transform is rewritten, when the canvas origin
// moves.
//
// Strokes are compared by identity. Two strokes with equal points are
// still different strokes.
type Stroke struct {
	id        uuid.UUID
	points    []Point
	transform geom.Affine
	attrs     Attributes
	startedAt *time.Time
	duration  *time.Duration
}

// Record is the plain-data form of a stroke, used to build one and to
// serialize it.
type Record struct {
	ID         uuid.UUID
	Points     []Point
	Transform  geom.Affine
	Attributes Attributes
	StartedAt  *time.Time
	Duration   *time.Duration
}

// Build creates a stroke from r. A nil ID gets a fresh one and a zero
// transform becomes the identity.
func Build(r Record) (*Stroke, error) {
	if len(r.Points) == 0 {
		return nil, ErrNoPoints
	}
	id := r.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	tr := r.Transform
	if tr.IsZero() {
		tr = geom.Identity
	}
	s := &Stroke{
		id:        id,
		points:    slices.Clone(r.Points),
		transform: tr,
		attrs:     r.Attributes.Clone(),
	}
	if r.StartedAt != nil {
		t := *r.StartedAt
		s.startedAt = &t
	}
	if r.Duration != nil {
		d := *r.Duration
		s.duration = &d
	}
	return s, nil
}

// New builds a stroke with an identity transform. It panics on an empty
// point list and exists for callers that construct strokes from literals.
func New(attrs Attributes, points ...Point) *Stroke {
	s, err := Build(Record{Points: points, Attributes: attrs})
	if err != nil {
		panic(err)
	}
	return s
}

// Record returns a deep copy of s as plain data.
func (s *Stroke) Record() Record {
	r := Record{
		ID:         s.id,
		Points:     slices.Clone(s.points),
		Transform:  s.transform,
		Attributes: s.attrs.Clone(),
	}
	if s.startedAt != nil {
		t := *s.startedAt
		r.StartedAt = &t
	}
	if s.duration != nil {
		d := *s.duration
		r.Duration = &d
	}
	return r
}

func (s *Stroke) ID() uuid.UUID { return s.id }

// Len returns the number of points.
func (s *Stroke) Len() int { return len(s.points) }

// Points returns a copy of the raw, untransformed points.
func (s *Stroke) Points() []Point { return slices.Clone(s.points) }

// Positions yields every point position after the stroke transform.
func (s *Stroke) Positions() iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		for _, p := range s.points {
			if !yield(s.transform.Apply(p.Position)) {
				return
			}
		}
	}
}

func (s *Stroke) Transform() geom.Affine { return s.transform }

func (s *Stroke) SetTransform(a geom.Affine) { s.transform = a }

// Rebase composes the transform with a translation by (dx, dy).
func (s *Stroke) Rebase(dx, dy float64) {
	s.transform = s.transform.ThenTranslate(dx, dy)
}

func (s *Stroke) Attributes() Attributes { return s.attrs.Clone() }

func (s *Stroke) StartedAt() (time.Time, bool) {
	if s.startedAt == nil {
		return time.Time{}, false
	}
	return *s.startedAt, true
}

func (s *Stroke) Duration() (time.Duration, bool) {
	if s.duration == nil {
		return 0, false
	}
	return *s.duration, true
}

// Bounds is the box around the transformed points, grown by half the pen
// size on each side.
func (s *Stroke) Bounds() geom.Rect {
	r := geom.Empty
	for p := range s.Positions() {
		r = r.UnionPoint(p)
	}
	k := s.transform.ScaleFactor()
	return r.Inflate(s.attrs.Size.Width*k/2, s.attrs.Size.Height*k/2)
}

// Translate returns a new stroke whose raw points are moved by (dx, dy)
// and then scaled by scale. The transform, attributes and timing are
// carried over. The result has its own identity.
func (s *Stroke) Translate(dx, dy, scale float64) *Stroke {
	r := s.Record()
	r.ID = uuid.Nil
	for i := range r.Points {
		r.Points[i].Position = r.Points[i].Position.Translate(dx, dy).Scale(scale)
	}
	out, _ := Build(r)
	return out
}

func (s *Stroke) String() string {
	return fmt.Sprintf("Stroke(%s, %d points, %v)", s.id, len(s.points), s.Bounds())
}

// UnionBounds returns the union of the bounds of every stroke.
func UnionBounds(strokes []*Stroke) geom.Rect {
	r := geom.Empty
	for _, s := range strokes {
		r = r.Union(s.Bounds())
	}
	return r
}
