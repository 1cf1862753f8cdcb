// Package geom adapts honnef.co/go/curve to the canvas: points, sizes,
// rectangles and affine transforms in canvas units, with the JSON shapes
// the document format uses.
package geom

import (
	"encoding/json"
	"fmt"
	"math"

	"honnef.co/go/curve"
)

// Point is a position in canvas space.
type Point curve.Point

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point(curve.Pt(x, y)) }

// Translate returns p moved by (dx, dy).
func (p Point) Translate(dx, dy float64) Point {
	return Point(curve.Point(p).Translate(curve.Vec(dx, dy)))
}

// Scale returns p with both coordinates multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point(curve.Point(p).Transform(curve.Scale(s, s)))
}

func (p Point) String() string { return curve.Point(p).String() }

type pointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(pointJSON(p))
}

func (p *Point) UnmarshalJSON(b []byte) error {
	var v pointJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*p = Point(v)
	return nil
}

// Size is a width and height.
type Size curve.Size

func (s Size) Scale(f float64) Size { return Size(curve.Size(s).Scale(f)) }

func (s Size) String() string { return curve.Size(s).String() }

type sizeJSON struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (s Size) MarshalJSON() ([]byte, error) {
	return json.Marshal(sizeJSON(s))
}

func (s *Size) UnmarshalJSON(b []byte) error {
	var v sizeJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = Size(v)
	return nil
}

// Rect is an axis-aligned rectangle spanning (X0, Y0) to (X1, Y1).
// A rect whose far edge lies before its near edge is empty; see Empty.
type Rect curve.Rect

// Empty is the identity for Union. It contains nothing and intersects
// nothing.
var Empty = Rect{X0: math.Inf(1), Y0: math.Inf(1), X1: math.Inf(-1), Y1: math.Inf(-1)}

// R returns the rect with top-left corner (x, y) and size w×h. Negative
// sizes give an empty rect.
func R(x, y, w, h float64) Rect { return Rect{X0: x, Y0: y, X1: x + w, Y1: y + h} }

// RectFromPoints returns the smallest rect containing a and b.
func RectFromPoints(a, b Point) Rect {
	return Rect(curve.NewRectFromPoints(curve.Point(a), curve.Point(b)))
}

func (r Rect) IsEmpty() bool       { return r.X1 < r.X0 || r.Y1 < r.Y0 }
func (r Rect) Left() float64       { return r.X0 }
func (r Rect) Top() float64        { return r.Y0 }
func (r Rect) Right() float64      { return r.X1 }
func (r Rect) Bottom() float64     { return r.Y1 }
func (r Rect) Width() float64      { return curve.Rect(r).Width() }
func (r Rect) Height() float64     { return curve.Rect(r).Height() }
func (r Rect) Origin() Point       { return Point(curve.Rect(r).Origin()) }
func (r Rect) Size() Size          { return Size(curve.Rect(r).Size()) }
func (r Rect) asCurve() curve.Rect { return curve.Rect(r) }

// Contains reports whether p lies inside r. Unlike curve.Rect, the right
// and bottom edges are inclusive.
func (r Rect) Contains(p Point) bool {
	return !r.IsEmpty() && p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

// Union returns the smallest rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	switch {
	case r.IsEmpty():
		return o
	case o.IsEmpty():
		return r
	}
	return Rect(r.asCurve().Union(o.asCurve()))
}

// UnionPoint grows r to include p.
func (r Rect) UnionPoint(p Point) Rect {
	if r.IsEmpty() {
		return Rect{X0: p.X, Y0: p.Y, X1: p.X, Y1: p.Y}
	}
	return Rect(r.asCurve().UnionPoint(curve.Point(p)))
}

// Intersect returns the overlap of r and o, or Empty if they are disjoint.
func (r Rect) Intersect(o Rect) Rect {
	if !r.Intersects(o) {
		return Empty
	}
	return Rect(r.asCurve().Intersect(o.asCurve()))
}

// Intersects reports whether r and o share at least one point.
func (r Rect) Intersects(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return max(r.X0, o.X0) <= min(r.X1, o.X1) && max(r.Y0, o.Y0) <= min(r.Y1, o.Y1)
}

// Inflate grows r by dx on the left and right and dy on the top and bottom.
func (r Rect) Inflate(dx, dy float64) Rect {
	if r.IsEmpty() {
		return r
	}
	return Rect(r.asCurve().Inflate(dx, dy))
}

func (r Rect) Translate(dx, dy float64) Rect {
	if r.IsEmpty() {
		return r
	}
	return Rect(r.asCurve().Translate(curve.Vec(dx, dy)))
}

// Scale multiplies origin and size by s.
func (r Rect) Scale(s float64) Rect {
	if r.IsEmpty() {
		return r
	}
	return Rect(r.asCurve().ScaleFromOrigin(s))
}

func (r Rect) String() string {
	if r.IsEmpty() {
		return "Rect(empty)"
	}
	return fmt.Sprintf("Rect(%g, %g, %v)", r.X0, r.Y0, r.Size())
}

type rectJSON struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) MarshalJSON() ([]byte, error) {
	return json.Marshal(rectJSON{X: r.X0, Y: r.Y0, Width: r.Width(), Height: r.Height()})
}

func (r *Rect) UnmarshalJSON(b []byte) error {
	var v rectJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*r = R(v.X, v.Y, v.Width, v.Height)
	return nil
}
