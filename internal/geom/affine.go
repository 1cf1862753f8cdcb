package geom

import (
	"math"

	"honnef.co/go/curve"
)

// Affine is a 2D affine transform. Its coefficients (a, b, c, d, e, f)
// follow curve.Affine and map a point (x, y) to
// (a*x + c*y + e, b*x + d*y + f).
type Affine curve.Affine

// Identity leaves every point where it is.
var Identity = Affine(curve.Identity)

// Translate returns a transform that moves points by (dx, dy).
func Translate(dx, dy float64) Affine {
	return Affine(curve.Translate(curve.Vec(dx, dy)))
}

// Scale returns a transform that scales x by sx and y by sy about the
// origin.
func Scale(sx, sy float64) Affine {
	return Affine(curve.Scale(sx, sy))
}

// FromCoefficients is the inverse of Coefficients.
func FromCoefficients(n [6]float64) Affine {
	return Affine(curve.NewAffine(n))
}

func (a Affine) Coefficients() [6]float64 { return curve.Affine(a).Coefficients() }

// Then returns the transform that applies a first and b second.
func (a Affine) Then(b Affine) Affine {
	return Affine(curve.Affine(b).Mul(curve.Affine(a)))
}

func (a Affine) ThenTranslate(dx, dy float64) Affine {
	return Affine(curve.Affine(a).ThenTranslate(curve.Vec(dx, dy)))
}

func (a Affine) ThenScale(sx, sy float64) Affine {
	return Affine(curve.Affine(a).ThenScale(sx, sy))
}

// Apply maps p through a.
func (a Affine) Apply(p Point) Point {
	return Point(curve.Point(p).Transform(curve.Affine(a)))
}

// ApplyRect returns the bounding box of r's four corners after mapping
// them through a.
func (a Affine) ApplyRect(r Rect) Rect {
	if r.IsEmpty() {
		return r
	}
	return Rect(curve.Affine(a).TransformRectBoundingBox(r.asCurve()))
}

func (a Affine) Translation() (dx, dy float64) {
	return curve.Affine(a).Translation().Splat()
}

// ScaleFactor returns the mean of the x and y axis stretch. It is used to
// scale pen sizes alongside geometry.
func (a Affine) ScaleFactor() float64 {
	sx := math.Hypot(a.N0, a.N1)
	sy := math.Hypot(a.N2, a.N3)
	return (sx + sy) / 2
}

// IsFinite reports whether no coefficient is infinite or NaN.
func (a Affine) IsFinite() bool {
	return !curve.Affine(a).IsInf() && !curve.Affine(a).IsNaN()
}

func (a Affine) IsIdentity() bool { return a == Identity }

// IsZero reports whether every coefficient is zero, which is what an
// absent transform decodes to.
func (a Affine) IsZero() bool { return a == Affine{} }
