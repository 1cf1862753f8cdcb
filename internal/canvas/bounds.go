package canvas

import (
	"iter"
	"math"

	"inkwell/internal/geom"
	"inkwell/internal/ink"
)

// DefaultCanvasSize is the size a fresh canvas starts at and returns to on
// reset.
var DefaultCanvasSize = geom.Size{Width: 16384, Height: 16384}

// Growth is a signed canvas expansion. A negative X grows the left edge,
// a positive X the right edge; likewise Y for top and bottom.
type Growth struct {
	X, Y float64
}

func (g Growth) IsZero() bool { return g.X == 0 && g.Y == 0 }

// Bounds tracks the canvas size and the viewport into it, and grows the
// canvas when ink gets close to an edge.
type Bounds struct {
	defaultSize geom.Size

	width, height         float64
	viewWidth, viewHeight float64
	offsetX, offsetY      float64

	notify func(EventKind)
}

// NewBounds returns a canvas of the given default size with an empty
// viewport at the origin.
func NewBounds(defaultSize geom.Size) *Bounds {
	return &Bounds{
		defaultSize: defaultSize,
		width:       defaultSize.Width,
		height:      defaultSize.Height,
	}
}

func (b *Bounds) DefaultSize() geom.Size { return b.defaultSize }

// Size is the canvas size.
func (b *Bounds) Size() geom.Size { return geom.Size{Width: b.width, Height: b.height} }

// Offset is the top-left corner of the viewport in canvas space.
func (b *Bounds) Offset() geom.Point { return geom.Pt(b.offsetX, b.offsetY) }

// ViewSize is the viewport size in canvas units.
func (b *Bounds) ViewSize() geom.Size { return geom.Size{Width: b.viewWidth, Height: b.viewHeight} }

// Viewport is the visible part of the canvas.
func (b *Bounds) Viewport() geom.Rect {
	return geom.R(b.offsetX, b.offsetY, b.viewWidth, b.viewHeight)
}

func (b *Bounds) fire(k EventKind) {
	if b.notify != nil {
		b.notify(k)
	}
}

func (b *Bounds) setSize(w, h float64) {
	if w == b.width && h == b.height {
		return
	}
	b.width, b.height = w, h
	b.fire(CanvasResized)
}

// SetOffset moves the viewport.
func (b *Bounds) SetOffset(x, y float64) {
	if x == b.offsetX && y == b.offsetY {
		return
	}
	b.offsetX, b.offsetY = x, y
	b.fire(ViewportChanged)
}

// SetViewSize sets the viewport size in canvas units.
func (b *Bounds) SetViewSize(w, h float64) {
	if w == b.viewWidth && h == b.viewHeight {
		return
	}
	b.viewWidth, b.viewHeight = w, h
	b.fire(ViewportChanged)
}

// Growth decides how far the canvas must grow after ink covering
// strokeBounds was drawn. Each axis grows by one viewport extent when the
// ink is closer than that to the near edge, or else to the far edge.
func (b *Bounds) Growth(strokeBounds geom.Rect) Growth {
	var g Growth
	if strokeBounds.IsEmpty() {
		return g
	}
	vw, vh := b.viewWidth, b.viewHeight
	if strokeBounds.Left() < vw {
		g.X = -vw
	} else if b.width-strokeBounds.Right() < vw {
		g.X = vw
	}
	if strokeBounds.Top() < vh {
		g.Y = -vh
	} else if b.height-strokeBounds.Bottom() < vh {
		g.Y = vh
	}
	return g
}

// Apply grows the canvas by g, or shrinks it back when undoing. Growth at
// the left or top moves the canvas origin, so the viewport offset and
// every stroke in strokes are shifted to stay where they appear.
func (b *Bounds) Apply(g Growth, undoing bool, strokes iter.Seq[*ink.Stroke]) {
	ex, ey := g.X, g.Y
	if undoing {
		b.setSize(b.width-math.Abs(ex), b.height-math.Abs(ey))
	} else {
		b.setSize(b.width+math.Abs(ex), b.height+math.Abs(ey))
	}

	var dx, dy float64
	rebase := false
	offX, offY := b.offsetX, b.offsetY
	if ex < 0 {
		if undoing {
			ex = -ex
		}
		offX -= ex
		dx = -ex
		rebase = true
	}
	if ey < 0 {
		if undoing {
			ey = -ey
		}
		offY -= ey
		dy = -ey
		rebase = true
	}
	b.SetOffset(offX, offY)

	if !rebase || strokes == nil {
		return
	}
	n := 0
	for s := range strokes {
		s.Rebase(dx, dy)
		n++
	}
	Logger().Debug("canvas rebased", "dx", dx, "dy", dy, "strokes", n, "undoing", undoing)
}

// Reset returns to the default size with the viewport centred.
func (b *Bounds) Reset() {
	b.setSize(b.defaultSize.Width, b.defaultSize.Height)
	b.MoveToCenter()
}

// MoveToCenter centres the viewport on the canvas.
func (b *Bounds) MoveToCenter() {
	b.SetOffset((b.width-b.viewWidth)/2, (b.height-b.viewHeight)/2)
}

// Snapshot captures the offset and canvas size as one rect:
// {offsetX, offsetY, canvasWidth, canvasHeight}.
func (b *Bounds) Snapshot() geom.Rect {
	return geom.R(b.offsetX, b.offsetY, b.width, b.height)
}

// RestoreSnapshot is the inverse of Snapshot.
func (b *Bounds) RestoreSnapshot(r geom.Rect) {
	b.setSize(r.Width(), r.Height())
	b.SetOffset(r.Left(), r.Top())
}

// ClampOffset keeps the viewport inside the canvas where it fits.
func (b *Bounds) ClampOffset(x, y float64) (float64, float64) {
	clamp := func(v, hi float64) float64 {
		return math.Max(0, math.Min(v, math.Max(0, hi)))
	}
	return clamp(x, b.width-b.viewWidth), clamp(y, b.height-b.viewHeight)
}
