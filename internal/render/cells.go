package render

import (
	"image/color"
	"math"
	"strings"

	"inkwell/internal/geom"
	"inkwell/internal/ink"
)

// Cell is one character cell of a terminal raster.
type Cell struct {
	Set   bool
	Color color.NRGBA
}

// Grid is a row-major terminal raster.
type Grid struct {
	Cols, Rows int
	Cells      []Cell
}

// At returns the cell at (col, row). Out of range cells are unset.
func (g Grid) At(col, row int) Cell {
	if col < 0 || row < 0 || col >= g.Cols || row >= g.Rows {
		return Cell{}
	}
	return g.Cells[row*g.Cols+col]
}

func (g Grid) set(col, row int, c color.NRGBA) {
	if col < 0 || row < 0 || col >= g.Cols || row >= g.Rows {
		return
	}
	g.Cells[row*g.Cols+col] = Cell{Set: true, Color: c}
}

// String draws the grid with '#' for ink and '.' for paper, one line per
// row.
func (g Grid) String() string {
	var b strings.Builder
	for row := range g.Rows {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := range g.Cols {
			if g.At(col, row).Set {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// Cells rasterizes the strokes inside viewport onto a cols×rows grid.
// Later strokes paint over earlier ones.
func Cells(viewport geom.Rect, cols, rows int, strokes []*ink.Stroke) Grid {
	g := Grid{Cols: max(cols, 0), Rows: max(rows, 0)}
	g.Cells = make([]Cell, g.Cols*g.Rows)
	if g.Cols == 0 || g.Rows == 0 || viewport.IsEmpty() || viewport.Width() == 0 || viewport.Height() == 0 {
		return g
	}
	cw, ch := viewport.Width()/float64(cols), viewport.Height()/float64(rows)
	cell := func(p geom.Point) (int, int) {
		return int(math.Floor((p.X - viewport.Left()) / cw)), int(math.Floor((p.Y - viewport.Top()) / ch))
	}

	for s := range visible(viewport, strokes) {
		c := inkColor(s.Attributes())
		started := false
		var x0, y0 int
		for p := range s.Positions() {
			x1, y1 := cell(p)
			if !started {
				g.set(x1, y1, c)
				started = true
			} else {
				line(x0, y0, x1, y1, func(x, y int) { g.set(x, y, c) })
			}
			x0, y0 = x1, y1
		}
	}
	return g
}

// line calls plot for every cell on the segment from (x0, y0) to
// (x1, y1), endpoints included.
func line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
