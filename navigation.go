package main

import "inkwell/internal/geom"

func (m *model) handleNavigation(key string, speed int) {
	dx, dy := 0, 0
	switch key {
	case "h", "left", "H", "shift+left":
		dx = -speed
	case "l", "right", "L", "shift+right":
		dx = speed
	case "k", "up", "K", "shift+up":
		dy = -speed
	case "j", "down", "J", "shift+down":
		dy = speed
	default:
		return
	}
	m.session.Pan(float64(dx*cellWidth), float64(dy*cellHeight))
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 16
	default:
		return 4
	}
}

// zoom scales the view around center, given in screen units.
func (m *model) zoom(factor float64, center geom.Point) {
	before := m.session.Scale()
	m.session.Zoom(factor, center)
	if m.session.Scale() == before {
		m.errorMessage = "Zoom limit reached"
	}
}

func (m *model) screenCenter() geom.Point {
	return geom.Pt(float64(m.canvasCols()*cellWidth)/2, float64(m.canvasRows()*cellHeight)/2)
}

// cellCenter maps a terminal cell to the screen point at its middle.
func cellCenter(col, row int) geom.Point {
	return geom.Pt((float64(col)+0.5)*cellWidth, (float64(row)+0.5)*cellHeight)
}

func (m model) canvasCols() int { return max(m.width, 1) }

// canvasRows leaves the last line for the status bar.
func (m model) canvasRows() int { return max(m.height-1, 1) }
