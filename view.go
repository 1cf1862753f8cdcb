package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"inkwell/internal/geom"
	"inkwell/internal/ink"
	"inkwell/internal/render"
)

const (
	paperColor = lipgloss.Color("#f4f1ea")
	inkGlyph   = "█"
)

var (
	paperStyle   = lipgloss.NewStyle().Background(paperColor)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Background(lipgloss.Color("236")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Background(lipgloss.Color("236"))
)

func hexColor(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// grid rasterizes the visible strokes plus the stroke being drawn.
func (m model) grid() render.Grid {
	cols, rows := m.canvasCols(), m.canvasRows()
	vp := m.session.Viewport()
	g := render.Cells(vp, cols, rows, m.session.StrokesIn(vp))

	if preview := m.builder.Preview(); preview != nil {
		screen := geom.R(0, 0, float64(cols*cellWidth), float64(rows*cellHeight))
		over := render.Cells(screen, cols, rows, []*ink.Stroke{preview})
		for i, c := range over.Cells {
			if c.Set {
				g.Cells[i] = c
			}
		}
	}
	return g
}

func (m model) renderCanvas() string {
	g := m.grid()
	styles := map[color.NRGBA]lipgloss.Style{}
	inkStyle := func(c color.NRGBA) lipgloss.Style {
		s, ok := styles[c]
		if !ok {
			s = paperStyle.Foreground(hexColor(c))
			styles[c] = s
		}
		return s
	}

	var b strings.Builder
	for row := range g.Rows {
		if row > 0 {
			b.WriteString("\n")
		}
		// Runs of equal cells share one styled segment.
		start := 0
		for col := 1; col <= g.Cols; col++ {
			if col < g.Cols && g.At(col, row) == g.At(start, row) {
				continue
			}
			n := col - start
			if c := g.At(start, row); c.Set {
				b.WriteString(inkStyle(c.Color).Render(strings.Repeat(inkGlyph, n)))
			} else {
				b.WriteString(paperStyle.Render(strings.Repeat(" ", n)))
			}
			start = col
		}
	}
	return b.String()
}

func (m model) statusLine() string {
	var message string
	switch m.mode {
	case ModeConfirm:
		switch m.confirmAction {
		case ConfirmResetAll:
			message = "Erase everything? (y/n)"
		case ConfirmPasteState:
			message = "Replace the canvas with the clipboard state? History is lost. (y/n)"
		case ConfirmQuit:
			message = "Save before quitting? (y/n, any other key cancels)"
		}
		return statusStyle.Width(m.width).Render(fmt.Sprintf("Mode: CONFIRM | %s", message))
	}

	size := m.session.CanvasSize()
	vp := m.session.Viewport()
	status := fmt.Sprintf("Mode: %s | %s %.0f | Zoom: %.0f%% | Canvas: %.0fx%.0f | View: (%.0f,%.0f)",
		m.modeString(),
		swatch(m.builder.Attributes().Color), m.penWidth,
		m.session.Scale()*100,
		size.Width, size.Height, vp.Left(), vp.Top())
	if m.status.modified {
		status += " | modified"
	}

	switch {
	case m.errorMessage != "":
		return statusStyle.Render(status+" | ") + errorStyle.Render("ERROR: "+m.errorMessage)
	case m.successMessage != "":
		return statusStyle.Render(status+" | ") + successStyle.Render(m.successMessage)
	default:
		return statusStyle.Render(status + " | ? for help | q to quit")
	}
}

func swatch(c color.NRGBA) string {
	return lipgloss.NewStyle().Foreground(hexColor(c)).Background(lipgloss.Color("236")).Render("■")
}
