package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"inkwell/internal/geom"
)

func (m *model) handleMouse(msg tea.MouseMsg) {
	p := cellCenter(msg.X, msg.Y)
	switch msg.Type {
	case tea.MouseWheelUp:
		m.zoom(zoomStep, p)
		return
	case tea.MouseWheelDown:
		m.zoom(1/zoomStep, p)
		return
	}

	if m.tool == ToolEraser {
		switch msg.Type {
		case tea.MouseLeft:
			m.erasing = true
			m.eraseAt(p)
		case tea.MouseMotion:
			if m.erasing {
				m.eraseAt(p)
			}
		case tea.MouseRelease:
			m.erasing = false
		}
		return
	}

	switch msg.Type {
	case tea.MouseLeft:
		if msg.Y >= m.canvasRows() {
			return
		}
		if m.builder.Active() {
			m.builder.Append(p, penPressure)
		} else {
			m.builder.Begin(p, penPressure)
		}
	case tea.MouseMotion:
		m.builder.Append(p, penPressure)
	case tea.MouseRelease:
		if m.builder.Active() {
			m.builder.Append(p, penPressure)
			m.finishStroke()
		}
	}
}

func (m *model) finishStroke() {
	stroke, err := m.builder.End()
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.session.DrawViewport(stroke)
}

func (m *model) eraseAt(p geom.Point) {
	if m.session.EraseViewport(p) {
		m.successMessage = "Erased"
	}
}

func (m *model) toggleTool() {
	m.builder.Cancel()
	if m.tool == ToolPen {
		m.tool = ToolEraser
	} else {
		m.tool = ToolPen
	}
}

func (m *model) cycleColor() {
	m.colorIndex = (m.colorIndex + 1) % numColors
	attrs := m.builder.Attributes()
	attrs.Color = palette[m.colorIndex]
	m.builder.SetAttributes(attrs)
}

func (m *model) setPenWidth(w float64) {
	w = min(max(w, minPenWidth), maxPenWidth)
	m.penWidth = w
	attrs := m.builder.Attributes()
	attrs.Size = geom.Size{Width: w, Height: w}
	m.builder.SetAttributes(attrs)
}
