package main

import (
	"inkwell/internal/canvas"
	"inkwell/internal/ink"
	"inkwell/internal/persist"
)

type model struct {
	config  *Config
	session *canvas.Session
	backend persist.Backend
	builder *ink.Builder
	status  *sessionStatus

	mode          Mode
	tool          Tool
	confirmAction ConfirmAction
	erasing       bool
	centered      bool

	colorIndex int
	penWidth   float64

	width  int
	height int

	help       bool
	helpScroll int

	pendingState   []byte
	errorMessage   string
	successMessage string
}

// sessionStatus follows session events for the status line.
type sessionStatus struct {
	modified bool
	last     canvas.Event
}

func (st *sessionStatus) observe(e canvas.Event) {
	st.last = e
	if e.Kind == canvas.StrokesChanged {
		st.modified = true
	}
}
