package main

import "image/color"

type Mode int

const (
	ModeNormal Mode = iota
	ModeConfirm
)

type Tool int

const (
	ToolPen Tool = iota
	ToolEraser
)

type ConfirmAction int

const (
	ConfirmResetAll ConfirmAction = iota
	ConfirmPasteState
	ConfirmQuit
)

// A terminal cell stands in for this many screen units.
const (
	cellWidth  = 8
	cellHeight = 16
)

const (
	zoomStep    = 1.25
	penPressure = 0.5
	minPenWidth = 1
	maxPenWidth = 64
	minimapEdge = 512
	captionSize = 12
)

var palette = []color.NRGBA{
	{0x10, 0x10, 0x10, 0xff}, // ink
	{0xd0, 0x20, 0x20, 0xff},
	{0x20, 0x90, 0x30, 0xff},
	{0x20, 0x50, 0xd0, 0xff},
	{0xe0, 0x80, 0x10, 0xff},
	{0x80, 0x30, 0xb0, 0xff},
	{0x10, 0x90, 0x90, 0xff},
	{0x80, 0x80, 0x80, 0xff},
}

var numColors = len(palette)
