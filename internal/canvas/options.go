package canvas

import "inkwell/internal/geom"

// Option configures a Session.
type Option func(*options)

type options struct {
	defaultSize    geom.Size
	eraseTolerance float64
	minScale       float64
	maxScale       float64
}

func defaultOptions() options {
	return options{
		defaultSize:    DefaultCanvasSize,
		eraseTolerance: 5,
		minScale:       0.25,
		maxScale:       8,
	}
}

// WithDefaultSize sets the canvas size used at start and on reset.
// Non-positive sizes are ignored.
func WithDefaultSize(width, height float64) Option {
	return func(o *options) {
		if width > 0 && height > 0 {
			o.defaultSize = geom.Size{Width: width, Height: height}
		}
	}
}

// WithEraseTolerance sets how close, on each axis, the eraser must come
// to a stroke point. Erase reads it in canvas units and EraseViewport in
// screen units.
func WithEraseTolerance(t float64) Option {
	return func(o *options) {
		if t > 0 {
			o.eraseTolerance = t
		}
	}
}

// WithScaleRange bounds the zoom factor.
func WithScaleRange(lo, hi float64) Option {
	return func(o *options) {
		if lo > 0 && hi >= lo {
			o.minScale, o.maxScale = lo, hi
		}
	}
}
