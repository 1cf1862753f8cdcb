// Package persist turns a canvas into a JSON blob and back, and provides
// the places such blobs are kept.
package persist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/google/uuid"

	"inkwell/internal/geom"
	"inkwell/internal/ink"
)

var (
	// ErrNoState means there is no saved state to load.
	ErrNoState = errors.New("persist: no saved state")
	// ErrMalformed means saved state exists but cannot be decoded.
	ErrMalformed = errors.New("persist: malformed state")
)

// State is everything that survives a restart. Viewport's origin is the
// canvas offset and its size is the canvas size, not the visible area.
type State struct {
	Strokes  []*ink.Stroke
	Viewport geom.Rect
}

type blob struct {
	Strokes  []strokeBlob `json:"strokes"`
	Viewport *geom.Rect   `json:"viewport"`
}

type strokeBlob struct {
	ID                string         `json:"id,omitempty"`
	PointTransform    []float64      `json:"pointTransform,omitempty"`
	DrawingAttributes ink.Attributes `json:"drawingAttributes"`
	StrokeDuration    *time.Duration `json:"strokeDuration,omitempty"`
	StrokeStartedTime *time.Time     `json:"strokeStartedTime,omitempty"`
	InkPoints         []ink.Point    `json:"inkPoints"`
}

// Marshal encodes st.
func Marshal(st State) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, st); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes st to w as JSON.
func Encode(w io.Writer, st State) error {
	b := blob{
		Strokes:  make([]strokeBlob, 0, len(st.Strokes)),
		Viewport: &st.Viewport,
	}
	for _, s := range st.Strokes {
		r := s.Record()
		tr := r.Transform.Coefficients()
		b.Strokes = append(b.Strokes, strokeBlob{
			ID:                r.ID.String(),
			PointTransform:    tr[:],
			DrawingAttributes: r.Attributes,
			StrokeDuration:    r.Duration,
			StrokeStartedTime: r.StartedAt,
			InkPoints:         r.Points,
		})
	}
	if err := json.NewEncoder(w).Encode(b); err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	return nil
}

// Unmarshal decodes a blob produced by Marshal. Every failure wraps
// ErrMalformed.
func Unmarshal(data []byte) (State, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads one state from r. Field names match case-insensitively,
// so blobs written with capitalised names load too. Anything but
// whitespace after the state is an error.
func Decode(r io.Reader) (State, error) {
	var b blob
	dec := json.NewDecoder(r)
	if err := dec.Decode(&b); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return State{}, fmt.Errorf("%w: trailing data after state", ErrMalformed)
	}
	if b.Strokes == nil {
		return State{}, fmt.Errorf("%w: no strokes field", ErrMalformed)
	}
	if b.Viewport == nil {
		return State{}, fmt.Errorf("%w: no viewport field", ErrMalformed)
	}
	vp := *b.Viewport
	if !positive(vp.Width()) || !positive(vp.Height()) || !finite(vp.Left()) || !finite(vp.Top()) {
		return State{}, fmt.Errorf("%w: bad viewport %v", ErrMalformed, vp)
	}

	st := State{Viewport: vp, Strokes: make([]*ink.Stroke, 0, len(b.Strokes))}
	seen := make(map[uuid.UUID]struct{}, len(b.Strokes))
	for i, sb := range b.Strokes {
		s, err := sb.stroke()
		if err != nil {
			return State{}, fmt.Errorf("%w: stroke %d: %v", ErrMalformed, i, err)
		}
		if _, dup := seen[s.ID()]; dup {
			return State{}, fmt.Errorf("%w: stroke %d: duplicate id %s", ErrMalformed, i, s.ID())
		}
		seen[s.ID()] = struct{}{}
		st.Strokes = append(st.Strokes, s)
	}
	return st, nil
}

func (sb strokeBlob) stroke() (*ink.Stroke, error) {
	rec := ink.Record{
		Points:     sb.InkPoints,
		Attributes: sb.DrawingAttributes,
		StartedAt:  sb.StrokeStartedTime,
		Duration:   sb.StrokeDuration,
	}
	if sb.ID != "" {
		id, err := uuid.Parse(sb.ID)
		if err != nil {
			return nil, err
		}
		rec.ID = id
	}
	if sb.PointTransform != nil {
		tr, err := transform(sb.PointTransform)
		if err != nil {
			return nil, err
		}
		rec.Transform = tr
	}
	return ink.Build(rec)
}

// transform reads the six coefficients of a pointTransform, linear part
// first and translation last.
func transform(n []float64) (geom.Affine, error) {
	if len(n) != 6 {
		return geom.Affine{}, fmt.Errorf("pointTransform has %d values, want 6", len(n))
	}
	tr := geom.FromCoefficients([6]float64(n))
	if !tr.IsFinite() {
		return geom.Affine{}, fmt.Errorf("pointTransform %v is not finite", n)
	}
	return tr, nil
}

func finite(v float64) bool   { return !math.IsNaN(v) && !math.IsInf(v, 0) }
func positive(v float64) bool { return finite(v) && v > 0 }
