package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"inkwell/internal/geom"
	"inkwell/internal/ink"
)

func decode(t *testing.T, buf *bytes.Buffer) image.Image {
	t.Helper()
	img, err := png.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func dark(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r < 0x8000 && g < 0x8000 && b < 0x8000
}

func TestPNG(t *testing.T) {
	strokes := []*ink.Stroke{
		pen(4, 1010, 1010, 1090, 1010),
		pen(4, 5000, 5000, 5100, 5000), // off screen
	}
	var buf bytes.Buffer
	if err := PNG(&buf, geom.R(1000, 1000, 100, 50), 1, strokes, Options{}); err != nil {
		t.Fatal(err)
	}
	img := decode(t, &buf)
	diff(t, image.Rect(0, 0, 100, 50), img.Bounds())
	if !dark(img.At(50, 10)) {
		t.Error("pixel on the stroke is not inked")
	}
	if dark(img.At(50, 40)) {
		t.Error("pixel away from the stroke is inked")
	}
}

func TestPNGScale(t *testing.T) {
	var buf bytes.Buffer
	s := pen(2, 10, 10, 40, 10)
	if err := PNG(&buf, geom.R(0, 0, 50, 25), 2, []*ink.Stroke{s}, Options{}); err != nil {
		t.Fatal(err)
	}
	img := decode(t, &buf)
	diff(t, image.Rect(0, 0, 100, 50), img.Bounds())
	if !dark(img.At(50, 20)) {
		t.Error("scaled stroke missing at (50, 20)")
	}
}

func TestPNGDot(t *testing.T) {
	var buf bytes.Buffer
	s := pen(6, 20, 20, 20, 20)
	if err := PNG(&buf, geom.R(0, 0, 40, 40), 1, []*ink.Stroke{s}, Options{}); err != nil {
		t.Fatal(err)
	}
	if !dark(decode(t, &buf).At(20, 20)) {
		t.Error("single point stroke was not drawn")
	}
}

func TestPNGCaption(t *testing.T) {
	var buf bytes.Buffer
	err := PNG(&buf, geom.R(0, 0, 200, 40), 1, nil, Options{Caption: "inkwell", Background: color.Black})
	if err != nil {
		t.Fatal(err)
	}
	img := decode(t, &buf)
	if !dark(img.At(199, 0)) {
		t.Error("background color ignored")
	}
}

func TestPNGEmptyRegion(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(&buf, geom.R(0, 0, 0, 10), 1, nil, Options{}); !errors.Is(err, ErrEmptyRegion) {
		t.Errorf("PNG() = %v, want ErrEmptyRegion", err)
	}
}

func TestMinimap(t *testing.T) {
	var buf bytes.Buffer
	canvas := geom.Size{Width: 2000, Height: 1000}
	strokes := []*ink.Stroke{pen(20, 100, 500, 1900, 500)}
	if err := Minimap(&buf, canvas, geom.R(500, 250, 400, 300), strokes, 200); err != nil {
		t.Fatal(err)
	}
	img := decode(t, &buf)
	diff(t, image.Rect(0, 0, 200, 100), img.Bounds())
	if !dark(img.At(100, 50)) {
		t.Error("stroke missing from minimap")
	}
}

func TestMinimapEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Minimap(&buf, geom.Size{}, geom.Rect{}, nil, 100); !errors.Is(err, ErrEmptyRegion) {
		t.Errorf("Minimap() = %v, want ErrEmptyRegion", err)
	}
}
