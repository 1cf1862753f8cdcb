package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"inkwell/internal/render"
)

type exportKind int

const (
	exportPNG exportKind = iota
	exportPDF
	exportMinimap
)

func (k exportKind) filename(now time.Time) string {
	stamp := now.Format("20060102-150405")
	switch k {
	case exportPDF:
		return "inkwell-" + stamp + ".pdf"
	case exportMinimap:
		return "inkwell-" + stamp + "-map.png"
	default:
		return "inkwell-" + stamp + ".png"
	}
}

// export writes the chosen rendering to the save directory and puts the
// path on the clipboard.
func (m *model) export(kind exportKind) {
	filename := m.config.GetSavePath(kind.filename(time.Now()))
	if err := m.exportTo(filename, kind); err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.successMessage = "Exported " + filename
	if err := copyToClipboard(filename); err == nil {
		m.successMessage += " (path copied)"
	}
}

func (m *model) exportTo(filename string, kind exportKind) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := m.writeExport(file, kind); err != nil {
		file.Close()
		os.Remove(filename)
		return err
	}
	return file.Close()
}

func (m *model) writeExport(w io.Writer, kind exportKind) error {
	vp := m.session.Viewport()
	switch kind {
	case exportPNG:
		return render.PNG(w, vp, m.session.Scale(), m.session.StrokesIn(vp), render.Options{
			Caption:     fmt.Sprintf("inkwell (%.0f, %.0f)", vp.Left(), vp.Top()),
			CaptionSize: captionSize,
		})
	case exportPDF:
		return render.PDF(w, vp, m.session.StrokesIn(vp))
	case exportMinimap:
		return render.Minimap(w, m.session.CanvasSize(), vp, m.session.Strokes(), minimapEdge)
	}
	return fmt.Errorf("unknown export %d", kind)
}
