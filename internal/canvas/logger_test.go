package canvas

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	s := newSession(t)
	s.Draw(dot(10, 8000))
	if !strings.Contains(buf.String(), "canvas growth") {
		t.Errorf("growth was not logged:\n%s", buf.String())
	}
}
