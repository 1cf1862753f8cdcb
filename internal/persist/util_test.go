package persist

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"inkwell/internal/ink"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func records(strokes []*ink.Stroke) []ink.Record {
	out := make([]ink.Record, len(strokes))
	for i, s := range strokes {
		out[i] = s.Record()
	}
	return out
}
