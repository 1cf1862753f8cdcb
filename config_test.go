package main

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseConfig(t *testing.T) {
	rc := `
# inkwell settings
savedirectory = ~/drawings
statefile=board.json
canvasWidth = 4096
canvas_height = 2048
erasetolerance = 12
minscale = 0.5
maxscale = 4
pencolor = #3060d0
penwidth = 3
logfile = ~/inkwell.log
nonsense = 1
missing equals sign
`
	got := parseConfig(strings.NewReader(rc), "/home/ink")
	want := &Config{
		SaveDirectory:  filepath.Join("/home/ink", "drawings"),
		StateFile:      "board.json",
		CanvasWidth:    4096,
		CanvasHeight:   2048,
		EraseTolerance: 12,
		MinScale:       0.5,
		MaxScale:       4,
		PenColor:       color.NRGBA{0x30, 0x60, 0xd0, 0xff},
		PenWidth:       3,
		LogFile:        filepath.Join("/home/ink", "inkwell.log"),
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestParseConfigBadValues(t *testing.T) {
	rc := `
canvaswidth = -5
canvasheight = wide
penwidth = 0
pencolor = blue
minscale = 10
maxscale = 2
`
	got := parseConfig(strings.NewReader(rc), "/home/ink")
	if d := cmp.Diff(defaultConfig(), got); d != "" {
		t.Error(d)
	}
}

func TestGetSavePath(t *testing.T) {
	c := defaultConfig()
	if got := c.GetSavePath("a.png"); got != "a.png" {
		t.Errorf("GetSavePath() = %q, want a.png", got)
	}
	dir := t.TempDir()
	c.SaveDirectory = dir
	if got, want := c.GetSavePath("a.png"), filepath.Join(dir, "a.png"); got != want {
		t.Errorf("GetSavePath() = %q, want %q", got, want)
	}
}

func TestGetSavePathFallsBackWhenDirectoryCannotBeMade(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	c := defaultConfig()
	c.SaveDirectory = filepath.Join(file, "drawings")
	if got := c.GetSavePath("a.png"); got != "a.png" {
		t.Errorf("GetSavePath() = %q, want a.png", got)
	}
}
