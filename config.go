package main

import (
	"bufio"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"inkwell/internal/canvas"
)

type Config struct {
	SaveDirectory  string
	StateFile      string
	CanvasWidth    float64
	CanvasHeight   float64
	EraseTolerance float64
	MinScale       float64
	MaxScale       float64
	PenColor       color.NRGBA
	PenWidth       float64
	LogFile        string
}

func defaultConfig() *Config {
	return &Config{
		StateFile:      "inkwell.json",
		CanvasWidth:    canvas.DefaultCanvasSize.Width,
		CanvasHeight:   canvas.DefaultCanvasSize.Height,
		EraseTolerance: cellWidth,
		MinScale:       0.25,
		MaxScale:       8,
		PenColor:       palette[0],
		PenWidth:       2,
	}
}

func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}

	file, err := os.Open(filepath.Join(homeDir, ".inkwellrc"))
	if err != nil {
		return defaultConfig()
	}
	defer file.Close()
	return parseConfig(file, homeDir)
}

// parseConfig reads key=value lines. Unknown keys and bad values are
// skipped.
func parseConfig(r io.Reader, homeDir string) *Config {
	config := defaultConfig()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			config.SaveDirectory = expandPath(value, homeDir)
		case "statefile", "state_file":
			config.StateFile = value
		case "logfile", "log_file":
			config.LogFile = expandPath(value, homeDir)
		case "canvaswidth", "canvas_width":
			setPositive(&config.CanvasWidth, value)
		case "canvasheight", "canvas_height":
			setPositive(&config.CanvasHeight, value)
		case "erasetolerance", "erase_tolerance":
			setPositive(&config.EraseTolerance, value)
		case "minscale", "min_scale":
			setPositive(&config.MinScale, value)
		case "maxscale", "max_scale":
			setPositive(&config.MaxScale, value)
		case "penwidth", "pen_width":
			setPositive(&config.PenWidth, value)
		case "pencolor", "pen_color":
			if c, err := colorful.Hex(value); err == nil {
				r, g, b := c.RGB255()
				config.PenColor = color.NRGBA{R: r, G: g, B: b, A: 0xff}
			}
		}
	}
	if config.MaxScale < config.MinScale {
		config.MinScale, config.MaxScale = 0.25, 8
	}
	return config
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func setPositive(dst *float64, value string) {
	if v, err := strconv.ParseFloat(value, 64); err == nil && v > 0 {
		*dst = v
	}
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		return filename
	}
	return filepath.Join(c.SaveDirectory, filename)
}

func (c *Config) sessionOptions() []canvas.Option {
	return []canvas.Option{
		canvas.WithDefaultSize(c.CanvasWidth, c.CanvasHeight),
		canvas.WithEraseTolerance(c.EraseTolerance),
		canvas.WithScaleRange(c.MinScale, c.MaxScale),
	}
}
