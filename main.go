package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"inkwell/internal/canvas"
	"inkwell/internal/ink"
	"inkwell/internal/persist"
)

func main() {
	config := loadConfig()
	if config.LogFile != "" {
		f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		canvas.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	backend := persist.FileBackend{Path: config.GetSavePath(config.StateFile)}
	p := tea.NewProgram(
		newModel(config, backend),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func newModel(config *Config, backend persist.Backend) model {
	attrs := ink.DefaultAttributes()
	attrs.Color = config.PenColor
	attrs.Size.Width, attrs.Size.Height = config.PenWidth, config.PenWidth

	m := model{
		config:   config,
		session:  canvas.New(config.sessionOptions()...),
		backend:  backend,
		builder:  ink.NewBuilder(attrs),
		status:   &sessionStatus{},
		penWidth: config.PenWidth,
	}
	if m.session.Restore(context.Background(), backend) {
		m.centered = true
		m.successMessage = fmt.Sprintf("Restored %d strokes", len(m.session.Strokes()))
	}
	m.session.Subscribe(m.status.observe)
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.session.SetScreenSize(float64(m.canvasCols()*cellWidth), float64(m.canvasRows()*cellHeight))
		if !m.centered {
			m.session.MoveToCenter()
			m.centered = true
		}
		return m, nil

	case tea.MouseMsg:
		if m.help || m.mode != ModeNormal {
			return m, nil
		}
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if m.help {
			switch msg.String() {
			case "j", "down":
				if m.helpScroll < m.maxHelpScroll() {
					m.helpScroll++
				}
			case "k", "up":
				if m.helpScroll > 0 {
					m.helpScroll--
				}
			default:
				m.help = false
				m.helpScroll = 0
			}
			return m, nil
		}

		if m.mode == ModeConfirm {
			return m.handleConfirm(msg.String())
		}

		m.errorMessage = ""
		m.successMessage = ""

		switch key := msg.String(); key {
		case "ctrl+c":
			m.saveState()
			return m, tea.Quit
		case "q":
			if m.status.modified {
				m.mode = ModeConfirm
				m.confirmAction = ConfirmQuit
				return m, nil
			}
			return m, tea.Quit
		case "?":
			m.help = true
		case "esc":
			m.builder.Cancel()
			m.erasing = false
		case "u":
			m.undo()
		case "U", "ctrl+r":
			m.redo()
		case "X":
			m.mode = ModeConfirm
			m.confirmAction = ConfirmResetAll
		case "e":
			m.toggleTool()
		case "c":
			m.cycleColor()
		case "[":
			m.setPenWidth(m.penWidth / 2)
		case "]":
			m.setPenWidth(m.penWidth * 2)
		case "+", "=":
			m.zoom(zoomStep, m.screenCenter())
		case "-", "_":
			m.zoom(1/zoomStep, m.screenCenter())
		case "0":
			m.session.MoveToCenter()
		case "s":
			m.saveState()
		case "p":
			m.export(exportPNG)
		case "P":
			m.export(exportPDF)
		case "m":
			m.export(exportMinimap)
		case "y":
			m.copyState()
		case "ctrl+v":
			m.requestPasteState()
		default:
			m.handleNavigation(key, m.getMoveSpeed(key))
		}
		return m, nil
	}
	return m, nil
}

func (m *model) handleConfirm(key string) (tea.Model, tea.Cmd) {
	m.mode = ModeNormal
	switch key {
	case "y", "Y":
	case "n", "N":
		if m.confirmAction == ConfirmQuit {
			return *m, tea.Quit
		}
		m.pendingState = nil
		return *m, nil
	default:
		m.pendingState = nil
		return *m, nil
	}

	switch m.confirmAction {
	case ConfirmResetAll:
		m.resetAll()
	case ConfirmPasteState:
		m.loadPendingState()
	case ConfirmQuit:
		m.saveState()
		return *m, tea.Quit
	}
	return *m, nil
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	var b strings.Builder
	b.WriteString(m.renderCanvas())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m model) modeString() string {
	if m.mode == ModeConfirm {
		return "CONFIRM"
	}
	switch m.tool {
	case ToolPen:
		return "PEN"
	case ToolEraser:
		return "ERASE"
	default:
		return "UNKNOWN"
	}
}

var helpLines = []string{
	"inkwell Help",
	"============",
	"",
	"Drawing:",
	"--------",
	"  mouse drag       Draw with the pen, or erase in eraser mode",
	"  e                Toggle pen / eraser",
	"  c                Cycle pen color",
	"  [ / ]            Thinner / thicker pen",
	"  Esc              Drop the stroke in progress",
	"",
	"Navigation:",
	"-----------",
	"  h/←/j/↓/k/↑/l/→  Pan the view",
	"  Shift+h/j/k/l    Pan 4x faster",
	"  + / - / wheel    Zoom in / out",
	"  0                Center the view on the canvas",
	"",
	"History:",
	"--------",
	"  u                Undo last edit",
	"  U / Ctrl+R       Redo last undone edit",
	"  X                Erase everything and reset the canvas size",
	"",
	"Files:",
	"------",
	"  s                Save state",
	"  p                Export the view as PNG",
	"  P                Export the view as PDF",
	"  m                Export a minimap of the whole canvas",
	"  y                Copy state JSON to the clipboard",
	"  Ctrl+V           Replace the canvas with state JSON from the clipboard",
	"",
	"General:",
	"  ?                Toggle this help screen",
	"  q                Quit (asks to save when modified)",
	"  Ctrl+C           Save and quit",
}

func (m model) maxHelpScroll() int {
	visibleHeight := max(m.height-1, 1)
	return max(len(helpLines)-visibleHeight, 0)
}

func (m model) helpView() string {
	visibleHeight := max(m.height-1, 1)
	startLine := min(m.helpScroll, m.maxHelpScroll())
	endLine := min(startLine+visibleHeight, len(helpLines))

	result := strings.Join(helpLines[startLine:endLine], "\n")
	statusLine := fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, Esc to close",
		startLine+1, endLine, len(helpLines))
	return result + "\n" + statusStyle.Render(statusLine)
}
