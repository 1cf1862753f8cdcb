package main

import (
	"context"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"

	"inkwell/internal/persist"
)

func (m *model) saveState() {
	if err := m.session.Save(context.Background(), m.backend); err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.status.modified = false
	m.successMessage = "Saved"
}

func (m *model) copyState() {
	data, err := persist.Marshal(m.session.Snapshot())
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	if err := copyToClipboard(string(data)); err != nil {
		m.errorMessage = "clipboard: " + err.Error()
		return
	}
	m.successMessage = "State copied to clipboard"
}

// requestPasteState reads state JSON from the clipboard and asks before
// replacing the canvas with it.
func (m *model) requestPasteState() {
	text, err := readClipboardText()
	if err != nil {
		m.errorMessage = "clipboard: " + err.Error()
		return
	}
	m.preparePasteState([]byte(text))
}

func (m *model) preparePasteState(data []byte) {
	if _, err := persist.Unmarshal(data); err != nil {
		m.errorMessage = "Clipboard does not hold a canvas"
		return
	}
	m.pendingState = data
	m.mode = ModeConfirm
	m.confirmAction = ConfirmPasteState
}

func (m *model) loadPendingState() {
	data := m.pendingState
	m.pendingState = nil
	st, err := persist.Unmarshal(data)
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.builder.Cancel()
	m.session.Load(st)
	m.successMessage = "State loaded from clipboard"
}

func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}
