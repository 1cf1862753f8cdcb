package main

func (m *model) undo() {
	m.builder.Cancel()
	if !m.session.Undo() {
		m.errorMessage = "Nothing to undo"
		return
	}
	m.successMessage = "Undone"
}

func (m *model) redo() {
	m.builder.Cancel()
	if !m.session.Redo() {
		m.errorMessage = "Nothing to redo"
		return
	}
	m.successMessage = "Redone"
}

func (m *model) resetAll() {
	m.builder.Cancel()
	m.session.ResetAll()
	m.successMessage = "Canvas cleared (u to undo)"
}
