package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update routes messages by screen. Global messages (resize, save results)
// are handled first; key presses go to the current screen's handler.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textarea.SetWidth(msg.Width)
		editorHeight := msg.Height - chromeHeight
		if editorHeight < minEditorHeight {
			editorHeight = minEditorHeight
		}
		m.textarea.SetHeight(editorHeight)
		return m, nil

	case saveDoneMsg:
		m.results = msg.results
		m.outcome = OutcomeSaved
		m.state = reportScreen
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case editingScreen:
			return m.updateEditing(msg)
		case savingScreen:
			// The save is committed; keys no longer change the outcome.
			return m, nil
		case reportScreen:
			return m.updateReport(msg)
		}
	}

	// Non-key messages such as cursor blinks still drive the textarea.
	if m.state == editingScreen {
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateEditing handles keys on the editing screen. Everything that is not a
// session key goes to the textarea, including ctrl+v paste.
func (m *model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keySave:
		m.state = savingScreen
		return m, saveCmd(m.editor.Save, m.textarea.Value())
	case keyEsc, keyAbort:
		m.outcome = OutcomeCancelled
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// updateReport waits for a dismissing key on the report screen.
func (m *model) updateReport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEnter, keyEsc, keyQuit, keyAbort:
		return m, tea.Quit
	}
	return m, nil
}
