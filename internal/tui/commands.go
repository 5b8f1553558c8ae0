package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// saveCmd runs the save function off the update loop and reports back with a
// saveDoneMsg. The content is captured before the command runs, so later
// model changes cannot alter what is written.
func saveCmd(save SaveFunc, content string) tea.Cmd {
	return func() tea.Msg {
		return saveDoneMsg{results: save(content)}
	}
}
