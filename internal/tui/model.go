package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"touchp-go/internal/touch"
)

// Screens of the editor session.
type screenState int

const (
	editingScreen screenState = iota // textarea seeded with the clipboard
	savingScreen                     // save command in flight, keys ignored
	reportScreen                     // per-file save results
)

// Key bindings handled outside the textarea.
const (
	keySave  = "ctrl+s"
	keyAbort = "ctrl+c"
	keyEsc   = "esc"
	keyEnter = "enter"
	keyQuit  = "q"
)

// Layout constants.
const (
	chromeHeight    = 5 // title row, help row and the blank lines between
	minEditorHeight = 3
)

// saveDoneMsg carries the per-file write results back from the save command.
type saveDoneMsg struct {
	results []touch.WriteResult
}

// model is the bubbletea state for one editor session.
type model struct {
	state    screenState
	editor   Editor
	textarea textarea.Model
	outcome  Outcome
	results  []touch.WriteResult
	width    int
	height   int

	titleStyle lipgloss.Style
	helpStyle  lipgloss.Style
	okStyle    lipgloss.Style
	failStyle  lipgloss.Style
}

// newModel builds the initial editing screen with the clipboard snapshot
// already in the textarea.
func newModel(e Editor, snapshot string) *model {
	ta := textarea.New()
	ta.Placeholder = "Clipboard was empty. Paste your content here."
	ta.ShowLineNumbers = false
	// The defaults cap input at 400 characters and 99 rows; pasted content
	// has no such bounds.
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetValue(snapshot)
	ta.Focus()

	return &model{
		state:      editingScreen,
		editor:     e,
		textarea:   ta,
		titleStyle: lipgloss.NewStyle().Bold(true),
		helpStyle:  lipgloss.NewStyle().Faint(true),
		okStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		failStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func (m *model) Init() tea.Cmd {
	return textarea.Blink
}

// View renders the current screen.
func (m *model) View() string {
	switch m.state {
	case reportScreen:
		return m.viewReport()
	case savingScreen:
		return m.viewSaving()
	default:
		return m.viewEditing()
	}
}

func (m *model) title() string {
	return m.titleStyle.Render(fmt.Sprintf("Paste to %d file(s) - touchp", len(m.editor.Targets)))
}

func (m *model) viewEditing() string {
	help := m.helpStyle.Render("ctrl+s save and write files • esc cancel")
	return fmt.Sprintf("%s\n\n%s\n\n%s", m.title(), m.textarea.View(), help)
}

func (m *model) viewSaving() string {
	status := m.helpStyle.Render("saving...")
	return fmt.Sprintf("%s\n\n%s\n\n%s", m.title(), m.textarea.View(), status)
}

func (m *model) viewReport() string {
	saved := 0
	for _, r := range m.results {
		if r.Err == nil {
			saved++
		}
	}

	var b strings.Builder
	b.WriteString(m.titleStyle.Render(fmt.Sprintf("Saved to %d file(s).", saved)))
	b.WriteString("\n\n")
	for _, r := range m.results {
		if r.Err != nil {
			b.WriteString(m.failStyle.Render(fmt.Sprintf("  failed  %s: %v", r.Path, r.Err)))
		} else {
			b.WriteString(m.okStyle.Render(fmt.Sprintf("  saved   %s", r.Path)))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.helpStyle.Render("enter close"))
	return b.String()
}
