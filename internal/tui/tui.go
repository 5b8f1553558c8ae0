// Package tui implements the paste editor: a full-screen textarea seeded
// with the clipboard, saved into every touched file with one keystroke.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"touchp-go/internal/clipboard"
	"touchp-go/internal/touch"
)

// Outcome is how the editor session ended.
type Outcome int

const (
	// OutcomeCancelled means the user left without saving. Files keep the
	// timestamps set earlier in the run.
	OutcomeCancelled Outcome = iota

	// OutcomeSaved means the content was written to the target files.
	OutcomeSaved
)

func (o Outcome) String() string {
	if o == OutcomeSaved {
		return "saved"
	}
	return "cancelled"
}

// SaveFunc writes the editor content to every target file and reports the
// per-file results. The editor calls it at most once per session.
type SaveFunc func(content string) []touch.WriteResult

// Editor configures one paste editor session.
type Editor struct {
	// Targets are the files a save will write to, shown in the title and the
	// save report.
	Targets []string

	// Clipboard seeds the textarea. A nil reader or a failed read leaves the
	// textarea empty.
	Clipboard clipboard.Reader

	// Save persists the content when the user saves.
	Save SaveFunc

	// Logger records session events. Optional.
	Logger touch.Logger
}

// Run opens the editor and blocks until the user saves or cancels.
// The returned results are nil unless the outcome is OutcomeSaved.
func (e Editor) Run() (Outcome, []touch.WriteResult, error) {
	if e.Logger == nil {
		e.Logger = touch.NewNopLogger()
	}

	snapshot := e.captureClipboard()
	e.Logger.Debug("editor opened",
		"targets", len(e.Targets), "clipboard_chars", len(snapshot))

	program := tea.NewProgram(newModel(e, snapshot), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return OutcomeCancelled, nil, fmt.Errorf("running paste editor: %w", err)
	}

	m, ok := final.(*model)
	if !ok {
		return OutcomeCancelled, nil, fmt.Errorf("unexpected final model %T", final)
	}

	e.Logger.Info("editor closed", "outcome", m.outcome.String())
	return m.outcome, m.results, nil
}

// captureClipboard reads the clipboard once, on entry. A failed read is
// logged and degrades to an empty snapshot.
func (e Editor) captureClipboard() string {
	if e.Clipboard == nil {
		return ""
	}
	text, err := e.Clipboard.ReadAll()
	if err != nil {
		e.Logger.Warn("clipboard read failed", "error", err)
		return ""
	}
	return text
}
