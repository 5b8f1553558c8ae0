package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"touchp-go/internal/touch"
)

// newTestModel builds a model the way Run does, with a controllable save
// function and no real clipboard.
func newTestModel(save SaveFunc, snapshot string, targets ...string) *model {
	return newModel(Editor{
		Targets: targets,
		Save:    save,
		Logger:  touch.NewNopLogger(),
	}, snapshot)
}

func TestNewModel_seedsTextareaWithClipboard(t *testing.T) {
	m := newTestModel(nil, "copied earlier\nsecond line", "/a.txt")

	require.Equal(t, editingScreen, m.state, "editor must open on the editing screen")
	require.Equal(t, "copied earlier\nsecond line", m.textarea.Value(),
		"clipboard snapshot must pre-fill the textarea")
	require.True(t, m.textarea.Focused(), "textarea must have focus on open")
}

func TestNewModel_emptyClipboardShowsPlaceholder(t *testing.T) {
	m := newTestModel(nil, "", "/a.txt")

	require.Empty(t, m.textarea.Value())
	require.Contains(t, m.textarea.Placeholder, "Clipboard was empty")
}

func TestNewModel_liftsInputLimits(t *testing.T) {
	m := newTestModel(nil, "", "/a.txt")

	require.Zero(t, m.textarea.CharLimit, "pasted content must not be truncated")
	require.Zero(t, m.textarea.MaxHeight, "pasted content must not be capped in rows")
}

func TestView_editingScreen(t *testing.T) {
	m := newTestModel(nil, "content", "/a.txt", "/b.txt")

	view := m.View()
	require.Contains(t, view, "Paste to 2 file(s) - touchp", "title must show the target count")
	require.Contains(t, view, "ctrl+s", "help line must mention the save key")
	require.Contains(t, view, "esc", "help line must mention cancel")
}

func TestView_reportScreen(t *testing.T) {
	m := newTestModel(nil, "", "/ok.txt", "/bad.txt")
	m.state = reportScreen
	m.results = []touch.WriteResult{
		{Path: "/ok.txt"},
		{Path: "/bad.txt", Err: errors.New("permission denied")},
	}

	view := m.View()
	require.Contains(t, view, "Saved to 1 file(s).", "headline counts only successful writes")
	require.Contains(t, view, "/ok.txt")
	require.Contains(t, view, "/bad.txt")
	require.Contains(t, view, "permission denied", "failures must show the reason")
}

func TestOutcome_String(t *testing.T) {
	require.Equal(t, "saved", OutcomeSaved.String())
	require.Equal(t, "cancelled", OutcomeCancelled.String())
}
