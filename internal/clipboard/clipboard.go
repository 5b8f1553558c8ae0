// Package clipboard captures the system clipboard text that seeds the paste
// editor.
package clipboard

import "github.com/atotto/clipboard"

// Reader reads the clipboard text at a point in time. A failed or empty read
// is not fatal anywhere in touchp; callers fall back to an empty snapshot.
type Reader interface {
	ReadAll() (string, error)
}

// System reads the real clipboard through the platform mechanism: xclip,
// xsel or wl-clipboard on Linux, pbpaste on macOS, the win32 API on Windows.
type System struct{}

func (System) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

// Memory is a canned Reader. Use in tests.
type Memory struct {
	Text string
	Err  error
}

func (m Memory) ReadAll() (string, error) {
	return m.Text, m.Err
}

// Compile-time checks
var (
	_ Reader = System{}
	_ Reader = Memory{}
)
