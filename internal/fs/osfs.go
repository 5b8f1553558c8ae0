package fs

import (
	"io/fs"
	"os"
	"time"

	"github.com/djherbis/times"

	"touchp-go/internal/touch"
)

// OSFilesystem is the real filesystem implementation of touch.Filesystem.
// It performs actual filesystem operations using the os package.
type OSFilesystem struct{}

// NewOSFilesystem creates a filesystem backed by the os package.
func NewOSFilesystem() *OSFilesystem {
	return &OSFilesystem{}
}

// Stat returns file info for a path.
func (m *OSFilesystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// Create ensures path exists as a regular file. A missing file is created
// empty; an existing file is opened in append mode and left intact.
func (m *OSFilesystem) Create(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}

// Chtimes sets the access and modification times of a file. A zero time
// leaves the corresponding timestamp unchanged.
func (m *OSFilesystem) Chtimes(path string, atime, mtime time.Time) error {
	return os.Chtimes(path, atime, mtime)
}

// Times reads the current access and modification times of a file. The times
// library hides the per-OS stat layout, so there is no syscall handling here.
func (m *OSFilesystem) Times(path string) (time.Time, time.Time, error) {
	spec, err := times.Stat(path)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return spec.AccessTime(), spec.ModTime(), nil
}

// WriteFile replaces the content of a file.
func (m *OSFilesystem) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// Compile-time check that OSFilesystem implements the engine's interface
var _ touch.Filesystem = (*OSFilesystem)(nil)
