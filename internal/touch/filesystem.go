package touch

import (
	"io/fs"
	"time"
)

// Filesystem provides the file operations the engine needs.
// It abstracts file access to enable testing without touching the real
// filesystem.
type Filesystem interface {
	// Stat returns file info for a path. A missing file is reported with an
	// error matching fs.ErrNotExist.
	Stat(path string) (fs.FileInfo, error)

	// Create creates an empty regular file. Existing content is left intact,
	// matching append-mode open semantics.
	Create(path string) error

	// Chtimes sets the access and modification times of a file.
	// A zero time.Time leaves the corresponding timestamp unchanged.
	Chtimes(path string, atime, mtime time.Time) error

	// Times returns the current access and modification times of a file.
	Times(path string) (atime, mtime time.Time, err error)

	// WriteFile replaces the content of a file.
	WriteFile(path string, data []byte) error
}
