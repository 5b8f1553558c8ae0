package testutil

import (
	"io/fs"
	"path/filepath"
	"time"

	"touchp-go/internal/touch"
)

// StubFile represents a file in the stub filesystem.
type StubFile struct {
	Content     []byte
	Permissions fs.FileMode
	ModTime     time.Time
	Atime       time.Time
}

// StubFilesystem is an in-memory filesystem for testing. Operations behave
// like their os counterparts, including fs.ErrNotExist for missing paths and
// the zero-time contract of Chtimes. Failures can be injected per path to
// exercise the best-effort paths.
type StubFilesystem struct {
	files map[string]*StubFile

	// Now supplies timestamps for created and written files.
	// Defaults to time.Now.
	Now func() time.Time

	// FailCreate, FailChtimes and FailWrite inject an error for a path.
	FailCreate  map[string]error
	FailChtimes map[string]error
	FailWrite   map[string]error
}

// NewStubFilesystem creates an empty stub filesystem.
func NewStubFilesystem() *StubFilesystem {
	return &StubFilesystem{
		files:       make(map[string]*StubFile),
		Now:         time.Now,
		FailCreate:  make(map[string]error),
		FailChtimes: make(map[string]error),
		FailWrite:   make(map[string]error),
	}
}

// AddFile adds a file with the given content and current timestamps.
func (m *StubFilesystem) AddFile(path string, content []byte) {
	now := m.Now()
	m.files[path] = &StubFile{
		Content:     content,
		Permissions: 0644,
		ModTime:     now,
		Atime:       now,
	}
}

// SetTimes overrides a file's timestamps directly.
func (m *StubFilesystem) SetTimes(path string, atime, mtime time.Time) {
	if f, ok := m.files[path]; ok {
		f.Atime = atime
		f.ModTime = mtime
	}
}

// File returns the stub entry for a path, or nil when absent. Use it to
// assert on content and timestamps after an operation.
func (m *StubFilesystem) File(path string) *StubFile {
	return m.files[path]
}

// Exists reports whether a path is present.
func (m *StubFilesystem) Exists(path string) bool {
	_, ok := m.files[path]
	return ok
}

func (m *StubFilesystem) Stat(path string) (fs.FileInfo, error) {
	file, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}
	return &stubFileInfo{
		name:     filepath.Base(path),
		size:     int64(len(file.Content)),
		mode:     file.Permissions,
		modTime:  file.ModTime,
		stubFile: file,
	}, nil
}

func (m *StubFilesystem) Create(path string) error {
	if err := m.FailCreate[path]; err != nil {
		return &fs.PathError{Op: "open", Path: path, Err: err}
	}
	if _, ok := m.files[path]; ok {
		// Append-mode open of an existing file leaves it intact.
		return nil
	}
	m.AddFile(path, nil)
	return nil
}

func (m *StubFilesystem) Chtimes(path string, atime, mtime time.Time) error {
	if err := m.FailChtimes[path]; err != nil {
		return &fs.PathError{Op: "chtimes", Path: path, Err: err}
	}
	file, ok := m.files[path]
	if !ok {
		return &fs.PathError{Op: "chtimes", Path: path, Err: fs.ErrNotExist}
	}
	if !atime.IsZero() {
		file.Atime = atime
	}
	if !mtime.IsZero() {
		file.ModTime = mtime
	}
	return nil
}

func (m *StubFilesystem) Times(path string) (time.Time, time.Time, error) {
	file, ok := m.files[path]
	if !ok {
		return time.Time{}, time.Time{}, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}
	return file.Atime, file.ModTime, nil
}

func (m *StubFilesystem) WriteFile(path string, data []byte) error {
	if err := m.FailWrite[path]; err != nil {
		return &fs.PathError{Op: "open", Path: path, Err: err}
	}
	file, ok := m.files[path]
	if !ok {
		m.AddFile(path, data)
		return nil
	}
	file.Content = data
	file.ModTime = m.Now()
	return nil
}

// stubFileInfo implements fs.FileInfo.
type stubFileInfo struct {
	name     string
	size     int64
	mode     fs.FileMode
	modTime  time.Time
	stubFile *StubFile
}

func (m *stubFileInfo) Name() string       { return m.name }
func (m *stubFileInfo) Size() int64        { return m.size }
func (m *stubFileInfo) Mode() fs.FileMode  { return m.mode }
func (m *stubFileInfo) ModTime() time.Time { return m.modTime }
func (m *stubFileInfo) IsDir() bool        { return false }
func (m *stubFileInfo) Sys() any           { return m.stubFile }

// Compile-time check
var _ touch.Filesystem = (*StubFilesystem)(nil)
