package touch

import (
	"errors"
	"io/fs"

	"touchp-go/internal/apperr"
)

// Target records what happened to one requested file.
type Target struct {
	// Path is the file as named on the command line.
	Path string

	// Existed is true when the file was present before this invocation.
	Existed bool

	// Created is true when the file was newly created.
	Created bool

	// Skipped is true when a missing file was left alone under --no-create.
	Skipped bool

	// Err is the classified failure for this target, nil otherwise.
	Err error
}

// Touched reports whether the target's timestamps were updated.
func (t Target) Touched() bool { return t.Err == nil && !t.Skipped }

// Touch applies the resolved times to every path in opts, best effort: a
// failing target is recorded and the remaining targets still proceed. The
// returned slice is in command-line order, one entry per path.
func (e *Engine) Touch(opts Options, spec TimeSpec) []Target {
	targets := make([]Target, 0, len(opts.Paths))
	for _, path := range opts.Paths {
		targets = append(targets, e.touchOne(path, spec, opts.NoCreate))
	}
	return targets
}

// touchOne creates the file if needed and applies the resolved times.
func (e *Engine) touchOne(path string, spec TimeSpec, noCreate bool) Target {
	target := Target{Path: path}

	_, err := e.fsys.Stat(path)
	switch {
	case err == nil:
		target.Existed = true
	case errors.Is(err, fs.ErrNotExist):
		if noCreate {
			target.Skipped = true
			e.logger.Debug("missing file skipped", "path", path)
			return target
		}
		if err := e.fsys.Create(path); err != nil {
			target.Err = classify(err, "cannot create %q", path)
			e.logger.Error("create failed", "path", path, "error", err)
			return target
		}
		target.Created = true
	default:
		target.Err = classify(err, "cannot touch %q", path)
		e.logger.Error("stat failed", "path", path, "error", err)
		return target
	}

	if err := e.fsys.Chtimes(path, spec.Access, spec.Modify); err != nil {
		target.Err = classify(err, "setting times for %q", path)
		e.logger.Error("chtimes failed", "path", path, "error", err)
		return target
	}

	e.logger.Info("file touched", "path", path, "created", target.Created)
	return target
}

// classify wraps a filesystem error with the matching error code.
func classify(err error, format string, args ...any) error {
	code := apperr.CodeFilesystem
	if errors.Is(err, fs.ErrPermission) {
		code = apperr.CodePermission
	}
	return apperr.Wrap(code, err, format, args...)
}

// Survivors filters targets down to the paths whose timestamps were updated,
// preserving command-line order. These are the files the paste editor writes
// to on save.
func Survivors(targets []Target) []string {
	var paths []string
	for _, t := range targets {
		if t.Touched() {
			paths = append(paths, t.Path)
		}
	}
	return paths
}
