// Package touch implements the timestamp engine: resolving the requested
// access and modification times from the command-line options and applying
// them to each target file.
package touch

// Engine coordinates timestamp resolution, file creation and time application
// for one invocation.
type Engine struct {
	fsys   Filesystem
	clock  Clock
	dates  DateParser
	logger Logger
}

// NewEngine creates an Engine with the provided dependencies.
func NewEngine(fsys Filesystem, clock Clock, dates DateParser, logger Logger) *Engine {
	return &Engine{
		fsys:   fsys,
		clock:  clock,
		dates:  dates,
		logger: logger,
	}
}
