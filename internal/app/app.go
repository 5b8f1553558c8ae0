package app

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"touchp-go/internal/apperr"
	"touchp-go/internal/clipboard"
	"touchp-go/internal/fs"
	"touchp-go/internal/touch"
	"touchp-go/internal/tui"
)

// App is the application layer between the CLI and the engine. It wires the
// real filesystem, clock, clipboard and editor together for one invocation.
type App struct {
	opts    touch.Options
	engine  *touch.Engine
	clip    clipboard.Reader
	logger  touch.Logger
	logFile *os.File

	stdout io.Writer
	stderr io.Writer

	// Replaced in tests; the defaults run the real editor and check the
	// real terminal.
	runEditor  func(tui.Editor) (tui.Outcome, []touch.WriteResult, error)
	isTerminal func() bool
}

// New creates a fully wired App for the given options.
// The caller must call Close when done.
func New(opts touch.Options) *App {
	return newApp(opts, touch.UUIDGenerator{})
}

// newApp wires the App around the given ID generator. The generated ID tags
// every log line of this invocation.
func newApp(opts touch.Options, ids touch.IDGenerator) *App {
	runID := ids.New()
	logger, logFile := newSessionLogger(runID)

	engine := touch.NewEngine(fs.NewOSFilesystem(), touch.RealClock{}, touch.FreeformDateParser{}, logger)

	return &App{
		opts:    opts,
		engine:  engine,
		clip:    clipboard.System{},
		logger:  logger,
		logFile: logFile,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		runEditor: func(e tui.Editor) (tui.Outcome, []touch.WriteResult, error) {
			return e.Run()
		},
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
}

// newSessionLogger builds the file logger for this run. A failed setup
// degrades to the no-op logger rather than failing the invocation.
func newSessionLogger(runID string) (touch.Logger, *os.File) {
	logDir, err := DefaultLogDir()
	if err != nil {
		return touch.NewNopLogger(), nil
	}
	logger, f, err := newLogger(logDir, runID)
	if err != nil {
		return touch.NewNopLogger(), nil
	}
	return &slogAdapter{l: logger}, f
}

// Run executes one invocation: resolve the requested times, touch every
// target, then open the paste editor over the files that were touched.
//
// Touch failures are reported per file on stderr and do not stop the run;
// they surface again as a non-nil error after the editor closes. Cancelling
// the editor is not an error.
func (a *App) Run() error {
	if len(a.opts.Paths) == 0 {
		return apperr.New(apperr.CodeArgument, "missing file operand")
	}

	a.logger.Info("run started", "paths", len(a.opts.Paths),
		"no_create", a.opts.NoCreate, "access_only", a.opts.AccessOnly, "modify_only", a.opts.ModifyOnly)

	spec, err := a.engine.ResolveTimeSpec(a.opts)
	if err != nil {
		return err
	}

	targets := a.engine.Touch(a.opts, spec)
	report := NewRunReport(targets)

	for _, t := range targets {
		switch {
		case t.Err != nil:
			fmt.Fprintf(a.stderr, "touchp: %v\n", t.Err)
		case t.Created:
			fmt.Fprintf(a.stdout, "touchp: created %q\n", t.Path)
		}
	}

	survivors := touch.Survivors(targets)
	if len(survivors) == 0 {
		if report.TouchFailed > 0 {
			return apperr.New(apperr.CodeFilesystem, "no files could be touched")
		}
		// Every target was skipped under --no-create; nothing to edit.
		a.logger.Info("no files to edit")
		return nil
	}

	if !a.isTerminal() {
		return apperr.New(apperr.CodeNoTerminal,
			"cannot open the paste editor: stdin or stdout is not a terminal")
	}

	outcome, results, err := a.runEditor(tui.Editor{
		Targets:   survivors,
		Clipboard: a.clip,
		Save: func(content string) []touch.WriteResult {
			return a.engine.WriteAll(survivors, content)
		},
		Logger: a.logger,
	})
	if err != nil {
		return fmt.Errorf("paste editor: %w", err)
	}

	if outcome == tui.OutcomeSaved {
		report.AddWrites(results)
		for _, r := range results {
			if r.Err != nil {
				fmt.Fprintf(a.stderr, "touchp: %v\n", r.Err)
			}
		}
	}

	a.logger.Info("run finished", "outcome", outcome.String(), "clean", report.Clean(),
		"created", report.Created, "touch_failed", report.TouchFailed,
		"written", report.Written, "write_failed", report.WriteFailed)

	return report.Err()
}

// Close releases the log file.
func (a *App) Close() error {
	if a.logFile != nil {
		return a.logFile.Close()
	}
	return nil
}
