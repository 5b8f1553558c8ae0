package app

import (
	"touchp-go/internal/apperr"
	"touchp-go/internal/touch"
)

// RunReport tallies the per-file outcomes of one invocation. The touch
// phase fills in the counts up front; the write phase adds its results
// after the editor closes.
type RunReport struct {
	Total       int
	Created     int
	Skipped     int
	TouchFailed int
	Written     int
	WriteFailed int
}

// NewRunReport tallies the touch phase.
func NewRunReport(targets []touch.Target) *RunReport {
	r := &RunReport{Total: len(targets)}
	for _, t := range targets {
		switch {
		case t.Err != nil:
			r.TouchFailed++
		case t.Skipped:
			r.Skipped++
		case t.Created:
			r.Created++
		}
	}
	return r
}

// AddWrites folds in the write phase results.
func (r *RunReport) AddWrites(results []touch.WriteResult) {
	for _, res := range results {
		if res.Err != nil {
			r.WriteFailed++
		} else {
			r.Written++
		}
	}
}

// Clean returns true if every touch and write succeeded.
func (r *RunReport) Clean() bool {
	return r.TouchFailed == 0 && r.WriteFailed == 0
}

// Err converts the tallied failures into the run's final error. A clean
// run returns nil.
func (r *RunReport) Err() error {
	switch {
	case r.TouchFailed > 0:
		return apperr.New(apperr.CodeFilesystem,
			"failed to touch %d of %d files", r.TouchFailed, r.Total)
	case r.WriteFailed > 0:
		return apperr.New(apperr.CodeFilesystem,
			"failed to write %d of %d files", r.WriteFailed, r.Written+r.WriteFailed)
	}
	return nil
}
