package touch

import (
	"time"

	"touchp-go/internal/apperr"
)

// TimeSpec is the resolved pair of timestamps to apply to every target.
// A zero field means that timestamp is left unchanged, mirroring the
// os.Chtimes contract.
type TimeSpec struct {
	Access time.Time
	Modify time.Time
}

// ResolveTimeSpec determines the timestamps to apply from the options.
// The source is, in order of precedence: the reference file, the free-form
// date, the fixed-format stamp, or the current time. The -a/-m selectors then
// narrow the spec to one of the two timestamps.
//
// Resolution happens once per invocation, before any target is touched, so a
// bad date or missing reference file aborts without modifying anything.
func (e *Engine) ResolveTimeSpec(opts Options) (TimeSpec, error) {
	var atime, mtime time.Time

	switch {
	case opts.Reference != "":
		var err error
		atime, mtime, err = e.fsys.Times(opts.Reference)
		if err != nil {
			return TimeSpec{}, apperr.Wrap(apperr.CodeReferenceNotFound, err,
				"failed to get attributes of %q", opts.Reference)
		}
		e.logger.Debug("times copied from reference",
			"reference", opts.Reference, "atime", atime, "mtime", mtime)

	case opts.Date != "":
		t, err := e.dates.Parse(opts.Date)
		if err != nil {
			return TimeSpec{}, apperr.Wrap(apperr.CodeInvalidDate, err,
				"cannot parse date %q", opts.Date)
		}
		atime, mtime = t, t

	case opts.Stamp != "":
		t, err := ParseStamp(opts.Stamp, e.clock.Now())
		if err != nil {
			return TimeSpec{}, apperr.Wrap(apperr.CodeInvalidStamp, err,
				"cannot parse timestamp %q", opts.Stamp)
		}
		atime, mtime = t, t

	default:
		now := e.clock.Now()
		atime, mtime = now, now
	}

	return narrowSpec(atime, mtime, opts), nil
}

// narrowSpec zeroes out the timestamp the -a/-m selectors exclude. Passing
// both selectors, or neither, keeps both timestamps.
func narrowSpec(atime, mtime time.Time, opts Options) TimeSpec {
	switch {
	case opts.AccessOnly && !opts.ModifyOnly:
		return TimeSpec{Access: atime}
	case opts.ModifyOnly && !opts.AccessOnly:
		return TimeSpec{Modify: mtime}
	default:
		return TimeSpec{Access: atime, Modify: mtime}
	}
}
