package touch

import (
	"time"

	"github.com/araddon/dateparse"
)

// DateParser turns a free-form date string, as given to --date, into a
// concrete time.
type DateParser interface {
	Parse(value string) (time.Time, error)
}

// FreeformDateParser accepts the wide range of formats dateparse understands,
// from "2023-10-27 10:00:00" to "Oct 27, 2023". Values without an explicit
// zone are interpreted in the local timezone, the same way the shell's touch
// treats them.
type FreeformDateParser struct{}

func (FreeformDateParser) Parse(value string) (time.Time, error) {
	return dateparse.ParseLocal(value)
}
