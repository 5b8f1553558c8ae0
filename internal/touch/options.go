package touch

// Options carries one invocation's worth of touch settings, mapped one to one
// from the command-line flags.
type Options struct {
	// Paths are the target files, in command-line order.
	Paths []string

	// AccessOnly and ModifyOnly narrow which timestamps are changed.
	// When both are false, or both are true, access and modification times
	// are set together.
	AccessOnly bool
	ModifyOnly bool

	// NoCreate skips targets that do not exist instead of creating them.
	NoCreate bool

	// At most one of Reference, Date and Stamp is set; the command line
	// enforces their mutual exclusion.

	// Reference names an existing file whose timestamps are copied.
	Reference string

	// Date is a free-form date string, e.g. "2023-10-27 10:00:00".
	Date string

	// Stamp is a fixed-format [[CC]YY]MMDDhhmm[.ss] timestamp.
	Stamp string
}
