package testutil

import (
	"time"

	"touchp-go/internal/touch"
)

// StubDateParser returns a fixed result or error for every input.
type StubDateParser struct {
	Result time.Time
	Err    error
}

func (p StubDateParser) Parse(string) (time.Time, error) {
	return p.Result, p.Err
}

// Compile-time check
var _ touch.DateParser = StubDateParser{}
