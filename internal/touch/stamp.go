package touch

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseStamp parses the fixed-format --stamp value [[CC]YY]MMDDhhmm[.ss].
// The digit count decides how much of the year is spelled out: 8 digits reuse
// the current year, 10 digits give a two-digit year in the current century,
// 12 digits give the full year. Omitted seconds mean zero. The result is in
// the local timezone; now supplies the implied year or century.
func ParseStamp(stamp string, now time.Time) (time.Time, error) {
	base, secPart, hasSec := strings.Cut(stamp, ".")

	if !allDigits(base) {
		return time.Time{}, fmt.Errorf("must be all digits")
	}

	var year int
	switch len(base) {
	case 8:
		year = now.Year()
	case 10:
		yy, _ := strconv.Atoi(base[:2])
		year = (now.Year()/100)*100 + yy
		base = base[2:]
	case 12:
		year, _ = strconv.Atoi(base[:4])
		base = base[4:]
	default:
		return time.Time{}, fmt.Errorf("expected 8, 10 or 12 digits, got %d", len(base))
	}

	sec := 0
	if hasSec {
		if len(secPart) != 2 || !allDigits(secPart) {
			return time.Time{}, fmt.Errorf("seconds must be two digits")
		}
		sec, _ = strconv.Atoi(secPart)
		if sec > 59 {
			return time.Time{}, fmt.Errorf("seconds out of range")
		}
	}

	month, _ := strconv.Atoi(base[:2])
	day, _ := strconv.Atoi(base[2:4])
	hour, _ := strconv.Atoi(base[4:6])
	minute, _ := strconv.Atoi(base[6:8])

	t := time.Date(year, time.Month(month), day, hour, minute, sec, 0, time.Local)

	// time.Date normalizes out-of-range components, so February 30 silently
	// becomes March 2. Reject any stamp that moved during construction.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute {
		return time.Time{}, fmt.Errorf("invalid calendar time")
	}

	return t, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
