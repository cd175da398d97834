package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

//nolint:gochecknoglobals //compiled once
var (
	monthDayPattern = regexp.MustCompile(`^\s*(\d{1,2})\s*/\s*(\d{1,2})\s*$`)
	numberPattern   = regexp.MustCompile(`[0-9]+`)
)

// ResolveDate places a month and day without a year relative to today.
// Months before the current one belong to next year, months more than one
// ahead belong to last year, anything else to this year.
func ResolveDate(month int, day int, today time.Time) (Date, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return Date{}, fmt.Errorf("%w: %d/%d", ErrInvalidDate, month, day)
	}

	year := today.Year()
	switch {
	case month < int(today.Month()):
		year++
	case month-int(today.Month()) > 1:
		year--
	}

	normalized := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if normalized.Day() != day {
		return Date{}, fmt.Errorf("%w: %d/%d/%d", ErrInvalidDate, month, day, year)
	}

	return Date{Year: year, Month: time.Month(month), Day: day}, nil
}

// parseMonthDay parses a grid column header such as "3/14".
func parseMonthDay(header string, today time.Time) (Date, error) {
	match := monthDayPattern.FindStringSubmatch(cleanText(header))
	if match == nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, header)
	}

	month, _ := strconv.Atoi(match[1])
	day, _ := strconv.Atoi(match[2])

	return ResolveDate(month, day, today)
}

// parseLongDate parses a heading such as "February 8th".
func parseLongDate(heading string, today time.Time) (Date, error) {
	fields := strings.Fields(cleanText(heading))
	if len(fields) < 2 {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, heading)
	}

	month := 0
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(fields[0], m.String()) {
			month = int(m)
			break
		}
	}

	day, err := strconv.Atoi(numberPattern.FindString(fields[1]))
	if month == 0 || err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, heading)
	}

	return ResolveDate(month, day, today)
}
