package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

//nolint:gochecknoglobals //compiled once
var (
	clockPattern    = regexp.MustCompile(`(?i)^\s*(\d{1,2}):(\d{2})\s*([ap])\.?\s*m\.?\s*$`)
	rangeSeparator  = regexp.MustCompile(`\s*[–—-]\s*`)
	rangeEndPattern = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*([ap])\.?\s*m`)
	startPattern    = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(?:([ap])\.?\s*m)?`)
)

type clock struct {
	hour   int
	minute int
}

// parseClock parses a 12-hour row label such as "12:30 PM".
func parseClock(label string) (clock, error) {
	match := clockPattern.FindStringSubmatch(cleanText(label))
	if match == nil {
		return clock{}, fmt.Errorf("%w: %q", ErrInvalidTime, label)
	}

	return to24h(match[1], match[2], match[3], label)
}

// parseTimeRange parses the start of a range such as "0:00 – 0:30am". The
// start takes its own meridiem when it has one, otherwise the end's.
func parseTimeRange(text string) (clock, error) {
	parts := rangeSeparator.Split(cleanText(text), 2)
	if len(parts) != 2 {
		return clock{}, fmt.Errorf("%w: %q", ErrInvalidTime, text)
	}

	start := startPattern.FindStringSubmatch(parts[0])
	end := rangeEndPattern.FindStringSubmatch(parts[1])
	if start == nil || end == nil {
		return clock{}, fmt.Errorf("%w: %q", ErrInvalidTime, text)
	}

	meridiem := start[3]
	if meridiem == "" {
		meridiem = end[3]
	}

	return to24h(start[1], start[2], meridiem, text)
}

func to24h(hourStr string, minuteStr string, meridiem string, raw string) (clock, error) {
	hour, errHour := strconv.Atoi(hourStr)
	minute, errMinute := strconv.Atoi(minuteStr)
	if errHour != nil || errMinute != nil || hour > 12 || minute > 59 {
		return clock{}, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
	}

	hour %= 12
	if strings.EqualFold(meridiem, "p") {
		hour += 12
	}

	return clock{hour: hour, minute: minute}, nil
}
