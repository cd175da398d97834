package schedule

import (
	"errors"
	"time"
)

var (
	ErrScheduleNotFound = errors.New("no schedule tables found")
	ErrLegendMissing    = errors.New("schedule grid has no color legend")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidTime      = errors.New("invalid time")
)

// PrimaryMarker prefixes the names of real scheduled events in a legend.
const PrimaryMarker = "Urgent Quest"

//nolint:gochecknoglobals //static list of banners that are not events
var NotEvents = []string{
	"Server Maintenance (Users won't be able to log in)",
	"Servers Open (Start of Extended Period)",
	"Server Shutdown (End of the Closed Beta Test)",
}

type Category int

const (
	CategoryPrimary Category = iota
	CategorySecondary
)

func (c Category) String() string {
	if c == CategoryPrimary {
		return "primary"
	}
	return "secondary"
}

type Event struct {
	Time time.Time `json:"time" yaml:"time"`
	Name string    `json:"name" yaml:"name"`
}

type RGB struct {
	R uint8
	G uint8
	B uint8
}

type LegendEntry struct {
	Token    string
	Name     string
	Category Category
	RGB      RGB
	HasRGB   bool
}

type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func (d Date) At(hour int, minute int, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, hour, minute, 0, 0, loc)
}

func isNotEvent(name string) bool {
	for _, banner := range NotEvents {
		if name == banner {
			return true
		}
	}
	return false
}
