// Package schedule decodes Urgent Quest schedule pages. A schedule is a grid
// of time rows and day columns whose cells are colored according to a legend
// table; some pages instead list each day as a plain two-column table.
package schedule

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	// rows before the first time slot: dates, weekdays and the time zone label
	gridHeaderRows = 3
	slotLength     = 30 * time.Minute
	widthEpsilon   = 1e-6
)

// Decoder turns one schedule page into events. The reference date and the
// color registry belong to a single run and are shared by every page the run
// decodes.
type Decoder struct {
	logger   *slog.Logger
	registry *ColorRegistry
	today    time.Time
	location *time.Location
	marker   string
}

func NewDecoder(
	logger *slog.Logger,
	registry *ColorRegistry,
	today time.Time,
	location *time.Location,
) *Decoder {
	return &Decoder{
		logger:   logger,
		registry: registry,
		today:    today,
		location: location,
		marker:   PrimaryMarker,
	}
}

// Decode returns the events of a page sorted by time. Malformed rows and
// cells are skipped; only a page without recognizable tables or a grid
// without its legend is an error.
func (decoder *Decoder) Decode(page *goquery.Selection) ([]Event, error) {
	container := page.Find("div.emergency.cms").First()
	if container.Length() == 0 {
		container = page
	}

	tables := container.Find("table")
	if tables.Length() == 0 {
		return nil, ErrScheduleNotFound
	}

	events := newEventSet(decoder.logger)

	for i := 0; i < tables.Length(); i += 2 {
		rows := dropTitleRow(tables.Eq(i).Find("tr"))
		if rows.Length() == 0 {
			continue
		}

		if isDayTableHeader(rows.First()) {
			decoder.decodeDayTables(tables, events)
			return events.sorted(), nil
		}

		if i+1 >= tables.Length() {
			return nil, fmt.Errorf("%w: grid %d", ErrLegendMissing, i/2)
		}

		legend, err := ParseLegend(tables.Eq(i+1), decoder.registry, decoder.marker)
		if err != nil {
			return nil, err
		}

		decoder.decodeGrid(rows, legend, events)
	}

	return events.sorted(), nil
}

// isDayTableHeader reports whether a header row belongs to a plain
// (time range, event) table. A grid header with a single day column also has
// two cells, but its second cell is an M/D date.
func isDayTableHeader(header *goquery.Selection) bool {
	cells := rowCells(header)
	if cells.Length() != 2 {
		return false
	}

	return !monthDayPattern.MatchString(cleanText(cells.Eq(1).Text()))
}

type column struct {
	date  Date
	dated bool
}

func (decoder *Decoder) decodeGrid(
	rows *goquery.Selection,
	legend *Legend,
	events *eventSet,
) {
	resolver := NewResolver(legend, decoder.registry)

	headers := rowCells(rows.First())
	if headers.Length() < 2 {
		decoder.logger.Debug("skipping grid without day columns")
		return
	}

	columns := make([]column, 0, headers.Length())
	reference := 0.0

	headers.Slice(1, goquery.ToEnd).Each(func(i int, header *goquery.Selection) {
		if i == 0 {
			reference = cellWidth(header.Get(0))
		}

		date, err := parseMonthDay(header.Text(), decoder.today)
		if err != nil {
			decoder.logger.Debug("skipping undated column", "column", i, "header", header.Text())
			columns = append(columns, column{})
			return
		}

		columns = append(columns, column{date: date, dated: true})
	})

	// without header widths every cell counts as its colspan, whatever width
	// the cell itself claims
	widthed := reference > 0
	if !widthed {
		reference = 1
	}

	lastResolved := make([]time.Time, len(columns))

	for r := gridHeaderRows; r < rows.Length(); r++ {
		cells := rowCells(rows.Eq(r))
		if cells.Length() < 2 {
			continue
		}

		slot, err := parseClock(cells.First().Text())
		if err != nil {
			decoder.logger.Debug("skipping row without time", "row", r)
			continue
		}

		running := 0.0
		cells.Slice(1, goquery.ToEnd).Each(func(_ int, cell *goquery.Selection) {
			node := cell.Get(0)

			width := 0.0
			if widthed {
				width = cellWidth(node)
			}
			if width <= 0 {
				width = float64(colspan(node)) * reference
			}
			running += width

			index := int(math.Ceil(running/reference-widthEpsilon)) - 1
			if index < 0 || index >= len(columns) || !columns[index].dated {
				return
			}

			at := columns[index].date.At(slot.hour, slot.minute, decoder.location)
			token, _, _ := NormalizeColor(cellColor(node))

			resolution := resolver.Resolve(token, fallbackCategory)
			if !resolution.Resolved() {
				if resolution.Reason != ReasonEmpty {
					decoder.logger.Debug(
						"dropping cell with unresolved color",
						"time", at,
						"token", resolution.Token,
						"reason", resolution.Reason.String(),
					)
				}
				return
			}

			if resolution.Nearest {
				decoder.logger.Debug(
					"resolved color by nearest legend entry",
					"time", at,
					"token", resolution.Token,
					"name", resolution.Name,
					"continuation", at.Minute() != 0 &&
						lastResolved[index].Equal(at.Add(-slotLength)),
				)
			}

			lastResolved[index] = at
			events.add(at, resolution.Name)
		})
	}
}

func dropTitleRow(rows *goquery.Selection) *goquery.Selection {
	if rows.Length() > 1 && rowCells(rows.First()).Length() == 1 {
		return rows.Slice(1, goquery.ToEnd)
	}
	return rows
}

func rowCells(row *goquery.Selection) *goquery.Selection {
	return row.ChildrenFiltered("td, th")
}

func cellWidth(node *html.Node) float64 {
	if node == nil {
		return 0
	}

	raw := styleProperty(node, "width")
	if raw == "" {
		raw = attr(node, "width")
	}

	raw = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	raw = strings.TrimSuffix(raw, "px")

	width, err := strconv.ParseFloat(raw, 64)
	if err != nil || width < 0 {
		return 0
	}

	return width
}

func colspan(node *html.Node) int {
	span, err := strconv.Atoi(strings.TrimSpace(attr(node, "colspan")))
	if err != nil || span < 1 {
		return 1
	}
	return span
}

// eventSet keeps the first event seen at every instant.
type eventSet struct {
	logger *slog.Logger
	seen   map[int64]bool
	events []Event
}

func newEventSet(logger *slog.Logger) *eventSet {
	return &eventSet{
		logger: logger,
		seen:   map[int64]bool{},
		events: []Event{},
	}
}

func (set *eventSet) add(at time.Time, name string) {
	if name == "" || isNotEvent(name) {
		return
	}

	if set.seen[at.Unix()] {
		set.logger.Debug("discarding second event at the same time", "time", at, "name", name)
		return
	}

	set.seen[at.Unix()] = true
	set.events = append(set.events, Event{Time: at, Name: name})
}

func (set *eventSet) sorted() []Event {
	slices.SortStableFunc(set.events, func(a Event, b Event) int {
		return a.Time.Compare(b.Time)
	})
	return set.events
}
