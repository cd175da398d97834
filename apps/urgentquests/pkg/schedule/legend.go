package schedule

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Legend maps color tokens to event names in the order the legend lists them.
type Legend struct {
	marker   string
	registry *ColorRegistry
	entries  []LegendEntry
	byToken  map[string]int
}

func NewLegend(registry *ColorRegistry, marker string) *Legend {
	return &Legend{
		marker:   marker,
		registry: registry,
		entries:  []LegendEntry{},
		byToken:  map[string]int{},
	}
}

// ParseLegend reads a two-column table of (color cell, name cell) rows.
// Rows of any other shape are skipped.
func ParseLegend(
	table *goquery.Selection,
	registry *ColorRegistry,
	marker string,
) (*Legend, error) {
	if table == nil || table.Length() == 0 {
		return nil, ErrLegendMissing
	}

	legend := NewLegend(registry, marker)

	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.ChildrenFiltered("td")
		if cells.Length() != 2 {
			return
		}

		color := cellColor(cells.Get(0))
		name := cleanText(cells.Eq(1).Text())
		if color == "" || name == "" {
			return
		}

		legend.Add(color, name)
	})

	return legend, nil
}

// Add records a raw color value for name and returns the normalized token.
func (legend *Legend) Add(color string, name string) string {
	token, rgb, hasRGB := NormalizeColor(color)
	if hasRGB {
		legend.registry.Add(token, rgb)
	}

	entry := LegendEntry{
		Token:    token,
		Name:     name,
		Category: CategoryOf(name, legend.marker),
		RGB:      rgb,
		HasRGB:   hasRGB,
	}

	if i, ok := legend.byToken[token]; ok {
		legend.entries[i] = entry
		return token
	}

	legend.byToken[token] = len(legend.entries)
	legend.entries = append(legend.entries, entry)

	return token
}

func (legend *Legend) Lookup(token string) (LegendEntry, bool) {
	i, ok := legend.byToken[token]
	if !ok {
		return LegendEntry{}, false
	}
	return legend.entries[i], true
}

func (legend *Legend) Entries() []LegendEntry {
	return legend.entries
}

func (legend *Legend) Len() int {
	return len(legend.entries)
}

func CategoryOf(name string, marker string) Category {
	if strings.HasPrefix(name, marker) {
		return CategoryPrimary
	}
	return CategorySecondary
}

func cleanText(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, "\u00a0", " "))
}
