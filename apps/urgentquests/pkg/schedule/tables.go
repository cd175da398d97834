package schedule

import (
	"github.com/PuerkitoBio/goquery"
)

// decodeDayTables handles pages without a legend, where every day is its own
// table of (time range, event name) rows headed by a "February 8th" label.
func (decoder *Decoder) decodeDayTables(tables *goquery.Selection, events *eventSet) {
	tables.Each(func(i int, table *goquery.Selection) {
		rows := table.Find("tr")
		if rows.Length() == 0 {
			return
		}

		date, err := parseLongDate(table.Prev().Text(), decoder.today)
		if err != nil && rowCells(rows.First()).Length() == 1 {
			// some tables carry their date in a title row instead
			date, err = parseLongDate(rows.First().Text(), decoder.today)
		}
		if err != nil {
			decoder.logger.Debug("skipping day table without date", "table", i)
			return
		}

		rows = dropTitleRow(rows)
		if rows.Length() < 2 {
			return
		}

		// the first remaining row holds the column titles
		rows.Slice(1, goquery.ToEnd).Each(func(_ int, row *goquery.Selection) {
			cells := rowCells(row)
			if cells.Length() != 2 {
				return
			}

			start, errRange := parseTimeRange(cells.Eq(0).Text())
			if errRange != nil {
				return
			}

			events.add(
				date.At(start.hour, start.minute, decoder.location),
				cleanText(cells.Eq(1).Text()),
			)
		})
	})
}
