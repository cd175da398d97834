package pso2

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

// IndexSelector matches the links to schedule pages on the index.
const IndexSelector = ".all-news-section a[href]"

var (
	ErrFetch         = errors.New("fetching schedule failed")
	ErrEmptyResponse = errors.New("empty response")
)

type client struct {
	logger    *slog.Logger
	indexURL  string
	selector  string
	collector *colly.Collector
}

// New returns a client that waits cooldown between two requests to the same
// host.
func New(logger *slog.Logger, indexURL string, cooldown time.Duration) Client {
	return NewWithSelector(logger, indexURL, IndexSelector, cooldown)
}

func NewWithSelector(
	logger *slog.Logger,
	indexURL string,
	selector string,
	cooldown time.Duration,
) Client {
	collector := colly.NewCollector(colly.AllowURLRevisit())

	//nolint:exhaustruct //other fields are optional
	err := collector.Limit(&colly.LimitRule{
		DomainGlob: "*",
		Delay:      cooldown,
	})
	if err != nil {
		panic(err)
	}

	return client{
		logger:    logger,
		indexURL:  indexURL,
		selector:  selector,
		collector: collector,
	}
}

func (client client) ListSchedules() ([]Schedule, error) {
	c := client.collector.Clone()

	schedules := []Schedule{}
	seen := map[string]bool{}

	c.OnHTML(client.selector, func(h *colly.HTMLElement) {
		url := h.Request.AbsoluteURL(h.Attr("href"))
		if url == "" || seen[url] {
			return
		}

		title := strings.Join(strings.Fields(h.Text), " ")
		if title == "" {
			title = url
		}

		seen[url] = true
		schedules = append(schedules, Schedule{Title: title, URL: url})
	})

	err := c.Visit(client.indexURL)
	if err != nil {
		return nil, fmt.Errorf("visiting index %s: %w", client.indexURL, err)
	}

	client.logger.Debug(fmt.Sprintf("index lists %d schedules", len(schedules)))

	return schedules, nil
}

func (client client) GetSchedule(url string) (*goquery.Selection, error) {
	c := client.collector.Clone()

	var page *goquery.Selection
	var parseErr error

	c.OnResponse(func(r *colly.Response) {
		if len(r.Body) == 0 {
			parseErr = ErrEmptyResponse
			return
		}

		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(r.Body))
		if err != nil {
			parseErr = err
			return
		}

		page = doc.Selection
	})

	err := c.Visit(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetch, url, err)
	}

	if parseErr != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetch, url, parseErr)
	}

	if page == nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetch, url, ErrEmptyResponse)
	}

	return page, nil
}
