package mocks

import (
	"fmt"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"pso2news.dark-nova.me/apps/urgentquests/pkg/pso2"
)

const (
	JuneScheduleURL   = "https://pso2.test/news/urgent-quests/2020-06"
	BrokenScheduleURL = "https://pso2.test/news/urgent-quests/broken"
)

//nolint:lll //fixture
const juneSchedule = `<html><body><div class="emergency cms">
<table>
	<tr><td>June Urgent Quests</td></tr>
	<tr><td>Date</td><td style="width: 14.28%">6/10</td><td style="width: 14.28%">6/11</td></tr>
	<tr><td></td><td>Wed</td><td>Thu</td></tr>
	<tr><td>PDT</td><td></td><td></td></tr>
	<tr><td>12:00 PM</td><td style="background: rgb(255, 0, 0)"></td><td></td></tr>
	<tr><td>12:30 PM</td><td style="background: rgb(255, 0, 0)"></td><td></td></tr>
	<tr><td>1:00 PM</td><td style="background: rgb(0, 255, 0)"></td><td style="background: rgb(1, 1, 1)"></td></tr>
</table>
<table>
	<tr><td style="background: rgb(255, 0, 0)"></td><td>Urgent Quest: Alpha</td></tr>
	<tr><td style="background: rgb(0, 255, 0)"></td><td>Concert: Beta</td></tr>
</table>
</div></body></html>`

type MockPSO2Client struct {
	mu        sync.Mutex
	schedules []pso2.Schedule
	pages     map[string]string
}

// NewMockPSO2Client returns a client with an empty index.
func NewMockPSO2Client() *MockPSO2Client {
	return &MockPSO2Client{
		mu:        sync.Mutex{},
		schedules: []pso2.Schedule{},
		pages:     map[string]string{},
	}
}

// LoadFixtures lists one decodable schedule and one page without tables.
func (m *MockPSO2Client) LoadFixtures() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.schedules = []pso2.Schedule{
		{Title: "June Schedule", URL: JuneScheduleURL},
		{Title: "Broken Schedule", URL: BrokenScheduleURL},
	}
	m.pages = map[string]string{
		JuneScheduleURL:   juneSchedule,
		BrokenScheduleURL: `<html><body><p>Coming soon</p></body></html>`,
	}
}

func (m *MockPSO2Client) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.schedules = []pso2.Schedule{}
	m.pages = map[string]string{}
}

func (m *MockPSO2Client) ListSchedules() ([]pso2.Schedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]pso2.Schedule{}, m.schedules...), nil
}

func (m *MockPSO2Client) GetSchedule(url string) (*goquery.Selection, error) {
	m.mu.Lock()
	page, ok := m.pages[url]
	m.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", pso2.ErrFetch, url)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, err
	}

	return doc.Selection, nil
}
