package pso2_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"pso2news.dark-nova.me/apps/urgentquests/pkg/pso2"
)

const indexPage = `<html><body>
<ul class="all-news-section">
	<li><a href="/news/urgent-quests/2020-06">June  Schedule</a></li>
	<li><a href="/news/urgent-quests/2020-07">July Schedule</a></li>
	<li><a href="/news/urgent-quests/2020-06">June Schedule (again)</a></li>
</ul>
<a href="/elsewhere">Not listed</a>
</body></html>`

const schedulePage = `<html><body><div class="emergency cms"><table></table></div></body></html>`

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/news/urgent-quests", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, indexPage)
	})
	mux.HandleFunc("/news/urgent-quests/2020-06", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, schedulePage)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func TestListSchedules(t *testing.T) {
	server := newServer(t)
	client := pso2.New(logging.NewNopLogger(), server.URL+"/news/urgent-quests", 0)

	schedules, err := client.ListSchedules()
	require.Nil(t, err)

	assert.Equal(t, []pso2.Schedule{
		{Title: "June Schedule", URL: server.URL + "/news/urgent-quests/2020-06"},
		{Title: "July Schedule", URL: server.URL + "/news/urgent-quests/2020-07"},
	}, schedules)
}

func TestGetSchedule(t *testing.T) {
	server := newServer(t)
	client := pso2.New(logging.NewNopLogger(), server.URL+"/news/urgent-quests", 0)

	page, err := client.GetSchedule(server.URL + "/news/urgent-quests/2020-06")
	require.Nil(t, err)
	assert.Equal(t, 1, page.Find("div.emergency.cms table").Length())

	_, err = client.GetSchedule(server.URL + "/news/urgent-quests/missing")
	assert.ErrorIs(t, err, pso2.ErrFetch)
}
