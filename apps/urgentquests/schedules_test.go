package urgentquests_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pso2news.dark-nova.me/apps/urgentquests/internal/models"
	"pso2news.dark-nova.me/apps/urgentquests/pkg/schedule"
)

func TestMergeIsIdempotent(t *testing.T) {
	resetState(t)

	loc := losAngeles(t)
	source := models.Source{Title: "June Schedule", URL: "https://pso2.test/june"}
	events := []schedule.Event{
		{Time: time.Date(2020, 6, 10, 12, 0, 0, 0, loc), Name: "Urgent Quest: Alpha"},
		{Time: time.Date(2020, 6, 10, 13, 0, 0, 0, loc), Name: "Concert: Beta"},
	}

	inserted, err := testApp.Services.Schedules.Merge(context.Background(), events, source)
	require.Nil(t, err)
	assert.Len(t, inserted, 2)

	inserted, err = testApp.Services.Schedules.Merge(context.Background(), events, source)
	require.Nil(t, err)
	assert.Len(t, inserted, 0)

	stored, err := testApp.Services.Events.GetAll(context.Background())
	require.Nil(t, err)
	assert.Len(t, stored, 2)
}

func TestMergeKeepsFirstEventPerTimestamp(t *testing.T) {
	resetState(t)

	loc := losAngeles(t)
	at := time.Date(2020, 6, 10, 12, 0, 0, 0, loc)

	_, err := testApp.Services.Schedules.Merge(
		context.Background(),
		[]schedule.Event{{Time: at, Name: "Urgent Quest: Alpha"}},
		models.Source{Title: "June Schedule", URL: "https://pso2.test/june"},
	)
	require.Nil(t, err)

	inserted, err := testApp.Services.Schedules.Merge(
		context.Background(),
		[]schedule.Event{
			{Time: at.In(time.UTC), Name: "Urgent Quest: Gamma"},
			{Time: at.Add(time.Hour), Name: "Urgent Quest: Delta"},
		},
		models.Source{Title: "June Schedule (revised)", URL: "https://pso2.test/june-2"},
	)
	require.Nil(t, err)
	require.Len(t, inserted, 1)
	assert.Equal(t, "Urgent Quest: Delta", inserted[0].Name)

	stored, err := testApp.Services.Events.GetAll(context.Background())
	require.Nil(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "Urgent Quest: Alpha", stored[1].Name)
}

func TestReconcileSources(t *testing.T) {
	resetState(t)

	loc := losAngeles(t)
	june := models.Source{Title: "June Schedule", URL: "https://pso2.test/june"}
	july := models.Source{Title: "July Schedule", URL: "https://pso2.test/july"}

	_, err := testApp.Services.Schedules.Merge(
		context.Background(),
		[]schedule.Event{{Time: time.Date(2020, 6, 10, 12, 0, 0, 0, loc), Name: "A"}},
		june,
	)
	require.Nil(t, err)
	_, err = testApp.Services.Schedules.Merge(
		context.Background(),
		[]schedule.Event{{Time: time.Date(2020, 7, 10, 12, 0, 0, 0, loc), Name: "B"}},
		july,
	)
	require.Nil(t, err)

	removed, err := testApp.Services.Schedules.ReconcileSources(
		context.Background(),
		[]models.Source{june, july},
	)
	require.Nil(t, err)
	assert.Len(t, removed, 0)

	// same URL under a new title counts as a different source
	renamed := models.Source{Title: "June Schedule (updated)", URL: june.URL}
	removed, err = testApp.Services.Schedules.ReconcileSources(
		context.Background(),
		[]models.Source{renamed, july},
	)
	require.Nil(t, err)
	assert.Equal(t, []models.Source{june}, removed)

	removed, err = testApp.Services.Schedules.ReconcileSources(
		context.Background(),
		[]models.Source{},
	)
	require.Nil(t, err)
	assert.Equal(t, []models.Source{july}, removed)

	stored, err := testApp.Services.Events.GetAll(context.Background())
	require.Nil(t, err)
	assert.Len(t, stored, 0)
}
