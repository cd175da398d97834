package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pso2news.dark-nova.me/apps/urgentquests/pkg/schedule"
)

func TestParseLegend(t *testing.T) {
	doc := parseHTML(t, `<table>
		<tr><td style="background: rgb(255, 0, 0);"></td><td>Urgent Quest:&nbsp;Alpha</td></tr>
		<tr><td style="background:black"></td><td>Concert: Beta</td></tr>
		<tr><td style="background-color: papayawhip"></td><td>Urgent Quest: Gamma</td></tr>
		<tr><td bgcolor="#00ff00"></td><td> Urgent Quest: Delta </td></tr>
		<tr><td colspan="2">Legend</td></tr>
		<tr><td></td><td>No color</td></tr>
	</table>`)

	registry := schedule.NewColorRegistry()
	legend, err := schedule.ParseLegend(doc.Find("table"), registry, schedule.PrimaryMarker)
	require.Nil(t, err)

	entries := legend.Entries()
	require.Len(t, entries, 4)

	assert.Equal(t, "#FF0000", entries[0].Token)
	assert.Equal(t, "Urgent Quest: Alpha", entries[0].Name)
	assert.Equal(t, schedule.CategoryPrimary, entries[0].Category)

	assert.Equal(t, "#000000", entries[1].Token)
	assert.Equal(t, schedule.CategorySecondary, entries[1].Category)

	assert.Equal(t, "papayawhip", entries[2].Token)
	assert.False(t, entries[2].HasRGB)

	assert.Equal(t, "#00FF00", entries[3].Token)
	assert.Equal(t, "Urgent Quest: Delta", entries[3].Name)

	assert.Equal(t, 3, registry.Len())
	rgb, ok := registry.Lookup("#FF0000")
	assert.True(t, ok)
	assert.Equal(t, schedule.RGB{R: 255}, rgb)
}

func TestParseLegendMissing(t *testing.T) {
	doc := parseHTML(t, `<p>no tables</p>`)

	_, err := schedule.ParseLegend(doc.Find("table"), schedule.NewColorRegistry(), schedule.PrimaryMarker)
	assert.ErrorIs(t, err, schedule.ErrLegendMissing)
}

func TestLegendDuplicateTokenKeepsPosition(t *testing.T) {
	legend, _ := newLegend(
		[2]string{"#FF0000", "Urgent Quest: Alpha"},
		[2]string{"#00FF00", "Concert: Beta"},
		[2]string{"rgb(255, 0, 0)", "Urgent Quest: Omega"},
	)

	entries := legend.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Urgent Quest: Omega", entries[0].Name)

	entry, ok := legend.Lookup("#FF0000")
	assert.True(t, ok)
	assert.Equal(t, "Urgent Quest: Omega", entry.Name)
}

func TestRegistryAccumulatesAcrossLegends(t *testing.T) {
	registry := schedule.NewColorRegistry()

	first := schedule.NewLegend(registry, schedule.PrimaryMarker)
	first.Add("#FF0000", "Urgent Quest: Alpha")

	second := schedule.NewLegend(registry, schedule.PrimaryMarker)
	second.Add("#0000FF", "Urgent Quest: Gamma")

	assert.Equal(t, 2, registry.Len())
	assert.Equal(t, 1, first.Len())
	assert.Equal(t, 1, second.Len())
}
