package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pso2news.dark-nova.me/apps/urgentquests/pkg/schedule"
)

func newLegend(entries ...[2]string) (*schedule.Legend, *schedule.ColorRegistry) {
	registry := schedule.NewColorRegistry()
	legend := schedule.NewLegend(registry, schedule.PrimaryMarker)

	for _, entry := range entries {
		legend.Add(entry[0], entry[1])
	}

	return legend, registry
}

func TestResolveExactMatch(t *testing.T) {
	legend, registry := newLegend(
		[2]string{"#FF0000", "Urgent Quest: Alpha"},
		[2]string{"#00FF00", "Concert: Beta"},
	)
	resolver := schedule.NewResolver(legend, registry)

	resolution := resolver.Resolve("#00FF00", schedule.CategoryPrimary)
	assert.True(t, resolution.Resolved())
	assert.False(t, resolution.Nearest)
	assert.Equal(t, "Concert: Beta", resolution.Name)

	resolution = resolver.Resolve("#FF0000", schedule.CategoryPrimary)
	assert.Equal(t, "Urgent Quest: Alpha", resolution.Name)
	assert.False(t, resolution.Nearest)
}

func TestResolveNearestColor(t *testing.T) {
	legend, registry := newLegend(
		[2]string{"#FF0000", "Urgent Quest: Alpha"},
		[2]string{"#0000FF", "Urgent Quest: Gamma"},
	)
	resolver := schedule.NewResolver(legend, registry)

	resolution := resolver.Resolve("#F00A0A", schedule.CategoryPrimary)
	assert.True(t, resolution.Resolved())
	assert.True(t, resolution.Nearest)
	assert.Equal(t, "Urgent Quest: Alpha", resolution.Name)

	resolution = resolver.Resolve("#0A0AE0", schedule.CategoryPrimary)
	assert.Equal(t, "Urgent Quest: Gamma", resolution.Name)
}

func TestResolveNearestColorTieGoesToEarliestEntry(t *testing.T) {
	legend, registry := newLegend(
		[2]string{"#000010", "Urgent Quest: First"},
		[2]string{"#100000", "Urgent Quest: Second"},
	)
	resolver := schedule.NewResolver(legend, registry)
	assert.Equal(
		t,
		"Urgent Quest: First",
		resolver.Resolve("#000000", schedule.CategoryPrimary).Name,
	)

	legend, registry = newLegend(
		[2]string{"#100000", "Urgent Quest: Second"},
		[2]string{"#000010", "Urgent Quest: First"},
	)
	resolver = schedule.NewResolver(legend, registry)
	assert.Equal(
		t,
		"Urgent Quest: Second",
		resolver.Resolve("#000000", schedule.CategoryPrimary).Name,
	)
}

func TestResolveNearestColorRespectsCategory(t *testing.T) {
	legend, registry := newLegend(
		[2]string{"#FF0000", "Urgent Quest: Alpha"},
		[2]string{"black", "Concert: Beta"},
	)
	resolver := schedule.NewResolver(legend, registry)

	resolution := resolver.Resolve("#010101", schedule.CategoryPrimary)
	assert.True(t, resolution.Nearest)
	assert.Equal(t, "Urgent Quest: Alpha", resolution.Name)

	resolution = resolver.Resolve("#010101", schedule.CategorySecondary)
	assert.Equal(t, "Concert: Beta", resolution.Name)
}

func TestResolveUnresolved(t *testing.T) {
	legend, registry := newLegend(
		[2]string{"#00FF00", "Concert: Beta"},
	)
	resolver := schedule.NewResolver(legend, registry)

	resolution := resolver.Resolve("papayawhip", schedule.CategoryPrimary)
	assert.False(t, resolution.Resolved())
	assert.Equal(t, schedule.ReasonNotRGB, resolution.Reason)
	assert.Equal(t, "papayawhip", resolution.Token)

	resolution = resolver.Resolve("#123456", schedule.CategoryPrimary)
	assert.Equal(t, schedule.ReasonNoCandidates, resolution.Reason)

	resolution = resolver.Resolve("", schedule.CategoryPrimary)
	assert.Equal(t, schedule.ReasonEmpty, resolution.Reason)

	resolution = resolver.Resolve("#FFFFFF", schedule.CategorySecondary)
	assert.Equal(t, schedule.ReasonEmpty, resolution.Reason)
}

func TestResolveBlankColorListedInLegend(t *testing.T) {
	legend, registry := newLegend(
		[2]string{"white", "Urgent Quest: Snow"},
	)
	resolver := schedule.NewResolver(legend, registry)

	resolution := resolver.Resolve("#FFFFFF", schedule.CategoryPrimary)
	assert.True(t, resolution.Resolved())
	assert.Equal(t, "Urgent Quest: Snow", resolution.Name)
}

func TestNormalizeColor(t *testing.T) {
	token, rgb, ok := schedule.NormalizeColor("rgb(255, 0, 12)")
	assert.True(t, ok)
	assert.Equal(t, "#FF000C", token)
	assert.Equal(t, schedule.RGB{R: 255, G: 0, B: 12}, rgb)

	token, _, ok = schedule.NormalizeColor(" Black ")
	assert.True(t, ok)
	assert.Equal(t, "#000000", token)

	token, _, ok = schedule.NormalizeColor("#abc")
	assert.True(t, ok)
	assert.Equal(t, "#AABBCC", token)

	token, _, ok = schedule.NormalizeColor("papayawhip")
	assert.False(t, ok)
	assert.Equal(t, "papayawhip", token)

	_, _, ok = schedule.NormalizeColor("rgb(300, 0, 0)")
	assert.False(t, ok)
}
