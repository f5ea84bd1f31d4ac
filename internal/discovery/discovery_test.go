package discovery

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Title
	}
	return out
}

func TestSearch_SingleTopic(t *testing.T) {
	results, err := New().Search("Silicon band structure")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Semiconductor Physics & Materials Science",
		"Advanced Silicon Materials for Next-Generation Devices",
		"Recent Advances in Semiconductor Technology",
	}, titles(results))
	assert.True(t, results[0].HighlyRelevant())
	assert.False(t, results[1].HighlyRelevant())
}

func TestSearch_TopicsAccumulateAndTruncate(t *testing.T) {
	results, err := New().Search("silicon device design process analog")
	require.NoError(t, err)
	require.Len(t, results, DefaultMaxResults)

	assert.Equal(t, []string{
		"Semiconductor Physics & Materials Science",
		"Core Semiconductor Devices",
		"Wafer Fabrication Overview & Cleanrooms",
		"Introduction to Analog Circuits",
		"Introduction to Digital Logic & Circuits",
		"Advanced Silicon Materials for Next-Generation Devices",
		"Evolution of Transistor Architectures: From Planar to 3D",
	}, titles(results))

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Relevance, results[i].Relevance)
	}
}

func TestSearch_GeneralFallback(t *testing.T) {
	results, err := New().Search("hello")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Recent Advances in Semiconductor Technology",
		"Welcome & The Modern Semiconductor Era",
		"Semiconductor Industry Outlook 2024",
		"The Impact of AI on Semiconductor Design and Manufacturing",
	}, titles(results))
}

func TestSearch_EmptyQuery(t *testing.T) {
	_, err := New().Search("   ")
	assert.True(t, errors.Is(err, ErrEmptyQuery))
}

func TestSearch_MaxResultsOption(t *testing.T) {
	results, err := New(WithMaxResults(2)).Search("mosfet")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = New(WithMaxResults(0)).Search("silicon device design process analog")
	require.NoError(t, err)
	assert.Len(t, results, DefaultMaxResults)
}

func TestSearch_DoesNotMutateTopics(t *testing.T) {
	a := New()
	first, err := a.Search("analog design")
	require.NoError(t, err)
	first[0].Title = "changed"

	second, err := a.Search("analog design")
	require.NoError(t, err)
	assert.NotEqual(t, "changed", second[0].Title)
}

func TestSeedQuery(t *testing.T) {
	cases := map[string]string{
		"Semiconductor Physics & Materials Science": "Semiconductor",
		"Introduction to Digital Logic & Circuits":  "Digital",
		"The Global Semiconductor Landscape":        "Global",
		"Welcome & The Modern Semiconductor Era":    "Welcome",
		"":                                          "",
		"To And The For":                            "",
	}
	for title, want := range cases {
		assert.Equal(t, want, SeedQuery(title), title)
	}
}

func TestFilterAndCount(t *testing.T) {
	results, err := New().Search("process")
	require.NoError(t, err)

	assert.Len(t, FilterByType(results, TypeAll), len(results))
	assert.Len(t, FilterByType(results, ""), len(results))

	news := FilterByType(results, TypeNews)
	require.Len(t, news, 1)
	assert.Equal(t, "TSMC Announces 2nm Process Technology Roadmap", news[0].Title)

	counts := CountByType(results)
	assert.Equal(t, 3, counts[TypeAll])
	assert.Equal(t, 1, counts[TypeHandbook])
	assert.Equal(t, 1, counts[TypeNews])
	assert.Equal(t, 1, counts[TypeWeb])
	assert.Equal(t, 0, counts[TypePaper])
}

func TestFormatText(t *testing.T) {
	results := []Result{
		{Title: "Chapter", Description: "Local", URL: "/handbook/ch3", Source: "Silicon Guide Handbook", Type: TypeHandbook},
		{Title: "Paper", Description: "Remote", URL: "https://example.com/p", Source: "Journal", Type: TypePaper, Date: "2023-01-02"},
	}

	got := FormatText("physics", results, "https://guide.example/")
	want := "Research Results for \"physics\":\n\n" +
		"Chapter\nLocal\nSource: Silicon Guide Handbook\nURL: https://guide.example/handbook/ch3\n" +
		"\n\n" +
		"Paper\nRemote\nSource: Journal (2023-01-02)\nURL: https://example.com/p\n"
	assert.Equal(t, want, got)
}
