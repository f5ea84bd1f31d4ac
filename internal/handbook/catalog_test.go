package handbook

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCatalog(t *testing.T) {
	c, err := Embedded()
	require.NoError(t, err)

	ids := c.ChapterIDs()
	require.Len(t, ids, 14)
	assert.Equal(t, "ch1", ids[0])
	assert.Equal(t, "ch14", ids[13])

	ch3, err := c.Chapter("ch3")
	require.NoError(t, err)
	assert.Equal(t, "Semiconductor Physics & Materials Science", ch3.Title)
	assert.Equal(t, "I. Semiconductor Fundamentals", ch3.Section)
	assert.NotEmpty(t, ch3.KeyTopics)
	assert.NotEmpty(t, ch3.LearningObjectives)
	assert.Equal(t, "/handbook/ch3", ch3.Path())

	assert.Equal(t, []string{
		"Introduction",
		"I. Semiconductor Fundamentals",
		"II. IC Design & EDA",
		"III. Manufacturing Processes",
	}, c.Sections())

	intro := c.ChaptersBySection("Introduction")
	require.Len(t, intro, 2)
	assert.Equal(t, "ch1", intro[0].ID)
	assert.Equal(t, "ch2", intro[1].ID)
	assert.Empty(t, c.ChaptersBySection("IV. Nowhere"))
}

func TestCatalogLookups(t *testing.T) {
	c, err := Embedded()
	require.NoError(t, err)

	res, err := c.Resource("res3_1")
	require.NoError(t, err)
	assert.Equal(t, "Band Theory of Solids", res.Title)

	owner, err := c.ResourceChapter("res3_1")
	require.NoError(t, err)
	assert.Equal(t, "ch3", owner.ID)

	resources, err := c.Resources("ch11")
	require.NoError(t, err)
	assert.Len(t, resources, 3)

	_, err = c.Chapter("ch99")
	assert.True(t, errors.Is(err, ErrChapterNotFound))

	_, err = c.Resources("ch99")
	assert.True(t, errors.Is(err, ErrChapterNotFound))

	_, err = c.Resource("res99")
	assert.True(t, errors.Is(err, ErrResourceNotFound))

	summaries := c.Chapters()
	require.Len(t, summaries, 14)
	assert.Equal(t, 4, summaries[0].ResourceCount)
}

func TestParse_ReportsEveryProblem(t *testing.T) {
	data := []byte(`
chapters:
  - id: ch1
    title: One
    resources:
      - id: r1
        title: First
        url: https://example.com/1
      - id: r1
        title: Duplicate
        url: https://example.com/2
      - id: r2
        title: ""
        url: https://example.com/3
  - id: ch1
    title: Again
  - id: ""
    title: Nameless
`)
	_, err := Parse(data)
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 4)
	assert.Contains(t, err.Error(), "resource r1: duplicate id")
	assert.Contains(t, err.Error(), "resource r2: missing title")
	assert.Contains(t, err.Error(), "chapter ch1: duplicate id")
	assert.Contains(t, err.Error(), "chapter #3: missing id")
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse([]byte("chapters: []"))
	assert.ErrorContains(t, err, "no chapters")

	_, err = Parse([]byte("chapters: [ {"))
	assert.ErrorContains(t, err, "failed to parse catalog")
}

func TestChapterIDFromPath(t *testing.T) {
	cases := []struct {
		path string
		id   string
		ok   bool
	}{
		{"/handbook/ch3", "ch3", true},
		{"/handbook/ch8/", "ch8", true},
		{"/handbook/ch5?tab=resources", "ch5", true},
		{"/handbook/", "", false},
		{"/resources/res5", "", false},
		{"https://example.com/tsmc-2nm", "", false},
	}
	for _, tc := range cases {
		id, ok := ChapterIDFromPath(tc.path)
		assert.Equal(t, tc.id, id, tc.path)
		assert.Equal(t, tc.ok, ok, tc.path)
	}
}
