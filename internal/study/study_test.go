package study

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siliconguide.io/silicon-guide/internal/handbook"
)

func TestLearningPath(t *testing.T) {
	path := LearningPath()
	require.Len(t, path, 6)

	assert.Equal(t, Beginner, path[0].Difficulty)
	assert.Equal(t, ItemResource, path[1].Type)
	assert.Equal(t, Advanced, path[5].Difficulty)

	catalog, err := handbook.Embedded()
	require.NoError(t, err)
	for _, item := range path {
		if item.Type != ItemChapter {
			continue
		}
		id, ok := handbook.ChapterIDFromPath(item.URL)
		require.True(t, ok, item.URL)
		_, err := catalog.Chapter(id)
		assert.NoError(t, err, item.URL)
	}
}

func TestFormatLearningPath(t *testing.T) {
	items := LearningPath()[:2]
	got := FormatLearningPath(items, "https://guide.example/")

	want := "My Silicon Guide Learning Path:\n\n" +
		"1. Semiconductor Physics & Materials (beginner)\n" +
		"   Build a solid foundation in semiconductor physics, focusing on band theory and carrier transport.\n" +
		"   URL: https://guide.example/handbook/ch3\n" +
		"\n" +
		"2. Introduction to Semiconductor Physics (beginner)\n" +
		"   A comprehensive introduction to the basics of semiconductor physics, including atomic structure and material properties.\n" +
		"   URL: https://guide.example/resources/res5\n"
	assert.Equal(t, want, got)
}

func TestSessionSummary(t *testing.T) {
	s := SessionSummary()
	assert.True(t, strings.HasPrefix(s, "# Session Summary\n"))
	assert.Contains(t, s, "## Time Distribution")
	assert.Contains(t, s, "3. Basic circuit design principles")
}

func TestSummarizeResource(t *testing.T) {
	t.Run("with keywords", func(t *testing.T) {
		got := SummarizeResource(handbook.Resource{
			Title:      "Band Theory of Solids",
			Difficulty: "Intermediate",
			Keywords:   []string{"band theory", "energy gap"},
		})
		assert.True(t, strings.HasPrefix(got, `This is an AI-generated summary of "Band Theory of Solids".`))
		assert.Contains(t, got, "1. The resource covers essential concepts in band theory, energy gap.")
		assert.Contains(t, got, "2. It's suitable for Intermediate level learners.")
		assert.True(t, strings.HasSuffix(got, "related to band theory for deeper understanding."))
	})

	t.Run("without keywords", func(t *testing.T) {
		got := SummarizeResource(handbook.Resource{Title: "Untitled", Difficulty: "Beginner"})
		assert.Contains(t, got, "essential concepts in the topic.")
		assert.True(t, strings.HasSuffix(got, "related to this topic for deeper understanding."))
	})
}
