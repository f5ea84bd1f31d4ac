package assistant

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siliconguide.io/silicon-guide/internal/handbook"
)

func TestClassify_Intents(t *testing.T) {
	c := Default()

	cases := []struct {
		name      string
		query     string
		intent    Intent
		citations int
	}{
		{"session summary", "Can you summarize my session?", IntentSessionSummary, 3},
		{"session summary upper case", "SUMMARIZE THIS SESSION", IntentSessionSummary, 3},
		{"summarize without session", "summarize band theory", IntentFallback, 0},
		{"learning path", "Build me a learning path", IntentLearningPath, 5},
		{"recommend", "What do you recommend next?", IntentLearningPath, 5},
		{"what should i study", "What should I study first?", IntentLearningPath, 5},
		{"latest", "What's the latest on 2nm?", IntentResearch, 2},
		{"news", "any news from fabs", IntentResearch, 2},
		{"recent developments", "Recent developments in GaN", IntentResearch, 2},
		{"outside the handbook", "look outside the handbook please", IntentResearch, 2},
		{"physics", "Explain semiconductor physics", IntentPhysics, 2},
		{"physics alone", "physics basics", IntentPhysics, 2},
		{"ic design", "How does IC design work?", IntentICDesign, 3},
		{"integrated circuit", "what is an integrated circuit", IntentICDesign, 3},
		{"fallback", "hello", IntentFallback, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := c.Classify(tc.query, Context{})
			assert.Equal(t, tc.intent, resp.Intent)
			assert.Len(t, resp.Citations, tc.citations)
			assert.NotEmpty(t, resp.Text)
		})
	}
}

func TestClassify_Priority(t *testing.T) {
	c := Default()

	cases := []struct {
		query  string
		intent Intent
	}{
		{"summarize my session on physics", IntentSessionSummary},
		{"summarize session and recommend a learning path", IntentSessionSummary},
		{"recommend the latest news", IntentLearningPath},
		{"latest physics research", IntentResearch},
		{"physics of integrated circuit design", IntentPhysics},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.intent, c.Classify(tc.query, Context{}).Intent, tc.query)
	}
}

func TestClassify_SessionSummaryCitations(t *testing.T) {
	resp := Default().Classify("summarize session", Context{})

	require.Len(t, resp.Citations, 3)
	assert.Equal(t, []Citation{
		{Title: "Semiconductor Physics & Materials", Type: SourceSessionSummary},
		{Title: "Electronic Structure & Carrier Transport", Type: SourceSessionSummary},
		{Title: "Fundamental Semiconductor Devices", Type: SourceSessionSummary},
	}, resp.Citations)
}

func TestClassify_LearningPathCitationsResolve(t *testing.T) {
	catalog, err := handbook.Embedded()
	require.NoError(t, err)

	resp := Default().Classify("what should i study", Context{})
	require.Len(t, resp.Citations, 5)

	for _, cit := range resp.Citations {
		assert.Equal(t, SourceLearningPath, cit.Type)
		id, ok := handbook.ChapterIDFromPath(cit.URL)
		require.True(t, ok, cit.URL)
		_, err := catalog.Chapter(id)
		assert.NoError(t, err, cit.URL)
	}
}

func TestClassify_PhysicsCitations(t *testing.T) {
	resp := Default().Classify("tell me about physics", Context{})

	assert.Equal(t, []Citation{
		{Title: "Semiconductor Physics & Materials", URL: "/handbook/ch3", Type: SourceHandbook},
		{Title: "Electronic Structure & Carrier Transport", URL: "/handbook/ch4", Type: SourceHandbook},
	}, resp.Citations)
}

func TestClassify_Fallback(t *testing.T) {
	resp := Default().Classify("hello", Context{})

	assert.Equal(t, IntentFallback, resp.Intent)
	assert.Equal(t, fallbackText, resp.Text)
	require.NotNil(t, resp.Citations)
	assert.Empty(t, resp.Citations)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"citations":[]`)
}

func TestClassify_Idempotent(t *testing.T) {
	c := Default()
	queries := []string{"hello", "summarize session", "recommend", "latest news", "physics", "ic design"}

	for _, q := range queries {
		first, err := json.Marshal(c.Classify(q, Context{ChapterID: "ch3"}))
		require.NoError(t, err)
		second, err := json.Marshal(c.Classify(q, Context{ChapterID: "ch3"}))
		require.NoError(t, err)
		assert.Equal(t, first, second, q)
	}
}

func TestClassify_ContextDoesNotAffectSelection(t *testing.T) {
	c := Default()
	plain := c.Classify("hello", Context{})
	withCtx := c.Classify("hello", Context{ChapterID: "ch6", ResourceID: "res3_1"})
	assert.Equal(t, plain, withCtx)
}

func TestClassify_ResponseIsACopy(t *testing.T) {
	c := Default()
	resp := c.Classify("physics", Context{})
	resp.Citations[0].Title = "mutated"

	again := c.Classify("physics", Context{})
	assert.Equal(t, "Semiconductor Physics & Materials", again.Citations[0].Title)
}

func TestRules_Order(t *testing.T) {
	var intents []Intent
	for _, r := range Default().Rules() {
		intents = append(intents, r.Intent)
	}
	assert.Equal(t, []Intent{
		IntentSessionSummary,
		IntentLearningPath,
		IntentResearch,
		IntentPhysics,
		IntentICDesign,
	}, intents)
}

func TestNewClassifier_CustomOrder(t *testing.T) {
	rules := DefaultRules()
	// Physics ahead of everything else.
	reordered := append([]Rule{rules[3]}, rules[:3]...)
	c := NewClassifier(reordered)

	assert.Equal(t, IntentPhysics, c.Classify("summarize session physics", Context{}).Intent)

	_, ok := c.Match("ic design")
	assert.False(t, ok)
}

func TestTrigger_EmptyNeverMatches(t *testing.T) {
	c := NewClassifier([]Rule{{Intent: "empty", Triggers: []Trigger{{}}}})
	assert.Equal(t, IntentFallback, c.Classify("anything", Context{}).Intent)
}
