// Package assistant selects canned tutor responses for free-text questions.
//
// Selection walks an ordered rule table and returns the first rule whose
// trigger terms all appear in the lower-cased query. Nothing is scored and
// nothing is remembered between calls, so the same input always yields the
// same output.
package assistant

import (
	"strings"
)

// Context is the reader's current location. It only shapes greetings and
// suggestions; classification ignores it.
type Context struct {
	ChapterID  string `json:"chapter_id,omitempty"`
	ResourceID string `json:"resource_id,omitempty"`
}

type Response struct {
	Intent    Intent     `json:"intent"`
	Text      string     `json:"text"`
	Citations []Citation `json:"citations"`
}

type Classifier struct {
	rules    []Rule
	fallback Response
}

// NewClassifier evaluates rules in the given order.
func NewClassifier(rules []Rule) *Classifier {
	return &Classifier{
		rules: append([]Rule(nil), rules...),
		fallback: Response{
			Intent:    IntentFallback,
			Text:      fallbackText,
			Citations: []Citation{},
		},
	}
}

func Default() *Classifier {
	return NewClassifier(DefaultRules())
}

// Rules returns the table in evaluation order.
func (c *Classifier) Rules() []Rule {
	return append([]Rule(nil), c.rules...)
}

// Match reports the first rule that fires for query.
func (c *Classifier) Match(query string) (Rule, bool) {
	q := strings.ToLower(query)
	for _, r := range c.rules {
		if r.matches(q) {
			return r, true
		}
	}
	return Rule{}, false
}

// Classify maps a query to its response. Callers are expected to drop blank
// input before calling; a blank query falls through to the fallback.
func (c *Classifier) Classify(query string, _ Context) Response {
	r, ok := c.Match(query)
	if !ok {
		return Response{
			Intent:    c.fallback.Intent,
			Text:      c.fallback.Text,
			Citations: []Citation{},
		}
	}
	return Response{
		Intent:    r.Intent,
		Text:      r.Text,
		Citations: append([]Citation{}, r.Citations...),
	}
}

func (r Rule) matches(lowered string) bool {
	for _, t := range r.Triggers {
		if t.matches(lowered) {
			return true
		}
	}
	return false
}

func (t Trigger) matches(lowered string) bool {
	if len(t) == 0 {
		return false
	}
	for _, term := range t {
		if !strings.Contains(lowered, term) {
			return false
		}
	}
	return true
}
