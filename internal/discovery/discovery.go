// Package discovery finds handbook chapters and outside material for a
// research query.
package discovery

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrEmptyQuery = errors.New("query is empty")

const DefaultMaxResults = 7

type ResultType string

const (
	TypeHandbook ResultType = "handbook"
	TypeWeb      ResultType = "web"
	TypePaper    ResultType = "paper"
	TypeNews     ResultType = "news"
)

// TypeAll disables type filtering.
const TypeAll ResultType = "all"

type Result struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	Source      string     `json:"source"`
	Type        ResultType `json:"type"`
	Date        string     `json:"date,omitempty"`
	Relevance   int        `json:"relevance"`
}

func (r Result) HighlyRelevant() bool { return r.Relevance > 90 }

// External reports whether the url leaves the handbook.
func (r Result) External() bool { return strings.HasPrefix(r.URL, "http") }

// Topic is a keyword group. Unlike assistant rules, every topic that matches
// contributes its results.
type Topic struct {
	Name     string
	Keywords []string
	Results  []Result
}

func (t Topic) matches(lowered string) bool {
	for _, kw := range t.Keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

type Agent struct {
	topics     []Topic
	general    []Result
	base       []Result
	maxResults int
}

type Option func(*Agent)

func WithMaxResults(n int) Option {
	return func(a *Agent) {
		if n > 0 {
			a.maxResults = n
		}
	}
}

func WithTopics(topics []Topic) Option {
	return func(a *Agent) { a.topics = topics }
}

func New(opts ...Option) *Agent {
	a := &Agent{
		topics:     DefaultTopics(),
		general:    generalResults(),
		base:       baseResults(),
		maxResults: DefaultMaxResults,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Search returns results ranked by relevance. Topic results come first on
// ties, then the always-present base results.
func (a *Agent) Search(query string) ([]Result, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, ErrEmptyQuery
	}

	var matched []Result
	for _, t := range a.topics {
		if t.matches(q) {
			matched = append(matched, t.Results...)
		}
	}
	if len(matched) == 0 {
		matched = append(matched, a.general...)
	}

	results := append(matched, a.base...)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})
	if len(results) > a.maxResults {
		results = results[:a.maxResults]
	}
	return results, nil
}

var seedStopWords = map[string]struct{}{
	"and": {}, "the": {}, "for": {}, "with": {}, "introduction": {}, "to": {},
}

// SeedQuery suggests a search term from a chapter title: the first word
// longer than three characters that is not a stop word.
func SeedQuery(chapterTitle string) string {
	for _, word := range strings.Fields(chapterTitle) {
		if len(word) <= 3 {
			continue
		}
		if _, stop := seedStopWords[strings.ToLower(word)]; stop {
			continue
		}
		return word
	}
	return ""
}

func FilterByType(results []Result, t ResultType) []Result {
	if t == "" || t == TypeAll {
		return results
	}
	out := make([]Result, 0, len(results))
	for _, r := range results {
		if r.Type == t {
			out = append(out, r)
		}
	}
	return out
}

func CountByType(results []Result) map[ResultType]int {
	counts := map[ResultType]int{TypeAll: len(results)}
	for _, r := range results {
		counts[r.Type]++
	}
	return counts
}

// FormatText renders results as plain text for copying. Handbook urls are
// made absolute with origin.
func FormatText(query string, results []Result, origin string) string {
	entries := make([]string, len(results))
	for i, r := range results {
		date := ""
		if r.Date != "" {
			date = fmt.Sprintf(" (%s)", r.Date)
		}
		url := r.URL
		if !r.External() {
			url = strings.TrimSuffix(origin, "/") + r.URL
		}
		entries[i] = fmt.Sprintf("%s\n%s\nSource: %s%s\nURL: %s\n", r.Title, r.Description, r.Source, date, url)
	}
	return fmt.Sprintf("Research Results for %q:\n\n%s", query, strings.Join(entries, "\n\n"))
}
