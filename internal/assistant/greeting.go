package assistant

import (
	"fmt"

	"siliconguide.io/silicon-guide/internal/handbook"
)

const (
	defaultGreeting = "Hello! I'm your AI tutor for semiconductor technology. How can I help you today?"
	unknownChapter  = "Unknown Chapter"
	unknownResource = "Unknown Resource"
)

// TitleSource resolves the ids a reader can be looking at.
type TitleSource interface {
	Chapter(id string) (handbook.Chapter, error)
	Resource(id string) (handbook.Resource, error)
}

// Greeting phrases the opening assistant message for the reader's location.
// A chapter takes precedence over a resource.
func Greeting(ctx Context, titles TitleSource) string {
	switch {
	case ctx.ChapterID != "":
		return fmt.Sprintf("Hello! I see you're reading about \"%s\". Feel free to ask me any questions about this topic or the semiconductor field in general.",
			chapterTitle(titles, ctx.ChapterID))
	case ctx.ResourceID != "":
		return fmt.Sprintf("Hello! I see you're looking at \"%s\". What would you like to understand better about this resource?",
			resourceTitle(titles, ctx.ResourceID))
	default:
		return defaultGreeting
	}
}

func chapterTitle(titles TitleSource, id string) string {
	if titles == nil {
		return unknownChapter
	}
	ch, err := titles.Chapter(id)
	if err != nil {
		return unknownChapter
	}
	return ch.Title
}

func resourceTitle(titles TitleSource, id string) string {
	if titles == nil {
		return unknownResource
	}
	res, err := titles.Resource(id)
	if err != nil {
		return unknownResource
	}
	return res.Title
}
