package store

import (
	"errors"
	"time"

	"siliconguide.io/silicon-guide/internal/assistant"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrTurnNotFound    = errors.New("turn not found")
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Session struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	ChapterID  string    `json:"chapter_id,omitempty"`
	ResourceID string    `json:"resource_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Turn is one entry of a session's log. Citations and Intent are only set on
// assistant turns.
type Turn struct {
	ID               string               `json:"id"`
	SessionID        string               `json:"session_id"`
	Role             Role                 `json:"role"`
	Text             string               `json:"text"`
	Intent           assistant.Intent     `json:"intent,omitempty"`
	Citations        []assistant.Citation `json:"citations,omitempty"`
	Timestamp        time.Time            `json:"timestamp"`
	NegativeFeedback bool                 `json:"negative_feedback"`
}
