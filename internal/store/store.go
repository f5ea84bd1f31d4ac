// Package store keeps conversation sessions and their turn logs.
package store

import (
	"context"
	"fmt"
)

// ConversationStore persists sessions. Turns come back in the order they were
// appended.
type ConversationStore interface {
	CreateSession(ctx context.Context, s *Session) error
	GetSession(ctx context.Context, id string) (*Session, error)
	ListSessions(ctx context.Context) ([]Session, error)
	UpdateSessionTitle(ctx context.Context, id, title string) error
	DeleteSession(ctx context.Context, id string) error

	AppendTurn(ctx context.Context, t *Turn) error
	ListTurns(ctx context.Context, sessionID string) ([]Turn, error)
	SetTurnFeedback(ctx context.Context, turnID string, negative bool) error

	Close() error
}

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Open returns the store for driver. dsn is ignored by the memory driver.
func Open(driver, dsn string) (ConversationStore, error) {
	switch driver {
	case "", DriverMemory:
		return NewMemoryStore(), nil
	case DriverSQLite:
		return NewSQLiteStore(dsn)
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
