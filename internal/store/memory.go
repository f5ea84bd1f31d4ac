package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"siliconguide.io/silicon-guide/internal/assistant"
)

// MemoryStore keeps everything in process memory. Sessions vanish on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	order    []string
	turns    map[string][]Turn
	// turn id -> session id
	owners map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		turns:    make(map[string][]Turn),
		owners:   make(map[string]string),
	}
}

func (m *MemoryStore) CreateSession(_ context.Context, s *Session) error {
	s.ID = uuid.NewString()
	s.CreatedAt = time.Now().UTC()

	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	m.sessions[s.ID] = &cp
	m.order = append(m.order, s.ID)
	return nil
}

func (m *MemoryStore) GetSession(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	cp := *s
	return &cp, nil
}

// ListSessions returns the newest session first.
func (m *MemoryStore) ListSessions(_ context.Context) ([]Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Session, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		out = append(out, *m.sessions[m.order[i]])
	}
	return out, nil
}

func (m *MemoryStore) UpdateSessionTitle(_ context.Context, id, title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	s.Title = title
	return nil
}

func (m *MemoryStore) DeleteSession(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	for _, t := range m.turns[id] {
		delete(m.owners, t.ID)
	}
	delete(m.turns, id)
	delete(m.sessions, id)
	m.order = slices.DeleteFunc(m.order, func(s string) bool { return s == id })
	return nil
}

func (m *MemoryStore) AppendTurn(_ context.Context, t *Turn) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[t.SessionID]; !ok {
		return ErrSessionNotFound
	}
	t.ID = uuid.NewString()
	t.Timestamp = time.Now().UTC()

	cp := *t
	cp.Citations = append([]assistant.Citation(nil), t.Citations...)
	m.turns[t.SessionID] = append(m.turns[t.SessionID], cp)
	m.owners[t.ID] = t.SessionID
	return nil
}

func (m *MemoryStore) ListTurns(_ context.Context, sessionID string) ([]Turn, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.sessions[sessionID]; !ok {
		return nil, ErrSessionNotFound
	}
	src := m.turns[sessionID]
	out := make([]Turn, len(src))
	for i, t := range src {
		t.Citations = append([]assistant.Citation(nil), t.Citations...)
		out[i] = t
	}
	return out, nil
}

func (m *MemoryStore) SetTurnFeedback(_ context.Context, turnID string, negative bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	sessionID, ok := m.owners[turnID]
	if !ok {
		return ErrTurnNotFound
	}
	turns := m.turns[sessionID]
	for i := range turns {
		if turns[i].ID == turnID {
			turns[i].NegativeFeedback = negative
			return nil
		}
	}
	return ErrTurnNotFound
}

func (m *MemoryStore) Close() error { return nil }
