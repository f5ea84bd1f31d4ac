// Package core runs tutoring sessions: it records each exchange and picks the
// canned reply for every question.
package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"siliconguide.io/silicon-guide/internal/assistant"
	"siliconguide.io/silicon-guide/internal/store"
)

var ErrEmptyQuery = errors.New("message is empty")

const maxTitleRunes = 60

// Transcript is a session together with its turns in order.
type Transcript struct {
	Session store.Session `json:"session"`
	Turns   []store.Turn  `json:"turns"`
}

type ChatService struct {
	store      store.ConversationStore
	classifier *assistant.Classifier
	titles     assistant.TitleSource
	delay      time.Duration
	logger     *zap.Logger
}

type Option func(*ChatService)

// WithResponseDelay makes replies wait d before they are produced, so the
// interface can show a typing indicator.
func WithResponseDelay(d time.Duration) Option {
	return func(s *ChatService) { s.delay = d }
}

func NewChatService(st store.ConversationStore, classifier *assistant.Classifier, titles assistant.TitleSource, logger *zap.Logger, opts ...Option) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &ChatService{
		store:      st,
		classifier: classifier,
		titles:     titles,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartSession opens a session and records the greeting for the reader's
// location as its first turn.
func (s *ChatService) StartSession(ctx context.Context, where assistant.Context) (*Transcript, error) {
	sess := store.Session{ChapterID: where.ChapterID, ResourceID: where.ResourceID}
	if err := s.store.CreateSession(ctx, &sess); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	greeting := store.Turn{
		SessionID: sess.ID,
		Role:      store.RoleAssistant,
		Text:      assistant.Greeting(where, s.titles),
	}
	if err := s.store.AppendTurn(ctx, &greeting); err != nil {
		return nil, fmt.Errorf("failed to store greeting: %w", err)
	}

	s.logger.Info("session started",
		zap.String("session_id", sess.ID),
		zap.String("chapter_id", where.ChapterID),
		zap.String("resource_id", where.ResourceID))
	return &Transcript{Session: sess, Turns: []store.Turn{greeting}}, nil
}

// PostMessage records the question, then the reply chosen for it, and returns
// the reply. Blank input is rejected before anything is written. If ctx ends
// while the reply is delayed, the question stays in the log unanswered.
func (s *ChatService) PostMessage(ctx context.Context, sessionID, text string) (*store.Turn, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyQuery
	}

	sess, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	userTurn := store.Turn{SessionID: sessionID, Role: store.RoleUser, Text: text}
	if err := s.store.AppendTurn(ctx, &userTurn); err != nil {
		return nil, fmt.Errorf("failed to store user message: %w", err)
	}

	if sess.Title == "" {
		if err := s.store.UpdateSessionTitle(ctx, sessionID, titleFrom(text)); err != nil {
			s.logger.Warn("failed to title session", zap.String("session_id", sessionID), zap.Error(err))
		}
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	resp := s.classifier.Classify(text, assistant.Context{ChapterID: sess.ChapterID, ResourceID: sess.ResourceID})
	reply := store.Turn{
		SessionID: sessionID,
		Role:      store.RoleAssistant,
		Text:      resp.Text,
		Intent:    resp.Intent,
		Citations: resp.Citations,
	}
	if err := s.store.AppendTurn(ctx, &reply); err != nil {
		return nil, fmt.Errorf("failed to store reply: %w", err)
	}

	s.logger.Debug("message answered",
		zap.String("session_id", sessionID),
		zap.String("intent", string(resp.Intent)),
		zap.Int("citations", len(resp.Citations)))
	return &reply, nil
}

func (s *ChatService) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *ChatService) Session(ctx context.Context, id string) (*Transcript, error) {
	sess, err := s.store.GetSession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	turns, err := s.store.ListTurns(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get turns for session: %w", err)
	}
	return &Transcript{Session: *sess, Turns: turns}, nil
}

func (s *ChatService) Sessions(ctx context.Context) ([]store.Session, error) {
	return s.store.ListSessions(ctx)
}

func (s *ChatService) SetFeedback(ctx context.Context, turnID string, negative bool) error {
	if err := s.store.SetTurnFeedback(ctx, turnID, negative); err != nil {
		return fmt.Errorf("failed to set feedback: %w", err)
	}
	s.logger.Info("feedback recorded", zap.String("turn_id", turnID), zap.Bool("negative", negative))
	return nil
}

// CloseSession discards the session and its log.
func (s *ChatService) CloseSession(ctx context.Context, id string) error {
	if err := s.store.DeleteSession(ctx, id); err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}
	s.logger.Info("session closed", zap.String("session_id", id))
	return nil
}

// Classify answers a one-off question without recording it.
func (s *ChatService) Classify(query string, where assistant.Context) (assistant.Response, error) {
	if strings.TrimSpace(query) == "" {
		return assistant.Response{}, ErrEmptyQuery
	}
	return s.classifier.Classify(query, where), nil
}

func titleFrom(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= maxTitleRunes {
		return text
	}
	return strings.TrimSpace(string([]rune(text)[:maxTitleRunes]))
}
