package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"siliconguide.io/silicon-guide/internal/assistant"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dataSourceName string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err = store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS sessions (
        id TEXT PRIMARY KEY, -- UUID
        title TEXT NOT NULL DEFAULT '',
        chapter_id TEXT NOT NULL DEFAULT '',
        resource_id TEXT NOT NULL DEFAULT '',
        created_at DATETIME NOT NULL
    );

    CREATE TABLE IF NOT EXISTS turns (
        seq INTEGER PRIMARY KEY AUTOINCREMENT,
        id TEXT UNIQUE NOT NULL, -- UUID
        session_id TEXT NOT NULL,
        role TEXT NOT NULL CHECK (role IN ('user', 'assistant')),
        text TEXT NOT NULL,
        intent TEXT NOT NULL DEFAULT '',
        citations_json TEXT,
        timestamp DATETIME NOT NULL,
        negative_feedback BOOLEAN DEFAULT FALSE,
        FOREIGN KEY (session_id) REFERENCES sessions (id)
    );

    CREATE INDEX IF NOT EXISTS turns_session_idx ON turns (session_id, seq);
    `
	_, err := s.db.Exec(schema)
	return err
}

// Session methods
func (s *SQLiteStore) CreateSession(ctx context.Context, sess *Session) error {
	sess.ID = uuid.NewString()
	sess.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO sessions (id, title, chapter_id, resource_id, created_at) VALUES (?, ?, ?, ?, ?)",
		sess.ID, sess.Title, sess.ChapterID, sess.ResourceID, sess.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetSession(ctx context.Context, id string) (*Session, error) {
	var sess Session
	err := s.db.QueryRowContext(ctx,
		"SELECT id, title, chapter_id, resource_id, created_at FROM sessions WHERE id = ?", id).
		Scan(&sess.ID, &sess.Title, &sess.ChapterID, &sess.ResourceID, &sess.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &sess, nil
}

func (s *SQLiteStore) ListSessions(ctx context.Context) ([]Session, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, chapter_id, resource_id, created_at FROM sessions ORDER BY rowid DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	sessions := []Session{}
	for rows.Next() {
		var sess Session
		if err := rows.Scan(&sess.ID, &sess.Title, &sess.ChapterID, &sess.ResourceID, &sess.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

func (s *SQLiteStore) UpdateSessionTitle(ctx context.Context, id, title string) error {
	res, err := s.db.ExecContext(ctx, "UPDATE sessions SET title = ? WHERE id = ?", title, id)
	if err != nil {
		return fmt.Errorf("failed to update session title: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (s *SQLiteStore) DeleteSession(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM turns WHERE session_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete turns: %w", err)
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrSessionNotFound
	}
	return tx.Commit()
}

// Turn methods
func (s *SQLiteStore) AppendTurn(ctx context.Context, t *Turn) error {
	if _, err := s.GetSession(ctx, t.SessionID); err != nil {
		return err
	}

	var citationsJSON sql.NullString
	if len(t.Citations) > 0 {
		b, err := json.Marshal(t.Citations)
		if err != nil {
			return fmt.Errorf("failed to marshal citations: %w", err)
		}
		citationsJSON = sql.NullString{String: string(b), Valid: true}
	}

	t.ID = uuid.NewString()
	t.Timestamp = time.Now().UTC()

	stmt, err := s.db.PrepareContext(ctx,
		"INSERT INTO turns (id, session_id, role, text, intent, citations_json, timestamp, negative_feedback) VALUES (?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare turn insert: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, t.ID, t.SessionID, string(t.Role), t.Text, string(t.Intent), citationsJSON, t.Timestamp, t.NegativeFeedback)
	if err != nil {
		return fmt.Errorf("failed to execute turn insert: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListTurns(ctx context.Context, sessionID string) ([]Turn, error) {
	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}

	query := `
        SELECT id, session_id, role, text, intent, citations_json, timestamp, negative_feedback
        FROM turns
        WHERE session_id = ?
        ORDER BY seq ASC
    `
	rows, err := s.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query turns: %w", err)
	}
	defer rows.Close()

	turns := []Turn{}
	for rows.Next() {
		var (
			t             Turn
			role, intent  string
			citationsJSON sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.SessionID, &role, &t.Text, &intent, &citationsJSON, &t.Timestamp, &t.NegativeFeedback); err != nil {
			return nil, fmt.Errorf("failed to scan turn row: %w", err)
		}
		t.Role = Role(role)
		t.Intent = assistant.Intent(intent)
		if citationsJSON.Valid && citationsJSON.String != "" {
			if err := json.Unmarshal([]byte(citationsJSON.String), &t.Citations); err != nil {
				return nil, fmt.Errorf("failed to unmarshal citations for turn %s: %w", t.ID, err)
			}
		}
		turns = append(turns, t)
	}
	return turns, rows.Err()
}

func (s *SQLiteStore) SetTurnFeedback(ctx context.Context, turnID string, negative bool) error {
	stmt, err := s.db.PrepareContext(ctx, "UPDATE turns SET negative_feedback = ? WHERE id = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare feedback update: %w", err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, negative, turnID)
	if err != nil {
		return fmt.Errorf("failed to execute feedback update: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrTurnNotFound
	}
	return nil
}
