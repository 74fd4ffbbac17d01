package bot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SqliteSessionStore persists sessions in a local sqlite file, for single
// instance deployments that should survive restarts without Redis.
type SqliteSessionStore struct {
	db *sql.DB
}

func NewSqliteSessionStore(path string) (*SqliteSessionStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sessions db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS wizard_sessions (
		user_id INTEGER PRIMARY KEY,
		payload TEXT NOT NULL
	)`)
	if err != nil {
		return nil, fmt.Errorf("failed to create sessions table: %w", err)
	}

	return &SqliteSessionStore{db: db}, nil
}

func (s *SqliteSessionStore) Get(ctx context.Context, userID int64) (*Session, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM wizard_sessions WHERE user_id = ?`, userID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session Session
	if err := json.Unmarshal([]byte(payload), &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	return &session, nil
}

func (s *SqliteSessionStore) Put(ctx context.Context, userID int64, session *Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `INSERT INTO wizard_sessions (user_id, payload) VALUES (?, ?)
		ON CONFLICT(user_id) DO UPDATE SET payload = excluded.payload`, userID, string(payload))
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	return nil
}

func (s *SqliteSessionStore) Remove(ctx context.Context, userID int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM wizard_sessions WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to remove session: %w", err)
	}

	return nil
}

func (s *SqliteSessionStore) Close() error {
	return s.db.Close()
}
