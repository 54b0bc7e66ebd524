package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore хранит единственную сессию клиента в локальной базе.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init session db: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS session (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			token TEXT NOT NULL,
			user_id TEXT NOT NULL,
			email TEXT NOT NULL,
			saved_at DATETIME NOT NULL
		);
	`)
	return err
}

func (s *SQLiteStore) Load(ctx context.Context) (Session, error) {
	var (
		sess   Session
		userID string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT token, user_id, email FROM session WHERE id = 1`,
	).Scan(&sess.Token, &userID, &sess.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrNoSession
	}
	if err != nil {
		return Session{}, fmt.Errorf("load session: %w", err)
	}

	sess.UserID, err = uuid.Parse(userID)
	if err != nil {
		return Session{}, fmt.Errorf("load session: parse user id: %w", err)
	}
	return sess, nil
}

func (s *SQLiteStore) Save(ctx context.Context, sess Session) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session (id, token, user_id, email, saved_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			token = excluded.token,
			user_id = excluded.user_id,
			email = excluded.email,
			saved_at = excluded.saved_at
	`, sess.Token, sess.UserID.String(), sess.Email, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
