package store

import (
	"database/sql"
	"fmt"
	"time"
)

// The board is persisted as one opaque serialized document. The store
// never inspects the text; encoding and decoding belong to the board
// package.

// LoadBoard returns the saved board document, or "" if none was saved yet
func (s *Store) LoadBoard() (string, error) {
	var data string
	err := s.QueryRow(`SELECT data FROM board_state WHERE id = 1`).Scan(&data)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load board: %w", err)
	}
	return data, nil
}

// SaveBoard replaces the saved board document
func (s *Store) SaveBoard(text string) error {
	_, err := s.Exec(`
		INSERT INTO board_state (id, data, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, text, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}
	return nil
}
