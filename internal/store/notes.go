package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/maren/tack/internal/model"
)

// ListNotes returns all notes, most recently updated first
func (s *Store) ListNotes() ([]model.Note, error) {
	rows, err := s.Query(`
		SELECT id, title, body, created_at, updated_at
		FROM notes
		ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// GetNote returns a single note by ID, or nil if it does not exist
func (s *Store) GetNote(id string) (*model.Note, error) {
	var n model.Note
	err := s.QueryRow(`
		SELECT id, title, body, created_at, updated_at FROM notes WHERE id = ?
	`, id).Scan(&n.ID, &n.Title, &n.Body, &n.CreatedAt, &n.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// CreateNote creates a new note
func (s *Store) CreateNote(title, body string) (*model.Note, error) {
	n := model.Note{
		ID:        uuid.New().String(),
		Title:     title,
		Body:      body,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}

	_, err := s.Exec(`
		INSERT INTO notes (id, title, body, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, n.ID, n.Title, n.Body, n.CreatedAt, n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// UpdateNote updates a note's title and body
func (s *Store) UpdateNote(id, title, body string) error {
	_, err := s.Exec(`
		UPDATE notes SET title = ?, body = ?, updated_at = ? WHERE id = ?
	`, title, body, time.Now(), id)
	return err
}

// DeleteNote deletes a note
func (s *Store) DeleteNote(id string) error {
	_, err := s.Exec(`DELETE FROM notes WHERE id = ?`, id)
	return err
}
