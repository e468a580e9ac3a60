package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Note is a free-form text note; tasks can reference notes by ID
type Note struct {
	ID        string
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks user-entered fields before a note is accepted
func (n *Note) Validate() error {
	return validation.ValidateStruct(n,
		validation.Field(&n.ID, validation.Required),
		validation.Field(&n.Title, validation.Required, validation.Length(1, 256)),
	)
}
