package models

import (
	"time"

	"github.com/google/uuid"
)

// Entity is a persisted record the gateway can write.
type Entity interface {
	// TableName is the table the entity lives in.
	TableName() string
	// Key returns the primary key columns and their values.
	Key() map[string]any
}

// Base holds the columns shared by every entity except Country.
type Base struct {
	ID        string    `json:"id" db:"id"`                 // Primary key, UUID string
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// Init assigns an identifier if there is none and sets both timestamps.
func (b *Base) Init(now time.Time) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	b.CreatedAt = now
	b.UpdatedAt = now
}

// Touch advances the last-modified timestamp.
func (b *Base) Touch(now time.Time) {
	b.UpdatedAt = now
}

// Key returns the id column.
func (b *Base) Key() map[string]any {
	return map[string]any{"id": b.ID}
}
