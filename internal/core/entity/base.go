// Package entity provides base types shared by catalogs and documents.
package entity

import (
	"context"
	"time"

	"loomstock/internal/core/id"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants (without database access).
type Validatable interface {
	// Validate checks entity invariants.
	// Returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// Base contains the fields every stored entity carries.
type Base struct {
	// ID is the primary key (UUIDv7)
	ID id.ID `db:"id" json:"id"`

	// CreatedAt is when the record was created
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// NewBase creates a Base with generated ID and current timestamp.
func NewBase() Base {
	return Base{
		ID:        id.New(),
		CreatedAt: time.Now().UTC(),
	}
}

// GetID returns the entity's primary key.
func (b *Base) GetID() id.ID {
	return b.ID
}

// EnsureDefaults fills in ID and CreatedAt when the caller left them empty.
// Documents arrive from the API with client-supplied bodies; generated fields
// must be stable regardless of what the client sent.
func (b *Base) EnsureDefaults() {
	if id.IsNil(b.ID) {
		b.ID = id.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
}
