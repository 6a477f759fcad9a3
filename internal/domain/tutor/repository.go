package tutor

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for tutor repository operations
type Repository interface {
	Create(ctx context.Context, tutor *Tutor) error
	GetByID(ctx context.Context, tutorID uuid.UUID) (*Tutor, error)
	GetByIDs(ctx context.Context, tutorIDs []uuid.UUID) ([]*Tutor, error)
	GetAll(ctx context.Context, skip, limit int) ([]*Tutor, error)
	Update(ctx context.Context, tutor *Tutor) error
	// Delete removes the tutor and detaches every shared pet association.
	// Pets themselves are never deleted here.
	Delete(ctx context.Context, tutorID uuid.UUID) error
}
