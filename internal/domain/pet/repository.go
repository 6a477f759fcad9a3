package pet

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for pet repository operations
type Repository interface {
	// Create persists the pet and its tutor associations atomically.
	Create(ctx context.Context, pet *Pet) error
	GetByID(ctx context.Context, petID uuid.UUID) (*Pet, error)
	GetAll(ctx context.Context, skip, limit int) ([]*Pet, error)
	ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]*Pet, error)
	// Update rewrites the pet fields and, when pet.Tutors is non-nil,
	// replaces the association set.
	Update(ctx context.Context, pet *Pet) error
	Delete(ctx context.Context, petID uuid.UUID) error
}
