package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for user repository operations
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*User, error)
	GetAll(ctx context.Context, skip, limit int) ([]*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, userID uuid.UUID) error

	CreateResetToken(ctx context.Context, token *PasswordResetToken) error
	GetResetToken(ctx context.Context, userID uuid.UUID, token string) (*PasswordResetToken, error)
	// ResetPassword stores the new hash and deletes every outstanding reset
	// token for the user in a single transaction.
	ResetPassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}
