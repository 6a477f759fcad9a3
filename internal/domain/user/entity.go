package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a staff account able to authenticate against the API. It is
// distinct from Tutor, which represents a pet owner.
type User struct {
	ID             uuid.UUID
	Name           string
	Email          string
	PasswordHashed string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PasswordResetToken is a short-lived verification code proving control of a
// user's email. Rows are deleted when a reset completes; otherwise they just
// expire and are rejected lazily at verification time.
type PasswordResetToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (t *PasswordResetToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
