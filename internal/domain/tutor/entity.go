package tutor

import (
	"time"

	"github.com/google/uuid"
)

// Tutor is a pet owner registered at the boarding facility.
type Tutor struct {
	ID        uuid.UUID
	Name      string
	CPF       string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
