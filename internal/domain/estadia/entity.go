package estadia

import (
	"time"

	"github.com/google/uuid"
)

// Estadia is a pet's boarding stay, bounded by entry and (optionally) exit
// date-times. Total and Pago are derived state kept in sync with the linked
// Pagamento: both rows are always written inside one transaction.
type Estadia struct {
	ID        uuid.UUID
	PetID     uuid.UUID
	TutorID   uuid.UUID
	EntryDate time.Time
	EntryTime string
	ExitDate  *time.Time
	ExitTime  *string
	DailyRate float64
	Notes     *string
	Total     *float64
	Pago      bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Pagamento is the settlement record tied 1:1 to an Estadia. Amount mirrors
// the stay's computed total; Method and PaidDate are set only while Paid.
// The row is never deleted on its own: resetting puts it back to the unpaid
// state, and deleting the stay cascades to it.
type Pagamento struct {
	ID        uuid.UUID
	EstadiaID uuid.UUID
	Amount    *float64
	Paid      bool
	Method    *string
	PaidDate  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HostedStay is a read-model row for pets currently at the facility.
type HostedStay struct {
	EstadiaID uuid.UUID
	PetID     uuid.UUID
	PetNome   string
	TutorNome string
	EntryDate time.Time
	ExitDate  *time.Time
	DailyRate float64
	Pago      bool
}

// Movement is a read-model row for a check-in or check-out on a given date.
type Movement struct {
	EstadiaID uuid.UUID
	PetNome   string
	TutorNome string
	Hora      *string
	DailyRate float64
	Pago      bool
}
