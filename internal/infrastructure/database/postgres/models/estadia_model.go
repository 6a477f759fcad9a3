package models

import (
	"time"

	"github.com/google/uuid"
)

// EstadiaModel represents the database model for Estadia
type EstadiaModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PetID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	TutorID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	EntryDate time.Time  `gorm:"type:date;not null;index"`
	EntryTime string     `gorm:"type:varchar(5);not null"`
	ExitDate  *time.Time `gorm:"type:date;index"`
	ExitTime  *string    `gorm:"type:varchar(5)"`
	DailyRate float64    `gorm:"type:decimal(10,2);not null"`
	Notes     *string    `gorm:"type:text"`
	Total     *float64   `gorm:"type:decimal(12,2)"`
	Pago      bool       `gorm:"not null;default:false"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`

	Pet       *PetModel       `gorm:"foreignKey:PetID"`
	Tutor     *TutorModel     `gorm:"foreignKey:TutorID"`
	Pagamento *PagamentoModel `gorm:"foreignKey:EstadiaID;constraint:OnDelete:CASCADE"`
}

func (EstadiaModel) TableName() string {
	return "estadias"
}

// PagamentoModel represents the database model for Pagamento. The estadia
// foreign key is unique: exactly one payment row per stay, removed only by
// the stay's cascade delete.
type PagamentoModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	EstadiaID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	Amount    *float64   `gorm:"type:decimal(12,2)"`
	Paid      bool       `gorm:"not null;default:false"`
	Method    *string    `gorm:"type:varchar(50)"`
	PaidDate  *time.Time `gorm:"type:date"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`
}

func (PagamentoModel) TableName() string {
	return "pagamentos"
}
