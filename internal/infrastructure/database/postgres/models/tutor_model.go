package models

import (
	"time"

	"github.com/google/uuid"
)

// TutorModel represents the database model for Tutor
type TutorModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null;index"`
	CPF       string    `gorm:"type:varchar(11);not null;uniqueIndex"`
	Phone     string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Pets []*PetModel `gorm:"many2many:pet_tutor_association"`
}

func (TutorModel) TableName() string {
	return "tutors"
}
