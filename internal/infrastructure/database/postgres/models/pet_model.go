package models

import (
	"time"

	"github.com/google/uuid"
)

// PetModel represents the database model for Pet
type PetModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Nome        string    `gorm:"type:varchar(255);not null;index"`
	Especie     string    `gorm:"type:varchar(100);not null;index"`
	Raca        string    `gorm:"type:varchar(100);not null"`
	Nascimento  *string   `gorm:"type:varchar(10)"`
	Sexo        string    `gorm:"type:varchar(1);not null"`
	Vermifugado *bool
	Vacinado    *bool
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	Tutors []*TutorModel `gorm:"many2many:pet_tutor_association"`
}

func (PetModel) TableName() string {
	return "pets"
}
