package tutor

import (
	"github.com/google/uuid"

	domainTutor "austay/internal/domain/tutor"
)

type CreateRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=255"`
	CPF   string `json:"cpf" validate:"required,cpf"`
	Phone string `json:"phone" validate:"required,min=8,max=20"`
}

type UpdateRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=2,max=255"`
	CPF   *string `json:"cpf" validate:"omitempty,cpf"`
	Phone *string `json:"phone" validate:"omitempty,min=8,max=20"`
}

type TutorResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	CPF   string    `json:"cpf"`
	Phone string    `json:"phone"`
}

func ToTutorResponse(t *domainTutor.Tutor) *TutorResponse {
	if t == nil {
		return nil
	}
	return &TutorResponse{
		ID:    t.ID,
		Name:  t.Name,
		CPF:   t.CPF,
		Phone: t.Phone,
	}
}
