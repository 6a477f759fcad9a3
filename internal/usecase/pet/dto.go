package pet

import (
	"github.com/google/uuid"

	domainPet "austay/internal/domain/pet"
	tutorUsecase "austay/internal/usecase/tutor"
)

type CreateRequest struct {
	Nome        string      `json:"nome" validate:"required,min=1,max=255"`
	Especie     string      `json:"especie" validate:"required,min=2,max=100"`
	Raca        string      `json:"raca" validate:"required,min=2,max=100"`
	Nascimento  *string     `json:"nascimento" validate:"omitempty,datetime=2006-01-02"`
	Sexo        string      `json:"sexo" validate:"required,sexo"`
	Vermifugado *bool       `json:"vermifugado"`
	Vacinado    *bool       `json:"vacinado"`
	TutorIDs    []uuid.UUID `json:"tutor_ids" validate:"required,min=1"`
}

type UpdateRequest struct {
	Nome        *string     `json:"nome" validate:"omitempty,min=1,max=255"`
	Especie     *string     `json:"especie" validate:"omitempty,min=2,max=100"`
	Raca        *string     `json:"raca" validate:"omitempty,min=2,max=100"`
	Nascimento  *string     `json:"nascimento" validate:"omitempty,datetime=2006-01-02"`
	Sexo        *string     `json:"sexo" validate:"omitempty,sexo"`
	Vermifugado *bool       `json:"vermifugado"`
	Vacinado    *bool       `json:"vacinado"`
	TutorIDs    []uuid.UUID `json:"tutor_ids" validate:"omitempty,min=1"`
}

type PetResponse struct {
	ID          uuid.UUID                     `json:"id"`
	Nome        string                        `json:"nome"`
	Especie     string                        `json:"especie"`
	Raca        string                        `json:"raca"`
	Nascimento  *string                       `json:"nascimento"`
	Sexo        string                        `json:"sexo"`
	Vermifugado *bool                         `json:"vermifugado"`
	Vacinado    *bool                         `json:"vacinado"`
	Tutores     []*tutorUsecase.TutorResponse `json:"tutores"`
}

func ToPetResponse(p *domainPet.Pet) *PetResponse {
	if p == nil {
		return nil
	}

	tutores := make([]*tutorUsecase.TutorResponse, len(p.Tutors))
	for i, t := range p.Tutors {
		tutores[i] = tutorUsecase.ToTutorResponse(t)
	}

	return &PetResponse{
		ID:          p.ID,
		Nome:        p.Nome,
		Especie:     p.Especie,
		Raca:        p.Raca,
		Nascimento:  p.Nascimento,
		Sexo:        p.Sexo,
		Vermifugado: p.Vermifugado,
		Vacinado:    p.Vacinado,
		Tutores:     tutores,
	}
}
