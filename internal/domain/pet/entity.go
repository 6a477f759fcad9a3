package pet

import (
	"time"

	"github.com/google/uuid"

	"austay/internal/domain/tutor"
)

// Pet belongs to at least one tutor. Vermifugado and Vacinado are tri-state:
// nil means the information was never provided.
type Pet struct {
	ID          uuid.UUID
	Nome        string
	Especie     string
	Raca        string
	Nascimento  *string
	Sexo        string
	Vermifugado *bool
	Vacinado    *bool
	Tutors      []*tutor.Tutor
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p *Pet) TutorIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(p.Tutors))
	for i, t := range p.Tutors {
		ids[i] = t.ID
	}
	return ids
}
