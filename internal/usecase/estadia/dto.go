package estadia

import (
	"time"

	"github.com/google/uuid"

	domainEstadia "austay/internal/domain/estadia"
)

const dateLayout = "2006-01-02"

type CreateRequest struct {
	PetID       uuid.UUID `json:"pet_id" validate:"required"`
	TutorID     uuid.UUID `json:"tutor_id" validate:"required"`
	DataEntrada string    `json:"data_entrada" validate:"required,datetime=2006-01-02"`
	HoraEntrada string    `json:"hora_entrada" validate:"required,hhmm"`
	DataSaida   *string   `json:"data_saida" validate:"omitempty,datetime=2006-01-02"`
	HoraSaida   *string   `json:"hora_saida" validate:"omitempty,hhmm"`
	ValorDiaria float64   `json:"valor_diaria" validate:"required,gt=0"`
	Observacoes *string   `json:"observacoes" validate:"omitempty,max=1000"`
}

type UpdateRequest struct {
	DataEntrada *string  `json:"data_entrada" validate:"omitempty,datetime=2006-01-02"`
	HoraEntrada *string  `json:"hora_entrada" validate:"omitempty,hhmm"`
	DataSaida   *string  `json:"data_saida" validate:"omitempty,datetime=2006-01-02"`
	HoraSaida   *string  `json:"hora_saida" validate:"omitempty,hhmm"`
	ValorDiaria *float64 `json:"valor_diaria" validate:"omitempty,gt=0"`
	Observacoes *string  `json:"observacoes" validate:"omitempty,max=1000"`
	Pago        *bool    `json:"pago"`
}

type EstadiaResponse struct {
	ID          uuid.UUID `json:"id"`
	PetID       uuid.UUID `json:"pet_id"`
	TutorID     uuid.UUID `json:"tutor_id"`
	DataEntrada string    `json:"data_entrada"`
	HoraEntrada string    `json:"hora_entrada"`
	DataSaida   *string   `json:"data_saida"`
	HoraSaida   *string   `json:"hora_saida"`
	ValorDiaria float64   `json:"valor_diaria"`
	Observacoes *string   `json:"observacoes"`
	ValorTotal  *float64  `json:"valor_total"`
	Pago        bool      `json:"pago"`
}

func ToEstadiaResponse(e *domainEstadia.Estadia) *EstadiaResponse {
	if e == nil {
		return nil
	}

	var dataSaida *string
	if e.ExitDate != nil {
		d := e.ExitDate.Format(dateLayout)
		dataSaida = &d
	}

	return &EstadiaResponse{
		ID:          e.ID,
		PetID:       e.PetID,
		TutorID:     e.TutorID,
		DataEntrada: e.EntryDate.Format(dateLayout),
		HoraEntrada: e.EntryTime,
		DataSaida:   dataSaida,
		HoraSaida:   e.ExitTime,
		ValorDiaria: e.DailyRate,
		Observacoes: e.Notes,
		ValorTotal:  e.Total,
		Pago:        e.Pago,
	}
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
