package dashboard

import (
	"github.com/google/uuid"

	domainEstadia "austay/internal/domain/estadia"
)

const dateLayout = "2006-01-02"

type CheckInOutSummary struct {
	Date      string `json:"date"`
	CheckIns  int64  `json:"check_ins"`
	CheckOuts int64  `json:"check_outs"`
}

type DashboardResponse struct {
	TotalPetsHospedados int64               `json:"total_pets_hospedados"`
	TaxaOcupacao        float64             `json:"taxa_ocupacao"`
	Hoje                CheckInOutSummary   `json:"checkins_checkouts_hoje"`
	ProximosDias        []CheckInOutSummary `json:"checkins_checkouts_proximos_dias"`
	CapacidadeMaxima    int                 `json:"capacidade_maxima"`
}

type PetHospedadoResponse struct {
	EstadiaID   uuid.UUID `json:"estadia_id"`
	PetID       uuid.UUID `json:"pet_id"`
	PetNome     string    `json:"pet_nome"`
	TutorNome   string    `json:"tutor_nome"`
	DataEntrada string    `json:"data_entrada"`
	DataSaida   *string   `json:"data_saida"`
	ValorDiaria float64   `json:"valor_diaria"`
	Pago        bool      `json:"pago"`
}

type MoreDaysResponse struct {
	CheckInsCheckOuts []CheckInOutSummary `json:"checkins_checkouts"`
}

type MovementResponse struct {
	EstadiaID   uuid.UUID `json:"estadia_id"`
	PetNome     string    `json:"pet_nome"`
	TutorNome   string    `json:"tutor_nome"`
	Hora        *string   `json:"hora"`
	ValorDiaria float64   `json:"valor_diaria"`
	Pago        bool      `json:"pago"`
}

type MovimentacoesResponse struct {
	Data      string              `json:"data"`
	CheckIns  []*MovementResponse `json:"check_ins"`
	CheckOuts []*MovementResponse `json:"check_outs"`
}

func toPetHospedadoResponse(h *domainEstadia.HostedStay) *PetHospedadoResponse {
	var dataSaida *string
	if h.ExitDate != nil {
		d := h.ExitDate.Format(dateLayout)
		dataSaida = &d
	}

	return &PetHospedadoResponse{
		EstadiaID:   h.EstadiaID,
		PetID:       h.PetID,
		PetNome:     h.PetNome,
		TutorNome:   h.TutorNome,
		DataEntrada: h.EntryDate.Format(dateLayout),
		DataSaida:   dataSaida,
		ValorDiaria: h.DailyRate,
		Pago:        h.Pago,
	}
}

func toMovementResponse(m *domainEstadia.Movement) *MovementResponse {
	return &MovementResponse{
		EstadiaID:   m.EstadiaID,
		PetNome:     m.PetNome,
		TutorNome:   m.TutorNome,
		Hora:        m.Hora,
		ValorDiaria: m.DailyRate,
		Pago:        m.Pago,
	}
}
