package pagamento

import (
	"time"

	"github.com/google/uuid"

	domainEstadia "austay/internal/domain/estadia"
)

const dateLayout = "2006-01-02"

// PayRequest settles the payment row already created alongside the estadia.
type PayRequest struct {
	EstadiaID     uuid.UUID `json:"estadia_id" validate:"required"`
	MeioPagamento string    `json:"meio_pagamento" validate:"required,min=2,max=50"`
	DataPagamento string    `json:"data_pagamento" validate:"required,datetime=2006-01-02"`
}

type UpdateRequest struct {
	Status        *bool   `json:"status"`
	MeioPagamento *string `json:"meio_pagamento" validate:"omitempty,min=2,max=50"`
	DataPagamento *string `json:"data_pagamento" validate:"omitempty,datetime=2006-01-02"`
}

type PagamentoResponse struct {
	ID            uuid.UUID `json:"id"`
	EstadiaID     uuid.UUID `json:"estadia_id"`
	Valor         *float64  `json:"valor"`
	Status        bool      `json:"status"`
	MeioPagamento *string   `json:"meio_pagamento"`
	DataPagamento *string   `json:"data_pagamento"`
}

func ToPagamentoResponse(p *domainEstadia.Pagamento) *PagamentoResponse {
	if p == nil {
		return nil
	}

	var dataPagamento *string
	if p.PaidDate != nil {
		d := p.PaidDate.Format(dateLayout)
		dataPagamento = &d
	}

	return &PagamentoResponse{
		ID:            p.ID,
		EstadiaID:     p.EstadiaID,
		Valor:         p.Amount,
		Status:        p.Paid,
		MeioPagamento: p.Method,
		DataPagamento: dataPagamento,
	}
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
