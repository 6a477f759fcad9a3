package estadia

import "errors"

var (
	ErrEstadiaNotFound   = errors.New("estadia not found")
	ErrPagamentoNotFound = errors.New("pagamento not found")

	ErrPagamentoAlreadyPaid = errors.New("pagamento has already been completed")
	ErrAmountNotYetKnown    = errors.New("estadia has no exit date yet, amount not computed")
)
