package estadia

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines estadia and pagamento persistence. A stay and its
// payment never exist independently: Create inserts both rows, Update and
// SyncPagamento rewrite both, and Delete removes both, each in a single
// transaction.
type Repository interface {
	// Create persists the estadia and its linked pagamento
	// (amount = estadia total, paid = false) atomically.
	Create(ctx context.Context, e *Estadia) error
	GetByID(ctx context.Context, estadiaID uuid.UUID) (*Estadia, error)
	GetAll(ctx context.Context, skip, limit int) ([]*Estadia, error)
	// Update rewrites the estadia and mirrors total and paid state into the
	// linked pagamento. Setting pago false clears the pagamento method and
	// date fields.
	Update(ctx context.Context, e *Estadia) error
	Delete(ctx context.Context, estadiaID uuid.UUID) error
	CountByPet(ctx context.Context, petID uuid.UUID) (int64, error)

	GetPagamentoByID(ctx context.Context, pagamentoID uuid.UUID) (*Pagamento, error)
	GetPagamentoByEstadia(ctx context.Context, estadiaID uuid.UUID) (*Pagamento, error)
	GetAllPagamentos(ctx context.Context, skip, limit int) ([]*Pagamento, error)
	// SyncPagamento rewrites the pagamento row and mirrors its paid flag
	// onto the estadia in the same transaction.
	SyncPagamento(ctx context.Context, p *Pagamento) error

	CountHosted(ctx context.Context, day time.Time) (int64, error)
	CountCheckIns(ctx context.Context, day time.Time) (int64, error)
	CountCheckOuts(ctx context.Context, day time.Time) (int64, error)
	ListHosted(ctx context.Context, day time.Time) ([]*HostedStay, error)
	ListCheckIns(ctx context.Context, day time.Time) ([]*Movement, error)
	ListCheckOuts(ctx context.Context, day time.Time) ([]*Movement, error)
}
