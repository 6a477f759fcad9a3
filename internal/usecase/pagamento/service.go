package pagamento

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainEstadia "austay/internal/domain/estadia"
	"austay/internal/logger"
	appErrors "austay/pkg/errors"
	"austay/pkg/utils"
)

// Service implements pagamento use cases. The payment row is created and
// destroyed with its estadia; this service only moves it between the paid
// and unpaid states, mirroring the flag onto the stay each time.
type Service struct {
	estadiaRepo domainEstadia.Repository
}

// NewService creates a new pagamento service
func NewService(estadiaRepo domainEstadia.Repository) *Service {
	return &Service{estadiaRepo: estadiaRepo}
}

// Pay settles the payment linked to an estadia. It refuses stays that are
// already paid or that have no computed total yet.
func (s *Service) Pay(ctx context.Context, req *PayRequest) (*PagamentoResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	pagamento, err := s.estadiaRepo.GetPagamentoByEstadia(ctx, req.EstadiaID)
	if err != nil {
		return nil, err
	}

	if pagamento.Paid {
		return nil, domainEstadia.ErrPagamentoAlreadyPaid
	}
	if pagamento.Amount == nil {
		return nil, domainEstadia.ErrAmountNotYetKnown
	}

	paidDate, err := parseDate(req.DataPagamento)
	if err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid payment date", err)
	}

	method := utils.SanitizeString(req.MeioPagamento)
	pagamento.Paid = true
	pagamento.Method = &method
	pagamento.PaidDate = &paidDate

	if err := s.estadiaRepo.SyncPagamento(ctx, pagamento); err != nil {
		return nil, err
	}

	logger.Info("Pagamento completed",
		zap.String("pagamento_id", pagamento.ID.String()),
		zap.String("estadia_id", pagamento.EstadiaID.String()),
		zap.String("event", "pagamento_paid"),
	)

	return ToPagamentoResponse(pagamento), nil
}

func (s *Service) GetByID(ctx context.Context, pagamentoID uuid.UUID) (*PagamentoResponse, error) {
	pagamento, err := s.estadiaRepo.GetPagamentoByID(ctx, pagamentoID)
	if err != nil {
		return nil, err
	}

	return ToPagamentoResponse(pagamento), nil
}

func (s *Service) GetAll(ctx context.Context, skip, limit int) ([]*PagamentoResponse, error) {
	pagamentos, err := s.estadiaRepo.GetAllPagamentos(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*PagamentoResponse, len(pagamentos))
	for i, p := range pagamentos {
		responses[i] = ToPagamentoResponse(p)
	}

	return responses, nil
}

func (s *Service) Update(ctx context.Context, pagamentoID uuid.UUID, req *UpdateRequest) (*PagamentoResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	pagamento, err := s.estadiaRepo.GetPagamentoByID(ctx, pagamentoID)
	if err != nil {
		return nil, err
	}

	if req.MeioPagamento != nil {
		method := utils.SanitizeString(*req.MeioPagamento)
		pagamento.Method = &method
	}
	if req.DataPagamento != nil {
		paidDate, err := parseDate(*req.DataPagamento)
		if err != nil {
			return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid payment date", err)
		}
		pagamento.PaidDate = &paidDate
	}
	if req.Status != nil {
		pagamento.Paid = *req.Status
		if !pagamento.Paid {
			pagamento.Method = nil
			pagamento.PaidDate = nil
		}
	}

	if err := s.estadiaRepo.SyncPagamento(ctx, pagamento); err != nil {
		return nil, err
	}

	logger.Info("Pagamento updated",
		zap.String("pagamento_id", pagamento.ID.String()),
		zap.Bool("status", pagamento.Paid),
		zap.String("event", "pagamento_updated"),
	)

	return ToPagamentoResponse(pagamento), nil
}

// Delete resets the payment to the unpaid state. The row itself stays: it
// is only removed when its estadia is deleted. Amount is left untouched so
// the stay can be paid again without a recompute.
func (s *Service) Delete(ctx context.Context, pagamentoID uuid.UUID) (*PagamentoResponse, error) {
	pagamento, err := s.estadiaRepo.GetPagamentoByID(ctx, pagamentoID)
	if err != nil {
		return nil, err
	}

	pagamento.Paid = false
	pagamento.Method = nil
	pagamento.PaidDate = nil

	if err := s.estadiaRepo.SyncPagamento(ctx, pagamento); err != nil {
		return nil, err
	}

	logger.Info("Pagamento reset",
		zap.String("pagamento_id", pagamentoID.String()),
		zap.String("event", "pagamento_reset"),
	)

	return ToPagamentoResponse(pagamento), nil
}
