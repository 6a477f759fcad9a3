package estadia

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainEstadia "austay/internal/domain/estadia"
	domainPet "austay/internal/domain/pet"
	domainTutor "austay/internal/domain/tutor"
	"austay/internal/logger"
	appErrors "austay/pkg/errors"
	"austay/pkg/utils"
)

// Service implements estadia use cases. Every mutation keeps the linked
// pagamento row consistent with the stay through the repository.
type Service struct {
	estadiaRepo domainEstadia.Repository
	petRepo     domainPet.Repository
	tutorRepo   domainTutor.Repository
}

// NewService creates a new estadia service
func NewService(estadiaRepo domainEstadia.Repository, petRepo domainPet.Repository, tutorRepo domainTutor.Repository) *Service {
	return &Service{
		estadiaRepo: estadiaRepo,
		petRepo:     petRepo,
		tutorRepo:   tutorRepo,
	}
}

func (s *Service) Create(ctx context.Context, req *CreateRequest) (*EstadiaResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if _, err := s.petRepo.GetByID(ctx, req.PetID); err != nil {
		return nil, err
	}
	if _, err := s.tutorRepo.GetByID(ctx, req.TutorID); err != nil {
		return nil, err
	}

	entry, err := parseDate(req.DataEntrada)
	if err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid entry date", err)
	}

	estadia := &domainEstadia.Estadia{
		PetID:     req.PetID,
		TutorID:   req.TutorID,
		EntryDate: entry,
		EntryTime: req.HoraEntrada,
		ExitTime:  req.HoraSaida,
		DailyRate: req.ValorDiaria,
		Notes:     sanitizeNotes(req.Observacoes),
	}

	if req.DataSaida != nil {
		exit, err := parseDate(*req.DataSaida)
		if err != nil {
			return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid exit date", err)
		}
		estadia.ExitDate = &exit
	}

	estadia.Total = domainEstadia.ComputeTotal(estadia.EntryDate, estadia.ExitDate, estadia.DailyRate)

	if err := s.estadiaRepo.Create(ctx, estadia); err != nil {
		return nil, err
	}

	logger.Info("Estadia created",
		zap.String("estadia_id", estadia.ID.String()),
		zap.String("pet_id", estadia.PetID.String()),
		zap.String("event", "estadia_created"),
	)

	return ToEstadiaResponse(estadia), nil
}

func (s *Service) GetByID(ctx context.Context, estadiaID uuid.UUID) (*EstadiaResponse, error) {
	estadia, err := s.estadiaRepo.GetByID(ctx, estadiaID)
	if err != nil {
		return nil, err
	}

	return ToEstadiaResponse(estadia), nil
}

func (s *Service) GetAll(ctx context.Context, skip, limit int) ([]*EstadiaResponse, error) {
	estadias, err := s.estadiaRepo.GetAll(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*EstadiaResponse, len(estadias))
	for i, e := range estadias {
		responses[i] = ToEstadiaResponse(e)
	}

	return responses, nil
}

func (s *Service) Update(ctx context.Context, estadiaID uuid.UUID, req *UpdateRequest) (*EstadiaResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	estadia, err := s.estadiaRepo.GetByID(ctx, estadiaID)
	if err != nil {
		return nil, err
	}

	if req.DataEntrada != nil {
		entry, err := parseDate(*req.DataEntrada)
		if err != nil {
			return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid entry date", err)
		}
		estadia.EntryDate = entry
	}
	if req.HoraEntrada != nil {
		estadia.EntryTime = *req.HoraEntrada
	}
	if req.DataSaida != nil {
		exit, err := parseDate(*req.DataSaida)
		if err != nil {
			return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid exit date", err)
		}
		estadia.ExitDate = &exit
	}
	if req.HoraSaida != nil {
		estadia.ExitTime = req.HoraSaida
	}
	if req.ValorDiaria != nil {
		estadia.DailyRate = *req.ValorDiaria
	}
	if req.Observacoes != nil {
		estadia.Notes = sanitizeNotes(req.Observacoes)
	}
	if req.Pago != nil {
		estadia.Pago = *req.Pago
	}

	// Total tracks the current entry/exit/rate; the repository mirrors it
	// into the pagamento amount in the same transaction.
	estadia.Total = domainEstadia.ComputeTotal(estadia.EntryDate, estadia.ExitDate, estadia.DailyRate)

	// A stay can only be paid once its total is known.
	if estadia.Pago && estadia.Total == nil {
		return nil, domainEstadia.ErrAmountNotYetKnown
	}

	if err := s.estadiaRepo.Update(ctx, estadia); err != nil {
		return nil, err
	}

	logger.Info("Estadia updated",
		zap.String("estadia_id", estadia.ID.String()),
		zap.Bool("pago", estadia.Pago),
		zap.String("event", "estadia_updated"),
	)

	return ToEstadiaResponse(estadia), nil
}

func (s *Service) Delete(ctx context.Context, estadiaID uuid.UUID) error {
	if _, err := s.estadiaRepo.GetByID(ctx, estadiaID); err != nil {
		return err
	}

	if err := s.estadiaRepo.Delete(ctx, estadiaID); err != nil {
		return err
	}

	logger.Info("Estadia deleted",
		zap.String("estadia_id", estadiaID.String()),
		zap.String("event", "estadia_deleted"),
	)

	return nil
}

func sanitizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	clean := utils.SanitizeString(*notes)
	return &clean
}
