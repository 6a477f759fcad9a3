package tutor

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainTutor "austay/internal/domain/tutor"
	"austay/internal/logger"
	appErrors "austay/pkg/errors"
	"austay/pkg/utils"
)

// Service implements tutor use cases
type Service struct {
	tutorRepo domainTutor.Repository
}

// NewService creates a new tutor service
func NewService(tutorRepo domainTutor.Repository) *Service {
	return &Service{tutorRepo: tutorRepo}
}

func (s *Service) Create(ctx context.Context, req *CreateRequest) (*TutorResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	tutor := &domainTutor.Tutor{
		Name:  req.Name,
		CPF:   req.CPF,
		Phone: req.Phone,
	}

	if err := s.tutorRepo.Create(ctx, tutor); err != nil {
		return nil, err
	}

	logger.Info("Tutor created",
		zap.String("tutor_id", tutor.ID.String()),
		zap.String("event", "tutor_created"),
	)

	return ToTutorResponse(tutor), nil
}

func (s *Service) GetByID(ctx context.Context, tutorID uuid.UUID) (*TutorResponse, error) {
	tutor, err := s.tutorRepo.GetByID(ctx, tutorID)
	if err != nil {
		return nil, err
	}

	return ToTutorResponse(tutor), nil
}

func (s *Service) GetAll(ctx context.Context, skip, limit int) ([]*TutorResponse, error) {
	tutors, err := s.tutorRepo.GetAll(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*TutorResponse, len(tutors))
	for i, t := range tutors {
		responses[i] = ToTutorResponse(t)
	}

	return responses, nil
}

func (s *Service) Update(ctx context.Context, tutorID uuid.UUID, req *UpdateRequest) (*TutorResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	tutor, err := s.tutorRepo.GetByID(ctx, tutorID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		tutor.Name = *req.Name
	}
	if req.CPF != nil {
		tutor.CPF = *req.CPF
	}
	if req.Phone != nil {
		tutor.Phone = *req.Phone
	}

	if err := s.tutorRepo.Update(ctx, tutor); err != nil {
		return nil, err
	}

	return ToTutorResponse(tutor), nil
}

// Delete removes the tutor and detaches shared pets. Pets survive tutor
// deletion; only the association goes away.
func (s *Service) Delete(ctx context.Context, tutorID uuid.UUID) error {
	if err := s.tutorRepo.Delete(ctx, tutorID); err != nil {
		return err
	}

	logger.Info("Tutor deleted",
		zap.String("tutor_id", tutorID.String()),
		zap.String("event", "tutor_deleted"),
	)

	return nil
}
