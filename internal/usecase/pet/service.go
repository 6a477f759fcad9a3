package pet

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

// Service implements pet use cases
type Service struct {
	petRepo     domainPet.Repository
	tutorRepo   domainTutor.Repository
	estadiaRepo domainEstadia.Repository
}

// NewService creates a new pet service
func NewService(petRepo domainPet.Repository, tutorRepo domainTutor.Repository, estadiaRepo domainEstadia.Repository) *Service {
	return &Service{
		petRepo:     petRepo,
		tutorRepo:   tutorRepo,
		estadiaRepo: estadiaRepo,
	}
}

func (s *Service) Create(ctx context.Context, req *CreateRequest) (*PetResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	tutors, err := s.resolveTutors(ctx, req.TutorIDs)
	if err != nil {
		return nil, err
	}

	pet := &domainPet.Pet{
		Nome:        utils.SanitizeString(req.Nome),
		Especie:     utils.SanitizeString(req.Especie),
		Raca:        utils.SanitizeString(req.Raca),
		Nascimento:  req.Nascimento,
		Sexo:        req.Sexo,
		Vermifugado: req.Vermifugado,
		Vacinado:    req.Vacinado,
		Tutors:      tutors,
	}

	if err := s.petRepo.Create(ctx, pet); err != nil {
		return nil, err
	}

	logger.Info("Pet created",
		zap.String("pet_id", pet.ID.String()),
		zap.Int("tutor_count", len(tutors)),
		zap.String("event", "pet_created"),
	)

	return ToPetResponse(pet), nil
}

func (s *Service) GetByID(ctx context.Context, petID uuid.UUID) (*PetResponse, error) {
	pet, err := s.petRepo.GetByID(ctx, petID)
	if err != nil {
		return nil, err
	}

	return ToPetResponse(pet), nil
}

func (s *Service) GetAll(ctx context.Context, skip, limit int) ([]*PetResponse, error) {
	pets, err := s.petRepo.GetAll(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*PetResponse, len(pets))
	for i, p := range pets {
		responses[i] = ToPetResponse(p)
	}

	return responses, nil
}

func (s *Service) ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]*PetResponse, error) {
	if _, err := s.tutorRepo.GetByID(ctx, tutorID); err != nil {
		return nil, err
	}

	pets, err := s.petRepo.ListByTutor(ctx, tutorID)
	if err != nil {
		return nil, err
	}

	responses := make([]*PetResponse, len(pets))
	for i, p := range pets {
		responses[i] = ToPetResponse(p)
	}

	return responses, nil
}

func (s *Service) Update(ctx context.Context, petID uuid.UUID, req *UpdateRequest) (*PetResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	pet, err := s.petRepo.GetByID(ctx, petID)
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		pet.Nome = utils.SanitizeString(*req.Nome)
	}
	if req.Especie != nil {
		pet.Especie = utils.SanitizeString(*req.Especie)
	}
	if req.Raca != nil {
		pet.Raca = utils.SanitizeString(*req.Raca)
	}
	if req.Nascimento != nil {
		pet.Nascimento = req.Nascimento
	}
	if req.Sexo != nil {
		pet.Sexo = *req.Sexo
	}
	if req.Vermifugado != nil {
		pet.Vermifugado = req.Vermifugado
	}
	if req.Vacinado != nil {
		pet.Vacinado = req.Vacinado
	}
	if req.TutorIDs != nil {
		tutors, err := s.resolveTutors(ctx, req.TutorIDs)
		if err != nil {
			return nil, err
		}
		pet.Tutors = tutors
	} else {
		pet.Tutors = nil
	}

	if err := s.petRepo.Update(ctx, pet); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, petID)
}

// Delete removes a pet. A pet with any estadia on record cannot be deleted.
func (s *Service) Delete(ctx context.Context, petID uuid.UUID) error {
	if _, err := s.petRepo.GetByID(ctx, petID); err != nil {
		return err
	}

	count, err := s.estadiaRepo.CountByPet(ctx, petID)
	if err != nil {
		return err
	}
	if count > 0 {
		return domainPet.ErrPetHasEstadias
	}

	if err := s.petRepo.Delete(ctx, petID); err != nil {
		return err
	}

	logger.Info("Pet deleted",
		zap.String("pet_id", petID.String()),
		zap.String("event", "pet_deleted"),
	)

	return nil
}

// resolveTutors loads every referenced tutor and fails when any id is
// unknown, so a pet can never point at a missing tutor.
func (s *Service) resolveTutors(ctx context.Context, tutorIDs []uuid.UUID) ([]*domainTutor.Tutor, error) {
	tutors, err := s.tutorRepo.GetByIDs(ctx, tutorIDs)
	if err != nil {
		return nil, err
	}
	if len(tutors) != len(tutorIDs) {
		return nil, domainTutor.ErrTutorsNotFound
	}
	return tutors, nil
}
