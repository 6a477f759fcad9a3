package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"austay/internal/domain/pet"
	"austay/internal/domain/tutor"
	"austay/internal/infrastructure/database/postgres/models"
)

// PetRepository implements the pet.Repository interface
type PetRepository struct {
	db *DB
}

// NewPetRepository creates a new pet repository
func NewPetRepository(db *DB) pet.Repository {
	return &PetRepository{db: db}
}

func (r *PetRepository) Create(ctx context.Context, p *pet.Pet) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()

	dbModel := toPetModel(p)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create pet: %w", err)
	}

	p.ID = dbModel.ID
	p.CreatedAt = dbModel.CreatedAt
	p.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *PetRepository) GetByID(ctx context.Context, petID uuid.UUID) (*pet.Pet, error) {
	var dbModel models.PetModel
	err := r.db.DB.WithContext(ctx).
		Preload("Tutors").
		First(&dbModel, "id = ?", petID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pet.ErrPetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pet: %w", err)
	}

	return toPetEntity(&dbModel), nil
}

func (r *PetRepository) GetAll(ctx context.Context, skip, limit int) ([]*pet.Pet, error) {
	var dbModels []models.PetModel
	err := r.db.DB.WithContext(ctx).
		Preload("Tutors").
		Offset(skip).Limit(limit).
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get pets: %w", err)
	}

	pets := make([]*pet.Pet, len(dbModels))
	for i := range dbModels {
		pets[i] = toPetEntity(&dbModels[i])
	}

	return pets, nil
}

func (r *PetRepository) ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]*pet.Pet, error) {
	var dbModels []models.PetModel
	err := r.db.DB.WithContext(ctx).
		Preload("Tutors").
		Joins("JOIN pet_tutor_association pta ON pta.pet_model_id = pets.id").
		Where("pta.tutor_model_id = ?", tutorID).
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pets by tutor: %w", err)
	}

	pets := make([]*pet.Pet, len(dbModels))
	for i := range dbModels {
		pets[i] = toPetEntity(&dbModels[i])
	}

	return pets, nil
}

func (r *PetRepository) Update(ctx context.Context, p *pet.Pet) error {
	p.UpdatedAt = time.Now()

	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.PetModel{}).
			Where("id = ?", p.ID).
			Updates(map[string]interface{}{
				"nome":        p.Nome,
				"especie":     p.Especie,
				"raca":        p.Raca,
				"nascimento":  p.Nascimento,
				"sexo":        p.Sexo,
				"vermifugado": p.Vermifugado,
				"vacinado":    p.Vacinado,
				"updated_at":  p.UpdatedAt,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update pet: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return pet.ErrPetNotFound
		}

		if p.Tutors != nil {
			dbModel := &models.PetModel{ID: p.ID}
			if err := tx.Model(dbModel).
				Association("Tutors").
				Replace(toTutorModels(p.Tutors)); err != nil {
				return fmt.Errorf("failed to replace tutors: %w", err)
			}
		}

		return nil
	})
}

func (r *PetRepository) Delete(ctx context.Context, petID uuid.UUID) error {
	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM pet_tutor_association WHERE pet_model_id = ?", petID,
		).Error; err != nil {
			return fmt.Errorf("failed to detach tutors: %w", err)
		}

		result := tx.Delete(&models.PetModel{}, "id = ?", petID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete pet: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return pet.ErrPetNotFound
		}

		return nil
	})
}

func toPetModel(p *pet.Pet) *models.PetModel {
	return &models.PetModel{
		ID:          p.ID,
		Nome:        p.Nome,
		Especie:     p.Especie,
		Raca:        p.Raca,
		Nascimento:  p.Nascimento,
		Sexo:        p.Sexo,
		Vermifugado: p.Vermifugado,
		Vacinado:    p.Vacinado,
		Tutors:      toTutorModels(p.Tutors),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toPetEntity(m *models.PetModel) *pet.Pet {
	tutors := make([]*tutor.Tutor, len(m.Tutors))
	for i, tm := range m.Tutors {
		tutors[i] = toTutorEntity(tm)
	}

	return &pet.Pet{
		ID:          m.ID,
		Nome:        m.Nome,
		Especie:     m.Especie,
		Raca:        m.Raca,
		Nascimento:  m.Nascimento,
		Sexo:        m.Sexo,
		Vermifugado: m.Vermifugado,
		Vacinado:    m.Vacinado,
		Tutors:      tutors,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toTutorModels(tutors []*tutor.Tutor) []*models.TutorModel {
	dbModels := make([]*models.TutorModel, len(tutors))
	for i, t := range tutors {
		dbModels[i] = toTutorModel(t)
	}
	return dbModels
}
