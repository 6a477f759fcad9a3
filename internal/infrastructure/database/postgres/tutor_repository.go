package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"austay/internal/domain/tutor"
	"austay/internal/infrastructure/database/postgres/models"
)

// TutorRepository implements the tutor.Repository interface
type TutorRepository struct {
	db *DB
}

// NewTutorRepository creates a new tutor repository
func NewTutorRepository(db *DB) tutor.Repository {
	return &TutorRepository{db: db}
}

func (r *TutorRepository) Create(ctx context.Context, t *tutor.Tutor) error {
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	t.UpdatedAt = time.Now()

	dbModel := toTutorModel(t)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		errStr := strings.ToLower(err.Error())
		if strings.Contains(errStr, "duplicate key") && strings.Contains(errStr, "cpf") {
			return tutor.ErrCPFAlreadyExists
		}
		return fmt.Errorf("failed to create tutor: %w", err)
	}

	t.ID = dbModel.ID
	t.CreatedAt = dbModel.CreatedAt
	t.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *TutorRepository) GetByID(ctx context.Context, tutorID uuid.UUID) (*tutor.Tutor, error) {
	var dbModel models.TutorModel
	err := r.db.DB.WithContext(ctx).First(&dbModel, "id = ?", tutorID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, tutor.ErrTutorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tutor: %w", err)
	}

	return toTutorEntity(&dbModel), nil
}

func (r *TutorRepository) GetByIDs(ctx context.Context, tutorIDs []uuid.UUID) ([]*tutor.Tutor, error) {
	var dbModels []models.TutorModel
	err := r.db.DB.WithContext(ctx).Where("id IN ?", tutorIDs).Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get tutors: %w", err)
	}

	tutors := make([]*tutor.Tutor, len(dbModels))
	for i := range dbModels {
		tutors[i] = toTutorEntity(&dbModels[i])
	}

	return tutors, nil
}

func (r *TutorRepository) GetAll(ctx context.Context, skip, limit int) ([]*tutor.Tutor, error) {
	var dbModels []models.TutorModel
	err := r.db.DB.WithContext(ctx).Offset(skip).Limit(limit).Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get tutors: %w", err)
	}

	tutors := make([]*tutor.Tutor, len(dbModels))
	for i := range dbModels {
		tutors[i] = toTutorEntity(&dbModels[i])
	}

	return tutors, nil
}

func (r *TutorRepository) Update(ctx context.Context, t *tutor.Tutor) error {
	t.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).Model(&models.TutorModel{}).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"name":       t.Name,
			"cpf":        t.CPF,
			"phone":      t.Phone,
			"updated_at": t.UpdatedAt,
		})

	if result.Error != nil {
		errStr := strings.ToLower(result.Error.Error())
		if strings.Contains(errStr, "duplicate key") && strings.Contains(errStr, "cpf") {
			return tutor.ErrCPFAlreadyExists
		}
		return fmt.Errorf("failed to update tutor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return tutor.ErrTutorNotFound
	}

	return nil
}

func (r *TutorRepository) Delete(ctx context.Context, tutorID uuid.UUID) error {
	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Detach shared pets before removing the tutor; pets are never
		// deleted through this path.
		if err := tx.Exec(
			"DELETE FROM pet_tutor_association WHERE tutor_model_id = ?", tutorID,
		).Error; err != nil {
			return fmt.Errorf("failed to detach pets: %w", err)
		}

		result := tx.Delete(&models.TutorModel{}, "id = ?", tutorID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete tutor: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return tutor.ErrTutorNotFound
		}

		return nil
	})
}

func toTutorModel(t *tutor.Tutor) *models.TutorModel {
	return &models.TutorModel{
		ID:        t.ID,
		Name:      t.Name,
		CPF:       t.CPF,
		Phone:     t.Phone,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toTutorEntity(m *models.TutorModel) *tutor.Tutor {
	return &tutor.Tutor{
		ID:        m.ID,
		Name:      m.Name,
		CPF:       m.CPF,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
