package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"austay/internal/domain/estadia"
	"austay/internal/infrastructure/database/postgres/models"
)

// EstadiaRepository implements the estadia.Repository interface. Every write
// that touches derived state goes through a transaction so the estadia and
// its pagamento can never drift apart.
type EstadiaRepository struct {
	db *DB
}

// NewEstadiaRepository creates a new estadia repository
func NewEstadiaRepository(db *DB) estadia.Repository {
	return &EstadiaRepository{db: db}
}

func (r *EstadiaRepository) Create(ctx context.Context, e *estadia.Estadia) error {
	e.ID = uuid.New()
	e.CreatedAt = time.Now()
	e.UpdatedAt = time.Now()

	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbModel := toEstadiaModel(e)
		if err := tx.Create(dbModel).Error; err != nil {
			return fmt.Errorf("failed to create estadia: %w", err)
		}

		pagamento := &models.PagamentoModel{
			ID:        uuid.New(),
			EstadiaID: dbModel.ID,
			Amount:    e.Total,
			Paid:      false,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := tx.Create(pagamento).Error; err != nil {
			return fmt.Errorf("failed to create pagamento: %w", err)
		}

		e.ID = dbModel.ID
		e.CreatedAt = dbModel.CreatedAt
		e.UpdatedAt = dbModel.UpdatedAt

		return nil
	})
}

func (r *EstadiaRepository) GetByID(ctx context.Context, estadiaID uuid.UUID) (*estadia.Estadia, error) {
	var dbModel models.EstadiaModel
	err := r.db.DB.WithContext(ctx).First(&dbModel, "id = ?", estadiaID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, estadia.ErrEstadiaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get estadia: %w", err)
	}

	return toEstadiaEntity(&dbModel), nil
}

func (r *EstadiaRepository) GetAll(ctx context.Context, skip, limit int) ([]*estadia.Estadia, error) {
	var dbModels []models.EstadiaModel
	err := r.db.DB.WithContext(ctx).Offset(skip).Limit(limit).Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get estadias: %w", err)
	}

	estadias := make([]*estadia.Estadia, len(dbModels))
	for i := range dbModels {
		estadias[i] = toEstadiaEntity(&dbModels[i])
	}

	return estadias, nil
}

func (r *EstadiaRepository) Update(ctx context.Context, e *estadia.Estadia) error {
	e.UpdatedAt = time.Now()

	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.EstadiaModel{}).
			Where("id = ?", e.ID).
			Updates(map[string]interface{}{
				"pet_id":     e.PetID,
				"tutor_id":   e.TutorID,
				"entry_date": e.EntryDate,
				"entry_time": e.EntryTime,
				"exit_date":  e.ExitDate,
				"exit_time":  e.ExitTime,
				"daily_rate": e.DailyRate,
				"notes":      e.Notes,
				"total":      e.Total,
				"pago":       e.Pago,
				"updated_at": e.UpdatedAt,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update estadia: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return estadia.ErrEstadiaNotFound
		}

		pagamentoUpdates := map[string]interface{}{
			"amount":     e.Total,
			"paid":       e.Pago,
			"updated_at": time.Now(),
		}
		if !e.Pago {
			pagamentoUpdates["method"] = nil
			pagamentoUpdates["paid_date"] = nil
		}

		if err := tx.Model(&models.PagamentoModel{}).
			Where("estadia_id = ?", e.ID).
			Updates(pagamentoUpdates).Error; err != nil {
			return fmt.Errorf("failed to sync pagamento: %w", err)
		}

		return nil
	})
}

func (r *EstadiaRepository) Delete(ctx context.Context, estadiaID uuid.UUID) error {
	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// FK cascade also covers this, but the explicit delete keeps the
		// behavior independent of whether the constraint was migrated.
		if err := tx.Where("estadia_id = ?", estadiaID).
			Delete(&models.PagamentoModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete pagamento: %w", err)
		}

		result := tx.Delete(&models.EstadiaModel{}, "id = ?", estadiaID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete estadia: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return estadia.ErrEstadiaNotFound
		}

		return nil
	})
}

func (r *EstadiaRepository) CountByPet(ctx context.Context, petID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).Model(&models.EstadiaModel{}).
		Where("pet_id = ?", petID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count estadias by pet: %w", err)
	}
	return count, nil
}

func (r *EstadiaRepository) GetPagamentoByID(ctx context.Context, pagamentoID uuid.UUID) (*estadia.Pagamento, error) {
	var dbModel models.PagamentoModel
	err := r.db.DB.WithContext(ctx).First(&dbModel, "id = ?", pagamentoID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, estadia.ErrPagamentoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pagamento: %w", err)
	}

	return toPagamentoEntity(&dbModel), nil
}

func (r *EstadiaRepository) GetPagamentoByEstadia(ctx context.Context, estadiaID uuid.UUID) (*estadia.Pagamento, error) {
	var dbModel models.PagamentoModel
	err := r.db.DB.WithContext(ctx).
		Where("estadia_id = ?", estadiaID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, estadia.ErrPagamentoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pagamento: %w", err)
	}

	return toPagamentoEntity(&dbModel), nil
}

func (r *EstadiaRepository) GetAllPagamentos(ctx context.Context, skip, limit int) ([]*estadia.Pagamento, error) {
	var dbModels []models.PagamentoModel
	err := r.db.DB.WithContext(ctx).Offset(skip).Limit(limit).Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get pagamentos: %w", err)
	}

	pagamentos := make([]*estadia.Pagamento, len(dbModels))
	for i := range dbModels {
		pagamentos[i] = toPagamentoEntity(&dbModels[i])
	}

	return pagamentos, nil
}

func (r *EstadiaRepository) SyncPagamento(ctx context.Context, p *estadia.Pagamento) error {
	p.UpdatedAt = time.Now()

	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.PagamentoModel{}).
			Where("id = ?", p.ID).
			Updates(map[string]interface{}{
				"amount":     p.Amount,
				"paid":       p.Paid,
				"method":     p.Method,
				"paid_date":  p.PaidDate,
				"updated_at": p.UpdatedAt,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update pagamento: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return estadia.ErrPagamentoNotFound
		}

		if err := tx.Model(&models.EstadiaModel{}).
			Where("id = ?", p.EstadiaID).
			Updates(map[string]interface{}{
				"pago":       p.Paid,
				"updated_at": time.Now(),
			}).Error; err != nil {
			return fmt.Errorf("failed to sync estadia: %w", err)
		}

		return nil
	})
}

func (r *EstadiaRepository) CountHosted(ctx context.Context, day time.Time) (int64, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).Model(&models.EstadiaModel{}).
		Where("entry_date <= ? AND (exit_date IS NULL OR exit_date >= ?)", day, day).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count hosted pets: %w", err)
	}
	return count, nil
}

func (r *EstadiaRepository) CountCheckIns(ctx context.Context, day time.Time) (int64, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).Model(&models.EstadiaModel{}).
		Where("entry_date = ?", day).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count check-ins: %w", err)
	}
	return count, nil
}

func (r *EstadiaRepository) CountCheckOuts(ctx context.Context, day time.Time) (int64, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).Model(&models.EstadiaModel{}).
		Where("exit_date IS NOT NULL AND exit_date = ?", day).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count check-outs: %w", err)
	}
	return count, nil
}

type hostedRow struct {
	EstadiaID uuid.UUID
	PetID     uuid.UUID
	PetNome   string
	TutorNome string
	EntryDate time.Time
	ExitDate  *time.Time
	DailyRate float64
	Pago      bool
}

func (r *EstadiaRepository) ListHosted(ctx context.Context, day time.Time) ([]*estadia.HostedStay, error) {
	var rows []hostedRow
	err := r.db.DB.WithContext(ctx).Model(&models.EstadiaModel{}).
		Select(`estadias.id AS estadia_id, pets.id AS pet_id, pets.nome AS pet_nome,
			tutors.name AS tutor_nome, estadias.entry_date, estadias.exit_date,
			estadias.daily_rate, estadias.pago`).
		Joins("JOIN pets ON pets.id = estadias.pet_id").
		Joins("JOIN tutors ON tutors.id = estadias.tutor_id").
		Where("estadias.entry_date <= ? AND (estadias.exit_date IS NULL OR estadias.exit_date >= ?)", day, day).
		Order("estadias.entry_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list hosted pets: %w", err)
	}

	hosted := make([]*estadia.HostedStay, len(rows))
	for i, row := range rows {
		hosted[i] = &estadia.HostedStay{
			EstadiaID: row.EstadiaID,
			PetID:     row.PetID,
			PetNome:   row.PetNome,
			TutorNome: row.TutorNome,
			EntryDate: row.EntryDate,
			ExitDate:  row.ExitDate,
			DailyRate: row.DailyRate,
			Pago:      row.Pago,
		}
	}

	return hosted, nil
}

type movementRow struct {
	EstadiaID uuid.UUID
	PetNome   string
	TutorNome string
	Hora      *string
	DailyRate float64
	Pago      bool
}

func (r *EstadiaRepository) ListCheckIns(ctx context.Context, day time.Time) ([]*estadia.Movement, error) {
	return r.listMovements(ctx, "estadias.entry_date = ?", "estadias.entry_time", day)
}

func (r *EstadiaRepository) ListCheckOuts(ctx context.Context, day time.Time) ([]*estadia.Movement, error) {
	return r.listMovements(ctx, "estadias.exit_date IS NOT NULL AND estadias.exit_date = ?", "estadias.exit_time", day)
}

func (r *EstadiaRepository) listMovements(ctx context.Context, cond, horaColumn string, day time.Time) ([]*estadia.Movement, error) {
	var rows []movementRow
	err := r.db.DB.WithContext(ctx).Model(&models.EstadiaModel{}).
		Select(fmt.Sprintf(`estadias.id AS estadia_id, pets.nome AS pet_nome,
			tutors.name AS tutor_nome, %s AS hora,
			estadias.daily_rate, estadias.pago`, horaColumn)).
		Joins("JOIN pets ON pets.id = estadias.pet_id").
		Joins("JOIN tutors ON tutors.id = estadias.tutor_id").
		Where(cond, day).
		Order("hora").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}

	movements := make([]*estadia.Movement, len(rows))
	for i, row := range rows {
		movements[i] = &estadia.Movement{
			EstadiaID: row.EstadiaID,
			PetNome:   row.PetNome,
			TutorNome: row.TutorNome,
			Hora:      row.Hora,
			DailyRate: row.DailyRate,
			Pago:      row.Pago,
		}
	}

	return movements, nil
}

func toEstadiaModel(e *estadia.Estadia) *models.EstadiaModel {
	return &models.EstadiaModel{
		ID:        e.ID,
		PetID:     e.PetID,
		TutorID:   e.TutorID,
		EntryDate: e.EntryDate,
		EntryTime: e.EntryTime,
		ExitDate:  e.ExitDate,
		ExitTime:  e.ExitTime,
		DailyRate: e.DailyRate,
		Notes:     e.Notes,
		Total:     e.Total,
		Pago:      e.Pago,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toEstadiaEntity(m *models.EstadiaModel) *estadia.Estadia {
	return &estadia.Estadia{
		ID:        m.ID,
		PetID:     m.PetID,
		TutorID:   m.TutorID,
		EntryDate: m.EntryDate,
		EntryTime: m.EntryTime,
		ExitDate:  m.ExitDate,
		ExitTime:  m.ExitTime,
		DailyRate: m.DailyRate,
		Notes:     m.Notes,
		Total:     m.Total,
		Pago:      m.Pago,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toPagamentoEntity(m *models.PagamentoModel) *estadia.Pagamento {
	return &estadia.Pagamento{
		ID:        m.ID,
		EstadiaID: m.EstadiaID,
		Amount:    m.Amount,
		Paid:      m.Paid,
		Method:    m.Method,
		PaidDate:  m.PaidDate,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
