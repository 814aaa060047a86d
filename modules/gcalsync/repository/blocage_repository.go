package repository

import (
	"context"

	"gestion-api/core/database"
	"gestion-api/core/logger"
	"gestion-api/modules/gcalsync/entity"

	"github.com/google/uuid"
)

// BlocageRepository handles gcal_blocages database operations
type BlocageRepository struct {
	DB database.IDatabase
}

// NewBlocageRepository creates a new repository instance
func NewBlocageRepository(db database.IDatabase) *BlocageRepository {
	return &BlocageRepository{DB: db}
}

// BlocageRepositoryInterface defines the repository contract
type BlocageRepositoryInterface interface {
	Create(ctx context.Context, blocage *entity.Blocage) (*entity.Blocage, error)
	GetByPrestationID(ctx context.Context, prestationID uuid.UUID) ([]entity.Blocage, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByPrestationID(ctx context.Context, prestationID uuid.UUID) error
}

func (r *BlocageRepository) Create(ctx context.Context, blocage *entity.Blocage) (*entity.Blocage, error) {
	query := `
		INSERT INTO gcal_blocages (prestation_id, calendar_id, event_id, calendar_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, prestation_id, calendar_id, event_id, calendar_name, date_creation
	`

	var created entity.Blocage
	err := r.DB.GetContext(ctx, &created, query,
		blocage.PrestationID, blocage.CalendarID, blocage.EventID, blocage.CalendarName)
	if err != nil {
		logger.Error("BlocageRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

func (r *BlocageRepository) GetByPrestationID(ctx context.Context, prestationID uuid.UUID) ([]entity.Blocage, error) {
	query := `
		SELECT id, prestation_id, calendar_id, event_id, calendar_name, date_creation
		FROM gcal_blocages WHERE prestation_id = $1
		ORDER BY date_creation
	`

	blocages := []entity.Blocage{}
	if err := r.DB.SelectContext(ctx, &blocages, query, prestationID); err != nil {
		logger.Error("BlocageRepository:GetByPrestationID", err)
		return nil, err
	}

	return blocages, nil
}

func (r *BlocageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.DB.ExecContext(ctx, `DELETE FROM gcal_blocages WHERE id = $1`, id); err != nil {
		logger.Error("BlocageRepository:Delete", err)
		return err
	}
	return nil
}

func (r *BlocageRepository) DeleteByPrestationID(ctx context.Context, prestationID uuid.UUID) error {
	if err := r.DB.ExecContext(ctx, `DELETE FROM gcal_blocages WHERE prestation_id = $1`, prestationID); err != nil {
		logger.Error("BlocageRepository:DeleteByPrestationID", err)
		return err
	}
	return nil
}
