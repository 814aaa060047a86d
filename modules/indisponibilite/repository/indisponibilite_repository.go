package repository

import (
	"context"
	"database/sql"

	"gestion-api/core/database"
	"gestion-api/core/logger"
	"gestion-api/modules/indisponibilite/entity"

	"github.com/google/uuid"
)

// IndisponibiliteRepository handles indisponibilites database operations
type IndisponibiliteRepository struct {
	DB database.IDatabase
}

// NewIndisponibiliteRepository creates a new repository instance
func NewIndisponibiliteRepository(db database.IDatabase) *IndisponibiliteRepository {
	return &IndisponibiliteRepository{DB: db}
}

// IndisponibiliteRepositoryInterface defines the repository contract
type IndisponibiliteRepositoryInterface interface {
	Create(ctx context.Context, indispo *entity.Indisponibilite) (*entity.Indisponibilite, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Indisponibilite, error)
	List(ctx context.Context) ([]entity.Indisponibilite, error)
	UpdateEvents(ctx context.Context, id uuid.UUID, gcalEvents *string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

const indispoColumns = `id, date_debut, date_fin, motif, note, gcal_events, date_creation`

func (r *IndisponibiliteRepository) Create(ctx context.Context, indispo *entity.Indisponibilite) (*entity.Indisponibilite, error) {
	query := `
		INSERT INTO indisponibilites (date_debut, date_fin, motif, note, gcal_events)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + indispoColumns

	var created entity.Indisponibilite
	err := r.DB.GetContext(ctx, &created, query,
		indispo.DateDebut, indispo.DateFin, indispo.Motif, indispo.Note, indispo.GcalEvents)
	if err != nil {
		logger.Error("IndisponibiliteRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

func (r *IndisponibiliteRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Indisponibilite, error) {
	query := `SELECT ` + indispoColumns + ` FROM indisponibilites WHERE id = $1`

	var indispo entity.Indisponibilite
	err := r.DB.GetContext(ctx, &indispo, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("IndisponibiliteRepository:GetByID", err)
		return nil, err
	}

	return &indispo, nil
}

func (r *IndisponibiliteRepository) List(ctx context.Context) ([]entity.Indisponibilite, error) {
	query := `SELECT ` + indispoColumns + ` FROM indisponibilites ORDER BY date_debut DESC`

	indispos := []entity.Indisponibilite{}
	if err := r.DB.SelectContext(ctx, &indispos, query); err != nil {
		logger.Error("IndisponibiliteRepository:List", err)
		return nil, err
	}
	return indispos, nil
}

func (r *IndisponibiliteRepository) UpdateEvents(ctx context.Context, id uuid.UUID, gcalEvents *string) error {
	query := `UPDATE indisponibilites SET gcal_events = $2 WHERE id = $1`
	if err := r.DB.ExecContext(ctx, query, id, gcalEvents); err != nil {
		logger.Error("IndisponibiliteRepository:UpdateEvents", err)
		return err
	}
	return nil
}

func (r *IndisponibiliteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.DB.ExecContext(ctx, `DELETE FROM indisponibilites WHERE id = $1`, id); err != nil {
		logger.Error("IndisponibiliteRepository:Delete", err)
		return err
	}
	return nil
}
