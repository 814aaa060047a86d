package repository

import (
	"context"

	"gestion-api/core/database"
	"gestion-api/core/logger"
	"gestion-api/modules/backup/entity"
)

// SauvegardeRepository handles sauvegardes database operations
type SauvegardeRepository struct {
	DB database.IDatabase
}

// NewSauvegardeRepository creates a new repository instance
func NewSauvegardeRepository(db database.IDatabase) *SauvegardeRepository {
	return &SauvegardeRepository{DB: db}
}

// SauvegardeRepositoryInterface defines the repository contract
type SauvegardeRepositoryInterface interface {
	Create(ctx context.Context, sauvegarde *entity.Sauvegarde) (*entity.Sauvegarde, error)
	List(ctx context.Context, limit int) ([]entity.Sauvegarde, error)
}

const sauvegardeColumns = `id, nom_fichier, taille_octets, chemin_s3, statut, notes, date_sauvegarde`

func (r *SauvegardeRepository) Create(ctx context.Context, sauvegarde *entity.Sauvegarde) (*entity.Sauvegarde, error) {
	query := `
		INSERT INTO sauvegardes (nom_fichier, taille_octets, chemin_s3, statut, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + sauvegardeColumns

	var created entity.Sauvegarde
	err := r.DB.GetContext(ctx, &created, query,
		sauvegarde.NomFichier, sauvegarde.TailleOctets, sauvegarde.CheminS3,
		sauvegarde.Statut, sauvegarde.Notes)
	if err != nil {
		logger.Error("SauvegardeRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

func (r *SauvegardeRepository) List(ctx context.Context, limit int) ([]entity.Sauvegarde, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT ` + sauvegardeColumns + ` FROM sauvegardes ORDER BY date_sauvegarde DESC LIMIT $1`

	sauvegardes := []entity.Sauvegarde{}
	if err := r.DB.SelectContext(ctx, &sauvegardes, query, limit); err != nil {
		logger.Error("SauvegardeRepository:List", err)
		return nil, err
	}
	return sauvegardes, nil
}
