package repository

import (
	"context"
	"database/sql"

	"gestion-api/core/database"
	"gestion-api/core/logger"
	"gestion-api/modules/document/entity"

	"github.com/google/uuid"
)

// DocumentRepository handles documents database operations
type DocumentRepository struct {
	DB database.IDatabase
}

// NewDocumentRepository creates a new repository instance
func NewDocumentRepository(db database.IDatabase) *DocumentRepository {
	return &DocumentRepository{DB: db}
}

// DocumentRepositoryInterface defines the repository contract
type DocumentRepositoryInterface interface {
	Create(ctx context.Context, document *entity.Document) (*entity.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	ListByPrestationID(ctx context.Context, prestationID uuid.UUID) ([]entity.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

const documentColumns = `id, prestation_id, nom_fichier, nom_original, type_document, taille_octets, notes, date_upload`

func (r *DocumentRepository) Create(ctx context.Context, document *entity.Document) (*entity.Document, error) {
	query := `
		INSERT INTO documents (prestation_id, nom_fichier, nom_original, type_document, taille_octets, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + documentColumns

	var created entity.Document
	err := r.DB.GetContext(ctx, &created, query,
		document.PrestationID, document.NomFichier, document.NomOriginal,
		document.TypeDocument, document.TailleOctets, document.Notes)
	if err != nil {
		logger.Error("DocumentRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`

	var document entity.Document
	err := r.DB.GetContext(ctx, &document, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("DocumentRepository:GetByID", err)
		return nil, err
	}

	return &document, nil
}

func (r *DocumentRepository) ListByPrestationID(ctx context.Context, prestationID uuid.UUID) ([]entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE prestation_id = $1 ORDER BY date_upload DESC`

	documents := []entity.Document{}
	if err := r.DB.SelectContext(ctx, &documents, query, prestationID); err != nil {
		logger.Error("DocumentRepository:ListByPrestationID", err)
		return nil, err
	}
	return documents, nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.DB.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id); err != nil {
		logger.Error("DocumentRepository:Delete", err)
		return err
	}
	return nil
}
