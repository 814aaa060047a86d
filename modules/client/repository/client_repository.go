package repository

import (
	"context"
	"database/sql"

	"gestion-api/core/database"
	"gestion-api/core/logger"
	"gestion-api/modules/client/entity"

	"github.com/google/uuid"
)

// ClientRepository handles client database operations
type ClientRepository struct {
	DB database.IDatabase
}

// NewClientRepository creates a new repository instance
func NewClientRepository(db database.IDatabase) *ClientRepository {
	return &ClientRepository{DB: db}
}

// ClientRepositoryInterface defines the repository contract
type ClientRepositoryInterface interface {
	Create(ctx context.Context, client *entity.Client) (*entity.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	List(ctx context.Context, statut string) ([]entity.Client, error)
	Search(ctx context.Context, q string) ([]entity.Client, error)
	Update(ctx context.Context, client *entity.Client) (*entity.Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

const clientColumns = `id, nom, prenom, entreprise, email, telephone, adresse, code_postal, ville,
	notes, statut_client, date_conversion, delai_paiement_jours, calendrier_google, actif,
	created_at, updated_at`

func (r *ClientRepository) Create(ctx context.Context, client *entity.Client) (*entity.Client, error) {
	query := `
		INSERT INTO clients (nom, prenom, entreprise, email, telephone, adresse, code_postal, ville,
			notes, statut_client, delai_paiement_jours, calendrier_google)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + clientColumns

	var created entity.Client
	err := r.DB.GetContext(ctx, &created, query,
		client.Nom, client.Prenom, client.Entreprise, client.Email, client.Telephone,
		client.Adresse, client.CodePostal, client.Ville, client.Notes,
		client.StatutClient, client.DelaiPaiementJours, client.CalendrierGoogle)
	if err != nil {
		logger.Error("ClientRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	var client entity.Client
	err := r.DB.GetContext(ctx, &client, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ClientRepository:GetByID", err)
		return nil, err
	}

	return &client, nil
}

// List returns active clients, optionally restricted to a statut_client value.
func (r *ClientRepository) List(ctx context.Context, statut string) ([]entity.Client, error) {
	clients := []entity.Client{}

	if statut != "" {
		query := `SELECT ` + clientColumns + ` FROM clients WHERE actif = TRUE AND statut_client = $1 ORDER BY nom, prenom`
		if err := r.DB.SelectContext(ctx, &clients, query, statut); err != nil {
			logger.Error("ClientRepository:List", err)
			return nil, err
		}
		return clients, nil
	}

	query := `SELECT ` + clientColumns + ` FROM clients WHERE actif = TRUE ORDER BY nom, prenom`
	if err := r.DB.SelectContext(ctx, &clients, query); err != nil {
		logger.Error("ClientRepository:List", err)
		return nil, err
	}
	return clients, nil
}

func (r *ClientRepository) Search(ctx context.Context, q string) ([]entity.Client, error) {
	clients := []entity.Client{}
	query := `SELECT ` + clientColumns + ` FROM clients
		WHERE actif = TRUE
		  AND (nom ILIKE $1 OR prenom ILIKE $1 OR entreprise ILIKE $1 OR ville ILIKE $1)
		ORDER BY nom, prenom`

	if err := r.DB.SelectContext(ctx, &clients, query, "%"+q+"%"); err != nil {
		logger.Error("ClientRepository:Search", err)
		return nil, err
	}
	return clients, nil
}

func (r *ClientRepository) Update(ctx context.Context, client *entity.Client) (*entity.Client, error) {
	query := `
		UPDATE clients SET
			nom = $2, prenom = $3, entreprise = $4, email = $5, telephone = $6,
			adresse = $7, code_postal = $8, ville = $9, notes = $10,
			statut_client = $11, date_conversion = $12, delai_paiement_jours = $13,
			calendrier_google = $14, actif = $15, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + clientColumns

	var updated entity.Client
	err := r.DB.GetContext(ctx, &updated, query,
		client.ID, client.Nom, client.Prenom, client.Entreprise, client.Email, client.Telephone,
		client.Adresse, client.CodePostal, client.Ville, client.Notes,
		client.StatutClient, client.DateConversion, client.DelaiPaiementJours,
		client.CalendrierGoogle, client.Actif)
	if err != nil {
		logger.Error("ClientRepository:Update", err)
		return nil, err
	}

	return &updated, nil
}

func (r *ClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.DB.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id); err != nil {
		logger.Error("ClientRepository:Delete", err)
		return err
	}
	return nil
}
