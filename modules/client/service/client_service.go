package service

import (
	"context"
	"time"

	"gestion-api/core/constants"
	"gestion-api/core/errors"
	"gestion-api/core/logger"
	"gestion-api/modules/client/dto"
	"gestion-api/modules/client/entity"
	"gestion-api/modules/client/repository"

	"github.com/google/uuid"
)

// ClientService handles client business logic
type ClientService struct {
	repo repository.ClientRepositoryInterface
}

// ClientServiceInterface defines the service contract
type ClientServiceInterface interface {
	Create(ctx context.Context, req *dto.ClientRequest) (*entity.Client, *errors.AppError)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, *errors.AppError)
	List(ctx context.Context, statut string) ([]entity.Client, *errors.AppError)
	Search(ctx context.Context, q string) ([]entity.Client, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.ClientRequest) (*entity.Client, *errors.AppError)
	ConvertProspect(ctx context.Context, id uuid.UUID) (*entity.Client, *errors.AppError)
	Delete(ctx context.Context, id uuid.UUID) *errors.AppError
}

// NewClientService creates a new client service
func NewClientService(repo repository.ClientRepositoryInterface) ClientServiceInterface {
	return &ClientService{repo: repo}
}

func (s *ClientService) Create(ctx context.Context, req *dto.ClientRequest) (*entity.Client, *errors.AppError) {
	if req.Nom == "" {
		return nil, errors.NewAppError(errors.ErrValidation, "Le nom est obligatoire", nil)
	}

	statut := req.StatutClient
	if statut == "" {
		statut = constants.StatutClient
	}
	delai := 30
	if req.DelaiPaiementJours != nil {
		delai = *req.DelaiPaiementJours
	}

	client := &entity.Client{
		Nom:                req.Nom,
		Prenom:             req.Prenom,
		Entreprise:         req.Entreprise,
		Email:              req.Email,
		Telephone:          req.Telephone,
		Adresse:            req.Adresse,
		CodePostal:         req.CodePostal,
		Ville:              req.Ville,
		Notes:              req.Notes,
		StatutClient:       statut,
		DelaiPaiementJours: delai,
		CalendrierGoogle:   req.CalendrierGoogle,
	}

	created, err := s.repo.Create(ctx, client)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Création du client impossible", err)
	}
	return created, nil
}

func (s *ClientService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, *errors.AppError) {
	client, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Lecture du client impossible", err)
	}
	if client == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Client introuvable", nil)
	}
	return client, nil
}

func (s *ClientService) List(ctx context.Context, statut string) ([]entity.Client, *errors.AppError) {
	clients, err := s.repo.List(ctx, statut)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Lecture des clients impossible", err)
	}
	return clients, nil
}

// Search matches the query against name, first name, company and city.
func (s *ClientService) Search(ctx context.Context, q string) ([]entity.Client, *errors.AppError) {
	if q == "" {
		return s.List(ctx, "")
	}
	clients, err := s.repo.Search(ctx, q)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Recherche des clients impossible", err)
	}
	return clients, nil
}

func (s *ClientService) Update(ctx context.Context, id uuid.UUID, req *dto.ClientRequest) (*entity.Client, *errors.AppError) {
	existing, appErr := s.GetByID(ctx, id)
	if appErr != nil {
		return nil, appErr
	}
	if req.Nom == "" {
		return nil, errors.NewAppError(errors.ErrValidation, "Le nom est obligatoire", nil)
	}

	existing.Nom = req.Nom
	existing.Prenom = req.Prenom
	existing.Entreprise = req.Entreprise
	existing.Email = req.Email
	existing.Telephone = req.Telephone
	existing.Adresse = req.Adresse
	existing.CodePostal = req.CodePostal
	existing.Ville = req.Ville
	existing.Notes = req.Notes
	existing.CalendrierGoogle = req.CalendrierGoogle
	if req.StatutClient != "" {
		existing.StatutClient = req.StatutClient
	}
	if req.DelaiPaiementJours != nil {
		existing.DelaiPaiementJours = *req.DelaiPaiementJours
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Mise à jour du client impossible", err)
	}
	return updated, nil
}

// ConvertProspect turns a prospect into a client, stamping the conversion
// date. Converting an existing client is a no-op.
func (s *ClientService) ConvertProspect(ctx context.Context, id uuid.UUID) (*entity.Client, *errors.AppError) {
	existing, appErr := s.GetByID(ctx, id)
	if appErr != nil {
		return nil, appErr
	}
	if existing.StatutClient == constants.StatutClient {
		return existing, nil
	}

	now := time.Now()
	existing.StatutClient = constants.StatutClient
	existing.DateConversion = &now

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Conversion du prospect impossible", err)
	}
	logger.Info("ClientService:ConvertProspect", "client_id", id)
	return updated, nil
}

func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) *errors.AppError {
	if _, appErr := s.GetByID(ctx, id); appErr != nil {
		return appErr
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Suppression du client impossible", err)
	}
	return nil
}
