package service

import (
	"context"

	"gestion-api/core/constants"
	"gestion-api/core/errors"
	"gestion-api/core/logger"
	gcalsyncservice "gestion-api/modules/gcalsync/service"
	"gestion-api/modules/prestation/dto"
	"gestion-api/modules/prestation/entity"
	"gestion-api/modules/prestation/repository"

	"github.com/google/uuid"
)

// Syncer is the calendar synchronization capability the prestation lifecycle
// depends on.
type Syncer interface {
	Sync(ctx context.Context, prestationID uuid.UUID) *gcalsyncservice.SyncResult
	Unsync(ctx context.Context, prestationID uuid.UUID) *gcalsyncservice.SyncResult
}

// PrestationService handles prestation business logic
type PrestationService struct {
	repo   repository.PrestationRepositoryInterface
	syncer Syncer
}

// PrestationServiceInterface defines the service contract
type PrestationServiceInterface interface {
	Create(ctx context.Context, req *dto.CreatePrestationRequest) (*dto.PrestationResponse, *errors.AppError)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Prestation, *errors.AppError)
	List(ctx context.Context, statut string) ([]entity.Prestation, *errors.AppError)
	ListByClientID(ctx context.Context, clientID uuid.UUID) ([]entity.Prestation, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePrestationRequest) (*dto.PrestationResponse, *errors.AppError)
	UpdateStatut(ctx context.Context, id uuid.UUID, statut string) (*dto.PrestationResponse, *errors.AppError)
	Delete(ctx context.Context, id uuid.UUID) *errors.AppError
}

// NewPrestationService creates a new prestation service
func NewPrestationService(repo repository.PrestationRepositoryInterface, syncer Syncer) PrestationServiceInterface {
	return &PrestationService{repo: repo, syncer: syncer}
}

// Create persists the prestation then pushes it to Google Calendar. The
// prestation is saved even when the calendar sync fails: the failure comes
// back as a warning on the response.
func (s *PrestationService) Create(ctx context.Context, req *dto.CreatePrestationRequest) (*dto.PrestationResponse, *errors.AppError) {
	prestation, sessions, appErr := buildPrestation(req, constants.StatutPlanifiee)
	if appErr != nil {
		return nil, appErr
	}

	created, err := s.repo.Create(ctx, prestation, sessions)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Création de la prestation impossible", err)
	}

	response := &dto.PrestationResponse{Prestation: *created}
	s.syncAfterWrite(ctx, created.ID, response)
	return response, nil
}

func (s *PrestationService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Prestation, *errors.AppError) {
	prestation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Lecture de la prestation impossible", err)
	}
	if prestation == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Prestation introuvable", nil)
	}
	return prestation, nil
}

func (s *PrestationService) List(ctx context.Context, statut string) ([]entity.Prestation, *errors.AppError) {
	prestations, err := s.repo.List(ctx, statut)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Lecture des prestations impossible", err)
	}
	return prestations, nil
}

func (s *PrestationService) ListByClientID(ctx context.Context, clientID uuid.UUID) ([]entity.Prestation, *errors.AppError) {
	prestations, err := s.repo.ListByClientID(ctx, clientID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Lecture des prestations impossible", err)
	}
	return prestations, nil
}

// Update removes the calendar events of the current sessions, rewrites the
// prestation and its sessions, then syncs the new sessions. A transition to
// the cancelled statut stops after the removal.
func (s *PrestationService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePrestationRequest) (*dto.PrestationResponse, *errors.AppError) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Lecture de la prestation impossible", err)
	}
	if existing == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Prestation introuvable", nil)
	}

	statut := req.Statut
	if statut == "" {
		statut = existing.Statut
	}

	prestation, sessions, appErr := buildPrestation(&req.CreatePrestationRequest, statut)
	if appErr != nil {
		return nil, appErr
	}
	prestation.ID = id

	// The repository replaces the session rows wholesale, which discards
	// the event ids tracked by the old rows. Their calendar events must be
	// removed while the ids are still reachable, otherwise the re-sync
	// below would create duplicates next to the orphaned originals.
	var unsyncWarning *string
	if result := s.syncer.Unsync(ctx, id); !result.Success {
		logger.Warn("PrestationService:Update unsync failed", "prestation_id", id, "message", result.Message)
		unsyncWarning = &result.Message
	}

	updated, err := s.repo.Update(ctx, prestation, sessions)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Mise à jour de la prestation impossible", err)
	}

	response := &dto.PrestationResponse{Prestation: *updated}
	response.SyncWarning = unsyncWarning

	if statut == constants.StatutAnnulee {
		return response, nil
	}

	s.syncAfterWrite(ctx, id, response)
	return response, nil
}

// UpdateStatut changes only the statut, leaving the sessions and their sync
// state untouched. The cancelled statut removes the calendar events.
func (s *PrestationService) UpdateStatut(ctx context.Context, id uuid.UUID, statut string) (*dto.PrestationResponse, *errors.AppError) {
	switch statut {
	case constants.StatutPlanifiee, constants.StatutEnCours, constants.StatutTerminee, constants.StatutAnnulee:
	default:
		return nil, errors.NewAppError(errors.ErrValidation, "Statut invalide", nil)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Lecture de la prestation impossible", err)
	}
	if existing == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Prestation introuvable", nil)
	}

	if err := s.repo.UpdateStatut(ctx, id, statut); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Mise à jour du statut impossible", err)
	}
	existing.Statut = statut

	response := &dto.PrestationResponse{Prestation: *existing}
	if statut == constants.StatutAnnulee {
		if result := s.syncer.Unsync(ctx, id); !result.Success {
			logger.Warn("PrestationService:UpdateStatut unsync failed", "prestation_id", id, "message", result.Message)
			response.SyncWarning = &result.Message
		}
	}
	return response, nil
}

// Delete removes the calendar events first, then the local rows. A failed
// cleanup does not block deletion.
func (s *PrestationService) Delete(ctx context.Context, id uuid.UUID) *errors.AppError {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Lecture de la prestation impossible", err)
	}
	if existing == nil {
		return errors.NewAppError(errors.ErrNotFound, "Prestation introuvable", nil)
	}

	if result := s.syncer.Unsync(ctx, id); !result.Success {
		logger.Warn("PrestationService:Delete unsync failed", "prestation_id", id, "message", result.Message)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Suppression de la prestation impossible", err)
	}
	return nil
}

func (s *PrestationService) syncAfterWrite(ctx context.Context, id uuid.UUID, response *dto.PrestationResponse) {
	result := s.syncer.Sync(ctx, id)
	if !result.Success {
		logger.Warn("PrestationService:syncAfterWrite", "prestation_id", id, "message", result.Message)
		response.SyncWarning = &result.Message
		return
	}

	// Reflect the sync bookkeeping written by the orchestrator.
	if refreshed, err := s.repo.GetByID(ctx, id); err == nil && refreshed != nil {
		response.Prestation = *refreshed
	}
}

func buildPrestation(req *dto.CreatePrestationRequest, statut string) (*entity.Prestation, []entity.SessionPrestation, *errors.AppError) {
	if req.Titre == "" {
		return nil, nil, errors.NewAppError(errors.ErrValidation, "Le titre est obligatoire", nil)
	}
	if req.ClientID == uuid.Nil {
		return nil, nil, errors.NewAppError(errors.ErrValidation, "Le client est obligatoire", nil)
	}

	sessions := make([]entity.SessionPrestation, 0, len(req.Sessions))
	for i, sr := range req.Sessions {
		if sr.DateFin != nil && sr.DateFin.Before(sr.DateDebut) {
			return nil, nil, errors.NewAppError(errors.ErrValidation, "Date de fin antérieure à la date de début", nil)
		}
		sessions = append(sessions, entity.SessionPrestation{
			DateDebut:       sr.DateDebut,
			DateFin:         sr.DateFin,
			DureeHeures:     sr.DureeHeures,
			JourneeComplete: sr.JourneeComplete,
			Ordre:           i,
		})
	}

	prestation := &entity.Prestation{
		ClientID:             req.ClientID,
		Titre:                req.Titre,
		Description:          req.Description,
		TypePrestation:       req.TypePrestation,
		Demandeur:            req.Demandeur,
		AdressePrestation:    req.AdressePrestation,
		CodePostalPrestation: req.CodePostalPrestation,
		VillePrestation:      req.VillePrestation,
		Statut:               statut,
		JourneeEntiere:       req.JourneeEntiere,
		CalendrierID:         req.CalendrierID,
	}

	// Legacy schedule when no sessions were submitted.
	if len(sessions) == 0 {
		if req.DateDebut == nil {
			return nil, nil, errors.NewAppError(errors.ErrValidation, "Une date de début ou au moins une session est obligatoire", nil)
		}
		if req.DateFin != nil && req.DateFin.Before(*req.DateDebut) {
			return nil, nil, errors.NewAppError(errors.ErrValidation, "Date de fin antérieure à la date de début", nil)
		}
		prestation.DateDebut = *req.DateDebut
		prestation.DateFin = req.DateFin
		prestation.DureeHeures = req.DureeHeures
	}

	return prestation, sessions, nil
}
