package service

import (
	"context"

	"gestion-api/core/errors"
	"gestion-api/core/logger"
	"gestion-api/modules/gcalsync/calendar"
	gcalsyncentity "gestion-api/modules/gcalsync/entity"
	gcalsyncrepository "gestion-api/modules/gcalsync/repository"
	gcalsyncservice "gestion-api/modules/gcalsync/service"
	"gestion-api/modules/indisponibilite/dto"
	"gestion-api/modules/indisponibilite/entity"
	"gestion-api/modules/indisponibilite/repository"

	"github.com/google/uuid"
)

// IndisponibiliteService handles unavailability periods: the local row plus
// a red full-day blocking event on every professional calendar.
type IndisponibiliteService struct {
	repo       repository.IndisponibiliteRepositoryInterface
	configRepo gcalsyncrepository.ConfigRepositoryInterface
	factory    calendar.Factory
}

// IndisponibiliteServiceInterface defines the service contract
type IndisponibiliteServiceInterface interface {
	Create(ctx context.Context, req *dto.IndisponibiliteRequest) (*dto.IndisponibiliteResponse, *errors.AppError)
	List(ctx context.Context) ([]entity.Indisponibilite, *errors.AppError)
	Delete(ctx context.Context, id uuid.UUID) *errors.AppError
}

// NewIndisponibiliteService creates a new indisponibilite service
func NewIndisponibiliteService(
	repo repository.IndisponibiliteRepositoryInterface,
	configRepo gcalsyncrepository.ConfigRepositoryInterface,
	factory calendar.Factory,
) IndisponibiliteServiceInterface {
	return &IndisponibiliteService{repo: repo, configRepo: configRepo, factory: factory}
}

// Create stores the unavailability then blocks the date range on every
// professional calendar. An unreachable calendar service is not an error:
// the period is saved locally and the response reports zero calendars.
func (s *IndisponibiliteService) Create(ctx context.Context, req *dto.IndisponibiliteRequest) (*dto.IndisponibiliteResponse, *errors.AppError) {
	if req.Motif == "" {
		return nil, errors.NewAppError(errors.ErrValidation, "Le motif est obligatoire", nil)
	}
	if req.DateFin.Before(req.DateDebut) {
		return nil, errors.NewAppError(errors.ErrValidation, "Date de fin antérieure à la date de début", nil)
	}

	indispo := &entity.Indisponibilite{
		DateDebut: req.DateDebut,
		DateFin:   req.DateFin,
		Motif:     req.Motif,
		Note:      req.Note,
	}

	created, err := s.repo.Create(ctx, indispo)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Création de l'indisponibilité impossible", err)
	}

	events := s.createCalendarEvents(ctx, created)
	if len(events) > 0 {
		created.SetEventIDs(events)
		if err := s.repo.UpdateEvents(ctx, created.ID, created.GcalEvents); err != nil {
			logger.Error("IndisponibiliteService:Create persist events", err)
		}
	}

	return &dto.IndisponibiliteResponse{
		Indisponibilite: *created,
		NbCalendriers:   len(events),
	}, nil
}

func (s *IndisponibiliteService) List(ctx context.Context) ([]entity.Indisponibilite, *errors.AppError) {
	indispos, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Lecture des indisponibilités impossible", err)
	}
	return indispos, nil
}

// Delete removes the calendar events best-effort, then the local row.
func (s *IndisponibiliteService) Delete(ctx context.Context, id uuid.UUID) *errors.AppError {
	indispo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Lecture de l'indisponibilité impossible", err)
	}
	if indispo == nil {
		return errors.NewAppError(errors.ErrNotFound, "Indisponibilité introuvable", nil)
	}

	if events := indispo.EventIDs(); len(events) > 0 {
		if cli, err := s.factory(ctx); err == nil {
			for calendarID, eventID := range events {
				if err := cli.DeleteEvent(ctx, calendarID, eventID); err != nil {
					logger.Warn("IndisponibiliteService:Delete event delete failed",
						"calendar_id", calendarID,
						"event_id", eventID,
						"error", err,
					)
				}
			}
		} else {
			logger.Warn("IndisponibiliteService:Delete calendar unavailable", "error", err)
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Suppression de l'indisponibilité impossible", err)
	}
	return nil
}

// createCalendarEvents posts the blocking event on each professional
// calendar and returns the calendar-id to event-id map of successes.
func (s *IndisponibiliteService) createCalendarEvents(ctx context.Context, indispo *entity.Indisponibilite) map[string]string {
	events := map[string]string{}

	cli, err := s.factory(ctx)
	if err != nil {
		logger.Warn("IndisponibiliteService:createCalendarEvents calendar unavailable", "error", err)
		return events
	}

	all, err := cli.ListCalendars(ctx)
	if err != nil {
		logger.Warn("IndisponibiliteService:createCalendarEvents list failed", "error", err)
		return events
	}

	cfg, err := s.configRepo.GetSyncConfig(ctx)
	if err != nil {
		cfg = gcalsyncentity.DefaultSyncConfig()
	}

	description := "Indisponibilité : " + indispo.Motif
	if indispo.Note != nil && *indispo.Note != "" {
		description = *indispo.Note
	}

	spec := calendar.EventSpec{
		Title:        "🚫 INDISPONIBLE - " + indispo.Motif,
		Description:  description,
		Window:       calendar.DateOnlyWindow(indispo.DateDebut, indispo.DateFin),
		Transparency: "opaque",
		// Red, so the blocked period stands out.
		ColorID:   "11",
		Reminders: gcalsyncservice.EveningReminder(indispo.DateDebut, true),
	}

	for _, cal := range gcalsyncservice.FilterCalendars(all, cfg.CalendriersPersonnels) {
		eventID, err := cli.CreateEvent(ctx, cal.ID, &spec)
		if err != nil {
			logger.Warn("IndisponibiliteService:createCalendarEvents create failed",
				"calendar_id", cal.ID,
				"error", err,
			)
			continue
		}
		events[cal.ID] = eventID
	}

	return events
}
