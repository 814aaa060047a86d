package service

import (
	"context"

	"gestion-api/core/logger"
	cliententity "gestion-api/modules/client/entity"
	"gestion-api/modules/gcalsync/calendar"
	"gestion-api/modules/gcalsync/entity"
	"gestion-api/modules/gcalsync/repository"
	prestationentity "gestion-api/modules/prestation/entity"

	"github.com/google/uuid"
)

// BlocageService mirrors "busy" placeholder events onto every professional
// calendar except the one carrying the prestation's real events.
type BlocageService struct {
	repo     repository.BlocageRepositoryInterface
	timezone string
}

// BlocageServiceInterface defines the service contract
type BlocageServiceInterface interface {
	Reconcile(ctx context.Context, cli calendar.Client, prestation *prestationentity.Prestation, client *cliententity.Client, primaryCalendarID string, otherCalendars []calendar.CalendarInfo) int
	Clear(ctx context.Context, cli calendar.Client, prestationID uuid.UUID) int
}

// NewBlocageService creates a new blocage service
func NewBlocageService(repo repository.BlocageRepositoryInterface, timezone string) BlocageServiceInterface {
	return &BlocageService{repo: repo, timezone: timezone}
}

// Reconcile replaces all blocking placeholders for the prestation: existing
// ones are removed first, then one placeholder is created per session on
// every calendar in otherCalendars. Individual creation failures are logged
// and skipped, never aborting the remaining pairs. Returns the number of
// placeholders created.
func (s *BlocageService) Reconcile(ctx context.Context, cli calendar.Client, prestation *prestationentity.Prestation, client *cliententity.Client, primaryCalendarID string, otherCalendars []calendar.CalendarInfo) int {
	s.Clear(ctx, cli, prestation.ID)

	targets := make([]calendar.CalendarInfo, 0, len(otherCalendars))
	for _, cal := range otherCalendars {
		if cal.ID != primaryCalendarID {
			targets = append(targets, cal)
		}
	}
	if len(targets) == 0 || len(prestation.Sessions) == 0 {
		return 0
	}

	clientNom := "Client"
	if client != nil {
		clientNom = client.Nom
	}

	created := 0
	for i := range prestation.Sessions {
		spec := BlockingSpec(&prestation.Sessions[i], clientNom, s.timezone)

		for _, cal := range targets {
			eventID, err := cli.CreateEvent(ctx, cal.ID, &spec)
			if err != nil {
				logger.Warn("BlocageService:Reconcile create failed",
					"prestation_id", prestation.ID,
					"calendar_id", cal.ID,
					"error", err,
				)
				continue
			}

			name := cal.Summary
			if _, err := s.repo.Create(ctx, &entity.Blocage{
				PrestationID: prestation.ID,
				CalendarID:   cal.ID,
				EventID:      eventID,
				CalendarName: &name,
			}); err != nil {
				logger.Error("BlocageService:Reconcile persist failed", err)
				continue
			}
			created++
		}
	}

	logger.Info("BlocageService:Reconcile",
		"prestation_id", prestation.ID,
		"calendars", len(targets),
		"sessions", len(prestation.Sessions),
		"created", created,
	)
	return created
}

// Clear deletes every stored blocage for the prestation. External deletion
// is best-effort per event; the local row is removed regardless. Returns the
// number of events deleted externally.
func (s *BlocageService) Clear(ctx context.Context, cli calendar.Client, prestationID uuid.UUID) int {
	blocages, err := s.repo.GetByPrestationID(ctx, prestationID)
	if err != nil {
		logger.Error("BlocageService:Clear list failed", err)
		return 0
	}

	deleted := 0
	for _, blocage := range blocages {
		if cli != nil {
			if err := cli.DeleteEvent(ctx, blocage.CalendarID, blocage.EventID); err != nil {
				logger.Warn("BlocageService:Clear external delete failed",
					"calendar_id", blocage.CalendarID,
					"event_id", blocage.EventID,
					"error", err,
				)
			} else {
				deleted++
			}
		}
		if err := s.repo.Delete(ctx, blocage.ID); err != nil {
			logger.Error("BlocageService:Clear local delete failed", err)
		}
	}
	return deleted
}
