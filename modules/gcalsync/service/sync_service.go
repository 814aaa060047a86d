package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gestion-api/core/errors"
	"gestion-api/core/logger"
	cliententity "gestion-api/modules/client/entity"
	clientrepository "gestion-api/modules/client/repository"
	"gestion-api/modules/gcalsync/calendar"
	"gestion-api/modules/gcalsync/entity"
	"gestion-api/modules/gcalsync/repository"
	prestationentity "gestion-api/modules/prestation/entity"
	prestationrepository "gestion-api/modules/prestation/repository"

	"github.com/google/uuid"
)

// SyncResult is the outcome of a sync or unsync run. The orchestrator never
// lets calendar errors escape as Go errors past this boundary: callers
// always get a result with a success flag and a reason code on failure.
type SyncResult struct {
	Success        bool             `json:"success"`
	Message        string           `json:"message"`
	PrimaryEventID *string          `json:"primary_event_id,omitempty"`
	EventsCreated  int              `json:"events_created"`
	BlocagesCount  int              `json:"blocages_count"`
	Rule           SelectionRule    `json:"calendrier_rule,omitempty"`
	FailureCode    errors.ErrorCode `json:"failure_code,omitempty"`
}

func failureResult(code errors.ErrorCode, message string) *SyncResult {
	return &SyncResult{Success: false, Message: message, FailureCode: code}
}

// SyncService orchestrates prestation-to-Google-Calendar synchronization
type SyncService struct {
	prestationRepo prestationrepository.PrestationRepositoryInterface
	clientRepo     clientrepository.ClientRepositoryInterface
	configRepo     repository.ConfigRepositoryInterface
	blocages       BlocageServiceInterface
	factory        calendar.Factory
	timezone       string

	// Serializes sync/unsync per prestation so two concurrent requests for
	// the same prestation cannot interleave their calendar mutations.
	locks keyedMutex
}

// SyncServiceInterface defines the service contract
type SyncServiceInterface interface {
	Sync(ctx context.Context, prestationID uuid.UUID) *SyncResult
	Unsync(ctx context.Context, prestationID uuid.UUID) *SyncResult
	ListCalendars(ctx context.Context) ([]calendar.CalendarInfo, *errors.AppError)
	GetConfig(ctx context.Context) (*entity.SyncConfig, *errors.AppError)
	SaveConfig(ctx context.Context, cfg *entity.SyncConfig) *errors.AppError
}

// NewSyncService creates a new sync orchestrator
func NewSyncService(
	prestationRepo prestationrepository.PrestationRepositoryInterface,
	clientRepo clientrepository.ClientRepositoryInterface,
	configRepo repository.ConfigRepositoryInterface,
	blocages BlocageServiceInterface,
	factory calendar.Factory,
	timezone string,
) SyncServiceInterface {
	return &SyncService{
		prestationRepo: prestationRepo,
		clientRepo:     clientRepo,
		configRepo:     configRepo,
		blocages:       blocages,
		factory:        factory,
		timezone:       timezone,
	}
}

// ValidateSessions rejects malformed session data before any external call.
func ValidateSessions(sessions []prestationentity.SessionPrestation) *errors.AppError {
	for i := range sessions {
		s := &sessions[i]
		if s.DateFin != nil && s.DateFin.Before(s.DateDebut) {
			return errors.NewAppError(errors.ErrValidation,
				fmt.Sprintf("session %d : date de fin antérieure à la date de début", i+1), nil)
		}
	}
	return nil
}

// Sync creates or refreshes the calendar events for a prestation: one event
// per session on the resolved primary calendar (multi-day full-day sessions
// expand to one event per day), then busy placeholders on every other
// professional calendar. Re-running updates existing events instead of
// duplicating them; an event deleted externally is recreated.
func (s *SyncService) Sync(ctx context.Context, prestationID uuid.UUID) *SyncResult {
	unlock := s.locks.lock(prestationID)
	defer unlock()

	prestation, err := s.prestationRepo.GetByID(ctx, prestationID)
	if err != nil {
		return failureResult(errors.ErrInternalServer, "Erreur de lecture de la prestation")
	}
	if prestation == nil {
		return failureResult(errors.ErrNotFound, "Prestation introuvable")
	}

	if appErr := ValidateSessions(prestation.Sessions); appErr != nil {
		return failureResult(appErr.Code, appErr.Message)
	}

	client, err := s.clientRepo.GetByID(ctx, prestation.ClientID)
	if err != nil || client == nil {
		return failureResult(errors.ErrNotFound, "Client introuvable")
	}

	cli, err := s.factory(ctx)
	if err != nil {
		logger.Warn("SyncService:Sync calendar unavailable", "error", err)
		return failureResult(errors.ErrCalendarUnavailable,
			"Service Google Calendar non disponible. Configurez credentials.json")
	}

	cfg, err := s.configRepo.GetSyncConfig(ctx)
	if err != nil {
		cfg = entity.DefaultSyncConfig()
	}

	calendarID, rule := ResolveCalendar(prestation, client, cfg)
	logger.Info("SyncService:Sync",
		"prestation_id", prestationID,
		"calendar_id", calendarID,
		"rule", rule,
	)

	title := EventTitle(prestation, client)
	description := EventDescription(prestation, client)

	// Prestations without sessions fall back to the legacy denormalized
	// schedule, treated as a single synthetic session.
	sessions := prestation.Sessions
	synthetic := false
	if len(sessions) == 0 {
		synthetic = true
		sessions = []prestationentity.SessionPrestation{{
			PrestationID:    prestation.ID,
			DateDebut:       prestation.DateDebut,
			DateFin:         prestation.DateFin,
			DureeHeures:     prestation.DureeHeures,
			JourneeComplete: prestation.JourneeEntiere,
		}}
	}

	eventsCreated := 0
	var firstEventID *string
	var failures []string
	var lastErr error

	for i := range sessions {
		session := &sessions[i]
		specs := MaterializeSession(session, SessionTitle(title, i, len(sessions)), description, s.timezone)

		eventIDs, created, syncErr := s.syncSessionEvents(ctx, cli, calendarID, session, specs)
		if syncErr != nil {
			logger.Warn("SyncService:Sync session failed",
				"prestation_id", prestationID,
				"session", i+1,
				"error", syncErr,
			)
			failures = append(failures, fmt.Sprintf("session %d : %v", i+1, syncErr))
			lastErr = syncErr
			continue
		}

		eventsCreated += created
		if firstEventID == nil {
			firstEventID = &eventIDs[0]
		}
		if !synthetic {
			if err := s.prestationRepo.UpdateSessionSync(ctx, session.ID, &eventIDs[0], prestationentity.EncodeEventIDs(eventIDs), true); err != nil {
				logger.Error("SyncService:Sync persist session", err)
			}
		}
	}

	if firstEventID == nil {
		code := errors.ErrCalendarUnavailable
		if calendar.IsTransient(lastErr) {
			code = errors.ErrExternalTransient
		}
		return failureResult(code,
			fmt.Sprintf("Aucun événement créé (%d échec(s))", len(failures)))
	}

	now := time.Now()
	if err := s.prestationRepo.UpdateSyncFields(ctx, prestationID, firstEventID, true, &now); err != nil {
		logger.Error("SyncService:Sync persist prestation", err)
	}
	if err := s.configRepo.TouchLastSync(ctx, now); err != nil {
		logger.Warn("SyncService:Sync touch last sync", "error", err)
	}

	blocagesCount := s.reconcileBlocages(ctx, cli, prestation, sessions, client, calendarID, cfg)

	message := fmt.Sprintf("%d événement(s) créé(s)", eventsCreated)
	if len(failures) > 0 {
		message = fmt.Sprintf("%s, %d échec(s)", message, len(failures))
	}
	return &SyncResult{
		Success:        true,
		Message:        message,
		PrimaryEventID: firstEventID,
		EventsCreated:  eventsCreated,
		BlocagesCount:  blocagesCount,
		Rule:           rule,
	}
}

// syncSessionEvents creates or updates the events for one session. Returns
// every event id now backing the session (a multi-day series yields one per
// day, first one stored as the session's primary id) and how many events
// were written.
func (s *SyncService) syncSessionEvents(ctx context.Context, cli calendar.Client, calendarID string, session *prestationentity.SessionPrestation, specs []calendar.EventSpec) ([]string, int, error) {
	if len(specs) == 0 {
		return nil, 0, fmt.Errorf("aucun événement à créer")
	}

	// Single event with a known id: update in place, recreate when the
	// event was deleted on the calendar side.
	if len(specs) == 1 && session.GcalEventID != nil && *session.GcalEventID != "" {
		eventID, err := cli.UpdateEvent(ctx, calendarID, *session.GcalEventID, &specs[0])
		if err == nil {
			return []string{eventID}, 1, nil
		}
		if !calendar.IsNotFound(err) {
			return nil, 0, err
		}
		logger.Info("SyncService:syncSessionEvents recreating missing event",
			"calendar_id", calendarID,
			"event_id", *session.GcalEventID,
		)
	}

	// Multi-day series with stored ids: the day count may have changed, so
	// the series cannot be updated piecewise. Drop every stored event and
	// rebuild the series.
	if len(specs) > 1 {
		for _, staleID := range session.EventIDList() {
			if err := cli.DeleteEvent(ctx, calendarID, staleID); err != nil {
				logger.Warn("SyncService:syncSessionEvents stale series delete failed",
					"event_id", staleID,
					"error", err,
				)
			}
		}
	}

	var ids []string
	var lastErr error
	for i := range specs {
		eventID, err := cli.CreateEvent(ctx, calendarID, &specs[i])
		if err != nil {
			lastErr = err
			logger.Warn("SyncService:syncSessionEvents create failed",
				"calendar_id", calendarID,
				"title", specs[i].Title,
				"error", err,
			)
			continue
		}
		ids = append(ids, eventID)
	}

	if len(ids) == 0 {
		return nil, 0, lastErr
	}
	return ids, len(ids), nil
}

// reconcileBlocages lists the professional calendars and mirrors busy
// placeholders onto every one except the primary. A listing failure only
// skips the placeholders; the prestation's own events are already in place.
func (s *SyncService) reconcileBlocages(ctx context.Context, cli calendar.Client, prestation *prestationentity.Prestation, sessions []prestationentity.SessionPrestation, client *cliententity.Client, calendarID string, cfg *entity.SyncConfig) int {
	all, err := cli.ListCalendars(ctx)
	if err != nil {
		logger.Warn("SyncService:reconcileBlocages list calendars failed", "error", err)
		return 0
	}

	withSessions := *prestation
	withSessions.Sessions = sessions

	others := FilterCalendars(all, cfg.CalendriersPersonnels)
	return s.blocages.Reconcile(ctx, cli, &withSessions, client, calendarID, others)
}

// Unsync removes every calendar trace of a prestation: the per-session
// events, the legacy primary event and all blocking placeholders. Called
// before deletion and on cancellation. A prestation that was never synced is
// a no-op success with zero external calls.
func (s *SyncService) Unsync(ctx context.Context, prestationID uuid.UUID) *SyncResult {
	unlock := s.locks.lock(prestationID)
	defer unlock()

	prestation, err := s.prestationRepo.GetByID(ctx, prestationID)
	if err != nil {
		return failureResult(errors.ErrInternalServer, "Erreur de lecture de la prestation")
	}
	if prestation == nil || !hasSyncState(prestation) {
		return &SyncResult{Success: true, Message: "Aucun événement à supprimer"}
	}

	client, err := s.clientRepo.GetByID(ctx, prestation.ClientID)
	if err != nil {
		return failureResult(errors.ErrInternalServer, "Erreur de lecture du client")
	}

	cli, err := s.factory(ctx)
	if err != nil {
		logger.Warn("SyncService:Unsync calendar unavailable", "error", err)
		return failureResult(errors.ErrCalendarUnavailable, "Service Google Calendar non disponible")
	}

	cfg, err := s.configRepo.GetSyncConfig(ctx)
	if err != nil {
		cfg = entity.DefaultSyncConfig()
	}
	calendarID, _ := ResolveCalendar(prestation, client, cfg)

	deleted := 0
	seen := map[string]bool{}
	for i := range prestation.Sessions {
		session := &prestation.Sessions[i]
		ids := session.EventIDList()
		if len(ids) == 0 {
			continue
		}
		for _, eventID := range ids {
			if seen[eventID] {
				continue
			}
			if err := cli.DeleteEvent(ctx, calendarID, eventID); err != nil {
				logger.Warn("SyncService:Unsync session delete failed",
					"event_id", eventID,
					"error", err,
				)
			} else {
				deleted++
			}
			seen[eventID] = true
		}
		if err := s.prestationRepo.UpdateSessionSync(ctx, session.ID, nil, nil, false); err != nil {
			logger.Error("SyncService:Unsync persist session", err)
		}
	}

	// Legacy primary id, when it is not one of the session events.
	if prestation.GcalEventID != nil && *prestation.GcalEventID != "" && !seen[*prestation.GcalEventID] {
		if err := cli.DeleteEvent(ctx, calendarID, *prestation.GcalEventID); err != nil {
			logger.Warn("SyncService:Unsync primary delete failed", "error", err)
		} else {
			deleted++
		}
	}

	blocagesDeleted := s.blocages.Clear(ctx, cli, prestationID)

	if err := s.prestationRepo.UpdateSyncFields(ctx, prestationID, nil, false, nil); err != nil {
		logger.Error("SyncService:Unsync persist prestation", err)
	}

	logger.Info("SyncService:Unsync",
		"prestation_id", prestationID,
		"events_deleted", deleted,
		"blocages_deleted", blocagesDeleted,
	)
	return &SyncResult{
		Success: true,
		Message: fmt.Sprintf("%d événement(s) et %d blocage(s) supprimé(s)", deleted, blocagesDeleted),
	}
}

// ListCalendars returns the professional calendars visible to the account,
// with system and personal calendars filtered out.
func (s *SyncService) ListCalendars(ctx context.Context) ([]calendar.CalendarInfo, *errors.AppError) {
	cli, err := s.factory(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCalendarUnavailable, "Service Google Calendar non disponible", err)
	}

	all, err := cli.ListCalendars(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCalendarUnavailable, "Lecture des calendriers impossible", err)
	}

	cfg, err := s.configRepo.GetSyncConfig(ctx)
	if err != nil {
		cfg = entity.DefaultSyncConfig()
	}
	return FilterCalendars(all, cfg.CalendriersPersonnels), nil
}

func (s *SyncService) GetConfig(ctx context.Context) (*entity.SyncConfig, *errors.AppError) {
	cfg, err := s.configRepo.GetSyncConfig(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Lecture de la configuration impossible", err)
	}
	return cfg, nil
}

func (s *SyncService) SaveConfig(ctx context.Context, cfg *entity.SyncConfig) *errors.AppError {
	if err := s.configRepo.SaveSyncConfig(ctx, cfg); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Enregistrement de la configuration impossible", err)
	}
	return nil
}

func hasSyncState(p *prestationentity.Prestation) bool {
	if p.GcalEventID != nil && *p.GcalEventID != "" {
		return true
	}
	for i := range p.Sessions {
		if len(p.Sessions[i].EventIDList()) > 0 {
			return true
		}
	}
	return false
}

// keyedMutex hands out one mutex per prestation id.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func (k *keyedMutex) lock(id uuid.UUID) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[uuid.UUID]*sync.Mutex)
	}
	m, ok := k.locks[id]
	if !ok {
		m = &sync.Mutex{}
		k.locks[id] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
