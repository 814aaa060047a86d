package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	apperrors "gestion-api/core/errors"
	cliententity "gestion-api/modules/client/entity"
	"gestion-api/modules/gcalsync/calendar"
	"gestion-api/modules/gcalsync/entity"
	prestationentity "gestion-api/modules/prestation/entity"

	"github.com/google/uuid"
	"google.golang.org/api/googleapi"
)

type calOp struct {
	calendarID string
	eventID    string
	spec       calendar.EventSpec
}

// fakeCalClient records every calendar mutation and hands out sequential
// event ids.
type fakeCalClient struct {
	calendars []calendar.CalendarInfo
	listErr   error
	createErr error
	missing   map[string]bool

	nextID  int
	created []calOp
	updated []calOp
	deleted []calOp
}

func (f *fakeCalClient) ListCalendars(ctx context.Context) ([]calendar.CalendarInfo, error) {
	return f.calendars, f.listErr
}

func (f *fakeCalClient) CreateEvent(ctx context.Context, calendarID string, spec *calendar.EventSpec) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.nextID++
	id := fmt.Sprintf("evt-%d", f.nextID)
	f.created = append(f.created, calOp{calendarID: calendarID, eventID: id, spec: *spec})
	return id, nil
}

func (f *fakeCalClient) UpdateEvent(ctx context.Context, calendarID, eventID string, spec *calendar.EventSpec) (string, error) {
	if f.missing[eventID] {
		return "", apperrors.NewAppError(apperrors.ErrEventNotFound, "événement supprimé", nil)
	}
	f.updated = append(f.updated, calOp{calendarID: calendarID, eventID: eventID, spec: *spec})
	return eventID, nil
}

func (f *fakeCalClient) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	f.deleted = append(f.deleted, calOp{calendarID: calendarID, eventID: eventID})
	return nil
}

type syncFieldCall struct {
	eventID *string
	synced  bool
}

type sessionSyncCall struct {
	sessionID uuid.UUID
	eventID   *string
	eventIDs  *string
	synced    bool
}

type fakePrestationRepo struct {
	prestation *prestationentity.Prestation

	syncFieldCalls   []syncFieldCall
	sessionSyncCalls []sessionSyncCall
}

func (f *fakePrestationRepo) Create(ctx context.Context, p *prestationentity.Prestation, sessions []prestationentity.SessionPrestation) (*prestationentity.Prestation, error) {
	return p, nil
}

func (f *fakePrestationRepo) GetByID(ctx context.Context, id uuid.UUID) (*prestationentity.Prestation, error) {
	if f.prestation == nil || f.prestation.ID != id {
		return nil, nil
	}
	return f.prestation, nil
}

func (f *fakePrestationRepo) List(ctx context.Context, statut string) ([]prestationentity.Prestation, error) {
	return nil, nil
}

func (f *fakePrestationRepo) ListByClientID(ctx context.Context, clientID uuid.UUID) ([]prestationentity.Prestation, error) {
	return nil, nil
}

func (f *fakePrestationRepo) Update(ctx context.Context, p *prestationentity.Prestation, sessions []prestationentity.SessionPrestation) (*prestationentity.Prestation, error) {
	return p, nil
}

func (f *fakePrestationRepo) UpdateStatut(ctx context.Context, id uuid.UUID, statut string) error {
	return nil
}

func (f *fakePrestationRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakePrestationRepo) UpdateSyncFields(ctx context.Context, id uuid.UUID, eventID *string, synced bool, lastSync *time.Time) error {
	f.syncFieldCalls = append(f.syncFieldCalls, syncFieldCall{eventID: eventID, synced: synced})
	return nil
}

func (f *fakePrestationRepo) UpdateSessionSync(ctx context.Context, sessionID uuid.UUID, eventID *string, eventIDs *string, synced bool) error {
	f.sessionSyncCalls = append(f.sessionSyncCalls, sessionSyncCall{sessionID: sessionID, eventID: eventID, eventIDs: eventIDs, synced: synced})
	return nil
}

type fakeClientRepo struct {
	client *cliententity.Client
}

func (f *fakeClientRepo) Create(ctx context.Context, c *cliententity.Client) (*cliententity.Client, error) {
	return c, nil
}

func (f *fakeClientRepo) GetByID(ctx context.Context, id uuid.UUID) (*cliententity.Client, error) {
	return f.client, nil
}

func (f *fakeClientRepo) List(ctx context.Context, statut string) ([]cliententity.Client, error) {
	return nil, nil
}

func (f *fakeClientRepo) Search(ctx context.Context, q string) ([]cliententity.Client, error) {
	return nil, nil
}

func (f *fakeClientRepo) Update(ctx context.Context, c *cliententity.Client) (*cliententity.Client, error) {
	return c, nil
}

func (f *fakeClientRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeConfigRepo struct {
	cfg     *entity.SyncConfig
	touched int
}

func (f *fakeConfigRepo) GetSyncConfig(ctx context.Context) (*entity.SyncConfig, error) {
	if f.cfg == nil {
		return entity.DefaultSyncConfig(), nil
	}
	return f.cfg, nil
}

func (f *fakeConfigRepo) SaveSyncConfig(ctx context.Context, cfg *entity.SyncConfig) error {
	f.cfg = cfg
	return nil
}

func (f *fakeConfigRepo) TouchLastSync(ctx context.Context, at time.Time) error {
	f.touched++
	return nil
}

type fakeBlocageRepo struct {
	rows []entity.Blocage
}

func (f *fakeBlocageRepo) Create(ctx context.Context, b *entity.Blocage) (*entity.Blocage, error) {
	b.ID = uuid.New()
	b.DateCreation = time.Now()
	f.rows = append(f.rows, *b)
	return b, nil
}

func (f *fakeBlocageRepo) GetByPrestationID(ctx context.Context, prestationID uuid.UUID) ([]entity.Blocage, error) {
	var out []entity.Blocage
	for _, row := range f.rows {
		if row.PrestationID == prestationID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeBlocageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := f.rows[:0]
	for _, row := range f.rows {
		if row.ID != id {
			kept = append(kept, row)
		}
	}
	f.rows = kept
	return nil
}

func (f *fakeBlocageRepo) DeleteByPrestationID(ctx context.Context, prestationID uuid.UUID) error {
	kept := f.rows[:0]
	for _, row := range f.rows {
		if row.PrestationID != prestationID {
			kept = append(kept, row)
		}
	}
	f.rows = kept
	return nil
}

type syncFixture struct {
	svc          SyncServiceInterface
	prestations  *fakePrestationRepo
	clients      *fakeClientRepo
	configs      *fakeConfigRepo
	blocageRepo  *fakeBlocageRepo
	cal          *fakeCalClient
	factoryCalls int
	factoryErr   error
}

func newSyncFixture(prestation *prestationentity.Prestation) *syncFixture {
	f := &syncFixture{
		prestations: &fakePrestationRepo{prestation: prestation},
		clients:     &fakeClientRepo{client: &cliententity.Client{ID: prestation.ClientID, Nom: "Dupont"}},
		configs: &fakeConfigRepo{cfg: &entity.SyncConfig{
			CalendrierPrincipal: entity.CalendarRef{ID: "cal-pro", Nom: "Prestations"},
		}},
		blocageRepo: &fakeBlocageRepo{},
		cal: &fakeCalClient{
			calendars: []calendar.CalendarInfo{
				{ID: "cal-pro", Summary: "Prestations"},
				{ID: "cal-b1", Summary: "Interventions"},
				{ID: "cal-b2", Summary: "Agenda pro"},
				{ID: "fr.french#holiday@group.v.calendar.google.com", Summary: "Jours fériés en France"},
			},
		},
	}

	factory := func(ctx context.Context) (calendar.Client, error) {
		f.factoryCalls++
		if f.factoryErr != nil {
			return nil, f.factoryErr
		}
		return f.cal, nil
	}

	f.svc = NewSyncService(
		f.prestations,
		f.clients,
		f.configs,
		NewBlocageService(f.blocageRepo, "Europe/Paris"),
		factory,
		"Europe/Paris",
	)
	return f
}

func twoSessionPrestation() *prestationentity.Prestation {
	id := uuid.New()
	timedEnd := dt(2026, time.September, 11, 12, 0)
	return &prestationentity.Prestation{
		ID:        id,
		ClientID:  uuid.New(),
		Titre:     "Formation incendie",
		DateDebut: dt(2026, time.September, 10, 9, 0),
		Sessions: []prestationentity.SessionPrestation{
			{
				ID:              uuid.New(),
				PrestationID:    id,
				DateDebut:       dt(2026, time.September, 10, 9, 0),
				JourneeComplete: true,
			},
			{
				ID:           uuid.New(),
				PrestationID: id,
				DateDebut:    dt(2026, time.September, 11, 9, 0),
				DateFin:      &timedEnd,
			},
		},
	}
}

func TestSyncCreatesEventsAndBlockages(t *testing.T) {
	prestation := twoSessionPrestation()
	f := newSyncFixture(prestation)

	result := f.svc.Sync(context.Background(), prestation.ID)

	if !result.Success {
		t.Fatalf("Sync failed: %s (%s)", result.Message, result.FailureCode)
	}
	if result.EventsCreated != 2 {
		t.Errorf("EventsCreated = %d, want 2", result.EventsCreated)
	}
	if result.Rule != RulePrincipalCalendar {
		t.Errorf("Rule = %q, want %q", result.Rule, RulePrincipalCalendar)
	}
	if result.PrimaryEventID == nil || *result.PrimaryEventID != "evt-1" {
		t.Errorf("PrimaryEventID = %v, want evt-1", result.PrimaryEventID)
	}

	// 2 sessions on the primary calendar, then 2 sessions x 2 blocking
	// calendars (the holiday feed is filtered out, the primary excluded).
	if result.BlocagesCount != 4 {
		t.Errorf("BlocagesCount = %d, want 4", result.BlocagesCount)
	}
	if len(f.cal.created) != 6 {
		t.Fatalf("created %d events, want 6", len(f.cal.created))
	}
	if f.cal.created[0].calendarID != "cal-pro" || f.cal.created[1].calendarID != "cal-pro" {
		t.Error("session events must land on the resolved primary calendar")
	}
	if title := f.cal.created[0].spec.Title; title != "👤 Dupont - Formation incendie (Session 1/2)" {
		t.Errorf("first event title = %q", title)
	}
	for _, op := range f.cal.created[2:] {
		if op.spec.Title != "🚫 Indisponible" {
			t.Errorf("blocking event title = %q", op.spec.Title)
		}
		if op.calendarID == "cal-pro" {
			t.Error("no blocking event may land on the primary calendar")
		}
	}

	if len(f.blocageRepo.rows) != 4 {
		t.Errorf("stored %d blocage rows, want 4", len(f.blocageRepo.rows))
	}
	if len(f.prestations.sessionSyncCalls) != 2 {
		t.Fatalf("UpdateSessionSync called %d times, want 2", len(f.prestations.sessionSyncCalls))
	}
	for i, call := range f.prestations.sessionSyncCalls {
		if !call.synced || call.eventID == nil {
			t.Errorf("session %d not marked synced", i)
		}
	}
	if len(f.prestations.syncFieldCalls) != 1 || !f.prestations.syncFieldCalls[0].synced {
		t.Fatalf("UpdateSyncFields calls = %+v", f.prestations.syncFieldCalls)
	}
	if f.configs.touched != 1 {
		t.Errorf("TouchLastSync called %d times, want 1", f.configs.touched)
	}
}

func TestSyncUpdatesExistingEvents(t *testing.T) {
	prestation := twoSessionPrestation()
	prestation.Sessions[0].GcalEventID = strPtr("evt-a")
	prestation.Sessions[1].GcalEventID = strPtr("evt-b")
	f := newSyncFixture(prestation)
	f.cal.calendars = []calendar.CalendarInfo{{ID: "cal-pro", Summary: "Prestations"}}

	result := f.svc.Sync(context.Background(), prestation.ID)

	if !result.Success {
		t.Fatalf("Sync failed: %s", result.Message)
	}
	if len(f.cal.created) != 0 {
		t.Errorf("re-sync created %d events, want 0", len(f.cal.created))
	}
	if len(f.cal.updated) != 2 {
		t.Fatalf("re-sync updated %d events, want 2", len(f.cal.updated))
	}
	if f.cal.updated[0].eventID != "evt-a" || f.cal.updated[1].eventID != "evt-b" {
		t.Errorf("updated ids = %s, %s", f.cal.updated[0].eventID, f.cal.updated[1].eventID)
	}
	if result.PrimaryEventID == nil || *result.PrimaryEventID != "evt-a" {
		t.Errorf("PrimaryEventID = %v, want evt-a", result.PrimaryEventID)
	}
}

func TestSyncRecreatesExternallyDeletedEvent(t *testing.T) {
	prestation := twoSessionPrestation()
	prestation.Sessions = prestation.Sessions[1:]
	prestation.Sessions[0].GcalEventID = strPtr("evt-gone")
	f := newSyncFixture(prestation)
	f.cal.calendars = nil
	f.cal.missing = map[string]bool{"evt-gone": true}

	result := f.svc.Sync(context.Background(), prestation.ID)

	if !result.Success {
		t.Fatalf("Sync failed: %s", result.Message)
	}
	if len(f.cal.created) != 1 {
		t.Fatalf("created %d events, want 1 recreation", len(f.cal.created))
	}
	call := f.prestations.sessionSyncCalls[0]
	if call.eventID == nil || *call.eventID != "evt-1" {
		t.Errorf("session persisted with id %v, want evt-1", call.eventID)
	}
}

func multiDayPrestation() *prestationentity.Prestation {
	id := uuid.New()
	end := dt(2026, time.September, 12, 17, 0)
	return &prestationentity.Prestation{
		ID:        id,
		ClientID:  uuid.New(),
		Titre:     "Audit",
		DateDebut: dt(2026, time.September, 10, 9, 0),
		Sessions: []prestationentity.SessionPrestation{{
			ID:              uuid.New(),
			PrestationID:    id,
			DateDebut:       dt(2026, time.September, 10, 9, 0),
			DateFin:         &end,
			JourneeComplete: true,
		}},
	}
}

func TestSyncRebuildsMultiDaySeries(t *testing.T) {
	prestation := multiDayPrestation()
	prestation.Sessions[0].GcalEventID = strPtr("evt-old-1")
	prestation.Sessions[0].GcalEventIDs = prestationentity.EncodeEventIDs(
		[]string{"evt-old-1", "evt-old-2", "evt-old-3"})
	f := newSyncFixture(prestation)
	f.cal.calendars = nil

	result := f.svc.Sync(context.Background(), prestation.ID)

	if !result.Success {
		t.Fatalf("Sync failed: %s", result.Message)
	}
	// Every day of the previous series must go, not just the first one.
	if len(f.cal.deleted) != 3 {
		t.Fatalf("deleted %d stale events, want the whole series: %+v", len(f.cal.deleted), f.cal.deleted)
	}
	for i, op := range f.cal.deleted {
		if want := fmt.Sprintf("evt-old-%d", i+1); op.eventID != want {
			t.Errorf("deleted[%d] = %s, want %s", i, op.eventID, want)
		}
	}
	if result.EventsCreated != 3 {
		t.Errorf("EventsCreated = %d, want 3 (one per day)", result.EventsCreated)
	}
	if title := f.cal.created[1].spec.Title; title != "👤 Dupont - Audit (Jour 2/3)" {
		t.Errorf("second day title = %q", title)
	}

	// The new series ids must all be persisted for the next rebuild.
	if len(f.prestations.sessionSyncCalls) != 1 {
		t.Fatalf("UpdateSessionSync calls = %+v", f.prestations.sessionSyncCalls)
	}
	call := f.prestations.sessionSyncCalls[0]
	if call.eventID == nil || *call.eventID != "evt-1" {
		t.Errorf("session primary id = %v, want evt-1", call.eventID)
	}
	if call.eventIDs == nil {
		t.Fatal("series id list not persisted")
	}
	stored := prestationentity.SessionPrestation{GcalEventIDs: call.eventIDs}
	ids := stored.EventIDList()
	if len(ids) != 3 || ids[0] != "evt-1" || ids[2] != "evt-3" {
		t.Errorf("persisted series ids = %v", ids)
	}
}

func TestSyncRebuildsSeriesFromLegacySingleID(t *testing.T) {
	prestation := multiDayPrestation()
	prestation.Sessions[0].GcalEventID = strPtr("evt-old")
	f := newSyncFixture(prestation)
	f.cal.calendars = nil

	result := f.svc.Sync(context.Background(), prestation.ID)

	if !result.Success {
		t.Fatalf("Sync failed: %s", result.Message)
	}
	// Rows written before the series list existed only track one id.
	if len(f.cal.deleted) != 1 || f.cal.deleted[0].eventID != "evt-old" {
		t.Errorf("stale event not deleted: %+v", f.cal.deleted)
	}
	if result.EventsCreated != 3 {
		t.Errorf("EventsCreated = %d, want 3", result.EventsCreated)
	}
}

func TestUnsyncRemovesWholeSeries(t *testing.T) {
	prestation := multiDayPrestation()
	prestation.GcalEventID = strPtr("evt-d1")
	prestation.Sessions[0].GcalEventID = strPtr("evt-d1")
	prestation.Sessions[0].GcalEventIDs = prestationentity.EncodeEventIDs(
		[]string{"evt-d1", "evt-d2", "evt-d3"})
	f := newSyncFixture(prestation)

	result := f.svc.Unsync(context.Background(), prestation.ID)

	if !result.Success {
		t.Fatalf("Unsync failed: %s", result.Message)
	}
	// All three days, the legacy primary id being the first of them.
	if len(f.cal.deleted) != 3 {
		t.Fatalf("deleted %d events, want 3: %+v", len(f.cal.deleted), f.cal.deleted)
	}
	call := f.prestations.sessionSyncCalls[0]
	if call.eventID != nil || call.eventIDs != nil || call.synced {
		t.Errorf("session sync state not cleared: %+v", call)
	}
}

func TestSyncWithoutSessionsUsesLegacySchedule(t *testing.T) {
	id := uuid.New()
	f := newSyncFixture(&prestationentity.Prestation{
		ID:        id,
		ClientID:  uuid.New(),
		Titre:     "Dépannage",
		DateDebut: dt(2026, time.September, 10, 9, 0),
	})
	f.cal.calendars = nil

	result := f.svc.Sync(context.Background(), id)

	if !result.Success || result.EventsCreated != 1 {
		t.Fatalf("result = %+v", result)
	}
	if len(f.prestations.sessionSyncCalls) != 0 {
		t.Error("synthetic legacy session must not be persisted")
	}
	if len(f.prestations.syncFieldCalls) != 1 {
		t.Error("legacy schedule must still mark the prestation synced")
	}
}

func TestSyncCalendarUnavailable(t *testing.T) {
	prestation := twoSessionPrestation()
	f := newSyncFixture(prestation)
	f.factoryErr = fmt.Errorf("credentials.json absent")

	result := f.svc.Sync(context.Background(), prestation.ID)

	if result.Success {
		t.Fatal("Sync must fail when the calendar service is unavailable")
	}
	if result.FailureCode != apperrors.ErrCalendarUnavailable {
		t.Errorf("FailureCode = %q", result.FailureCode)
	}
	if len(f.prestations.syncFieldCalls) != 0 {
		t.Error("no sync state may be persisted on failure")
	}
}

func TestSyncRejectsInvertedSessionDates(t *testing.T) {
	prestation := twoSessionPrestation()
	before := prestation.Sessions[1].DateDebut.Add(-2 * time.Hour)
	prestation.Sessions[1].DateFin = &before
	f := newSyncFixture(prestation)

	result := f.svc.Sync(context.Background(), prestation.ID)

	if result.Success || result.FailureCode != apperrors.ErrValidation {
		t.Errorf("result = %+v, want validation failure", result)
	}
	if f.factoryCalls != 0 {
		t.Error("validation must run before any external call")
	}
}

func TestSyncUnknownPrestation(t *testing.T) {
	f := newSyncFixture(twoSessionPrestation())

	result := f.svc.Sync(context.Background(), uuid.New())

	if result.Success || result.FailureCode != apperrors.ErrNotFound {
		t.Errorf("result = %+v, want not-found failure", result)
	}
}

func TestSyncAllCreatesFail(t *testing.T) {
	// The failure code tells the caller whether a retry can help, so it
	// must follow the nature of the provider error.
	tests := []struct {
		name      string
		createErr error
		wantCode  apperrors.ErrorCode
	}{
		{
			"rate limited",
			&googleapi.Error{Code: 429, Message: "rateLimitExceeded"},
			apperrors.ErrExternalTransient,
		},
		{
			"backend error",
			&googleapi.Error{Code: 503, Message: "backendError"},
			apperrors.ErrExternalTransient,
		},
		{
			"permission denied",
			&googleapi.Error{Code: 403, Message: "forbidden"},
			apperrors.ErrCalendarUnavailable,
		},
		{
			"opaque failure",
			fmt.Errorf("accès refusé"),
			apperrors.ErrCalendarUnavailable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prestation := twoSessionPrestation()
			f := newSyncFixture(prestation)
			f.cal.createErr = tt.createErr

			result := f.svc.Sync(context.Background(), prestation.ID)

			if result.Success {
				t.Fatal("Sync must fail when no event could be created")
			}
			if result.FailureCode != tt.wantCode {
				t.Errorf("FailureCode = %q, want %q", result.FailureCode, tt.wantCode)
			}
			if len(f.prestations.syncFieldCalls) != 0 {
				t.Error("no sync state may be persisted when every create failed")
			}
		})
	}
}

func TestUnsyncNeverSynced(t *testing.T) {
	prestation := twoSessionPrestation()
	f := newSyncFixture(prestation)

	result := f.svc.Unsync(context.Background(), prestation.ID)

	if !result.Success || result.Message != "Aucun événement à supprimer" {
		t.Errorf("result = %+v", result)
	}
	if f.factoryCalls != 0 {
		t.Error("an unsynced prestation must not trigger any external call")
	}
}

func TestUnsyncRemovesEverything(t *testing.T) {
	prestation := twoSessionPrestation()
	prestation.GcalEventID = strPtr("evt-legacy")
	prestation.Sessions[0].GcalEventID = strPtr("evt-a")
	prestation.Sessions[1].GcalEventID = strPtr("evt-b")
	f := newSyncFixture(prestation)
	f.blocageRepo.rows = []entity.Blocage{
		{ID: uuid.New(), PrestationID: prestation.ID, CalendarID: "cal-b1", EventID: "blk-1"},
		{ID: uuid.New(), PrestationID: prestation.ID, CalendarID: "cal-b2", EventID: "blk-2"},
	}

	result := f.svc.Unsync(context.Background(), prestation.ID)

	if !result.Success {
		t.Fatalf("Unsync failed: %s", result.Message)
	}
	// 2 session events + 1 legacy + 2 blocages.
	if len(f.cal.deleted) != 5 {
		t.Fatalf("deleted %d events, want 5: %+v", len(f.cal.deleted), f.cal.deleted)
	}
	if len(f.blocageRepo.rows) != 0 {
		t.Errorf("%d blocage rows remain", len(f.blocageRepo.rows))
	}
	for _, call := range f.prestations.sessionSyncCalls {
		if call.eventID != nil || call.synced {
			t.Errorf("session sync state not cleared: %+v", call)
		}
	}
	last := f.prestations.syncFieldCalls[len(f.prestations.syncFieldCalls)-1]
	if last.eventID != nil || last.synced {
		t.Errorf("prestation sync state not cleared: %+v", last)
	}
}

func TestUnsyncSkipsLegacyIDAlreadyDeleted(t *testing.T) {
	prestation := twoSessionPrestation()
	prestation.GcalEventID = strPtr("evt-a")
	prestation.Sessions[0].GcalEventID = strPtr("evt-a")
	f := newSyncFixture(prestation)

	result := f.svc.Unsync(context.Background(), prestation.ID)

	if !result.Success {
		t.Fatalf("Unsync failed: %s", result.Message)
	}
	if len(f.cal.deleted) != 1 {
		t.Errorf("deleted %d events, want 1 (legacy id shared with session)", len(f.cal.deleted))
	}
}

func TestSyncReRunKeepsBlocagesStable(t *testing.T) {
	prestation := twoSessionPrestation()
	f := newSyncFixture(prestation)

	first := f.svc.Sync(context.Background(), prestation.ID)
	second := f.svc.Sync(context.Background(), prestation.ID)

	if !first.Success || !second.Success {
		t.Fatal("both runs must succeed")
	}
	if len(f.blocageRepo.rows) != 4 {
		t.Errorf("%d blocage rows after re-sync, want 4", len(f.blocageRepo.rows))
	}
}
