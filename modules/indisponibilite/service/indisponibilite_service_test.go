package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	apperrors "gestion-api/core/errors"
	"gestion-api/modules/gcalsync/calendar"
	gcalsyncentity "gestion-api/modules/gcalsync/entity"
	"gestion-api/modules/indisponibilite/dto"
	"gestion-api/modules/indisponibilite/entity"

	"github.com/google/uuid"
)

type fakeRepo struct {
	stored map[uuid.UUID]*entity.Indisponibilite
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{stored: map[uuid.UUID]*entity.Indisponibilite{}}
}

func (f *fakeRepo) Create(ctx context.Context, indispo *entity.Indisponibilite) (*entity.Indisponibilite, error) {
	indispo.ID = uuid.New()
	indispo.DateCreation = time.Now()
	f.stored[indispo.ID] = indispo
	return indispo, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Indisponibilite, error) {
	return f.stored[id], nil
}

func (f *fakeRepo) List(ctx context.Context) ([]entity.Indisponibilite, error) {
	return nil, nil
}

func (f *fakeRepo) UpdateEvents(ctx context.Context, id uuid.UUID, gcalEvents *string) error {
	if indispo, ok := f.stored[id]; ok {
		indispo.GcalEvents = gcalEvents
	}
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.stored, id)
	return nil
}

type fakeConfigRepo struct{}

func (f *fakeConfigRepo) GetSyncConfig(ctx context.Context) (*gcalsyncentity.SyncConfig, error) {
	return gcalsyncentity.DefaultSyncConfig(), nil
}

func (f *fakeConfigRepo) SaveSyncConfig(ctx context.Context, cfg *gcalsyncentity.SyncConfig) error {
	return nil
}

func (f *fakeConfigRepo) TouchLastSync(ctx context.Context, at time.Time) error {
	return nil
}

type deleteOp struct {
	calendarID string
	eventID    string
}

type fakeCalClient struct {
	calendars []calendar.CalendarInfo
	nextID    int
	created   map[string]calendar.EventSpec
	deleted   []deleteOp
}

func (f *fakeCalClient) ListCalendars(ctx context.Context) ([]calendar.CalendarInfo, error) {
	return f.calendars, nil
}

func (f *fakeCalClient) CreateEvent(ctx context.Context, calendarID string, spec *calendar.EventSpec) (string, error) {
	if f.created == nil {
		f.created = map[string]calendar.EventSpec{}
	}
	f.nextID++
	f.created[calendarID] = *spec
	return fmt.Sprintf("evt-%d", f.nextID), nil
}

func (f *fakeCalClient) UpdateEvent(ctx context.Context, calendarID, eventID string, spec *calendar.EventSpec) (string, error) {
	return eventID, nil
}

func (f *fakeCalClient) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	f.deleted = append(f.deleted, deleteOp{calendarID: calendarID, eventID: eventID})
	return nil
}

func newService(repo *fakeRepo, cal *fakeCalClient, factoryErr error) IndisponibiliteServiceInterface {
	factory := func(ctx context.Context) (calendar.Client, error) {
		if factoryErr != nil {
			return nil, factoryErr
		}
		return cal, nil
	}
	return NewIndisponibiliteService(repo, &fakeConfigRepo{}, factory)
}

func validRequest() *dto.IndisponibiliteRequest {
	return &dto.IndisponibiliteRequest{
		DateDebut: time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
		DateFin:   time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC),
		Motif:     "Congés",
	}
}

func TestCreateBlocksProfessionalCalendars(t *testing.T) {
	repo := newFakeRepo()
	cal := &fakeCalClient{calendars: []calendar.CalendarInfo{
		{ID: "cal-1", Summary: "Prestations"},
		{ID: "cal-2", Summary: "Interventions"},
		{ID: "cal-3", Summary: "Anniversaires"},
	}}
	svc := newService(repo, cal, nil)

	resp, appErr := svc.Create(context.Background(), validRequest())
	if appErr != nil {
		t.Fatalf("Create failed: %v", appErr)
	}

	// The birthdays calendar is filtered out.
	if resp.NbCalendriers != 2 {
		t.Errorf("NbCalendriers = %d, want 2", resp.NbCalendriers)
	}
	if len(cal.created) != 2 {
		t.Fatalf("created on %d calendars, want 2", len(cal.created))
	}

	spec := cal.created["cal-1"]
	if spec.Title != "🚫 INDISPONIBLE - Congés" {
		t.Errorf("title = %q", spec.Title)
	}
	if spec.Description != "Indisponibilité : Congés" {
		t.Errorf("description = %q", spec.Description)
	}
	if spec.ColorID != "11" {
		t.Errorf("color = %q", spec.ColorID)
	}
	if spec.Window.Kind != calendar.WindowDateOnly {
		t.Error("expected a date-only window")
	}
	// Only the evening-before reminder, anchored on a 08:00 pivot.
	if len(spec.Reminders) != 1 || spec.Reminders[0].Minutes != 780 {
		t.Errorf("reminders = %+v", spec.Reminders)
	}

	events := resp.EventIDs()
	if len(events) != 2 || events["cal-1"] == "" || events["cal-2"] == "" {
		t.Errorf("stored events = %v", events)
	}
}

func TestCreateUsesNoteAsDescription(t *testing.T) {
	repo := newFakeRepo()
	cal := &fakeCalClient{calendars: []calendar.CalendarInfo{{ID: "cal-1", Summary: "Prestations"}}}
	svc := newService(repo, cal, nil)

	req := validRequest()
	note := "Déplacement familial"
	req.Note = &note

	if _, appErr := svc.Create(context.Background(), req); appErr != nil {
		t.Fatalf("Create failed: %v", appErr)
	}
	if desc := cal.created["cal-1"].Description; desc != "Déplacement familial" {
		t.Errorf("description = %q", desc)
	}
}

func TestCreateSurvivesCalendarOutage(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, nil, fmt.Errorf("credentials.json absent"))

	resp, appErr := svc.Create(context.Background(), validRequest())
	if appErr != nil {
		t.Fatalf("an unreachable calendar must not fail the creation: %v", appErr)
	}
	if resp.NbCalendriers != 0 {
		t.Errorf("NbCalendriers = %d, want 0", resp.NbCalendriers)
	}
	if _, ok := repo.stored[resp.ID]; !ok {
		t.Error("period must be saved locally")
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newService(newFakeRepo(), &fakeCalClient{}, nil)

	missingMotif := validRequest()
	missingMotif.Motif = ""
	if _, appErr := svc.Create(context.Background(), missingMotif); appErr == nil || appErr.Code != apperrors.ErrValidation {
		t.Errorf("missing motif: got %v", appErr)
	}

	inverted := validRequest()
	inverted.DateFin = inverted.DateDebut.AddDate(0, 0, -1)
	if _, appErr := svc.Create(context.Background(), inverted); appErr == nil || appErr.Code != apperrors.ErrValidation {
		t.Errorf("inverted dates: got %v", appErr)
	}
}

func TestDeleteRemovesCalendarEvents(t *testing.T) {
	repo := newFakeRepo()
	cal := &fakeCalClient{calendars: []calendar.CalendarInfo{
		{ID: "cal-1", Summary: "Prestations"},
		{ID: "cal-2", Summary: "Interventions"},
	}}
	svc := newService(repo, cal, nil)

	resp, appErr := svc.Create(context.Background(), validRequest())
	if appErr != nil {
		t.Fatalf("Create failed: %v", appErr)
	}

	if appErr := svc.Delete(context.Background(), resp.ID); appErr != nil {
		t.Fatalf("Delete failed: %v", appErr)
	}
	if len(cal.deleted) != 2 {
		t.Errorf("deleted %d events, want 2: %+v", len(cal.deleted), cal.deleted)
	}
	if _, ok := repo.stored[resp.ID]; ok {
		t.Error("row must be gone")
	}
}

func TestDeleteUnknown(t *testing.T) {
	svc := newService(newFakeRepo(), &fakeCalClient{}, nil)

	appErr := svc.Delete(context.Background(), uuid.New())
	if appErr == nil || appErr.Code != apperrors.ErrNotFound {
		t.Errorf("want not-found error, got %v", appErr)
	}
}
