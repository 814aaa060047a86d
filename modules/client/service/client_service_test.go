package service

import (
	"context"
	"testing"

	"gestion-api/core/constants"
	apperrors "gestion-api/core/errors"
	"gestion-api/modules/client/dto"
	"gestion-api/modules/client/entity"

	"github.com/google/uuid"
)

type fakeRepo struct {
	stored map[uuid.UUID]*entity.Client
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{stored: map[uuid.UUID]*entity.Client{}}
}

func (f *fakeRepo) Create(ctx context.Context, client *entity.Client) (*entity.Client, error) {
	client.ID = uuid.New()
	f.stored[client.ID] = client
	return client, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	return f.stored[id], nil
}

func (f *fakeRepo) List(ctx context.Context, statut string) ([]entity.Client, error) {
	return nil, nil
}

func (f *fakeRepo) Search(ctx context.Context, q string) ([]entity.Client, error) {
	return nil, nil
}

func (f *fakeRepo) Update(ctx context.Context, client *entity.Client) (*entity.Client, error) {
	f.stored[client.ID] = client
	return client, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.stored, id)
	return nil
}

func TestCreateDefaults(t *testing.T) {
	svc := NewClientService(newFakeRepo())

	client, appErr := svc.Create(context.Background(), &dto.ClientRequest{Nom: "Dupont"})
	if appErr != nil {
		t.Fatalf("Create failed: %v", appErr)
	}
	if client.StatutClient != constants.StatutClient {
		t.Errorf("statut = %q", client.StatutClient)
	}
	if client.DelaiPaiementJours != 30 {
		t.Errorf("delai = %d, want default 30", client.DelaiPaiementJours)
	}

	if _, appErr := svc.Create(context.Background(), &dto.ClientRequest{}); appErr == nil || appErr.Code != apperrors.ErrValidation {
		t.Errorf("missing nom: got %v", appErr)
	}
}

func TestConvertProspect(t *testing.T) {
	svc := NewClientService(newFakeRepo())

	created, appErr := svc.Create(context.Background(), &dto.ClientRequest{
		Nom:          "Martin",
		StatutClient: constants.StatutProspect,
	})
	if appErr != nil {
		t.Fatalf("Create failed: %v", appErr)
	}

	converted, appErr := svc.ConvertProspect(context.Background(), created.ID)
	if appErr != nil {
		t.Fatalf("ConvertProspect failed: %v", appErr)
	}
	if converted.StatutClient != constants.StatutClient {
		t.Errorf("statut = %q", converted.StatutClient)
	}
	if converted.DateConversion == nil {
		t.Error("conversion date must be stamped")
	}

	// Converting an already-converted client keeps the original date.
	stamp := *converted.DateConversion
	again, appErr := svc.ConvertProspect(context.Background(), created.ID)
	if appErr != nil {
		t.Fatalf("second conversion failed: %v", appErr)
	}
	if again.DateConversion == nil || !again.DateConversion.Equal(stamp) {
		t.Error("no-op conversion must not restamp the date")
	}
}

func TestConvertUnknownClient(t *testing.T) {
	svc := NewClientService(newFakeRepo())

	if _, appErr := svc.ConvertProspect(context.Background(), uuid.New()); appErr == nil || appErr.Code != apperrors.ErrNotFound {
		t.Errorf("want not-found error, got %v", appErr)
	}
}
