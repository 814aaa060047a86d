package repository

import (
	"context"
	"database/sql"
	"time"

	"gestion-api/core/database"
	"gestion-api/core/logger"
	"gestion-api/modules/prestation/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// PrestationRepository handles prestation and session database operations
type PrestationRepository struct {
	DB database.IDatabase
}

// NewPrestationRepository creates a new repository instance
func NewPrestationRepository(db database.IDatabase) *PrestationRepository {
	return &PrestationRepository{DB: db}
}

// PrestationRepositoryInterface defines the repository contract
type PrestationRepositoryInterface interface {
	Create(ctx context.Context, prestation *entity.Prestation, sessions []entity.SessionPrestation) (*entity.Prestation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Prestation, error)
	List(ctx context.Context, statut string) ([]entity.Prestation, error)
	ListByClientID(ctx context.Context, clientID uuid.UUID) ([]entity.Prestation, error)
	Update(ctx context.Context, prestation *entity.Prestation, sessions []entity.SessionPrestation) (*entity.Prestation, error)
	UpdateStatut(ctx context.Context, id uuid.UUID, statut string) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Sync bookkeeping, mutated only by the calendar sync service.
	UpdateSyncFields(ctx context.Context, id uuid.UUID, eventID *string, synced bool, lastSync *time.Time) error
	UpdateSessionSync(ctx context.Context, sessionID uuid.UUID, eventID *string, eventIDs *string, synced bool) error
}

const prestationColumns = `id, client_id, titre, description, type_prestation, demandeur,
	adresse_prestation, code_postal_prestation, ville_prestation, statut,
	date_debut, date_fin, duree_heures, journee_entiere,
	calendrier_id, gcal_event_id, gcal_synced, gcal_last_sync, created_at, updated_at`

const sessionColumns = `id, prestation_id, date_debut, date_fin, duree_heures, journee_complete,
	ordre, gcal_event_id, gcal_event_ids, gcal_synced, created_at`

// Create inserts the prestation and its sessions in one transaction. The
// legacy date_debut/date_fin/duree_heures/journee_entiere columns mirror the
// first session when sessions are provided.
func (r *PrestationRepository) Create(ctx context.Context, prestation *entity.Prestation, sessions []entity.SessionPrestation) (*entity.Prestation, error) {
	mirrorFirstSession(prestation, sessions)

	tx, err := r.DB.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("PrestationRepository:Create", err)
		return nil, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO prestations (client_id, titre, description, type_prestation, demandeur,
			adresse_prestation, code_postal_prestation, ville_prestation, statut,
			date_debut, date_fin, duree_heures, journee_entiere, calendrier_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + prestationColumns

	var created entity.Prestation
	err = tx.GetContext(ctx, &created, query,
		prestation.ClientID, prestation.Titre, prestation.Description, prestation.TypePrestation,
		prestation.Demandeur, prestation.AdressePrestation, prestation.CodePostalPrestation,
		prestation.VillePrestation, prestation.Statut, prestation.DateDebut, prestation.DateFin,
		prestation.DureeHeures, prestation.JourneeEntiere, prestation.CalendrierID)
	if err != nil {
		logger.Error("PrestationRepository:Create", err)
		return nil, err
	}

	created.Sessions, err = insertSessions(ctx, tx, created.ID, sessions)
	if err != nil {
		logger.Error("PrestationRepository:Create sessions", err)
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		logger.Error("PrestationRepository:Create commit", err)
		return nil, err
	}

	return &created, nil
}

func (r *PrestationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Prestation, error) {
	query := `SELECT ` + prestationColumns + ` FROM prestations WHERE id = $1`

	var prestation entity.Prestation
	err := r.DB.GetContext(ctx, &prestation, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("PrestationRepository:GetByID", err)
		return nil, err
	}

	sessions := []entity.SessionPrestation{}
	sessionQuery := `SELECT ` + sessionColumns + ` FROM sessions_prestation WHERE prestation_id = $1 ORDER BY ordre, date_debut`
	if err := r.DB.SelectContext(ctx, &sessions, sessionQuery, id); err != nil {
		logger.Error("PrestationRepository:GetByID sessions", err)
		return nil, err
	}
	prestation.Sessions = sessions

	return &prestation, nil
}

func (r *PrestationRepository) List(ctx context.Context, statut string) ([]entity.Prestation, error) {
	prestations := []entity.Prestation{}

	if statut != "" {
		query := `SELECT ` + prestationColumns + ` FROM prestations WHERE statut = $1 ORDER BY date_debut DESC`
		if err := r.DB.SelectContext(ctx, &prestations, query, statut); err != nil {
			logger.Error("PrestationRepository:List", err)
			return nil, err
		}
		return prestations, nil
	}

	query := `SELECT ` + prestationColumns + ` FROM prestations ORDER BY date_debut DESC`
	if err := r.DB.SelectContext(ctx, &prestations, query); err != nil {
		logger.Error("PrestationRepository:List", err)
		return nil, err
	}
	return prestations, nil
}

func (r *PrestationRepository) ListByClientID(ctx context.Context, clientID uuid.UUID) ([]entity.Prestation, error) {
	query := `SELECT ` + prestationColumns + ` FROM prestations WHERE client_id = $1 ORDER BY date_debut DESC`

	prestations := []entity.Prestation{}
	if err := r.DB.SelectContext(ctx, &prestations, query, clientID); err != nil {
		logger.Error("PrestationRepository:ListByClientID", err)
		return nil, err
	}
	return prestations, nil
}

// Update rewrites the prestation row and fully replaces its session list in
// one transaction. Session rows are replaced rather than diffed: the caller
// must remove the calendar events tracked by the old rows before calling,
// the replacement rows start unsynced.
func (r *PrestationRepository) Update(ctx context.Context, prestation *entity.Prestation, sessions []entity.SessionPrestation) (*entity.Prestation, error) {
	mirrorFirstSession(prestation, sessions)

	tx, err := r.DB.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("PrestationRepository:Update", err)
		return nil, err
	}
	defer tx.Rollback()

	query := `
		UPDATE prestations SET
			client_id = $2, titre = $3, description = $4, type_prestation = $5, demandeur = $6,
			adresse_prestation = $7, code_postal_prestation = $8, ville_prestation = $9,
			statut = $10, date_debut = $11, date_fin = $12, duree_heures = $13,
			journee_entiere = $14, calendrier_id = $15, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + prestationColumns

	var updated entity.Prestation
	err = tx.GetContext(ctx, &updated, query,
		prestation.ID, prestation.ClientID, prestation.Titre, prestation.Description,
		prestation.TypePrestation, prestation.Demandeur, prestation.AdressePrestation,
		prestation.CodePostalPrestation, prestation.VillePrestation, prestation.Statut,
		prestation.DateDebut, prestation.DateFin, prestation.DureeHeures,
		prestation.JourneeEntiere, prestation.CalendrierID)
	if err != nil {
		logger.Error("PrestationRepository:Update", err)
		return nil, err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM sessions_prestation WHERE prestation_id = $1`, prestation.ID); err != nil {
		logger.Error("PrestationRepository:Update clear sessions", err)
		return nil, err
	}

	updated.Sessions, err = insertSessions(ctx, tx, updated.ID, sessions)
	if err != nil {
		logger.Error("PrestationRepository:Update sessions", err)
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		logger.Error("PrestationRepository:Update commit", err)
		return nil, err
	}

	return &updated, nil
}

func (r *PrestationRepository) UpdateStatut(ctx context.Context, id uuid.UUID, statut string) error {
	query := `UPDATE prestations SET statut = $2, updated_at = NOW() WHERE id = $1`
	if err := r.DB.ExecContext(ctx, query, id, statut); err != nil {
		logger.Error("PrestationRepository:UpdateStatut", err)
		return err
	}
	return nil
}

func (r *PrestationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Sessions, blocages and documents cascade at the schema level.
	if err := r.DB.ExecContext(ctx, `DELETE FROM prestations WHERE id = $1`, id); err != nil {
		logger.Error("PrestationRepository:Delete", err)
		return err
	}
	return nil
}

func (r *PrestationRepository) UpdateSyncFields(ctx context.Context, id uuid.UUID, eventID *string, synced bool, lastSync *time.Time) error {
	query := `UPDATE prestations SET gcal_event_id = $2, gcal_synced = $3, gcal_last_sync = $4 WHERE id = $1`
	if err := r.DB.ExecContext(ctx, query, id, eventID, synced, lastSync); err != nil {
		logger.Error("PrestationRepository:UpdateSyncFields", err)
		return err
	}
	return nil
}

func (r *PrestationRepository) UpdateSessionSync(ctx context.Context, sessionID uuid.UUID, eventID *string, eventIDs *string, synced bool) error {
	query := `UPDATE sessions_prestation SET gcal_event_id = $2, gcal_event_ids = $3, gcal_synced = $4 WHERE id = $1`
	if err := r.DB.ExecContext(ctx, query, sessionID, eventID, eventIDs, synced); err != nil {
		logger.Error("PrestationRepository:UpdateSessionSync", err)
		return err
	}
	return nil
}

func insertSessions(ctx context.Context, tx *sqlx.Tx, prestationID uuid.UUID, sessions []entity.SessionPrestation) ([]entity.SessionPrestation, error) {
	query := `
		INSERT INTO sessions_prestation (prestation_id, date_debut, date_fin, duree_heures, journee_complete, ordre)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + sessionColumns

	inserted := make([]entity.SessionPrestation, 0, len(sessions))
	for i, s := range sessions {
		var created entity.SessionPrestation
		err := tx.GetContext(ctx, &created, query,
			prestationID, s.DateDebut, s.DateFin, s.DureeHeures, s.JourneeComplete, i)
		if err != nil {
			return nil, err
		}
		inserted = append(inserted, created)
	}
	return inserted, nil
}

func mirrorFirstSession(prestation *entity.Prestation, sessions []entity.SessionPrestation) {
	if len(sessions) == 0 {
		return
	}
	first := sessions[0]
	prestation.DateDebut = first.DateDebut
	prestation.DateFin = first.DateFin
	prestation.DureeHeures = first.DureeHeures
	prestation.JourneeEntiere = first.JourneeComplete
}
