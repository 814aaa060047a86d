package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Prestation is a bookable unit of client work (formation, service, audit),
// possibly spanning several sessions on non-consecutive dates.
type Prestation struct {
	ID             uuid.UUID `db:"id" json:"id"`
	ClientID       uuid.UUID `db:"client_id" json:"client_id"`
	Titre          string    `db:"titre" json:"titre"`
	Description    *string   `db:"description" json:"description,omitempty"`
	TypePrestation *string   `db:"type_prestation" json:"type_prestation,omitempty"`
	Demandeur      *string   `db:"demandeur" json:"demandeur,omitempty"`

	AdressePrestation    *string `db:"adresse_prestation" json:"adresse_prestation,omitempty"`
	CodePostalPrestation *string `db:"code_postal_prestation" json:"code_postal_prestation,omitempty"`
	VillePrestation      *string `db:"ville_prestation" json:"ville_prestation,omitempty"`

	Statut string `db:"statut" json:"statut"`

	// Legacy denormalized schedule, mirrored from the first session.
	DateDebut      time.Time  `db:"date_debut" json:"date_debut"`
	DateFin        *time.Time `db:"date_fin" json:"date_fin,omitempty"`
	DureeHeures    *float64   `db:"duree_heures" json:"duree_heures,omitempty"`
	JourneeEntiere bool       `db:"journee_entiere" json:"journee_entiere"`

	// Google Calendar sync state.
	CalendrierID *string    `db:"calendrier_id" json:"calendrier_id,omitempty"`
	GcalEventID  *string    `db:"gcal_event_id" json:"gcal_event_id,omitempty"`
	GcalSynced   bool       `db:"gcal_synced" json:"gcal_synced"`
	GcalLastSync *time.Time `db:"gcal_last_sync" json:"gcal_last_sync,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	// Loaded by the repository, not a column.
	Sessions []SessionPrestation `db:"-" json:"sessions,omitempty"`
}

// SessionPrestation is one concrete scheduled occurrence of a prestation.
type SessionPrestation struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	PrestationID uuid.UUID  `db:"prestation_id" json:"prestation_id"`
	DateDebut    time.Time  `db:"date_debut" json:"date_debut"`
	DateFin      *time.Time `db:"date_fin" json:"date_fin,omitempty"`
	DureeHeures  *float64   `db:"duree_heures" json:"duree_heures,omitempty"`
	// Whole calendar day(s) regardless of the stored wall-clock times.
	JourneeComplete bool    `db:"journee_complete" json:"journee_complete"`
	Ordre           int     `db:"ordre" json:"ordre"`
	GcalEventID     *string `db:"gcal_event_id" json:"gcal_event_id,omitempty"`
	// Multi-day series keep every per-day event id here, JSON-encoded;
	// gcal_event_id then holds the first of the series.
	GcalEventIDs *string   `db:"gcal_event_ids" json:"gcal_event_ids,omitempty"`
	GcalSynced   bool      `db:"gcal_synced" json:"gcal_synced"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// EventIDList returns every calendar event id tracked by the session: the
// full per-day series when one is stored, otherwise the single event id.
func (s *SessionPrestation) EventIDList() []string {
	if s.GcalEventIDs != nil && *s.GcalEventIDs != "" {
		var ids []string
		if err := json.Unmarshal([]byte(*s.GcalEventIDs), &ids); err == nil && len(ids) > 0 {
			return ids
		}
	}
	if s.GcalEventID != nil && *s.GcalEventID != "" {
		return []string{*s.GcalEventID}
	}
	return nil
}

// EncodeEventIDs packs a series id list for storage. Single events live in
// the plain gcal_event_id column, so fewer than two ids encode to nil.
func EncodeEventIDs(ids []string) *string {
	if len(ids) < 2 {
		return nil
	}
	encoded, err := json.Marshal(ids)
	if err != nil {
		return nil
	}
	packed := string(encoded)
	return &packed
}

// EffectiveEnd resolves the session end: explicit end, start plus duration,
// else start plus one hour.
func (s *SessionPrestation) EffectiveEnd() time.Time {
	if s.DateFin != nil {
		return *s.DateFin
	}
	hours := 1.0
	if s.DureeHeures != nil && *s.DureeHeures > 0 {
		hours = *s.DureeHeures
	}
	return s.DateDebut.Add(time.Duration(hours * float64(time.Hour)))
}
