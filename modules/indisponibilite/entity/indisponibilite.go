package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Indisponibilite blocks a date range on every professional calendar,
// independently of any prestation. The created event ids are stored as a
// calendar-id to event-id JSON map.
type Indisponibilite struct {
	ID           uuid.UUID `db:"id" json:"id"`
	DateDebut    time.Time `db:"date_debut" json:"date_debut"`
	DateFin      time.Time `db:"date_fin" json:"date_fin"`
	Motif        string    `db:"motif" json:"motif"`
	Note         *string   `db:"note" json:"note,omitempty"`
	GcalEvents   *string   `db:"gcal_events" json:"-"`
	DateCreation time.Time `db:"date_creation" json:"date_creation"`
}

// EventIDs decodes the stored calendar-id to event-id map. An absent or
// unreadable payload yields an empty map.
func (i *Indisponibilite) EventIDs() map[string]string {
	events := map[string]string{}
	if i.GcalEvents == nil || *i.GcalEvents == "" {
		return events
	}
	if err := json.Unmarshal([]byte(*i.GcalEvents), &events); err != nil {
		return map[string]string{}
	}
	return events
}

// SetEventIDs encodes the map back onto the row.
func (i *Indisponibilite) SetEventIDs(events map[string]string) {
	payload, err := json.Marshal(events)
	if err != nil {
		return
	}
	s := string(payload)
	i.GcalEvents = &s
}
