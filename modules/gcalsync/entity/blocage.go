package entity

import (
	"time"

	"github.com/google/uuid"
)

// Blocage is one "busy" placeholder event created on a single calendar on
// behalf of a prestation, so that other calendars show the slot as taken.
type Blocage struct {
	ID           uuid.UUID `db:"id" json:"id"`
	PrestationID uuid.UUID `db:"prestation_id" json:"prestation_id"`
	CalendarID   string    `db:"calendar_id" json:"calendar_id"`
	EventID      string    `db:"event_id" json:"event_id"`
	CalendarName *string   `db:"calendar_name" json:"calendar_name,omitempty"`
	DateCreation time.Time `db:"date_creation" json:"date_creation"`
}
