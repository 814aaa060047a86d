package dto

import (
	"time"

	"gestion-api/modules/indisponibilite/entity"
)

// IndisponibiliteRequest creates an unavailability period. Dates are whole
// calendar days, end inclusive.
type IndisponibiliteRequest struct {
	DateDebut time.Time `json:"date_debut"`
	DateFin   time.Time `json:"date_fin"`
	Motif     string    `json:"motif"`
	Note      *string   `json:"note,omitempty"`
}

// IndisponibiliteResponse reports the saved period and on how many
// calendars the blocking event was created.
type IndisponibiliteResponse struct {
	entity.Indisponibilite
	NbCalendriers int `json:"nb_calendriers"`
}
