package dto

import (
	"time"

	"gestion-api/modules/prestation/entity"

	"github.com/google/uuid"
)

// SessionRequest is one scheduled occurrence submitted with a prestation.
type SessionRequest struct {
	DateDebut       time.Time  `json:"date_debut"`
	DateFin         *time.Time `json:"date_fin,omitempty"`
	DureeHeures     *float64   `json:"duree_heures,omitempty"`
	JourneeComplete bool       `json:"journee_complete"`
}

// CreatePrestationRequest creates a prestation with its sessions. When no
// sessions are given the legacy date_debut/date_fin fields describe a single
// occurrence.
type CreatePrestationRequest struct {
	ClientID             uuid.UUID        `json:"client_id"`
	Titre                string           `json:"titre"`
	Description          *string          `json:"description,omitempty"`
	TypePrestation       *string          `json:"type_prestation,omitempty"`
	Demandeur            *string          `json:"demandeur,omitempty"`
	AdressePrestation    *string          `json:"adresse_prestation,omitempty"`
	CodePostalPrestation *string          `json:"code_postal_prestation,omitempty"`
	VillePrestation      *string          `json:"ville_prestation,omitempty"`
	CalendrierID         *string          `json:"calendrier_id,omitempty"`
	Sessions             []SessionRequest `json:"sessions,omitempty"`

	DateDebut      *time.Time `json:"date_debut,omitempty"`
	DateFin        *time.Time `json:"date_fin,omitempty"`
	DureeHeures    *float64   `json:"duree_heures,omitempty"`
	JourneeEntiere bool       `json:"journee_entiere"`
}

// UpdatePrestationRequest fully replaces the prestation and its session list.
type UpdatePrestationRequest struct {
	CreatePrestationRequest
	Statut string `json:"statut"`
}

// StatutRequest changes only the lifecycle statut.
type StatutRequest struct {
	Statut string `json:"statut"`
}

// PrestationResponse wraps the stored prestation with the outcome of the
// calendar sync triggered by the operation. Sync failures never fail the
// business operation; they surface here as a warning.
type PrestationResponse struct {
	entity.Prestation
	SyncWarning *string `json:"sync_warning,omitempty"`
}
