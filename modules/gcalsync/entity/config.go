package entity

import (
	"time"

	"gestion-api/core/constants"
)

// CalendrierConfigRow is the single calendrier_config database row; the
// actual settings live in its JSON payload.
type CalendrierConfigRow struct {
	ID              int        `db:"id"`
	ConfigJSON      *string    `db:"config_json"`
	DerniereSynchro *time.Time `db:"derniere_synchro"`
}

// CalendarRef names a calendar in the configuration.
type CalendarRef struct {
	ID  string `json:"id"`
	Nom string `json:"nom"`
}

// SyncConfig is the decoded calendar configuration consumed by the sync
// subsystem. It is always passed explicitly, never read from globals.
type SyncConfig struct {
	CalendrierPrincipal   CalendarRef   `json:"calendrier_principal"`
	CalendriersABloquer   []CalendarRef `json:"calendriers_a_bloquer"`
	CalendriersPersonnels []string      `json:"calendriers_personnels"`
}

// DefaultSyncConfig is used when no configuration row exists yet.
func DefaultSyncConfig() *SyncConfig {
	return &SyncConfig{
		CalendrierPrincipal: CalendarRef{ID: constants.DefaultCalendarID, Nom: "Calendrier principal"},
	}
}

// PrincipalID returns the configured principal calendar id, falling back
// to the provider default sentinel.
func (c *SyncConfig) PrincipalID() string {
	if c == nil || c.CalendrierPrincipal.ID == "" {
		return constants.DefaultCalendarID
	}
	return c.CalendrierPrincipal.ID
}
