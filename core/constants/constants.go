package constants

// Context keys
const (
	ContextTokenData = "token_data"
)

// Database pool settings
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Prestation statuses
const (
	StatutPlanifiee = "Planifiée"
	StatutEnCours   = "En cours"
	StatutTerminee  = "Terminée"
	StatutAnnulee   = "Annulée"
)

// Client statuses
const (
	StatutProspect = "Prospect"
	StatutClient   = "Client"
)

// Google Calendar
const (
	DefaultCalendarID = "primary"
	CalendarTimezone  = "Europe/Paris"
)
