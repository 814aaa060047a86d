package service

import (
	"strings"

	cliententity "gestion-api/modules/client/entity"
	"gestion-api/modules/gcalsync/calendar"
	"gestion-api/modules/gcalsync/entity"
	prestationentity "gestion-api/modules/prestation/entity"
)

// SelectionRule identifies which rule of the calendar priority chain fired.
type SelectionRule string

const (
	RulePrestationCalendar SelectionRule = "prestation_calendrier"
	RuleClientCalendar     SelectionRule = "client_calendrier"
	RulePrincipalCalendar  SelectionRule = "calendrier_principal"
)

// ResolveCalendar decides the primary calendar for a prestation's events.
// Priority: the prestation's own calendar, then the client's dedicated
// calendar, then the configured principal calendar.
func ResolveCalendar(prestation *prestationentity.Prestation, client *cliententity.Client, cfg *entity.SyncConfig) (string, SelectionRule) {
	if prestation != nil && prestation.CalendrierID != nil && *prestation.CalendrierID != "" {
		return *prestation.CalendrierID, RulePrestationCalendar
	}
	if client != nil && client.CalendrierGoogle != nil && *client.CalendrierGoogle != "" {
		return *client.CalendrierGoogle, RuleClientCalendar
	}
	return cfg.PrincipalID(), RulePrincipalCalendar
}

// System and personal calendars that must never carry business events or
// blocking placeholders.
var excludedCalendarKeywords = []string{
	"anniversaire", "anniversaires",
	"jour férié", "jours fériés", "jours feries", "fériés en france",
	"holiday", "holidays", "birthday", "birthdays",
	"task", "tasks", "tâche", "tâches",
	"personnel", "personal",
	"contact", "contacts",
	"week numbers", "numéros de semaine",
	"phases de la lune", "moon phases",
}

// FilterCalendars keeps only professional calendars: system calendars
// (contacts, regional holiday feeds) and calendars whose name or description
// matches the keyword denylist are dropped. personalNames adds the
// operator's own personal calendar names from configuration.
func FilterCalendars(all []calendar.CalendarInfo, personalNames []string) []calendar.CalendarInfo {
	keywords := excludedCalendarKeywords
	if len(personalNames) > 0 {
		keywords = make([]string, 0, len(excludedCalendarKeywords)+len(personalNames))
		keywords = append(keywords, excludedCalendarKeywords...)
		for _, name := range personalNames {
			if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
				keywords = append(keywords, name)
			}
		}
	}

	filtered := make([]calendar.CalendarInfo, 0, len(all))
	for _, cal := range all {
		id := strings.ToLower(cal.ID)

		if strings.Contains(id, "#contacts@") || strings.Contains(id, "addressbook#") {
			continue
		}
		// Regional holiday feeds come in as en.french#holiday@... ids.
		if (strings.HasPrefix(id, "en.") || strings.HasPrefix(id, "fr.")) &&
			(strings.Contains(id, "holiday") || strings.Contains(id, "ferie")) {
			continue
		}

		summary := strings.ToLower(cal.Summary)
		description := strings.ToLower(cal.Description)
		excluded := false
		for _, keyword := range keywords {
			if strings.Contains(summary, keyword) || strings.Contains(description, keyword) {
				excluded = true
				break
			}
		}
		if !excluded {
			filtered = append(filtered, cal)
		}
	}
	return filtered
}
