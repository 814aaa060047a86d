package service

import (
	"fmt"
	"strings"
	"time"

	cliententity "gestion-api/modules/client/entity"
	"gestion-api/modules/gcalsync/calendar"
	prestationentity "gestion-api/modules/prestation/entity"
)

// Full-day sessions occupy a timed 08:00-20:00 window instead of an all-day
// event so that custom reminders are honored by the provider.
const (
	fullDayStartHour = 8
	fullDayEndHour   = 20
)

// EventTitle builds the shared title for all of a prestation's events.
func EventTitle(prestation *prestationentity.Prestation, client *cliententity.Client) string {
	return fmt.Sprintf("👤 %s - %s", client.DisplayName(), prestation.Titre)
}

// SessionTitle suffixes the shared title with the session index when the
// prestation has more than one session.
func SessionTitle(title string, index, total int) string {
	if total > 1 {
		return fmt.Sprintf("%s (Session %d/%d)", title, index+1, total)
	}
	return title
}

// EventDescription assembles the event body from the prestation and its
// client: type and client name always, then phone, email, requester and
// address when present, then the free-text description.
func EventDescription(prestation *prestationentity.Prestation, client *cliententity.Client) string {
	parts := []string{
		"Type: " + deref(prestation.TypePrestation),
		"Client: " + client.DisplayName(),
	}
	if client.Telephone != nil && *client.Telephone != "" {
		parts = append(parts, "Tél: "+*client.Telephone)
	}
	if client.Email != nil && *client.Email != "" {
		parts = append(parts, "Email: "+*client.Email)
	}
	if prestation.Demandeur != nil && *prestation.Demandeur != "" {
		parts = append(parts, "Demandeur: "+*prestation.Demandeur)
	}
	if prestation.AdressePrestation != nil && *prestation.AdressePrestation != "" {
		parts = append(parts, fmt.Sprintf("Adresse: %s, %s %s",
			*prestation.AdressePrestation,
			deref(prestation.CodePostalPrestation),
			deref(prestation.VillePrestation)))
	}
	if prestation.Description != nil && *prestation.Description != "" {
		parts = append(parts, "\n"+*prestation.Description)
	}
	return strings.Join(parts, "\n")
}

// MaterializeSession converts one session into its calendar event specs:
//   - timed session: one spec with the session's literal window
//   - full-day, one day: one spec windowed 08:00-20:00 that date
//   - full-day, N days: N specs, one per date, each titled "(Jour k/N)" and
//     carrying its own reminder pair
func MaterializeSession(session *prestationentity.SessionPrestation, title, description, timezone string) []calendar.EventSpec {
	end := session.EffectiveEnd()

	if !session.JourneeComplete {
		return []calendar.EventSpec{{
			Title:        title,
			Description:  description,
			Window:       calendar.TimedWindow(session.DateDebut, end, timezone),
			Transparency: "opaque",
			Reminders:    ComputeReminders(session.DateDebut, false),
		}}
	}

	startDate := dateOf(session.DateDebut)
	endDate := dateOf(end)
	if endDate.Before(startDate) {
		endDate = startDate
	}
	days := int(endDate.Sub(startDate).Hours()/24) + 1

	if days == 1 {
		return []calendar.EventSpec{{
			Title:        title,
			Description:  description,
			Window:       calendar.TimedWindow(atHour(startDate, fullDayStartHour), atHour(startDate, fullDayEndHour), timezone),
			Transparency: "opaque",
			Reminders:    ComputeReminders(session.DateDebut, true),
		}}
	}

	specs := make([]calendar.EventSpec, 0, days)
	for k := 0; k < days; k++ {
		day := startDate.AddDate(0, 0, k)
		specs = append(specs, calendar.EventSpec{
			Title:        fmt.Sprintf("%s (Jour %d/%d)", title, k+1, days),
			Description:  description,
			Window:       calendar.TimedWindow(atHour(day, fullDayStartHour), atHour(day, fullDayEndHour), timezone),
			Transparency: "opaque",
			Reminders:    ComputeDayReminders(day),
		})
	}
	return specs
}

// BlockingSpec builds the busy placeholder mirrored onto non-primary
// calendars for one session. Full-day sessions block the whole date range;
// timed sessions block their exact window.
func BlockingSpec(session *prestationentity.SessionPrestation, clientNom, timezone string) calendar.EventSpec {
	end := session.EffectiveEnd()

	spec := calendar.EventSpec{
		Title:        "🚫 Indisponible",
		Description:  "Occupé : " + clientNom,
		Transparency: "opaque",
		Visibility:   "private",
	}
	if session.JourneeComplete {
		spec.Window = calendar.DateOnlyWindow(dateOf(session.DateDebut), dateOf(end))
	} else {
		spec.Window = calendar.TimedWindow(session.DateDebut, end, timezone)
	}
	return spec
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
