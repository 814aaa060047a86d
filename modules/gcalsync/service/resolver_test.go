package service

import (
	"testing"

	cliententity "gestion-api/modules/client/entity"
	"gestion-api/modules/gcalsync/calendar"
	"gestion-api/modules/gcalsync/entity"
	prestationentity "gestion-api/modules/prestation/entity"
)

func TestResolveCalendar(t *testing.T) {
	cfg := &entity.SyncConfig{
		CalendrierPrincipal: entity.CalendarRef{ID: "cal-principal", Nom: "Pro"},
	}

	tests := []struct {
		name       string
		prestation *prestationentity.Prestation
		client     *cliententity.Client
		wantID     string
		wantRule   SelectionRule
	}{
		{
			name:       "prestation override wins over everything",
			prestation: &prestationentity.Prestation{CalendrierID: strPtr("cal-override")},
			client:     &cliententity.Client{CalendrierGoogle: strPtr("cal-client")},
			wantID:     "cal-override",
			wantRule:   RulePrestationCalendar,
		},
		{
			name:       "client calendar when no override",
			prestation: &prestationentity.Prestation{},
			client:     &cliententity.Client{CalendrierGoogle: strPtr("cal-client")},
			wantID:     "cal-client",
			wantRule:   RuleClientCalendar,
		},
		{
			name:       "empty override falls through",
			prestation: &prestationentity.Prestation{CalendrierID: strPtr("")},
			client:     &cliententity.Client{CalendrierGoogle: strPtr("cal-client")},
			wantID:     "cal-client",
			wantRule:   RuleClientCalendar,
		},
		{
			name:       "principal fallback",
			prestation: &prestationentity.Prestation{},
			client:     &cliententity.Client{},
			wantID:     "cal-principal",
			wantRule:   RulePrincipalCalendar,
		},
		{
			name:       "nil client still resolves",
			prestation: &prestationentity.Prestation{},
			client:     nil,
			wantID:     "cal-principal",
			wantRule:   RulePrincipalCalendar,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, rule := ResolveCalendar(tt.prestation, tt.client, cfg)
			if id != tt.wantID || rule != tt.wantRule {
				t.Errorf("ResolveCalendar = (%q, %q), want (%q, %q)", id, rule, tt.wantID, tt.wantRule)
			}
		})
	}
}

func TestResolveCalendarDefaultsToPrimary(t *testing.T) {
	id, rule := ResolveCalendar(&prestationentity.Prestation{}, nil, entity.DefaultSyncConfig())
	if id != "primary" || rule != RulePrincipalCalendar {
		t.Errorf("ResolveCalendar = (%q, %q), want (primary, %q)", id, rule, RulePrincipalCalendar)
	}
}

func TestFilterCalendars(t *testing.T) {
	all := []calendar.CalendarInfo{
		{ID: "pro@group.calendar.google.com", Summary: "Prestations"},
		{ID: "cal-2", Summary: "Anniversaires"},
		{ID: "cal-3", Summary: "Agenda", Description: "calendrier personnel"},
		{ID: "cal-4", Summary: "Tasks"},
		{ID: "abc#contacts@group.v.calendar.google.com", Summary: "Contacts"},
		{ID: "addressbook#contacts@group.v.calendar.google.com", Summary: "Carnet"},
		{ID: "fr.french#holiday@group.v.calendar.google.com", Summary: "Jours fériés en France"},
		{ID: "en.uk#holiday@group.v.calendar.google.com", Summary: "Holidays in the UK"},
		{ID: "cal-9", Summary: "Interventions"},
		{ID: "cal-10", Summary: "Sabine"},
	}

	got := FilterCalendars(all, []string{" Sabine "})
	wantIDs := []string{"pro@group.calendar.google.com", "cal-9"}
	if len(got) != len(wantIDs) {
		t.Fatalf("kept %d calendars, want %d: %+v", len(got), len(wantIDs), got)
	}
	for i, cal := range got {
		if cal.ID != wantIDs[i] {
			t.Errorf("kept[%d] = %q, want %q", i, cal.ID, wantIDs[i])
		}
	}
}

func TestFilterCalendarsNoPersonalNames(t *testing.T) {
	all := []calendar.CalendarInfo{
		{ID: "cal-1", Summary: "Sabine"},
		{ID: "cal-2", Summary: "Phases de la Lune"},
	}
	got := FilterCalendars(all, nil)
	if len(got) != 1 || got[0].ID != "cal-1" {
		t.Errorf("FilterCalendars = %+v, want only cal-1", got)
	}
}
