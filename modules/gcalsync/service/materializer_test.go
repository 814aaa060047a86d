package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	cliententity "gestion-api/modules/client/entity"
	"gestion-api/modules/gcalsync/calendar"
	prestationentity "gestion-api/modules/prestation/entity"
)

func strPtr(s string) *string { return &s }

func testClient() *cliententity.Client {
	return &cliententity.Client{
		Nom:       "Dupont",
		Prenom:    strPtr("Marie"),
		Telephone: strPtr("06 12 34 56 78"),
		Email:     strPtr("marie@example.com"),
	}
}

func testPrestation() *prestationentity.Prestation {
	return &prestationentity.Prestation{
		Titre:          "Formation incendie",
		TypePrestation: strPtr("Formation"),
	}
}

func TestEventTitle(t *testing.T) {
	if got := EventTitle(testPrestation(), testClient()); got != "👤 Marie Dupont - Formation incendie" {
		t.Errorf("EventTitle = %q", got)
	}

	noPrenom := testClient()
	noPrenom.Prenom = nil
	if got := EventTitle(testPrestation(), noPrenom); got != "👤 Dupont - Formation incendie" {
		t.Errorf("EventTitle without prenom = %q", got)
	}
}

func TestSessionTitle(t *testing.T) {
	if got := SessionTitle("base", 0, 1); got != "base" {
		t.Errorf("single session must have no suffix, got %q", got)
	}
	if got := SessionTitle("base", 1, 3); got != "base (Session 2/3)" {
		t.Errorf("SessionTitle = %q", got)
	}
}

func TestEventDescription(t *testing.T) {
	p := testPrestation()
	p.Demandeur = strPtr("M. Martin")
	p.AdressePrestation = strPtr("12 rue des Lilas")
	p.CodePostalPrestation = strPtr("69001")
	p.VillePrestation = strPtr("Lyon")
	p.Description = strPtr("Groupe de 8 personnes")

	got := EventDescription(p, testClient())
	want := strings.Join([]string{
		"Type: Formation",
		"Client: Marie Dupont",
		"Tél: 06 12 34 56 78",
		"Email: marie@example.com",
		"Demandeur: M. Martin",
		"Adresse: 12 rue des Lilas, 69001 Lyon",
		"\nGroupe de 8 personnes",
	}, "\n")
	if got != want {
		t.Errorf("EventDescription = %q, want %q", got, want)
	}

	minimal := EventDescription(testPrestation(), &cliententity.Client{Nom: "Durand"})
	if minimal != "Type: Formation\nClient: Durand" {
		t.Errorf("minimal description = %q", minimal)
	}
}

func TestMaterializeTimedSession(t *testing.T) {
	end := dt(2026, time.September, 10, 12, 0)
	session := &prestationentity.SessionPrestation{
		DateDebut: dt(2026, time.September, 10, 9, 0),
		DateFin:   &end,
	}

	specs := MaterializeSession(session, "titre", "desc", "Europe/Paris")
	if len(specs) != 1 {
		t.Fatalf("got %d specs, want 1", len(specs))
	}

	spec := specs[0]
	if spec.Window.Kind != calendar.WindowTimed {
		t.Error("expected a timed window")
	}
	if !spec.Window.Start.Equal(session.DateDebut) || !spec.Window.End.Equal(end) {
		t.Errorf("window %v-%v", spec.Window.Start, spec.Window.End)
	}
	if spec.Window.Timezone != "Europe/Paris" {
		t.Errorf("timezone = %q", spec.Window.Timezone)
	}
	if spec.Transparency != "opaque" {
		t.Errorf("transparency = %q", spec.Transparency)
	}
	if got := minutesOf(spec.Reminders); !equalInts(got, []int{840, 120}) {
		t.Errorf("reminders = %v", got)
	}
}

func TestMaterializeTimedSessionDurationFallback(t *testing.T) {
	hours := 2.5
	session := &prestationentity.SessionPrestation{
		DateDebut:   dt(2026, time.September, 10, 14, 0),
		DureeHeures: &hours,
	}

	specs := MaterializeSession(session, "titre", "desc", "Europe/Paris")
	if want := dt(2026, time.September, 10, 16, 30); !specs[0].Window.End.Equal(want) {
		t.Errorf("end = %v, want %v", specs[0].Window.End, want)
	}

	// No end, no duration: one hour.
	session = &prestationentity.SessionPrestation{DateDebut: dt(2026, time.September, 10, 14, 0)}
	specs = MaterializeSession(session, "titre", "desc", "Europe/Paris")
	if want := dt(2026, time.September, 10, 15, 0); !specs[0].Window.End.Equal(want) {
		t.Errorf("default end = %v, want %v", specs[0].Window.End, want)
	}
}

func TestMaterializeFullDaySingleDay(t *testing.T) {
	end := dt(2026, time.September, 10, 17, 0)
	session := &prestationentity.SessionPrestation{
		DateDebut:       dt(2026, time.September, 10, 9, 0),
		DateFin:         &end,
		JourneeComplete: true,
	}

	specs := MaterializeSession(session, "titre", "desc", "Europe/Paris")
	if len(specs) != 1 {
		t.Fatalf("got %d specs, want 1", len(specs))
	}

	spec := specs[0]
	if spec.Title != "titre" {
		t.Errorf("single day must have no Jour suffix, got %q", spec.Title)
	}
	if !spec.Window.Start.Equal(dt(2026, time.September, 10, 8, 0)) ||
		!spec.Window.End.Equal(dt(2026, time.September, 10, 20, 0)) {
		t.Errorf("window %v-%v, want 08:00-20:00", spec.Window.Start, spec.Window.End)
	}
	if got := minutesOf(spec.Reminders); !equalInts(got, []int{780, 60}) {
		t.Errorf("reminders = %v", got)
	}
}

func TestMaterializeFullDayMultiDay(t *testing.T) {
	end := dt(2026, time.September, 12, 17, 0)
	session := &prestationentity.SessionPrestation{
		DateDebut:       dt(2026, time.September, 10, 9, 0),
		DateFin:         &end,
		JourneeComplete: true,
	}

	specs := MaterializeSession(session, "titre", "desc", "Europe/Paris")
	if len(specs) != 3 {
		t.Fatalf("got %d specs, want 3", len(specs))
	}

	for k, spec := range specs {
		wantTitle := fmt.Sprintf("titre (Jour %d/3)", k+1)
		if spec.Title != wantTitle {
			t.Errorf("spec %d title = %q, want %q", k, spec.Title, wantTitle)
		}
		day := dt(2026, time.September, 10+k, 0, 0)
		if !spec.Window.Start.Equal(day.Add(8*time.Hour)) || !spec.Window.End.Equal(day.Add(20*time.Hour)) {
			t.Errorf("spec %d window %v-%v", k, spec.Window.Start, spec.Window.End)
		}
		if got := minutesOf(spec.Reminders); !equalInts(got, []int{780, 60}) {
			t.Errorf("spec %d reminders = %v", k, got)
		}
	}
}

func TestBlockingSpec(t *testing.T) {
	end := dt(2026, time.September, 10, 12, 0)
	timed := &prestationentity.SessionPrestation{
		DateDebut: dt(2026, time.September, 10, 9, 0),
		DateFin:   &end,
	}

	spec := BlockingSpec(timed, "Dupont", "Europe/Paris")
	if spec.Title != "🚫 Indisponible" {
		t.Errorf("title = %q", spec.Title)
	}
	if spec.Description != "Occupé : Dupont" {
		t.Errorf("description = %q", spec.Description)
	}
	if spec.Visibility != "private" || spec.Transparency != "opaque" {
		t.Errorf("visibility/transparency = %q/%q", spec.Visibility, spec.Transparency)
	}
	if spec.Window.Kind != calendar.WindowTimed {
		t.Error("timed session must block a timed window")
	}
	if len(spec.Reminders) != 0 {
		t.Errorf("blocking events carry no reminders, got %v", spec.Reminders)
	}

	fullDayEnd := dt(2026, time.September, 12, 0, 0)
	fullDay := &prestationentity.SessionPrestation{
		DateDebut:       dt(2026, time.September, 10, 9, 0),
		DateFin:         &fullDayEnd,
		JourneeComplete: true,
	}
	spec = BlockingSpec(fullDay, "Dupont", "Europe/Paris")
	if spec.Window.Kind != calendar.WindowDateOnly {
		t.Error("full-day session must block a date-only window")
	}
	if !spec.Window.Start.Equal(dt(2026, time.September, 10, 0, 0)) ||
		!spec.Window.End.Equal(dt(2026, time.September, 12, 0, 0)) {
		t.Errorf("window %v-%v", spec.Window.Start, spec.Window.End)
	}
}
