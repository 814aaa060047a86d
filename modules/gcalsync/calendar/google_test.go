package calendar

import (
	"context"
	"fmt"
	"testing"
	"time"

	apperrors "gestion-api/core/errors"

	"google.golang.org/api/googleapi"
)

func TestToGoogleEventTimed(t *testing.T) {
	start := time.Date(2026, time.September, 10, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.September, 10, 12, 30, 0, 0, time.UTC)
	spec := &EventSpec{
		Title:        "Intervention",
		Description:  "desc",
		Window:       TimedWindow(start, end, "Europe/Paris"),
		Transparency: "opaque",
		Visibility:   "private",
		Reminders: []Reminder{
			{Method: "popup", Minutes: 840},
			{Method: "popup", Minutes: 120},
		},
	}

	ev := toGoogleEvent(spec)

	if ev.Summary != "Intervention" || ev.Description != "desc" {
		t.Errorf("summary/description = %q/%q", ev.Summary, ev.Description)
	}
	if ev.Start.DateTime != "2026-09-10T09:00:00" || ev.Start.TimeZone != "Europe/Paris" {
		t.Errorf("start = %+v", ev.Start)
	}
	if ev.End.DateTime != "2026-09-10T12:30:00" {
		t.Errorf("end = %+v", ev.End)
	}
	if ev.Start.Date != "" {
		t.Error("timed events must not carry a date-only start")
	}
	if ev.Transparency != "opaque" || ev.Visibility != "private" {
		t.Errorf("transparency/visibility = %q/%q", ev.Transparency, ev.Visibility)
	}

	if ev.Reminders.UseDefault {
		t.Error("reminder overrides must disable calendar defaults")
	}
	if len(ev.Reminders.ForceSendFields) != 1 || ev.Reminders.ForceSendFields[0] != "UseDefault" {
		t.Errorf("ForceSendFields = %v", ev.Reminders.ForceSendFields)
	}
	if len(ev.Reminders.Overrides) != 2 || ev.Reminders.Overrides[0].Minutes != 840 {
		t.Errorf("overrides = %+v", ev.Reminders.Overrides)
	}
}

func TestToGoogleEventDateOnly(t *testing.T) {
	start := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC)
	spec := &EventSpec{
		Title:   "Blocage",
		Window:  DateOnlyWindow(start, end),
		ColorID: "11",
	}

	ev := toGoogleEvent(spec)

	if ev.Start.Date != "2026-09-10" {
		t.Errorf("start date = %q", ev.Start.Date)
	}
	// Google treats the end date as exclusive; the inclusive window must be
	// extended by one day on the wire.
	if ev.End.Date != "2026-09-13" {
		t.Errorf("end date = %q, want 2026-09-13", ev.End.Date)
	}
	if ev.Start.DateTime != "" {
		t.Error("date-only events must not carry a timed start")
	}
	if ev.ColorId != "11" {
		t.Errorf("color = %q", ev.ColorId)
	}
	if len(ev.Reminders.Overrides) != 0 {
		t.Errorf("no override expected, got %+v", ev.Reminders.Overrides)
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"app error with event code", apperrors.NewAppError(apperrors.ErrEventNotFound, "gone", nil), true},
		{"googleapi 404", &googleapi.Error{Code: 404}, true},
		{"wrapped googleapi 404", fmt.Errorf("call failed: %w", &googleapi.Error{Code: 404}), true},
		{"googleapi 403", &googleapi.Error{Code: 403}, false},
		{"other app error", apperrors.NewAppError(apperrors.ErrCalendarUnavailable, "down", nil), false},
		{"plain error", fmt.Errorf("boom"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.want {
				t.Errorf("IsNotFound = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"rate limited", &googleapi.Error{Code: 429}, true},
		{"server error", &googleapi.Error{Code: 503}, true},
		{"bad request", &googleapi.Error{Code: 400}, false},
		{"not found", &googleapi.Error{Code: 404}, false},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"wrapped deadline", fmt.Errorf("op: %w", context.DeadlineExceeded), true},
		{"cancellation", context.Canceled, false},
		{"plain error", fmt.Errorf("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.want {
				t.Errorf("IsTransient = %v, want %v", got, tt.want)
			}
		})
	}
}
