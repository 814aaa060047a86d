package calendar

import (
	"context"
	"errors"
	"net"
	"time"

	apperrors "gestion-api/core/errors"

	"google.golang.org/api/googleapi"
)

// CalendarInfo describes one calendar visible to the authenticated account.
type CalendarInfo struct {
	ID          string `json:"id"`
	Summary     string `json:"summary"`
	Description string `json:"description,omitempty"`
}

// Reminder is a popup notification sent N minutes before the event start.
type Reminder struct {
	Method  string `json:"method"`
	Minutes int    `json:"minutes"`
}

type WindowKind int

const (
	// WindowTimed is a wall-clock window qualified by an IANA timezone.
	WindowTimed WindowKind = iota
	// WindowDateOnly is an inclusive date range covering whole days.
	WindowDateOnly
)

// Window is the scheduling extent of an event. Exactly one interpretation
// applies depending on Kind; for WindowDateOnly the End date is inclusive
// (provider-specific exclusive-end conventions are handled by the client
// implementation).
type Window struct {
	Kind     WindowKind
	Start    time.Time
	End      time.Time
	Timezone string
}

func TimedWindow(start, end time.Time, timezone string) Window {
	return Window{Kind: WindowTimed, Start: start, End: end, Timezone: timezone}
}

func DateOnlyWindow(start, end time.Time) Window {
	return Window{Kind: WindowDateOnly, Start: start, End: end}
}

// EventSpec is everything needed to create or replace one calendar event.
type EventSpec struct {
	Title        string
	Description  string
	Window       Window
	Transparency string
	Visibility   string
	ColorID      string
	Reminders    []Reminder
}

// Client is the calendar capability consumed by the sync subsystem.
type Client interface {
	ListCalendars(ctx context.Context) ([]CalendarInfo, error)
	CreateEvent(ctx context.Context, calendarID string, spec *EventSpec) (string, error)
	// UpdateEvent fails with an EVENT_NOT_FOUND error when the event no
	// longer exists on the calendar.
	UpdateEvent(ctx context.Context, calendarID, eventID string, spec *EventSpec) (string, error)
	// DeleteEvent treats an already-deleted event as success.
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// Factory lazily obtains an authenticated Client. Obtaining the client can
// fail independently of any individual call (expired token, missing
// credentials), which callers surface as CALENDAR_UNAVAILABLE.
type Factory func(ctx context.Context) (Client, error)

// IsNotFound reports whether err means the targeted event no longer exists.
func IsNotFound(err error) bool {
	var ae *apperrors.AppError
	if errors.As(err, &ae) && ae.Code == apperrors.ErrEventNotFound {
		return true
	}
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && gerr.Code == 404
}

// IsTransient reports whether err is worth retrying: provider 5xx/429,
// network timeouts and cancelled deadlines.
func IsTransient(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == 429 || gerr.Code >= 500
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
