package calendar

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"gestion-api/core/config"
	apperrors "gestion-api/core/errors"
	"gestion-api/core/logger"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	callTimeout  = 15 * time.Second
	maxAttempts  = 3
	retryBackoff = 200 * time.Millisecond
)

// GoogleClient implements Client over the Google Calendar v3 API.
type GoogleClient struct {
	svc *gcal.Service
}

// NewGoogleClient builds an authenticated client from the OAuth credentials
// and token files referenced in the configuration. Any failure here means
// the calendar capability is unavailable.
func NewGoogleClient(ctx context.Context, cfg config.GoogleConfig) (*GoogleClient, error) {
	credJSON, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCalendarUnavailable, "fichier credentials.json introuvable", err)
	}

	oauthCfg, err := google.ConfigFromJSON(credJSON, gcal.CalendarScope)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCalendarUnavailable, "credentials.json invalide", err)
	}

	tokJSON, err := os.ReadFile(cfg.TokenFile)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCalendarUnavailable, "token.json introuvable, authentification requise", err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(tokJSON, &tok); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCalendarUnavailable, "token.json invalide", err)
	}

	svc, err := gcal.NewService(ctx, option.WithHTTPClient(oauthCfg.Client(ctx, &tok)))
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCalendarUnavailable, "connexion Google Calendar impossible", err)
	}

	return &GoogleClient{svc: svc}, nil
}

// NewGoogleFactory returns a Factory that re-establishes the client on each
// call, so an expired token surfaces as CALENDAR_UNAVAILABLE at the next
// sync rather than poisoning a cached client.
func NewGoogleFactory(cfg config.GoogleConfig) Factory {
	return func(ctx context.Context) (Client, error) {
		return NewGoogleClient(ctx, cfg)
	}
}

// withRetry runs fn up to maxAttempts times, backing off on transient
// failures. Each attempt is bounded by callTimeout.
func withRetry(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, callTimeout)
		err = fn(callCtx)
		cancel()
		if err == nil || !IsTransient(err) {
			return err
		}
		logger.Warn("GoogleClient:retry", "op", op, "attempt", attempt+1, "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryBackoff << attempt):
		}
	}
	return err
}

func (c *GoogleClient) ListCalendars(ctx context.Context) ([]CalendarInfo, error) {
	var items []*gcal.CalendarListEntry
	err := withRetry(ctx, "ListCalendars", func(ctx context.Context) error {
		list, err := c.svc.CalendarList.List().Context(ctx).Do()
		if err != nil {
			return err
		}
		items = list.Items
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]CalendarInfo, 0, len(items))
	for _, it := range items {
		out = append(out, CalendarInfo{ID: it.Id, Summary: it.Summary, Description: it.Description})
	}
	return out, nil
}

func (c *GoogleClient) CreateEvent(ctx context.Context, calendarID string, spec *EventSpec) (string, error) {
	ev := toGoogleEvent(spec)
	var id string
	err := withRetry(ctx, "CreateEvent", func(ctx context.Context) error {
		created, err := c.svc.Events.Insert(calendarID, ev).Context(ctx).Do()
		if err != nil {
			return err
		}
		id = created.Id
		return nil
	})
	return id, err
}

func (c *GoogleClient) UpdateEvent(ctx context.Context, calendarID, eventID string, spec *EventSpec) (string, error) {
	ev := toGoogleEvent(spec)
	var id string
	err := withRetry(ctx, "UpdateEvent", func(ctx context.Context) error {
		updated, err := c.svc.Events.Update(calendarID, eventID, ev).Context(ctx).Do()
		if err != nil {
			return err
		}
		id = updated.Id
		return nil
	})
	if err != nil && IsNotFound(err) {
		return "", apperrors.NewAppError(apperrors.ErrEventNotFound, "événement introuvable", err)
	}
	return id, err
}

func (c *GoogleClient) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	err := withRetry(ctx, "DeleteEvent", func(ctx context.Context) error {
		return c.svc.Events.Delete(calendarID, eventID).Context(ctx).Do()
	})
	if err != nil && IsNotFound(err) {
		return nil
	}
	return err
}

// toGoogleEvent maps an EventSpec onto the wire representation. Google's
// all-day end date is exclusive, hence the +1 day on date-only windows.
func toGoogleEvent(spec *EventSpec) *gcal.Event {
	ev := &gcal.Event{
		Summary:      spec.Title,
		Description:  spec.Description,
		Transparency: spec.Transparency,
		Visibility:   spec.Visibility,
		ColorId:      spec.ColorID,
	}

	switch spec.Window.Kind {
	case WindowDateOnly:
		ev.Start = &gcal.EventDateTime{Date: spec.Window.Start.Format("2006-01-02")}
		ev.End = &gcal.EventDateTime{Date: spec.Window.End.AddDate(0, 0, 1).Format("2006-01-02")}
	default:
		ev.Start = &gcal.EventDateTime{
			DateTime: spec.Window.Start.Format("2006-01-02T15:04:05"),
			TimeZone: spec.Window.Timezone,
		}
		ev.End = &gcal.EventDateTime{
			DateTime: spec.Window.End.Format("2006-01-02T15:04:05"),
			TimeZone: spec.Window.Timezone,
		}
	}

	overrides := make([]*gcal.EventReminder, 0, len(spec.Reminders))
	for _, r := range spec.Reminders {
		overrides = append(overrides, &gcal.EventReminder{Method: r.Method, Minutes: int64(r.Minutes)})
	}
	ev.Reminders = &gcal.EventReminders{
		UseDefault:      false,
		Overrides:       overrides,
		ForceSendFields: []string{"UseDefault"},
	}

	return ev
}
