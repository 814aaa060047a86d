package service

import (
	"time"

	"gestion-api/modules/gcalsync/calendar"
)

const (
	eveningReminderHour = 19
	morningReminderHour = 7
	// Full-day sessions have no meaningful wall-clock start; reminders are
	// anchored on 08:00 of the start date.
	dateOnlyPivotHour = 8

	// Provider cap on advance notice: 28 days.
	maxEveningOffsetMinutes = 40320
	// Same-day reminder must stay within 24h.
	maxMorningOffsetMinutes = 1440
	// Per-day events of a multi-day range use a tighter 7-day cap on the
	// evening-before reminder. Intentional asymmetry with the single-event
	// path, kept as observed behavior.
	maxPerDayEveningOffsetMinutes = 10080
)

// ComputeReminders returns the popup reminders for an event starting at
// start: one the evening before at 19:00, one the same day at 07:00. Each is
// included only when its offset is strictly positive and under the provider
// cap. dateOnly pivots the start to 08:00 on the start date first.
func ComputeReminders(start time.Time, dateOnly bool) []calendar.Reminder {
	if dateOnly {
		start = atHour(start, dateOnlyPivotHour)
	}
	return reminderPair(start, maxEveningOffsetMinutes)
}

// ComputeDayReminders returns the reminder pair for one day of a multi-day
// full-day session, anchored on that day's 08:00 start.
func ComputeDayReminders(day time.Time) []calendar.Reminder {
	return reminderPair(atHour(day, dateOnlyPivotHour), maxPerDayEveningOffsetMinutes)
}

// EveningReminder returns only the evening-before reminder, used for
// unavailability periods where a morning popup would be noise.
func EveningReminder(start time.Time, dateOnly bool) []calendar.Reminder {
	if dateOnly {
		start = atHour(start, dateOnlyPivotHour)
	}
	evening := atHour(start, eveningReminderHour).AddDate(0, 0, -1)
	if m := minutesUntil(evening, start); m > 0 && m < maxEveningOffsetMinutes {
		return []calendar.Reminder{{Method: "popup", Minutes: m}}
	}
	return nil
}

// reminderPair builds the evening-before then same-day reminders, in that
// order, without duplicate offsets.
func reminderPair(start time.Time, eveningCap int) []calendar.Reminder {
	var reminders []calendar.Reminder

	evening := atHour(start, eveningReminderHour).AddDate(0, 0, -1)
	if m := minutesUntil(evening, start); m > 0 && m < eveningCap {
		reminders = appendReminder(reminders, m)
	}

	morning := atHour(start, morningReminderHour)
	if m := minutesUntil(morning, start); m > 0 && m < maxMorningOffsetMinutes {
		reminders = appendReminder(reminders, m)
	}

	return reminders
}

func appendReminder(list []calendar.Reminder, minutes int) []calendar.Reminder {
	for _, r := range list {
		if r.Minutes == minutes {
			return list
		}
	}
	return append(list, calendar.Reminder{Method: "popup", Minutes: minutes})
}

func minutesUntil(from, to time.Time) int {
	return int(to.Sub(from) / time.Minute)
}

// atHour returns t's calendar day at the given whole hour.
func atHour(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
}
