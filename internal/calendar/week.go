// Package calendar provides the week and day arithmetic shared by the
// repositories and the session state. Weeks start on Monday; day
// boundaries follow the local time zone.
package calendar

import "time"

// Week is the 7-day window anchored at its start date. It is derived
// entirely from Start and never persisted.
type Week struct {
	Start time.Time   `json:"start"`
	Days  []time.Time `json:"days"`
}

func NewWeek(start time.Time) Week {
	return Week{Start: start, Days: WeekDays(start)}
}

// WeekOf returns the week containing t.
func WeekOf(t time.Time) Week {
	return NewWeek(WeekStart(t))
}

// WeekStart returns local midnight of the Monday of the week
// containing t. Every date within one week maps to the same start.
func WeekStart(t time.Time) time.Time {
	day := StartOfDay(t)
	// time.Weekday puts Sunday at 0; shift so Monday is 0.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// WeekDays returns the 7 dates of the week beginning at start.
func WeekDays(start time.Time) []time.Time {
	days := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, start.AddDate(0, 0, i))
	}
	return days
}

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// DayInterval returns the half-open [start, end) bounds of the local
// calendar day containing t. A record one second before local
// midnight and one a second after belong to different days.
func DayInterval(t time.Time) (start, end time.Time) {
	start = StartOfDay(t)
	return start, start.AddDate(0, 0, 1)
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}
