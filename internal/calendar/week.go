// Package calendar groups and filters community events relative to calendar weeks.
//
// Weeks start on Sunday at local midnight, where "local" is the location of the
// reference instant passed by the caller. All functions are pure: they select or
// partition the given events and never modify them.
package calendar

import "time"

// Week is the half-open interval [Start, End) covering seven calendar days.
type Week struct {
	Start time.Time
	End   time.Time
}

// WeekStart returns local midnight of the most recent Sunday on or before t,
// in t's location.
func WeekStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d-int(t.Weekday()), 0, 0, 0, 0, t.Location())
}

// WeekOf returns the week containing t.
func WeekOf(t time.Time) Week {
	start := WeekStart(t)
	return Week{Start: start, End: start.AddDate(0, 0, 7)}
}

// Next returns the week that follows w.
func (w Week) Next() Week {
	return Week{Start: w.End, End: w.End.AddDate(0, 0, 7)}
}

// Contains reports whether t falls within the week.
func (w Week) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// LastDay returns local midnight of the week's final day (Saturday).
func (w Week) LastDay() time.Time {
	return w.End.AddDate(0, 0, -1)
}
