package calendar

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"thecommons/internal/domain"
)

// ParseTimeWindow converts a query value into a TimeWindow. An empty value means TimeAll.
func ParseTimeWindow(s string) (domain.TimeWindow, error) {
	switch w := domain.TimeWindow(strings.ToLower(strings.TrimSpace(s))); w {
	case "":
		return domain.TimeAll, nil
	case domain.TimeAll, domain.TimeWeekday, domain.TimeWeekend, domain.TimeThisWeek, domain.TimeNextWeek:
		return w, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidTimeWindow, s)
	}
}

// Filter returns the events matching every criterion, in their original order.
// Towns and tags match when the set is empty or contains the event's town / any of
// its tags. Events without a valid start never match a time window other than
// TimeAll, and an unrecognised window matches nothing.
func Filter(events []*domain.Event, c domain.EventCriteria, now time.Time) []*domain.Event {
	towns := toSet(c.Towns)
	tags := toSet(c.Tags)
	inWindow := windowPredicate(c.Time, now)

	out := make([]*domain.Event, 0, len(events))
	for _, ev := range events {
		if ev == nil {
			continue
		}
		if len(towns) > 0 {
			if _, ok := towns[ev.TownID]; !ok {
				continue
			}
		}
		if len(tags) > 0 && !ev.HasAnyTag(tags) {
			continue
		}
		if !inWindow(ev) {
			continue
		}
		out = append(out, ev)
	}
	return out
}

func windowPredicate(w domain.TimeWindow, now time.Time) func(*domain.Event) bool {
	loc := now.Location()
	switch w {
	case "", domain.TimeAll:
		return func(*domain.Event) bool { return true }
	case domain.TimeWeekday:
		return func(ev *domain.Event) bool {
			return ev.HasValidStart() && !isWeekend(ev.StartTime.In(loc).Weekday())
		}
	case domain.TimeWeekend:
		return func(ev *domain.Event) bool {
			return ev.HasValidStart() && isWeekend(ev.StartTime.In(loc).Weekday())
		}
	case domain.TimeThisWeek:
		week := WeekOf(now)
		return func(ev *domain.Event) bool {
			return ev.HasValidStart() && week.Contains(ev.StartTime)
		}
	case domain.TimeNextWeek:
		week := WeekOf(now).Next()
		return func(ev *domain.Event) bool {
			return ev.HasValidStart() && week.Contains(ev.StartTime)
		}
	default:
		return func(*domain.Event) bool { return false }
	}
}

func isWeekend(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

// SortByStart returns a copy of events ordered by start time ascending. Events
// without a valid start go last; ties keep their input order.
func SortByStart(events []*domain.Event) []*domain.Event {
	out := slices.Clone(events)
	slices.SortStableFunc(out, func(a, b *domain.Event) int {
		av, bv := a.HasValidStart(), b.HasValidStart()
		switch {
		case !av && !bv:
			return 0
		case !av:
			return 1
		case !bv:
			return -1
		}
		return a.StartTime.Compare(b.StartTime)
	})
	return out
}

// Upcoming returns the events starting on or after local midnight of now's day,
// in their original order.
func Upcoming(events []*domain.Event, now time.Time) []*domain.Event {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	out := make([]*domain.Event, 0, len(events))
	for _, ev := range events {
		if ev != nil && ev.HasValidStart() && !ev.StartTime.Before(today) {
			out = append(out, ev)
		}
	}
	return out
}
