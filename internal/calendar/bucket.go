package calendar

import (
	"time"

	"thecommons/internal/domain"
)

// Bucketize partitions events into this week, next week and later relative to now.
// Events before the current week and events without a valid start land in Later.
// Input order is kept within each bucket; callers sort beforehand if they need to.
// Nil entries are ignored.
func Bucketize(now time.Time, events []*domain.Event) domain.EventBuckets {
	thisWeek := WeekOf(now)
	nextWeek := thisWeek.Next()

	b := domain.EventBuckets{
		ThisWeek: []*domain.Event{},
		NextWeek: []*domain.Event{},
		Later:    []*domain.Event{},
	}
	for _, ev := range events {
		if ev == nil {
			continue
		}
		switch {
		case !ev.HasValidStart():
			b.Later = append(b.Later, ev)
		case thisWeek.Contains(ev.StartTime):
			b.ThisWeek = append(b.ThisWeek, ev)
		case nextWeek.Contains(ev.StartTime):
			b.NextWeek = append(b.NextWeek, ev)
		default:
			b.Later = append(b.Later, ev)
		}
	}
	return b
}
