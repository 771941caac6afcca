package calendar

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thecommons/internal/domain"
)

func ev(id string, start time.Time) *domain.Event {
	return &domain.Event{ID: id, TownID: "town-a", Title: id, StartTime: start}
}

func ids(events []*domain.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

func TestBucketize_ThisWeekBoundaryScenario(t *testing.T) {
	now := at(2025, time.June, 11, 12, 0) // Wednesday
	events := []*domain.Event{
		ev("sunday-same-week", at(2025, time.June, 8, 10, 0)),
		ev("next-sunday", at(2025, time.June, 15, 10, 0)),
	}

	got := Bucketize(now, events)

	require.Equal(t, []string{"sunday-same-week"}, ids(got.ThisWeek))
	require.Equal(t, []string{"next-sunday"}, ids(got.NextWeek))
	require.Empty(t, got.Later)
}

func TestBucketize_Edges(t *testing.T) {
	now := at(2025, time.June, 11, 12, 0)
	tests := []struct {
		name   string
		start  time.Time
		bucket string
	}{
		{"week start", at(2025, time.June, 8, 0, 0), "this"},
		{"last millisecond of week", time.Date(2025, time.June, 14, 23, 59, 59, 999_000_000, testLoc), "this"},
		{"next week start", at(2025, time.June, 15, 0, 0), "next"},
		{"last millisecond of next week", time.Date(2025, time.June, 21, 23, 59, 59, 999_000_000, testLoc), "next"},
		{"two weeks out", at(2025, time.June, 22, 0, 0), "later"},
		{"past event falls to later", at(2025, time.June, 7, 23, 59), "later"},
		{"malformed start falls to later", time.Time{}, "later"},
		{"other zone same instant", time.Date(2025, time.June, 15, 3, 59, 0, 0, time.UTC), "this"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bucketize(now, []*domain.Event{ev("e", tt.start)})
			var want []*domain.Event
			switch tt.bucket {
			case "this":
				want = got.ThisWeek
			case "next":
				want = got.NextWeek
			default:
				want = got.Later
			}
			require.Len(t, want, 1)
			require.Equal(t, 1, got.Len())
		})
	}
}

func TestBucketize_EmptyInput(t *testing.T) {
	got := Bucketize(at(2025, time.June, 11, 12, 0), nil)
	require.NotNil(t, got.ThisWeek)
	require.NotNil(t, got.NextWeek)
	require.NotNil(t, got.Later)
	require.Zero(t, got.Len())
}

func TestBucketize_PreservesInputOrder(t *testing.T) {
	now := at(2025, time.June, 11, 12, 0)
	events := []*domain.Event{
		ev("c", at(2025, time.June, 13, 9, 0)),
		ev("a", at(2025, time.June, 9, 9, 0)),
		ev("b", at(2025, time.June, 12, 9, 0)),
	}
	got := Bucketize(now, events)
	require.Equal(t, []string{"c", "a", "b"}, ids(got.ThisWeek))
}

func TestBucketize_DoesNotMutateInput(t *testing.T) {
	now := at(2025, time.June, 11, 12, 0)
	events := []*domain.Event{
		ev("x", at(2025, time.June, 30, 9, 0)),
		ev("y", at(2025, time.June, 9, 9, 0)),
	}
	before := *events[0]
	_ = Bucketize(now, events)
	require.Equal(t, []string{"x", "y"}, ids(events))
	require.Equal(t, before, *events[0])
}

func TestBucketize_PartitionIsCompleteAndDisjoint(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	now := at(2025, time.June, 11, 12, 0)
	for round := 0; round < 50; round++ {
		events := randomEvents(r, now, 40)
		got := Bucketize(now, events)

		seen := make(map[string]int)
		for _, bucket := range [][]*domain.Event{got.ThisWeek, got.NextWeek, got.Later} {
			for _, e := range bucket {
				seen[e.ID]++
			}
		}
		require.Len(t, seen, len(events))
		for id, n := range seen {
			assert.Equal(t, 1, n, "event %s in %d buckets", id, n)
		}
	}
}

func randomEvents(r *rand.Rand, now time.Time, n int) []*domain.Event {
	towns := []string{"town-a", "town-b", "town-c"}
	tags := []string{"live-music", "pet-friendly", "free", "nature"}
	out := make([]*domain.Event, 0, n)
	for i := 0; i < n; i++ {
		e := &domain.Event{
			ID:     fmt.Sprintf("ev-%d", i),
			TownID: towns[r.IntN(len(towns))],
			Title:  fmt.Sprintf("Event %d", i),
		}
		if r.IntN(10) > 0 {
			offset := time.Duration(r.IntN(40*24)-10*24) * time.Hour
			e.StartTime = now.Add(offset)
		}
		for _, tag := range tags {
			if r.IntN(3) == 0 {
				e.Tags = append(e.Tags, tag)
			}
		}
		out = append(out, e)
	}
	return out
}
