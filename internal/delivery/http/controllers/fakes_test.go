package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"thecommons/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

var fixedNow = time.Date(2025, time.June, 11, 12, 0, 0, 0, time.FixedZone("EDT", -4*60*60))

func fixedClock() time.Time { return fixedNow }

// envelope mirrors helpers.APIResponse with a typed data field.
type envelope[T any] struct {
	Data  T `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope[T any](t *testing.T, rr *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	return env
}

// fakeTownService implements domain.TownService for handler tests.
type fakeTownService struct {
	region   *domain.Region
	cards    []*domain.TownCard
	town     *domain.Town
	err      error
	lastSlug string
}

func (f *fakeTownService) ListRegionTowns(ctx context.Context, regionSlug string) (*domain.Region, []*domain.TownCard, error) {
	f.lastSlug = regionSlug
	return f.region, f.cards, f.err
}

func (f *fakeTownService) GetTown(ctx context.Context, slug string) (*domain.Town, error) {
	f.lastSlug = slug
	return f.town, f.err
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	town         *domain.Town
	buckets      domain.EventBuckets
	events       []*domain.Event
	page         *domain.TownPage
	event        *domain.Event
	err          error
	lastSlug     string
	lastID       string
	lastCriteria domain.EventCriteria
	lastNow      time.Time
}

func (f *fakeEventService) TownEvents(ctx context.Context, townSlug string, now time.Time) (*domain.Town, domain.EventBuckets, error) {
	f.lastSlug, f.lastNow = townSlug, now
	return f.town, f.buckets, f.err
}

func (f *fakeEventService) RegionEvents(ctx context.Context, regionSlug string, criteria domain.EventCriteria, now time.Time) ([]*domain.Event, error) {
	f.lastSlug, f.lastCriteria, f.lastNow = regionSlug, criteria, now
	return f.events, f.err
}

func (f *fakeEventService) TownPage(ctx context.Context, townSlug string, now time.Time) (*domain.TownPage, error) {
	f.lastSlug, f.lastNow = townSlug, now
	return f.page, f.err
}

func (f *fakeEventService) UpcomingTownEvents(ctx context.Context, townSlug string, now time.Time) (*domain.Town, []*domain.Event, error) {
	f.lastSlug, f.lastNow = townSlug, now
	return f.town, f.events, f.err
}

func (f *fakeEventService) EventByID(ctx context.Context, id string) (*domain.Event, error) {
	f.lastID = id
	return f.event, f.err
}

// fakeBulletinService implements domain.BulletinService for handler tests.
type fakeBulletinService struct {
	posts      []*domain.BulletinPost
	total      int
	err        error
	lastSlug   string
	lastParams domain.PaginationParams
	lastPost   *domain.BulletinPost
}

func (f *fakeBulletinService) ListPosts(ctx context.Context, townSlug string, params domain.PaginationParams) ([]*domain.BulletinPost, int, error) {
	f.lastSlug, f.lastParams = townSlug, params
	return f.posts, f.total, f.err
}

func (f *fakeBulletinService) CreatePost(ctx context.Context, townSlug string, post *domain.BulletinPost) error {
	f.lastSlug, f.lastPost = townSlug, post
	if f.err != nil {
		return f.err
	}
	post.ID = "post-1"
	post.TownID = "t-siler"
	return nil
}

// fakeBusinessService implements domain.BusinessService for handler tests.
type fakeBusinessService struct {
	businesses []*domain.Business
	err        error
	lastSlug   string
	lastTags   []string
}

func (f *fakeBusinessService) ListBusinesses(ctx context.Context, townSlug string, tags []string) ([]*domain.Business, error) {
	f.lastSlug, f.lastTags = townSlug, tags
	return f.businesses, f.err
}
