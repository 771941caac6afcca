package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"thecommons/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const testTimeout = 5 * time.Second

var errDB = errors.New("connection reset")

var testLoc = time.FixedZone("EDT", -4*60*60)

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, testLoc)
}

// fakeRegionRepo is an in-memory RegionRepository for tests.
type fakeRegionRepo struct {
	regions []*domain.Region
	err     error
}

func (f *fakeRegionRepo) GetBySlug(ctx context.Context, slug string) (*domain.Region, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.regions {
		if r.Slug == slug {
			return r, nil
		}
	}
	return nil, domain.ErrNotFound
}

// fakeTownRepo is an in-memory TownRepository for tests.
type fakeTownRepo struct {
	towns   []*domain.Town
	err     error
	listErr error
}

func (f *fakeTownRepo) GetBySlug(ctx context.Context, slug string) (*domain.Town, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.towns {
		if t.Slug == slug {
			return t, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeTownRepo) ListByRegionID(ctx context.Context, regionID string) ([]*domain.Town, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.Town
	for _, t := range f.towns {
		if t.RegionID == regionID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTownRepo) ListByStatus(ctx context.Context, status domain.TownStatus) ([]*domain.Town, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.Town
	for _, t := range f.towns {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out, nil
}

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	mu          sync.Mutex
	byTown      map[string][]*domain.Event
	err         error
	lastTownIDs []string
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, events := range f.byTown {
		for _, e := range events {
			if e.ID == id {
				return e, nil
			}
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) ListByTownID(ctx context.Context, townID string) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return slices.Clone(f.byTown[townID]), nil
}

func (f *fakeEventRepo) ListByTownIDs(ctx context.Context, townIDs []string) ([]*domain.Event, error) {
	f.mu.Lock()
	f.lastTownIDs = townIDs
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Event
	for _, id := range townIDs {
		out = append(out, f.byTown[id]...)
	}
	return out, nil
}

// fakeBulletinRepo is an in-memory BulletinRepository for tests.
type fakeBulletinRepo struct {
	posts      []*domain.BulletinPost
	err        error
	createErr  error
	nextID     int
	lastParams domain.PaginationParams
}

func (f *fakeBulletinRepo) Create(ctx context.Context, p *domain.BulletinPost) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	p.ID = fmt.Sprintf("post-%d", f.nextID)
	p.CreatedAt = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	f.posts = append(f.posts, p)
	return nil
}

func (f *fakeBulletinRepo) ListByTownID(ctx context.Context, townID string, params domain.PaginationParams) ([]*domain.BulletinPost, int, error) {
	f.lastParams = params
	if f.err != nil {
		return nil, 0, f.err
	}
	var out []*domain.BulletinPost
	for _, p := range f.posts {
		if p.TownID == townID {
			out = append(out, p)
		}
	}
	return out, len(out), nil
}

// fakeBusinessRepo is an in-memory BusinessRepository for tests.
type fakeBusinessRepo struct {
	byTown map[string][]*domain.Business
	err    error
}

func (f *fakeBusinessRepo) ListByTownID(ctx context.Context, townID string) ([]*domain.Business, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byTown[townID], nil
}

// fakeSubscriberRepo is an in-memory SubscriberRepository for tests.
type fakeSubscriberRepo struct {
	byTown map[string][]*domain.Subscriber
	err    error
}

func (f *fakeSubscriberRepo) ListByTownID(ctx context.Context, townID string, frequency domain.EmailFrequency) ([]*domain.Subscriber, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Subscriber
	for _, s := range f.byTown[townID] {
		if s.Frequency == frequency {
			out = append(out, s)
		}
	}
	return out, nil
}

// fakeEmailService records digests instead of sending them.
type fakeEmailService struct {
	sent    []*domain.WeeklyDigestEmailData
	failFor map[string]bool
}

func (f *fakeEmailService) SendWeeklyDigest(ctx context.Context, data *domain.WeeklyDigestEmailData) error {
	if f.failFor[data.Email] {
		return errors.New("mailbox unavailable")
	}
	f.sent = append(f.sent, data)
	return nil
}

// fakeTagCatalog maps a fixed set of slugs to labels.
type fakeTagCatalog map[string]string

func (f fakeTagCatalog) List() []domain.Tag {
	out := make([]domain.Tag, 0, len(f))
	for id, label := range f {
		out = append(out, domain.Tag{ID: id, Label: label})
	}
	return out
}

func (f fakeTagCatalog) Label(id string) string {
	if l, ok := f[id]; ok {
		return l
	}
	return id
}

func testTowns() []*domain.Town {
	return []*domain.Town{
		{ID: "t-siler", RegionID: "r-chatham", Name: "Siler City", Slug: "siler-city", Description: "A town with a long description", Status: domain.TownActive},
		{ID: "t-pitts", RegionID: "r-chatham", Name: "Pittsboro", Slug: "pittsboro", Status: domain.TownActive},
		{ID: "t-gold", RegionID: "r-chatham", Name: "Goldston", Slug: "goldston", Status: domain.TownPassive},
		{ID: "t-secret", RegionID: "r-chatham", Name: "Secret", Slug: "secret", Status: domain.TownHidden},
		{ID: "t-durham", RegionID: "r-triangle", Name: "Durham", Slug: "durham", Status: domain.TownActive},
	}
}

func testRegions() []*domain.Region {
	return []*domain.Region{
		{ID: "r-chatham", Name: "Chatham County", Slug: "chatham"},
		{ID: "r-triangle", Name: "Triangle", Slug: "triangle"},
	}
}
