package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"thecommons/internal/calendar"
	"thecommons/internal/domain"
	"thecommons/internal/metrics"
)

type eventService struct {
	regionRepo     domain.RegionRepository
	townRepo       domain.TownRepository
	eventRepo      domain.EventRepository
	bulletinRepo   domain.BulletinRepository
	businessRepo   domain.BusinessRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewEventService(regionRepo domain.RegionRepository,
	townRepo domain.TownRepository,
	eventRepo domain.EventRepository,
	bulletinRepo domain.BulletinRepository,
	businessRepo domain.BusinessRepository,
	logger *slog.Logger,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		regionRepo:     regionRepo,
		townRepo:       townRepo,
		eventRepo:      eventRepo,
		bulletinRepo:   bulletinRepo,
		businessRepo:   businessRepo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *eventService) TownEvents(ctx context.Context, townSlug string, now time.Time) (*domain.Town, domain.EventBuckets, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	town, err := activeTown(ctx, s.townRepo, townSlug)
	if err != nil {
		return nil, domain.EventBuckets{}, err
	}
	events, err := s.townEvents(ctx, town.ID)
	if err != nil {
		return nil, domain.EventBuckets{}, err
	}
	return town, calendar.Bucketize(now, events), nil
}

func (s *eventService) UpcomingTownEvents(ctx context.Context, townSlug string, now time.Time) (*domain.Town, []*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	town, err := activeTown(ctx, s.townRepo, townSlug)
	if err != nil {
		return nil, nil, err
	}
	events, err := s.townEvents(ctx, town.ID)
	if err != nil {
		return nil, nil, err
	}
	return town, calendar.Upcoming(events, now), nil
}

func (s *eventService) RegionEvents(ctx context.Context, regionSlug string, criteria domain.EventCriteria, now time.Time) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	region, err := s.regionRepo.GetBySlug(ctx, regionSlug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get region: %w", err)
	}
	towns, err := s.townRepo.ListByRegionID(ctx, region.ID)
	if err != nil {
		return nil, fmt.Errorf("list towns: %w", err)
	}
	townIDs := make([]string, 0, len(towns))
	for _, t := range towns {
		if t.Status.Visible() {
			townIDs = append(townIDs, t.ID)
		}
	}
	events, err := s.eventRepo.ListByTownIDs(ctx, townIDs)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	events = calendar.SortByStart(validEvents(ctx, s.logger, events))
	return calendar.Filter(events, criteria, now), nil
}

func (s *eventService) TownPage(ctx context.Context, townSlug string, now time.Time) (*domain.TownPage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	town, err := activeTown(ctx, s.townRepo, townSlug)
	if err != nil {
		return nil, err
	}

	var (
		events     []*domain.Event
		posts      []*domain.BulletinPost
		businesses []*domain.Business
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = s.townEvents(gctx, town.ID)
		return err
	})
	g.Go(func() error {
		var err error
		posts, _, err = s.bulletinRepo.ListByTownID(gctx, town.ID, domain.PaginationParams{Page: 1, PageSize: domain.BoardPageSize})
		if err != nil {
			return fmt.Errorf("list posts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		businesses, err = s.businessRepo.ListByTownID(gctx, town.ID)
		if err != nil {
			return fmt.Errorf("list businesses: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if posts == nil {
		posts = []*domain.BulletinPost{}
	}
	if businesses == nil {
		businesses = []*domain.Business{}
	}
	return &domain.TownPage{
		Town:       town,
		Events:     calendar.Bucketize(now, events),
		Posts:      posts,
		Businesses: businesses,
	}, nil
}

func (s *eventService) EventByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// townEvents fetches a town's events, drops malformed records and orders the
// rest by start time.
func (s *eventService) townEvents(ctx context.Context, townID string) ([]*domain.Event, error) {
	events, err := s.eventRepo.ListByTownID(ctx, townID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return calendar.SortByStart(validEvents(ctx, s.logger, events)), nil
}

// validEvents keeps the records that can enter grouping and filtering.
func validEvents(ctx context.Context, logger *slog.Logger, events []*domain.Event) []*domain.Event {
	out := make([]*domain.Event, 0, len(events))
	for _, e := range events {
		var reason string
		switch {
		case e == nil:
			reason = "nil"
		case e.ID == "":
			reason = "missing_id"
		case e.TownID == "":
			reason = "missing_town"
		case !e.HasValidStart():
			reason = "invalid_start"
		}
		if reason != "" {
			metrics.EventsDropped.WithLabelValues(reason).Inc()
			if e != nil {
				logger.WarnContext(ctx, "dropping malformed event", "id", e.ID, "town_id", e.TownID, "reason", reason)
			}
			continue
		}
		out = append(out, e)
	}
	return out
}
