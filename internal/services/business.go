package services

import (
	"context"
	"fmt"
	"time"

	"thecommons/internal/domain"
)

type businessService struct {
	townRepo       domain.TownRepository
	businessRepo   domain.BusinessRepository
	contextTimeout time.Duration
}

// NewBusinessService returns a BusinessService backed by the given repositories.
func NewBusinessService(townRepo domain.TownRepository, businessRepo domain.BusinessRepository, timeout time.Duration) domain.BusinessService {
	return &businessService{
		townRepo:       townRepo,
		businessRepo:   businessRepo,
		contextTimeout: timeout,
	}
}

// ListBusinesses returns the town's directory. A non-empty tags list keeps only
// businesses carrying at least one of them.
func (s *businessService) ListBusinesses(ctx context.Context, townSlug string, tags []string) ([]*domain.Business, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	town, err := activeTown(ctx, s.townRepo, townSlug)
	if err != nil {
		return nil, err
	}
	businesses, err := s.businessRepo.ListByTownID(ctx, town.ID)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	if len(tags) == 0 {
		return businesses, nil
	}
	want := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		want[t] = struct{}{}
	}
	out := make([]*domain.Business, 0, len(businesses))
	for _, b := range businesses {
		for _, t := range b.TagSlugs {
			if _, ok := want[t]; ok {
				out = append(out, b)
				break
			}
		}
	}
	return out, nil
}
