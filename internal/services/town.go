package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"thecommons/internal/domain"
	"thecommons/internal/textutil"
)

type townService struct {
	regionRepo     domain.RegionRepository
	townRepo       domain.TownRepository
	contextTimeout time.Duration
}

// NewTownService returns a TownService backed by the given repositories.
func NewTownService(regionRepo domain.RegionRepository, townRepo domain.TownRepository, timeout time.Duration) domain.TownService {
	return &townService{
		regionRepo:     regionRepo,
		townRepo:       townRepo,
		contextTimeout: timeout,
	}
}

func (s *townService) ListRegionTowns(ctx context.Context, regionSlug string) (*domain.Region, []*domain.TownCard, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	region, err := s.regionRepo.GetBySlug(ctx, regionSlug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("get region: %w", err)
	}
	towns, err := s.townRepo.ListByRegionID(ctx, region.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("list towns: %w", err)
	}

	cards := make([]*domain.TownCard, 0, len(towns))
	for _, t := range towns {
		if !t.Status.Visible() {
			continue
		}
		cards = append(cards, &domain.TownCard{
			ID:          t.ID,
			Name:        t.Name,
			Slug:        t.Slug,
			Description: textutil.TruncateCard(t.Description),
			Status:      t.Status,
			Interactive: t.Status.Interactive(),
			ComingSoon:  t.Status == domain.TownPassive,
		})
	}
	return region, cards, nil
}

func (s *townService) GetTown(ctx context.Context, slug string) (*domain.Town, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	town, err := s.townRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get town: %w", err)
	}
	if !town.Status.Visible() {
		return nil, domain.ErrNotFound
	}
	return town, nil
}

// activeTown resolves a town whose pages can be opened. Hidden towns are
// reported as not found and passive towns as inactive.
func activeTown(ctx context.Context, repo domain.TownRepository, slug string) (*domain.Town, error) {
	town, err := repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get town: %w", err)
	}
	switch {
	case !town.Status.Visible():
		return nil, domain.ErrNotFound
	case !town.Status.Interactive():
		return nil, domain.ErrTownInactive
	}
	return town, nil
}
