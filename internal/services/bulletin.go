package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"thecommons/internal/domain"
)

type bulletinService struct {
	townRepo       domain.TownRepository
	bulletinRepo   domain.BulletinRepository
	contextTimeout time.Duration
}

// NewBulletinService returns a BulletinService backed by the given repositories.
func NewBulletinService(townRepo domain.TownRepository, bulletinRepo domain.BulletinRepository, timeout time.Duration) domain.BulletinService {
	return &bulletinService{
		townRepo:       townRepo,
		bulletinRepo:   bulletinRepo,
		contextTimeout: timeout,
	}
}

func (s *bulletinService) ListPosts(ctx context.Context, townSlug string, params domain.PaginationParams) ([]*domain.BulletinPost, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	town, err := activeTown(ctx, s.townRepo, townSlug)
	if err != nil {
		return nil, 0, err
	}
	posts, total, err := s.bulletinRepo.ListByTownID(ctx, town.ID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	if posts == nil {
		posts = []*domain.BulletinPost{}
	}
	return posts, total, nil
}

func (s *bulletinService) CreatePost(ctx context.Context, townSlug string, post *domain.BulletinPost) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	post.Title = strings.TrimSpace(post.Title)
	post.Content = strings.TrimSpace(post.Content)
	post.OrgName = strings.TrimSpace(post.OrgName)
	post.SubmitterName = strings.TrimSpace(post.SubmitterName)
	if post.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if post.Content == "" {
		return fmt.Errorf("%w: content is required", domain.ErrValidation)
	}

	town, err := activeTown(ctx, s.townRepo, townSlug)
	if err != nil {
		return err
	}
	post.TownID = town.ID
	if err := s.bulletinRepo.Create(ctx, post); err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}
