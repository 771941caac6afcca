package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"thecommons/internal/domain"
)

func TestBulletinService_CreatePost(t *testing.T) {
	tests := []struct {
		name      string
		town      string
		post      *domain.BulletinPost
		repoErr   error
		wantErrIs error
	}{
		{"success", "siler-city", domain.NewBulletinPost("", "  Bake sale ", "PTA", "", "Saturday at 9"), nil, nil},
		{"missing title", "siler-city", domain.NewBulletinPost("", "   ", "", "", "Body"), nil, domain.ErrValidation},
		{"missing content", "siler-city", domain.NewBulletinPost("", "Title", "", "", ""), nil, domain.ErrValidation},
		{"passive town", "goldston", domain.NewBulletinPost("", "Title", "", "", "Body"), nil, domain.ErrTownInactive},
		{"unknown town", "nowhere", domain.NewBulletinPost("", "Title", "", "", "Body"), nil, domain.ErrNotFound},
		{"repo error", "siler-city", domain.NewBulletinPost("", "Title", "", "", "Body"), errDB, errDB},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBulletinRepo{createErr: tt.repoErr}
			svc := NewBulletinService(&fakeTownRepo{towns: testTowns()}, repo, testTimeout)

			err := svc.CreatePost(context.Background(), tt.town, tt.post)
			if tt.wantErrIs != nil {
				require.ErrorIs(t, err, tt.wantErrIs)
				require.Empty(t, repo.posts)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "post-1", tt.post.ID)
			require.Equal(t, "t-siler", tt.post.TownID)
			require.Equal(t, "Bake sale", tt.post.Title)
		})
	}
}

func TestBulletinService_ListPosts(t *testing.T) {
	repo := &fakeBulletinRepo{posts: []*domain.BulletinPost{
		{ID: "p1", TownID: "t-siler"},
		{ID: "p2", TownID: "t-pitts"},
	}}
	svc := NewBulletinService(&fakeTownRepo{towns: testTowns()}, repo, testTimeout)
	params := domain.PaginationParams{Page: 2, PageSize: 5}

	posts, total, err := svc.ListPosts(context.Background(), "siler-city", params)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, posts, 1)
	require.Equal(t, params, repo.lastParams)

	posts, _, err = svc.ListPosts(context.Background(), "durham", params)
	require.NoError(t, err)
	require.NotNil(t, posts)
	require.Empty(t, posts)
}
