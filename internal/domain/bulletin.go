package domain

import (
	"context"
	"time"
)

// BulletinPost is a community notice pinned to a town's bulletin board.
// swagger:model BulletinPost
type BulletinPost struct {
	ID            string    `json:"id"`
	TownID        string    `json:"town_id"`
	Title         string    `json:"title"`
	OrgName       string    `json:"org_name,omitempty"`
	SubmitterName string    `json:"submitter_name,omitempty"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewBulletinPost returns a new BulletinPost. ID and CreatedAt are set by the repository on create.
func NewBulletinPost(townID, title, orgName, submitterName, content string) *BulletinPost {
	return &BulletinPost{
		TownID:        townID,
		Title:         title,
		OrgName:       orgName,
		SubmitterName: submitterName,
		Content:       content,
	}
}

// BulletinRepository defines storage for bulletin board posts.
type BulletinRepository interface {
	Create(ctx context.Context, post *BulletinPost) error
	// ListByTownID returns one page of posts, newest first, and the total count.
	ListByTownID(ctx context.Context, townID string, params PaginationParams) ([]*BulletinPost, int, error)
}

// BulletinService lists and accepts bulletin board posts.
type BulletinService interface {
	ListPosts(ctx context.Context, townSlug string, params PaginationParams) ([]*BulletinPost, int, error)
	CreatePost(ctx context.Context, townSlug string, post *BulletinPost) error
}
