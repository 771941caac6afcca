package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"thecommons/internal/domain"
)

func TestBulletinRepository_Create(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		post    *domain.BulletinPost
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name: "success with optional fields empty",
			post: domain.NewBulletinPost("town-1", "Lost cat", "", "", "Grey tabby near the library"),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO bulletin_board_posts \(town_id, title, org_name, submitter_name, content\)`).
					WithArgs("town-1", "Lost cat", sql.NullString{}, sql.NullString{}, "Grey tabby near the library").
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("post-1", created))
			},
			wantID: "post-1",
		},
		{
			name: "db error",
			post: domain.NewBulletinPost("town-1", "Bake sale", "PTA", "Ann", "Saturday"),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO bulletin_board_posts`).WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)

			err = NewBulletinRepository(db).Create(ctx, tt.post)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.post.ID)
			require.True(t, created.Equal(tt.post.CreatedAt))
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBulletinRepository_ListByTownID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bulletin_board_posts WHERE town_id = \$1`).
		WithArgs("town-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(21))
	mock.ExpectQuery(`FROM bulletin_board_posts\s+WHERE town_id = \$1\s+ORDER BY created_at DESC\s+LIMIT \$2 OFFSET \$3`).
		WithArgs("town-1", 20, 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "town_id", "title", "org_name", "submitter_name", "content", "created_at"}).
			AddRow("post-21", "town-1", "Choir practice", "Chorale", nil, nil, created))

	posts, total, err := NewBulletinRepository(db).ListByTownID(context.Background(), "town-1", domain.PaginationParams{Page: 2, PageSize: 20})
	require.NoError(t, err)
	require.Equal(t, 21, total)
	require.Len(t, posts, 1)
	require.Equal(t, "Chorale", posts[0].OrgName)
	require.Empty(t, posts[0].Content)
	require.NoError(t, mock.ExpectationsWereMet())
}
