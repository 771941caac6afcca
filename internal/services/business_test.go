package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"thecommons/internal/domain"
)

func TestBusinessService_ListBusinesses(t *testing.T) {
	repo := &fakeBusinessRepo{byTown: map[string][]*domain.Business{
		"t-siler": {
			{ID: "b1", Name: "Bean There", TagSlugs: []string{"pet-friendly"}},
			{ID: "b2", Name: "Hardware Co", TagSlugs: []string{}},
			{ID: "b3", Name: "La Tienda", TagSlugs: []string{"spanish-speaking", "pet-friendly"}},
		},
	}}
	svc := NewBusinessService(&fakeTownRepo{towns: testTowns()}, repo, testTimeout)

	tests := []struct {
		name string
		tags []string
		want []string
	}{
		{"no tags", nil, []string{"b1", "b2", "b3"}},
		{"one tag", []string{"spanish-speaking"}, []string{"b3"}},
		{"any of tags", []string{"spanish-speaking", "pet-friendly"}, []string{"b1", "b3"}},
		{"unknown tag", []string{"accessible"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ListBusinesses(context.Background(), "siler-city", tt.tags)
			require.NoError(t, err)
			ids := make([]string, 0, len(got))
			for _, b := range got {
				ids = append(ids, b.ID)
			}
			require.Equal(t, tt.want, ids)
		})
	}

	_, err := svc.ListBusinesses(context.Background(), "goldston", nil)
	require.ErrorIs(t, err, domain.ErrTownInactive)
}
