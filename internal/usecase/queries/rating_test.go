//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ootd-commerce/internal/usecase/queries"
	queriesmock "ootd-commerce/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRatingQueries_RatingEligibility(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	testCases := []struct {
		name      string
		purchased int64
		rated     int64
		expected  queries.EligibilityView
	}{
		{name: "never purchased", purchased: 0, rated: 0, expected: queries.EligibilityView{}},
		{name: "two lines, one rated", purchased: 2, rated: 1, expected: queries.EligibilityView{Purchased: 2, Rated: 1, Remaining: 1}},
		{name: "all rated", purchased: 1, rated: 1, expected: queries.EligibilityView{Purchased: 1, Rated: 1, Remaining: 0}},
		{name: "rated exceeds purchased clamps to zero", purchased: 1, rated: 3, expected: queries.EligibilityView{Purchased: 1, Rated: 3, Remaining: 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rs := queriesmock.NewMockRatingReadStore(ctrl)
			rs.EXPECT().Eligibility(gomock.Any(), userID, productID).Return(tc.purchased, tc.rated, nil)

			got, err := queries.NewRatingQueries(rs).RatingEligibility(ctx, userID, productID)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, *got)
		})
	}

	t.Run("error: store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockRatingReadStore(ctrl)
		rs.EXPECT().Eligibility(gomock.Any(), userID, productID).Return(int64(0), int64(0), errors.New("boom"))

		_, err := queries.NewRatingQueries(rs).RatingEligibility(ctx, userID, productID)
		assert.Error(t, err)
	})
}

func TestRatingQueries_ListRatings(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	t.Run("last page has no cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockRatingReadStore(ctrl)
		rs.EXPECT().FindByProductFirstPage(gomock.Any(), productID, int32(11)).Return([]*queries.RatingListItem{
			{ID: uuid.New(), Score: 5, CreatedAt: now},
			{ID: uuid.New(), Score: 3, CreatedAt: now.Add(-time.Minute)},
		}, nil)

		page, err := queries.NewRatingQueries(rs).ListRatings(ctx, productID, nil, 10)
		require.NoError(t, err)
		assert.Len(t, page.Items, 2)
		assert.Nil(t, page.NextCursor)
	})

	t.Run("full page hands back a cursor for the last item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockRatingReadStore(ctrl)
		last := &queries.RatingListItem{ID: uuid.New(), Score: 4, CreatedAt: now}
		rs.EXPECT().FindByProductFirstPage(gomock.Any(), productID, int32(2)).
			Return([]*queries.RatingListItem{last, {ID: uuid.New(), CreatedAt: now.Add(-time.Second)}}, nil)

		page, err := queries.NewRatingQueries(rs).ListRatings(ctx, productID, nil, 1)
		require.NoError(t, err)
		require.NotNil(t, page.NextCursor)
		assert.Equal(t, queries.EncodeAfterCursor(last.CreatedAt, last.ID), page.NextCursor.After)
	})
}
