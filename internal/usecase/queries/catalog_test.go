//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"ootd-commerce/internal/domain/product"
	"ootd-commerce/internal/infra"
	"ootd-commerce/internal/usecase/queries"
	queriesmock "ootd-commerce/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type catalogMocks struct {
	catalog *queriesmock.MockCatalogReadStore
	ratings *queriesmock.MockRatingReadStore
	carts   *queriesmock.MockCartReadStore
}

func newCatalogQueries(ctrl *gomock.Controller) (queries.CatalogQueries, catalogMocks) {
	m := catalogMocks{
		catalog: queriesmock.NewMockCatalogReadStore(ctrl),
		ratings: queriesmock.NewMockRatingReadStore(ctrl),
		carts:   queriesmock.NewMockCartReadStore(ctrl),
	}
	return queries.NewCatalogQueries(m.catalog, m.ratings, m.carts), m
}

func TestCatalogQueries_GetProduct(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()
	viewerID := uuid.New()

	view := func() *queries.ProductView {
		return &queries.ProductView{ID: productID, Stock: 5, Available: 5, Purchasable: true}
	}

	testCases := []struct {
		name            string
		viewer          *uuid.UUID
		setupMock       func(m catalogMocks)
		expectedError   error
		expectAvailable int32
	}{
		{
			name:   "success: anonymous viewer sees full stock",
			viewer: nil,
			setupMock: func(m catalogMocks) {
				m.catalog.EXPECT().FindProduct(gomock.Any(), productID).Return(view(), nil)
				m.ratings.EXPECT().Summary(gomock.Any(), productID).
					Return(&queries.RatingSummary{ProductID: productID, AverageScore: 4.5, RatingCount: 2}, nil)
			},
			expectAvailable: 5,
		},
		{
			name:   "success: viewer's cart is subtracted",
			viewer: &viewerID,
			setupMock: func(m catalogMocks) {
				m.catalog.EXPECT().FindProduct(gomock.Any(), productID).Return(view(), nil)
				m.ratings.EXPECT().Summary(gomock.Any(), productID).Return(&queries.RatingSummary{ProductID: productID}, nil)
				m.carts.EXPECT().Quantity(gomock.Any(), viewerID, productID).Return(int32(2), nil)
			},
			expectAvailable: 3,
		},
		{
			name:   "success: available never goes below zero",
			viewer: &viewerID,
			setupMock: func(m catalogMocks) {
				m.catalog.EXPECT().FindProduct(gomock.Any(), productID).Return(view(), nil)
				m.ratings.EXPECT().Summary(gomock.Any(), productID).Return(&queries.RatingSummary{ProductID: productID}, nil)
				m.carts.EXPECT().Quantity(gomock.Any(), viewerID, productID).Return(int32(9), nil)
			},
			expectAvailable: 0,
		},
		{
			name:   "error: unknown product",
			viewer: nil,
			setupMock: func(m catalogMocks) {
				m.catalog.EXPECT().FindProduct(gomock.Any(), productID).
					Return(nil, infra.WrapRepoErr("product not found", pgx.ErrNoRows, infra.KindNotFound))
			},
			expectedError: product.ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			q, m := newCatalogQueries(ctrl)
			tc.setupMock(m)

			got, err := q.GetProduct(ctx, productID, tc.viewer)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectAvailable, got.Available)
			assert.Equal(t, int32(5), got.Stock)
		})
	}
}

func TestCatalogQueries_GetSnapshot(t *testing.T) {
	ctx := context.Background()
	snapshotID := uuid.New()

	t.Run("error: unknown snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q, m := newCatalogQueries(ctrl)
		m.catalog.EXPECT().FindSnapshot(gomock.Any(), snapshotID).
			Return(nil, infra.WrapRepoErr("snapshot not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := q.GetSnapshot(ctx, snapshotID)
		assert.ErrorIs(t, err, product.ErrSnapshotNotFound)
	})

	t.Run("error: database failure passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q, m := newCatalogQueries(ctrl)
		m.catalog.EXPECT().FindSnapshot(gomock.Any(), snapshotID).
			Return(nil, infra.WrapRepoErr("failed to get snapshot", errors.New("conn refused")))

		_, err := q.GetSnapshot(ctx, snapshotID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestCatalogQueries_ListProducts(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()

	testCases := []struct {
		name         string
		filter       queries.ProductFilter
		limit        int
		offset       int
		expectFilter queries.ProductFilter
		expectLimit  int32
		expectOffset int32
	}{
		{
			name:         "default sort and limit",
			filter:       queries.ProductFilter{},
			limit:        0,
			offset:       -4,
			expectFilter: queries.ProductFilter{Sort: queries.SortDefault},
			expectLimit:  queries.DefaultListLimit,
			expectOffset: 0,
		},
		{
			name:         "store filter sorted by price descending",
			filter:       queries.ProductFilter{StoreID: &storeID, Sort: queries.SortPrice, Descending: true},
			limit:        500,
			offset:       40,
			expectFilter: queries.ProductFilter{StoreID: &storeID, Sort: queries.SortPrice, Descending: true},
			expectLimit:  queries.MaxListLimit,
			expectOffset: 40,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q, m := newCatalogQueries(ctrl)
			m.catalog.EXPECT().ListPurchasable(gomock.Any(), tc.expectFilter, tc.expectLimit, tc.expectOffset).
				Return([]*queries.ProductListItem{{ID: uuid.New()}}, nil)

			page, err := q.ListProducts(ctx, tc.filter, tc.limit, tc.offset)
			require.NoError(t, err)
			assert.Len(t, page.Items, 1)
			assert.Equal(t, int(tc.expectLimit), page.Limit)
			assert.Equal(t, int(tc.expectOffset), page.Offset)
		})
	}
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, queries.SortPrice, queries.ParseSortKey("price"))
	assert.Equal(t, queries.SortSales, queries.ParseSortKey("sales"))
	assert.Equal(t, queries.SortStock, queries.ParseSortKey("stock"))
	assert.Equal(t, queries.SortDefault, queries.ParseSortKey(""))
	assert.Equal(t, queries.SortDefault, queries.ParseSortKey("rating"))
}
