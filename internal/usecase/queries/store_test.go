//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"ootd-commerce/internal/domain/store"
	"ootd-commerce/internal/domain/user"
	"ootd-commerce/internal/infra"
	"ootd-commerce/internal/usecase/queries"
	queriesmock "ootd-commerce/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStoreQueries_Orders(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	owned := store.ReconstructStore(storeID, ownerID, "Atelier", "", true, time.Now())

	t.Run("success: totals come from the store's own lines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockStoreReadStore(ctrl)
		rs.EXPECT().FindByID(gomock.Any(), storeID).Return(owned, nil)
		rs.EXPECT().Orders(gomock.Any(), storeID).Return([]*queries.StoreOrderView{
			{
				ID:              uuid.New(),
				DiscountPercent: 10,
				Lines: []*queries.OrderLineView{
					{PriceCents: 4000, Quantity: 2},
					{PriceCents: 1500, Quantity: 1},
				},
			},
			{ID: uuid.New(), Lines: []*queries.OrderLineView{{PriceCents: 999, Quantity: 3}}},
		}, nil)

		got, err := queries.NewStoreQueries(rs).Orders(ctx, ownerID, user.RoleSeller, storeID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(8000), got[0].Lines[0].SubtotalCents)
		assert.Equal(t, int64(9500), got[0].AmountCents)
		assert.Equal(t, int64(8550), got[0].TotalCents)
		assert.Equal(t, int64(2997), got[1].AmountCents)
		assert.Equal(t, int64(2997), got[1].TotalCents, "no coupon, no discount")
	})

	t.Run("success: admins read any store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockStoreReadStore(ctrl)
		rs.EXPECT().FindByID(gomock.Any(), storeID).Return(owned, nil)
		rs.EXPECT().Orders(gomock.Any(), storeID).Return([]*queries.StoreOrderView{}, nil)

		got, err := queries.NewStoreQueries(rs).Orders(ctx, uuid.New(), user.RoleAdmin, storeID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("error: another seller is forbidden before any report is read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockStoreReadStore(ctrl)
		rs.EXPECT().FindByID(gomock.Any(), storeID).Return(owned, nil)

		_, err := queries.NewStoreQueries(rs).Orders(ctx, uuid.New(), user.RoleSeller, storeID)
		assert.ErrorIs(t, err, store.ErrNotStoreOwner)
	})

	t.Run("error: unknown store is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockStoreReadStore(ctrl)
		rs.EXPECT().FindByID(gomock.Any(), storeID).
			Return(nil, infra.WrapRepoErr("store not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := queries.NewStoreQueries(rs).Orders(ctx, ownerID, user.RoleSeller, storeID)
		assert.ErrorIs(t, err, store.ErrStoreNotFound)
	})
}

func TestStoreQueries_SalesAndRatings(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	owned := store.ReconstructStore(storeID, ownerID, "Atelier", "", true, time.Now())

	t.Run("success: sales pass through after the ownership check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockStoreReadStore(ctrl)
		rs.EXPECT().FindByID(gomock.Any(), storeID).Return(owned, nil)
		rs.EXPECT().ProductSales(gomock.Any(), storeID).Return([]*queries.StoreProductSalesView{{Name: "Denim v2", SoldQuantity: 5}}, nil)

		got, err := queries.NewStoreQueries(rs).Sales(ctx, ownerID, user.RoleSeller, storeID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(5), got[0].SoldQuantity)
	})

	t.Run("success: ratings pass through after the ownership check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockStoreReadStore(ctrl)
		rs.EXPECT().FindByID(gomock.Any(), storeID).Return(owned, nil)
		rs.EXPECT().Ratings(gomock.Any(), storeID).Return([]*queries.StoreRatingView{{ProductName: "Parka", Score: 4}}, nil)

		got, err := queries.NewStoreQueries(rs).Ratings(ctx, ownerID, user.RoleSeller, storeID)
		require.NoError(t, err)
		assert.Equal(t, "Parka", got[0].ProductName)
	})

	t.Run("error: another seller cannot read sales or ratings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockStoreReadStore(ctrl)
		rs.EXPECT().FindByID(gomock.Any(), storeID).Return(owned, nil).Times(2)
		q := queries.NewStoreQueries(rs)

		_, err := q.Sales(ctx, uuid.New(), user.RoleSeller, storeID)
		assert.ErrorIs(t, err, store.ErrNotStoreOwner)
		_, err = q.Ratings(ctx, uuid.New(), user.RoleSeller, storeID)
		assert.ErrorIs(t, err, store.ErrNotStoreOwner)
	})
}
