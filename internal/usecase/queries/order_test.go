//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"ootd-commerce/internal/domain/order"
	"ootd-commerce/internal/infra"
	"ootd-commerce/internal/pkg/ptr"
	"ootd-commerce/internal/usecase/queries"
	queriesmock "ootd-commerce/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func orderItems(n int, start time.Time) []*queries.OrderListItem {
	items := make([]*queries.OrderListItem, n)
	for i := range items {
		items[i] = &queries.OrderListItem{
			ID:              uuid.New(),
			AmountCents:     10000,
			DiscountPercent: 10,
			CreatedAt:       start.Add(-time.Duration(i) * time.Minute),
		}
	}
	return items
}

func TestOrderQueries_ListOrders(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	start := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	t.Run("first page probes one extra row and returns a cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockOrderReadStore(ctrl)
		rows := orderItems(3, start)
		rs.EXPECT().FindByUserFirstPage(gomock.Any(), userID, int32(3)).Return(rows, nil)

		page, err := queries.NewOrderQueries(rs).ListOrders(ctx, userID, nil, 2)
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		require.NotNil(t, page.NextCursor)
		assert.Equal(t, int64(9000), page.Items[0].TotalCents)

		at, id, err := queries.DecodeAfterCursor(page.NextCursor.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, id)
		assert.True(t, rows[1].CreatedAt.Equal(at))
	})

	t.Run("keyset page continues after the cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockOrderReadStore(ctrl)
		lastID := uuid.New()
		cursor := queries.EncodeAfterCursor(start, lastID)
		rs.EXPECT().FindByUserKeyset(gomock.Any(), userID, gomock.Any(), lastID, int32(queries.DefaultListLimit+1)).
			Return(orderItems(1, start.Add(-time.Hour)), nil)

		page, err := queries.NewOrderQueries(rs).ListOrders(ctx, userID, &cursor, 0)
		require.NoError(t, err)
		assert.Len(t, page.Items, 1)
		assert.Nil(t, page.NextCursor)
	})

	t.Run("malformed cursor is a bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockOrderReadStore(ctrl)

		_, err := queries.NewOrderQueries(rs).ListOrders(ctx, userID, ptr.Of("%%%"), 10)
		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})
}

func TestOrderQueries_GetOrder(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	orderID := uuid.New()

	stored := func() *queries.OrderView {
		return &queries.OrderView{
			ID:              orderID,
			UserID:          ownerID,
			DiscountPercent: 25,
			Lines: []*queries.OrderLineView{
				{Name: "shirt", PriceCents: 1999, Quantity: 2},
				{Name: "socks", PriceCents: 500, Quantity: 1},
			},
		}
	}

	testCases := []struct {
		name          string
		caller        uuid.UUID
		setupMock     func(rs *queriesmock.MockOrderReadStore)
		expectedError error
		expected      *queries.OrderView
	}{
		{
			name:   "success: totals are computed from bound snapshots",
			caller: ownerID,
			setupMock: func(rs *queriesmock.MockOrderReadStore) {
				rs.EXPECT().FindByID(gomock.Any(), orderID).Return(stored(), nil)
			},
			expected: &queries.OrderView{
				ID:              orderID,
				UserID:          ownerID,
				DiscountPercent: 25,
				AmountCents:     4498,
				TotalCents:      3373,
				Lines: []*queries.OrderLineView{
					{Name: "shirt", PriceCents: 1999, Quantity: 2, SubtotalCents: 3998},
					{Name: "socks", PriceCents: 500, Quantity: 1, SubtotalCents: 500},
				},
			},
		},
		{
			name:   "error: another user's order is hidden",
			caller: uuid.New(),
			setupMock: func(rs *queriesmock.MockOrderReadStore) {
				rs.EXPECT().FindByID(gomock.Any(), orderID).Return(stored(), nil)
			},
			expectedError: order.ErrOrderNotFound,
		},
		{
			name:   "error: unknown order",
			caller: ownerID,
			setupMock: func(rs *queriesmock.MockOrderReadStore) {
				rs.EXPECT().FindByID(gomock.Any(), orderID).
					Return(nil, infra.WrapRepoErr("order not found", pgx.ErrNoRows, infra.KindNotFound))
			},
			expectedError: order.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			rs := queriesmock.NewMockOrderReadStore(ctrl)
			tc.setupMock(rs)

			got, err := queries.NewOrderQueries(rs).GetOrder(ctx, tc.caller, orderID)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("GetOrder() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
