//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"ootd-commerce/internal/infra"
	"ootd-commerce/internal/infra/readstore"
	sqlc "ootd-commerce/internal/infra/sqlc/generated"
	"ootd-commerce/internal/pkg/pgconv"
	readstoremock "ootd-commerce/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStoreReadStore_Orders(t *testing.T) {
	storeID := uuid.New()
	newer, older := uuid.New(), uuid.New()
	at := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	line := func(orderID uuid.UUID, name string, discount pgtype.Int4) sqlc.ListStoreOrderLinesRow {
		return sqlc.ListStoreOrderLinesRow{
			OrderID:         orderID,
			Status:          "pending",
			CreatedAt:       pgconv.TimeToPgtype(at),
			DiscountPercent: discount,
			LineID:          uuid.New(),
			SnapshotID:      uuid.New(),
			ProductID:       uuid.New(),
			Version:         1,
			Name:            name,
			PriceCents:      1000,
			Quantity:        1,
		}
	}

	t.Run("success: consecutive lines of one order are grouped in row order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := readstoremock.NewMockStoreReadQueries(ctrl)
		rows := []sqlc.ListStoreOrderLinesRow{
			line(newer, "Belt", pgtype.Int4{Int32: 15, Valid: true}),
			line(newer, "Tie", pgtype.Int4{Int32: 15, Valid: true}),
			line(older, "Cap", pgtype.Int4{}),
		}
		m.EXPECT().ListStoreOrderLines(gomock.Any(), gomock.Any(), storeID).Return(rows, nil)

		got, err := readstore.NewStoreReadStore(m, nil).Orders(context.Background(), storeID)
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, newer, got[0].ID)
		assert.Equal(t, int32(15), got[0].DiscountPercent)
		require.Len(t, got[0].Lines, 2)
		assert.Equal(t, "Belt", got[0].Lines[0].Name)
		assert.Equal(t, rows[1].SnapshotID, got[0].Lines[1].SnapshotID)

		assert.Equal(t, older, got[1].ID)
		assert.Zero(t, got[1].DiscountPercent)
		require.Len(t, got[1].Lines, 1)
		assert.True(t, at.Equal(got[1].CreatedAt))
	})

	t.Run("success: a store without orders yields an empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := readstoremock.NewMockStoreReadQueries(ctrl)
		m.EXPECT().ListStoreOrderLines(gomock.Any(), gomock.Any(), storeID).Return(nil, nil)

		got, err := readstore.NewStoreReadStore(m, nil).Orders(context.Background(), storeID)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := readstoremock.NewMockStoreReadQueries(ctrl)
		m.EXPECT().ListStoreOrderLines(gomock.Any(), gomock.Any(), storeID).Return(nil, assert.AnError)

		_, err := readstore.NewStoreReadStore(m, nil).Orders(context.Background(), storeID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestStoreReadStore_FindByID(t *testing.T) {
	storeID := uuid.New()

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := readstoremock.NewMockStoreReadQueries(ctrl)
		m.EXPECT().GetStoreByID(gomock.Any(), gomock.Any(), storeID).Return(sqlc.Stores{}, pgx.ErrNoRows)

		_, err := readstore.NewStoreReadStore(m, nil).FindByID(context.Background(), storeID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestStoreReadStore_Ratings(t *testing.T) {
	storeID := uuid.New()
	ctrl := gomock.NewController(t)
	m := readstoremock.NewMockStoreReadQueries(ctrl)
	m.EXPECT().ListStoreRatings(gomock.Any(), gomock.Any(), storeID).Return([]sqlc.ListStoreRatingsRow{
		{ID: uuid.New(), ProductName: "Parka v2", Score: 5, Note: pgtype.Text{String: "warm", Valid: true}},
		{ID: uuid.New(), ProductName: "Scarf", Score: 2},
	}, nil)

	got, err := readstore.NewStoreReadStore(m, nil).Ratings(context.Background(), storeID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].Note)
	assert.Equal(t, "warm", *got[0].Note)
	assert.Nil(t, got[1].Note)
}
