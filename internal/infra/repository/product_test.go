//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"ootd-commerce/internal/domain/product"
	"ootd-commerce/internal/infra"
	"ootd-commerce/internal/infra/repository"
	sqlc "ootd-commerce/internal/infra/sqlc/generated"
	"ootd-commerce/internal/pkg/pgconv"
	repositorymock "ootd-commerce/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProductRepository_DecrementStock(t *testing.T) {
	productID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(m *repositorymock.MockProductWriteQueries)
		expectedStock int
		expectedError error
		expectedKind  infra.RepositoryErrorKind
	}{
		{
			name: "success: returns the remaining stock",
			setupMock: func(m *repositorymock.MockProductWriteQueries) {
				m.EXPECT().DecrementProductStock(gomock.Any(), gomock.Any(), sqlc.DecrementProductStockParams{Amount: 3, ID: productID}).
					Return(int32(7), nil)
			},
			expectedStock: 7,
		},
		{
			name: "error: guarded update matched no row",
			setupMock: func(m *repositorymock.MockProductWriteQueries) {
				m.EXPECT().DecrementProductStock(gomock.Any(), gomock.Any(), gomock.Any()).Return(int32(0), pgx.ErrNoRows)
			},
			expectedError: product.ErrInsufficientStock,
		},
		{
			name: "error: database failure",
			setupMock: func(m *repositorymock.MockProductWriteQueries) {
				m.EXPECT().DecrementProductStock(gomock.Any(), gomock.Any(), gomock.Any()).Return(int32(0), assert.AnError)
			},
			expectedKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := repositorymock.NewMockProductWriteQueries(ctrl)
			tc.setupMock(m)

			stock, err := repository.NewProductRepository(m, nil).DecrementStock(context.Background(), nil, productID, 3)

			switch {
			case tc.expectedError != nil:
				assert.ErrorIs(t, err, tc.expectedError)
			case tc.expectedKind != "":
				assert.True(t, infra.IsKind(err, tc.expectedKind))
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.expectedStock, stock)
			}
		})
	}
}

func TestProductRepository_LockMany(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	enabled := sqlc.LockProductsForUpdateRow{
		ID:           uuid.New(),
		StoreID:      uuid.New(),
		Stock:        4,
		Enabled:      true,
		StoreEnabled: true,
		CreatedAt:    pgconv.TimeToPgtype(createdAt),
	}
	storeOff := sqlc.LockProductsForUpdateRow{
		ID:           uuid.New(),
		StoreID:      uuid.New(),
		Stock:        9,
		Enabled:      true,
		StoreEnabled: false,
		CreatedAt:    pgconv.TimeToPgtype(createdAt),
	}
	ids := []uuid.UUID{enabled.ID, storeOff.ID, uuid.New()}

	ctrl := gomock.NewController(t)
	m := repositorymock.NewMockProductWriteQueries(ctrl)
	m.EXPECT().LockProductsForUpdate(gomock.Any(), gomock.Any(), ids).
		Return([]sqlc.LockProductsForUpdateRow{enabled, storeOff}, nil)

	states, err := repository.NewProductRepository(m, nil).LockMany(context.Background(), nil, ids)
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, enabled.ID, states[0].Product.ID())
	assert.Equal(t, 4, states[0].Product.Stock())
	assert.True(t, states[0].StoreEnabled)
	assert.False(t, states[1].StoreEnabled)
	assert.True(t, createdAt.Equal(states[1].Product.CreatedAt()))
}

func TestProductRepository_Get(t *testing.T) {
	t.Run("error: missing product is NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := repositorymock.NewMockProductWriteQueries(ctrl)
		m.EXPECT().GetProductWithStore(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(sqlc.GetProductWithStoreRow{}, pgx.ErrNoRows)

		_, err := repository.NewProductRepository(m, nil).Get(context.Background(), nil, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestProductRepository_AddKeywords(t *testing.T) {
	productID := uuid.New()

	t.Run("no keywords skips the insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := repositorymock.NewMockProductWriteQueries(ctrl)

		err := repository.NewProductRepository(m, nil).AddKeywords(context.Background(), nil, productID, nil)
		assert.NoError(t, err)
	})

	t.Run("keywords are inserted in one call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := repositorymock.NewMockProductWriteQueries(ctrl)
		m.EXPECT().InsertProductKeywords(gomock.Any(), gomock.Any(), sqlc.InsertProductKeywordsParams{
			ProductID: productID,
			Keywords:  []string{"linen", "summer"},
		}).Return(nil)

		err := repository.NewProductRepository(m, nil).AddKeywords(context.Background(), nil, productID, []string{"linen", "summer"})
		assert.NoError(t, err)
	})
}
