//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"ootd-commerce/internal/domain/product"
	"ootd-commerce/internal/domain/store"
	"ootd-commerce/internal/domain/user"
	sqlc "ootd-commerce/internal/infra/sqlc/generated"
	"ootd-commerce/internal/pkg/clock"
	"ootd-commerce/internal/usecase/commands"
	"ootd-commerce/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCatalogCommands_CreateListing(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	ownedStore := store.ReconstructStore(storeID, ownerID, "atelier", "", true, fixedNow.Add(-time.Hour))

	validReq := commands.CreateListingRequest{
		StoreID:    storeID,
		Name:       "linen shirt",
		PriceCents: 4900,
		Stock:      10,
		Keywords:   []string{"Linen", " linen ", "summer"},
	}

	testCases := []struct {
		name          string
		actor         commands.Actor
		req           commands.CreateListingRequest
		setupMock     func(f *txFixture)
		expectedError error
	}{
		{
			name:  "success: owner creates a listing with its first snapshot",
			actor: commands.Actor{ID: ownerID, Role: user.RoleSeller},
			req:   validReq,
			setupMock: func(f *txFixture) {
				f.reads.EXPECT().StoreByID(gomock.Any(), storeID).Return(ownedStore, nil)
				f.products.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.snapshots.EXPECT().AppendIfChanged(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), fixedNow).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, productID uuid.UUID, l product.Listing, now time.Time) (*product.Snapshot, bool, error) {
						return product.ReconstructSnapshot(uuid.New(), productID, 1, l, now), true, nil
					})
				f.products.EXPECT().AddKeywords(gomock.Any(), gomock.Any(), gomock.Any(), []string{"linen", "summer"}).Return(nil)
				f.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), shared.EventListingVersioned, gomock.Any(), gomock.Any(), fixedNow).Return(nil)
			},
		},
		{
			name:  "success: admin may list in any store",
			actor: commands.Actor{ID: uuid.New(), Role: user.RoleAdmin},
			req:   validReq,
			setupMock: func(f *txFixture) {
				f.reads.EXPECT().StoreByID(gomock.Any(), storeID).Return(ownedStore, nil)
				f.products.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.snapshots.EXPECT().AppendIfChanged(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, productID uuid.UUID, l product.Listing, now time.Time) (*product.Snapshot, bool, error) {
						return product.ReconstructSnapshot(uuid.New(), productID, 1, l, now), true, nil
					})
				f.products.EXPECT().AddKeywords(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:          "error: blank name never reaches the database",
			actor:         commands.Actor{ID: ownerID, Role: user.RoleSeller},
			req:           commands.CreateListingRequest{StoreID: storeID, Name: "  ", PriceCents: 100},
			setupMock:     func(f *txFixture) {},
			expectedError: product.ErrInvalidName,
		},
		{
			name:          "error: negative price",
			actor:         commands.Actor{ID: ownerID, Role: user.RoleSeller},
			req:           commands.CreateListingRequest{StoreID: storeID, Name: "shirt", PriceCents: -1},
			setupMock:     func(f *txFixture) {},
			expectedError: product.ErrNegativePrice,
		},
		{
			name:  "error: store does not exist",
			actor: commands.Actor{ID: ownerID, Role: user.RoleSeller},
			req:   validReq,
			setupMock: func(f *txFixture) {
				f.reads.EXPECT().StoreByID(gomock.Any(), storeID).Return(nil, notFoundErr("store not found"))
			},
			expectedError: store.ErrStoreNotFound,
		},
		{
			name:  "error: seller does not own the store",
			actor: commands.Actor{ID: uuid.New(), Role: user.RoleSeller},
			req:   validReq,
			setupMock: func(f *txFixture) {
				f.reads.EXPECT().StoreByID(gomock.Any(), storeID).Return(ownedStore, nil)
			},
			expectedError: store.ErrNotStoreOwner,
		},
		{
			name:  "error: negative initial stock",
			actor: commands.Actor{ID: ownerID, Role: user.RoleSeller},
			req:   commands.CreateListingRequest{StoreID: storeID, Name: "shirt", PriceCents: 100, Stock: -1},
			setupMock: func(f *txFixture) {
				f.reads.EXPECT().StoreByID(gomock.Any(), storeID).Return(ownedStore, nil)
			},
			expectedError: product.ErrNegativeStock,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newTxFixture(ctrl)
			tc.setupMock(f)

			cmd := commands.NewCatalogCommands(f.uow, clock.NewMockClock(fixedNow), nil)
			result, err := cmd.CreateListing(ctx, tc.actor, tc.req)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, result.ProductID)
			assert.Equal(t, 1, result.Version)
			assert.True(t, result.Versioned)
		})
	}
}

func TestCatalogCommands_EditListing(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	productID := uuid.New()
	ownedStore := store.ReconstructStore(storeID, ownerID, "atelier", "", true, fixedNow.Add(-time.Hour))
	seller := commands.Actor{ID: ownerID, Role: user.RoleSeller}

	lockedProduct := func() *shared.ProductState {
		return &shared.ProductState{
			Product:      product.ReconstructProduct(productID, storeID, 4, true, fixedNow.Add(-time.Hour)),
			StoreEnabled: true,
		}
	}

	testCases := []struct {
		name            string
		req             commands.EditListingRequest
		setupMock       func(f *txFixture)
		expectedError   error
		expectVersioned bool
		expectVersion   int
	}{
		{
			name: "success: changed price appends version 2",
			req:  commands.EditListingRequest{ProductID: productID, Name: "linen shirt", PriceCents: 5900, Stock: 8, Enabled: true},
			setupMock: func(f *txFixture) {
				f.products.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), productID).Return(lockedProduct(), nil)
				f.reads.EXPECT().StoreByID(gomock.Any(), storeID).Return(ownedStore, nil)
				f.products.EXPECT().SaveInventory(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, p *product.Product) error {
						assert.Equal(t, 8, p.Stock())
						return nil
					})
				f.snapshots.EXPECT().AppendIfChanged(gomock.Any(), gomock.Any(), productID, gomock.Any(), fixedNow).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, id uuid.UUID, l product.Listing, now time.Time) (*product.Snapshot, bool, error) {
						return product.ReconstructSnapshot(uuid.New(), id, 2, l, now), true, nil
					})
				f.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), shared.EventListingVersioned, productID, gomock.Any(), fixedNow).Return(nil)
			},
			expectVersioned: true,
			expectVersion:   2,
		},
		{
			name: "success: stock-only edit keeps the current version",
			req:  commands.EditListingRequest{ProductID: productID, Name: "linen shirt", PriceCents: 4900, Stock: 0, Enabled: true},
			setupMock: func(f *txFixture) {
				f.products.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), productID).Return(lockedProduct(), nil)
				f.reads.EXPECT().StoreByID(gomock.Any(), storeID).Return(ownedStore, nil)
				f.products.EXPECT().SaveInventory(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.snapshots.EXPECT().AppendIfChanged(gomock.Any(), gomock.Any(), productID, gomock.Any(), fixedNow).
					Return(latestSnapshot(productID, 1), false, nil)
			},
			expectVersioned: false,
			expectVersion:   1,
		},
		{
			name:          "error: negative stock",
			req:           commands.EditListingRequest{ProductID: productID, Name: "linen shirt", PriceCents: 4900, Stock: -3},
			setupMock:     func(f *txFixture) {},
			expectedError: product.ErrNegativeStock,
		},
		{
			name: "error: product does not exist",
			req:  commands.EditListingRequest{ProductID: productID, Name: "linen shirt", PriceCents: 4900},
			setupMock: func(f *txFixture) {
				f.products.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), productID).Return(nil, notFoundErr("product not found"))
			},
			expectedError: product.ErrProductNotFound,
		},
		{
			name: "error: another seller's store",
			req:  commands.EditListingRequest{ProductID: productID, Name: "linen shirt", PriceCents: 4900},
			setupMock: func(f *txFixture) {
				f.products.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), productID).Return(lockedProduct(), nil)
				f.reads.EXPECT().StoreByID(gomock.Any(), storeID).
					Return(store.ReconstructStore(storeID, uuid.New(), "other", "", true, fixedNow), nil)
			},
			expectedError: store.ErrNotStoreOwner,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newTxFixture(ctrl)
			tc.setupMock(f)

			cmd := commands.NewCatalogCommands(f.uow, clock.NewMockClock(fixedNow), nil)
			result, err := cmd.EditListing(ctx, seller, tc.req)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, productID, result.ProductID)
			assert.Equal(t, tc.expectVersioned, result.Versioned)
			assert.Equal(t, tc.expectVersion, result.Version)
		})
	}
}
