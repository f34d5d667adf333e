//go:build unit

package commands_test

import (
	"context"
	"time"

	"ootd-commerce/internal/domain/product"
	"ootd-commerce/internal/infra"
	"ootd-commerce/internal/usecase/shared"
	sharedmock "ootd-commerce/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

// txFixture routes every Within call through a mocked Tx whose repositories are exposed for expectations.
type txFixture struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	products      *sharedmock.MockProductRepository
	snapshots     *sharedmock.MockSnapshotRepository
	carts         *sharedmock.MockCartRepository
	coupons       *sharedmock.MockCouponRepository
	orders        *sharedmock.MockOrderRepository
	ratings       *sharedmock.MockRatingRepository
	idempotency   *sharedmock.MockIdempotencyRepository
	notifications *sharedmock.MockNotificationRepository
	users         *sharedmock.MockUserRepository
}

func newTxFixture(ctrl *gomock.Controller) *txFixture {
	f := &txFixture{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		products:      sharedmock.NewMockProductRepository(ctrl),
		snapshots:     sharedmock.NewMockSnapshotRepository(ctrl),
		carts:         sharedmock.NewMockCartRepository(ctrl),
		coupons:       sharedmock.NewMockCouponRepository(ctrl),
		orders:        sharedmock.NewMockOrderRepository(ctrl),
		ratings:       sharedmock.NewMockRatingRepository(ctrl),
		idempotency:   sharedmock.NewMockIdempotencyRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		users:         sharedmock.NewMockUserRepository(ctrl),
	}
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()

	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Products().Return(f.products).AnyTimes()
	f.tx.EXPECT().Snapshots().Return(f.snapshots).AnyTimes()
	f.tx.EXPECT().Carts().Return(f.carts).AnyTimes()
	f.tx.EXPECT().Coupons().Return(f.coupons).AnyTimes()
	f.tx.EXPECT().Orders().Return(f.orders).AnyTimes()
	f.tx.EXPECT().Ratings().Return(f.ratings).AnyTimes()
	f.tx.EXPECT().Idempotency().Return(f.idempotency).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()
	f.tx.EXPECT().Users().Return(f.users).AnyTimes()
	return f
}

func productState(id uuid.UUID, stock int, enabled, storeEnabled bool) *shared.ProductState {
	return &shared.ProductState{
		Product:      product.ReconstructProduct(id, uuid.New(), stock, enabled, fixedNow.Add(-24*time.Hour)),
		StoreEnabled: storeEnabled,
	}
}

func latestSnapshot(productID uuid.UUID, version int) *product.Snapshot {
	listing, _ := product.NewListing("linen shirt", "relaxed fit", 4900)
	return product.ReconstructSnapshot(uuid.New(), productID, version, listing, fixedNow.Add(-time.Hour))
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows, infra.KindNotFound)
}
