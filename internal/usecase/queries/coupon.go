package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"
	"time"

	"ootd-commerce/internal/domain/coupon"
	"ootd-commerce/internal/infra"
	"ootd-commerce/internal/pkg/clock"

	"github.com/google/uuid"
)

type CouponQueries interface {
	ListCoupons(ctx context.Context, limit, offset int) ([]*CouponView, error)
	GetCoupon(ctx context.Context, couponID uuid.UUID) (*CouponView, error)
	ListUserCoupons(ctx context.Context, userID uuid.UUID) ([]*UserCouponView, error)
	GetBalance(ctx context.Context, userID, couponID uuid.UUID) (*CouponBalanceView, error)
}

type CouponReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
	List(ctx context.Context, limit, offset int32) ([]*CouponView, error)
	Balance(ctx context.Context, userID, couponID uuid.UUID) (int32, error)
	ListUsable(ctx context.Context, userID uuid.UUID, now time.Time) ([]*UserCouponView, error)
}

type couponQueriesImpl struct {
	readStore CouponReadStore
	clock     clock.Clock
}

func NewCouponQueries(readStore CouponReadStore, clk clock.Clock) CouponQueries {
	return &couponQueriesImpl{
		readStore: readStore,
		clock:     clk,
	}
}

func (q *couponQueriesImpl) ListCoupons(ctx context.Context, limit, offset int) ([]*CouponView, error) {
	limit = ValidateLimit(limit)
	if offset < 0 {
		offset = 0
	}
	return q.readStore.List(ctx, int32(limit), int32(offset))
}

func (q *couponQueriesImpl) GetCoupon(ctx context.Context, couponID uuid.UUID) (*CouponView, error) {
	view, err := q.readStore.FindByID(ctx, couponID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, coupon.ErrCouponNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *couponQueriesImpl) ListUserCoupons(ctx context.Context, userID uuid.UUID) ([]*UserCouponView, error) {
	return q.readStore.ListUsable(ctx, userID, q.clock.Now())
}

// GetBalance reports 0 when nothing was ever granted.
func (q *couponQueriesImpl) GetBalance(ctx context.Context, userID, couponID uuid.UUID) (*CouponBalanceView, error) {
	qty, err := q.readStore.Balance(ctx, userID, couponID)
	if err != nil {
		return nil, err
	}
	return &CouponBalanceView{CouponID: couponID, Quantity: qty}, nil
}
