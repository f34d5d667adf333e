package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"time"

	"ootd-commerce/internal/domain/coupon"
	"ootd-commerce/internal/infra"
	"ootd-commerce/internal/pkg/clock"
	"ootd-commerce/internal/pkg/errs"
	"ootd-commerce/internal/pkg/patch"
	"ootd-commerce/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrGrantTargetNotFound = errs.NewKind("user or coupon not found", errs.ErrNotFound)

type CreateCouponRequest struct {
	Name            string
	Description     string
	DiscountPercent int
	StartsAt        time.Time
	ExpiresAt       time.Time
	Enabled         bool
}

// UpdateCouponRequest is a partial update; nil fields keep their current value.
type UpdateCouponRequest struct {
	Name            *string
	Description     *string
	DiscountPercent *int
	StartsAt        *time.Time
	ExpiresAt       *time.Time
	Enabled         *bool
}

type CouponCommands interface {
	CreateCoupon(ctx context.Context, req CreateCouponRequest) (uuid.UUID, error)
	UpdateCoupon(ctx context.Context, couponID uuid.UUID, req UpdateCouponRequest) error
	// Grant adds amount to the user's balance and returns the new balance.
	Grant(ctx context.Context, userID, couponID uuid.UUID, amount int) (int, error)
	// GrantToAll adds amount to every active user's balance.
	GrantToAll(ctx context.Context, couponID uuid.UUID, amount int) (int64, error)
}

type couponCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCouponCommands(uow shared.UnitOfWork, clk clock.Clock) CouponCommands {
	return &couponCommandsImpl{uow: uow, clock: clk}
}

func (c *couponCommandsImpl) CreateCoupon(ctx context.Context, req CreateCouponRequest) (uuid.UUID, error) {
	cp, err := coupon.NewCoupon(req.Name, req.Description, req.DiscountPercent, req.StartsAt, req.ExpiresAt, req.Enabled, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translateRepoErr(tx.Coupons().Create(ctx, tx.DB(), cp), nil)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return cp.ID(), nil
}

func (c *couponCommandsImpl) UpdateCoupon(ctx context.Context, couponID uuid.UUID, req UpdateCouponRequest) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cp, err := tx.Coupons().LockByID(ctx, tx.DB(), couponID)
		if err != nil {
			return translateRepoErr(err, coupon.ErrCouponNotFound)
		}

		err = cp.Revise(
			patch.Coalesce(req.Name, cp.Name().String()),
			patch.Coalesce(req.Description, cp.Description()),
			patch.Coalesce(req.DiscountPercent, cp.Discount().Percent()),
			patch.Coalesce(req.StartsAt, cp.StartsAt()),
			patch.Coalesce(req.ExpiresAt, cp.ExpiresAt()),
			patch.Coalesce(req.Enabled, cp.Enabled()),
			c.clock.Now(),
		)
		if err != nil {
			return err
		}
		return translateRepoErr(tx.Coupons().Update(ctx, tx.DB(), cp), nil)
	})
}

func (c *couponCommandsImpl) Grant(ctx context.Context, userID, couponID uuid.UUID, amount int) (int, error) {
	if err := coupon.ValidateGrantAmount(amount); err != nil {
		return 0, err
	}

	var balance int
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		qty, err := tx.Coupons().Grant(ctx, tx.DB(), userID, couponID, amount)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrGrantTargetNotFound
			}
			return translateRepoErr(err, nil)
		}
		balance = qty
		return nil
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (c *couponCommandsImpl) GrantToAll(ctx context.Context, couponID uuid.UUID, amount int) (int64, error) {
	if err := coupon.ValidateGrantAmount(amount); err != nil {
		return 0, err
	}

	var affected int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Coupons().LockByID(ctx, tx.DB(), couponID); err != nil {
			return translateRepoErr(err, coupon.ErrCouponNotFound)
		}
		n, err := tx.Coupons().GrantToActiveUsers(ctx, tx.DB(), couponID, amount)
		if err != nil {
			return translateRepoErr(err, nil)
		}
		affected = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}
