package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/$GOFILE -package=repositorymock

import (
	"context"

	"ootd-commerce/internal/domain/coupon"
	"ootd-commerce/internal/infra"
	sqlc "ootd-commerce/internal/infra/sqlc/generated"
	"ootd-commerce/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CouponWriteQueries interface {
	CreateCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCouponParams) error
	GetCouponByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Coupons, error)
	UpdateCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCouponParams) error
	GetCouponGrantForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCouponGrantForUpdateParams) (int32, error)
	ConsumeCouponGrant(ctx context.Context, db sqlc.DBTX, arg sqlc.ConsumeCouponGrantParams) (int32, error)
	UpsertCouponGrant(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCouponGrantParams) (int32, error)
	GrantCouponToActiveUsers(ctx context.Context, db sqlc.DBTX, arg sqlc.GrantCouponToActiveUsersParams) (int64, error)
}

type CouponRepository struct {
	queries CouponWriteQueries
	db      sqlc.DBTX
}

func NewCouponRepository(queries CouponWriteQueries, db sqlc.DBTX) *CouponRepository {
	return &CouponRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CouponRepository) Create(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error {
	params := sqlc.CreateCouponParams{
		ID:              c.ID(),
		Name:            c.Name().String(),
		Description:     c.Description(),
		DiscountPercent: pgconv.IntToInt32(c.Discount().Percent()),
		StartsAt:        pgconv.TimeToPgtype(c.StartsAt()),
		ExpiresAt:       pgconv.TimeToPgtype(c.ExpiresAt()),
		Enabled:         c.Enabled(),
		CreatedAt:       pgconv.TimeToPgtype(c.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(c.UpdatedAt()),
	}
	if err := r.queries.CreateCoupon(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return nil
}

func (r *CouponRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*coupon.Coupon, error) {
	row, err := r.queries.GetCouponByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock coupon", err)
	}
	return ToCoupon(row), nil
}

func (r *CouponRepository) Update(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error {
	params := sqlc.UpdateCouponParams{
		ID:              c.ID(),
		Name:            c.Name().String(),
		Description:     c.Description(),
		DiscountPercent: pgconv.IntToInt32(c.Discount().Percent()),
		StartsAt:        pgconv.TimeToPgtype(c.StartsAt()),
		ExpiresAt:       pgconv.TimeToPgtype(c.ExpiresAt()),
		Enabled:         c.Enabled(),
		UpdatedAt:       pgconv.TimeToPgtype(c.UpdatedAt()),
	}
	if err := r.queries.UpdateCoupon(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update coupon", err)
	}
	return nil
}

// LockGrant locks the user's balance row and returns 0 when the user was never granted the coupon.
func (r *CouponRepository) LockGrant(ctx context.Context, tx sqlc.DBTX, userID, couponID uuid.UUID) (int, error) {
	qty, err := r.queries.GetCouponGrantForUpdate(ctx, tx, sqlc.GetCouponGrantForUpdateParams{
		UserID:   userID,
		CouponID: couponID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, nil
		}
		return 0, infra.WrapRepoErr("failed to lock coupon grant", err)
	}
	return int(qty), nil
}

// Consume decrements the balance by one and returns what remains.
func (r *CouponRepository) Consume(ctx context.Context, tx sqlc.DBTX, userID, couponID uuid.UUID) (int, error) {
	remaining, err := r.queries.ConsumeCouponGrant(ctx, tx, sqlc.ConsumeCouponGrantParams{
		UserID:   userID,
		CouponID: couponID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, coupon.ErrInsufficientBalance
		}
		return 0, infra.WrapRepoErr("failed to consume coupon grant", err)
	}
	return int(remaining), nil
}

func (r *CouponRepository) Grant(ctx context.Context, tx sqlc.DBTX, userID, couponID uuid.UUID, amount int) (int, error) {
	total, err := r.queries.UpsertCouponGrant(ctx, tx, sqlc.UpsertCouponGrantParams{
		UserID:   userID,
		CouponID: couponID,
		Quantity: pgconv.IntToInt32(amount),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to grant coupon", err)
	}
	return int(total), nil
}

func (r *CouponRepository) GrantToActiveUsers(ctx context.Context, tx sqlc.DBTX, couponID uuid.UUID, amount int) (int64, error) {
	n, err := r.queries.GrantCouponToActiveUsers(ctx, tx, sqlc.GrantCouponToActiveUsersParams{
		CouponID: couponID,
		Quantity: pgconv.IntToInt32(amount),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to grant coupon to active users", err)
	}
	return n, nil
}

func ToCoupon(row sqlc.Coupons) *coupon.Coupon {
	return coupon.ReconstructCoupon(
		row.ID,
		row.Name,
		row.Description,
		int(row.DiscountPercent),
		pgconv.TimeFromPgtype(row.StartsAt),
		pgconv.TimeFromPgtype(row.ExpiresAt),
		row.Enabled,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
