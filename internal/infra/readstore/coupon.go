package readstore

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/readstore/$GOFILE -package=readstoremock

import (
	"context"
	"time"

	"ootd-commerce/internal/infra"
	sqlc "ootd-commerce/internal/infra/sqlc/generated"
	"ootd-commerce/internal/pkg/pgconv"
	"ootd-commerce/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponViewQueries interface {
	GetCouponByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Coupons, error)
	ListCoupons(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCouponsParams) ([]sqlc.Coupons, error)
	GetCouponBalance(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCouponBalanceParams) (int32, error)
	ListUserCoupons(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUserCouponsParams) ([]sqlc.ListUserCouponsRow, error)
}

type CouponReadStore struct {
	queries CouponViewQueries
	db      sqlc.DBTX
}

func NewCouponReadStore(queries CouponViewQueries, db sqlc.DBTX) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CouponReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CouponView, error) {
	row, err := r.queries.GetCouponByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by ID", err)
	}
	return toCouponView(row), nil
}

func (r *CouponReadStore) List(ctx context.Context, limit, offset int32) ([]*queries.CouponView, error) {
	rows, err := r.queries.ListCoupons(ctx, r.db, sqlc.ListCouponsParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	views := make([]*queries.CouponView, len(rows))
	for i, row := range rows {
		views[i] = toCouponView(row)
	}
	return views, nil
}

func (r *CouponReadStore) Balance(ctx context.Context, userID, couponID uuid.UUID) (int32, error) {
	qty, err := r.queries.GetCouponBalance(ctx, r.db, sqlc.GetCouponBalanceParams{
		UserID:   userID,
		CouponID: couponID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to get coupon balance", err)
	}
	return qty, nil
}

// ListUsable returns the user's coupons that are enabled, within their window at now, and have balance left.
func (r *CouponReadStore) ListUsable(ctx context.Context, userID uuid.UUID, now time.Time) ([]*queries.UserCouponView, error) {
	rows, err := r.queries.ListUserCoupons(ctx, r.db, sqlc.ListUserCouponsParams{
		UserID: userID,
		Now:    pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user coupons", err)
	}
	views := make([]*queries.UserCouponView, len(rows))
	for i, row := range rows {
		views[i] = &queries.UserCouponView{
			ID:              row.ID,
			Name:            row.Name,
			Description:     row.Description,
			DiscountPercent: row.DiscountPercent,
			StartsAt:        pgconv.TimeFromPgtype(row.StartsAt),
			ExpiresAt:       pgconv.TimeFromPgtype(row.ExpiresAt),
			Quantity:        row.Quantity,
		}
	}
	return views, nil
}

func toCouponView(row sqlc.Coupons) *queries.CouponView {
	return &queries.CouponView{
		ID:              row.ID,
		Name:            row.Name,
		Description:     row.Description,
		DiscountPercent: row.DiscountPercent,
		StartsAt:        pgconv.TimeFromPgtype(row.StartsAt),
		ExpiresAt:       pgconv.TimeFromPgtype(row.ExpiresAt),
		Enabled:         row.Enabled,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
