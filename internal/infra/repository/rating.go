package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/$GOFILE -package=repositorymock

import (
	"context"

	"ootd-commerce/internal/domain/rating"
	"ootd-commerce/internal/infra"
	sqlc "ootd-commerce/internal/infra/sqlc/generated"
	"ootd-commerce/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RatingWriteQueries interface {
	AcquireRatingLock(ctx context.Context, db sqlc.DBTX, lockKey string) error
	CountPurchasedLines(ctx context.Context, db sqlc.DBTX, arg sqlc.CountPurchasedLinesParams) (int64, error)
	CountUserRatings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountUserRatingsParams) (int64, error)
	CreateRating(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRatingParams) error
}

type RatingRepository struct {
	queries RatingWriteQueries
	db      sqlc.DBTX
}

func NewRatingRepository(queries RatingWriteQueries, db sqlc.DBTX) *RatingRepository {
	return &RatingRepository{
		queries: queries,
		db:      db,
	}
}

// LockSubject serializes rating submissions for one (user, product) pair until the transaction ends.
func (r *RatingRepository) LockSubject(ctx context.Context, tx sqlc.DBTX, userID, productID uuid.UUID) error {
	if err := r.queries.AcquireRatingLock(ctx, tx, ratingLockKey(userID, productID)); err != nil {
		return infra.WrapRepoErr("failed to acquire rating lock", err)
	}
	return nil
}

func (r *RatingRepository) Eligibility(ctx context.Context, tx sqlc.DBTX, userID, productID uuid.UUID) (rating.Eligibility, error) {
	purchased, err := r.queries.CountPurchasedLines(ctx, tx, sqlc.CountPurchasedLinesParams{
		UserID:    userID,
		ProductID: productID,
	})
	if err != nil {
		return rating.Eligibility{}, infra.WrapRepoErr("failed to count purchased lines", err)
	}
	rated, err := r.queries.CountUserRatings(ctx, tx, sqlc.CountUserRatingsParams{
		UserID:    userID,
		ProductID: productID,
	})
	if err != nil {
		return rating.Eligibility{}, infra.WrapRepoErr("failed to count user ratings", err)
	}
	return rating.Eligibility{Purchased: purchased, Rated: rated}, nil
}

func (r *RatingRepository) Create(ctx context.Context, tx sqlc.DBTX, rt *rating.Rating) error {
	err := r.queries.CreateRating(ctx, tx, sqlc.CreateRatingParams{
		ID:        rt.ID(),
		ProductID: rt.ProductID(),
		UserID:    rt.UserID(),
		Score:     pgconv.IntToInt32(rt.Score().Value()),
		Note:      pgconv.StringPtrToPgtype(rt.Note().Ptr()),
		CreatedAt: pgconv.TimeToPgtype(rt.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create rating", err)
	}
	return nil
}

func ratingLockKey(userID, productID uuid.UUID) string {
	return "rating:" + userID.String() + ":" + productID.String()
}
