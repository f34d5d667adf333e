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

type RatingViewQueries interface {
	GetProductRatingSummary(ctx context.Context, db sqlc.DBTX, productID uuid.UUID) (sqlc.GetProductRatingSummaryRow, error)
	ListRatingsByProductFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRatingsByProductFirstPageParams) ([]sqlc.ListRatingsByProductFirstPageRow, error)
	ListRatingsByProductKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRatingsByProductKeysetParams) ([]sqlc.ListRatingsByProductKeysetRow, error)
	CountPurchasedLines(ctx context.Context, db sqlc.DBTX, arg sqlc.CountPurchasedLinesParams) (int64, error)
	CountUserRatings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountUserRatingsParams) (int64, error)
}

type RatingReadStore struct {
	queries RatingViewQueries
	db      sqlc.DBTX
}

func NewRatingReadStore(queries RatingViewQueries, db sqlc.DBTX) *RatingReadStore {
	return &RatingReadStore{
		queries: queries,
		db:      db,
	}
}

// Summary yields a zero average when the product has no ratings.
func (r *RatingReadStore) Summary(ctx context.Context, productID uuid.UUID) (*queries.RatingSummary, error) {
	row, err := r.queries.GetProductRatingSummary(ctx, r.db, productID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get rating summary", err)
	}
	return &queries.RatingSummary{
		ProductID:    productID,
		AverageScore: row.AverageScore,
		RatingCount:  row.RatingCount,
	}, nil
}

func (r *RatingReadStore) FindByProductFirstPage(ctx context.Context, productID uuid.UUID, limit int32) ([]*queries.RatingListItem, error) {
	rows, err := r.queries.ListRatingsByProductFirstPage(ctx, r.db, sqlc.ListRatingsByProductFirstPageParams{
		ProductID: productID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ratings first page", err)
	}
	items := make([]*queries.RatingListItem, len(rows))
	for i, row := range rows {
		items[i] = toRatingListItem(sqlc.ListRatingsByProductKeysetRow(row))
	}
	return items, nil
}

func (r *RatingReadStore) FindByProductKeyset(ctx context.Context, productID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.RatingListItem, error) {
	rows, err := r.queries.ListRatingsByProductKeyset(ctx, r.db, sqlc.ListRatingsByProductKeysetParams{
		ProductID: productID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ratings keyset", err)
	}
	items := make([]*queries.RatingListItem, len(rows))
	for i, row := range rows {
		items[i] = toRatingListItem(row)
	}
	return items, nil
}

func (r *RatingReadStore) Eligibility(ctx context.Context, userID, productID uuid.UUID) (purchased, rated int64, err error) {
	purchased, err = r.queries.CountPurchasedLines(ctx, r.db, sqlc.CountPurchasedLinesParams{
		UserID:    userID,
		ProductID: productID,
	})
	if err != nil {
		return 0, 0, infra.WrapRepoErr("failed to count purchased lines", err)
	}
	rated, err = r.queries.CountUserRatings(ctx, r.db, sqlc.CountUserRatingsParams{
		UserID:    userID,
		ProductID: productID,
	})
	if err != nil {
		return 0, 0, infra.WrapRepoErr("failed to count user ratings", err)
	}
	return purchased, rated, nil
}

func toRatingListItem(row sqlc.ListRatingsByProductKeysetRow) *queries.RatingListItem {
	return &queries.RatingListItem{
		ID:        row.ID,
		UserEmail: row.UserEmail,
		Score:     row.Score,
		Note:      pgconv.StringPtrFromPgtype(row.Note),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
