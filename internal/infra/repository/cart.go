package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/$GOFILE -package=repositorymock

import (
	"context"

	"ootd-commerce/internal/domain/cart"
	"ootd-commerce/internal/infra"
	sqlc "ootd-commerce/internal/infra/sqlc/generated"
	"ootd-commerce/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CartWriteQueries interface {
	UpsertCartLine(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCartLineParams) error
	DeleteCartLine(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteCartLineParams) error
	GetCartLineQuantityForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCartLineQuantityForUpdateParams) (int32, error)
	DeleteCartLines(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteCartLinesParams) ([]uuid.UUID, error)
	PruneUnavailableCartLines(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
}

type CartRepository struct {
	queries CartWriteQueries
	db      sqlc.DBTX
}

func NewCartRepository(queries CartWriteQueries, db sqlc.DBTX) *CartRepository {
	return &CartRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CartRepository) Upsert(ctx context.Context, tx sqlc.DBTX, line cart.Line) error {
	err := r.queries.UpsertCartLine(ctx, tx, sqlc.UpsertCartLineParams{
		UserID:    line.UserID(),
		ProductID: line.ProductID(),
		Quantity:  pgconv.IntToInt32(line.Quantity()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert cart line", err)
	}
	return nil
}

func (r *CartRepository) Delete(ctx context.Context, tx sqlc.DBTX, userID, productID uuid.UUID) error {
	err := r.queries.DeleteCartLine(ctx, tx, sqlc.DeleteCartLineParams{
		UserID:    userID,
		ProductID: productID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to delete cart line", err)
	}
	return nil
}

// QuantityForUpdate locks the staged line and returns 0 when none exists.
func (r *CartRepository) QuantityForUpdate(ctx context.Context, tx sqlc.DBTX, userID, productID uuid.UUID) (int, error) {
	qty, err := r.queries.GetCartLineQuantityForUpdate(ctx, tx, sqlc.GetCartLineQuantityForUpdateParams{
		UserID:    userID,
		ProductID: productID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, nil
		}
		return 0, infra.WrapRepoErr("failed to lock cart line", err)
	}
	return int(qty), nil
}

// DeleteMany returns the product ids that were actually staged.
func (r *CartRepository) DeleteMany(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, productIDs []uuid.UUID) ([]uuid.UUID, error) {
	deleted, err := r.queries.DeleteCartLines(ctx, tx, sqlc.DeleteCartLinesParams{
		UserID:     userID,
		ProductIds: productIDs,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to delete cart lines", err)
	}
	return deleted, nil
}

func (r *CartRepository) PruneUnavailable(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (int64, error) {
	n, err := r.queries.PruneUnavailableCartLines(ctx, tx, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to prune cart", err)
	}
	return n, nil
}
