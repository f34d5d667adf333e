package readstore

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/readstore/$GOFILE -package=readstoremock

import (
	"context"

	"ootd-commerce/internal/infra"
	sqlc "ootd-commerce/internal/infra/sqlc/generated"
	"ootd-commerce/internal/pkg/pgconv"
	"ootd-commerce/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartViewQueries interface {
	ListCartLines(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListCartLinesRow, error)
	GetCartQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCartQuantityParams) (int32, error)
}

type CartReadStore struct {
	queries CartViewQueries
	db      sqlc.DBTX
}

func NewCartReadStore(queries CartViewQueries, db sqlc.DBTX) *CartReadStore {
	return &CartReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CartReadStore) ListLines(ctx context.Context, userID uuid.UUID) ([]*queries.CartLineView, error) {
	rows, err := r.queries.ListCartLines(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart lines", err)
	}
	lines := make([]*queries.CartLineView, len(rows))
	for i, row := range rows {
		lines[i] = &queries.CartLineView{
			ProductID:  row.ProductID,
			SnapshotID: row.SnapshotID,
			Version:    row.Version,
			Name:       row.Name,
			PriceCents: row.PriceCents,
			Quantity:   row.Quantity,
			Stock:      row.Stock,
			UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return lines, nil
}

// Quantity returns how many units of a product the user has staged, 0 when none.
func (r *CartReadStore) Quantity(ctx context.Context, userID, productID uuid.UUID) (int32, error) {
	qty, err := r.queries.GetCartQuantity(ctx, r.db, sqlc.GetCartQuantityParams{
		UserID:    userID,
		ProductID: productID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to get cart quantity", err)
	}
	return qty, nil
}
