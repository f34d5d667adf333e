package readstore

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/readstore/$GOFILE -package=readstoremock

import (
	"context"

	"ootd-commerce/internal/domain/store"
	"ootd-commerce/internal/infra"
	sqlc "ootd-commerce/internal/infra/sqlc/generated"
	"ootd-commerce/internal/pkg/pgconv"
	"ootd-commerce/internal/usecase/queries"

	"github.com/google/uuid"
)

type StoreReadQueries interface {
	GetStoreByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Stores, error)
	ListStoreOrderLines(ctx context.Context, db sqlc.DBTX, storeID uuid.UUID) ([]sqlc.ListStoreOrderLinesRow, error)
	ListStoreProductSales(ctx context.Context, db sqlc.DBTX, storeID uuid.UUID) ([]sqlc.ListStoreProductSalesRow, error)
	ListStoreRatings(ctx context.Context, db sqlc.DBTX, storeID uuid.UUID) ([]sqlc.ListStoreRatingsRow, error)
}

type StoreReadStore struct {
	queries StoreReadQueries
	db      sqlc.DBTX
}

func NewStoreReadStore(queries StoreReadQueries, db sqlc.DBTX) *StoreReadStore {
	return &StoreReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *StoreReadStore) FindByID(ctx context.Context, id uuid.UUID) (*store.Store, error) {
	row, err := r.queries.GetStoreByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("store not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get store", err)
	}
	return store.ReconstructStore(
		row.ID,
		row.OwnerID,
		row.Name,
		row.Description,
		row.Enabled,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

// Orders groups the store's order lines by order. Lines of other stores in
// the same order are not included.
func (r *StoreReadStore) Orders(ctx context.Context, storeID uuid.UUID) ([]*queries.StoreOrderView, error) {
	rows, err := r.queries.ListStoreOrderLines(ctx, r.db, storeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list store order lines", err)
	}

	orders := make([]*queries.StoreOrderView, 0)
	byID := make(map[uuid.UUID]*queries.StoreOrderView)
	for _, row := range rows {
		o, ok := byID[row.OrderID]
		if !ok {
			o = &queries.StoreOrderView{
				ID:              row.OrderID,
				UserID:          row.UserID,
				Status:          row.Status,
				DiscountPercent: int4OrZero(row.DiscountPercent),
				Lines:           make([]*queries.OrderLineView, 0),
				CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
			}
			byID[row.OrderID] = o
			orders = append(orders, o)
		}
		o.Lines = append(o.Lines, &queries.OrderLineView{
			ID:         row.LineID,
			ProductID:  row.ProductID,
			SnapshotID: row.SnapshotID,
			Version:    row.Version,
			Name:       row.Name,
			PriceCents: row.PriceCents,
			Quantity:   row.Quantity,
		})
	}
	return orders, nil
}

func (r *StoreReadStore) ProductSales(ctx context.Context, storeID uuid.UUID) ([]*queries.StoreProductSalesView, error) {
	rows, err := r.queries.ListStoreProductSales(ctx, r.db, storeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list store product sales", err)
	}
	items := make([]*queries.StoreProductSalesView, len(rows))
	for i, row := range rows {
		items[i] = &queries.StoreProductSalesView{
			ProductID:    row.ProductID,
			SnapshotID:   row.SnapshotID,
			Version:      row.Version,
			Name:         row.Name,
			Description:  row.Description,
			PriceCents:   row.PriceCents,
			Stock:        row.Stock,
			Enabled:      row.Enabled,
			SoldQuantity: row.SoldQuantity,
		}
	}
	return items, nil
}

func (r *StoreReadStore) Ratings(ctx context.Context, storeID uuid.UUID) ([]*queries.StoreRatingView, error) {
	rows, err := r.queries.ListStoreRatings(ctx, r.db, storeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list store ratings", err)
	}
	items := make([]*queries.StoreRatingView, len(rows))
	for i, row := range rows {
		items[i] = &queries.StoreRatingView{
			ID:          row.ID,
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			UserEmail:   row.UserEmail,
			Score:       row.Score,
			Note:        pgconv.StringPtrFromPgtype(row.Note),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return items, nil
}
