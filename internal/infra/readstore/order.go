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
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderViewQueries interface {
	GetOrderByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetOrderByIDRow, error)
	ListOrderLines(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.ListOrderLinesRow, error)
	ListOrdersByUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrdersByUserFirstPageParams) ([]sqlc.ListOrdersByUserFirstPageRow, error)
	ListOrdersByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrdersByUserKeysetParams) ([]sqlc.ListOrdersByUserKeysetRow, error)
}

type OrderReadStore struct {
	queries OrderViewQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderViewQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByID loads the header and its lines, each bound to the snapshot in effect at purchase.
func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order", err)
	}
	lineRows, err := r.queries.ListOrderLines(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order lines", err)
	}

	lines := make([]*queries.OrderLineView, len(lineRows))
	for i, l := range lineRows {
		lines[i] = &queries.OrderLineView{
			ID:         l.ID,
			ProductID:  l.ProductID,
			SnapshotID: l.SnapshotID,
			Version:    l.Version,
			Name:       l.Name,
			PriceCents: l.PriceCents,
			Quantity:   l.Quantity,
		}
	}
	return &queries.OrderView{
		ID:              row.ID,
		UserID:          row.UserID,
		CouponID:        pgconv.UUIDPtrFromPgtype(row.CouponID),
		Status:          row.Status,
		DiscountPercent: int4OrZero(row.DiscountPercent),
		Lines:           lines,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *OrderReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	rows, err := r.queries.ListOrdersByUserFirstPage(ctx, r.db, sqlc.ListOrdersByUserFirstPageParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders first page", err)
	}
	items := make([]*queries.OrderListItem, len(rows))
	for i, row := range rows {
		items[i] = toOrderListItem(sqlc.ListOrdersByUserKeysetRow(row))
	}
	return items, nil
}

func (r *OrderReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	rows, err := r.queries.ListOrdersByUserKeyset(ctx, r.db, sqlc.ListOrdersByUserKeysetParams{
		UserID:    userID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders keyset", err)
	}
	items := make([]*queries.OrderListItem, len(rows))
	for i, row := range rows {
		items[i] = toOrderListItem(row)
	}
	return items, nil
}

func toOrderListItem(row sqlc.ListOrdersByUserKeysetRow) *queries.OrderListItem {
	return &queries.OrderListItem{
		ID:              row.ID,
		CouponID:        pgconv.UUIDPtrFromPgtype(row.CouponID),
		Status:          row.Status,
		LineCount:       row.LineCount,
		DiscountPercent: int4OrZero(row.DiscountPercent),
		AmountCents:     row.AmountCents,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func int4OrZero(v pgtype.Int4) int32 {
	if !v.Valid {
		return 0
	}
	return v.Int32
}
