package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/$GOFILE -package=repositorymock

import (
	"context"

	"ootd-commerce/internal/domain/order"
	"ootd-commerce/internal/infra"
	sqlc "ootd-commerce/internal/infra/sqlc/generated"
	"ootd-commerce/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) error
	CreateOrderLine(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderLineParams) error
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      sqlc.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db sqlc.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

// Create writes the order header followed by its lines.
func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	err := r.queries.CreateOrder(ctx, tx, sqlc.CreateOrderParams{
		ID:        o.ID(),
		UserID:    o.UserID(),
		CouponID:  pgconv.UUIDPtrToPgtype(o.CouponID()),
		Status:    o.Status().String(),
		CreatedAt: pgconv.TimeToPgtype(o.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}

	for _, line := range o.Lines() {
		err := r.queries.CreateOrderLine(ctx, tx, sqlc.CreateOrderLineParams{
			ID:         uuid.New(),
			OrderID:    o.ID(),
			SnapshotID: line.SnapshotID,
			Quantity:   pgconv.IntToInt32(line.Quantity),
		})
		if err != nil {
			return infra.WrapRepoErr("failed to create order line", err)
		}
	}
	return nil
}
