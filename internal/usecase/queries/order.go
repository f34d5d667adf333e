package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"
	"time"

	"ootd-commerce/internal/domain/coupon"
	"ootd-commerce/internal/domain/order"
	"ootd-commerce/internal/infra"

	"github.com/google/uuid"
)

type OrderPage struct {
	Items      []*OrderListItem `json:"items"`
	NextCursor *Cursor          `json:"next_cursor,omitempty"`
}

type OrderQueries interface {
	ListOrders(ctx context.Context, userID uuid.UUID, cursor *string, limit int) (*OrderPage, error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*OrderView, error)
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*OrderListItem, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*OrderListItem, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
}

func NewOrderQueries(readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{
		readStore: readStore,
	}
}

func (q *orderQueriesImpl) ListOrders(ctx context.Context, userID uuid.UUID, cursor *string, limit int) (*OrderPage, error) {
	limit = ValidateLimit(limit)
	probe := int32(limit + 1)

	var (
		rows []*OrderListItem
		err  error
	)
	if cursor == nil || *cursor == "" {
		rows, err = q.readStore.FindByUserFirstPage(ctx, userID, probe)
	} else {
		lastAt, lastID, derr := DecodeAfterCursor(*cursor)
		if derr != nil {
			return nil, derr
		}
		rows, err = q.readStore.FindByUserKeyset(ctx, userID, lastAt, lastID, probe)
	}
	if err != nil {
		return nil, err
	}

	items, next := paginate(rows, limit, func(o *OrderListItem) (time.Time, uuid.UUID) {
		return o.CreatedAt, o.ID
	})
	for _, it := range items {
		it.TotalCents = coupon.ApplyPercent(it.AmountCents, int(it.DiscountPercent))
	}
	return &OrderPage{Items: items, NextCursor: next}, nil
}

// GetOrder reports another user's order as not found.
func (q *orderQueriesImpl) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*OrderView, error) {
	view, err := q.readStore.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, err
	}
	if view.UserID != userID {
		return nil, order.ErrOrderNotFound
	}

	view.AmountCents = 0
	for _, l := range view.Lines {
		l.SubtotalCents = l.PriceCents * int64(l.Quantity)
		view.AmountCents += l.SubtotalCents
	}
	view.TotalCents = coupon.ApplyPercent(view.AmountCents, int(view.DiscountPercent))
	return view, nil
}
