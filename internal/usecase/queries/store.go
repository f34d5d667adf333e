package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"

	"ootd-commerce/internal/domain/coupon"
	"ootd-commerce/internal/domain/store"
	"ootd-commerce/internal/domain/user"
	"ootd-commerce/internal/infra"

	"github.com/google/uuid"
)

// StoreQueries are the seller-side reports of one store.
type StoreQueries interface {
	Orders(ctx context.Context, actorID uuid.UUID, actorRole user.Role, storeID uuid.UUID) ([]*StoreOrderView, error)
	Sales(ctx context.Context, actorID uuid.UUID, actorRole user.Role, storeID uuid.UUID) ([]*StoreProductSalesView, error)
	Ratings(ctx context.Context, actorID uuid.UUID, actorRole user.Role, storeID uuid.UUID) ([]*StoreRatingView, error)
}

type StoreReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*store.Store, error)
	Orders(ctx context.Context, storeID uuid.UUID) ([]*StoreOrderView, error)
	ProductSales(ctx context.Context, storeID uuid.UUID) ([]*StoreProductSalesView, error)
	Ratings(ctx context.Context, storeID uuid.UUID) ([]*StoreRatingView, error)
}

type storeQueriesImpl struct {
	readStore StoreReadStore
}

func NewStoreQueries(readStore StoreReadStore) StoreQueries {
	return &storeQueriesImpl{
		readStore: readStore,
	}
}

// Orders prices each order from the store's own lines, at the snapshot price bound at purchase.
func (q *storeQueriesImpl) Orders(ctx context.Context, actorID uuid.UUID, actorRole user.Role, storeID uuid.UUID) ([]*StoreOrderView, error) {
	if err := q.authorize(ctx, actorID, actorRole, storeID); err != nil {
		return nil, err
	}
	orders, err := q.readStore.Orders(ctx, storeID)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		o.AmountCents = 0
		for _, l := range o.Lines {
			l.SubtotalCents = l.PriceCents * int64(l.Quantity)
			o.AmountCents += l.SubtotalCents
		}
		o.TotalCents = coupon.ApplyPercent(o.AmountCents, int(o.DiscountPercent))
	}
	return orders, nil
}

func (q *storeQueriesImpl) Sales(ctx context.Context, actorID uuid.UUID, actorRole user.Role, storeID uuid.UUID) ([]*StoreProductSalesView, error) {
	if err := q.authorize(ctx, actorID, actorRole, storeID); err != nil {
		return nil, err
	}
	return q.readStore.ProductSales(ctx, storeID)
}

func (q *storeQueriesImpl) Ratings(ctx context.Context, actorID uuid.UUID, actorRole user.Role, storeID uuid.UUID) ([]*StoreRatingView, error) {
	if err := q.authorize(ctx, actorID, actorRole, storeID); err != nil {
		return nil, err
	}
	return q.readStore.Ratings(ctx, storeID)
}

func (q *storeQueriesImpl) authorize(ctx context.Context, actorID uuid.UUID, actorRole user.Role, storeID uuid.UUID) error {
	st, err := q.readStore.FindByID(ctx, storeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return store.ErrStoreNotFound
		}
		return err
	}
	return st.AuthorizeReports(actorID, actorRole)
}
