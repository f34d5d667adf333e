package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"

	"ootd-commerce/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartQueries interface {
	List(ctx context.Context, userID uuid.UUID) (*CartView, error)
}

type CartReadStore interface {
	ListLines(ctx context.Context, userID uuid.UUID) ([]*CartLineView, error)
	Quantity(ctx context.Context, userID, productID uuid.UUID) (int32, error)
}

type cartQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore CartReadStore
}

func NewCartQueries(uow shared.UnitOfWork, readStore CartReadStore) CartQueries {
	return &cartQueriesImpl{
		uow:       uow,
		readStore: readStore,
	}
}

// List drops lines whose product or store was disabled before reading.
// ListLines applies the same enabled predicates.
func (q *cartQueriesImpl) List(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	err := q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Carts().PruneUnavailable(ctx, tx.DB(), userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	lines, err := q.readStore.ListLines(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := &CartView{Lines: lines}
	for _, l := range lines {
		l.SubtotalCents = l.PriceCents * int64(l.Quantity)
		view.TotalCents += l.SubtotalCents
	}
	return view, nil
}
