package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"
)

const (
	DefaultTopN = 5
	MaxTopN     = 50
)

type SalesQueries interface {
	TopProducts(ctx context.Context, n int) ([]*TopProductView, error)
	TopKeywords(ctx context.Context, n int) ([]*TopKeywordView, error)
}

type SalesReadStore interface {
	TopProducts(ctx context.Context, limit int32) ([]*TopProductView, error)
	TopKeywords(ctx context.Context, limit int32) ([]*TopKeywordView, error)
}

type salesQueriesImpl struct {
	readStore SalesReadStore
}

func NewSalesQueries(readStore SalesReadStore) SalesQueries {
	return &salesQueriesImpl{
		readStore: readStore,
	}
}

func (q *salesQueriesImpl) TopProducts(ctx context.Context, n int) ([]*TopProductView, error) {
	return q.readStore.TopProducts(ctx, int32(ClampTopN(n)))
}

func (q *salesQueriesImpl) TopKeywords(ctx context.Context, n int) ([]*TopKeywordView, error) {
	return q.readStore.TopKeywords(ctx, int32(ClampTopN(n)))
}

// ClampTopN treats a non-positive n as unset.
func ClampTopN(n int) int {
	if n <= 0 {
		return DefaultTopN
	}
	return min(n, MaxTopN)
}
