package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"

	"ootd-commerce/internal/domain/product"
	"ootd-commerce/internal/infra"

	"github.com/google/uuid"
)

type SortKey string

const (
	SortDefault SortKey = "default"
	SortPrice   SortKey = "price"
	SortSales   SortKey = "sales"
	SortStock   SortKey = "stock"
)

func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPrice, SortSales, SortStock:
		return SortKey(s)
	default:
		return SortDefault
	}
}

type ProductFilter struct {
	StoreID    *uuid.UUID
	Keyword    *string
	Sort       SortKey
	Descending bool
}

type ProductPage struct {
	Items  []*ProductListItem `json:"items"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

type CatalogQueries interface {
	GetProduct(ctx context.Context, productID uuid.UUID, viewer *uuid.UUID) (*ProductView, error)
	GetSnapshot(ctx context.Context, snapshotID uuid.UUID) (*SnapshotView, error)
	ListProducts(ctx context.Context, filter ProductFilter, limit, offset int) (*ProductPage, error)
}

type CatalogReadStore interface {
	FindProduct(ctx context.Context, id uuid.UUID) (*ProductView, error)
	FindSnapshot(ctx context.Context, id uuid.UUID) (*SnapshotView, error)
	ListPurchasable(ctx context.Context, filter ProductFilter, limit, offset int32) ([]*ProductListItem, error)
}

type catalogQueriesImpl struct {
	catalog CatalogReadStore
	ratings RatingReadStore
	carts   CartReadStore
}

func NewCatalogQueries(catalog CatalogReadStore, ratings RatingReadStore, carts CartReadStore) CatalogQueries {
	return &catalogQueriesImpl{
		catalog: catalog,
		ratings: ratings,
		carts:   carts,
	}
}

// GetProduct fills in the rating summary and, for a signed-in viewer, how many
// units are still available once their own cart is taken into account.
func (q *catalogQueriesImpl) GetProduct(ctx context.Context, productID uuid.UUID, viewer *uuid.UUID) (*ProductView, error) {
	view, err := q.catalog.FindProduct(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, product.ErrProductNotFound
		}
		return nil, err
	}

	summary, err := q.ratings.Summary(ctx, productID)
	if err != nil {
		return nil, err
	}
	view.RatingAverage = summary.AverageScore
	view.RatingCount = summary.RatingCount

	if viewer != nil {
		staged, err := q.carts.Quantity(ctx, *viewer, productID)
		if err != nil {
			return nil, err
		}
		view.Available = max(view.Stock-staged, 0)
	}
	return view, nil
}

func (q *catalogQueriesImpl) GetSnapshot(ctx context.Context, snapshotID uuid.UUID) (*SnapshotView, error) {
	view, err := q.catalog.FindSnapshot(ctx, snapshotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, product.ErrSnapshotNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListProducts(ctx context.Context, filter ProductFilter, limit, offset int) (*ProductPage, error) {
	limit = ValidateLimit(limit)
	if offset < 0 {
		offset = 0
	}
	if filter.Sort == "" {
		filter.Sort = SortDefault
	}
	items, err := q.catalog.ListPurchasable(ctx, filter, int32(limit), int32(offset))
	if err != nil {
		return nil, err
	}
	return &ProductPage{Items: items, Limit: limit, Offset: offset}, nil
}
