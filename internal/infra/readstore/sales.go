package readstore

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/readstore/$GOFILE -package=readstoremock

import (
	"context"

	"ootd-commerce/internal/infra"
	sqlc "ootd-commerce/internal/infra/sqlc/generated"
	"ootd-commerce/internal/usecase/queries"
)

type SalesViewQueries interface {
	ListTopProducts(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ListTopProductsRow, error)
	ListTopKeywords(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ListTopKeywordsRow, error)
}

type SalesReadStore struct {
	queries SalesViewQueries
	db      sqlc.DBTX
}

func NewSalesReadStore(queries SalesViewQueries, db sqlc.DBTX) *SalesReadStore {
	return &SalesReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SalesReadStore) TopProducts(ctx context.Context, limit int32) ([]*queries.TopProductView, error) {
	rows, err := r.queries.ListTopProducts(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list top products", err)
	}
	views := make([]*queries.TopProductView, len(rows))
	for i, row := range rows {
		views[i] = &queries.TopProductView{
			ProductID:    row.ProductID,
			StoreID:      row.StoreID,
			SnapshotID:   row.SnapshotID,
			Version:      row.Version,
			Name:         row.Name,
			Description:  row.Description,
			PriceCents:   row.PriceCents,
			Stock:        row.Stock,
			SoldQuantity: row.SoldQuantity,
		}
	}
	return views, nil
}

func (r *SalesReadStore) TopKeywords(ctx context.Context, limit int32) ([]*queries.TopKeywordView, error) {
	rows, err := r.queries.ListTopKeywords(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list top keywords", err)
	}
	views := make([]*queries.TopKeywordView, len(rows))
	for i, row := range rows {
		views[i] = &queries.TopKeywordView{Keyword: row.Keyword, SoldQuantity: row.SoldQuantity}
	}
	return views, nil
}
