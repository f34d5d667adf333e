package readstore

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/readstore/$GOFILE -package=readstoremock

import (
	"context"

	"ootd-commerce/internal/infra"
	sqlc "ootd-commerce/internal/infra/sqlc/generated"
	"ootd-commerce/internal/pkg/pgconv"
	"ootd-commerce/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CatalogViewQueries interface {
	GetProductDetail(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetProductDetailRow, error)
	ListProductKeywords(ctx context.Context, db sqlc.DBTX, productID uuid.UUID) ([]string, error)
	ListPurchasableProducts(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPurchasableProductsParams) ([]sqlc.ListPurchasableProductsRow, error)
	GetSnapshotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetSnapshotByIDRow, error)
}

type CatalogReadStore struct {
	queries CatalogViewQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogViewQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

// FindProduct returns the latest listing; rating and viewer-specific fields are left zero.
func (r *CatalogReadStore) FindProduct(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	row, err := r.queries.GetProductDetail(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product detail", err)
	}
	keywords, err := r.queries.ListProductKeywords(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list product keywords", err)
	}
	if keywords == nil {
		keywords = []string{}
	}
	return &queries.ProductView{
		ID:           row.ID,
		StoreID:      row.StoreID,
		StoreName:    row.StoreName,
		SnapshotID:   row.SnapshotID,
		Version:      row.Version,
		Name:         row.Name,
		Description:  row.Description,
		PriceCents:   row.PriceCents,
		Stock:        row.Stock,
		Available:    row.Stock,
		Purchasable:  row.Enabled && row.StoreEnabled,
		SoldQuantity: row.SoldQuantity,
		Keywords:     keywords,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		ListedAt:     pgconv.TimeFromPgtype(row.SnapshotCreatedAt),
	}, nil
}

func (r *CatalogReadStore) ListPurchasable(ctx context.Context, filter queries.ProductFilter, limit, offset int32) ([]*queries.ProductListItem, error) {
	params := sqlc.ListPurchasableProductsParams{
		StoreID:    pgconv.UUIDPtrToPgtype(filter.StoreID),
		Keyword:    keywordText(filter.Keyword),
		SortKey:    string(filter.Sort),
		Descending: filter.Descending,
		Lim:        limit,
		Off:        offset,
	}
	rows, err := r.queries.ListPurchasableProducts(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list purchasable products", err)
	}

	items := make([]*queries.ProductListItem, len(rows))
	for i, row := range rows {
		items[i] = &queries.ProductListItem{
			ID:           row.ID,
			StoreID:      row.StoreID,
			SnapshotID:   row.SnapshotID,
			Version:      row.Version,
			Name:         row.Name,
			Description:  row.Description,
			PriceCents:   row.PriceCents,
			Stock:        row.Stock,
			SoldQuantity: row.SoldQuantity,
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return items, nil
}

func (r *CatalogReadStore) FindSnapshot(ctx context.Context, id uuid.UUID) (*queries.SnapshotView, error) {
	row, err := r.queries.GetSnapshotByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("snapshot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get snapshot", err)
	}
	return &queries.SnapshotView{
		ID:          row.ID,
		ProductID:   row.ProductID,
		StoreID:     row.StoreID,
		Version:     row.Version,
		Name:        row.Name,
		Description: row.Description,
		PriceCents:  row.PriceCents,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func keywordText(k *string) pgtype.Text {
	if k == nil || *k == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *k, Valid: true}
}
