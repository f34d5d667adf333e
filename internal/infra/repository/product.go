package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/$GOFILE -package=repositorymock

import (
	"context"

	"ootd-commerce/internal/domain/product"
	"ootd-commerce/internal/infra"
	sqlc "ootd-commerce/internal/infra/sqlc/generated"
	"ootd-commerce/internal/pkg/pgconv"
	"ootd-commerce/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProductWriteQueries interface {
	CreateProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateProductParams) error
	GetProductWithStore(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetProductWithStoreRow, error)
	GetProductForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetProductForUpdateRow, error)
	LockProductsForUpdate(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.LockProductsForUpdateRow, error)
	UpdateProductInventory(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateProductInventoryParams) error
	DecrementProductStock(ctx context.Context, db sqlc.DBTX, arg sqlc.DecrementProductStockParams) (int32, error)
	InsertProductKeywords(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertProductKeywordsParams) error
}

type ProductRepository struct {
	queries ProductWriteQueries
	db      sqlc.DBTX
}

func NewProductRepository(queries ProductWriteQueries, db sqlc.DBTX) *ProductRepository {
	return &ProductRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ProductRepository) Create(ctx context.Context, tx sqlc.DBTX, p *product.Product) error {
	params := sqlc.CreateProductParams{
		ID:        p.ID(),
		StoreID:   p.StoreID(),
		Stock:     pgconv.IntToInt32(p.Stock()),
		Enabled:   p.Enabled(),
		CreatedAt: pgconv.TimeToPgtype(p.CreatedAt()),
	}
	if err := r.queries.CreateProduct(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create product", err)
	}
	return nil
}

func (r *ProductRepository) Get(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*shared.ProductState, error) {
	row, err := r.queries.GetProductWithStore(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product", err)
	}
	return toProductState(sqlc.LockProductsForUpdateRow(row)), nil
}

func (r *ProductRepository) LockForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*shared.ProductState, error) {
	row, err := r.queries.GetProductForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock product", err)
	}
	return toProductState(sqlc.LockProductsForUpdateRow(row)), nil
}

// LockMany returns fewer states than ids when some products do not exist.
func (r *ProductRepository) LockMany(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) ([]*shared.ProductState, error) {
	rows, err := r.queries.LockProductsForUpdate(ctx, tx, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock products", err)
	}
	states := make([]*shared.ProductState, 0, len(rows))
	for _, row := range rows {
		states = append(states, toProductState(row))
	}
	return states, nil
}

func (r *ProductRepository) SaveInventory(ctx context.Context, tx sqlc.DBTX, p *product.Product) error {
	params := sqlc.UpdateProductInventoryParams{
		ID:      p.ID(),
		Stock:   pgconv.IntToInt32(p.Stock()),
		Enabled: p.Enabled(),
	}
	if err := r.queries.UpdateProductInventory(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update product inventory", err)
	}
	return nil
}

// DecrementStock subtracts amount only while enough stock remains; otherwise it reports product.ErrInsufficientStock.
func (r *ProductRepository) DecrementStock(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, amount int) (int, error) {
	stock, err := r.queries.DecrementProductStock(ctx, tx, sqlc.DecrementProductStockParams{
		Amount: pgconv.IntToInt32(amount),
		ID:     id,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, product.ErrInsufficientStock
		}
		return 0, infra.WrapRepoErr("failed to decrement product stock", err)
	}
	return int(stock), nil
}

func (r *ProductRepository) AddKeywords(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, keywords []string) error {
	if len(keywords) == 0 {
		return nil
	}
	err := r.queries.InsertProductKeywords(ctx, tx, sqlc.InsertProductKeywordsParams{
		ProductID: productID,
		Keywords:  keywords,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to insert product keywords", err)
	}
	return nil
}

func toProductState(row sqlc.LockProductsForUpdateRow) *shared.ProductState {
	return &shared.ProductState{
		Product:      product.ReconstructProduct(row.ID, row.StoreID, int(row.Stock), row.Enabled, pgconv.TimeFromPgtype(row.CreatedAt)),
		StoreEnabled: row.StoreEnabled,
	}
}
