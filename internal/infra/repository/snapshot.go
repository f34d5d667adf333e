package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/$GOFILE -package=repositorymock

import (
	"context"
	"time"

	"ootd-commerce/internal/domain/product"
	"ootd-commerce/internal/infra"
	sqlc "ootd-commerce/internal/infra/sqlc/generated"
	"ootd-commerce/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SnapshotWriteQueries interface {
	GetLatestSnapshot(ctx context.Context, db sqlc.DBTX, productID uuid.UUID) (sqlc.ProductSnapshots, error)
	GetLatestSnapshotForUpdate(ctx context.Context, db sqlc.DBTX, productID uuid.UUID) (sqlc.ProductSnapshots, error)
	InsertProductSnapshot(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertProductSnapshotParams) error
}

type SnapshotRepository struct {
	queries SnapshotWriteQueries
	db      sqlc.DBTX
}

func NewSnapshotRepository(queries SnapshotWriteQueries, db sqlc.DBTX) *SnapshotRepository {
	return &SnapshotRepository{
		queries: queries,
		db:      db,
	}
}

// Latest returns nil without error when the product has no snapshot yet.
func (r *SnapshotRepository) Latest(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID) (*product.Snapshot, error) {
	row, err := r.queries.GetLatestSnapshot(ctx, tx, productID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get latest snapshot", err)
	}
	return toSnapshot(row)
}

// AppendIfChanged writes version latest+1 unless proposed equals the latest listing.
// Callers hold the product row lock; a concurrent writer that slipped past it surfaces as KindDuplicateKey.
func (r *SnapshotRepository) AppendIfChanged(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, proposed product.Listing, now time.Time) (*product.Snapshot, bool, error) {
	var latest *product.Snapshot
	row, err := r.queries.GetLatestSnapshotForUpdate(ctx, tx, productID)
	switch {
	case err == nil:
		if latest, err = toSnapshot(row); err != nil {
			return nil, false, err
		}
	case pgconv.IsNoRows(err):
	default:
		return nil, false, infra.WrapRepoErr("failed to lock latest snapshot", err)
	}

	next, changed := product.NextSnapshot(latest, productID, proposed, now)
	if !changed {
		return next, false, nil
	}

	listing := next.Listing()
	params := sqlc.InsertProductSnapshotParams{
		ID:          next.ID(),
		ProductID:   productID,
		Version:     pgconv.IntToInt32(next.Version()),
		Name:        listing.Name(),
		Description: listing.Description(),
		PriceCents:  listing.PriceCents(),
		CreatedAt:   pgconv.TimeToPgtype(next.CreatedAt()),
	}
	if err := r.queries.InsertProductSnapshot(ctx, tx, params); err != nil {
		return nil, false, infra.WrapRepoErr("failed to insert product snapshot", err)
	}
	return next, true, nil
}

func toSnapshot(row sqlc.ProductSnapshots) (*product.Snapshot, error) {
	listing, err := product.NewListing(row.Name, row.Description, row.PriceCents)
	if err != nil {
		return nil, infra.WrapRepoErr("stored snapshot failed validation", err)
	}
	return product.ReconstructSnapshot(row.ID, row.ProductID, int(row.Version), listing, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}
