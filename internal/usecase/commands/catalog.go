package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"

	"ootd-commerce/internal/domain/product"
	"ootd-commerce/internal/domain/store"
	"ootd-commerce/internal/pkg/clock"
	"ootd-commerce/internal/pkg/metrics"
	"ootd-commerce/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateListingRequest struct {
	StoreID     uuid.UUID
	Name        string
	Description string
	PriceCents  int64
	Stock       int
	Keywords    []string
}

type EditListingRequest struct {
	ProductID   uuid.UUID
	Name        string
	Description string
	PriceCents  int64
	Stock       int
	Enabled     bool
}

type ListingResult struct {
	ProductID  uuid.UUID
	SnapshotID uuid.UUID
	Version    int
	Versioned  bool
}

type listingVersionedEvent struct {
	ProductID  uuid.UUID `json:"product_id"`
	SnapshotID uuid.UUID `json:"snapshot_id"`
	Version    int       `json:"version"`
}

type CatalogCommands interface {
	CreateListing(ctx context.Context, actor Actor, req CreateListingRequest) (*ListingResult, error)
	EditListing(ctx context.Context, actor Actor, req EditListingRequest) (*ListingResult, error)
}

type catalogCommandsImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewCatalogCommands(uow shared.UnitOfWork, clk clock.Clock, m *metrics.Metrics) CatalogCommands {
	return &catalogCommandsImpl{uow: uow, clock: clk, metrics: m}
}

func (c *catalogCommandsImpl) CreateListing(ctx context.Context, actor Actor, req CreateListingRequest) (*ListingResult, error) {
	listing, err := product.NewListing(req.Name, req.Description, req.PriceCents)
	if err != nil {
		return nil, err
	}
	keywords, err := product.NormalizeKeywords(req.Keywords)
	if err != nil {
		return nil, err
	}

	var result *ListingResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()
		st, derr := tx.Reads().StoreByID(ctx, req.StoreID)
		if derr != nil {
			return translateRepoErr(derr, store.ErrStoreNotFound)
		}
		if derr = st.AuthorizeCatalogEdit(actor.ID, actor.Role); derr != nil {
			return derr
		}

		p, derr := product.NewProduct(st.ID(), req.Stock, true, now)
		if derr != nil {
			return derr
		}
		if derr = tx.Products().Create(ctx, tx.DB(), p); derr != nil {
			return translateRepoErr(derr, nil)
		}

		snap, _, derr := tx.Snapshots().AppendIfChanged(ctx, tx.DB(), p.ID(), listing, now)
		if derr != nil {
			return translateRepoErr(derr, nil)
		}
		if derr = tx.Products().AddKeywords(ctx, tx.DB(), p.ID(), keywords); derr != nil {
			return translateRepoErr(derr, nil)
		}
		if derr = enqueueEvent(ctx, tx, shared.EventListingVersioned, p.ID(), listingVersionedEvent{
			ProductID:  p.ID(),
			SnapshotID: snap.ID(),
			Version:    snap.Version(),
		}, now); derr != nil {
			return derr
		}

		result = &ListingResult{ProductID: p.ID(), SnapshotID: snap.ID(), Version: snap.Version(), Versioned: true}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.metrics.RecordSnapshotAppended()
	return result, nil
}

// EditListing updates inventory and appends a listing snapshot only when the
// listing fields actually changed.
func (c *catalogCommandsImpl) EditListing(ctx context.Context, actor Actor, req EditListingRequest) (*ListingResult, error) {
	listing, err := product.NewListing(req.Name, req.Description, req.PriceCents)
	if err != nil {
		return nil, err
	}
	if req.Stock < 0 {
		return nil, product.ErrNegativeStock
	}

	var result *ListingResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()
		state, derr := tx.Products().LockForUpdate(ctx, tx.DB(), req.ProductID)
		if derr != nil {
			return translateRepoErr(derr, product.ErrProductNotFound)
		}
		st, derr := tx.Reads().StoreByID(ctx, state.Product.StoreID())
		if derr != nil {
			return translateRepoErr(derr, store.ErrStoreNotFound)
		}
		if derr = st.AuthorizeCatalogEdit(actor.ID, actor.Role); derr != nil {
			return derr
		}

		p := state.Product
		if derr = p.SetStock(req.Stock); derr != nil {
			return derr
		}
		p.SetEnabled(req.Enabled)
		if derr = tx.Products().SaveInventory(ctx, tx.DB(), p); derr != nil {
			return translateRepoErr(derr, nil)
		}

		snap, changed, derr := tx.Snapshots().AppendIfChanged(ctx, tx.DB(), p.ID(), listing, now)
		if derr != nil {
			return translateRepoErr(derr, nil)
		}
		if changed {
			if derr = enqueueEvent(ctx, tx, shared.EventListingVersioned, p.ID(), listingVersionedEvent{
				ProductID:  p.ID(),
				SnapshotID: snap.ID(),
				Version:    snap.Version(),
			}, now); derr != nil {
				return derr
			}
		}

		result = &ListingResult{ProductID: p.ID(), SnapshotID: snap.ID(), Version: snap.Version(), Versioned: changed}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Versioned {
		c.metrics.RecordSnapshotAppended()
	}
	return result, nil
}
