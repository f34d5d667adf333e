//go:build unit || e2e

package builder

import (
	"time"

	reqdto "ootd-commerce/internal/handler/dto/request"
	"ootd-commerce/internal/pkg/ptr"
	"ootd-commerce/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	ID          uuid.UUID
	StoreID     uuid.UUID
	SnapshotID  uuid.UUID
	Version     int32
	Name        string
	Description string
	PriceCents  int64
	Stock       int32
	Keywords    []string
	Enabled     bool
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:          uuid.New(),
		StoreID:     uuid.New(),
		SnapshotID:  uuid.New(),
		Version:     1,
		Name:        "Linen shirt",
		Description: "Relaxed fit linen shirt",
		PriceCents:  1000,
		Stock:       10,
		Keywords:    []string{"linen", "summer"},
		Enabled:     true,
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) BuildCreateRequestDTO() reqdto.CreateListingRequest {
	return reqdto.CreateListingRequest{
		Name:        b.Name,
		Description: b.Description,
		PriceCents:  ptr.Of(b.PriceCents),
		Stock:       ptr.Of(int(b.Stock)),
		Keywords:    b.Keywords,
	}
}

func (b *ProductBuilder) BuildEditRequestDTO() reqdto.EditListingRequest {
	return reqdto.EditListingRequest{
		Name:        b.Name,
		Description: b.Description,
		PriceCents:  ptr.Of(b.PriceCents),
		Stock:       ptr.Of(int(b.Stock)),
		Enabled:     ptr.Of(b.Enabled),
	}
}

func (b *ProductBuilder) BuildView() *queries.ProductView {
	now := time.Now().UTC().Truncate(time.Second)
	return &queries.ProductView{
		ID:          b.ID,
		StoreID:     b.StoreID,
		StoreName:   "Test store",
		SnapshotID:  b.SnapshotID,
		Version:     b.Version,
		Name:        b.Name,
		Description: b.Description,
		PriceCents:  b.PriceCents,
		Stock:       b.Stock,
		Available:   b.Stock,
		Purchasable: b.Enabled && b.Stock > 0,
		Keywords:    b.Keywords,
		CreatedAt:   now,
		ListedAt:    now,
	}
}

func (b *ProductBuilder) BuildListItem() *queries.ProductListItem {
	return &queries.ProductListItem{
		ID:          b.ID,
		StoreID:     b.StoreID,
		SnapshotID:  b.SnapshotID,
		Version:     b.Version,
		Name:        b.Name,
		Description: b.Description,
		PriceCents:  b.PriceCents,
		Stock:       b.Stock,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
}
