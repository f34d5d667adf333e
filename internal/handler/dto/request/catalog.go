package request

import (
	"ootd-commerce/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateListingRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Description string   `json:"description" binding:"max=2000"`
	PriceCents  *int64   `json:"priceCents" binding:"required,min=0"`
	Stock       *int     `json:"stock" binding:"required,min=0,max=2147483647"`
	Keywords    []string `json:"keywords" binding:"omitempty,max=10,dive,required,max=30"`
}

func (r *CreateListingRequest) ToCommand(storeID uuid.UUID) commands.CreateListingRequest {
	return commands.CreateListingRequest{
		StoreID:     storeID,
		Name:        r.Name,
		Description: r.Description,
		PriceCents:  *r.PriceCents,
		Stock:       *r.Stock,
		Keywords:    r.Keywords,
	}
}

// EditListingRequest replaces the whole listing; omitted fields are rejected.
type EditListingRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=2000"`
	PriceCents  *int64 `json:"priceCents" binding:"required,min=0"`
	Stock       *int   `json:"stock" binding:"required,min=0,max=2147483647"`
	Enabled     *bool  `json:"enabled" binding:"required"`
}

func (r *EditListingRequest) ToCommand(productID uuid.UUID) commands.EditListingRequest {
	return commands.EditListingRequest{
		ProductID:   productID,
		Name:        r.Name,
		Description: r.Description,
		PriceCents:  *r.PriceCents,
		Stock:       *r.Stock,
		Enabled:     *r.Enabled,
	}
}
