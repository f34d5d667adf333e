package request

import "github.com/google/uuid"

type SetCartItemRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  *int      `json:"quantity" binding:"required,min=0,max=2147483647"`
}

type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1,max=2147483647"`
}

type RemoveCartItemsRequest struct {
	ProductIDs []uuid.UUID `json:"productIds" binding:"required,min=1,dive,required"`
}
