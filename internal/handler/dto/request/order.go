package request

import (
	"ootd-commerce/internal/domain/order"
	"ootd-commerce/internal/usecase/commands"

	"github.com/google/uuid"
)

type OrderLineRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1,max=2147483647"`
}

type PlaceOrderRequest struct {
	CouponID *uuid.UUID         `json:"couponId"`
	Lines    []OrderLineRequest `json:"lines" binding:"required,min=1,max=100,dive"`
}

func (r *PlaceOrderRequest) ToCommand(idempotencyKey *uuid.UUID) commands.PlaceOrderRequest {
	lines := make([]order.LineRequest, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, order.LineRequest{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return commands.PlaceOrderRequest{
		CouponID:       r.CouponID,
		Lines:          lines,
		IdempotencyKey: idempotencyKey,
	}
}
