package response

import (
	"time"

	"ootd-commerce/internal/usecase/queries"

	"github.com/google/uuid"
)

type PlaceOrderResponse struct {
	ID       uuid.UUID `json:"id"`
	Replayed bool      `json:"replayed"`
}

type OrderLineResponse struct {
	ID            uuid.UUID `json:"id"`
	ProductID     uuid.UUID `json:"productId"`
	SnapshotID    uuid.UUID `json:"snapshotId"`
	Version       int32     `json:"version"`
	Name          string    `json:"name"`
	PriceCents    int64     `json:"priceCents"`
	Quantity      int32     `json:"quantity"`
	SubtotalCents int64     `json:"subtotalCents"`
}

type OrderResponse struct {
	ID              uuid.UUID            `json:"id"`
	UserID          uuid.UUID            `json:"userId"`
	CouponID        *uuid.UUID           `json:"couponId,omitempty"`
	Status          string               `json:"status"`
	DiscountPercent int32                `json:"discountPercent"`
	AmountCents     int64                `json:"amountCents"`
	TotalCents      int64                `json:"totalCents"`
	Lines           []*OrderLineResponse `json:"lines"`
	CreatedAt       time.Time            `json:"createdAt"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	return &OrderResponse{
		ID:              v.ID,
		UserID:          v.UserID,
		CouponID:        v.CouponID,
		Status:          v.Status,
		DiscountPercent: v.DiscountPercent,
		AmountCents:     v.AmountCents,
		TotalCents:      v.TotalCents,
		Lines:           copyEach[OrderLineResponse](v.Lines),
		CreatedAt:       v.CreatedAt,
	}
}

type OrderListItemResponse struct {
	ID              uuid.UUID  `json:"id"`
	CouponID        *uuid.UUID `json:"couponId,omitempty"`
	Status          string     `json:"status"`
	LineCount       int64      `json:"lineCount"`
	DiscountPercent int32      `json:"discountPercent"`
	AmountCents     int64      `json:"amountCents"`
	TotalCents      int64      `json:"totalCents"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type OrderPageResponse struct {
	Orders     []*OrderListItemResponse `json:"orders"`
	NextCursor *string                  `json:"nextCursor,omitempty"`
}

func FromOrderPage(p *queries.OrderPage) *OrderPageResponse {
	res := &OrderPageResponse{Orders: copyEach[OrderListItemResponse](p.Items)}
	if p.NextCursor != nil {
		res.NextCursor = &p.NextCursor.After
	}
	return res
}
