//go:build unit || e2e

package builder

import (
	"time"

	reqdto "ootd-commerce/internal/handler/dto/request"
	"ootd-commerce/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderLineSpec struct {
	ProductID  uuid.UUID
	Quantity   int
	PriceCents int64
}

type OrderBuilder struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	CouponID *uuid.UUID
	Discount int32
	Lines    []OrderLineSpec
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Lines: []OrderLineSpec{
			{ProductID: uuid.New(), Quantity: 2, PriceCents: 1000},
		},
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) BuildRequestDTO() reqdto.PlaceOrderRequest {
	lines := make([]reqdto.OrderLineRequest, 0, len(b.Lines))
	for _, l := range b.Lines {
		lines = append(lines, reqdto.OrderLineRequest{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return reqdto.PlaceOrderRequest{
		CouponID: b.CouponID,
		Lines:    lines,
	}
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	var amount int64
	lines := make([]*queries.OrderLineView, 0, len(b.Lines))
	for i, l := range b.Lines {
		subtotal := l.PriceCents * int64(l.Quantity)
		amount += subtotal
		lines = append(lines, &queries.OrderLineView{
			ID:            uuid.New(),
			ProductID:     l.ProductID,
			SnapshotID:    uuid.New(),
			Version:       1,
			Name:          "Item " + string(rune('A'+i)),
			PriceCents:    l.PriceCents,
			Quantity:      int32(l.Quantity),
			SubtotalCents: subtotal,
		})
	}
	return &queries.OrderView{
		ID:              b.ID,
		UserID:          b.UserID,
		CouponID:        b.CouponID,
		Status:          "pending",
		DiscountPercent: b.Discount,
		AmountCents:     amount,
		TotalCents:      amount * int64(100-b.Discount) / 100,
		Lines:           lines,
		CreatedAt:       time.Now().UTC().Truncate(time.Second),
	}
}
