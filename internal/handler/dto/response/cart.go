package response

import (
	"time"

	"ootd-commerce/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartLineResponse struct {
	ProductID     uuid.UUID `json:"productId"`
	SnapshotID    uuid.UUID `json:"snapshotId"`
	Version       int32     `json:"version"`
	Name          string    `json:"name"`
	PriceCents    int64     `json:"priceCents"`
	Quantity      int32     `json:"quantity"`
	Stock         int32     `json:"stock"`
	SubtotalCents int64     `json:"subtotalCents"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type CartResponse struct {
	Lines      []*CartLineResponse `json:"lines"`
	TotalCents int64               `json:"totalCents"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	return &CartResponse{
		Lines:      copyEach[CartLineResponse](v.Lines),
		TotalCents: v.TotalCents,
	}
}
