package response

import (
	"time"

	"ootd-commerce/internal/usecase/queries"

	"github.com/google/uuid"
)

type StoreOrderResponse struct {
	ID              uuid.UUID            `json:"id"`
	UserID          uuid.UUID            `json:"userId"`
	Status          string               `json:"status"`
	DiscountPercent int32                `json:"discountPercent"`
	AmountCents     int64                `json:"amountCents"`
	TotalCents      int64                `json:"totalCents"`
	Lines           []*OrderLineResponse `json:"lines"`
	CreatedAt       time.Time            `json:"createdAt"`
}

func FromStoreOrders(items []*queries.StoreOrderView) []*StoreOrderResponse {
	out := make([]*StoreOrderResponse, 0, len(items))
	for _, v := range items {
		out = append(out, &StoreOrderResponse{
			ID:              v.ID,
			UserID:          v.UserID,
			Status:          v.Status,
			DiscountPercent: v.DiscountPercent,
			AmountCents:     v.AmountCents,
			TotalCents:      v.TotalCents,
			Lines:           copyEach[OrderLineResponse](v.Lines),
			CreatedAt:       v.CreatedAt,
		})
	}
	return out
}

type StoreProductSalesResponse struct {
	ProductID    uuid.UUID `json:"productId"`
	SnapshotID   uuid.UUID `json:"snapshotId"`
	Version      int32     `json:"version"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	PriceCents   int64     `json:"priceCents"`
	Stock        int32     `json:"stock"`
	Enabled      bool      `json:"enabled"`
	SoldQuantity int64     `json:"soldQuantity"`
}

func FromStoreProductSales(items []*queries.StoreProductSalesView) []*StoreProductSalesResponse {
	return copyEach[StoreProductSalesResponse](items)
}

type StoreRatingResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	UserEmail   string    `json:"userEmail"`
	Score       int32     `json:"score"`
	Note        *string   `json:"note,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromStoreRatings(items []*queries.StoreRatingView) []*StoreRatingResponse {
	return copyEach[StoreRatingResponse](items)
}
