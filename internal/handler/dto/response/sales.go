package response

import (
	"ootd-commerce/internal/usecase/queries"

	"github.com/google/uuid"
)

type TopProductResponse struct {
	ProductID    uuid.UUID `json:"productId"`
	StoreID      uuid.UUID `json:"storeId"`
	SnapshotID   uuid.UUID `json:"snapshotId"`
	Version      int32     `json:"version"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	PriceCents   int64     `json:"priceCents"`
	Stock        int32     `json:"stock"`
	SoldQuantity int64     `json:"soldQuantity"`
}

func FromTopProducts(items []*queries.TopProductView) []*TopProductResponse {
	return copyEach[TopProductResponse](items)
}

type TopKeywordResponse struct {
	Keyword      string `json:"keyword"`
	SoldQuantity int64  `json:"soldQuantity"`
}

func FromTopKeywords(items []*queries.TopKeywordView) []*TopKeywordResponse {
	return copyEach[TopKeywordResponse](items)
}
