package response

import (
	"time"

	"ootd-commerce/internal/usecase/commands"
	"ootd-commerce/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductResponse struct {
	ID            uuid.UUID `json:"id"`
	StoreID       uuid.UUID `json:"storeId"`
	StoreName     string    `json:"storeName"`
	SnapshotID    uuid.UUID `json:"snapshotId"`
	Version       int32     `json:"version"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PriceCents    int64     `json:"priceCents"`
	Stock         int32     `json:"stock"`
	Available     int32     `json:"available"`
	Purchasable   bool      `json:"purchasable"`
	SoldQuantity  int64     `json:"soldQuantity"`
	RatingAverage float64   `json:"ratingAverage"`
	RatingCount   int64     `json:"ratingCount"`
	Keywords      []string  `json:"keywords"`
	CreatedAt     time.Time `json:"createdAt"`
	ListedAt      time.Time `json:"listedAt"`
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	res := copyTo[ProductResponse](v)
	if res.Keywords == nil {
		res.Keywords = []string{}
	}
	return res
}

type ProductListItemResponse struct {
	ID           uuid.UUID `json:"id"`
	StoreID      uuid.UUID `json:"storeId"`
	SnapshotID   uuid.UUID `json:"snapshotId"`
	Version      int32     `json:"version"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	PriceCents   int64     `json:"priceCents"`
	Stock        int32     `json:"stock"`
	SoldQuantity int64     `json:"soldQuantity"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ProductPageResponse struct {
	Items  []*ProductListItemResponse `json:"items"`
	Limit  int                        `json:"limit"`
	Offset int                        `json:"offset"`
}

func FromProductPage(p *queries.ProductPage) *ProductPageResponse {
	return &ProductPageResponse{
		Items:  copyEach[ProductListItemResponse](p.Items),
		Limit:  p.Limit,
		Offset: p.Offset,
	}
}

type SnapshotResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"productId"`
	StoreID     uuid.UUID `json:"storeId"`
	Version     int32     `json:"version"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"priceCents"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromSnapshotView(v *queries.SnapshotView) *SnapshotResponse {
	return copyTo[SnapshotResponse](v)
}

// ListingResponse reports whether an edit produced a new snapshot version.
type ListingResponse struct {
	ProductID  uuid.UUID `json:"productId"`
	SnapshotID uuid.UUID `json:"snapshotId"`
	Version    int       `json:"version"`
	Versioned  bool      `json:"versioned"`
}

func FromListingResult(r *commands.ListingResult) *ListingResponse {
	return copyTo[ListingResponse](r)
}
