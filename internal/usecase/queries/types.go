package queries

import (
	"time"

	"github.com/google/uuid"
)

// ProductView is the latest listing of a product together with its live inventory.
type ProductView struct {
	ID            uuid.UUID `json:"id"`
	StoreID       uuid.UUID `json:"store_id"`
	StoreName     string    `json:"store_name"`
	SnapshotID    uuid.UUID `json:"snapshot_id"`
	Version       int32     `json:"version"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PriceCents    int64     `json:"price_cents"`
	Stock         int32     `json:"stock"`
	Available     int32     `json:"available"`
	Purchasable   bool      `json:"purchasable"`
	SoldQuantity  int64     `json:"sold_quantity"`
	RatingAverage float64   `json:"rating_average"`
	RatingCount   int64     `json:"rating_count"`
	Keywords      []string  `json:"keywords"`
	CreatedAt     time.Time `json:"created_at"`
	ListedAt      time.Time `json:"listed_at"`
}

type ProductListItem struct {
	ID           uuid.UUID `json:"id"`
	StoreID      uuid.UUID `json:"store_id"`
	SnapshotID   uuid.UUID `json:"snapshot_id"`
	Version      int32     `json:"version"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	PriceCents   int64     `json:"price_cents"`
	Stock        int32     `json:"stock"`
	SoldQuantity int64     `json:"sold_quantity"`
	CreatedAt    time.Time `json:"created_at"`
}

// SnapshotView is one immutable historical version of a listing.
type SnapshotView struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	StoreID     uuid.UUID `json:"store_id"`
	Version     int32     `json:"version"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

type CartLineView struct {
	ProductID     uuid.UUID `json:"product_id"`
	SnapshotID    uuid.UUID `json:"snapshot_id"`
	Version       int32     `json:"version"`
	Name          string    `json:"name"`
	PriceCents    int64     `json:"price_cents"`
	Quantity      int32     `json:"quantity"`
	Stock         int32     `json:"stock"`
	SubtotalCents int64     `json:"subtotal_cents"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CartView struct {
	Lines      []*CartLineView `json:"lines"`
	TotalCents int64           `json:"total_cents"`
}

// CouponView is the admin view of a coupon definition.
type CouponView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DiscountPercent int32     `json:"discount_percent"`
	StartsAt        time.Time `json:"starts_at"`
	ExpiresAt       time.Time `json:"expires_at"`
	Enabled         bool      `json:"enabled"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UserCouponView is a usable coupon with the holder's remaining balance.
type UserCouponView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DiscountPercent int32     `json:"discount_percent"`
	StartsAt        time.Time `json:"starts_at"`
	ExpiresAt       time.Time `json:"expires_at"`
	Quantity        int32     `json:"quantity"`
}

type CouponBalanceView struct {
	CouponID uuid.UUID `json:"coupon_id"`
	Quantity int32     `json:"quantity"`
}

type OrderLineView struct {
	ID            uuid.UUID `json:"id"`
	ProductID     uuid.UUID `json:"product_id"`
	SnapshotID    uuid.UUID `json:"snapshot_id"`
	Version       int32     `json:"version"`
	Name          string    `json:"name"`
	PriceCents    int64     `json:"price_cents"`
	Quantity      int32     `json:"quantity"`
	SubtotalCents int64     `json:"subtotal_cents"`
}

type OrderView struct {
	ID              uuid.UUID        `json:"id"`
	UserID          uuid.UUID        `json:"user_id"`
	CouponID        *uuid.UUID       `json:"coupon_id,omitempty"`
	Status          string           `json:"status"`
	DiscountPercent int32            `json:"discount_percent"`
	AmountCents     int64            `json:"amount_cents"`
	TotalCents      int64            `json:"total_cents"`
	Lines           []*OrderLineView `json:"lines"`
	CreatedAt       time.Time        `json:"created_at"`
}

type OrderListItem struct {
	ID              uuid.UUID  `json:"id"`
	CouponID        *uuid.UUID `json:"coupon_id,omitempty"`
	Status          string     `json:"status"`
	LineCount       int64      `json:"line_count"`
	DiscountPercent int32      `json:"discount_percent"`
	AmountCents     int64      `json:"amount_cents"`
	TotalCents      int64      `json:"total_cents"`
	CreatedAt       time.Time  `json:"created_at"`
}

// StoreOrderView is an order as seen by the selling store: only its own lines count.
type StoreOrderView struct {
	ID              uuid.UUID        `json:"id"`
	UserID          uuid.UUID        `json:"user_id"`
	Status          string           `json:"status"`
	DiscountPercent int32            `json:"discount_percent"`
	AmountCents     int64            `json:"amount_cents"`
	TotalCents      int64            `json:"total_cents"`
	Lines           []*OrderLineView `json:"lines"`
	CreatedAt       time.Time        `json:"created_at"`
}

type StoreProductSalesView struct {
	ProductID    uuid.UUID `json:"product_id"`
	SnapshotID   uuid.UUID `json:"snapshot_id"`
	Version      int32     `json:"version"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	PriceCents   int64     `json:"price_cents"`
	Stock        int32     `json:"stock"`
	Enabled      bool      `json:"enabled"`
	SoldQuantity int64     `json:"sold_quantity"`
}

type StoreRatingView struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	UserEmail   string    `json:"user_email"`
	Score       int32     `json:"score"`
	Note        *string   `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type TopProductView struct {
	ProductID    uuid.UUID `json:"product_id"`
	StoreID      uuid.UUID `json:"store_id"`
	SnapshotID   uuid.UUID `json:"snapshot_id"`
	Version      int32     `json:"version"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	PriceCents   int64     `json:"price_cents"`
	Stock        int32     `json:"stock"`
	SoldQuantity int64     `json:"sold_quantity"`
}

type TopKeywordView struct {
	Keyword      string `json:"keyword"`
	SoldQuantity int64  `json:"sold_quantity"`
}

type RatingListItem struct {
	ID        uuid.UUID `json:"id"`
	UserEmail string    `json:"user_email"`
	Score     int32     `json:"score"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type RatingSummary struct {
	ProductID    uuid.UUID `json:"product_id"`
	AverageScore float64   `json:"average_score"`
	RatingCount  int64     `json:"rating_count"`
}

type EligibilityView struct {
	Purchased int64 `json:"purchased"`
	Rated     int64 `json:"rated"`
	Remaining int64 `json:"remaining"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
