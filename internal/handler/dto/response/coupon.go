package response

import (
	"time"

	"ootd-commerce/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DiscountPercent int32     `json:"discountPercent"`
	StartsAt        time.Time `json:"startsAt"`
	ExpiresAt       time.Time `json:"expiresAt"`
	Enabled         bool      `json:"enabled"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromCouponView(v *queries.CouponView) *CouponResponse {
	return copyTo[CouponResponse](v)
}

func FromCouponList(items []*queries.CouponView) []*CouponResponse {
	return copyEach[CouponResponse](items)
}

type UserCouponResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DiscountPercent int32     `json:"discountPercent"`
	StartsAt        time.Time `json:"startsAt"`
	ExpiresAt       time.Time `json:"expiresAt"`
	Quantity        int32     `json:"quantity"`
}

func FromUserCouponList(items []*queries.UserCouponView) []*UserCouponResponse {
	return copyEach[UserCouponResponse](items)
}

type CouponBalanceResponse struct {
	CouponID uuid.UUID `json:"couponId"`
	Quantity int32     `json:"quantity"`
}

func FromCouponBalance(v *queries.CouponBalanceView) *CouponBalanceResponse {
	return copyTo[CouponBalanceResponse](v)
}

type GrantResponse struct {
	CouponID uuid.UUID `json:"couponId"`
	UserID   uuid.UUID `json:"userId"`
	Quantity int       `json:"quantity"`
}

type GrantAllResponse struct {
	CouponID uuid.UUID `json:"couponId"`
	Granted  int64     `json:"granted"`
}
