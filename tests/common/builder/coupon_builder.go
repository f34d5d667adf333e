//go:build unit || e2e

package builder

import (
	"time"

	reqdto "ootd-commerce/internal/handler/dto/request"
	"ootd-commerce/internal/pkg/ptr"
	"ootd-commerce/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	ID              uuid.UUID
	Name            string
	Description     string
	DiscountPercent int
	StartsAt        time.Time
	ExpiresAt       time.Time
	Enabled         bool
}

func NewCouponBuilder() *CouponBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &CouponBuilder{
		ID:              uuid.New(),
		Name:            "SUMMER10",
		Description:     "10% off",
		DiscountPercent: 10,
		StartsAt:        now.Add(-time.Hour),
		ExpiresAt:       now.Add(24 * time.Hour),
		Enabled:         true,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) BuildCreateRequestDTO() reqdto.CreateCouponRequest {
	return reqdto.CreateCouponRequest{
		Name:            b.Name,
		Description:     b.Description,
		DiscountPercent: b.DiscountPercent,
		StartsAt:        b.StartsAt,
		ExpiresAt:       b.ExpiresAt,
		Enabled:         ptr.Of(b.Enabled),
	}
}

func (b *CouponBuilder) BuildView() *queries.CouponView {
	return &queries.CouponView{
		ID:              b.ID,
		Name:            b.Name,
		Description:     b.Description,
		DiscountPercent: int32(b.DiscountPercent),
		StartsAt:        b.StartsAt,
		ExpiresAt:       b.ExpiresAt,
		Enabled:         b.Enabled,
		CreatedAt:       b.StartsAt,
		UpdatedAt:       b.StartsAt,
	}
}
