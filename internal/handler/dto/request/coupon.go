package request

import (
	"time"

	"ootd-commerce/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateCouponRequest struct {
	Name            string    `json:"name" binding:"required,max=100"`
	Description     string    `json:"description" binding:"max=1000"`
	DiscountPercent int       `json:"discountPercent" binding:"required,min=1,max=100"`
	StartsAt        time.Time `json:"startsAt" binding:"required"`
	ExpiresAt       time.Time `json:"expiresAt" binding:"required,gtefield=StartsAt"`
	Enabled         *bool     `json:"enabled"`
}

func (r *CreateCouponRequest) ToCommand() commands.CreateCouponRequest {
	enabled := true
	if r.Enabled != nil {
		enabled = *r.Enabled
	}
	return commands.CreateCouponRequest{
		Name:            r.Name,
		Description:     r.Description,
		DiscountPercent: r.DiscountPercent,
		StartsAt:        r.StartsAt,
		ExpiresAt:       r.ExpiresAt,
		Enabled:         enabled,
	}
}

type UpdateCouponRequest struct {
	Name            *string    `json:"name" binding:"omitempty,max=100"`
	Description     *string    `json:"description" binding:"omitempty,max=1000"`
	DiscountPercent *int       `json:"discountPercent" binding:"omitempty,min=1,max=100"`
	StartsAt        *time.Time `json:"startsAt"`
	ExpiresAt       *time.Time `json:"expiresAt"`
	Enabled         *bool      `json:"enabled"`
}

func (r *UpdateCouponRequest) ToCommand() commands.UpdateCouponRequest {
	return commands.UpdateCouponRequest{
		Name:            r.Name,
		Description:     r.Description,
		DiscountPercent: r.DiscountPercent,
		StartsAt:        r.StartsAt,
		ExpiresAt:       r.ExpiresAt,
		Enabled:         r.Enabled,
	}
}

type GrantCouponRequest struct {
	UserID uuid.UUID `json:"userId" binding:"required"`
	Amount int       `json:"amount" binding:"required,min=1,max=2147483647"`
}

type GrantAllCouponRequest struct {
	Amount int `json:"amount" binding:"required,min=1,max=2147483647"`
}
