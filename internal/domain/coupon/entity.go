package coupon

import (
	"strings"
	"time"

	"ootd-commerce/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCouponNotFound      = errs.NewKind("coupon not found", errs.ErrNotFound)
	ErrCouponDisabled      = errs.NewKind("coupon is disabled", errs.ErrCouponNotUsable)
	ErrCouponExpired       = errs.NewKind("coupon has expired", errs.ErrCouponNotUsable)
	ErrCouponNotYetValid   = errs.NewKind("coupon is not yet valid", errs.ErrCouponNotUsable)
	ErrInvalidWindow       = errs.NewKind("coupon start must not be after its expiry", errs.ErrBadRequest)
	ErrInsufficientBalance = errs.NewKind("no remaining uses of this coupon", errs.ErrInsufficientBalance)
)

type Coupon struct {
	id          uuid.UUID
	name        Name
	description string
	discount    Discount
	startsAt    time.Time
	expiresAt   time.Time
	enabled     bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCoupon(name, description string, discountPercent int, startsAt, expiresAt time.Time, enabled bool, now time.Time) (*Coupon, error) {
	c := &Coupon{
		id:        uuid.New(),
		createdAt: now,
	}
	if err := c.Revise(name, description, discountPercent, startsAt, expiresAt, enabled, now); err != nil {
		return nil, err
	}
	return c, nil
}

func ReconstructCoupon(
	id uuid.UUID,
	name, description string,
	discountPercent int,
	startsAt, expiresAt time.Time,
	enabled bool,
	createdAt, updatedAt time.Time,
) *Coupon {
	return &Coupon{
		id:          id,
		name:        Name(name),
		description: description,
		discount:    Discount{percent: discountPercent},
		startsAt:    startsAt,
		expiresAt:   expiresAt,
		enabled:     enabled,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Revise replaces the definition after validating every field.
func (c *Coupon) Revise(name, description string, discountPercent int, startsAt, expiresAt time.Time, enabled bool, now time.Time) error {
	n, err := NewName(name)
	if err != nil {
		return err
	}
	d, err := NewDiscount(discountPercent)
	if err != nil {
		return err
	}
	if startsAt.After(expiresAt) {
		return ErrInvalidWindow
	}
	c.name = n
	c.description = strings.TrimSpace(description)
	c.discount = d
	c.startsAt = startsAt
	c.expiresAt = expiresAt
	c.enabled = enabled
	c.updatedAt = now
	return nil
}

func (c *Coupon) IsValidAt(t time.Time) bool {
	return !t.Before(c.startsAt) && !t.After(c.expiresAt)
}

// ValidateUsage checks the coupon definition only; balances are the ledger's concern.
func (c *Coupon) ValidateUsage(t time.Time) error {
	if !c.enabled {
		return ErrCouponDisabled
	}
	if t.Before(c.startsAt) {
		return ErrCouponNotYetValid
	}
	if t.After(c.expiresAt) {
		return ErrCouponExpired
	}
	return nil
}

func (c *Coupon) ID() uuid.UUID        { return c.id }
func (c *Coupon) Name() Name           { return c.name }
func (c *Coupon) Description() string  { return c.description }
func (c *Coupon) Discount() Discount   { return c.discount }
func (c *Coupon) StartsAt() time.Time  { return c.startsAt }
func (c *Coupon) ExpiresAt() time.Time { return c.expiresAt }
func (c *Coupon) Enabled() bool        { return c.enabled }
func (c *Coupon) CreatedAt() time.Time { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time { return c.updatedAt }
