package coupon

import (
	"math"
	"strings"
	"unicode/utf8"

	"ootd-commerce/internal/pkg/errs"
)

var (
	ErrInvalidCouponName      = errs.NewKind("coupon name must be between 1 and 100 characters", errs.ErrBadRequest)
	ErrInvalidDiscountPercent = errs.NewKind("discount percent must be between 1 and 100", errs.ErrBadRequest)
	ErrInvalidGrantAmount     = errs.NewKind("grant amount must be positive", errs.ErrBadRequest)
	ErrGrantAmountTooLarge    = errs.NewKind("grant amount exceeds the maximum allowed", errs.ErrBadRequest)
)

const MaxCouponNameLength = 100

// MaxGrantAmount bounds a single grant to what the balance column can hold.
const MaxGrantAmount = math.MaxInt32

type Name string

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > MaxCouponNameLength {
		return "", ErrInvalidCouponName
	}
	return Name(s), nil
}

func (n Name) String() string {
	return string(n)
}

// Discount is a whole-number percentage taken off an order amount.
type Discount struct {
	percent int
}

func NewDiscount(percent int) (Discount, error) {
	if percent < 1 || percent > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{percent: percent}, nil
}

func (d Discount) Percent() int {
	return d.percent
}

func (d Discount) Apply(amountCents int64) int64 {
	return ApplyPercent(amountCents, d.percent)
}

// ApplyPercent drops fractional cents.
func ApplyPercent(amountCents int64, percent int) int64 {
	if percent <= 0 {
		return amountCents
	}
	if percent >= 100 {
		return 0
	}
	return amountCents * int64(100-percent) / 100
}

func ValidateGrantAmount(amount int) error {
	if amount <= 0 {
		return ErrInvalidGrantAmount
	}
	if amount > MaxGrantAmount {
		return ErrGrantAmountTooLarge
	}
	return nil
}
