package errs

import "errors"

// Error taxonomy shared by domain, usecase and handler layers.
// Specific errors are attached to one of these with Mark so callers can match either.
var (
	ErrNotFound            = errors.New("not found")
	ErrBadRequest          = errors.New("bad request")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInsufficientBalance = errors.New("insufficient coupon balance")
	ErrCouponNotUsable     = errors.New("coupon not usable")
	ErrConflict            = errors.New("conflict")
	ErrForbidden           = errors.New("forbidden")
)
