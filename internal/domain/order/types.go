package order

import "ootd-commerce/internal/pkg/errs"

type Status string

const (
	StatusPending   Status = "pending"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

var (
	ErrEmptyOrder      = errs.NewKind("order must contain at least one line", errs.ErrBadRequest)
	ErrDuplicateLine   = errs.NewKind("order contains the same product more than once", errs.ErrBadRequest)
	ErrInvalidQuantity = errs.NewKind("order line quantity must be positive", errs.ErrBadRequest)
	ErrTooManyLines    = errs.NewKind("order contains too many lines", errs.ErrBadRequest)
	ErrUnboundLine     = errs.NewKind("order line has no listing snapshot", errs.ErrNotFound)
	ErrOrderNotFound   = errs.NewKind("order not found", errs.ErrNotFound)
	ErrRequestReplayed = errs.NewKind("idempotency key reused with a different request", errs.ErrConflict)
	ErrRequestInFlight = errs.NewKind("request with this idempotency key is still processing", errs.ErrConflict)
)

const MaxLines = 100
