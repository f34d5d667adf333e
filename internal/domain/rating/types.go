package rating

import "ootd-commerce/internal/pkg/errs"

var (
	ErrInvalidScore = errs.NewKind("score must be between 1 and 5", errs.ErrBadRequest)
	ErrNoteTooLong  = errs.NewKind("note exceeds maximum length", errs.ErrBadRequest)
	ErrNotEligible  = errs.NewKind("no purchased units left to rate", errs.ErrBadRequest)
)
