package product

import (
	"strings"
	"unicode/utf8"

	"ootd-commerce/internal/pkg/errs"
)

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 2000
	MaxKeywords          = 10
	MaxKeywordLength     = 30
)

// Listing is the descriptive part of a product that is versioned by snapshots.
type Listing struct {
	name        string
	description string
	priceCents  int64
}

func NewListing(name, description string, priceCents int64) (Listing, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return Listing{}, ErrInvalidName
	}
	description = strings.TrimSpace(description)
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return Listing{}, ErrDescriptionTooLong
	}
	if priceCents < 0 {
		return Listing{}, ErrNegativePrice
	}
	return Listing{name: name, description: description, priceCents: priceCents}, nil
}

func (l Listing) Name() string        { return l.name }
func (l Listing) Description() string { return l.description }
func (l Listing) PriceCents() int64   { return l.priceCents }

func (l Listing) Equal(other Listing) bool {
	return l.name == other.name &&
		l.description == other.description &&
		l.priceCents == other.priceCents
}

// NormalizeKeywords lowercases, trims and de-duplicates keywords, keeping first-seen order.
func NormalizeKeywords(raw []string) ([]string, error) {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, k := range raw {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		if utf8.RuneCountInString(k) > MaxKeywordLength {
			return nil, ErrInvalidKeyword
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	if len(out) > MaxKeywords {
		return nil, ErrTooManyKeywords
	}
	return out, nil
}

var (
	ErrInvalidName        = errs.NewKind("listing name must be between 1 and 100 characters", errs.ErrBadRequest)
	ErrDescriptionTooLong = errs.NewKind("listing description exceeds maximum length", errs.ErrBadRequest)
	ErrNegativePrice      = errs.NewKind("price cannot be negative", errs.ErrBadRequest)
	ErrInvalidKeyword     = errs.NewKind("keyword exceeds maximum length", errs.ErrBadRequest)
	ErrTooManyKeywords    = errs.NewKind("too many keywords", errs.ErrBadRequest)
)
