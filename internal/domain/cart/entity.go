package cart

import (
	"ootd-commerce/internal/domain/product"
	"ootd-commerce/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNegativeQuantity = errs.NewKind("cart quantity cannot be negative", errs.ErrBadRequest)
	ErrEmptyRemoval     = errs.NewKind("no products given for removal", errs.ErrBadRequest)
	ErrLineNotFound     = errs.NewKind("product is not in the cart", errs.ErrNotFound)
)

// Line is one staged selection. It does not reserve stock.
type Line struct {
	userID    uuid.UUID
	productID uuid.UUID
	quantity  int
}

func (l Line) UserID() uuid.UUID    { return l.userID }
func (l Line) ProductID() uuid.UUID { return l.productID }
func (l Line) Quantity() int        { return l.quantity }

// Stage validates a positive quantity against the product's live state.
// Removing a line on quantity zero is the caller's job.
func Stage(userID uuid.UUID, p *product.Product, storeEnabled bool, quantity int) (Line, error) {
	if quantity < 0 {
		return Line{}, ErrNegativeQuantity
	}
	if !product.IsPurchasable(p.Enabled(), storeEnabled) {
		return Line{}, product.ErrNotPurchasable
	}
	if err := p.CanSupply(quantity); err != nil {
		return Line{}, err
	}
	return Line{userID: userID, productID: p.ID(), quantity: quantity}, nil
}

// Merge adds delta to an existing staged quantity.
func Merge(existing, delta int) (int, error) {
	if delta <= 0 {
		return 0, product.ErrInvalidQuantity
	}
	return existing + delta, nil
}

// DistinctProductIDs collapses duplicates while keeping first-seen order.
func DistinctProductIDs(ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyRemoval
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}
