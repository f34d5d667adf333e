package product

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	id        uuid.UUID
	storeID   uuid.UUID
	stock     int
	enabled   bool
	createdAt time.Time
}

func NewProduct(storeID uuid.UUID, stock int, enabled bool, now time.Time) (*Product, error) {
	if err := validateStock(stock); err != nil {
		return nil, err
	}
	return &Product{
		id:        uuid.New(),
		storeID:   storeID,
		stock:     stock,
		enabled:   enabled,
		createdAt: now,
	}, nil
}

func ReconstructProduct(id, storeID uuid.UUID, stock int, enabled bool, createdAt time.Time) *Product {
	return &Product{
		id:        id,
		storeID:   storeID,
		stock:     stock,
		enabled:   enabled,
		createdAt: createdAt,
	}
}

func (p *Product) ID() uuid.UUID        { return p.id }
func (p *Product) StoreID() uuid.UUID   { return p.storeID }
func (p *Product) Stock() int           { return p.stock }
func (p *Product) Enabled() bool        { return p.enabled }
func (p *Product) CreatedAt() time.Time { return p.createdAt }

func (p *Product) SetStock(stock int) error {
	if err := validateStock(stock); err != nil {
		return err
	}
	p.stock = stock
	return nil
}

func (p *Product) SetEnabled(enabled bool) {
	p.enabled = enabled
}

func validateStock(stock int) error {
	if stock < 0 {
		return ErrNegativeStock
	}
	if stock > MaxStock {
		return ErrStockTooLarge
	}
	return nil
}

// CanSupply checks a requested quantity against current stock without mutating it.
func (p *Product) CanSupply(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > p.stock {
		return ErrInsufficientStock
	}
	return nil
}

func (p *Product) Decrement(quantity int) error {
	if err := p.CanSupply(quantity); err != nil {
		return err
	}
	p.stock -= quantity
	return nil
}

// Snapshot is an immutable version of a product's listing.
type Snapshot struct {
	id        uuid.UUID
	productID uuid.UUID
	version   int
	listing   Listing
	createdAt time.Time
}

func ReconstructSnapshot(id, productID uuid.UUID, version int, listing Listing, createdAt time.Time) *Snapshot {
	return &Snapshot{
		id:        id,
		productID: productID,
		version:   version,
		listing:   listing,
		createdAt: createdAt,
	}
}

// NextSnapshot returns the snapshot that should be current after proposing a listing.
// changed is false when the proposal equals the latest listing, in which case latest is returned.
func NextSnapshot(latest *Snapshot, productID uuid.UUID, proposed Listing, now time.Time) (next *Snapshot, changed bool) {
	if latest != nil && latest.listing.Equal(proposed) {
		return latest, false
	}
	version := 1
	if latest != nil {
		version = latest.version + 1
	}
	return &Snapshot{
		id:        uuid.New(),
		productID: productID,
		version:   version,
		listing:   proposed,
		createdAt: now,
	}, true
}

func (s *Snapshot) ID() uuid.UUID        { return s.id }
func (s *Snapshot) ProductID() uuid.UUID { return s.productID }
func (s *Snapshot) Version() int         { return s.version }
func (s *Snapshot) Listing() Listing     { return s.listing }
func (s *Snapshot) CreatedAt() time.Time { return s.createdAt }
