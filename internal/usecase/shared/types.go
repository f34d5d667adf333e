package shared

import (
	"time"

	"ootd-commerce/internal/domain/product"

	"github.com/google/uuid"
)

// ProductState is a product together with the enablement of its store.
type ProductState struct {
	Product      *product.Product
	StoreEnabled bool
}

func (s *ProductState) Purchasable() bool {
	return product.IsPurchasable(s.Product.Enabled(), s.StoreEnabled)
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key           uuid.UUID
	UserID        uuid.UUID
	Endpoint      string
	Status        string
	RequestHash   string
	ResultOrderID *uuid.UUID
	ExpiresAt     time.Time
}

// Outbox event kinds published to the message broker.
const (
	EventOrderCreated     = "order.created"
	EventListingVersioned = "listing.versioned"
)

// OutboxJob is a queued event waiting to be published.
type OutboxJob struct {
	ID          uuid.UUID
	Kind        string
	AggregateID uuid.UUID
	Payload     []byte
	Attempts    int
	RunAt       time.Time
}
