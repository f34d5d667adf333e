package store

import (
	"strings"
	"time"

	"ootd-commerce/internal/domain/user"
	"ootd-commerce/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrStoreNotFound   = errs.NewKind("store not found", errs.ErrNotFound)
	ErrNotStoreOwner   = errs.NewKind("store is not owned by the caller", errs.ErrForbidden)
	ErrEmptyStoreName  = errs.NewKind("store name cannot be empty", errs.ErrBadRequest)
	ErrStoreNameLength = errs.NewKind("store name is too long (max 100 characters)", errs.ErrBadRequest)
)

const MaxStoreNameLength = 100

type Store struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	description string
	enabled     bool
	createdAt   time.Time
}

func NewStore(ownerID uuid.UUID, name, description string, now time.Time) (*Store, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyStoreName
	}
	if len(name) > MaxStoreNameLength {
		return nil, ErrStoreNameLength
	}
	return &Store{
		id:          uuid.New(),
		ownerID:     ownerID,
		name:        name,
		description: strings.TrimSpace(description),
		enabled:     true,
		createdAt:   now,
	}, nil
}

func ReconstructStore(id, ownerID uuid.UUID, name, description string, enabled bool, createdAt time.Time) *Store {
	return &Store{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		description: description,
		enabled:     enabled,
		createdAt:   createdAt,
	}
}

// AuthorizeCatalogEdit allows the owning seller and admins to change the store's listings.
func (s *Store) AuthorizeCatalogEdit(actorID uuid.UUID, actorRole user.Role) error {
	return s.authorizeOwner(actorID, actorRole)
}

// AuthorizeReports allows the owning seller and admins to read the store's orders, sales and ratings.
func (s *Store) AuthorizeReports(actorID uuid.UUID, actorRole user.Role) error {
	return s.authorizeOwner(actorID, actorRole)
}

func (s *Store) authorizeOwner(actorID uuid.UUID, actorRole user.Role) error {
	if actorRole == user.RoleAdmin {
		return nil
	}
	if s.ownerID != actorID {
		return ErrNotStoreOwner
	}
	return nil
}

func (s *Store) ID() uuid.UUID        { return s.id }
func (s *Store) OwnerID() uuid.UUID   { return s.ownerID }
func (s *Store) Name() string         { return s.name }
func (s *Store) Description() string  { return s.description }
func (s *Store) Enabled() bool        { return s.enabled }
func (s *Store) CreatedAt() time.Time { return s.createdAt }
