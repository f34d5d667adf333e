package shared

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/shared/$GOFILE -package=sharedmock

import (
	"context"
	"time"

	"ootd-commerce/internal/domain/cart"
	"ootd-commerce/internal/domain/coupon"
	"ootd-commerce/internal/domain/order"
	"ootd-commerce/internal/domain/product"
	"ootd-commerce/internal/domain/rating"
	"ootd-commerce/internal/domain/store"
	"ootd-commerce/internal/domain/user"
	sqlc "ootd-commerce/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Products() ProductRepository
	Snapshots() SnapshotRepository
	Carts() CartRepository
	Coupons() CouponRepository
	Orders() OrderRepository
	Ratings() RatingRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	StoreByID(ctx context.Context, id uuid.UUID) (*store.Store, error)
	CouponByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error)
	CouponBalance(ctx context.Context, userID, couponID uuid.UUID) (int, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type ProductRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *product.Product) error
	Get(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*ProductState, error)
	LockForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*ProductState, error)
	// LockMany locks rows in ascending id order and returns them in that order.
	LockMany(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) ([]*ProductState, error)
	SaveInventory(ctx context.Context, tx sqlc.DBTX, p *product.Product) error
	DecrementStock(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, amount int) (int, error)
	AddKeywords(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, keywords []string) error
}

type SnapshotRepository interface {
	Latest(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID) (*product.Snapshot, error)
	AppendIfChanged(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, proposed product.Listing, now time.Time) (*product.Snapshot, bool, error)
}

type CartRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, line cart.Line) error
	Delete(ctx context.Context, tx sqlc.DBTX, userID, productID uuid.UUID) error
	QuantityForUpdate(ctx context.Context, tx sqlc.DBTX, userID, productID uuid.UUID) (int, error)
	DeleteMany(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, productIDs []uuid.UUID) ([]uuid.UUID, error)
	PruneUnavailable(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (int64, error)
}

type CouponRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*coupon.Coupon, error)
	Update(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error
	LockGrant(ctx context.Context, tx sqlc.DBTX, userID, couponID uuid.UUID) (int, error)
	Consume(ctx context.Context, tx sqlc.DBTX, userID, couponID uuid.UUID) (int, error)
	Grant(ctx context.Context, tx sqlc.DBTX, userID, couponID uuid.UUID, amount int) (int, error)
	GrantToActiveUsers(ctx context.Context, tx sqlc.DBTX, couponID uuid.UUID, amount int) (int64, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
}

type RatingRepository interface {
	LockSubject(ctx context.Context, tx sqlc.DBTX, userID, productID uuid.UUID) error
	Eligibility(ctx context.Context, tx sqlc.DBTX, userID, productID uuid.UUID) (rating.Eligibility, error)
	Create(ctx context.Context, tx sqlc.DBTX, r *rating.Rating) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, orderID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind string, aggregateID uuid.UUID, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}
