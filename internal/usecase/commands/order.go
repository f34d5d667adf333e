package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"ootd-commerce/internal/domain/coupon"
	"ootd-commerce/internal/domain/order"
	"ootd-commerce/internal/domain/product"
	"ootd-commerce/internal/infra"
	"ootd-commerce/internal/pkg/clock"
	"ootd-commerce/internal/pkg/errs"
	"ootd-commerce/internal/pkg/metrics"
	"ootd-commerce/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	placeOrderEndpoint = "POST /api/orders"
	idempotencyTTL     = 24 * time.Hour
)

var (
	ErrUnknownCoupon = errs.NewKind("coupon does not exist", errs.ErrCouponNotUsable)
	ErrIdempotency   = errs.New("idempotency record is inconsistent")
)

type PlaceOrderRequest struct {
	CouponID *uuid.UUID
	Lines    []order.LineRequest
	// IdempotencyKey is optional; a repeated key with the same request replays the first order.
	IdempotencyKey *uuid.UUID
}

type PlaceOrderResult struct {
	OrderID    uuid.UUID
	IsReplayed bool
}

type orderCreatedEvent struct {
	OrderID  uuid.UUID          `json:"order_id"`
	UserID   uuid.UUID          `json:"user_id"`
	CouponID *uuid.UUID         `json:"coupon_id"`
	Lines    []orderCreatedLine `json:"lines"`
}

type orderCreatedLine struct {
	ProductID  uuid.UUID `json:"product_id"`
	SnapshotID uuid.UUID `json:"snapshot_id"`
	Quantity   int       `json:"quantity"`
}

type OrderCommands interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, req PlaceOrderRequest) (*PlaceOrderResult, error)
}

type orderCommandsImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewOrderCommands(uow shared.UnitOfWork, clk clock.Clock, m *metrics.Metrics) OrderCommands {
	return &orderCommandsImpl{uow: uow, clock: clk, metrics: m}
}

// PlaceOrder commits the order, its snapshot bindings, stock decrements, the
// coupon redemption and the outbox event together, or none of them.
func (o *orderCommandsImpl) PlaceOrder(ctx context.Context, userID uuid.UUID, req PlaceOrderRequest) (*PlaceOrderResult, error) {
	placement, err := order.NewPlacement(userID, req.CouponID, req.Lines)
	if err != nil {
		o.metrics.RecordOrderRejected(rejectionReason(err))
		return nil, err
	}
	requestHash := calculateRequestHash(req)

	var result *PlaceOrderResult
	err = o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := o.clock.Now()
		result = nil

		if req.IdempotencyKey != nil {
			replayID, derr := o.claimIdempotencyKey(ctx, tx, *req.IdempotencyKey, userID, requestHash, now)
			if derr != nil {
				return derr
			}
			if replayID != nil {
				result = &PlaceOrderResult{OrderID: *replayID, IsReplayed: true}
				return nil
			}
		}

		created, derr := o.placeInTx(ctx, tx, placement, now)
		if derr != nil {
			return derr
		}

		if req.IdempotencyKey != nil {
			if derr = tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), *req.IdempotencyKey, userID, created.ID()); derr != nil {
				return translateRepoErr(derr, nil)
			}
		}

		result = &PlaceOrderResult{OrderID: created.ID()}
		return nil
	})
	if err != nil {
		o.metrics.RecordOrderRejected(rejectionReason(err))
		return nil, err
	}

	if !result.IsReplayed {
		o.metrics.RecordOrderPlaced(len(req.Lines), placement.HasCoupon())
	}
	return result, nil
}

func (o *orderCommandsImpl) placeInTx(ctx context.Context, tx shared.Tx, placement *order.Placement, now time.Time) (*order.Order, error) {
	lockOrder := placement.LockOrder()
	states, err := tx.Products().LockMany(ctx, tx.DB(), lockOrder)
	if err != nil {
		return nil, translateRepoErr(err, product.ErrProductNotFound)
	}
	if len(states) != len(lockOrder) {
		return nil, product.ErrProductNotFound
	}
	byID := make(map[uuid.UUID]*shared.ProductState, len(states))
	for _, s := range states {
		byID[s.Product.ID()] = s
	}

	for _, line := range placement.Lines() {
		state, ok := byID[line.ProductID]
		if !ok {
			return nil, product.ErrProductNotFound
		}
		if !state.Purchasable() {
			return nil, product.ErrNotPurchasable
		}
		if err := state.Product.CanSupply(line.Quantity); err != nil {
			return nil, err
		}
	}

	// the grant row is locked after every product row
	if placement.HasCoupon() {
		if err := o.checkCoupon(ctx, tx, placement.UserID(), *placement.CouponID(), now); err != nil {
			return nil, err
		}
	}

	snapshots := make(map[uuid.UUID]uuid.UUID, len(lockOrder))
	for _, productID := range lockOrder {
		snap, err := tx.Snapshots().Latest(ctx, tx.DB(), productID)
		if err != nil {
			return nil, translateRepoErr(err, nil)
		}
		if snap != nil {
			snapshots[productID] = snap.ID()
		}
	}

	created, err := order.NewOrder(placement, snapshots, now)
	if err != nil {
		return nil, err
	}
	if err := tx.Orders().Create(ctx, tx.DB(), created); err != nil {
		return nil, translateRepoErr(err, nil)
	}

	for _, line := range created.Lines() {
		if _, err := tx.Products().DecrementStock(ctx, tx.DB(), line.ProductID, line.Quantity); err != nil {
			return nil, translateRepoErr(err, nil)
		}
	}

	if placement.HasCoupon() {
		if _, err := tx.Coupons().Consume(ctx, tx.DB(), placement.UserID(), *placement.CouponID()); err != nil {
			return nil, translateRepoErr(err, nil)
		}
	}

	if err := enqueueEvent(ctx, tx, shared.EventOrderCreated, created.ID(), newOrderCreatedEvent(created), now); err != nil {
		return nil, err
	}
	return created, nil
}

func (o *orderCommandsImpl) checkCoupon(ctx context.Context, tx shared.Tx, userID, couponID uuid.UUID, now time.Time) error {
	balance, err := tx.Coupons().LockGrant(ctx, tx.DB(), userID, couponID)
	if err != nil {
		return translateRepoErr(err, nil)
	}
	cp, err := tx.Reads().CouponByID(ctx, couponID)
	if err != nil {
		return translateRepoErr(err, ErrUnknownCoupon)
	}
	if err := cp.ValidateUsage(now); err != nil {
		return err
	}
	if balance < 1 {
		return coupon.ErrInsufficientBalance
	}
	return nil
}

// claimIdempotencyKey returns the prior order id when the request is a replay.
func (o *orderCommandsImpl) claimIdempotencyKey(
	ctx context.Context,
	tx shared.Tx,
	key, userID uuid.UUID,
	requestHash string,
	now time.Time,
) (*uuid.UUID, error) {
	expiresAt := now.Add(idempotencyTTL)
	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, placeOrderEndpoint, requestHash, expiresAt)
	if err != nil {
		return nil, translateRepoErr(err, nil)
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, order.ErrRequestInFlight
		}
		return nil, err
	}

	if !existing.ExpiresAt.After(now) {
		claimed, err := tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, userID, placeOrderEndpoint, requestHash, expiresAt)
		if err != nil {
			return nil, translateRepoErr(err, nil)
		}
		if !claimed {
			return nil, order.ErrRequestInFlight
		}
		return nil, nil
	}

	if existing.RequestHash != requestHash {
		return nil, order.ErrRequestReplayed
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultOrderID == nil {
			return nil, ErrIdempotency
		}
		return existing.ResultOrderID, nil
	case shared.IdempotencyStatusProcessing:
		return nil, order.ErrRequestInFlight
	default:
		return nil, ErrIdempotency
	}
}

func newOrderCreatedEvent(o *order.Order) orderCreatedEvent {
	lines := make([]orderCreatedLine, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, orderCreatedLine{ProductID: l.ProductID, SnapshotID: l.SnapshotID, Quantity: l.Quantity})
	}
	return orderCreatedEvent{
		OrderID:  o.ID(),
		UserID:   o.UserID(),
		CouponID: o.CouponID(),
		Lines:    lines,
	}
}

func calculateRequestHash(req PlaceOrderRequest) string {
	data, _ := json.Marshal(struct {
		CouponID *uuid.UUID          `json:"coupon_id"`
		Lines    []order.LineRequest `json:"lines"`
	}{req.CouponID, req.Lines})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func rejectionReason(err error) string {
	switch {
	case errs.Is(err, errs.ErrInsufficientStock):
		return metrics.ReasonInsufficientStock
	case errs.Is(err, errs.ErrInsufficientBalance):
		return metrics.ReasonInsufficientBalance
	case errs.Is(err, errs.ErrCouponNotUsable):
		return metrics.ReasonCouponNotUsable
	case errs.Is(err, errs.ErrBadRequest):
		return metrics.ReasonBadRequest
	case errs.Is(err, errs.ErrNotFound):
		return metrics.ReasonNotFound
	case errs.Is(err, errs.ErrConflict):
		return metrics.ReasonConflict
	default:
		return metrics.ReasonInternal
	}
}
