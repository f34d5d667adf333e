package order

import (
	"bytes"
	"slices"
	"time"

	"github.com/google/uuid"
)

type LineRequest struct {
	ProductID uuid.UUID
	Quantity  int
}

// Placement is a validated purchase request that has not touched any state yet.
type Placement struct {
	userID   uuid.UUID
	couponID *uuid.UUID
	lines    []LineRequest
}

func NewPlacement(userID uuid.UUID, couponID *uuid.UUID, lines []LineRequest) (*Placement, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}
	if len(lines) > MaxLines {
		return nil, ErrTooManyLines
	}
	seen := make(map[uuid.UUID]struct{}, len(lines))
	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if _, dup := seen[l.ProductID]; dup {
			return nil, ErrDuplicateLine
		}
		seen[l.ProductID] = struct{}{}
	}
	return &Placement{
		userID:   userID,
		couponID: couponID,
		lines:    slices.Clone(lines),
	}, nil
}

func (p *Placement) UserID() uuid.UUID    { return p.userID }
func (p *Placement) CouponID() *uuid.UUID { return p.couponID }
func (p *Placement) Lines() []LineRequest { return slices.Clone(p.lines) }
func (p *Placement) HasCoupon() bool      { return p.couponID != nil }

// LockOrder lists product ids ascending so concurrent placements lock rows in the same order.
func (p *Placement) LockOrder() []uuid.UUID {
	ids := make([]uuid.UUID, len(p.lines))
	for i, l := range p.lines {
		ids[i] = l.ProductID
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})
	return ids
}

type Line struct {
	ProductID  uuid.UUID
	SnapshotID uuid.UUID
	Quantity   int
}

type Order struct {
	id        uuid.UUID
	userID    uuid.UUID
	couponID  *uuid.UUID
	status    Status
	lines     []Line
	createdAt time.Time
}

// NewOrder binds every placement line to the snapshot that is latest for its product.
func NewOrder(p *Placement, latestSnapshots map[uuid.UUID]uuid.UUID, now time.Time) (*Order, error) {
	lines := make([]Line, 0, len(p.lines))
	for _, l := range p.lines {
		snapID, ok := latestSnapshots[l.ProductID]
		if !ok || snapID == uuid.Nil {
			return nil, ErrUnboundLine
		}
		lines = append(lines, Line{ProductID: l.ProductID, SnapshotID: snapID, Quantity: l.Quantity})
	}
	return &Order{
		id:        uuid.New(),
		userID:    p.userID,
		couponID:  p.couponID,
		status:    StatusPending,
		lines:     lines,
		createdAt: now,
	}, nil
}

func (o *Order) ID() uuid.UUID        { return o.id }
func (o *Order) UserID() uuid.UUID    { return o.userID }
func (o *Order) CouponID() *uuid.UUID { return o.couponID }
func (o *Order) Status() Status       { return o.status }
func (o *Order) Lines() []Line        { return slices.Clone(o.lines) }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
