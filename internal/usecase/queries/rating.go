package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"
	"time"

	"ootd-commerce/internal/domain/rating"

	"github.com/google/uuid"
)

type RatingPage struct {
	Items      []*RatingListItem `json:"items"`
	NextCursor *Cursor           `json:"next_cursor,omitempty"`
}

type RatingQueries interface {
	ListRatings(ctx context.Context, productID uuid.UUID, cursor *string, limit int) (*RatingPage, error)
	RatingEligibility(ctx context.Context, userID, productID uuid.UUID) (*EligibilityView, error)
}

type RatingReadStore interface {
	Summary(ctx context.Context, productID uuid.UUID) (*RatingSummary, error)
	FindByProductFirstPage(ctx context.Context, productID uuid.UUID, limit int32) ([]*RatingListItem, error)
	FindByProductKeyset(ctx context.Context, productID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*RatingListItem, error)
	Eligibility(ctx context.Context, userID, productID uuid.UUID) (purchased, rated int64, err error)
}

type ratingQueriesImpl struct {
	readStore RatingReadStore
}

func NewRatingQueries(readStore RatingReadStore) RatingQueries {
	return &ratingQueriesImpl{
		readStore: readStore,
	}
}

func (q *ratingQueriesImpl) ListRatings(ctx context.Context, productID uuid.UUID, cursor *string, limit int) (*RatingPage, error) {
	limit = ValidateLimit(limit)
	probe := int32(limit + 1)

	var (
		rows []*RatingListItem
		err  error
	)
	if cursor == nil || *cursor == "" {
		rows, err = q.readStore.FindByProductFirstPage(ctx, productID, probe)
	} else {
		lastAt, lastID, derr := DecodeAfterCursor(*cursor)
		if derr != nil {
			return nil, derr
		}
		rows, err = q.readStore.FindByProductKeyset(ctx, productID, lastAt, lastID, probe)
	}
	if err != nil {
		return nil, err
	}

	items, next := paginate(rows, limit, func(r *RatingListItem) (time.Time, uuid.UUID) {
		return r.CreatedAt, r.ID
	})
	return &RatingPage{Items: items, NextCursor: next}, nil
}

// RatingEligibility counts order lines, not units.
func (q *ratingQueriesImpl) RatingEligibility(ctx context.Context, userID, productID uuid.UUID) (*EligibilityView, error) {
	purchased, rated, err := q.readStore.Eligibility(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	e := rating.Eligibility{Purchased: purchased, Rated: rated}
	return &EligibilityView{
		Purchased: e.Purchased,
		Rated:     e.Rated,
		Remaining: e.Remaining(),
	}, nil
}
