package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"

	"ootd-commerce/internal/domain/rating"
	"ootd-commerce/internal/pkg/clock"
	"ootd-commerce/internal/pkg/metrics"
	"ootd-commerce/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubmitRatingRequest struct {
	ProductID uuid.UUID
	Score     int
	Note      *string
}

type RatingCommands interface {
	SubmitRating(ctx context.Context, userID uuid.UUID, req SubmitRatingRequest) (uuid.UUID, error)
}

type ratingCommandsImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewRatingCommands(uow shared.UnitOfWork, clk clock.Clock, m *metrics.Metrics) RatingCommands {
	return &ratingCommandsImpl{uow: uow, clock: clk, metrics: m}
}

// SubmitRating accepts one rating per purchased unit. The advisory lock
// serializes submissions for the same user and product.
func (r *ratingCommandsImpl) SubmitRating(ctx context.Context, userID uuid.UUID, req SubmitRatingRequest) (uuid.UUID, error) {
	if _, err := rating.NewScore(req.Score); err != nil {
		return uuid.Nil, err
	}
	if _, err := rating.NewNote(req.Note); err != nil {
		return uuid.Nil, err
	}

	var ratingID uuid.UUID
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Ratings().LockSubject(ctx, tx.DB(), userID, req.ProductID); err != nil {
			return translateRepoErr(err, nil)
		}

		eligibility, err := tx.Ratings().Eligibility(ctx, tx.DB(), userID, req.ProductID)
		if err != nil {
			return translateRepoErr(err, nil)
		}
		if err := eligibility.Check(); err != nil {
			return err
		}

		rt, err := rating.NewRating(userID, req.ProductID, req.Score, req.Note, r.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Ratings().Create(ctx, tx.DB(), rt); err != nil {
			return translateRepoErr(err, nil)
		}
		ratingID = rt.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	r.metrics.RecordRatingSubmitted()
	return ratingID, nil
}
