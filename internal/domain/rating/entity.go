package rating

import (
	"time"

	"github.com/google/uuid"
)

type Rating struct {
	id        uuid.UUID
	userID    uuid.UUID
	productID uuid.UUID
	score     Score
	note      Note
	createdAt time.Time
}

func NewRating(userID, productID uuid.UUID, scoreValue int, note *string, now time.Time) (*Rating, error) {
	score, err := NewScore(scoreValue)
	if err != nil {
		return nil, err
	}

	n, err := NewNote(note)
	if err != nil {
		return nil, err
	}

	return &Rating{
		id:        uuid.New(),
		userID:    userID,
		productID: productID,
		score:     score,
		note:      n,
		createdAt: now,
	}, nil
}

func (r *Rating) ID() uuid.UUID        { return r.id }
func (r *Rating) UserID() uuid.UUID    { return r.userID }
func (r *Rating) ProductID() uuid.UUID { return r.productID }
func (r *Rating) Score() Score         { return r.score }
func (r *Rating) Note() Note           { return r.note }
func (r *Rating) CreatedAt() time.Time { return r.createdAt }

// Eligibility is derived from order lines and existing ratings; it is never stored.
type Eligibility struct {
	Purchased int64
	Rated     int64
}

func (e Eligibility) Remaining() int64 {
	if e.Rated >= e.Purchased {
		return 0
	}
	return e.Purchased - e.Rated
}

func (e Eligibility) Check() error {
	if e.Remaining() == 0 {
		return ErrNotEligible
	}
	return nil
}
