package response

import (
	"time"

	"ootd-commerce/internal/usecase/queries"

	"github.com/google/uuid"
)

type RatingResponse struct {
	ID        uuid.UUID `json:"id"`
	UserEmail string    `json:"userEmail"`
	Score     int32     `json:"score"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type RatingPageResponse struct {
	Ratings    []*RatingResponse `json:"ratings"`
	NextCursor *string           `json:"nextCursor,omitempty"`
}

func FromRatingPage(p *queries.RatingPage) *RatingPageResponse {
	res := &RatingPageResponse{Ratings: copyEach[RatingResponse](p.Items)}
	if p.NextCursor != nil {
		res.NextCursor = &p.NextCursor.After
	}
	return res
}

type EligibilityResponse struct {
	Purchased int64 `json:"purchased"`
	Rated     int64 `json:"rated"`
	Remaining int64 `json:"remaining"`
}

func FromEligibility(v *queries.EligibilityView) *EligibilityResponse {
	return copyTo[EligibilityResponse](v)
}
