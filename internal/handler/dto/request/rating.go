package request

import (
	"ootd-commerce/internal/usecase/commands"

	"github.com/google/uuid"
)

type SubmitRatingRequest struct {
	Score int     `json:"score" binding:"required,min=1,max=5"`
	Note  *string `json:"note" binding:"omitempty,max=1000"`
}

func (r *SubmitRatingRequest) ToCommand(productID uuid.UUID) commands.SubmitRatingRequest {
	return commands.SubmitRatingRequest{
		ProductID: productID,
		Score:     r.Score,
		Note:      r.Note,
	}
}
