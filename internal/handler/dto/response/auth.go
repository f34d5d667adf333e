package response

import (
	"ootd-commerce/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"isActive"`
}

func FromUserView(v *queries.AuthorizedUserView) *UserResponse {
	return copyTo[UserResponse](v)
}

type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	User        *UserResponse `json:"user"`
}

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
