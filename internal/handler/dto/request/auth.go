package request

import "ootd-commerce/internal/usecase/commands"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	// Role defaults to buyer; admin cannot be self-assigned
	Role string `json:"role" binding:"omitempty,oneof=buyer seller"`
}

func (r *RegisterRequest) ToCommand() commands.RegisterRequest {
	return commands.RegisterRequest{
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// RefreshRequest is optional when the refresh token cookie is present.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
