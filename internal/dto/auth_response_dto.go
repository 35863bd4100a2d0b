package dto

import (
	"time"

	"github.com/SscSPs/fin_api/internal/core/domain"
)

// LoginRequest represents the credentials sent to /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// ToLoginResponse converts a domain.Session to LoginResponse DTO
func ToLoginResponse(session *domain.Session) LoginResponse {
	return LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      ToUserResponse(&session.User),
	}
}
