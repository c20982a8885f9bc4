package dto

import "time"

// Request DTOs

type LoginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// Response DTOs

type SessionResponse struct {
	Token     string        `json:"token"`
	UserID    int           `json:"user_id"`
	Username  string        `json:"username"`
	ExpiresIn time.Duration `json:"expires_in"`
}
