package dtos

import "github.com/google/uuid"

// LoginRequest carries the one-time login code obtained from the identity
// provider inside the mini-program.
type LoginRequest struct {
	Code string `json:"code"`
}

// LoginResult is returned after a successful code exchange.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresIn int64     `json:"expiresIn"` // seconds
	UserID    uuid.UUID `json:"userId"`
}
