package model

import "time"

// User represents a registered user in the database.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	RepeatPassword string `json:"repeatPassword"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the user id and a signed bearer token after
// registration or login.
type AuthResponse struct {
	ID    int64  `json:"id"`
	Token string `json:"token"`
}

// UserResponse represents the authenticated user's own identity.
type UserResponse struct {
	ID int64 `json:"id"`
}
