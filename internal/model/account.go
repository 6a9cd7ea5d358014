package model

import "time"

// Account represents a registered user. Success and Fail mirror the
// aggregate participation outcomes across every quiz the account answered.
type Account struct {
	ID           int       `json:"uid"`
	Name         string    `json:"name"`
	About        string    `json:"about,omitempty"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Success      int64     `json:"success"`
	Fail         int64     `json:"fail"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// LoginRequest is the payload for account authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=128"`
}

// LoginResponse is returned after successful authentication.
type LoginResponse struct {
	UID   int    `json:"uid"`
	Name  string `json:"name"`
	About string `json:"about,omitempty"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// UpdateProfileRequest is the payload for updating profile information.
type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=255"`
	About string `json:"about" binding:"omitempty,max=1000"`
}
