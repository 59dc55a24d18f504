package model

import "time"

// User represents a registered account, keyed by its unique phone number
type User struct {
	ID           int       `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PhoneNumber  string    `json:"phone_number"`
	Email        *string   `json:"email,omitempty"` // Pointer for optional field
	PasswordHash string    `json:"-"`               // Do not expose password hash in JSON responses
	CreatedAt    time.Time `json:"created_at"`
}

// FullName returns the display name used for search matching
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// RegisterRequest is used for creating a new account
type RegisterRequest struct {
	FirstName   string  `json:"first_name" binding:"required"`
	LastName    string  `json:"last_name" binding:"required"`
	PhoneNumber string  `json:"phone_number" binding:"required"`
	Email       *string `json:"email"`
	Password    string  `json:"password" binding:"required,min=6"`
}

// LoginRequest carries login credentials
type LoginRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// Requester identifies the authenticated caller of a search. It is built
// from JWT claims by the handler layer and threaded explicitly through
// every resolver call.
type Requester struct {
	ID          int
	PhoneNumber string
}
