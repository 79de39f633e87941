package model

import "github.com/google/uuid"

type User struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Username       string    `json:"username" db:"username"`
	FirstName      string    `json:"first_name" db:"first_name"`
	LastName       string    `json:"last_name" db:"last_name"`
	DateRegistered float64   `json:"date_registered" db:"date_registered"`
	Role           Role      `json:"role" db:"role"`
}

// UserPassword keeps credentials out of the users table; one row per user.
type UserPassword struct {
	UserID         uuid.UUID `db:"user_id"`
	HashedPassword []byte    `db:"hashed_password"`
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenValue struct {
	Token string `json:"token"`
}
