package models

import "time"

// UserDB represents a row in the users table.
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                       // Primary key
	Username     string    `json:"username" db:"username"`           // Unique username
	Email        string    `json:"email" db:"email"`                 // User email
	PasswordHash string    `json:"-" db:"password_hash"`             // bcrypt hash, never the plaintext
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`       // Last update timestamp
}
