package models

import "time"

// MemoDB represents a row in the memos table.
// Every memo belongs to exactly one user.
type MemoDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	OwnerID   int64     `json:"owner_id" db:"owner_id"`     // FK to users.id
	Title     string    `json:"title" db:"title"`           // Bounded to 100 chars in the schema
	Content   string    `json:"content" db:"content"`       // Bounded to 1000 chars in the schema
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
