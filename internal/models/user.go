package models

import "time"

// DefaultLevel is assigned to every new user. The level is stored but never recomputed.
const DefaultLevel = "Bronze"

// User represents a user record in the database
type User struct {
	ID             int64     `json:"id" db:"id"`                 // Primary key
	Username       string    `json:"username" db:"username"`     // Unique username
	Email          string    `json:"email" db:"email"`           // Unique email
	HashedPassword string    `json:"-" db:"hashed_password"`     // bcrypt hash, never serialized
	Points         int       `json:"points" db:"points"`         // Loyalty points balance
	Level          string    `json:"level" db:"level"`           // Level label
	CreatedAt      time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// Profile is the public view of a user.
// swagger:model Profile
type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Points   int    `json:"points"`
	Level    string `json:"level"`
}

// Profile returns the public view of the user.
func (u *User) Profile() Profile {
	return Profile{
		Username: u.Username,
		Email:    u.Email,
		Points:   u.Points,
		Level:    u.Level,
	}
}
