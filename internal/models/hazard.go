package models

import "time"

// HazardStatusActive is the status of every reported hazard.
const HazardStatusActive = "active"

// HazardReport represents a road hazard reported by a user.
// swagger:model HazardReport
type HazardReport struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"-" db:"user_id"`
	HazardType string    `json:"hazard_type" db:"hazard_type"`
	Location   string    `json:"location" db:"location"`
	Timestamp  time.Time `json:"timestamp" db:"timestamp"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
