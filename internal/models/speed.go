package models

import "time"

// SpeedRecord is a single speed sample submitted by a user.
// swagger:model SpeedRecord
type SpeedRecord struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"-" db:"user_id"`
	Speed     float64   `json:"speed" db:"speed"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
