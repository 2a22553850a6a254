package models

import "time"

// RewardRedemption records a reward a user paid for with points.
// swagger:model RewardRedemption
type RewardRedemption struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"-" db:"user_id"`
	Description string    `json:"description" db:"description"`
	PointsCost  int       `json:"points_cost" db:"points_cost"`
	RedeemedAt  time.Time `json:"redeemed_at" db:"redeemed_at"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
