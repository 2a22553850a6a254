package models

// Reward is an item of the rewards catalog.
// swagger:model Reward
type Reward struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

// RewardsOverview is the catalog as seen by one user.
// swagger:model RewardsOverview
type RewardsOverview struct {
	UserPoints       int      `json:"user_points"`
	UserLevel        string   `json:"user_level"`
	AvailableRewards []Reward `json:"available_rewards"`
}
