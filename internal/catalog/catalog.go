// Package catalog holds the fixed list of rewards users can redeem points for.
package catalog

import "github.com/sbilibin2017/safedrive-rewards/internal/models"

var rewards = []models.Reward{
	{ID: 1, Description: "Free Car Wash", Points: 500},
	{ID: 2, Description: "$10 Gas Card", Points: 1000},
	{ID: 3, Description: "Oil Change", Points: 2000},
}

// All returns a copy of the catalog ordered by reward id.
func All() []models.Reward {
	out := make([]models.Reward, len(rewards))
	copy(out, rewards)
	return out
}

// Get returns the reward with the given id.
func Get(id int) (models.Reward, bool) {
	for _, r := range rewards {
		if r.ID == id {
			return r, true
		}
	}
	return models.Reward{}, false
}
