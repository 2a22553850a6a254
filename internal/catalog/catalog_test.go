package catalog

import (
	"testing"

	"github.com/sbilibin2017/safedrive-rewards/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAll(t *testing.T) {
	expected := []models.Reward{
		{ID: 1, Description: "Free Car Wash", Points: 500},
		{ID: 2, Description: "$10 Gas Card", Points: 1000},
		{ID: 3, Description: "Oil Change", Points: 2000},
	}
	assert.Equal(t, expected, All())
}

func TestAll_ReturnsCopy(t *testing.T) {
	list := All()
	list[0].Points = 1

	reward, ok := Get(1)
	assert.True(t, ok)
	assert.Equal(t, 500, reward.Points)
}

func TestGet(t *testing.T) {
	tests := []struct {
		name   string
		id     int
		want   models.Reward
		wantOK bool
	}{
		{name: "car wash", id: 1, want: models.Reward{ID: 1, Description: "Free Car Wash", Points: 500}, wantOK: true},
		{name: "oil change", id: 3, want: models.Reward{ID: 3, Description: "Oil Change", Points: 2000}, wantOK: true},
		{name: "zero", id: 0},
		{name: "unknown", id: 4},
		{name: "negative", id: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Get(tt.id)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
