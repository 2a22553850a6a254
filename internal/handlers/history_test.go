package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/safedrive-rewards/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHazardHistoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.User{ID: 4}
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		query        string
		mockSetup    func(m *MockHazardLister)
		expectedCode int
		expectedLen  int
	}{
		{
			name: "defaults",
			mockSetup: func(m *MockHazardLister) {
				m.EXPECT().ListByUserID(gomock.Any(), int64(4), 20, 0).Return([]models.HazardReport{
					{ID: 2, HazardType: "debris", Location: "I-5", Timestamp: now, Status: models.HazardStatusActive},
					{ID: 1, HazardType: "pothole", Location: "Main St", Timestamp: now, Status: models.HazardStatusActive},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:  "explicit paging",
			query: "?limit=5&offset=10",
			mockSetup: func(m *MockHazardLister) {
				m.EXPECT().ListByUserID(gomock.Any(), int64(4), 5, 10).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name:         "limit too large",
			query:        "?limit=101",
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "negative offset",
			query:        "?offset=-1",
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "store error",
			mockSetup: func(m *MockHazardLister) {
				m.EXPECT().ListByUserID(gomock.Any(), int64(4), 20, 0).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewMockHazardLister(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(reader)
			}

			rr := httptest.NewRecorder()
			NewHazardHistoryHandler(reader)(rr, authedRequest(http.MethodGet, "/hazards"+tt.query, nil, user))

			require.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode != http.StatusOK {
				return
			}

			var resp HistoryResponse[models.HazardReport]
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.NotNil(t, resp.Items)
			assert.Len(t, resp.Items, tt.expectedLen)
		})
	}
}

func TestSpeedHistoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.User{ID: 4}
	reader := NewMockSpeedLister(ctrl)
	reader.EXPECT().ListByUserID(gomock.Any(), int64(4), 2, 0).Return([]models.SpeedRecord{{ID: 1, Speed: 55}}, nil)

	rr := httptest.NewRecorder()
	NewSpeedHistoryHandler(reader)(rr, authedRequest(http.MethodGet, "/speed?limit=2", nil, user))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp HistoryResponse[models.SpeedRecord]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 55.0, resp.Items[0].Speed)
}

func TestRedemptionHistoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockRedemptionLister(ctrl)

	rr := httptest.NewRecorder()
	NewRedemptionHistoryHandler(reader)(rr, authedRequest(http.MethodGet, "/redemptions", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	user := &models.User{ID: 9}
	reader.EXPECT().ListByUserID(gomock.Any(), int64(9), 20, 0).Return([]models.RewardRedemption{
		{ID: 1, Description: "Free Car Wash", PointsCost: 500},
	}, nil)

	rr = httptest.NewRecorder()
	NewRedemptionHistoryHandler(reader)(rr, authedRequest(http.MethodGet, "/redemptions", nil, user))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"description":"Free Car Wash"`)
}

func TestHealthHandler(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	rr := httptest.NewRecorder()
	NewHealthHandler(map[string]HealthCheck{"postgres": ok, "redis": ok})(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok","checks":{"postgres":"ok","redis":"ok"}}`, rr.Body.String())

	rr = httptest.NewRecorder()
	NewHealthHandler(map[string]HealthCheck{"postgres": ok, "redis": down})(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.JSONEq(t, `{"status":"unavailable","checks":{"postgres":"ok","redis":"unavailable"}}`, rr.Body.String())
}
