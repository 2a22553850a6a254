package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/safedrive-rewards/internal/catalog"
	"github.com/sbilibin2017/safedrive-rewards/internal/models"
	"github.com/sbilibin2017/safedrive-rewards/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withRewardID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("reward_id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestRewardsHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		user := &models.User{ID: 1, Level: models.DefaultLevel}
		mockSvc := NewMockRewardsLister(ctrl)
		mockSvc.EXPECT().ListRewards(gomock.Any(), user).Return(models.RewardsOverview{
			UserPoints:       700,
			UserLevel:        models.DefaultLevel,
			AvailableRewards: catalog.All(),
		}, nil)

		rr := httptest.NewRecorder()
		NewRewardsHandler(mockSvc)(rr, authedRequest(http.MethodGet, "/rewards", nil, user))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp models.RewardsOverview
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 700, resp.UserPoints)
		assert.Equal(t, "Bronze", resp.UserLevel)
		assert.Equal(t, catalog.All(), resp.AvailableRewards)
	})

	t.Run("service error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		user := &models.User{ID: 1}
		mockSvc := NewMockRewardsLister(ctrl)
		mockSvc.EXPECT().ListRewards(gomock.Any(), user).Return(models.RewardsOverview{}, errors.New("db down"))

		rr := httptest.NewRecorder()
		NewRewardsHandler(mockSvc)(rr, authedRequest(http.MethodGet, "/rewards", nil, user))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"detail":"Internal server error"}`, rr.Body.String())
	})

	t.Run("unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rr := httptest.NewRecorder()
		NewRewardsHandler(NewMockRewardsLister(ctrl))(rr, authedRequest(http.MethodGet, "/rewards", nil, nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRedeemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.User{ID: 1, Points: 500}
	carWash, _ := catalog.Get(1)

	tests := []struct {
		name         string
		rewardID     string
		mockSetup    func(m *MockRedeemer)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name:     "success",
			rewardID: "1",
			mockSetup: func(m *MockRedeemer) {
				m.EXPECT().Redeem(gomock.Any(), user, 1).Return(carWash, 0, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"message": "Successfully redeemed Free Car Wash", "remaining_points": float64(0)},
		},
		{
			name:     "unknown reward",
			rewardID: "99",
			mockSetup: func(m *MockRedeemer) {
				m.EXPECT().Redeem(gomock.Any(), user, 99).Return(models.Reward{}, 0, services.ErrRewardNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: map[string]any{"detail": "Reward not found"},
		},
		{
			name:     "insufficient points",
			rewardID: "2",
			mockSetup: func(m *MockRedeemer) {
				m.EXPECT().Redeem(gomock.Any(), user, 2).Return(models.Reward{}, 0, services.ErrInsufficientPoints)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"detail": "Insufficient points"},
		},
		{
			name:         "non-integer id",
			rewardID:     "abc",
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: map[string]any{"detail": "reward_id must be an integer"},
		},
		{
			name:     "service error",
			rewardID: "3",
			mockSetup: func(m *MockRedeemer) {
				m.EXPECT().Redeem(gomock.Any(), user, 3).Return(models.Reward{}, 0, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{"detail": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRedeemer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := withRewardID(authedRequest(http.MethodPost, "/redeem-reward/"+tt.rewardID, nil, user), tt.rewardID)
			rr := httptest.NewRecorder()
			NewRedeemHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			var resp map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}

func TestProfileHandler(t *testing.T) {
	// cached users carry no balance
	user := &models.User{ID: 1, Username: "driver", Email: "d@example.com", Level: "Bronze", HashedPassword: "hash"}

	t.Run("balance from storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		balances := NewMockBalanceReader(ctrl)
		balances.EXPECT().GetPoints(gomock.Any(), int64(1)).Return(550, nil)

		rr := httptest.NewRecorder()
		NewProfileHandler(balances)(rr, authedRequest(http.MethodGet, "/user/profile", nil, user))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"username":"driver","email":"d@example.com","points":550,"level":"Bronze"}`, rr.Body.String())
	})

	t.Run("storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		balances := NewMockBalanceReader(ctrl)
		balances.EXPECT().GetPoints(gomock.Any(), int64(1)).Return(0, errors.New("db down"))

		rr := httptest.NewRecorder()
		NewProfileHandler(balances)(rr, authedRequest(http.MethodGet, "/user/profile", nil, user))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"detail":"Internal server error"}`, rr.Body.String())
	})

	t.Run("unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rr := httptest.NewRecorder()
		NewProfileHandler(NewMockBalanceReader(ctrl))(rr, authedRequest(http.MethodGet, "/user/profile", nil, nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
