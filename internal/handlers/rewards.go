package handlers

//go:generate mockgen -source=rewards.go -destination=mock_rewards.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/safedrive-rewards/internal/logger"
	"github.com/sbilibin2017/safedrive-rewards/internal/models"
	"github.com/sbilibin2017/safedrive-rewards/internal/services"
)

// RewardsLister lists the catalog for a user.
type RewardsLister interface {
	ListRewards(ctx context.Context, user *models.User) (models.RewardsOverview, error)
}

// Redeemer redeems catalog rewards.
type Redeemer interface {
	Redeem(ctx context.Context, user *models.User, rewardID int) (models.Reward, int, error)
}

// RedeemResponse confirms a redemption
// swagger:model RedeemResponse
type RedeemResponse struct {
	// default: Successfully redeemed Free Car Wash
	Message string `json:"message"`

	// default: 0
	RemainingPoints int `json:"remaining_points"`
}

// NewRewardsHandler returns an HTTP handler listing the rewards catalog.
// @Summary List rewards
// @Description Returns the caller's balance, level and the full rewards catalog
// @Tags rewards
// @Produce json
// @Success 200 {object} models.RewardsOverview "Catalog"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /rewards [get]
// @Security BearerAuth
func NewRewardsHandler(svc RewardsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		overview, err := svc.ListRewards(r.Context(), user)
		if err != nil {
			logger.Log.Errorw("failed to list rewards", "userID", user.ID, "error", err)
			writeError(w, http.StatusInternalServerError, internalError)
			return
		}
		writeJSON(w, http.StatusOK, overview)
	}
}

// NewRedeemHandler returns an HTTP handler redeeming the reward in the path.
// @Summary Redeem a reward
// @Description Deducts the reward cost from the caller's balance and records the redemption
// @Tags rewards
// @Produce json
// @Param reward_id path int true "Reward id"
// @Success 200 {object} handlers.RedeemResponse "Reward redeemed"
// @Failure 400 {object} handlers.ErrorResponse "Insufficient points"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Reward not found"
// @Failure 422 {object} handlers.ErrorResponse "Invalid reward id"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /redeem-reward/{reward_id} [post]
// @Security BearerAuth
func NewRedeemHandler(svc Redeemer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		rewardID, err := strconv.Atoi(chi.URLParam(r, "reward_id"))
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "reward_id must be an integer")
			return
		}

		reward, remaining, err := svc.Redeem(r.Context(), user, rewardID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrRewardNotFound):
				writeError(w, http.StatusNotFound, "Reward not found")
			case errors.Is(err, services.ErrInsufficientPoints):
				writeError(w, http.StatusBadRequest, "Insufficient points")
			default:
				logger.Log.Errorw("failed to redeem reward", "userID", user.ID, "rewardID", rewardID, "error", err)
				writeError(w, http.StatusInternalServerError, internalError)
			}
			return
		}

		writeJSON(w, http.StatusOK, RedeemResponse{
			Message:         "Successfully redeemed " + reward.Description,
			RemainingPoints: remaining,
		})
	}
}
