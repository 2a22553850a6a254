package handlers

//go:generate mockgen -source=profile.go -destination=mock_profile.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/safedrive-rewards/internal/logger"
)

// BalanceReader reads the current points balance.
type BalanceReader interface {
	GetPoints(ctx context.Context, userID int64) (int, error)
}

// NewProfileHandler returns an HTTP handler for the caller's profile.
// @Summary Get profile
// @Description Returns username, email, points and level of the authenticated user
// @Tags user
// @Produce json
// @Success 200 {object} models.Profile "Profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /user/profile [get]
// @Security BearerAuth
func NewProfileHandler(balances BalanceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		// the authenticated user may come from cache, which holds no balance
		points, err := balances.GetPoints(r.Context(), user.ID)
		if err != nil {
			logger.Log.Errorw("failed to read points balance", "userID", user.ID, "error", err)
			writeError(w, http.StatusInternalServerError, internalError)
			return
		}

		profile := user.Profile()
		profile.Points = points
		writeJSON(w, http.StatusOK, profile)
	}
}
