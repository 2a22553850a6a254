package handlers

//go:generate mockgen -source=speed.go -destination=mock_speed.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/safedrive-rewards/internal/logger"
	"github.com/sbilibin2017/safedrive-rewards/internal/models"
)

// SpeedRecorder defines the interface that the service must implement.
type SpeedRecorder interface {
	RecordSpeed(ctx context.Context, user *models.User, speed float64) error
}

// SpeedRequest represents the JSON body of a speed sample
// swagger:model SpeedRequest
type SpeedRequest struct {
	// Speed value, unit unspecified
	// required: true
	// default: 62.5
	Speed *float64 `json:"speed"`
}

// NewSpeedHandler returns an HTTP handler that stores a speed sample.
// @Summary Record speed
// @Description Stores a speed sample for the authenticated user
// @Tags driving
// @Accept json
// @Produce json
// @Param speedRequest body handlers.SpeedRequest true "Speed sample"
// @Success 200 {object} handlers.MessageResponse "Speed stored"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 422 {object} handlers.ErrorResponse "Invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /speed [post]
// @Security BearerAuth
func NewSpeedHandler(svc SpeedRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		// JSON has no NaN or Inf literals and out-of-range numbers fail to decode.
		var req SpeedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid request body")
			return
		}
		if req.Speed == nil {
			writeError(w, http.StatusUnprocessableEntity, "speed is required")
			return
		}

		if err := svc.RecordSpeed(r.Context(), user, *req.Speed); err != nil {
			logger.Log.Errorw("failed to record speed", "userID", user.ID, "error", err)
			writeError(w, http.StatusInternalServerError, internalError)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Speed recorded successfully"})
	}
}
