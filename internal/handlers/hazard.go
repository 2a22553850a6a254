package handlers

//go:generate mockgen -source=hazard.go -destination=mock_hazard.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sbilibin2017/safedrive-rewards/internal/logger"
	"github.com/sbilibin2017/safedrive-rewards/internal/models"
)

const (
	maxHazardTypeLen = 50
	maxLocationLen   = 255
)

// HazardReporter defines the interface that the service must implement.
type HazardReporter interface {
	ReportHazard(ctx context.Context, user *models.User, hazardType, location string) (int, error)
}

// HazardRequest represents the JSON body of a hazard report
// swagger:model HazardRequest
type HazardRequest struct {
	// Free-form hazard type
	// required: true
	// default: pothole
	HazardType string `json:"hazard_type"`

	// Free-form location
	// required: true
	// default: Main St & 5th Ave
	Location string `json:"location"`
}

// HazardResponse confirms a hazard report
// swagger:model HazardResponse
type HazardResponse struct {
	// default: Hazard reported successfully
	Message string `json:"message"`

	// default: 50
	PointsEarned int `json:"points_earned"`
}

// NewHazardHandler returns an HTTP handler that records a hazard and awards points.
// @Summary Report a road hazard
// @Description Stores the hazard for the authenticated user and awards 50 points
// @Tags driving
// @Accept json
// @Produce json
// @Param hazardRequest body handlers.HazardRequest true "Hazard report"
// @Success 200 {object} handlers.HazardResponse "Hazard stored"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 422 {object} handlers.ErrorResponse "Invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /hazard [post]
// @Security BearerAuth
func NewHazardHandler(svc HazardReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req HazardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid request body")
			return
		}
		switch {
		case strings.TrimSpace(req.HazardType) == "" || strings.TrimSpace(req.Location) == "":
			writeError(w, http.StatusUnprocessableEntity, "hazard_type and location are required")
			return
		case len(req.HazardType) > maxHazardTypeLen || len(req.Location) > maxLocationLen:
			writeError(w, http.StatusUnprocessableEntity, "hazard_type or location is too long")
			return
		}

		earned, err := svc.ReportHazard(r.Context(), user, req.HazardType, req.Location)
		if err != nil {
			logger.Log.Errorw("failed to report hazard", "userID", user.ID, "error", err)
			writeError(w, http.StatusInternalServerError, internalError)
			return
		}

		writeJSON(w, http.StatusOK, HazardResponse{
			Message:      "Hazard reported successfully",
			PointsEarned: earned,
		})
	}
}
