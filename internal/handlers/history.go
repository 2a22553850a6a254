package handlers

//go:generate mockgen -source=history.go -destination=mock_history.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/safedrive-rewards/internal/logger"
	"github.com/sbilibin2017/safedrive-rewards/internal/models"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// HazardLister reads a user's hazard reports.
type HazardLister interface {
	ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]models.HazardReport, error)
}

// SpeedLister reads a user's speed records.
type SpeedLister interface {
	ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]models.SpeedRecord, error)
}

// RedemptionLister reads a user's redemptions.
type RedemptionLister interface {
	ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]models.RewardRedemption, error)
}

// HistoryResponse wraps one page of records
// swagger:model HistoryResponse
type HistoryResponse[T any] struct {
	Items []T `json:"items"`
}

// NewHazardHistoryHandler returns an HTTP handler listing the caller's hazard reports.
// @Summary List hazard reports
// @Tags history
// @Produce json
// @Param limit query int false "Page size (1-100, default 20)"
// @Param offset query int false "Records to skip"
// @Success 200 {object} handlers.HistoryResponse[models.HazardReport]
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 422 {object} handlers.ErrorResponse "Invalid paging"
// @Router /hazards [get]
// @Security BearerAuth
func NewHazardHistoryHandler(reader HazardLister) http.HandlerFunc {
	return newHistoryHandler("hazards", reader.ListByUserID)
}

// NewSpeedHistoryHandler returns an HTTP handler listing the caller's speed records.
// @Summary List speed records
// @Tags history
// @Produce json
// @Param limit query int false "Page size (1-100, default 20)"
// @Param offset query int false "Records to skip"
// @Success 200 {object} handlers.HistoryResponse[models.SpeedRecord]
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 422 {object} handlers.ErrorResponse "Invalid paging"
// @Router /speed [get]
// @Security BearerAuth
func NewSpeedHistoryHandler(reader SpeedLister) http.HandlerFunc {
	return newHistoryHandler("speed records", reader.ListByUserID)
}

// NewRedemptionHistoryHandler returns an HTTP handler listing the caller's redemptions.
// @Summary List reward redemptions
// @Tags history
// @Produce json
// @Param limit query int false "Page size (1-100, default 20)"
// @Param offset query int false "Records to skip"
// @Success 200 {object} handlers.HistoryResponse[models.RewardRedemption]
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 422 {object} handlers.ErrorResponse "Invalid paging"
// @Router /redemptions [get]
// @Security BearerAuth
func NewRedemptionHistoryHandler(reader RedemptionLister) http.HandlerFunc {
	return newHistoryHandler("redemptions", reader.ListByUserID)
}

func newHistoryHandler[T any](
	what string,
	list func(ctx context.Context, userID int64, limit, offset int) ([]T, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		limit, offset, err := parsePage(r)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		items, err := list(r.Context(), user.ID, limit, offset)
		if err != nil {
			logger.Log.Errorw("failed to list "+what, "userID", user.ID, "error", err)
			writeError(w, http.StatusInternalServerError, internalError)
			return
		}
		if items == nil {
			items = []T{}
		}

		writeJSON(w, http.StatusOK, HistoryResponse[T]{Items: items})
	}
}

func parsePage(r *http.Request) (limit, offset int, err error) {
	q := r.URL.Query()
	limit = defaultPageLimit

	if v := q.Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 1 || limit > maxPageLimit {
			return 0, 0, errors.New("limit must be an integer between 1 and 100")
		}
	}
	if v := q.Get("offset"); v != "" {
		offset, err = strconv.Atoi(v)
		if err != nil || offset < 0 {
			return 0, 0, errors.New("offset must be a non-negative integer")
		}
	}
	return limit, offset, nil
}
