package services

//go:generate mockgen -source=driving.go -destination=mock_driving.go -package=services

import (
	"context"

	"github.com/sbilibin2017/safedrive-rewards/internal/logger"
	"github.com/sbilibin2017/safedrive-rewards/internal/models"
)

// HazardReportPoints is awarded for every hazard report.
const HazardReportPoints = 50

// HazardWriter stores hazard reports.
type HazardWriter interface {
	Save(ctx context.Context, userID int64, hazardType, location string) (int64, error)
}

// SpeedWriter stores speed samples.
type SpeedWriter interface {
	Save(ctx context.Context, userID int64, speed float64) (int64, error)
}

// DrivingService records what users report while driving.
type DrivingService struct {
	hazards  HazardWriter
	speeds   SpeedWriter
	points   PointsWriter
	notifier pointsNotifier
}

// NewDrivingService creates a new DrivingService. cache, publisher and afterCommit may be nil.
func NewDrivingService(
	hazards HazardWriter,
	speeds SpeedWriter,
	points PointsWriter,
	cache UserCacheInvalidator,
	publisher EventPublisher,
	afterCommit AfterCommitFunc,
) *DrivingService {
	return &DrivingService{
		hazards: hazards,
		speeds:  speeds,
		points:  points,
		notifier: pointsNotifier{
			cache:       cache,
			publisher:   publisher,
			afterCommit: afterCommit,
		},
	}
}

// ReportHazard stores the report and credits the reporter. Returns the points earned.
func (s *DrivingService) ReportHazard(ctx context.Context, user *models.User, hazardType, location string) (int, error) {
	hazardID, err := s.hazards.Save(ctx, user.ID, hazardType, location)
	if err != nil {
		logger.Log.Errorw("failed to save hazard", "userID", user.ID, "hazardType", hazardType, "error", err)
		return 0, err
	}

	balance, err := s.points.AddPoints(ctx, user.ID, HazardReportPoints)
	if err != nil {
		logger.Log.Errorw("failed to award hazard points", "userID", user.ID, "hazardID", hazardID, "error", err)
		return 0, err
	}

	logger.Log.Infow("hazard reported", "userID", user.ID, "hazardID", hazardID, "balance", balance)
	s.notifier.notify(ctx, user, models.OperationHazardReported, HazardReportPoints, balance)

	return HazardReportPoints, nil
}

// RecordSpeed stores a speed sample.
func (s *DrivingService) RecordSpeed(ctx context.Context, user *models.User, speed float64) error {
	if _, err := s.speeds.Save(ctx, user.ID, speed); err != nil {
		logger.Log.Errorw("failed to save speed record", "userID", user.ID, "speed", speed, "error", err)
		return err
	}
	return nil
}
