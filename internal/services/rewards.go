package services

//go:generate mockgen -source=rewards.go -destination=mock_rewards.go -package=services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sbilibin2017/safedrive-rewards/internal/catalog"
	"github.com/sbilibin2017/safedrive-rewards/internal/logger"
	"github.com/sbilibin2017/safedrive-rewards/internal/models"
)

var (
	// ErrRewardNotFound is returned for ids missing from the catalog.
	ErrRewardNotFound = errors.New("reward not found")
	// ErrInsufficientPoints is returned when the balance does not cover the reward.
	ErrInsufficientPoints = errors.New("insufficient points")
)

// RedemptionWriter stores reward redemptions.
type RedemptionWriter interface {
	Save(ctx context.Context, userID int64, description string, pointsCost int) (int64, error)
}

// RewardsService lists and redeems catalog rewards.
type RewardsService struct {
	points      PointsWriter
	balances    BalanceReader
	redemptions RedemptionWriter
	notifier    pointsNotifier
}

// NewRewardsService creates a new RewardsService. cache, publisher and afterCommit may be nil.
func NewRewardsService(
	points PointsWriter,
	balances BalanceReader,
	redemptions RedemptionWriter,
	cache UserCacheInvalidator,
	publisher EventPublisher,
	afterCommit AfterCommitFunc,
) *RewardsService {
	return &RewardsService{
		points:      points,
		balances:    balances,
		redemptions: redemptions,
		notifier: pointsNotifier{
			cache:       cache,
			publisher:   publisher,
			afterCommit: afterCommit,
		},
	}
}

// ListRewards returns the catalog together with the user's balance and level.
// The balance is read from storage since the authenticated user may come from cache.
func (s *RewardsService) ListRewards(ctx context.Context, user *models.User) (models.RewardsOverview, error) {
	points, err := s.balances.GetPoints(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to read points balance", "userID", user.ID, "error", err)
		return models.RewardsOverview{}, err
	}

	return models.RewardsOverview{
		UserPoints:       points,
		UserLevel:        user.Level,
		AvailableRewards: catalog.All(),
	}, nil
}

// Redeem charges the reward's cost and records the redemption.
// Returns the redeemed reward and the remaining balance.
func (s *RewardsService) Redeem(ctx context.Context, user *models.User, rewardID int) (models.Reward, int, error) {
	reward, ok := catalog.Get(rewardID)
	if !ok {
		logger.Log.Infow("unknown reward", "userID", user.ID, "rewardID", rewardID)
		return models.Reward{}, 0, ErrRewardNotFound
	}

	balance, err := s.points.DeductPoints(ctx, user.ID, reward.Points)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Log.Infow("insufficient points", "userID", user.ID, "rewardID", rewardID, "cost", reward.Points)
			return models.Reward{}, 0, ErrInsufficientPoints
		}
		logger.Log.Errorw("failed to deduct points", "userID", user.ID, "rewardID", rewardID, "error", err)
		return models.Reward{}, 0, err
	}

	redemptionID, err := s.redemptions.Save(ctx, user.ID, reward.Description, reward.Points)
	if err != nil {
		logger.Log.Errorw("failed to save redemption", "userID", user.ID, "rewardID", rewardID, "error", err)
		return models.Reward{}, 0, err
	}

	logger.Log.Infow("reward redeemed", "userID", user.ID, "rewardID", rewardID, "redemptionID", redemptionID, "balance", balance)
	s.notifier.notify(ctx, user, models.OperationRewardRedeemed, -reward.Points, balance)

	return reward, balance, nil
}
