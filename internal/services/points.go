package services

//go:generate mockgen -source=points.go -destination=mock_points.go -package=services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/safedrive-rewards/internal/logger"
	"github.com/sbilibin2017/safedrive-rewards/internal/models"
)

// AfterCommitFunc schedules fn to run once the request transaction has committed.
type AfterCommitFunc func(ctx context.Context, fn func())

// PointsWriter mutates a user's points balance.
type PointsWriter interface {
	AddPoints(ctx context.Context, userID int64, delta int) (int, error)
	DeductPoints(ctx context.Context, userID int64, cost int) (int, error)
}

// BalanceReader reads the current points balance.
type BalanceReader interface {
	GetPoints(ctx context.Context, userID int64) (int, error)
}

// UserCacheInvalidator drops cached users whose balance changed.
type UserCacheInvalidator interface {
	Delete(ctx context.Context, username string) error
}

// EventPublisher publishes points balance changes.
type EventPublisher interface {
	Publish(ctx context.Context, event models.PointsEvent)
}

// pointsNotifier runs the side effects of a balance change after commit.
type pointsNotifier struct {
	cache       UserCacheInvalidator
	publisher   EventPublisher
	afterCommit AfterCommitFunc
}

func (n pointsNotifier) notify(ctx context.Context, user *models.User, operation string, delta, balance int) {
	event := models.PointsEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    user.ID,
		Username:  user.Username,
		Operation: operation,
		Points:    delta,
		Balance:   balance,
	}

	fn := func() {
		if n.cache != nil {
			if err := n.cache.Delete(ctx, user.Username); err != nil {
				logger.Log.Warnw("failed to invalidate user cache", "username", user.Username, "err", err)
			}
		}
		if n.publisher != nil {
			n.publisher.Publish(ctx, event)
		}
	}

	if n.afterCommit == nil {
		fn()
		return
	}
	n.afterCommit(ctx, fn)
}
