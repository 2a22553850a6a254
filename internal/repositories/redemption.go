package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/safedrive-rewards/internal/models"
)

// RedemptionWriteRepository stores reward redemptions.
type RedemptionWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewRedemptionWriteRepository(db *sqlx.DB, txGetter TxGetter) *RedemptionWriteRepository {
	return &RedemptionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a redemption and returns its id.
func (r *RedemptionWriteRepository) Save(ctx context.Context, userID int64, description string, pointsCost int) (int64, error) {
	const query = `
		INSERT INTO rewards (user_id, description, points_cost, redeemed_at, created_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`
	args := []any{userID, description, pointsCost}

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)
	logQuery(query, args, id, err)

	return id, err
}

// RedemptionReadRepository lists reward redemptions.
type RedemptionReadRepository struct {
	db *sqlx.DB
}

func NewRedemptionReadRepository(db *sqlx.DB) *RedemptionReadRepository {
	return &RedemptionReadRepository{db: db}
}

// ListByUserID returns the user's redemptions, newest first.
func (r *RedemptionReadRepository) ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]models.RewardRedemption, error) {
	const query = `
		SELECT id, user_id, description, points_cost, redeemed_at, created_at
		FROM rewards
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT $2 OFFSET $3
	`

	redemptions := []models.RewardRedemption{}
	err := r.db.SelectContext(ctx, &redemptions, query, userID, limit, offset)
	logQuery(query, []any{userID, limit, offset}, len(redemptions), err)

	if err != nil {
		return nil, err
	}
	return redemptions, nil
}
