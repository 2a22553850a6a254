package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/safedrive-rewards/internal/models"
)

// SpeedWriteRepository stores speed samples.
type SpeedWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewSpeedWriteRepository(db *sqlx.DB, txGetter TxGetter) *SpeedWriteRepository {
	return &SpeedWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a speed sample and returns its id.
func (r *SpeedWriteRepository) Save(ctx context.Context, userID int64, speed float64) (int64, error) {
	const query = `
		INSERT INTO speed_records (user_id, speed, timestamp, created_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, userID, speed)
	logQuery(query, []any{userID, speed}, id, err)

	return id, err
}

// SpeedReadRepository lists speed samples.
type SpeedReadRepository struct {
	db *sqlx.DB
}

func NewSpeedReadRepository(db *sqlx.DB) *SpeedReadRepository {
	return &SpeedReadRepository{db: db}
}

// ListByUserID returns the user's speed samples, newest first.
func (r *SpeedReadRepository) ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]models.SpeedRecord, error) {
	const query = `
		SELECT id, user_id, speed, timestamp, created_at
		FROM speed_records
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT $2 OFFSET $3
	`

	records := []models.SpeedRecord{}
	err := r.db.SelectContext(ctx, &records, query, userID, limit, offset)
	logQuery(query, []any{userID, limit, offset}, len(records), err)

	if err != nil {
		return nil, err
	}
	return records, nil
}
