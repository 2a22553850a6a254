package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/safedrive-rewards/internal/models"
)

// HazardWriteRepository stores hazard reports.
type HazardWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewHazardWriteRepository(db *sqlx.DB, txGetter TxGetter) *HazardWriteRepository {
	return &HazardWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts an active hazard report and returns its id.
func (r *HazardWriteRepository) Save(ctx context.Context, userID int64, hazardType, location string) (int64, error) {
	const query = `
		INSERT INTO hazards (user_id, hazard_type, location, timestamp, status, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), $4, NOW(), NOW())
		RETURNING id
	`
	args := []any{userID, hazardType, location, models.HazardStatusActive}

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)
	logQuery(query, args, id, err)

	return id, err
}

// HazardReadRepository lists hazard reports.
type HazardReadRepository struct {
	db *sqlx.DB
}

func NewHazardReadRepository(db *sqlx.DB) *HazardReadRepository {
	return &HazardReadRepository{db: db}
}

// ListByUserID returns the user's hazard reports, newest first.
func (r *HazardReadRepository) ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]models.HazardReport, error) {
	const query = `
		SELECT id, user_id, hazard_type, location, timestamp, status, created_at, updated_at
		FROM hazards
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT $2 OFFSET $3
	`

	hazards := []models.HazardReport{}
	err := r.db.SelectContext(ctx, &hazards, query, userID, limit, offset)
	logQuery(query, []any{userID, limit, offset}, len(hazards), err)

	if err != nil {
		return nil, err
	}
	return hazards, nil
}
