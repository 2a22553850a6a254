package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/safedrive-rewards/internal/models"
)

// UserReadRepository reads users from PostgreSQL.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user with the given username, or nil if there is none.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `
		SELECT id, username, email, hashed_password, points, level, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, username)
	logQuery(query, []any{username}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetPoints returns the current points balance of the user.
func (r *UserReadRepository) GetPoints(ctx context.Context, userID int64) (int, error) {
	const query = `SELECT points FROM users WHERE id = $1`

	var points int
	err := r.db.GetContext(ctx, &points, query, userID)
	logQuery(query, []any{userID}, points, err)
	return points, err
}

// UserWriteRepository creates users and mutates their points balance.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user. A unique constraint violation is reported as ErrDuplicate.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, hashedPassword string) error {
	const query = `
		INSERT INTO users (username, email, hashed_password, points, level, created_at, updated_at)
		VALUES ($1, $2, $3, 0, $4, NOW(), NOW())
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, username, email, hashedPassword, models.DefaultLevel)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{username, email}, rowsAffected, err)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// AddPoints increases the user's balance by delta and returns the new balance.
func (r *UserWriteRepository) AddPoints(ctx context.Context, userID int64, delta int) (int, error) {
	const query = `
		UPDATE users
		SET points = points + $2, updated_at = NOW()
		WHERE id = $1
		RETURNING points
	`

	var balance int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &balance, query, userID, delta)
	logQuery(query, []any{userID, delta}, balance, err)

	return balance, err
}

// DeductPoints decreases the user's balance by cost in a single statement, only when the
// balance covers it. Returns sql.ErrNoRows when it does not.
func (r *UserWriteRepository) DeductPoints(ctx context.Context, userID int64, cost int) (int, error) {
	const query = `
		UPDATE users
		SET points = points - $2, updated_at = NOW()
		WHERE id = $1 AND points >= $2
		RETURNING points
	`

	var balance int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &balance, query, userID, cost)
	logQuery(query, []any{userID, cost}, balance, err)

	return balance, err
}
