package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserReadRepository_GetByUsername(t *testing.T) {
	now := time.Now()
	columns := []string{"id", "username", "email", "hashed_password", "points", "level", "created_at", "updated_at"}

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE username = \$1`).
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(7, "alice", "alice@example.com", "hash", 150, "Bronze", now, now))

		user, err := NewUserReadRepository(db).GetByUsername(context.Background(), "alice")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(7), user.ID)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "hash", user.HashedPassword)
		assert.Equal(t, 150, user.Points)
		assert.Equal(t, "Bronze", user.Level)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE username = \$1`).
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows(columns))

		user, err := NewUserReadRepository(db).GetByUsername(context.Background(), "ghost")
		assert.NoError(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT (.+) FROM users`).WillReturnError(sql.ErrConnDone)

		user, err := NewUserReadRepository(db).GetByUsername(context.Background(), "alice")
		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.Nil(t, user)
	})
}

func TestUserWriteRepository_Save(t *testing.T) {
	tests := []struct {
		name    string
		execErr error
		wantErr error
	}{
		{name: "inserted"},
		{name: "unique violation", execErr: &pgconn.PgError{Code: "23505"}, wantErr: ErrDuplicate},
		{name: "other error", execErr: sql.ErrConnDone, wantErr: sql.ErrConnDone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			exp := mock.ExpectExec(`INSERT INTO users \(username, email, hashed_password, points, level, created_at, updated_at\)`).
				WithArgs("alice", "alice@example.com", "hash", "Bronze")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(1, 1))
			}

			err := NewUserWriteRepository(db, nil).Save(context.Background(), "alice", "alice@example.com", "hash")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserReadRepository_GetPoints(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT points FROM users WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"points"}).AddRow(550))

	points, err := NewUserReadRepository(db).GetPoints(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 550, points)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_AddPoints(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`UPDATE users SET points = points \+ \$2, updated_at = NOW\(\) WHERE id = \$1 RETURNING points`).
		WithArgs(int64(7), 50).
		WillReturnRows(sqlmock.NewRows([]string{"points"}).AddRow(100))

	balance, err := NewUserWriteRepository(db, nil).AddPoints(context.Background(), 7, 50)
	assert.NoError(t, err)
	assert.Equal(t, 100, balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_DeductPoints(t *testing.T) {
	const query = `UPDATE users SET points = points - \$2, updated_at = NOW\(\) WHERE id = \$1 AND points >= \$2 RETURNING points`

	t.Run("enough points", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs(int64(7), 500).
			WillReturnRows(sqlmock.NewRows([]string{"points"}).AddRow(0))

		balance, err := NewUserWriteRepository(db, nil).DeductPoints(context.Background(), 7, 500)
		assert.NoError(t, err)
		assert.Equal(t, 0, balance)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insufficient points", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs(int64(7), 500).
			WillReturnRows(sqlmock.NewRows([]string{"points"}))

		_, err := NewUserWriteRepository(db, nil).DeductPoints(context.Background(), 7, 500)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWriteRepositories_UseContextTransaction(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO hazards`).
		WithArgs(int64(7), "pothole", "Main St", "active").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectQuery(`UPDATE users SET points = points \+ \$2`).
		WithArgs(int64(7), 50).
		WillReturnRows(sqlmock.NewRows([]string{"points"}).AddRow(50))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, tx)
	txGetter := func(ctx context.Context) *sqlx.Tx {
		tx, _ := ctx.Value(ctxKey{}).(*sqlx.Tx)
		return tx
	}

	id, err := NewHazardWriteRepository(db, txGetter).Save(ctx, 7, "pothole", "Main St")
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)

	balance, err := NewUserWriteRepository(db, txGetter).AddPoints(ctx, 7, 50)
	require.NoError(t, err)
	assert.Equal(t, 50, balance)

	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSpeedWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`INSERT INTO speed_records \(user_id, speed, timestamp, created_at\)`).
		WithArgs(int64(7), 88.5).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	id, err := NewSpeedWriteRepository(db, nil).Save(context.Background(), 7, 88.5)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedemptionWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`INSERT INTO rewards \(user_id, description, points_cost, redeemed_at, created_at\)`).
		WithArgs(int64(7), "Free Car Wash", 500).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	id, err := NewRedemptionWriteRepository(db, nil).Save(context.Background(), 7, "Free Car Wash", 500)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReadRepositories_ListByUserID(t *testing.T) {
	now := time.Now()
	ctx := context.Background()

	t.Run("hazards", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`FROM hazards WHERE user_id = \$1 ORDER BY id DESC LIMIT \$2 OFFSET \$3`).
			WithArgs(int64(7), 20, 0).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "hazard_type", "location", "timestamp", "status", "created_at", "updated_at"}).
				AddRow(2, 7, "ice", "Bridge", now, "active", now, now).
				AddRow(1, 7, "pothole", "Main St", now, "active", now, now))

		hazards, err := NewHazardReadRepository(db).ListByUserID(ctx, 7, 20, 0)
		require.NoError(t, err)
		require.Len(t, hazards, 2)
		assert.Equal(t, "ice", hazards[0].HazardType)
		assert.Equal(t, "pothole", hazards[1].HazardType)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("speed records empty", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`FROM speed_records WHERE user_id = \$1`).
			WithArgs(int64(7), 10, 5).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "speed", "timestamp", "created_at"}))

		records, err := NewSpeedReadRepository(db).ListByUserID(ctx, 7, 10, 5)
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("redemptions", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`FROM rewards WHERE user_id = \$1`).
			WithArgs(int64(7), 20, 0).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "description", "points_cost", "redeemed_at", "created_at"}).
				AddRow(1, 7, "Free Car Wash", 500, now, now))

		redemptions, err := NewRedemptionReadRepository(db).ListByUserID(ctx, 7, 20, 0)
		require.NoError(t, err)
		require.Len(t, redemptions, 1)
		assert.Equal(t, 500, redemptions[0].PointsCost)
	})

	t.Run("error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`FROM rewards`).WillReturnError(errors.New("boom"))

		redemptions, err := NewRedemptionReadRepository(db).ListByUserID(ctx, 7, 20, 0)
		assert.EqualError(t, err, "boom")
		assert.Nil(t, redemptions)
	})
}
