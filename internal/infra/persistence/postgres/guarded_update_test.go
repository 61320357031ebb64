package postgres

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type capturedUpdate struct {
	sql  string
	vars []any
}

// newDryRunDB builds statements with the postgres dialector without a server. Nothing is
// executed, so every update reports zero affected rows.
func newDryRunDB(t *testing.T) (*gorm.DB, *[]capturedUpdate) {
	t.Helper()

	db, err := gorm.Open(gormpg.New(gormpg.Config{
		DSN: "host=localhost user=storefront dbname=storefront sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	var updates []capturedUpdate
	err = db.Callback().Update().After("gorm:update").Register("storefront:capture_update", func(tx *gorm.DB) {
		updates = append(updates, capturedUpdate{
			sql:  tx.Statement.SQL.String(),
			vars: append([]any(nil), tx.Statement.Vars...),
		})
	})
	require.NoError(t, err)

	return db, &updates
}

func TestCouponRepository_IncrementUsage_GuardsLimitAndValidity(t *testing.T) {
	db, updates := newDryRunDB(t)
	repo := NewCouponRepository(db)
	couponID := uuid.New()
	now := time.Date(2026, 5, 10, 9, 30, 0, 0, time.UTC)

	err := repo.IncrementUsage(context.Background(), couponID, now)
	assert.ErrorIs(t, err, repository.ErrCouponUsageExhausted)

	require.Len(t, *updates, 1)
	stmt := (*updates)[0]
	assert.Contains(t, stmt.sql, `UPDATE "coupons" SET "used_count"=used_count + 1`)
	assert.Contains(t, stmt.sql, "id = $")
	assert.Contains(t, stmt.sql, "is_active = $")
	assert.Contains(t, stmt.sql, "valid_from <= $")
	assert.Contains(t, stmt.sql, "valid_until >= $")
	assert.Contains(t, stmt.sql, "usage_limit IS NULL OR used_count < usage_limit")
	assert.Contains(t, stmt.vars, couponID)
	assert.Contains(t, stmt.vars, true)
	assert.Contains(t, stmt.vars, now)
}

func TestLoyaltyRepository_DebitPoints_GuardsBalance(t *testing.T) {
	db, updates := newDryRunDB(t)
	repo := NewLoyaltyRepository(db)
	accountID := uuid.New()

	err := repo.DebitPoints(context.Background(), accountID, 250)
	assert.ErrorIs(t, err, repository.ErrInsufficientPoints)

	require.Len(t, *updates, 1)
	stmt := (*updates)[0]
	assert.Contains(t, stmt.sql, `"total_points"=total_points - $`)
	assert.Contains(t, stmt.sql, `"redeemed_points"=redeemed_points + $`)
	assert.Contains(t, stmt.sql, "total_points >= $")
	assert.Contains(t, stmt.vars, accountID)
	assert.Contains(t, stmt.vars, int64(250))
}

func TestLoyaltyRepository_DebitPoints_RejectsNonPositive(t *testing.T) {
	db, updates := newDryRunDB(t)
	repo := NewLoyaltyRepository(db)

	for _, points := range []int64{0, -5} {
		err := repo.DebitPoints(context.Background(), uuid.New(), points)
		require.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrInsufficientPoints)
	}
	assert.Empty(t, *updates)
}
