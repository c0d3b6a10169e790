package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamchatour/market-backend/internal/model"
	"github.com/kamchatour/market-backend/internal/repository"
)

func TestEarnThenSpend(t *testing.T) {
	db := newTestDB(t)
	svc := NewEcoPointService(repository.NewEcoLedgerRepository(db))
	ctx := context.Background()
	user := seedUser(t, db, model.RoleTraveler)

	balance, err := svc.Earn(ctx, user, 50, "welcome", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(50), balance)

	balance, err = svc.Spend(ctx, user, 20, "redeem", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(30), balance)

	entries, err := svc.Ledger(ctx, user.ID, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// newest first
	assert.Equal(t, int64(30), entries[0].BalanceAfter)
	assert.Equal(t, int64(-20), entries[0].Delta)
	assert.Equal(t, int64(50), entries[1].BalanceAfter)
	assert.Equal(t, int64(50), entries[1].Delta)

	var cached model.User
	require.NoError(t, db.First(&cached, user.ID).Error)
	assert.Equal(t, int64(30), cached.EcoPointsBalance)
}

func TestSpendInsufficientBalanceLeavesNoEntry(t *testing.T) {
	db := newTestDB(t)
	svc := NewEcoPointService(repository.NewEcoLedgerRepository(db))
	ctx := context.Background()
	user := seedUser(t, db, model.RoleTraveler)

	_, err := svc.Earn(ctx, user, 100, "welcome", nil)
	require.NoError(t, err)

	_, err = svc.Spend(ctx, user, 150, "too much", nil)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	entries, err := svc.Ledger(ctx, user.ID, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	var cached model.User
	require.NoError(t, db.First(&cached, user.ID).Error)
	assert.Equal(t, int64(100), cached.EcoPointsBalance)
}

func TestEcoDeltaValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewEcoPointService(repository.NewEcoLedgerRepository(db))
	ctx := context.Background()
	user := seedUser(t, db, model.RoleTraveler)

	_, err := svc.Earn(ctx, user, 0, "reason", nil)
	assert.Error(t, err)
	_, err = svc.Earn(ctx, user, -5, "reason", nil)
	assert.Error(t, err)
	_, err = svc.Spend(ctx, user, -5, "reason", nil)
	assert.Error(t, err)
	_, err = svc.Earn(ctx, user, 10, "x", nil)
	assert.Error(t, err)
}
