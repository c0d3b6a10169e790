package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamchatour/market-backend/internal/model"
	"github.com/kamchatour/market-backend/internal/repository"
)

func TestSubmitRatingUpsert(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(repository.NewRatingRepository(db), repository.NewUserRepository(db))
	ctx := context.Background()

	traveler := seedUser(t, db, model.RoleTraveler)
	operator := seedUser(t, db, model.RoleOperator)

	require.NoError(t, svc.Submit(ctx, traveler, operator.ID, 5, nil))
	require.NoError(t, svc.Submit(ctx, traveler, operator.ID, 2, nil))

	var count int64
	require.NoError(t, db.Model(&model.Rating{}).
		Where("rater_id = ? AND ratee_id = ?", traveler.ID, operator.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var ratee model.User
	require.NoError(t, db.First(&ratee, operator.ID).Error)
	assert.Equal(t, int64(1), ratee.RatingsCount)
	assert.InDelta(t, 2.0, ratee.AverageRating, 1e-9)
}

func TestSubmitRatingAggregatesAcrossRaters(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(repository.NewRatingRepository(db), repository.NewUserRepository(db))
	ctx := context.Background()

	operator := seedUser(t, db, model.RoleOperator)
	first := seedUser(t, db, model.RoleTraveler)
	second := seedUser(t, db, model.RoleTraveler)

	require.NoError(t, svc.Submit(ctx, first, operator.ID, 5, nil))
	require.NoError(t, svc.Submit(ctx, second, operator.ID, 2, nil))

	var ratee model.User
	require.NoError(t, db.First(&ratee, operator.ID).Error)
	assert.Equal(t, int64(2), ratee.RatingsCount)
	assert.InDelta(t, 3.5, ratee.AverageRating, 1e-9)
}

func TestSubmitRatingRejections(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(repository.NewRatingRepository(db), repository.NewUserRepository(db))
	ctx := context.Background()

	traveler := seedUser(t, db, model.RoleTraveler)
	otherTraveler := seedUser(t, db, model.RoleTraveler)

	assert.ErrorIs(t, svc.Submit(ctx, traveler, traveler.ID, 4, nil), ErrSelfRating)
	assert.ErrorIs(t, svc.Submit(ctx, traveler, otherTraveler.ID, 4, nil), ErrSameRoleRating)
	assert.ErrorIs(t, svc.Submit(ctx, traveler, 99999, 4, nil), ErrNotFound)
	assert.Error(t, svc.Submit(ctx, traveler, otherTraveler.ID, 0, nil))
	assert.Error(t, svc.Submit(ctx, traveler, otherTraveler.ID, 6, nil))
}
