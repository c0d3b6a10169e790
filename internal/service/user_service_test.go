package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamchatour/market-backend/internal/model"
	"github.com/kamchatour/market-backend/internal/repository"
)

func strptr(s string) *string { return &s }

func TestUpdateOperatorProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()
	operator := seedUser(t, db, model.RoleOperator)

	updated, err := svc.UpdateOperator(ctx, operator.ID, OperatorProfileUpdate{
		CommonProfileUpdate: CommonProfileUpdate{DisplayName: strptr("Renamed Tours")},
		CompanyName:         strptr("Renamed Tours LLC"),
		LicenseNumber:       strptr("LIC-42"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Tours", updated.DisplayName)
	require.NotNil(t, updated.CompanyName)
	assert.Equal(t, "Renamed Tours LLC", *updated.CompanyName)
	require.NotNil(t, updated.LicenseNumber)
	assert.Equal(t, "LIC-42", *updated.LicenseNumber)
}

func TestUpdateTravelerPreferences(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()
	traveler := seedUser(t, db, model.RoleTraveler)

	updated, err := svc.UpdateTraveler(ctx, traveler.ID, TravelerProfileUpdate{
		Preferences: map[string]interface{}{"difficulty": "hard"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"difficulty":"hard"}`, string(updated.Preferences))
}

func TestUpdateCommonValidatesDisplayName(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()
	guide := seedUser(t, db, model.RoleGuide)

	_, err := svc.UpdateCommon(ctx, guide.ID, CommonProfileUpdate{DisplayName: strptr("x")})
	assert.Error(t, err)

	updated, err := svc.UpdateCommon(ctx, guide.ID, CommonProfileUpdate{Bio: strptr("Local guide since 2015")})
	require.NoError(t, err)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, "Local guide since 2015", *updated.Bio)
}

func TestGetAndSummary(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()
	user := seedUser(t, db, model.RoleTraveler)

	got, err := svc.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = svc.Get(ctx, 99999)
	assert.ErrorIs(t, err, ErrNotFound)

	avg, count, err := svc.RatingSummary(ctx, user.ID)
	require.NoError(t, err)
	assert.Zero(t, avg)
	assert.Zero(t, count)

	_, _, err = svc.RatingSummary(ctx, 99999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	seedUser(t, db, model.RoleTraveler)
	seedUser(t, db, model.RoleOperator)
	seedUser(t, db, model.RoleOperator)

	operators, err := svc.List(ctx, model.RoleOperator)
	require.NoError(t, err)
	assert.Len(t, operators, 2)

	everyone, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, everyone, 3)

	_, err = svc.List(ctx, "wizard")
	assert.Error(t, err)
}
