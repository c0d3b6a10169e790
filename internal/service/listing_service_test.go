package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamchatour/market-backend/internal/model"
	"github.com/kamchatour/market-backend/internal/repository"
)

func TestTourPublishLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewTourService(repository.NewTourRepository(db))
	ctx := context.Background()

	owner := seedUser(t, db, model.RoleOperator)
	stranger := seedUser(t, db, model.RoleOperator)

	tour, err := svc.Create(ctx, owner.ID, TourInput{Title: "Valley of Geysers", Price: 25000})
	require.NoError(t, err)
	assert.False(t, tour.IsActive)
	assert.Equal(t, "RUB", tour.Currency)

	// non-owner gets a not-found, and the draft stays a draft
	_, err = svc.Publish(ctx, stranger.ID, tour.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	var stored model.Tour
	require.NoError(t, db.First(&stored, tour.ID).Error)
	assert.False(t, stored.IsActive)

	published, err := svc.Publish(ctx, owner.ID, tour.ID)
	require.NoError(t, err)
	assert.True(t, published.IsActive)

	_, err = svc.Publish(ctx, owner.ID, 99999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTourPublicSearch(t *testing.T) {
	db := newTestDB(t)
	svc := NewTourService(repository.NewTourRepository(db))
	ctx := context.Background()
	owner := seedUser(t, db, model.RoleOperator)

	draft, err := svc.Create(ctx, owner.ID, TourInput{Title: "Hidden Springs"})
	require.NoError(t, err)
	_ = draft

	volcano, err := svc.Create(ctx, owner.ID, TourInput{Title: "Volcano Sunrise Hike"})
	require.NoError(t, err)
	_, err = svc.Publish(ctx, owner.ID, volcano.ID)
	require.NoError(t, err)

	bears, err := svc.Create(ctx, owner.ID, TourInput{Title: "Bear watching"})
	require.NoError(t, err)
	_, err = svc.Publish(ctx, owner.ID, bears.ID)
	require.NoError(t, err)

	all, err := svc.SearchPublished(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2) // drafts stay hidden

	matched, err := svc.SearchPublished(ctx, "VOLCANO", 0)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, volcano.ID, matched[0].ID)
}

func TestTourCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewTourService(repository.NewTourRepository(db))
	ctx := context.Background()
	owner := seedUser(t, db, model.RoleOperator)

	_, err := svc.Create(ctx, owner.ID, TourInput{Title: "x"})
	assert.Error(t, err)
	_, err = svc.Create(ctx, owner.ID, TourInput{Title: "Valid title", Price: -1})
	assert.Error(t, err)
	_, err = svc.Create(ctx, owner.ID, TourInput{Title: "Valid title", Currency: "zz"})
	assert.Error(t, err)
}

func TestGuideActivityPublishLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewGuideActivityService(repository.NewGuideActivityRepository(db))
	ctx := context.Background()

	owner := seedUser(t, db, model.RoleGuide)
	stranger := seedUser(t, db, model.RoleGuide)

	activity, err := svc.Create(ctx, owner.ID, GuideActivityInput{
		Title: "Kayaking the bay",
		Tags:  []string{"kayak"},
	})
	require.NoError(t, err)
	assert.False(t, activity.IsActive)

	_, err = svc.Publish(ctx, stranger.ID, activity.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	published, err := svc.Publish(ctx, owner.ID, activity.ID)
	require.NoError(t, err)
	assert.True(t, published.IsActive)

	public, err := svc.SearchPublished(ctx, "kayak", 0)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, activity.ID, public[0].ID)
}

func TestClampPublicLimit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 100},
		{-3, 1},
		{50, 50},
		{501, 500},
	}
	for _, tt := range tests {
		if got := clampPublicLimit(tt.in); got != tt.want {
			t.Fatalf("clampPublicLimit(%d)=%d want %d", tt.in, got, tt.want)
		}
	}
}
