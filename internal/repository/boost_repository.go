package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/kamchatour/market-backend/internal/model"
)

type BoostRepository interface {
	Create(ctx context.Context, boost *model.Boost) error
	// ListActive returns the user's boosts that have no end time or
	// end after now, newest start first.
	ListActive(ctx context.Context, userID uint64, now time.Time) ([]model.Boost, error)
}

type boostRepository struct {
	db *gorm.DB
}

func NewBoostRepository(db *gorm.DB) BoostRepository {
	return &boostRepository{db: db}
}

func (r *boostRepository) Create(ctx context.Context, boost *model.Boost) error {
	return r.db.WithContext(ctx).Create(boost).Error
}

func (r *boostRepository) ListActive(ctx context.Context, userID uint64, now time.Time) ([]model.Boost, error) {
	var boosts []model.Boost
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("end_at IS NULL OR end_at > ?", now).
		Order("start_at DESC").
		Find(&boosts).Error; err != nil {
		return nil, err
	}
	return boosts, nil
}
