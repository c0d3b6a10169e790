package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/kamchatour/market-backend/internal/model"
)

type TourRepository interface {
	Create(ctx context.Context, tour *model.Tour) error
	// FindOwned looks the tour up by id and owner in one query, so a
	// missing tour and a foreign one are indistinguishable to callers.
	FindOwned(ctx context.Context, id, operatorID uint64) (*model.Tour, error)
	Save(ctx context.Context, tour *model.Tour) error
	ListByOperator(ctx context.Context, operatorID uint64) ([]model.Tour, error)
	SearchPublished(ctx context.Context, query string, limit int) ([]model.Tour, error)
}

type tourRepository struct {
	db *gorm.DB
}

func NewTourRepository(db *gorm.DB) TourRepository {
	return &tourRepository{db: db}
}

func (r *tourRepository) Create(ctx context.Context, tour *model.Tour) error {
	return r.db.WithContext(ctx).Create(tour).Error
}

func (r *tourRepository) FindOwned(ctx context.Context, id, operatorID uint64) (*model.Tour, error) {
	var tour model.Tour
	if err := r.db.WithContext(ctx).
		Where("id = ? AND operator_id = ?", id, operatorID).
		First(&tour).Error; err != nil {
		return nil, err
	}
	return &tour, nil
}

func (r *tourRepository) Save(ctx context.Context, tour *model.Tour) error {
	return r.db.WithContext(ctx).Save(tour).Error
}

func (r *tourRepository) ListByOperator(ctx context.Context, operatorID uint64) ([]model.Tour, error) {
	var tours []model.Tour
	if err := r.db.WithContext(ctx).
		Where("operator_id = ?", operatorID).
		Order("created_at DESC").
		Find(&tours).Error; err != nil {
		return nil, err
	}
	return tours, nil
}

func (r *tourRepository) SearchPublished(ctx context.Context, query string, limit int) ([]model.Tour, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if query != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	var tours []model.Tour
	if err := q.Order("created_at DESC").Limit(limit).Find(&tours).Error; err != nil {
		return nil, err
	}
	return tours, nil
}
