package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/kamchatour/market-backend/internal/model"
)

type GuideActivityRepository interface {
	Create(ctx context.Context, activity *model.GuideActivity) error
	FindOwned(ctx context.Context, id, guideID uint64) (*model.GuideActivity, error)
	Save(ctx context.Context, activity *model.GuideActivity) error
	ListByGuide(ctx context.Context, guideID uint64) ([]model.GuideActivity, error)
	SearchPublished(ctx context.Context, query string, limit int) ([]model.GuideActivity, error)
}

type guideActivityRepository struct {
	db *gorm.DB
}

func NewGuideActivityRepository(db *gorm.DB) GuideActivityRepository {
	return &guideActivityRepository{db: db}
}

func (r *guideActivityRepository) Create(ctx context.Context, activity *model.GuideActivity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *guideActivityRepository) FindOwned(ctx context.Context, id, guideID uint64) (*model.GuideActivity, error) {
	var activity model.GuideActivity
	if err := r.db.WithContext(ctx).
		Where("id = ? AND guide_id = ?", id, guideID).
		First(&activity).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *guideActivityRepository) Save(ctx context.Context, activity *model.GuideActivity) error {
	return r.db.WithContext(ctx).Save(activity).Error
}

func (r *guideActivityRepository) ListByGuide(ctx context.Context, guideID uint64) ([]model.GuideActivity, error) {
	var activities []model.GuideActivity
	if err := r.db.WithContext(ctx).
		Where("guide_id = ?", guideID).
		Order("created_at DESC").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *guideActivityRepository) SearchPublished(ctx context.Context, query string, limit int) ([]model.GuideActivity, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if query != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	var activities []model.GuideActivity
	if err := q.Order("created_at DESC").Limit(limit).Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}
