package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kamchatour/market-backend/internal/model"
)

type RatingRepository interface {
	// Upsert writes or overwrites the (rater, ratee) rating and
	// recomputes the ratee's aggregate rating columns in the same
	// transaction, so readers never see one without the other.
	Upsert(ctx context.Context, rating *model.Rating) error
	FindByPair(ctx context.Context, raterID, rateeID uint64) (*model.Rating, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Upsert(ctx context.Context, rating *model.Rating) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Rating
		err := tx.Where("rater_id = ? AND ratee_id = ?", rating.RaterID, rating.RateeID).
			First(&existing).Error
		switch {
		case err == nil:
			existing.Score = rating.Score
			existing.Comment = rating.Comment
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(rating).Error; err != nil {
				return err
			}
		default:
			return err
		}
		return recomputeRateeAggregates(tx, rating.RateeID)
	})
}

func (r *ratingRepository) FindByPair(ctx context.Context, raterID, rateeID uint64) (*model.Rating, error) {
	var rating model.Rating
	if err := r.db.WithContext(ctx).
		Where("rater_id = ? AND ratee_id = ?", raterID, rateeID).
		First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func recomputeRateeAggregates(tx *gorm.DB, rateeID uint64) error {
	var agg struct {
		Cnt      int64    `gorm:"column:cnt"`
		AvgScore *float64 `gorm:"column:avg_score"`
	}
	if err := tx.Model(&model.Rating{}).
		Select("COUNT(id) AS cnt, AVG(score) AS avg_score").
		Where("ratee_id = ?", rateeID).
		Scan(&agg).Error; err != nil {
		return err
	}
	avg := 0.0
	if agg.AvgScore != nil {
		avg = *agg.AvgScore
	}
	return tx.Model(&model.User{}).
		Where("id = ?", rateeID).
		Updates(map[string]interface{}{
			"ratings_count":  agg.Cnt,
			"average_rating": avg,
		}).Error
}
