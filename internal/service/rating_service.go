package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kamchatour/market-backend/internal/model"
	"github.com/kamchatour/market-backend/internal/repository"
)

type RatingService interface {
	// Submit upserts the rater's rating for rateeID. Ratings only run
	// across roles: a traveler rates operators/guides and vice versa.
	Submit(ctx context.Context, rater *model.User, rateeID uint64, score int, comment *string) error
}

type ratingService struct {
	ratings repository.RatingRepository
	users   repository.UserRepository
}

func NewRatingService(ratings repository.RatingRepository, users repository.UserRepository) RatingService {
	return &ratingService{ratings: ratings, users: users}
}

func (s *ratingService) Submit(ctx context.Context, rater *model.User, rateeID uint64, score int, comment *string) error {
	if score < 1 || score > 5 {
		return errors.New("score must be between 1 and 5")
	}
	if comment != nil && len(*comment) > 2000 {
		return errors.New("comment too long")
	}
	if rateeID == rater.ID {
		return ErrSelfRating
	}
	ratee, err := s.users.FindByID(ctx, rateeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if ratee.Role == rater.Role {
		return ErrSameRoleRating
	}
	return s.ratings.Upsert(ctx, &model.Rating{
		RaterID: rater.ID,
		RateeID: rateeID,
		Score:   score,
		Comment: comment,
	})
}
