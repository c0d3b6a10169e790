package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/kamchatour/market-backend/internal/model"
	"github.com/kamchatour/market-backend/internal/repository"
)

type GuideActivityInput struct {
	Title         string
	Description   *string
	Price         *float64
	DurationHours *int
	Tags          []string
}

type GuideActivityService interface {
	Create(ctx context.Context, guideID uint64, in GuideActivityInput) (*model.GuideActivity, error)
	Publish(ctx context.Context, guideID, activityID uint64) (*model.GuideActivity, error)
	ListOwned(ctx context.Context, guideID uint64) ([]model.GuideActivity, error)
	SearchPublished(ctx context.Context, query string, limit int) ([]model.GuideActivity, error)
}

type guideActivityService struct {
	activities repository.GuideActivityRepository
}

func NewGuideActivityService(activities repository.GuideActivityRepository) GuideActivityService {
	return &guideActivityService{activities: activities}
}

func (s *guideActivityService) Create(ctx context.Context, guideID uint64, in GuideActivityInput) (*model.GuideActivity, error) {
	title := strings.TrimSpace(in.Title)
	if len(title) < 2 || len(title) > 200 {
		return nil, errors.New("title must be 2-200 characters")
	}
	if in.Price != nil && *in.Price < 0 {
		return nil, errors.New("price must not be negative")
	}
	if in.DurationHours != nil && (*in.DurationHours < 1 || *in.DurationHours > maxListingDurationHours) {
		return nil, errors.New("invalid duration")
	}
	tags, err := toJSON(in.Tags)
	if err != nil {
		return nil, errors.New("invalid tags")
	}

	activity := &model.GuideActivity{
		GuideID:       guideID,
		Title:         title,
		Description:   in.Description,
		Price:         in.Price,
		DurationHours: in.DurationHours,
		Tags:          tags,
		IsActive:      false,
	}
	if err := s.activities.Create(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *guideActivityService) Publish(ctx context.Context, guideID, activityID uint64) (*model.GuideActivity, error) {
	activity, err := s.activities.FindOwned(ctx, activityID, guideID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	activity.IsActive = true
	if err := s.activities.Save(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *guideActivityService) ListOwned(ctx context.Context, guideID uint64) ([]model.GuideActivity, error) {
	return s.activities.ListByGuide(ctx, guideID)
}

func (s *guideActivityService) SearchPublished(ctx context.Context, query string, limit int) ([]model.GuideActivity, error) {
	return s.activities.SearchPublished(ctx, query, clampPublicLimit(limit))
}
