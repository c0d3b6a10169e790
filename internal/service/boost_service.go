package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/kamchatour/market-backend/internal/model"
	"github.com/kamchatour/market-backend/internal/repository"
)

const maxBoostDurationHours = 24 * 90

type BoostService interface {
	// Create starts a boost now. A nil duration never expires.
	Create(ctx context.Context, user *model.User, boostType string, level int, durationHours *int, metadata map[string]interface{}) (*model.Boost, error)
	ListActive(ctx context.Context, userID uint64) ([]model.Boost, error)
}

type boostService struct {
	boosts repository.BoostRepository
	now    func() time.Time
}

func NewBoostService(boosts repository.BoostRepository) BoostService {
	return &boostService{boosts: boosts, now: time.Now}
}

func (s *boostService) Create(ctx context.Context, user *model.User, boostType string, level int, durationHours *int, metadata map[string]interface{}) (*model.Boost, error) {
	boostType = strings.TrimSpace(boostType)
	if boostType == "" {
		return nil, errors.New("boost type is required")
	}
	if level < 1 || level > 10 {
		return nil, errors.New("level must be between 1 and 10")
	}
	if durationHours != nil && (*durationHours < 1 || *durationHours > maxBoostDurationHours) {
		return nil, errors.New("invalid duration")
	}
	meta, err := toJSON(metadata)
	if err != nil {
		return nil, errors.New("invalid metadata")
	}

	startAt := s.now().UTC()
	var endAt *time.Time
	if durationHours != nil {
		t := startAt.Add(time.Duration(*durationHours) * time.Hour)
		endAt = &t
	}
	boost := &model.Boost{
		UserID:    user.ID,
		BoostType: boostType,
		Level:     level,
		StartAt:   startAt,
		EndAt:     endAt,
		Metadata:  meta,
	}
	if err := s.boosts.Create(ctx, boost); err != nil {
		return nil, err
	}
	return boost, nil
}

func (s *boostService) ListActive(ctx context.Context, userID uint64) ([]model.Boost, error) {
	return s.boosts.ListActive(ctx, userID, s.now().UTC())
}
