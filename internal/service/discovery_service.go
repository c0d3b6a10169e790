package service

import (
	"context"
	"errors"

	"github.com/kamchatour/market-backend/internal/model"
	"github.com/kamchatour/market-backend/internal/repository"
)

type DiscoveryService interface {
	// Discover returns counterpart users for the viewer, ranked by
	// boost spend, then rating, then rating count, then join date.
	// An explicit roleFilter overrides the viewer's counterpart role.
	Discover(ctx context.Context, viewer *model.User, roleFilter model.Role, limit int) ([]repository.RankedUser, error)
}

type discoveryService struct {
	users repository.UserRepository
}

func NewDiscoveryService(users repository.UserRepository) DiscoveryService {
	return &discoveryService{users: users}
}

func (s *discoveryService) Discover(ctx context.Context, viewer *model.User, roleFilter model.Role, limit int) ([]repository.RankedUser, error) {
	target := roleFilter
	if target == "" {
		target = model.CounterpartRole(viewer.Role)
	} else if !target.Valid() {
		return nil, errors.New("invalid role")
	}
	if limit == 0 {
		limit = 50
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 200 {
		limit = 200
	}
	return s.users.Rank(ctx, target, limit)
}
