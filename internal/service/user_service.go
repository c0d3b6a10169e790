package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/kamchatour/market-backend/internal/model"
	"github.com/kamchatour/market-backend/internal/repository"
)

// Profile updates are one variant per role so the allowed-field set is
// part of the type, not a runtime conditional. Common fields apply to
// every role; the variants add what that role alone may touch.
type CommonProfileUpdate struct {
	DisplayName *string
	AvatarURL   *string
	Bio         *string
}

type TravelerProfileUpdate struct {
	CommonProfileUpdate
	Preferences map[string]interface{}
}

type OperatorProfileUpdate struct {
	CommonProfileUpdate
	CompanyName   *string
	LicenseNumber *string
}

type UserService interface {
	Get(ctx context.Context, id uint64) (*model.User, error)
	List(ctx context.Context, role model.Role) ([]model.User, error)
	RatingSummary(ctx context.Context, id uint64) (avg float64, count int64, err error)

	UpdateCommon(ctx context.Context, userID uint64, upd CommonProfileUpdate) (*model.User, error)
	UpdateTraveler(ctx context.Context, userID uint64, upd TravelerProfileUpdate) (*model.User, error)
	UpdateOperator(ctx context.Context, userID uint64, upd OperatorProfileUpdate) (*model.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Get(ctx context.Context, id uint64) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, role model.Role) ([]model.User, error) {
	if role != "" && !role.Valid() {
		return nil, errors.New("invalid role")
	}
	return s.users.ListByRole(ctx, role, 100)
}

func (s *userService) RatingSummary(ctx context.Context, id uint64) (float64, int64, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return 0, 0, err
	}
	return user.AverageRating, user.RatingsCount, nil
}

func (s *userService) UpdateCommon(ctx context.Context, userID uint64, upd CommonProfileUpdate) (*model.User, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := applyCommon(user, upd); err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateTraveler(ctx context.Context, userID uint64, upd TravelerProfileUpdate) (*model.User, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := applyCommon(user, upd.CommonProfileUpdate); err != nil {
		return nil, err
	}
	if upd.Preferences != nil {
		prefs, err := toJSON(upd.Preferences)
		if err != nil {
			return nil, errors.New("invalid preferences")
		}
		user.Preferences = prefs
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateOperator(ctx context.Context, userID uint64, upd OperatorProfileUpdate) (*model.User, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := applyCommon(user, upd.CommonProfileUpdate); err != nil {
		return nil, err
	}
	if upd.CompanyName != nil {
		user.CompanyName = upd.CompanyName
	}
	if upd.LicenseNumber != nil {
		user.LicenseNumber = upd.LicenseNumber
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func applyCommon(user *model.User, upd CommonProfileUpdate) error {
	if upd.DisplayName != nil {
		name := strings.TrimSpace(*upd.DisplayName)
		if len(name) < 2 || len(name) > 120 {
			return errors.New("display name must be 2-120 characters")
		}
		user.DisplayName = name
	}
	if upd.AvatarURL != nil {
		user.AvatarURL = upd.AvatarURL
	}
	if upd.Bio != nil {
		user.Bio = upd.Bio
	}
	return nil
}
