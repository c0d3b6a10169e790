package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kamchatour/market-backend/internal/model"
)

// RankedUser is a discovery row: the candidate user plus the sum of
// boost levels across every boost ever bought for them. The sum does
// not filter expired boosts; see Rank.
type RankedUser struct {
	model.User
	BoostScore int64 `gorm:"column:boost_score"`
}

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	ListByRole(ctx context.Context, role model.Role, limit int) ([]model.User, error)
	Save(ctx context.Context, user *model.User) error
	Rank(ctx context.Context, role model.Role, limit int) ([]RankedUser, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint64) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListByRole(ctx context.Context, role model.Role, limit int) ([]model.User, error) {
	var users []model.User
	q := r.db.WithContext(ctx).Model(&model.User{})
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if err := q.Order("created_at DESC").Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Save(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// Rank orders candidates of the given role by boost spend and
// reputation. BoostScore deliberately sums ALL boost rows, including
// expired ones, for compatibility with historical ranking output; an
// active-only sum would add the end_at window to the join.
func (r *userRepository) Rank(ctx context.Context, role model.Role, limit int) ([]RankedUser, error) {
	var ranked []RankedUser
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Select("users.*, COALESCE(SUM(boosts.level), 0) AS boost_score").
		Joins("LEFT JOIN boosts ON boosts.user_id = users.id").
		Where("users.role = ?", role).
		Group("users.id").
		Order("boost_score DESC, users.average_rating DESC, users.ratings_count DESC, users.created_at DESC").
		Limit(limit).
		Find(&ranked).Error
	if err != nil {
		return nil, err
	}
	return ranked, nil
}
