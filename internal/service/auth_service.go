package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/kamchatour/market-backend/internal/auth"
	"github.com/kamchatour/market-backend/internal/model"
	"github.com/kamchatour/market-backend/internal/repository"
)

type SignupInput struct {
	Email         string
	Password      string
	Role          model.Role
	DisplayName   string
	AvatarURL     *string
	Bio           *string
	CompanyName   *string
	LicenseNumber *string
	Preferences   map[string]interface{}
}

type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*model.User, error)
	// Login checks credentials and returns a bearer token for the user.
	Login(ctx context.Context, email, password string) (string, *model.User, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.Tokens
}

func NewAuthService(users repository.UserRepository, tokens *auth.Tokens) AuthService {
	return &authService{users: users, tokens: tokens}
}

func (s *authService) Signup(ctx context.Context, in SignupInput) (*model.User, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.New("invalid email")
	}
	// bcrypt rejects inputs over 72 bytes, so the upper bound stops there.
	if len(in.Password) < 8 || len(in.Password) > 72 {
		return nil, errors.New("password must be 8-72 characters")
	}
	if !in.Role.Valid() {
		return nil, errors.New("invalid role")
	}
	name := strings.TrimSpace(in.DisplayName)
	if len(name) < 2 || len(name) > 120 {
		return nil, errors.New("display name must be 2-120 characters")
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	prefs, err := toJSON(in.Preferences)
	if err != nil {
		return nil, errors.New("invalid preferences")
	}

	user := &model.User{
		Email:         email,
		PasswordHash:  hash,
		Role:          in.Role,
		DisplayName:   name,
		AvatarURL:     in.AvatarURL,
		Bio:           in.Bio,
		CompanyName:   in.CompanyName,
		LicenseNumber: in.LicenseNumber,
		Preferences:   prefs,
		IsActive:      true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// Unique index backs the lookup above under concurrent signups.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
