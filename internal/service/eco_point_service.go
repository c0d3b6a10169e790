package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/kamchatour/market-backend/internal/model"
	"github.com/kamchatour/market-backend/internal/repository"
)

type EcoPointService interface {
	// Earn and Spend both take a positive amount; Spend negates it
	// before applying. Each returns the balance after the entry.
	Earn(ctx context.Context, user *model.User, amount int64, reason string, metadata map[string]interface{}) (int64, error)
	Spend(ctx context.Context, user *model.User, amount int64, reason string, metadata map[string]interface{}) (int64, error)
	Ledger(ctx context.Context, userID uint64, limit int) ([]model.EcoPointEntry, error)
}

type ecoPointService struct {
	ledger repository.EcoLedgerRepository
}

func NewEcoPointService(ledger repository.EcoLedgerRepository) EcoPointService {
	return &ecoPointService{ledger: ledger}
}

func (s *ecoPointService) Earn(ctx context.Context, user *model.User, amount int64, reason string, metadata map[string]interface{}) (int64, error) {
	if amount <= 0 {
		return 0, errors.New("amount must be positive")
	}
	return s.apply(ctx, user, amount, reason, metadata)
}

func (s *ecoPointService) Spend(ctx context.Context, user *model.User, amount int64, reason string, metadata map[string]interface{}) (int64, error) {
	if amount <= 0 {
		return 0, errors.New("amount must be positive")
	}
	return s.apply(ctx, user, -amount, reason, metadata)
}

func (s *ecoPointService) apply(ctx context.Context, user *model.User, delta int64, reason string, metadata map[string]interface{}) (int64, error) {
	reason = strings.TrimSpace(reason)
	if len(reason) < 2 || len(reason) > 200 {
		return 0, errors.New("reason must be 2-200 characters")
	}
	meta, err := toJSON(metadata)
	if err != nil {
		return 0, errors.New("invalid metadata")
	}
	entry, err := s.ledger.Apply(ctx, user.ID, delta, reason, meta)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// The guard only rejects spends; an earn can fail this
			// way solely when the user row is gone.
			if delta < 0 {
				return 0, ErrInsufficientBalance
			}
			return 0, ErrNotFound
		}
		return 0, err
	}
	return entry.BalanceAfter, nil
}

func (s *ecoPointService) Ledger(ctx context.Context, userID uint64, limit int) ([]model.EcoPointEntry, error) {
	if limit <= 0 || limit > 200 {
		limit = 200
	}
	return s.ledger.List(ctx, userID, limit)
}
