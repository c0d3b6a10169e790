package repository

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/kamchatour/market-backend/internal/model"
)

type EcoLedgerRepository interface {
	// Apply adjusts the user's cached balance and appends the matching
	// ledger entry as one transaction. The balance update is a
	// conditional single statement guarded by `balance + delta >= 0`,
	// so two concurrent spends cannot both read a stale balance and
	// drive it negative. Returns gorm.ErrRecordNotFound when the guard
	// rejects the update (insufficient balance, or no such user).
	Apply(ctx context.Context, userID uint64, delta int64, reason string, metadata datatypes.JSON) (*model.EcoPointEntry, error)
	List(ctx context.Context, userID uint64, limit int) ([]model.EcoPointEntry, error)
}

type ecoLedgerRepository struct {
	db *gorm.DB
}

func NewEcoLedgerRepository(db *gorm.DB) EcoLedgerRepository {
	return &ecoLedgerRepository{db: db}
}

func (r *ecoLedgerRepository) Apply(ctx context.Context, userID uint64, delta int64, reason string, metadata datatypes.JSON) (*model.EcoPointEntry, error) {
	var entry *model.EcoPointEntry
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.User{}).
			Where("id = ? AND eco_points_balance + ? >= 0", userID, delta).
			Update("eco_points_balance", gorm.Expr("eco_points_balance + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		var user model.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}
		entry = &model.EcoPointEntry{
			UserID:       userID,
			Delta:        delta,
			Reason:       reason,
			Metadata:     metadata,
			BalanceAfter: user.EcoPointsBalance,
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *ecoLedgerRepository) List(ctx context.Context, userID uint64, limit int) ([]model.EcoPointEntry, error) {
	var entries []model.EcoPointEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
