package model

import (
	"time"

	"gorm.io/datatypes"
)

// EcoPointEntry is one immutable row of the eco-points ledger.
// BalanceAfter records the user's cached balance at the moment the
// entry was written; entries are never updated or deleted.
type EcoPointEntry struct {
	ID           uint64         `gorm:"primaryKey;autoIncrement"`
	UserID       uint64         `gorm:"column:user_id;not null;index"`
	Delta        int64          `gorm:"not null"` // signed: earn > 0, spend < 0
	Reason       string         `gorm:"size:200;not null"`
	Metadata     datatypes.JSON
	BalanceAfter int64          `gorm:"column:balance_after;not null"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
}

func (EcoPointEntry) TableName() string {
	return "eco_point_ledger"
}
