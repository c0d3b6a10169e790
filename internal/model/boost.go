package model

import (
	"time"

	"gorm.io/datatypes"
)

// Boost is a paid visibility purchase. A nil EndAt never expires;
// otherwise the boost is active while EndAt is in the future.
type Boost struct {
	ID        uint64         `gorm:"primaryKey;autoIncrement"`
	UserID    uint64         `gorm:"column:user_id;not null;index"`
	BoostType string         `gorm:"column:boost_type;size:50;not null"` // open vocabulary: 'visibility', 'badge', ...
	Level     int            `gorm:"not null;default:1"`                 // 1..10
	StartAt   time.Time      `gorm:"column:start_at;not null"`
	EndAt     *time.Time     `gorm:"column:end_at"`
	Metadata  datatypes.JSON
}

func (Boost) TableName() string {
	return "boosts"
}

func (b *Boost) ActiveAt(now time.Time) bool {
	return b.EndAt == nil || b.EndAt.After(now)
}
