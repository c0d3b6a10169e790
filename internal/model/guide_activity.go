package model

import (
	"time"

	"gorm.io/datatypes"
)

// GuideActivity mirrors Tour for the guide role: same draft/publish
// lifecycle, guide-specific fields.
type GuideActivity struct {
	ID            uint64         `gorm:"primaryKey;autoIncrement"`
	GuideID       uint64         `gorm:"column:guide_id;not null;index"`
	Title         string         `gorm:"size:200;not null"`
	Description   *string        `gorm:"type:text"`
	Price         *float64
	DurationHours *int           `gorm:"column:duration_hours"`
	Tags          datatypes.JSON // [strings]
	IsActive      bool           `gorm:"column:is_active;not null;default:false"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
}

func (GuideActivity) TableName() string {
	return "guide_activities"
}
