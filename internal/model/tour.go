package model

import (
	"time"

	"gorm.io/datatypes"
)

// Tour is an operator's storefront listing. Created as a draft
// (IsActive=false); publishing is terminal, there is no unpublish.
type Tour struct {
	ID            uint64         `gorm:"primaryKey;autoIncrement"`
	OperatorID    uint64         `gorm:"column:operator_id;not null;index"`
	Title         string         `gorm:"size:200;not null"`
	Description   *string        `gorm:"type:text"`
	Price         float64        `gorm:"not null;default:0"`
	Currency      string         `gorm:"size:8;not null;default:RUB"`
	DurationHours *int           `gorm:"column:duration_hours"`
	Difficulty    *string        `gorm:"size:50"`
	Location      datatypes.JSON // {city, country, lat, lng}
	Images        datatypes.JSON // [urls]
	IsActive      bool           `gorm:"column:is_active;not null;default:false"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
}

func (Tour) TableName() string {
	return "tours"
}
