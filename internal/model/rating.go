package model

import "time"

// Rating is one user's score for a counterpart user. A (rater, ratee)
// pair holds at most one row; resubmitting overwrites score and comment.
type Rating struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	RaterID   uint64    `gorm:"column:rater_id;not null;index;uniqueIndex:uniq_rater_ratee"`
	RateeID   uint64    `gorm:"column:ratee_id;not null;index;uniqueIndex:uniq_rater_ratee"`
	Score     int       `gorm:"not null"` // 1..5
	Comment   *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Rating) TableName() string {
	return "ratings"
}
