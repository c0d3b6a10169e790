package model

import (
	"time"

	"gorm.io/datatypes"
)

type Role string

const (
	RoleTraveler Role = "traveler"
	RoleOperator Role = "operator"
	RoleGuide    Role = "guide"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleTraveler, RoleOperator, RoleGuide, RoleAdmin:
		return true
	}
	return false
}

// CounterpartRole is the role a viewer is shown by default in discovery.
// Travelers see operators; every other role sees travelers.
func CounterpartRole(r Role) Role {
	if r == RoleTraveler {
		return RoleOperator
	}
	return RoleTraveler
}

type User struct {
	ID            uint64         `gorm:"primaryKey;autoIncrement"`
	Email         string         `gorm:"size:320;uniqueIndex;not null"`
	PasswordHash  string         `gorm:"size:255;not null"`
	Role          Role           `gorm:"size:32;not null;index"`
	DisplayName   string         `gorm:"size:120;not null"`
	AvatarURL     *string        `gorm:"size:500"`
	Bio           *string        `gorm:"type:text"`
	CompanyName   *string        `gorm:"size:200"` // operators only
	LicenseNumber *string        `gorm:"size:100"` // operators only
	Preferences   datatypes.JSON // travelers only
	IsActive      bool           `gorm:"not null;default:true"`

	AverageRating    float64 `gorm:"not null;default:0"`
	RatingsCount     int64   `gorm:"not null;default:0"`
	EcoPointsBalance int64   `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
