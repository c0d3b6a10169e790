package service

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kamchatour/market-backend/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, role model.Role) *model.User {
	t.Helper()
	user := &model.User{
		Email:        fmt.Sprintf("%s-%s@example.com", role, uuid.NewString()[:8]),
		PasswordHash: "not-a-real-hash",
		Role:         role,
		DisplayName:  "Test " + string(role),
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
