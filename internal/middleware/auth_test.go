package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kamchatour/market-backend/internal/auth"
	"github.com/kamchatour/market-backend/internal/model"
	"github.com/kamchatour/market-backend/internal/repository"
)

func setupAuthTest(t *testing.T) (*AuthMiddleware, *auth.Tokens, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:mw-%s?mode=memory&cache=shared", t.Name())), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}))
	tokens := auth.NewTokens("test-secret", time.Hour)
	return NewAuthMiddleware(tokens, repository.NewUserRepository(db)), tokens, db
}

func seedUser(t *testing.T, db *gorm.DB, role model.Role, active bool) *model.User {
	t.Helper()
	user := &model.User{
		Email:        fmt.Sprintf("%s-%s@example.com", role, t.Name()),
		PasswordHash: "x",
		Role:         role,
		DisplayName:  "Middleware Test",
		IsActive:     active,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func doRequest(mw *AuthMiddleware, token string) *httptest.ResponseRecorder {
	e := echo.New()
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]uint64{"id": CurrentUser(c).ID})
	}, mw.RequireAuth)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	mw, tokens, db := setupAuthTest(t)
	user := seedUser(t, db, model.RoleTraveler, true)

	token, err := tokens.Issue(user.ID, user.Role)
	require.NoError(t, err)

	rec := doRequest(mw, token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), fmt.Sprintf("%d", user.ID))
}

func TestRequireAuthRejections(t *testing.T) {
	mw, tokens, db := setupAuthTest(t)
	inactive := seedUser(t, db, model.RoleTraveler, false)

	inactiveToken, err := tokens.Issue(inactive.ID, inactive.Role)
	require.NoError(t, err)
	ghostToken, err := tokens.Issue(99999, model.RoleTraveler)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"missing header", ""},
		{"garbage token", "garbage"},
		{"unknown user", ghostToken},
		{"inactive user", inactiveToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(mw, tt.token)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	mw, tokens, db := setupAuthTest(t)
	traveler := seedUser(t, db, model.RoleTraveler, true)

	token, err := tokens.Issue(traveler.ID, traveler.Role)
	require.NoError(t, err)

	e := echo.New()
	h := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	e.GET("/op", h, mw.RequireAuth, mw.RequireRole(model.RoleOperator))
	e.GET("/trav", h, mw.RequireAuth, mw.RequireRole(model.RoleTraveler))

	req := httptest.NewRequest(http.MethodGet, "/op", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/trav", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
