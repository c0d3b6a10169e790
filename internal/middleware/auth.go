package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/kamchatour/market-backend/internal/auth"
	"github.com/kamchatour/market-backend/internal/model"
	"github.com/kamchatour/market-backend/internal/repository"
)

const userContextKey = "currentUser"

type AuthMiddleware struct {
	tokens *auth.Tokens
	users  repository.UserRepository
}

func NewAuthMiddleware(tokens *auth.Tokens, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// RequireAuth resolves the bearer token to an active user and stores it
// on the request context. Verification fails closed: any decode error,
// unknown user or deactivated account is a 401.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authz := c.Request().Header.Get("Authorization")
		if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		}
		userID, err := m.tokens.Parse(strings.TrimPrefix(authz, "Bearer "))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid_token"})
		}
		user, err := m.users.FindByID(c.Request().Context(), userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid_token"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal_error"})
		}
		if !user.IsActive {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid_token"})
		}
		c.Set(userContextKey, user)
		return next(c)
	}
}

// RequireRole gates a route group to one role. Runs after RequireAuth.
func (m *AuthMiddleware) RequireRole(role model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil || user.Role != role {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient_role"})
			}
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user set by RequireAuth, or
// nil on unauthenticated routes.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}
