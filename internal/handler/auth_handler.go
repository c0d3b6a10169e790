package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kamchatour/market-backend/internal/model"
	"github.com/kamchatour/market-backend/internal/service"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type SignupRequest struct {
	Email         string                 `json:"email"`
	Password      string                 `json:"password"`
	Role          string                 `json:"role"`
	DisplayName   string                 `json:"displayName"`
	AvatarURL     *string                `json:"avatarUrl"`
	Bio           *string                `json:"bio"`
	CompanyName   *string                `json:"companyName"`
	LicenseNumber *string                `json:"licenseNumber"`
	Preferences   map[string]interface{} `json:"preferences"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	user, err := h.svc.Signup(c.Request().Context(), service.SignupInput{
		Email:         req.Email,
		Password:      req.Password,
		Role:          model.Role(req.Role),
		DisplayName:   req.DisplayName,
		AvatarURL:     req.AvatarURL,
		Bio:           req.Bio,
		CompanyName:   req.CompanyName,
		LicenseNumber: req.LicenseNumber,
		Preferences:   req.Preferences,
	})
	if err != nil {
		return writeServiceError(c, err, http.StatusBadRequest)
	}
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	token, _, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeServiceError(c, err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}
