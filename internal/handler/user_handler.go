package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	appmw "github.com/kamchatour/market-backend/internal/middleware"
	"github.com/kamchatour/market-backend/internal/model"
	"github.com/kamchatour/market-backend/internal/service"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type UserResponse struct {
	ID               uint64          `json:"id"`
	Email            string          `json:"email"`
	DisplayName      string          `json:"displayName"`
	Role             string          `json:"role"`
	AvatarURL        *string         `json:"avatarUrl,omitempty"`
	Bio              *string         `json:"bio,omitempty"`
	CompanyName      *string         `json:"companyName,omitempty"`
	LicenseNumber    *string         `json:"licenseNumber,omitempty"`
	Preferences      json.RawMessage `json:"preferences,omitempty"`
	AverageRating    float64         `json:"averageRating"`
	RatingsCount     int64           `json:"ratingsCount"`
	EcoPointsBalance int64           `json:"ecoPointsBalance"`
}

func toUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:               user.ID,
		Email:            user.Email,
		DisplayName:      user.DisplayName,
		Role:             string(user.Role),
		AvatarURL:        user.AvatarURL,
		Bio:              user.Bio,
		CompanyName:      user.CompanyName,
		LicenseNumber:    user.LicenseNumber,
		Preferences:      json.RawMessage(user.Preferences),
		AverageRating:    user.AverageRating,
		RatingsCount:     user.RatingsCount,
		EcoPointsBalance: user.EcoPointsBalance,
	}
}

type UpdateMeRequest struct {
	DisplayName   *string                `json:"displayName"`
	AvatarURL     *string                `json:"avatarUrl"`
	Bio           *string                `json:"bio"`
	CompanyName   *string                `json:"companyName"`
	LicenseNumber *string                `json:"licenseNumber"`
	Preferences   map[string]interface{} `json:"preferences"`
}

func (h *UserHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, toUserResponse(appmw.CurrentUser(c)))
}

// UpdateMe dispatches to the role's update variant; role-gated fields
// sent by other roles are dropped silently.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	var req UpdateMeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	user := appmw.CurrentUser(c)
	common := service.CommonProfileUpdate{
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
		Bio:         req.Bio,
	}

	var (
		updated *model.User
		err     error
	)
	ctx := c.Request().Context()
	switch user.Role {
	case model.RoleOperator:
		updated, err = h.svc.UpdateOperator(ctx, user.ID, service.OperatorProfileUpdate{
			CommonProfileUpdate: common,
			CompanyName:         req.CompanyName,
			LicenseNumber:       req.LicenseNumber,
		})
	case model.RoleTraveler:
		updated, err = h.svc.UpdateTraveler(ctx, user.ID, service.TravelerProfileUpdate{
			CommonProfileUpdate: common,
			Preferences:         req.Preferences,
		})
	default:
		updated, err = h.svc.UpdateCommon(ctx, user.ID, common)
	}
	if err != nil {
		return writeServiceError(c, err, http.StatusBadRequest)
	}
	return c.JSON(http.StatusOK, toUserResponse(updated))
}

func (h *UserHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid id"))
	}
	user, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) List(c echo.Context) error {
	users, err := h.svc.List(c.Request().Context(), model.Role(c.QueryParam("role")))
	if err != nil {
		return writeServiceError(c, err, http.StatusBadRequest)
	}
	resp := make([]UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResponse(&users[i]))
	}
	return c.JSON(http.StatusOK, resp)
}
