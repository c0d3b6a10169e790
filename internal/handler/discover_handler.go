package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	appmw "github.com/kamchatour/market-backend/internal/middleware"
	"github.com/kamchatour/market-backend/internal/model"
	"github.com/kamchatour/market-backend/internal/service"
)

type DiscoverHandler struct {
	svc service.DiscoveryService
}

func NewDiscoverHandler(svc service.DiscoveryService) *DiscoverHandler {
	return &DiscoverHandler{svc: svc}
}

type DiscoverItemResponse struct {
	User       UserResponse `json:"user"`
	BoostScore int64        `json:"boostScore"`
}

func (h *DiscoverHandler) Discover(c echo.Context) error {
	viewer := appmw.CurrentUser(c)
	limit, err := limitParam(c)
	if err != nil {
		return writeServiceError(c, err, http.StatusBadRequest)
	}
	ranked, err := h.svc.Discover(c.Request().Context(), viewer, model.Role(c.QueryParam("role")), limit)
	if err != nil {
		return writeServiceError(c, err, http.StatusBadRequest)
	}
	resp := make([]DiscoverItemResponse, 0, len(ranked))
	for i := range ranked {
		resp = append(resp, DiscoverItemResponse{
			User:       toUserResponse(&ranked[i].User),
			BoostScore: ranked[i].BoostScore,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
