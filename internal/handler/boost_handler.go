package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	appmw "github.com/kamchatour/market-backend/internal/middleware"
	"github.com/kamchatour/market-backend/internal/model"
	"github.com/kamchatour/market-backend/internal/service"
)

type BoostHandler struct {
	svc service.BoostService
}

func NewBoostHandler(svc service.BoostService) *BoostHandler {
	return &BoostHandler{svc: svc}
}

type CreateBoostRequest struct {
	BoostType     string                 `json:"boostType"`
	Level         int                    `json:"level"`
	DurationHours *int                   `json:"durationHours"`
	Metadata      map[string]interface{} `json:"metadata"`
}

type BoostResponse struct {
	ID        uint64          `json:"id"`
	BoostType string          `json:"boostType"`
	Level     int             `json:"level"`
	StartAt   string          `json:"startAt"`
	EndAt     *string         `json:"endAt"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
}

func toBoostResponse(boost *model.Boost) BoostResponse {
	resp := BoostResponse{
		ID:        boost.ID,
		BoostType: boost.BoostType,
		Level:     boost.Level,
		StartAt:   boost.StartAt.Format(time.RFC3339),
		Metadata:  json.RawMessage(boost.Metadata),
	}
	if boost.EndAt != nil {
		endAt := boost.EndAt.Format(time.RFC3339)
		resp.EndAt = &endAt
	}
	return resp
}

func (h *BoostHandler) Create(c echo.Context) error {
	var req CreateBoostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	user := appmw.CurrentUser(c)
	boost, err := h.svc.Create(c.Request().Context(), user, req.BoostType, req.Level, req.DurationHours, req.Metadata)
	if err != nil {
		return writeServiceError(c, err, http.StatusBadRequest)
	}
	return c.JSON(http.StatusCreated, toBoostResponse(boost))
}

func (h *BoostHandler) ListMine(c echo.Context) error {
	user := appmw.CurrentUser(c)
	boosts, err := h.svc.ListActive(c.Request().Context(), user.ID)
	if err != nil {
		return writeServiceError(c, err, http.StatusInternalServerError)
	}
	resp := make([]BoostResponse, 0, len(boosts))
	for i := range boosts {
		resp = append(resp, toBoostResponse(&boosts[i]))
	}
	return c.JSON(http.StatusOK, resp)
}
