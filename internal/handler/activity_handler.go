package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	appmw "github.com/kamchatour/market-backend/internal/middleware"
	"github.com/kamchatour/market-backend/internal/model"
	"github.com/kamchatour/market-backend/internal/service"
)

type ActivityHandler struct {
	svc service.GuideActivityService
}

func NewActivityHandler(svc service.GuideActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

type CreateActivityRequest struct {
	Title         string   `json:"title"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	DurationHours *int     `json:"durationHours"`
	Tags          []string `json:"tags"`
}

type ActivityResponse struct {
	ID            uint64          `json:"id"`
	GuideID       uint64          `json:"guideId"`
	Title         string          `json:"title"`
	Description   *string         `json:"description,omitempty"`
	Price         *float64        `json:"price,omitempty"`
	DurationHours *int            `json:"durationHours,omitempty"`
	Tags          json.RawMessage `json:"tags,omitempty"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     string          `json:"createdAt"`
}

func toActivityResponse(activity *model.GuideActivity) ActivityResponse {
	return ActivityResponse{
		ID:            activity.ID,
		GuideID:       activity.GuideID,
		Title:         activity.Title,
		Description:   activity.Description,
		Price:         activity.Price,
		DurationHours: activity.DurationHours,
		Tags:          json.RawMessage(activity.Tags),
		IsActive:      activity.IsActive,
		CreatedAt:     activity.CreatedAt.Format(time.RFC3339),
	}
}

func (h *ActivityHandler) Create(c echo.Context) error {
	var req CreateActivityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	guide := appmw.CurrentUser(c)
	activity, err := h.svc.Create(c.Request().Context(), guide.ID, service.GuideActivityInput{
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		DurationHours: req.DurationHours,
		Tags:          req.Tags,
	})
	if err != nil {
		return writeServiceError(c, err, http.StatusBadRequest)
	}
	return c.JSON(http.StatusCreated, toActivityResponse(activity))
}

func (h *ActivityHandler) ListMine(c echo.Context) error {
	guide := appmw.CurrentUser(c)
	activities, err := h.svc.ListOwned(c.Request().Context(), guide.ID)
	if err != nil {
		return writeServiceError(c, err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, toActivityResponses(activities))
}

func (h *ActivityHandler) Publish(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid id"))
	}
	guide := appmw.CurrentUser(c)
	activity, err := h.svc.Publish(c.Request().Context(), guide.ID, id)
	if err != nil {
		return writeServiceError(c, err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, toActivityResponse(activity))
}

func (h *ActivityHandler) ListPublic(c echo.Context) error {
	limit, err := limitParam(c)
	if err != nil {
		return writeServiceError(c, err, http.StatusBadRequest)
	}
	activities, err := h.svc.SearchPublished(c.Request().Context(), c.QueryParam("q"), limit)
	if err != nil {
		return writeServiceError(c, err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, toActivityResponses(activities))
}

func toActivityResponses(activities []model.GuideActivity) []ActivityResponse {
	resp := make([]ActivityResponse, 0, len(activities))
	for i := range activities {
		resp = append(resp, toActivityResponse(&activities[i]))
	}
	return resp
}
