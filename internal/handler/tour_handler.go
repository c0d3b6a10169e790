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

type TourHandler struct {
	svc service.TourService
}

func NewTourHandler(svc service.TourService) *TourHandler {
	return &TourHandler{svc: svc}
}

type CreateTourRequest struct {
	Title         string                 `json:"title"`
	Description   *string                `json:"description"`
	Price         float64                `json:"price"`
	Currency      string                 `json:"currency"`
	DurationHours *int                   `json:"durationHours"`
	Difficulty    *string                `json:"difficulty"`
	Location      map[string]interface{} `json:"location"`
	Images        []string               `json:"images"`
}

type TourResponse struct {
	ID            uint64          `json:"id"`
	OperatorID    uint64          `json:"operatorId"`
	Title         string          `json:"title"`
	Description   *string         `json:"description,omitempty"`
	Price         float64         `json:"price"`
	Currency      string          `json:"currency"`
	DurationHours *int            `json:"durationHours,omitempty"`
	Difficulty    *string         `json:"difficulty,omitempty"`
	Location      json.RawMessage `json:"location,omitempty"`
	Images        json.RawMessage `json:"images,omitempty"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     string          `json:"createdAt"`
}

func toTourResponse(tour *model.Tour) TourResponse {
	return TourResponse{
		ID:            tour.ID,
		OperatorID:    tour.OperatorID,
		Title:         tour.Title,
		Description:   tour.Description,
		Price:         tour.Price,
		Currency:      tour.Currency,
		DurationHours: tour.DurationHours,
		Difficulty:    tour.Difficulty,
		Location:      json.RawMessage(tour.Location),
		Images:        json.RawMessage(tour.Images),
		IsActive:      tour.IsActive,
		CreatedAt:     tour.CreatedAt.Format(time.RFC3339),
	}
}

func (h *TourHandler) Create(c echo.Context) error {
	var req CreateTourRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	operator := appmw.CurrentUser(c)
	tour, err := h.svc.Create(c.Request().Context(), operator.ID, service.TourInput{
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		Currency:      req.Currency,
		DurationHours: req.DurationHours,
		Difficulty:    req.Difficulty,
		Location:      req.Location,
		Images:        req.Images,
	})
	if err != nil {
		return writeServiceError(c, err, http.StatusBadRequest)
	}
	return c.JSON(http.StatusCreated, toTourResponse(tour))
}

func (h *TourHandler) ListMine(c echo.Context) error {
	operator := appmw.CurrentUser(c)
	tours, err := h.svc.ListOwned(c.Request().Context(), operator.ID)
	if err != nil {
		return writeServiceError(c, err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, toTourResponses(tours))
}

func (h *TourHandler) Publish(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid id"))
	}
	operator := appmw.CurrentUser(c)
	tour, err := h.svc.Publish(c.Request().Context(), operator.ID, id)
	if err != nil {
		return writeServiceError(c, err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, toTourResponse(tour))
}

func (h *TourHandler) ListPublic(c echo.Context) error {
	limit, err := limitParam(c)
	if err != nil {
		return writeServiceError(c, err, http.StatusBadRequest)
	}
	tours, err := h.svc.SearchPublished(c.Request().Context(), c.QueryParam("q"), limit)
	if err != nil {
		return writeServiceError(c, err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, toTourResponses(tours))
}

func toTourResponses(tours []model.Tour) []TourResponse {
	resp := make([]TourResponse, 0, len(tours))
	for i := range tours {
		resp = append(resp, toTourResponse(&tours[i]))
	}
	return resp
}
