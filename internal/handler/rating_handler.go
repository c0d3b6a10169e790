package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	appmw "github.com/kamchatour/market-backend/internal/middleware"
	"github.com/kamchatour/market-backend/internal/service"
)

type RatingHandler struct {
	ratings service.RatingService
	users   service.UserService
}

func NewRatingHandler(ratings service.RatingService, users service.UserService) *RatingHandler {
	return &RatingHandler{ratings: ratings, users: users}
}

type SubmitRatingRequest struct {
	RateeID uint64  `json:"rateeId"`
	Score   int     `json:"score"`
	Comment *string `json:"comment"`
}

type RatingSummaryResponse struct {
	UserID        uint64  `json:"userId"`
	AverageRating float64 `json:"averageRating"`
	RatingsCount  int64   `json:"ratingsCount"`
}

func (h *RatingHandler) Submit(c echo.Context) error {
	var req SubmitRatingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	rater := appmw.CurrentUser(c)
	if err := h.ratings.Submit(c.Request().Context(), rater, req.RateeID, req.Score, req.Comment); err != nil {
		return writeServiceError(c, err, http.StatusBadRequest)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func (h *RatingHandler) Summary(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid id"))
	}
	avg, count, err := h.users.RatingSummary(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, RatingSummaryResponse{
		UserID:        id,
		AverageRating: avg,
		RatingsCount:  count,
	})
}
