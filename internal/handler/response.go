package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kamchatour/market-backend/internal/service"
)

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error errorPayload `json:"error"`
}

func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: errorPayload{
			Code:    code,
			Message: message,
		},
	}
}

// limitParam reads the limit query param. Absent means 0, which the
// services resolve to their default page size; an explicit value below 1
// is raised to 1 so ?limit=0 returns one row rather than the default.
func limitParam(c echo.Context) (int, error) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("limit must be an integer")
	}
	if n < 1 {
		n = 1
	}
	return n, nil
}

// writeServiceError maps service errors onto the HTTP taxonomy:
// sentinel errors carry their own status; anything else from a
// validating call is a 400 and anything else from a read is a 500,
// which the caller picks via fallback.
func writeServiceError(c echo.Context, err error, fallback int) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", err.Error()))
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrInsufficientBalance),
		errors.Is(err, service.ErrSelfRating),
		errors.Is(err, service.ErrSameRoleRating):
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
	}
	if fallback == http.StatusBadRequest {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
	}
	return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "internal error"))
}
