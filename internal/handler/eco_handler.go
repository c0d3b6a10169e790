package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	appmw "github.com/kamchatour/market-backend/internal/middleware"
	"github.com/kamchatour/market-backend/internal/model"
	"github.com/kamchatour/market-backend/internal/service"
)

type EcoHandler struct {
	svc service.EcoPointService
}

func NewEcoHandler(svc service.EcoPointService) *EcoHandler {
	return &EcoHandler{svc: svc}
}

type EcoDeltaRequest struct {
	Amount   int64                  `json:"amount"`
	Reason   string                 `json:"reason"`
	Metadata map[string]interface{} `json:"metadata"`
}

type EcoBalanceResponse struct {
	Balance int64 `json:"balance"`
}

type LedgerEntryResponse struct {
	ID           uint64          `json:"id"`
	Delta        int64           `json:"delta"`
	Reason       string          `json:"reason"`
	Metadata     json.RawMessage `json:"metadata,omitempty"`
	BalanceAfter int64           `json:"balanceAfter"`
	CreatedAt    string          `json:"createdAt"`
}

func toLedgerEntryResponse(entry *model.EcoPointEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:           entry.ID,
		Delta:        entry.Delta,
		Reason:       entry.Reason,
		Metadata:     json.RawMessage(entry.Metadata),
		BalanceAfter: entry.BalanceAfter,
		CreatedAt:    entry.CreatedAt.Format(time.RFC3339),
	}
}

func (h *EcoHandler) Earn(c echo.Context) error {
	return h.applyDelta(c, h.svc.Earn)
}

func (h *EcoHandler) Spend(c echo.Context) error {
	return h.applyDelta(c, h.svc.Spend)
}

type ecoApplyFunc func(ctx context.Context, user *model.User, amount int64, reason string, metadata map[string]interface{}) (int64, error)

func (h *EcoHandler) applyDelta(c echo.Context, apply ecoApplyFunc) error {
	var req EcoDeltaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	user := appmw.CurrentUser(c)
	balance, err := apply(c.Request().Context(), user, req.Amount, req.Reason, req.Metadata)
	if err != nil {
		return writeServiceError(c, err, http.StatusBadRequest)
	}
	return c.JSON(http.StatusOK, EcoBalanceResponse{Balance: balance})
}

func (h *EcoHandler) Ledger(c echo.Context) error {
	user := appmw.CurrentUser(c)
	limit, err := limitParam(c)
	if err != nil {
		return writeServiceError(c, err, http.StatusBadRequest)
	}
	entries, err := h.svc.Ledger(c.Request().Context(), user.ID, limit)
	if err != nil {
		return writeServiceError(c, err, http.StatusInternalServerError)
	}
	resp := make([]LedgerEntryResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, toLedgerEntryResponse(&entries[i]))
	}
	return c.JSON(http.StatusOK, resp)
}
