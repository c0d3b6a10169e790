package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	appmw "github.com/kamchatour/market-backend/internal/middleware"
	"github.com/kamchatour/market-backend/internal/service"
)

// CabinetHandler assembles the "my cabinet" dashboard view: profile,
// active boosts and the tail of the eco ledger in one response.
type CabinetHandler struct {
	boosts service.BoostService
	eco    service.EcoPointService
}

func NewCabinetHandler(boosts service.BoostService, eco service.EcoPointService) *CabinetHandler {
	return &CabinetHandler{boosts: boosts, eco: eco}
}

type CabinetSummaryResponse struct {
	User         UserResponse          `json:"user"`
	ActiveBoosts []BoostResponse       `json:"activeBoosts"`
	RecentEco    []LedgerEntryResponse `json:"recentEco"`
}

func (h *CabinetHandler) Summary(c echo.Context) error {
	user := appmw.CurrentUser(c)
	ctx := c.Request().Context()

	boosts, err := h.boosts.ListActive(ctx, user.ID)
	if err != nil {
		return writeServiceError(c, err, http.StatusInternalServerError)
	}
	entries, err := h.eco.Ledger(ctx, user.ID, 10)
	if err != nil {
		return writeServiceError(c, err, http.StatusInternalServerError)
	}

	resp := CabinetSummaryResponse{
		User:         toUserResponse(user),
		ActiveBoosts: make([]BoostResponse, 0, len(boosts)),
		RecentEco:    make([]LedgerEntryResponse, 0, len(entries)),
	}
	for i := range boosts {
		resp.ActiveBoosts = append(resp.ActiveBoosts, toBoostResponse(&boosts[i]))
	}
	for i := range entries {
		resp.RecentEco = append(resp.RecentEco, toLedgerEntryResponse(&entries[i]))
	}
	return c.JSON(http.StatusOK, resp)
}
