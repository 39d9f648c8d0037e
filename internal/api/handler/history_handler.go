package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/osmss/inventory-system/internal/core/ports"
)

// HistoryHandler serves the stock ledger read endpoints.
type HistoryHandler struct {
	history ports.HistoryRepository
}

func NewHistoryHandler(history ports.HistoryRepository) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// List handles GET /supply-histories.
//
// @Summary      List all stock ledger entries
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  historiesResponse
// @Failure      500  {object}  map[string]string
// @Router       /supply-histories [get]
func (h *HistoryHandler) List(c echo.Context) error {
	entries, err := h.history.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, historiesResponse{
		Message:         "Supply histories retrieved successfully",
		SupplyHistories: entries,
	})
}
