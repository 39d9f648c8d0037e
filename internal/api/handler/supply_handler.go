package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/osmss/inventory-system/internal/api/metrics"
	"github.com/osmss/inventory-system/internal/core/domain"
	"github.com/osmss/inventory-system/internal/core/ports"
)

// SupplyHandler handles HTTP requests for supply items.
type SupplyHandler struct {
	service ports.SupplyService
}

func NewSupplyHandler(service ports.SupplyService) *SupplyHandler {
	return &SupplyHandler{service: service}
}

// Create handles POST /create-item.
//
// @Summary      Register a new supply item
// @Tags         supplies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createItemRequest  true  "Item details"
// @Success      200   {object}  itemResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /create-item [post]
func (h *SupplyHandler) Create(c echo.Context) error {
	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.CreateItem(c.Request().Context(), ports.CreateItemInput{
		Name:   req.Name,
		Pieces: *req.Pieces,
		Unit:   req.Unit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, itemResponse{
		Message: "Item added successfully",
		Item:    item,
	})
}

// UpdateStock handles PUT /update-item/:id — the stock mutation endpoint.
//
// @Summary      Apply a stock change to an item
// @Tags         supplies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Item id"
// @Param        body  body      updateItemRequest  true  "Stock change details"
// @Success      200   {object}  itemResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /update-item/{id} [put]
func (h *SupplyHandler) UpdateStock(c echo.Context) error {
	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return domain.ErrItemNotFound
	}

	item, err := h.service.UpdateStock(c.Request().Context(), ports.UpdateStockInput{
		ItemID: itemID,
		Pieces: *req.Pieces,
		Action: req.Action,
		Reason: req.Reason,
		UserID: *req.UserID,
	})
	if err != nil {
		metrics.StockMutationErrorsTotal.WithLabelValues(mutationErrorReason(err)).Inc()
		return err
	}

	metrics.StockMutationsTotal.WithLabelValues(req.Action, string(item.Status)).Inc()

	return c.JSON(http.StatusOK, itemResponse{
		Message: "Item updated successfully",
		Item:    item,
	})
}

// List handles GET /items.
//
// @Summary      List all supply items
// @Tags         supplies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listItemsResponse
// @Failure      500  {object}  map[string]string
// @Router       /items [get]
func (h *SupplyHandler) List(c echo.Context) error {
	items, err := h.service.ListItems(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listItemsResponse{
		Message:  "Supplies retrieved successfully",
		Supplies: items,
	})
}

// Names handles GET /items-name.
//
// @Summary      List distinct item names
// @Tags         supplies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  itemNamesResponse
// @Failure      500  {object}  map[string]string
// @Router       /items-name [get]
func (h *SupplyHandler) Names(c echo.Context) error {
	names, err := h.service.ItemNames(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, itemNamesResponse{
		Message: "success",
		Names:   names,
	})
}

func mutationErrorReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	default:
		return "storage"
	}
}
