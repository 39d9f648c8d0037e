package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/osmss/inventory-system/internal/api/metrics"
	"github.com/osmss/inventory-system/internal/core/ports"
)

const dateLayout = "2006-01-02"

// ReportHandler serves the ledger-derived report endpoints.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

type lowStockQuery struct {
	StartDate string `query:"start_date" validate:"required"`
	EndDate   string `query:"end_date"   validate:"required"`
	Threshold *int64 `query:"threshold"  validate:"required"`
}

type movementQuery struct {
	StartDate string `query:"startDate" validate:"required"`
	EndDate   string `query:"endDate"   validate:"required"`
	// Item is required by the contract but does not narrow the aggregation.
	Item string `query:"item" validate:"required"`
}

// LowStock handles GET /lowstock-report.
//
// @Summary      Low-stock report grouped by date
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        start_date  query     string  true  "Range start (YYYY-MM-DD)"
// @Param        end_date    query     string  true  "Range end (YYYY-MM-DD, inclusive)"
// @Param        threshold   query     int     true  "Balance threshold"
// @Success      200         {object}  lowStockResponse
// @Failure      400         {object}  map[string]string
// @Failure      500         {object}  map[string]string
// @Router       /lowstock-report [get]
func (h *ReportHandler) LowStock(c echo.Context) error {
	var q lowStockQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	from, to, err := parseDateRange(q.StartDate, q.EndDate)
	if err != nil {
		return err
	}

	report, err := h.service.LowStock(c.Request().Context(), ports.LowStockInput{
		From:      from,
		To:        to,
		Threshold: *q.Threshold,
	})
	if err != nil {
		return err
	}

	metrics.ReportRequestsTotal.WithLabelValues("low_stock").Inc()

	return c.JSON(http.StatusOK, lowStockResponse{
		Message:  "Low stock report",
		Supplies: report,
	})
}

// Movement handles GET /stock-movemnt-report. The path spelling is part of
// the published contract.
//
// @Summary      Stock movement report grouped by date
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        startDate  query     string  true  "Range start (YYYY-MM-DD)"
// @Param        endDate    query     string  true  "Range end (YYYY-MM-DD, inclusive)"
// @Param        item       query     string  true  "Item name (accepted, currently unused)"
// @Success      200        {object}  movementResponse
// @Failure      400        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /stock-movemnt-report [get]
func (h *ReportHandler) Movement(c echo.Context) error {
	var q movementQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	from, to, err := parseDateRange(q.StartDate, q.EndDate)
	if err != nil {
		return err
	}

	report, err := h.service.StockMovement(c.Request().Context(), ports.MovementInput{
		From: from,
		To:   to,
		Item: q.Item,
	})
	if err != nil {
		return err
	}

	metrics.ReportRequestsTotal.WithLabelValues("stock_movement").Inc()

	return c.JSON(http.StatusOK, movementResponse{
		Message: "Stock movement report",
		Records: report,
	})
}

// parseDateRange validates a YYYY-MM-DD range. The end bound covers the
// whole end day.
func parseDateRange(start, end string) (time.Time, time.Time, error) {
	from, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "The start date must be a valid date (YYYY-MM-DD)")
	}
	to, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "The end date must be a valid date (YYYY-MM-DD)")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "The end date must be on or after the start date")
	}

	return from, to.Add(24*time.Hour - time.Nanosecond), nil
}
