package ports

import (
	"context"
	"encoding/json"
	"time"
)

// LowStockInput selects ledger entries for the low-stock report.
type LowStockInput struct {
	From      time.Time
	To        time.Time
	Threshold int64
}

// LowStockRow is one (name, pieces) pair. It marshals as a two-element JSON
// array to match the report wire format.
type LowStockRow struct {
	Name   string
	Pieces int64
}

func (r LowStockRow) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{r.Name, r.Pieces})
}

// LowStockReport groups rows by calendar date ("2006-01-02").
type LowStockReport map[string][]LowStockRow

// MovementInput selects ledger entries for the stock-movement report.
// Item is accepted for contract compatibility but does not narrow the
// aggregation.
type MovementInput struct {
	From time.Time
	To   time.Time
	Item string
}

// MovementTotals holds the summed transaction quantities for one date.
type MovementTotals struct {
	StockIn  int64 `json:"Stock In"`
	StockOut int64 `json:"Stock Out"`
}

// MovementReport maps calendar dates to per-direction totals.
type MovementReport map[string]MovementTotals

// ReportService builds read-only views over the stock ledger.
type ReportService interface {
	LowStock(ctx context.Context, input LowStockInput) (LowStockReport, error)
	StockMovement(ctx context.Context, input MovementInput) (MovementReport, error)
}
