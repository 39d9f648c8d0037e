package ports

import (
	"context"

	"github.com/osmss/inventory-system/internal/core/domain"
)

// CreateItemInput carries the data needed to register a new supply item.
// Status is not accepted: it is derived from Pieces on the way in.
type CreateItemInput struct {
	Name   string
	Pieces int64
	Unit   string
}

// UpdateStockInput is the DTO for the stock mutation workflow.
//
// Pieces is the new absolute total for the item, not a delta; callers do any
// delta arithmetic before invoking. UserID identifies the acting user for
// releaser attribution.
type UpdateStockInput struct {
	ItemID int64
	Pieces int64
	Action string
	Reason string
	UserID int64
}

// SupplyService defines use-case operations for supply items.
type SupplyService interface {
	CreateItem(ctx context.Context, input CreateItemInput) (*domain.Item, error)
	// UpdateStock applies a stock change and appends exactly one ledger
	// entry attributing it. Both writes happen atomically.
	UpdateStock(ctx context.Context, input UpdateStockInput) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	// ItemNames returns the distinct item names, for UI pickers.
	ItemNames(ctx context.Context) ([]string, error)
}
