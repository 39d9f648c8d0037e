package handler

import (
	"github.com/osmss/inventory-system/internal/core/domain"
	"github.com/osmss/inventory-system/internal/core/ports"
)

// --- Request types ---

// Numeric fields use pointers so that a present zero survives the required
// check; presence validation, not zero-value validation.

type createItemRequest struct {
	Name   string `json:"name"   validate:"required"`
	Pieces *int64 `json:"pieces" validate:"required,gte=0"`
	Unit   string `json:"unit"   validate:"required"`
	// Status is required for wire compatibility with existing clients, but
	// its value is ignored: status is derived from pieces.
	Status string `json:"status" validate:"required"`
}

type updateItemRequest struct {
	// Pieces is the new absolute total, not a delta.
	Pieces *int64 `json:"pieces" validate:"required,gte=0"`
	// Status and Box are required but ignored; both are re-derived
	// server-side from the new piece count.
	Status string `json:"status" validate:"required"`
	Box    *int64 `json:"box"    validate:"required"`
	Action string `json:"action" validate:"required,oneof='Stock In' 'Stock Out'"`
	Reason string `json:"reason" validate:"required"`
	UserID *int64 `json:"userID" validate:"required"`
}

// --- Response envelopes ---

type itemResponse struct {
	Message string       `json:"message"`
	Item    *domain.Item `json:"item"`
}

type listItemsResponse struct {
	Message  string        `json:"message"`
	Supplies []domain.Item `json:"supplies"`
}

type itemNamesResponse struct {
	Message string   `json:"message"`
	Names   []string `json:"names"`
}

type historiesResponse struct {
	Message         string                `json:"message"`
	SupplyHistories []domain.HistoryEntry `json:"supplyHistories"`
}

type lowStockResponse struct {
	Message  string               `json:"message"`
	Supplies ports.LowStockReport `json:"supplies"`
}

type movementResponse struct {
	Message string               `json:"message"`
	Records ports.MovementReport `json:"records"`
}
