package ports

import (
	"context"
	"time"

	"github.com/osmss/inventory-system/internal/core/domain"
)

// HistoryFilter narrows a ledger query. Zero values mean "no filter" except
// BalanceMax, where 0 is meaningful and nil disables the predicate.
type HistoryFilter struct {
	Action     string     // exact match on the transaction direction
	BalanceMax *int64     // balance <= *BalanceMax
	From       time.Time  // updated_at >= From
	To         time.Time  // updated_at <= To
}

// HistoryRepository is the read/append interface over the stock ledger.
// The ledger is write-once, read-many: no update or delete is exposed.
type HistoryRepository interface {
	// List returns every ledger entry in insertion order.
	List(ctx context.Context) ([]domain.HistoryEntry, error)
	// Query returns entries matching filter, in insertion order.
	Query(ctx context.Context, filter HistoryFilter) ([]domain.HistoryEntry, error)
}
