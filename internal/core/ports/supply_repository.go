package ports

import (
	"context"

	"github.com/osmss/inventory-system/internal/core/domain"
)

// SupplyRepository defines persistence operations for supply items.
type SupplyRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	// FindByID retrieves an item by id, returning domain.ErrItemNotFound
	// when no row exists.
	FindByID(ctx context.Context, id int64) (*domain.Item, error)
	// List returns all items. Order is not part of the contract; it is
	// used for display only.
	List(ctx context.Context) ([]domain.Item, error)
	DistinctNames(ctx context.Context) ([]string, error)
	// UpdateWithHistory persists the item and appends the ledger entry in
	// a single transaction. The item row is matched on (id, version) and
	// its version bumped; domain.ErrConflict is returned when another
	// writer got there first, with nothing written.
	UpdateWithHistory(ctx context.Context, item *domain.Item, entry *domain.HistoryEntry) error
}
