package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/osmss/inventory-system/internal/core/domain"
)

// SupplyRepository persists supply items in the supplies table.
type SupplyRepository struct {
	db *bun.DB
}

func NewSupplyRepository(db *bun.DB) *SupplyRepository {
	return &SupplyRepository{db: db}
}

// Create inserts a new item row. The generated id is written back to item.
func (r *SupplyRepository) Create(ctx context.Context, item *domain.Item) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.db.NewInsert().Model(item).Exec(ctx); err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// FindByID retrieves an item by id.
func (r *SupplyRepository) FindByID(ctx context.Context, id int64) (*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	item := new(domain.Item)
	err := r.db.NewSelect().Model(item).Where("s.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return item, nil
}

// List returns all items.
func (r *SupplyRepository) List(ctx context.Context) ([]domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var items []domain.Item
	if err := r.db.NewSelect().Model(&items).Order("s.id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// DistinctNames returns the distinct item names in name order.
func (r *SupplyRepository) DistinctNames(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var names []string
	err := r.db.NewSelect().
		Model((*domain.Item)(nil)).
		ColumnExpr("DISTINCT s.name").
		Order("s.name ASC").
		Scan(ctx, &names)
	if err != nil {
		return nil, fmt.Errorf("distinct names: %w", err)
	}
	return names, nil
}

// UpdateWithHistory saves the item and appends the ledger entry in one
// transaction. The UPDATE is matched on (id, version); zero rows affected
// means a concurrent writer bumped the version first, and the transaction
// rolls back with domain.ErrConflict leaving both tables untouched.
func (r *SupplyRepository) UpdateWithHistory(ctx context.Context, item *domain.Item, entry *domain.HistoryEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model(item).
			Column("pieces", "status", "box", "updated_at").
			Set("version = version + 1").
			Where("s.id = ?", item.ID).
			Where("s.version = ?", item.Version).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("update item: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("update item: %w", err)
		}
		if affected == 0 {
			return domain.ErrConflict
		}
		item.Version++

		if _, err := tx.NewInsert().Model(entry).Exec(ctx); err != nil {
			return fmt.Errorf("append history: %w", err)
		}
		return nil
	})
}
