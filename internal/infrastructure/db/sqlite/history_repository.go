package sqlite

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/osmss/inventory-system/internal/core/domain"
	"github.com/osmss/inventory-system/internal/core/ports"
)

// HistoryRepository reads the append-only stock ledger. Writes go through
// SupplyRepository.UpdateWithHistory only; no update or delete exists.
type HistoryRepository struct {
	db *bun.DB
}

func NewHistoryRepository(db *bun.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// List returns every ledger entry in insertion order.
func (r *HistoryRepository) List(ctx context.Context) ([]domain.HistoryEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var entries []domain.HistoryEntry
	if err := r.db.NewSelect().Model(&entries).Order("h.id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return entries, nil
}

// Query returns entries matching filter, in insertion order.
func (r *HistoryRepository) Query(ctx context.Context, filter ports.HistoryFilter) ([]domain.HistoryEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var entries []domain.HistoryEntry
	q := r.db.NewSelect().Model(&entries)

	if filter.Action != "" {
		q = q.Where("h.action = ?", filter.Action)
	}
	if filter.BalanceMax != nil {
		q = q.Where("h.balance <= ?", *filter.BalanceMax)
	}
	if !filter.From.IsZero() {
		q = q.Where("h.updated_at >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		q = q.Where("h.updated_at <= ?", filter.To)
	}

	if err := q.Order("h.id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	return entries, nil
}
