package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/osmss/inventory-system/internal/core/domain"
	"github.com/osmss/inventory-system/internal/core/ports"
)

// unknownReleaser is recorded when the acting user cannot be resolved.
// Attribution failure does not block the mutation.
const unknownReleaser = "unknown"

// conflictRetries bounds the optimistic-concurrency retry loop. Each retry
// re-reads the item so the delta and box count stay consistent.
const conflictRetries = 3

// ReleaserCache caches resolved user display names for ledger attribution.
type ReleaserCache interface {
	GetName(ctx context.Context, userID int64) (string, bool, error)
	SetName(ctx context.Context, userID int64, name string) error
}

// NameCache caches the distinct item-name list served to UI pickers.
type NameCache interface {
	Get(ctx context.Context) ([]string, bool, error)
	Set(ctx context.Context, names []string) error
	Invalidate(ctx context.Context) error
}

type supplyService struct {
	repo      ports.SupplyRepository
	users     ports.UserRepository
	releasers ReleaserCache
	names     NameCache
	log       zerolog.Logger
}

// NewSupplyService returns a SupplyService implementation.
func NewSupplyService(
	repo ports.SupplyRepository,
	users ports.UserRepository,
	releasers ReleaserCache,
	names NameCache,
	log zerolog.Logger,
) ports.SupplyService {
	return &supplyService{
		repo:      repo,
		users:     users,
		releasers: releasers,
		names:     names,
		log:       log,
	}
}

// CreateItem registers a new supply item. Status and box count are derived
// from the piece count, never taken from the caller.
func (s *supplyService) CreateItem(ctx context.Context, in ports.CreateItemInput) (*domain.Item, error) {
	now := time.Now().UTC()
	item := &domain.Item{
		Name:      in.Name,
		Pieces:    in.Pieces,
		Unit:      in.Unit,
		Status:    domain.Classify(in.Pieces),
		Box:       domain.BoxCount(in.Pieces),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		s.log.Error().Err(err).Str("name", in.Name).Msg("failed to create item")
		return nil, err
	}

	// The distinct-name list changed; drop the cached copy.
	if err := s.names.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to invalidate name cache")
	}

	s.log.Info().Int64("item_id", item.ID).Str("name", item.Name).Msg("item created")
	return item, nil
}

// UpdateStock applies a stock change to an item and appends exactly one
// ledger entry attributing it. The item save and the ledger append happen in
// a single transaction; a version conflict with a concurrent writer triggers
// a bounded re-read-and-retry before surfacing domain.ErrConflict.
func (s *supplyService) UpdateStock(ctx context.Context, in ports.UpdateStockInput) (*domain.Item, error) {
	releaser := s.resolveReleaser(ctx, in.UserID)

	for attempt := 1; ; attempt++ {
		item, err := s.repo.FindByID(ctx, in.ItemID)
		if err != nil {
			return nil, err
		}

		delta := in.Pieces - item.Pieces
		if delta < 0 {
			delta = -delta
		}

		now := time.Now().UTC()
		item.Pieces = in.Pieces
		item.Status = domain.Classify(in.Pieces)
		item.Box = domain.BoxCount(in.Pieces)
		item.UpdatedAt = now

		entry := &domain.HistoryEntry{
			Name:      item.Name,
			Pieces:    delta,
			Balance:   in.Pieces,
			Releaser:  releaser,
			Reason:    in.Reason,
			Action:    in.Action,
			CreatedAt: now,
			UpdatedAt: now,
		}

		err = s.repo.UpdateWithHistory(ctx, item, entry)
		if errors.Is(err, domain.ErrConflict) && attempt < conflictRetries {
			s.log.Debug().Int64("item_id", in.ItemID).Int("attempt", attempt).Msg("version conflict, retrying")
			continue
		}
		if err != nil {
			s.log.Error().Err(err).Int64("item_id", in.ItemID).Msg("failed to update stock")
			return nil, err
		}

		s.log.Info().
			Int64("item_id", item.ID).
			Str("action", in.Action).
			Int64("pieces", delta).
			Int64("balance", in.Pieces).
			Str("releaser", releaser).
			Msg("stock updated")

		return item, nil
	}
}

func (s *supplyService) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.repo.List(ctx)
}

// ItemNames returns the distinct item names, served from the cache when warm.
func (s *supplyService) ItemNames(ctx context.Context) ([]string, error) {
	if names, ok, err := s.names.Get(ctx); err != nil {
		s.log.Warn().Err(err).Msg("name cache read failed, falling back to store")
	} else if ok {
		return names, nil
	}

	names, err := s.repo.DistinctNames(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.names.Set(ctx, names); err != nil {
		s.log.Warn().Err(err).Msg("failed to warm name cache")
	}
	return names, nil
}

// resolveReleaser looks up the acting user's display name, consulting the
// cache first. An unresolvable user downgrades attribution instead of
// blocking the mutation.
func (s *supplyService) resolveReleaser(ctx context.Context, userID int64) string {
	if name, ok, err := s.releasers.GetName(ctx, userID); err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Msg("releaser cache read failed")
	} else if ok {
		return name
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Msg("acting user not resolved, recording unknown releaser")
		return unknownReleaser
	}

	name := user.DisplayName()
	if err := s.releasers.SetName(ctx, userID, name); err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Msg("failed to cache releaser name")
	}
	return name
}
