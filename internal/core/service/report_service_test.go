package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/osmss/inventory-system/internal/core/domain"
	"github.com/osmss/inventory-system/internal/core/ports"
)

// stubHistoryRepo filters an in-memory ledger the way the SQL layer would.
type stubHistoryRepo struct {
	entries []domain.HistoryEntry
	err     error
}

func (r *stubHistoryRepo) List(_ context.Context) ([]domain.HistoryEntry, error) {
	return r.entries, r.err
}

func (r *stubHistoryRepo) Query(_ context.Context, filter ports.HistoryFilter) ([]domain.HistoryEntry, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.HistoryEntry
	for _, e := range r.entries {
		if filter.Action != "" && e.Action != filter.Action {
			continue
		}
		if filter.BalanceMax != nil && e.Balance > *filter.BalanceMax {
			continue
		}
		if !filter.From.IsZero() && e.UpdatedAt.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && e.UpdatedAt.After(filter.To) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func ledgerEntry(name string, delta, balance int64, action string, day string) domain.HistoryEntry {
	ts, _ := time.Parse("2006-01-02", day)
	ts = ts.Add(9 * time.Hour) // arbitrary intra-day time
	return domain.HistoryEntry{
		Name:      name,
		Pieces:    delta,
		Balance:   balance,
		Action:    action,
		UpdatedAt: ts,
	}
}

func reportRange(start, end string) (time.Time, time.Time) {
	from, _ := time.Parse("2006-01-02", start)
	to, _ := time.Parse("2006-01-02", end)
	return from, to.Add(24*time.Hour - time.Nanosecond)
}

func TestStockMovement_SymmetryAndDefaults(t *testing.T) {
	repo := &stubHistoryRepo{entries: []domain.HistoryEntry{
		ledgerEntry("Pens", 10, 110, domain.ActionStockIn, "2024-01-01"),
		ledgerEntry("Pens", 3, 107, domain.ActionStockOut, "2024-01-01"),
		ledgerEntry("Staples", 5, 55, domain.ActionStockIn, "2024-01-02"),
	}}
	svc := NewReportService(repo, zerolog.Nop())

	from, to := reportRange("2024-01-01", "2024-01-31")
	report, err := svc.StockMovement(context.Background(), ports.MovementInput{From: from, To: to})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	day1 := report["2024-01-01"]
	if day1.StockIn != 10 || day1.StockOut != 3 {
		t.Errorf("2024-01-01: expected {10, 3}, got {%d, %d}", day1.StockIn, day1.StockOut)
	}

	// A date with only Stock In reports 0 for the other direction.
	day2 := report["2024-01-02"]
	if day2.StockIn != 5 || day2.StockOut != 0 {
		t.Errorf("2024-01-02: expected {5, 0}, got {%d, %d}", day2.StockIn, day2.StockOut)
	}
}

func TestStockMovement_SumsPerDate(t *testing.T) {
	repo := &stubHistoryRepo{entries: []domain.HistoryEntry{
		ledgerEntry("Pens", 10, 110, domain.ActionStockIn, "2024-01-01"),
		ledgerEntry("Staples", 7, 57, domain.ActionStockIn, "2024-01-01"),
		ledgerEntry("Pens", 4, 106, domain.ActionStockOut, "2024-01-01"),
	}}
	svc := NewReportService(repo, zerolog.Nop())

	from, to := reportRange("2024-01-01", "2024-01-01")
	report, err := svc.StockMovement(context.Background(), ports.MovementInput{From: from, To: to})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	day := report["2024-01-01"]
	if day.StockIn != 17 || day.StockOut != 4 {
		t.Errorf("expected {17, 4}, got {%d, %d}", day.StockIn, day.StockOut)
	}
}

func TestLowStock_GroupsAndFilters(t *testing.T) {
	repo := &stubHistoryRepo{entries: []domain.HistoryEntry{
		ledgerEntry("Pens", 5, 20, domain.ActionStockOut, "2024-01-01"),
		ledgerEntry("Staples", 2, 12, domain.ActionStockOut, "2024-01-01"),
		ledgerEntry("Paper", 1, 200, domain.ActionStockIn, "2024-01-01"), // above threshold
		ledgerEntry("Pens", 4, 16, domain.ActionStockOut, "2024-01-02"),
		ledgerEntry("Pens", 8, 8, domain.ActionStockOut, "2024-02-15"), // outside range
	}}
	svc := NewReportService(repo, zerolog.Nop())

	from, to := reportRange("2024-01-01", "2024-01-31")
	report, err := svc.LowStock(context.Background(), ports.LowStockInput{From: from, To: to, Threshold: 24})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(report) != 2 {
		t.Fatalf("expected 2 dates, got %d: %v", len(report), report)
	}

	day1 := report["2024-01-01"]
	if len(day1) != 2 {
		t.Fatalf("2024-01-01: expected 2 rows, got %d", len(day1))
	}
	if day1[0].Name != "Pens" || day1[0].Pieces != 20 {
		t.Errorf("expected first row (Pens, 20) in ledger order, got (%s, %d)", day1[0].Name, day1[0].Pieces)
	}
	if day1[1].Name != "Staples" || day1[1].Pieces != 12 {
		t.Errorf("expected second row (Staples, 12), got (%s, %d)", day1[1].Name, day1[1].Pieces)
	}

	if len(report["2024-01-02"]) != 1 {
		t.Errorf("2024-01-02: expected 1 row, got %d", len(report["2024-01-02"]))
	}
}
