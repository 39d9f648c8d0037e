package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/osmss/inventory-system/internal/core/domain"
	"github.com/osmss/inventory-system/internal/core/ports"
)

// ledger dates are grouped by UTC calendar day, time component discarded.
const dateLayout = "2006-01-02"

type reportService struct {
	history ports.HistoryRepository
	log     zerolog.Logger
}

// NewReportService returns a ReportService reading from the stock ledger.
func NewReportService(history ports.HistoryRepository, log zerolog.Logger) ports.ReportService {
	return &reportService{history: history, log: log}
}

// LowStock groups ledger entries whose resulting balance was at or below the
// threshold by calendar date, preserving ledger order within each date.
func (s *reportService) LowStock(ctx context.Context, in ports.LowStockInput) (ports.LowStockReport, error) {
	threshold := in.Threshold
	entries, err := s.history.Query(ctx, ports.HistoryFilter{
		BalanceMax: &threshold,
		From:       in.From,
		To:         in.To,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("low-stock ledger query failed")
		return nil, err
	}

	report := make(ports.LowStockReport)
	for _, e := range entries {
		date := e.UpdatedAt.UTC().Format(dateLayout)
		report[date] = append(report[date], ports.LowStockRow{Name: e.Name, Pieces: e.Balance})
	}
	return report, nil
}

// StockMovement sums transaction quantities per calendar date, split by the
// two canonical directions. A date with only one direction present reports 0
// for the other.
func (s *reportService) StockMovement(ctx context.Context, in ports.MovementInput) (ports.MovementReport, error) {
	stockIn, err := s.history.Query(ctx, ports.HistoryFilter{
		Action: domain.ActionStockIn,
		From:   in.From,
		To:     in.To,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("stock-in ledger query failed")
		return nil, err
	}

	stockOut, err := s.history.Query(ctx, ports.HistoryFilter{
		Action: domain.ActionStockOut,
		From:   in.From,
		To:     in.To,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("stock-out ledger query failed")
		return nil, err
	}

	report := make(ports.MovementReport)
	for _, e := range stockIn {
		date := e.UpdatedAt.UTC().Format(dateLayout)
		totals := report[date]
		totals.StockIn += e.Pieces
		report[date] = totals
	}
	for _, e := range stockOut {
		date := e.UpdatedAt.UTC().Format(dateLayout)
		totals := report[date]
		totals.StockOut += e.Pieces
		report[date] = totals
	}
	return report, nil
}
