package service

import (
	"database/sql"
	"fmt"
	"folio/internal/domain"
	"folio/internal/portfolio"
	"folio/internal/repository"
	"folio/internal/util"
	"time"

	"github.com/rs/zerolog"
)

type PortfolioSnapshotService interface {
	GetPortfolioSnapshot(tx *sql.Tx, scope Scope, date time.Time) (domain.PortfolioSnapshot, error)
	GetPortfolioSnapshotSeries(tx *sql.Tx, scope Scope, dates []time.Time) (map[string]domain.PortfolioSnapshot, error)
}

type portfolioSnapshotServiceHandler struct {
	logger                     zerolog.Logger
	portfolioRepository        repository.PortfolioRepository
	stockTransactionRepository repository.StockTransactionRepository
	stockSplitRepository       repository.StockSplitRepository
	stockPriceRepository       repository.StockPriceRepository
	stockDividendRepository    repository.StockDividendRepository
}

func NewPortfolioSnapshotService(
	logger zerolog.Logger,
	portfolioRepository repository.PortfolioRepository,
	stockTransactionRepository repository.StockTransactionRepository,
	stockSplitRepository repository.StockSplitRepository,
	stockPriceRepository repository.StockPriceRepository,
	stockDividendRepository repository.StockDividendRepository,
) PortfolioSnapshotService {
	return portfolioSnapshotServiceHandler{
		logger:                     logger.With().Str("service", "portfolio_snapshot").Logger(),
		portfolioRepository:        portfolioRepository,
		stockTransactionRepository: stockTransactionRepository,
		stockSplitRepository:       stockSplitRepository,
		stockPriceRepository:       stockPriceRepository,
		stockDividendRepository:    stockDividendRepository,
	}
}

func (h portfolioSnapshotServiceHandler) GetPortfolioSnapshot(tx *sql.Tx, scope Scope, date time.Time) (domain.PortfolioSnapshot, error) {
	series, err := h.GetPortfolioSnapshotSeries(tx, scope, []time.Time{date})
	if err != nil {
		return domain.PortfolioSnapshot{}, err
	}
	return series[util.DateStr(date)], nil
}

// GetPortfolioSnapshotSeries replays all trades and splits up to the
// last date once. Prices and dividends are looked up as of the last
// date and used for every snapshot in the series
func (h portfolioSnapshotServiceHandler) GetPortfolioSnapshotSeries(tx *sql.Tx, scope Scope, dates []time.Time) (map[string]domain.PortfolioSnapshot, error) {
	last, ok := util.MaxDate(dates)
	if !ok {
		return map[string]domain.PortfolioSnapshot{}, nil
	}

	portfolioIDs, err := resolvePortfolioIDs(tx, h.portfolioRepository, scope)
	if err != nil {
		return nil, err
	}

	transactions, err := h.stockTransactionRepository.List(tx, portfolioIDs, last)
	if err != nil {
		return nil, err
	}
	tickers := tickersOf(transactions)

	splits, err := h.stockSplitRepository.List(tx, tickers, last)
	if err != nil {
		return nil, err
	}
	prices, err := h.stockPriceRepository.LatestPrices(tx, tickers, last)
	if err != nil {
		return nil, err
	}
	dividends, err := h.stockDividendRepository.LatestDividends(tx, tickers, last)
	if err != nil {
		return nil, err
	}

	h.logger.Debug().
		Int("transactions", len(transactions)).
		Int("splits", len(splits)).
		Int("dates", len(dates)).
		Msg("replaying portfolio")

	out, err := portfolio.Playback(
		scope.OwnerID,
		transactions,
		splits,
		dates,
		portfolio.MarketData{
			Prices:    prices,
			Dividends: dividends,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to replay portfolio of %s: %w", scope.OwnerID, err)
	}
	return out, nil
}
