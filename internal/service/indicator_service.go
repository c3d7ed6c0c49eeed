package service

import (
	"database/sql"
	"folio/internal/domain"
	"folio/internal/metrics"
	"folio/internal/repository"
	"folio/internal/util"
	"time"

	folio_errors "folio/internal"

	"github.com/rs/zerolog"
)

type IndicatorService interface {
	GetPortfolioIndicators(tx *sql.Tx, scope Scope, date time.Time) (*domain.PortfolioIndicators, error)
}

type indicatorServiceHandler struct {
	logger                     zerolog.Logger
	rates                      domain.FxRates
	portfolioRepository        repository.PortfolioRepository
	stockTransactionRepository repository.StockTransactionRepository
	cashTransactionRepository  repository.CashTransactionRepository
	stockRepository            repository.StockRepository
	snapshotService            PortfolioSnapshotService
	cashBalanceService         CashBalanceService
}

func NewIndicatorService(
	logger zerolog.Logger,
	rates domain.FxRates,
	portfolioRepository repository.PortfolioRepository,
	stockTransactionRepository repository.StockTransactionRepository,
	cashTransactionRepository repository.CashTransactionRepository,
	stockRepository repository.StockRepository,
	snapshotService PortfolioSnapshotService,
	cashBalanceService CashBalanceService,
) IndicatorService {
	return indicatorServiceHandler{
		logger:                     logger.With().Str("service", "indicator").Logger(),
		rates:                      rates,
		portfolioRepository:        portfolioRepository,
		stockTransactionRepository: stockTransactionRepository,
		cashTransactionRepository:  cashTransactionRepository,
		stockRepository:            stockRepository,
		snapshotService:            snapshotService,
		cashBalanceService:         cashBalanceService,
	}
}

func (h indicatorServiceHandler) GetPortfolioIndicators(tx *sql.Tx, scope Scope, date time.Time) (*domain.PortfolioIndicators, error) {
	portfolioIDs, err := resolvePortfolioIDs(tx, h.portfolioRepository, scope)
	if err != nil {
		return nil, err
	}

	firstDeposit, err := h.cashTransactionRepository.FirstDate(tx, portfolioIDs, date)
	if err != nil {
		return nil, err
	}
	if firstDeposit != nil && util.StartOfDay(*firstDeposit).After(util.StartOfDay(date)) {
		firstDeposit = nil
	}
	transactions, err := h.stockTransactionRepository.List(tx, portfolioIDs, date)
	if err != nil {
		return nil, err
	}
	if firstDeposit == nil && len(transactions) == 0 {
		return nil, folio_errors.ErrNoTransactionData
	}

	snapshot, err := h.snapshotService.GetPortfolioSnapshot(tx, scope, date)
	if err != nil {
		return nil, err
	}
	cash, err := h.cashBalanceService.GetPortfolioCashBalanceSnapshot(tx, scope, date)
	if err != nil {
		return nil, err
	}
	invested, err := h.cashBalanceService.GetInvestedCapitalSnapshot(tx, scope, date)
	if err != nil {
		return nil, err
	}
	sectors, err := h.stockRepository.Sectors(tx, snapshot.Tickers())
	if err != nil {
		return nil, err
	}

	input := metrics.IndicatorInput{
		Snapshot:          snapshot,
		Cash:              cash,
		InvestedCapital:   invested,
		StockTransactions: transactions,
		Sectors:           sectors,
		Rates:             h.rates,
	}
	if firstDeposit != nil {
		input.FirstDeposit = *firstDeposit
	}

	out := metrics.Indicators(input, date)
	h.logger.Debug().
		Str("aum", out.AssetsUnderManagement.String()).
		Str("roic", out.Roic.String()).
		Msg("computed indicators")

	return &out, nil
}
