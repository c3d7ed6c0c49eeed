package service

import (
	"database/sql"
	"fmt"
	"folio/internal/domain"
	"folio/internal/metrics"
	"folio/internal/portfolio"
	"folio/internal/repository"
	"folio/internal/util"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type PerformanceService interface {
	GetPositionPerformance(tx *sql.Tx, scope Scope, ticker string, dates []time.Time) (map[string]domain.PerformanceSnapshot, error)
	GetPortfolioPerformance(tx *sql.Tx, scope Scope, dates []time.Time) (map[string]domain.PerformanceSnapshot, error)
	GetTimeWeightedReturn(tx *sql.Tx, scope Scope, dates []time.Time) (decimal.Decimal, error)
	GetPerformanceSummary(tx *sql.Tx, scope Scope, dates []time.Time) (*domain.PerformanceSummary, error)
}

type performanceServiceHandler struct {
	logger                     zerolog.Logger
	rates                      domain.FxRates
	portfolioRepository        repository.PortfolioRepository
	stockTransactionRepository repository.StockTransactionRepository
	stockSplitRepository       repository.StockSplitRepository
	stockPriceRepository       repository.StockPriceRepository
	stockDividendRepository    repository.StockDividendRepository
	cashTransactionRepository  repository.CashTransactionRepository
	forexTransactionRepository repository.ForexTransactionRepository
}

func NewPerformanceService(
	logger zerolog.Logger,
	rates domain.FxRates,
	portfolioRepository repository.PortfolioRepository,
	stockTransactionRepository repository.StockTransactionRepository,
	stockSplitRepository repository.StockSplitRepository,
	stockPriceRepository repository.StockPriceRepository,
	stockDividendRepository repository.StockDividendRepository,
	cashTransactionRepository repository.CashTransactionRepository,
	forexTransactionRepository repository.ForexTransactionRepository,
) PerformanceService {
	return performanceServiceHandler{
		logger:                     logger.With().Str("service", "performance").Logger(),
		rates:                      rates,
		portfolioRepository:        portfolioRepository,
		stockTransactionRepository: stockTransactionRepository,
		stockSplitRepository:       stockSplitRepository,
		stockPriceRepository:       stockPriceRepository,
		stockDividendRepository:    stockDividendRepository,
		cashTransactionRepository:  cashTransactionRepository,
		forexTransactionRepository: forexTransactionRepository,
	}
}

func (h performanceServiceHandler) GetPositionPerformance(tx *sql.Tx, scope Scope, ticker string, dates []time.Time) (map[string]domain.PerformanceSnapshot, error) {
	last, ok := util.MaxDate(dates)
	if !ok {
		return map[string]domain.PerformanceSnapshot{}, nil
	}
	portfolioIDs, err := resolvePortfolioIDs(tx, h.portfolioRepository, scope)
	if err != nil {
		return nil, err
	}

	transactions, err := h.stockTransactionRepository.ListByTicker(tx, portfolioIDs, ticker, last)
	if err != nil {
		return nil, err
	}
	splits, err := h.stockSplitRepository.List(tx, []string{ticker}, last)
	if err != nil {
		return nil, err
	}
	prices, err := h.stockPriceRepository.List(tx, []string{ticker}, time.Time{}, last)
	if err != nil {
		return nil, err
	}
	dividends, err := h.stockDividendRepository.List(tx, []string{ticker}, time.Time{}, last)
	if err != nil {
		return nil, err
	}

	holdingDates := append(priceDates(prices), dividendDates(dividends)...)
	holdingDates = append(holdingDates, dates...)
	holdings, err := portfolio.Playback(scope.OwnerID, transactions, splits, holdingDates, portfolio.MarketData{})
	if err != nil {
		return nil, fmt.Errorf("failed to replay %s holdings: %w", ticker, err)
	}

	return metrics.PositionPerformance(ticker, prices, dividends, transactions, holdings, dates)
}

// GetPortfolioPerformance values the portfolio on each date at that
// date's prices plus the cash it holds apart from dividends, which
// are counted separately
func (h performanceServiceHandler) GetPortfolioPerformance(tx *sql.Tx, scope Scope, dates []time.Time) (map[string]domain.PerformanceSnapshot, error) {
	last, ok := util.MaxDate(dates)
	if !ok {
		return map[string]domain.PerformanceSnapshot{}, nil
	}
	portfolioIDs, err := resolvePortfolioIDs(tx, h.portfolioRepository, scope)
	if err != nil {
		return nil, err
	}

	activity, err := listCashActivity(
		tx,
		portfolioIDs,
		last,
		h.cashTransactionRepository,
		h.forexTransactionRepository,
		h.stockTransactionRepository,
	)
	if err != nil {
		return nil, err
	}
	tickers := tickersOf(activity.StockTransactions)

	splits, err := h.stockSplitRepository.List(tx, tickers, last)
	if err != nil {
		return nil, err
	}
	prices, err := h.stockPriceRepository.List(tx, tickers, time.Time{}, last)
	if err != nil {
		return nil, err
	}
	dividends, err := h.stockDividendRepository.List(tx, tickers, time.Time{}, last)
	if err != nil {
		return nil, err
	}

	holdings, err := portfolio.Playback(
		scope.OwnerID,
		activity.StockTransactions,
		splits,
		append(dividendDates(dividends), dates...),
		portfolio.MarketData{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to replay portfolio of %s: %w", scope.OwnerID, err)
	}
	cash, err := portfolio.CashBalanceSeries(activity, dates, domain.CashBalance{}, nil)
	if err != nil {
		return nil, err
	}

	valuations := make([]domain.PortfolioValuation, 0, len(dates))
	for _, date := range dates {
		key := util.DateStr(date)
		snapshot := holdings[key].Revalue(portfolio.LatestPrices(prices, date))
		valuations = append(valuations, domain.PortfolioValuation{
			Date:  util.StartOfDay(date),
			Value: snapshot.AssetsUnderManagement().Add(h.rates.ToUSD(cash[key])),
		})
	}

	h.logger.Debug().
		Int("valuations", len(valuations)).
		Int("dividends", len(dividends)).
		Int("cash_transactions", len(activity.CashTransactions)).
		Msg("computing portfolio performance")

	return metrics.PortfolioPerformance(valuations, dividends, activity.CashTransactions, holdings, h.rates, dates)
}

func (h performanceServiceHandler) GetTimeWeightedReturn(tx *sql.Tx, scope Scope, dates []time.Time) (decimal.Decimal, error) {
	periods, err := h.GetPortfolioPerformance(tx, scope, dates)
	if err != nil {
		return decimal.Zero, err
	}
	return metrics.TimeWeightedReturn(metrics.Ordered(periods)), nil
}

func (h performanceServiceHandler) GetPerformanceSummary(tx *sql.Tx, scope Scope, dates []time.Time) (*domain.PerformanceSummary, error) {
	periods, err := h.GetPortfolioPerformance(tx, scope, dates)
	if err != nil {
		return nil, err
	}
	ordered := metrics.Ordered(periods)
	volatility, err := metrics.ReturnVolatility(ordered)
	if err != nil {
		return nil, fmt.Errorf("failed to compute return volatility: %w", err)
	}

	return &domain.PerformanceSummary{
		Periods:            ordered,
		TimeWeightedReturn: metrics.TimeWeightedReturn(ordered),
		CumulativeReturns:  metrics.CumulativeReturns(periods),
		Volatility:         volatility,
	}, nil
}
