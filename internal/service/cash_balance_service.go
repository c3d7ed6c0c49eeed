package service

import (
	"database/sql"
	"folio/internal/domain"
	"folio/internal/portfolio"
	"folio/internal/repository"
	"folio/internal/util"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type CashBalanceService interface {
	GetPortfolioCashBalanceSnapshot(tx *sql.Tx, scope Scope, date time.Time) (domain.CashBalance, error)
	GetPortfolioCashBalanceSeries(tx *sql.Tx, scope Scope, dates []time.Time) (map[string]domain.CashBalance, error)
	GetInvestedCapital(tx *sql.Tx, scope Scope, dates []time.Time) (map[string]domain.CashBalance, error)
	GetInvestedCapitalSnapshot(tx *sql.Tx, scope Scope, date time.Time) (domain.CashBalance, error)
	BalanceToUsd(balance domain.CashBalance) decimal.Decimal
}

type cashBalanceServiceHandler struct {
	logger                     zerolog.Logger
	rates                      domain.FxRates
	portfolioRepository        repository.PortfolioRepository
	cashTransactionRepository  repository.CashTransactionRepository
	forexTransactionRepository repository.ForexTransactionRepository
	stockTransactionRepository repository.StockTransactionRepository
	stockDividendRepository    repository.StockDividendRepository
	snapshotService            PortfolioSnapshotService
}

func NewCashBalanceService(
	logger zerolog.Logger,
	rates domain.FxRates,
	portfolioRepository repository.PortfolioRepository,
	cashTransactionRepository repository.CashTransactionRepository,
	forexTransactionRepository repository.ForexTransactionRepository,
	stockTransactionRepository repository.StockTransactionRepository,
	stockDividendRepository repository.StockDividendRepository,
	snapshotService PortfolioSnapshotService,
) CashBalanceService {
	return cashBalanceServiceHandler{
		logger:                     logger.With().Str("service", "cash_balance").Logger(),
		rates:                      rates,
		portfolioRepository:        portfolioRepository,
		cashTransactionRepository:  cashTransactionRepository,
		forexTransactionRepository: forexTransactionRepository,
		stockTransactionRepository: stockTransactionRepository,
		stockDividendRepository:    stockDividendRepository,
		snapshotService:            snapshotService,
	}
}

func (h cashBalanceServiceHandler) BalanceToUsd(balance domain.CashBalance) decimal.Decimal {
	return h.rates.ToUSD(balance)
}

// payoutHoldings replays the portfolio once over every payout date
func (h cashBalanceServiceHandler) payoutHoldings(tx *sql.Tx, scope Scope, payouts []domain.StockDividend) (map[string]domain.PortfolioSnapshot, error) {
	if len(payouts) == 0 {
		return map[string]domain.PortfolioSnapshot{}, nil
	}
	return h.snapshotService.GetPortfolioSnapshotSeries(tx, scope, dividendDates(payouts))
}

// GetPortfolioCashBalanceSnapshot sums deposits, conversions and trades
// in SQL and only replays dividend payouts, which depend on the shares
// held on each payout date
func (h cashBalanceServiceHandler) GetPortfolioCashBalanceSnapshot(tx *sql.Tx, scope Scope, date time.Time) (domain.CashBalance, error) {
	portfolioIDs, err := resolvePortfolioIDs(tx, h.portfolioRepository, scope)
	if err != nil {
		return domain.CashBalance{}, err
	}

	deposits, err := h.cashTransactionRepository.SumByCurrency(tx, portfolioIDs, date)
	if err != nil {
		return domain.CashBalance{}, err
	}
	conversions, err := h.forexTransactionRepository.NetByCurrency(tx, portfolioIDs, date)
	if err != nil {
		return domain.CashBalance{}, err
	}
	traded, err := h.stockTransactionRepository.SumValue(tx, portfolioIDs, date)
	if err != nil {
		return domain.CashBalance{}, err
	}

	balance := deposits.Plus(conversions)
	balance.USD = balance.USD.Sub(traded)

	transactions, err := h.stockTransactionRepository.List(tx, portfolioIDs, date)
	if err != nil {
		return domain.CashBalance{}, err
	}
	payouts, err := h.stockDividendRepository.List(tx, tickersOf(transactions), time.Time{}, date)
	if err != nil {
		return domain.CashBalance{}, err
	}
	holdings, err := h.payoutHoldings(tx, scope, payouts)
	if err != nil {
		return domain.CashBalance{}, err
	}

	h.logger.Debug().
		Int("payouts", len(payouts)).
		Str("date", util.DateStr(date)).
		Msg("replaying dividend payouts")

	out, err := portfolio.CashBalances(payouts, []time.Time{date}, balance, holdings)
	if err != nil {
		return domain.CashBalance{}, err
	}
	return out[util.DateStr(date)], nil
}

func (h cashBalanceServiceHandler) GetPortfolioCashBalanceSeries(tx *sql.Tx, scope Scope, dates []time.Time) (map[string]domain.CashBalance, error) {
	last, ok := util.MaxDate(dates)
	if !ok {
		return map[string]domain.CashBalance{}, nil
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
	activity.Dividends, err = h.stockDividendRepository.List(tx, tickersOf(activity.StockTransactions), time.Time{}, last)
	if err != nil {
		return nil, err
	}
	holdings, err := h.payoutHoldings(tx, scope, activity.Dividends)
	if err != nil {
		return nil, err
	}

	return portfolio.CashBalanceSeries(activity, dates, domain.CashBalance{}, holdings)
}

func (h cashBalanceServiceHandler) GetInvestedCapital(tx *sql.Tx, scope Scope, dates []time.Time) (map[string]domain.CashBalance, error) {
	last, ok := util.MaxDate(dates)
	if !ok {
		return map[string]domain.CashBalance{}, nil
	}
	portfolioIDs, err := resolvePortfolioIDs(tx, h.portfolioRepository, scope)
	if err != nil {
		return nil, err
	}
	cashTransactions, err := h.cashTransactionRepository.List(tx, portfolioIDs, last)
	if err != nil {
		return nil, err
	}
	return portfolio.InvestedCapital(cashTransactions, dates, domain.CashBalance{})
}

func (h cashBalanceServiceHandler) GetInvestedCapitalSnapshot(tx *sql.Tx, scope Scope, date time.Time) (domain.CashBalance, error) {
	portfolioIDs, err := resolvePortfolioIDs(tx, h.portfolioRepository, scope)
	if err != nil {
		return domain.CashBalance{}, err
	}
	return h.cashTransactionRepository.SumByCurrency(tx, portfolioIDs, date)
}

func listCashActivity(
	tx *sql.Tx,
	portfolioIDs []uuid.UUID,
	until time.Time,
	cashTransactionRepository repository.CashTransactionRepository,
	forexTransactionRepository repository.ForexTransactionRepository,
	stockTransactionRepository repository.StockTransactionRepository,
) (portfolio.CashActivity, error) {
	cashTransactions, err := cashTransactionRepository.List(tx, portfolioIDs, until)
	if err != nil {
		return portfolio.CashActivity{}, err
	}
	forexTransactions, err := forexTransactionRepository.List(tx, portfolioIDs, until)
	if err != nil {
		return portfolio.CashActivity{}, err
	}
	stockTransactions, err := stockTransactionRepository.List(tx, portfolioIDs, until)
	if err != nil {
		return portfolio.CashActivity{}, err
	}
	return portfolio.CashActivity{
		CashTransactions:  cashTransactions,
		ForexTransactions: forexTransactions,
		StockTransactions: stockTransactions,
	}, nil
}
