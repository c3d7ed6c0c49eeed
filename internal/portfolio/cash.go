package portfolio

import (
	"folio/internal/domain"
	"folio/internal/replay"
	"time"

	"github.com/shopspring/decimal"
)

// CashActivity is everything that moves cash in or out
// of a set of portfolios
type CashActivity struct {
	CashTransactions  []domain.CashTransaction
	ForexTransactions []domain.ForexTransaction
	StockTransactions []domain.StockTransaction
	Dividends         []domain.StockDividend
}

func (c CashActivity) actions() []domain.Action {
	out := domain.ToActions(c.CashTransactions)
	out = append(out, domain.ToActions(c.ForexTransactions)...)
	out = append(out, domain.ToActions(c.StockTransactions)...)
	out = append(out, domain.ToActions(c.Dividends)...)
	return out
}

type cashFold struct {
	domain.IgnoreActions
	balance  domain.CashBalance
	holdings map[string]domain.PortfolioSnapshot
}

func (f *cashFold) VisitCashTransaction(c domain.CashTransaction) error {
	balance, err := f.balance.Add(c.Currency, c.Amount)
	if err != nil {
		return err
	}
	f.balance = balance
	return nil
}

func (f *cashFold) VisitForexTransaction(t domain.ForexTransaction) error {
	balance, err := f.balance.Add(t.SourceCurrency, t.Amount.Neg())
	if err != nil {
		return err
	}
	balance, err = balance.Add(t.TargetCurrency, t.TargetAmount())
	if err != nil {
		return err
	}
	f.balance = balance
	return nil
}

// stocks all trade in USD
func (f *cashFold) VisitStockTransaction(t domain.StockTransaction) error {
	f.balance.USD = f.balance.USD.Sub(t.Value())
	return nil
}

func (f *cashFold) VisitStockDividend(d domain.StockDividend) error {
	shares := SharesHeld(f.holdings, d.Ticker, d.Date)
	if shares == 0 {
		return nil
	}
	f.balance.USD = f.balance.USD.Add(d.Amount.Mul(decimal.NewFromInt(shares)))
	return nil
}

// CashBalanceSeries replays all cash activity into initial
// and returns the balance as of each date. Dividends pay out
// on the shares held per holdings on the payout date
func CashBalanceSeries(
	activity CashActivity,
	dates []time.Time,
	initial domain.CashBalance,
	holdings map[string]domain.PortfolioSnapshot,
) (map[string]domain.CashBalance, error) {
	apply := func(b domain.CashBalance, a domain.Action) (domain.CashBalance, error) {
		f := &cashFold{balance: b, holdings: holdings}
		if err := a.Accept(f); err != nil {
			return b, err
		}
		return f.balance, nil
	}
	return replay.Replay(
		initial,
		activity.actions(),
		dates,
		apply,
		replay.CopyOnSnapshot[domain.CashBalance],
	)
}

// CashBalances adds dividend payouts on top of an initial
// balance. Used when the rest of the balance comes from
// aggregate queries
func CashBalances(
	payouts []domain.StockDividend,
	dates []time.Time,
	initial domain.CashBalance,
	holdings map[string]domain.PortfolioSnapshot,
) (map[string]domain.CashBalance, error) {
	return CashBalanceSeries(CashActivity{Dividends: payouts}, dates, initial, holdings)
}

type investedCapitalFold struct {
	domain.IgnoreActions
	balance domain.CashBalance
}

func (f *investedCapitalFold) VisitCashTransaction(c domain.CashTransaction) error {
	balance, err := f.balance.Add(c.Currency, c.Amount)
	if err != nil {
		return err
	}
	f.balance = balance
	return nil
}

// InvestedCapital only counts deposits and withdrawals.
// Trades and conversions move money around inside the
// portfolio and are not capital flows
func InvestedCapital(
	cashTransactions []domain.CashTransaction,
	dates []time.Time,
	initial domain.CashBalance,
) (map[string]domain.CashBalance, error) {
	apply := func(b domain.CashBalance, a domain.Action) (domain.CashBalance, error) {
		f := &investedCapitalFold{balance: b}
		if err := a.Accept(f); err != nil {
			return b, err
		}
		return f.balance, nil
	}
	return replay.Replay(
		initial,
		domain.ToActions(cashTransactions),
		dates,
		apply,
		replay.CopyOnSnapshot[domain.CashBalance],
	)
}
