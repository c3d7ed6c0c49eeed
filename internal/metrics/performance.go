package metrics

import (
	"folio/internal/domain"
	"folio/internal/portfolio"
	"folio/internal/replay"
	"time"

	"github.com/shopspring/decimal"
)

// performanceState is the running period plus the last
// observed value, which is needed to close the period
type performanceState struct {
	Current   domain.PerformanceSnapshot
	LastValue decimal.Decimal
	Valued    bool
}

func (s performanceState) Copy() performanceState {
	return s
}

func newPerformanceState() performanceState {
	return performanceState{
		Current:   domain.NewPerformanceSnapshot(decimal.Zero),
		LastValue: decimal.Zero,
	}
}

// closePeriod emits the period ending on `on` and starts the next
// one from its ending value. Returns are period over period, not
// cumulative from inception
func closePeriod(valueOn func(s performanceState, on time.Time) decimal.Decimal) replay.SnapshotFunc[performanceState] {
	return func(s performanceState, on time.Time) (performanceState, performanceState) {
		if s.Valued {
			s.Current.Appreciation = valueOn(s, on).Sub(s.Current.CapitalSize())
		}
		s.Current.Date = on

		next := s
		next.Current = domain.NewPerformanceSnapshot(s.Current.EndSize())
		return s, next
	}
}

func unwrap(states map[string]performanceState) map[string]domain.PerformanceSnapshot {
	out := make(map[string]domain.PerformanceSnapshot, len(states))
	for date, s := range states {
		out[date] = s.Current
	}
	return out
}

type positionPerformanceFold struct {
	domain.IgnoreActions
	ticker   string
	state    performanceState
	holdings map[string]domain.PortfolioSnapshot
}

func (f *positionPerformanceFold) marketValue(price decimal.Decimal, on time.Time) decimal.Decimal {
	shares := portfolio.SharesHeld(f.holdings, f.ticker, on)
	return price.Mul(decimal.NewFromInt(shares))
}

func (f *positionPerformanceFold) VisitStockPrice(p domain.StockPrice) error {
	if p.Ticker != f.ticker {
		return nil
	}
	f.state.LastValue = p.Value
	f.state.Valued = true
	f.state.Current.Appreciation = f.marketValue(p.Value, p.Date).Sub(f.state.Current.CapitalSize())
	return nil
}

func (f *positionPerformanceFold) VisitStockDividend(d domain.StockDividend) error {
	if d.Ticker != f.ticker {
		return nil
	}
	shares := portfolio.SharesHeld(f.holdings, f.ticker, d.Date)
	f.state.Current.Dividends = f.state.Current.Dividends.Add(d.Amount.Mul(decimal.NewFromInt(shares)))
	return nil
}

func (f *positionPerformanceFold) VisitStockTransaction(t domain.StockTransaction) error {
	if t.Ticker != f.ticker {
		return nil
	}
	f.state.Current.CashFlow = f.state.Current.CashFlow.Add(t.Value())
	return nil
}

// PositionPerformance computes per period performance of a single
// ticker. holdings must contain portfolio snapshots covering the
// price, dividend and target dates; shares held on a date are taken
// from the latest snapshot on or before it
func PositionPerformance(
	ticker string,
	prices []domain.StockPrice,
	dividends []domain.StockDividend,
	transactions []domain.StockTransaction,
	holdings map[string]domain.PortfolioSnapshot,
	dates []time.Time,
) (map[string]domain.PerformanceSnapshot, error) {
	actions := domain.ToActions(transactions)
	actions = append(actions, domain.ToActions(dividends)...)
	actions = append(actions, domain.ToActions(prices)...)

	apply := func(s performanceState, a domain.Action) (performanceState, error) {
		f := &positionPerformanceFold{ticker: ticker, state: s, holdings: holdings}
		if err := a.Accept(f); err != nil {
			return s, err
		}
		return f.state, nil
	}
	valueOn := func(s performanceState, on time.Time) decimal.Decimal {
		shares := portfolio.SharesHeld(holdings, ticker, on)
		return s.LastValue.Mul(decimal.NewFromInt(shares))
	}

	states, err := replay.Replay(newPerformanceState(), actions, dates, apply, closePeriod(valueOn))
	if err != nil {
		return nil, err
	}
	return unwrap(states), nil
}

type portfolioPerformanceFold struct {
	domain.IgnoreActions
	state    performanceState
	holdings map[string]domain.PortfolioSnapshot
	rates    domain.FxRates
}

func (f *portfolioPerformanceFold) VisitPortfolioValuation(v domain.PortfolioValuation) error {
	f.state.LastValue = v.Value
	f.state.Valued = true
	f.state.Current.Appreciation = v.Value.Sub(f.state.Current.CapitalSize())
	return nil
}

func (f *portfolioPerformanceFold) VisitStockDividend(d domain.StockDividend) error {
	shares := portfolio.SharesHeld(f.holdings, d.Ticker, d.Date)
	f.state.Current.Dividends = f.state.Current.Dividends.Add(d.Amount.Mul(decimal.NewFromInt(shares)))
	return nil
}

func (f *portfolioPerformanceFold) VisitCashTransaction(c domain.CashTransaction) error {
	usd, err := f.rates.Convert(c.Currency, c.Amount)
	if err != nil {
		return err
	}
	f.state.Current.CashFlow = f.state.Current.CashFlow.Add(usd)
	return nil
}

// PortfolioPerformance computes per period performance of a whole
// portfolio. Valuations should exist for every target date; cash
// transactions are the external flows, converted to USD
func PortfolioPerformance(
	valuations []domain.PortfolioValuation,
	dividends []domain.StockDividend,
	cashTransactions []domain.CashTransaction,
	holdings map[string]domain.PortfolioSnapshot,
	rates domain.FxRates,
	dates []time.Time,
) (map[string]domain.PerformanceSnapshot, error) {
	actions := domain.ToActions(cashTransactions)
	actions = append(actions, domain.ToActions(dividends)...)
	actions = append(actions, domain.ToActions(valuations)...)

	apply := func(s performanceState, a domain.Action) (performanceState, error) {
		f := &portfolioPerformanceFold{state: s, holdings: holdings, rates: rates}
		if err := a.Accept(f); err != nil {
			return s, err
		}
		return f.state, nil
	}
	valueOn := func(s performanceState, _ time.Time) decimal.Decimal {
		return s.LastValue
	}

	states, err := replay.Replay(newPerformanceState(), actions, dates, apply, closePeriod(valueOn))
	if err != nil {
		return nil, err
	}
	return unwrap(states), nil
}
