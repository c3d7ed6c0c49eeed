package domain

import (
	folio_errors "folio/internal"
	"time"

	"github.com/shopspring/decimal"
)

// dividends are assumed to be paid quarterly when
// turning the latest payout into an annual rate
const DividendPaymentsPerYear = 4

// Position is the holding of a single ticker, tracked by
// share count and average cost. Positions are values;
// every transition returns a new Position
type Position struct {
	Ticker             string
	Shares             int64
	Price              decimal.Decimal // latest market price
	Dividend           decimal.Decimal // annualized, per share
	PurchasePrice      decimal.Decimal // average cost per share
	FirstPurchaseDate  time.Time
	LatestPurchaseDate time.Time
}

// NewPosition opens a position from its first transaction. A
// transaction that does not add shares opens nothing; this is
// a spinoff sellout and the caller should accept it silently
func NewPosition(t StockTransaction, latestPrice, latestDividend decimal.Decimal) (Position, bool) {
	if t.Amount <= 0 {
		return Position{}, false
	}
	return Position{
		Ticker:             t.Ticker,
		Shares:             t.Amount,
		Price:              latestPrice,
		Dividend:           latestDividend.Mul(decimal.NewFromInt(DividendPaymentsPerYear)),
		PurchasePrice:      t.Price,
		FirstPurchaseDate:  t.Date,
		LatestPurchaseDate: t.Date,
	}, true
}

// ApplyTransaction folds a buy or sell into the position. Only
// buys move the average cost. The result may hold zero shares,
// in which case the caller drops it
func (p Position) ApplyTransaction(t StockTransaction) (Position, error) {
	out := p
	if t.Amount >= 0 {
		totalShares := decimal.NewFromInt(p.Shares + t.Amount)
		if !totalShares.IsZero() {
			out.PurchasePrice = p.CostBasis().
				Add(t.Value()).
				Div(totalShares).
				Round(2)
		}
	}
	if t.Date.Before(out.FirstPurchaseDate) {
		out.FirstPurchaseDate = t.Date
	}
	if t.Date.After(out.LatestPurchaseDate) {
		out.LatestPurchaseDate = t.Date
	}
	out.Shares += t.Amount

	if out.Shares < 0 {
		return p, folio_errors.ErrNegativePosition{
			Ticker: p.Ticker,
			Shares: out.Shares,
			Date:   t.Date,
		}
	}
	return out, nil
}

// ApplySplit multiplies the share count by the ratio and divides
// per share figures by it. Fractional shares are floored away
func (p Position) ApplySplit(s StockSplit) Position {
	if s.Ratio.IsZero() {
		return p
	}
	out := p
	out.Shares = decimal.NewFromInt(p.Shares).Mul(s.Ratio).Floor().IntPart()
	out.PurchasePrice = p.PurchasePrice.Div(s.Ratio)
	out.Dividend = p.Dividend.Div(s.Ratio)
	return out
}

func (p Position) shares() decimal.Decimal {
	return decimal.NewFromInt(p.Shares)
}

func (p Position) MarketValue() decimal.Decimal {
	return p.shares().Mul(p.Price)
}

func (p Position) CostBasis() decimal.Decimal {
	return p.shares().Mul(p.PurchasePrice)
}

func (p Position) DividendYield() decimal.Decimal {
	if p.Price.IsZero() {
		return decimal.Zero
	}
	return p.Dividend.Div(p.Price)
}

func (p Position) DividendYieldOnCost() decimal.Decimal {
	if p.PurchasePrice.IsZero() {
		return decimal.Zero
	}
	return p.Dividend.Div(p.PurchasePrice)
}

func (p Position) DividendIncome() decimal.Decimal {
	return p.shares().Mul(p.Dividend)
}

func (p Position) Pnl() decimal.Decimal {
	return p.shares().Mul(p.Price.Sub(p.PurchasePrice))
}

func (p Position) PnlPercent() decimal.Decimal {
	if p.PurchasePrice.IsZero() {
		return decimal.Zero
	}
	return p.Price.Sub(p.PurchasePrice).Div(p.PurchasePrice)
}
