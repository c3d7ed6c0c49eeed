package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Action is a dated fact that can be folded into
// replay state. Each fold implements ActionVisitor
// and only handles the kinds it cares about
type Action interface {
	GetDate() time.Time
	Accept(v ActionVisitor) error
}

type ActionVisitor interface {
	VisitStockTransaction(StockTransaction) error
	VisitStockSplit(StockSplit) error
	VisitCashTransaction(CashTransaction) error
	VisitForexTransaction(ForexTransaction) error
	VisitStockDividend(StockDividend) error
	VisitStockPrice(StockPrice) error
	VisitPortfolioValuation(PortfolioValuation) error
}

// IgnoreActions can be embedded in a visitor so it
// only needs to implement the actions it consumes
type IgnoreActions struct{}

func (IgnoreActions) VisitStockTransaction(StockTransaction) error     { return nil }
func (IgnoreActions) VisitStockSplit(StockSplit) error                 { return nil }
func (IgnoreActions) VisitCashTransaction(CashTransaction) error       { return nil }
func (IgnoreActions) VisitForexTransaction(ForexTransaction) error     { return nil }
func (IgnoreActions) VisitStockDividend(StockDividend) error           { return nil }
func (IgnoreActions) VisitStockPrice(StockPrice) error                 { return nil }
func (IgnoreActions) VisitPortfolioValuation(PortfolioValuation) error { return nil }

type StockTransaction struct {
	StockTransactionID *int32
	PortfolioID        uuid.UUID
	OwnerID            uuid.UUID
	Ticker             string
	Amount             int64 // signed share delta, negative is a sell
	Price              decimal.Decimal
	Date               time.Time
}

func (t StockTransaction) GetDate() time.Time           { return t.Date }
func (t StockTransaction) Accept(v ActionVisitor) error { return v.VisitStockTransaction(t) }

// Value is the signed cash amount of the trade,
// positive for buys
func (t StockTransaction) Value() decimal.Decimal {
	return t.Price.Mul(decimal.NewFromInt(t.Amount))
}

// StockSplit is not scoped to a portfolio. It applies
// to whoever holds the ticker on the split date
type StockSplit struct {
	StockSplitID *int32
	Ticker       string
	Ratio        decimal.Decimal // 2 for a 2:1 split
	Date         time.Time
}

func (s StockSplit) GetDate() time.Time           { return s.Date }
func (s StockSplit) Accept(v ActionVisitor) error { return v.VisitStockSplit(s) }

type CashTransaction struct {
	CashTransactionID *int32
	PortfolioID       uuid.UUID
	Currency          Currency
	Amount            decimal.Decimal // deposits positive, withdrawals negative
	Date              time.Time
}

func (c CashTransaction) GetDate() time.Time           { return c.Date }
func (c CashTransaction) Accept(v ActionVisitor) error { return v.VisitCashTransaction(c) }

// ForexTransaction converts Amount of SourceCurrency
// into Amount*Ratio of TargetCurrency
type ForexTransaction struct {
	ForexTransactionID *int32
	PortfolioID        uuid.UUID
	SourceCurrency     Currency
	TargetCurrency     Currency
	Amount             decimal.Decimal
	Ratio              decimal.Decimal
	Date               time.Time
}

func (f ForexTransaction) GetDate() time.Time           { return f.Date }
func (f ForexTransaction) Accept(v ActionVisitor) error { return v.VisitForexTransaction(f) }

func (f ForexTransaction) TargetAmount() decimal.Decimal {
	return f.Amount.Mul(f.Ratio)
}

// StockDividend is a per share payout
type StockDividend struct {
	StockDividendID *int32
	Ticker          string
	Amount          decimal.Decimal
	Date            time.Time
}

func (d StockDividend) GetDate() time.Time           { return d.Date }
func (d StockDividend) Accept(v ActionVisitor) error { return v.VisitStockDividend(d) }

type StockPrice struct {
	Ticker string
	Date   time.Time
	Value  decimal.Decimal
}

func (p StockPrice) GetDate() time.Time           { return p.Date }
func (p StockPrice) Accept(v ActionVisitor) error { return v.VisitStockPrice(p) }

// PortfolioValuation is the total USD value of a
// portfolio (positions and cash) on a date
type PortfolioValuation struct {
	Date  time.Time
	Value decimal.Decimal
}

func (p PortfolioValuation) GetDate() time.Time           { return p.Date }
func (p PortfolioValuation) Accept(v ActionVisitor) error { return v.VisitPortfolioValuation(p) }

type Portfolio struct {
	PortfolioID uuid.UUID
	OwnerID     uuid.UUID
	Name        string
}

func PortfolioIDs(portfolios []Portfolio) []uuid.UUID {
	out := make([]uuid.UUID, len(portfolios))
	for i, p := range portfolios {
		out[i] = p.PortfolioID
	}
	return out
}

func ToActions[T Action](items []T) []Action {
	out := make([]Action, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
