package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PerformanceSnapshot covers one period, ending on Date
type PerformanceSnapshot struct {
	Date         time.Time
	BaseSize     decimal.Decimal // value at the start of the period
	Appreciation decimal.Decimal // value change not explained by cash flow
	Dividends    decimal.Decimal
	CashFlow     decimal.Decimal
}

func NewPerformanceSnapshot(baseSize decimal.Decimal) PerformanceSnapshot {
	return PerformanceSnapshot{
		BaseSize:     baseSize,
		Appreciation: decimal.Zero,
		Dividends:    decimal.Zero,
		CashFlow:     decimal.Zero,
	}
}

func (p PerformanceSnapshot) CapitalSize() decimal.Decimal {
	return p.BaseSize.Add(p.CashFlow)
}

func (p PerformanceSnapshot) Total() decimal.Decimal {
	return p.Appreciation.Add(p.Dividends)
}

// EndSize is the value carried into the next period.
// Dividends are paid out and not part of it
func (p PerformanceSnapshot) EndSize() decimal.Decimal {
	return p.CapitalSize().Add(p.Appreciation)
}

// Performance is the period return. A period with no
// capital has no return
func (p PerformanceSnapshot) Performance() decimal.Decimal {
	capital := p.CapitalSize()
	if capital.IsZero() {
		return decimal.Zero
	}
	return p.Total().Div(capital)
}

type PerformanceSummary struct {
	Periods            []PerformanceSnapshot
	TimeWeightedReturn decimal.Decimal
	CumulativeReturns  map[string]decimal.Decimal
	Volatility         float64 // sample stdev of period returns
}
