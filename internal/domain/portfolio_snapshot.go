package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const distributionPrecision = 4

// PortfolioSnapshot is the state of one or more merged
// portfolios at the end of a day, keyed by ticker
type PortfolioSnapshot struct {
	OwnerID   uuid.UUID
	Date      time.Time
	Positions map[string]Position
}

func NewPortfolioSnapshot(ownerID uuid.UUID) PortfolioSnapshot {
	return PortfolioSnapshot{
		OwnerID:   ownerID,
		Positions: map[string]Position{},
	}
}

// Copy returns a snapshot that shares no mutable state
// with p. Positions are values, so copying the map is enough
func (p PortfolioSnapshot) Copy() PortfolioSnapshot {
	out := PortfolioSnapshot{
		OwnerID:   p.OwnerID,
		Date:      p.Date,
		Positions: make(map[string]Position, len(p.Positions)),
	}
	for ticker, position := range p.Positions {
		out.Positions[ticker] = position
	}
	return out
}

// Tickers returns held tickers in ascending order
func (p PortfolioSnapshot) Tickers() []string {
	out := make([]string, 0, len(p.Positions))
	for ticker := range p.Positions {
		out = append(out, ticker)
	}
	sort.Strings(out)
	return out
}

func (p PortfolioSnapshot) Shares(ticker string) int64 {
	return p.Positions[ticker].Shares
}

func (p PortfolioSnapshot) PositionCount() int {
	return len(p.Positions)
}

// Revalue returns a copy priced with the given prices.
// Tickers missing from prices keep their current price
func (p PortfolioSnapshot) Revalue(prices map[string]decimal.Decimal) PortfolioSnapshot {
	out := p.Copy()
	for ticker, position := range out.Positions {
		if price, ok := prices[ticker]; ok {
			position.Price = price
			out.Positions[ticker] = position
		}
	}
	return out
}

func (p PortfolioSnapshot) sum(f func(Position) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, position := range p.Positions {
		total = total.Add(f(position))
	}
	return total
}

func (p PortfolioSnapshot) AssetsUnderManagement() decimal.Decimal {
	return p.sum(Position.MarketValue)
}

func (p PortfolioSnapshot) CapitalInvested() decimal.Decimal {
	return p.sum(Position.CostBasis)
}

func (p PortfolioSnapshot) DividendIncome() decimal.Decimal {
	return p.sum(Position.DividendIncome)
}

func (p PortfolioSnapshot) DividendYield() decimal.Decimal {
	aum := p.AssetsUnderManagement()
	if aum.IsZero() {
		return decimal.Zero
	}
	return p.DividendIncome().Div(aum)
}

func (p PortfolioSnapshot) weights(f func(Position) decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(p.Positions))
	for ticker, position := range p.Positions {
		out[ticker] = f(position)
	}
	return out
}

// SizeDistribution is each ticker's share of market value
func (p PortfolioSnapshot) SizeDistribution() map[string]decimal.Decimal {
	return Distribution(p.weights(Position.MarketValue))
}

// SizeAtCostDistribution is each ticker's share of cost basis
func (p PortfolioSnapshot) SizeAtCostDistribution() map[string]decimal.Decimal {
	return Distribution(p.weights(Position.CostBasis))
}

// DividendDistribution is each ticker's share of dividend income
func (p PortfolioSnapshot) DividendDistribution() map[string]decimal.Decimal {
	return Distribution(p.weights(Position.DividendIncome))
}

// SectorDistribution groups market value by sector. Tickers
// without a known sector are grouped under "Unknown"
func (p PortfolioSnapshot) SectorDistribution(sectors map[string]string) map[string]decimal.Decimal {
	weights := map[string]decimal.Decimal{}
	for ticker, position := range p.Positions {
		sector, ok := sectors[ticker]
		if !ok || sector == "" {
			sector = "Unknown"
		}
		current, ok := weights[sector]
		if !ok {
			current = decimal.Zero
		}
		weights[sector] = current.Add(position.MarketValue())
	}
	return Distribution(weights)
}

// Distribution turns weights into fractions of their total,
// rounded to 4 places. Zero weights are left out and an all
// zero input gives an empty distribution
func Distribution(weights map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := map[string]decimal.Decimal{}
	total := decimal.Zero
	for _, w := range weights {
		total = total.Add(w)
	}
	if total.IsZero() {
		return out
	}
	for key, w := range weights {
		if w.IsZero() {
			continue
		}
		out[key] = w.Div(total).Round(distributionPrecision)
	}
	return out
}
