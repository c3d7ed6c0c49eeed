package metrics

import (
	"folio/internal/domain"
	"folio/internal/util"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

type IndicatorInput struct {
	Snapshot          domain.PortfolioSnapshot // revalued at the as of date
	Cash              domain.CashBalance
	InvestedCapital   domain.CashBalance
	StockTransactions []domain.StockTransaction
	FirstDeposit      time.Time
	Sectors           map[string]string
	Rates             domain.FxRates
}

func Indicators(in IndicatorInput, asOf time.Time) domain.PortfolioIndicators {
	aum := in.Snapshot.AssetsUnderManagement()
	cash := in.Rates.ToUSD(in.Cash)
	invested := in.Rates.ToUSD(in.InvestedCapital)
	sizes := in.Snapshot.SizeDistribution()

	roic := Roic(aum.Add(cash), invested)

	return domain.PortfolioIndicators{
		Date:                  asOf,
		AssetsUnderManagement: aum,
		Cash:                  cash,
		InvestedCapital:       invested,
		Roic:                  roic,
		AnnualizedRoic:        AnnualizedRoic(roic, in.FirstDeposit, asOf),
		ExposureConcentration: ExposureConcentration(sizes),
		GrossCapitalDeployed:  GrossCapitalDeployed(in.StockTransactions, asOf),
		DividendIncome:        in.Snapshot.DividendIncome(),
		DividendYield:         in.Snapshot.DividendYield(),
		PositionCount:         in.Snapshot.PositionCount(),
		SizeDistribution:      sizes,
		SectorDistribution:    in.Snapshot.SectorDistribution(in.Sectors),
	}
}

// Roic is the return on invested capital, zero while
// nothing has been invested
func Roic(value, invested decimal.Decimal) decimal.Decimal {
	if invested.IsZero() {
		return decimal.Zero
	}
	return value.Sub(invested).Div(invested)
}

// AnnualizedRoic scales roic to a 365 day year using the days
// since the first deposit. Under a day it returns roic unchanged
func AnnualizedRoic(roic decimal.Decimal, since, asOf time.Time) decimal.Decimal {
	if since.IsZero() {
		return roic
	}
	days := asOf.Sub(since).Hours() / 24
	if days < 1 {
		return roic
	}
	growth := decimal.NewFromInt(1).Add(roic).InexactFloat64()
	if growth <= 0 {
		return decimal.NewFromInt(-1)
	}
	return decimal.NewFromFloat(math.Pow(growth, 365/days) - 1).Round(6)
}

// ExposureConcentration is the herfindahl index of a
// distribution: 1 for a single position, 1/n for n equal ones
func ExposureConcentration(distribution map[string]decimal.Decimal) decimal.Decimal {
	out := decimal.Zero
	for _, w := range distribution {
		out = out.Add(w.Mul(w))
	}
	return out
}

// GrossCapitalDeployed sums the value of buys up to asOf
func GrossCapitalDeployed(transactions []domain.StockTransaction, asOf time.Time) decimal.Decimal {
	out := decimal.Zero
	for _, t := range transactions {
		if t.Amount <= 0 || util.StartOfDay(t.Date).After(util.StartOfDay(asOf)) {
			continue
		}
		out = out.Add(t.Value())
	}
	return out
}
