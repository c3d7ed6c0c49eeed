package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioIndicators are the headline figures of a
// portfolio as of Date. Money is in USD
type PortfolioIndicators struct {
	Date                  time.Time
	AssetsUnderManagement decimal.Decimal
	Cash                  decimal.Decimal
	InvestedCapital       decimal.Decimal
	Roic                  decimal.Decimal
	AnnualizedRoic        decimal.Decimal
	ExposureConcentration decimal.Decimal // herfindahl index of position sizes
	GrossCapitalDeployed  decimal.Decimal
	DividendIncome        decimal.Decimal
	DividendYield         decimal.Decimal
	PositionCount         int
	SizeDistribution      map[string]decimal.Decimal
	SectorDistribution    map[string]decimal.Decimal
}
