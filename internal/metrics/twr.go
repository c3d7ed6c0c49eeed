package metrics

import (
	"folio/internal/domain"
	"folio/internal/util"

	"github.com/shopspring/decimal"
)

// TimeWeightedReturn chain links period returns:
// product(1 + r) - 1. No periods means no return
func TimeWeightedReturn(periods []domain.PerformanceSnapshot) decimal.Decimal {
	growth := decimal.NewFromInt(1)
	for _, p := range periods {
		growth = growth.Mul(hp(p))
	}
	return growth.Sub(decimal.NewFromInt(1))
}

// CumulativeReturns gives the time weighted return from the first
// period through each date
func CumulativeReturns(periods map[string]domain.PerformanceSnapshot) map[string]decimal.Decimal {
	growth := decimal.NewFromInt(1)
	out := map[string]decimal.Decimal{}
	for _, d := range util.SortedMapKeys(periods) {
		growth = growth.Mul(hp(periods[d]))
		out[d] = growth.Sub(decimal.NewFromInt(1))
	}
	return out
}

// Ordered returns periods sorted by date
func Ordered(periods map[string]domain.PerformanceSnapshot) []domain.PerformanceSnapshot {
	out := make([]domain.PerformanceSnapshot, 0, len(periods))
	for _, d := range util.SortedMapKeys(periods) {
		out = append(out, periods[d])
	}
	return out
}

// holding period growth factor
// https://www.investopedia.com/terms/t/time-weightedror.asp
func hp(p domain.PerformanceSnapshot) decimal.Decimal {
	return decimal.NewFromInt(1).Add(p.Performance())
}
