package portfolio

import (
	"folio/internal/domain"
	"folio/internal/util"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// LatestSnapshot finds the snapshot with the latest date
// on or before `on`
func LatestSnapshot(snapshots map[string]domain.PortfolioSnapshot, on time.Time) (domain.PortfolioSnapshot, bool) {
	target := util.DateStr(on)
	if s, ok := snapshots[target]; ok {
		return s, true
	}
	keys := util.SortedMapKeys(snapshots)
	i := sort.SearchStrings(keys, target)
	if i == 0 {
		return domain.PortfolioSnapshot{}, false
	}
	return snapshots[keys[i-1]], true
}

// SharesHeld is the share count of ticker in the latest
// snapshot on or before `on`, zero when nothing is known
func SharesHeld(snapshots map[string]domain.PortfolioSnapshot, ticker string, on time.Time) int64 {
	s, ok := LatestSnapshot(snapshots, on)
	if !ok {
		return 0
	}
	return s.Shares(ticker)
}

// LatestPrices returns the latest price per ticker dated on
// or before `on`
func LatestPrices(prices []domain.StockPrice, on time.Time) map[string]decimal.Decimal {
	cutoff := util.StartOfDay(on)
	out := map[string]decimal.Decimal{}
	seen := map[string]time.Time{}
	for _, p := range prices {
		day := util.StartOfDay(p.Date)
		if day.After(cutoff) {
			continue
		}
		if last, ok := seen[p.Ticker]; ok && last.After(day) {
			continue
		}
		seen[p.Ticker] = day
		out[p.Ticker] = p.Value
	}
	return out
}
