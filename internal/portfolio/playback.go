package portfolio

import (
	"folio/internal/domain"
	"folio/internal/replay"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MarketData is the latest known price and dividend payout
// per ticker, as of the last date of a playback
type MarketData struct {
	Prices    map[string]decimal.Decimal
	Dividends map[string]decimal.Decimal
}

func (m MarketData) price(t domain.StockTransaction) decimal.Decimal {
	if price, ok := m.Prices[t.Ticker]; ok {
		return price
	}
	// market data sync may lag behind trades
	return t.Price
}

func (m MarketData) dividend(ticker string) decimal.Decimal {
	if dividend, ok := m.Dividends[ticker]; ok {
		return dividend
	}
	return decimal.Zero
}

// positionFold replays trades and splits into a flat
// ticker -> position map
type positionFold struct {
	domain.IgnoreActions
	snapshot   domain.PortfolioSnapshot
	marketData MarketData
}

func (f *positionFold) VisitStockTransaction(t domain.StockTransaction) error {
	position, ok := f.snapshot.Positions[t.Ticker]
	if !ok {
		opened, ok := domain.NewPosition(t, f.marketData.price(t), f.marketData.dividend(t.Ticker))
		if ok {
			f.snapshot.Positions[t.Ticker] = opened
		}
		return nil
	}

	updated, err := position.ApplyTransaction(t)
	if err != nil {
		return err
	}
	if updated.Shares == 0 {
		delete(f.snapshot.Positions, t.Ticker)
	} else {
		f.snapshot.Positions[t.Ticker] = updated
	}
	return nil
}

func (f *positionFold) VisitStockSplit(s domain.StockSplit) error {
	if position, ok := f.snapshot.Positions[s.Ticker]; ok {
		f.snapshot.Positions[s.Ticker] = position.ApplySplit(s)
	}
	return nil
}

func takePortfolioSnapshot(s domain.PortfolioSnapshot, on time.Time) (domain.PortfolioSnapshot, domain.PortfolioSnapshot) {
	out := s.Copy()
	out.Date = on
	return out, s
}

// Playback rebuilds the merged positions of all given
// transactions as of each date. Splits apply to any ticker
// held on the split date, regardless of portfolio
func Playback(
	ownerID uuid.UUID,
	transactions []domain.StockTransaction,
	splits []domain.StockSplit,
	dates []time.Time,
	marketData MarketData,
) (map[string]domain.PortfolioSnapshot, error) {
	actions := append(domain.ToActions(transactions), domain.ToActions(splits)...)

	apply := func(s domain.PortfolioSnapshot, a domain.Action) (domain.PortfolioSnapshot, error) {
		f := &positionFold{snapshot: s, marketData: marketData}
		if err := a.Accept(f); err != nil {
			return s, err
		}
		return f.snapshot, nil
	}

	return replay.Replay(
		domain.NewPortfolioSnapshot(ownerID),
		actions,
		dates,
		apply,
		takePortfolioSnapshot,
	)
}
