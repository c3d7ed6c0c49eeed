package portfolio

import (
	"testing"
	"time"

	folio_errors "folio/internal"
	"folio/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func day(d int) time.Time {
	return time.Date(2022, 3, d, 0, 0, 0, 0, time.UTC)
}

func buy(ticker string, amount int64, price float64, date time.Time) domain.StockTransaction {
	return domain.StockTransaction{
		Ticker: ticker,
		Amount: amount,
		Price:  dec(price),
		Date:   date,
	}
}

func TestPlayback(t *testing.T) {
	owner := uuid.New()
	noMarketData := MarketData{}

	t.Run("average cost", func(t *testing.T) {
		out, err := Playback(
			owner,
			[]domain.StockTransaction{
				buy("AAPL", 3, 80, day(4)),
				buy("AAPL", 2, 100, day(1)),
			},
			nil,
			[]time.Time{day(10)},
			MarketData{Prices: map[string]decimal.Decimal{"AAPL": dec(120)}},
		)
		require.NoError(t, err)
		require.Equal(
			t,
			"",
			cmp.Diff(
				map[string]domain.PortfolioSnapshot{
					"2022-03-10": {
						OwnerID: owner,
						Date:    day(10),
						Positions: map[string]domain.Position{
							"AAPL": {
								Ticker:             "AAPL",
								Shares:             5,
								Price:              dec(120),
								Dividend:           decimal.Zero,
								PurchasePrice:      dec(88),
								FirstPurchaseDate:  day(1),
								LatestPurchaseDate: day(4),
							},
						},
					},
				},
				out,
			),
		)
	})

	t.Run("sell to zero removes position", func(t *testing.T) {
		out, err := Playback(
			owner,
			[]domain.StockTransaction{
				buy("AAPL", 2, 100, day(1)),
				buy("AAPL", 3, 80, day(2)),
				buy("AAPL", -5, 10, day(3)),
			},
			nil,
			[]time.Time{day(3)},
			noMarketData,
		)
		require.NoError(t, err)
		require.Empty(t, out["2022-03-03"].Positions)
	})

	t.Run("rebuying after a sellout starts over", func(t *testing.T) {
		out, err := Playback(
			owner,
			[]domain.StockTransaction{
				buy("AAPL", 2, 100, day(1)),
				buy("AAPL", -2, 120, day(2)),
				buy("AAPL", 1, 150, day(3)),
			},
			nil,
			[]time.Time{day(3)},
			noMarketData,
		)
		require.NoError(t, err)
		position := out["2022-03-03"].Positions["AAPL"]
		require.Equal(t, int64(1), position.Shares)
		require.True(t, position.PurchasePrice.Equal(dec(150)))
		require.Equal(t, day(3), position.FirstPurchaseDate)
	})

	t.Run("negative position is fatal", func(t *testing.T) {
		_, err := Playback(
			owner,
			[]domain.StockTransaction{
				buy("AAPL", 2, 100, day(1)),
				buy("AAPL", -5, 100, day(2)),
			},
			nil,
			[]time.Time{day(3)},
			noMarketData,
		)
		require.ErrorAs(t, err, &folio_errors.ErrNegativePosition{})
	})

	t.Run("spinoff sellout is accepted", func(t *testing.T) {
		out, err := Playback(
			owner,
			[]domain.StockTransaction{buy("GEHC", -3, 60, day(1))},
			nil,
			[]time.Time{day(2)},
			noMarketData,
		)
		require.NoError(t, err)
		require.Empty(t, out["2022-03-02"].Positions)
	})

	t.Run("split before the position opens does not apply", func(t *testing.T) {
		out, err := Playback(
			owner,
			[]domain.StockTransaction{
				buy("MSFT", 4, 45, day(2)),
				buy("MSFT", 3, 50, day(3)),
			},
			[]domain.StockSplit{{Ticker: "MSFT", Ratio: dec(2), Date: day(1)}},
			[]time.Time{day(5)},
			noMarketData,
		)
		require.NoError(t, err)
		position := out["2022-03-05"].Positions["MSFT"]
		require.Equal(t, int64(7), position.Shares)
		require.True(t, position.PurchasePrice.Equal(dec(47.14)), position.PurchasePrice.String())
	})

	t.Run("split applies from its date on", func(t *testing.T) {
		out, err := Playback(
			owner,
			[]domain.StockTransaction{
				buy("MSFT", 4, 45, day(1)),
				buy("MSFT", 3, 50, day(2)),
				buy("T", 10, 20, day(2)),
			},
			[]domain.StockSplit{{Ticker: "MSFT", Ratio: dec(2), Date: day(4)}},
			[]time.Time{day(3), day(4)},
			noMarketData,
		)
		require.NoError(t, err)

		before := out["2022-03-03"].Positions["MSFT"]
		require.Equal(t, int64(7), before.Shares)

		after := out["2022-03-04"].Positions["MSFT"]
		require.Equal(t, int64(14), after.Shares)
		require.True(t, after.PurchasePrice.Equal(dec(23.57)), after.PurchasePrice.String())

		require.Equal(t, int64(10), out["2022-03-04"].Shares("T"))
	})

	t.Run("series boundaries", func(t *testing.T) {
		out, err := Playback(
			owner,
			[]domain.StockTransaction{
				buy("KO", 10, 50, day(1)),
				buy("KO", 5, 56, day(5)),
			},
			nil,
			[]time.Time{day(2), day(3), day(5), day(8), day(9)},
			noMarketData,
		)
		require.NoError(t, err)
		require.Len(t, out, 5)

		require.Equal(t, int64(10), out["2022-03-02"].Shares("KO"))
		require.Equal(t, "", cmp.Diff(out["2022-03-02"].Positions, out["2022-03-03"].Positions))
		require.Equal(t, int64(15), out["2022-03-05"].Shares("KO"))
		require.Equal(t, "", cmp.Diff(out["2022-03-05"].Positions, out["2022-03-08"].Positions))
		require.Equal(t, "", cmp.Diff(out["2022-03-05"].Positions, out["2022-03-09"].Positions))
		require.Equal(t, day(8), out["2022-03-08"].Date)
	})

	t.Run("market data", func(t *testing.T) {
		out, err := Playback(
			owner,
			[]domain.StockTransaction{
				buy("KO", 10, 50, day(1)),
				buy("T", 10, 20, day(1)),
			},
			nil,
			[]time.Time{day(2)},
			MarketData{
				Prices:    map[string]decimal.Decimal{"KO": dec(60)},
				Dividends: map[string]decimal.Decimal{"KO": dec(3)},
			},
		)
		require.NoError(t, err)
		snapshot := out["2022-03-02"]

		require.True(t, snapshot.Positions["KO"].Price.Equal(dec(60)))
		require.True(t, snapshot.Positions["KO"].Dividend.Equal(dec(12)))
		// no price synced, falls back to the trade price
		require.True(t, snapshot.Positions["T"].Price.Equal(dec(20)))
		require.True(t, snapshot.Positions["T"].Dividend.IsZero())
	})

	t.Run("empty inputs", func(t *testing.T) {
		out, err := Playback(owner, nil, nil, nil, noMarketData)
		require.NoError(t, err)
		require.Empty(t, out)

		out, err = Playback(owner, nil, nil, []time.Time{day(1)}, noMarketData)
		require.NoError(t, err)
		require.Equal(t, 0, out["2022-03-01"].PositionCount())
	})
}

func TestLatestSnapshot(t *testing.T) {
	snapshots := map[string]domain.PortfolioSnapshot{
		"2022-03-02": {Positions: map[string]domain.Position{"KO": {Shares: 1}}},
		"2022-03-05": {Positions: map[string]domain.Position{"KO": {Shares: 2}}},
	}

	_, ok := LatestSnapshot(snapshots, day(1))
	require.False(t, ok)

	s, ok := LatestSnapshot(snapshots, day(4))
	require.True(t, ok)
	require.Equal(t, int64(1), s.Shares("KO"))

	require.Equal(t, int64(2), SharesHeld(snapshots, "KO", day(5)))
	require.Equal(t, int64(2), SharesHeld(snapshots, "KO", day(20)))
	require.Equal(t, int64(0), SharesHeld(snapshots, "T", day(20)))
}

func TestLatestPrices(t *testing.T) {
	prices := []domain.StockPrice{
		{Ticker: "KO", Date: day(3), Value: dec(61)},
		{Ticker: "KO", Date: day(1), Value: dec(60)},
		{Ticker: "KO", Date: day(6), Value: dec(65)},
		{Ticker: "T", Date: day(7), Value: dec(20)},
	}
	require.Equal(
		t,
		"",
		cmp.Diff(
			map[string]decimal.Decimal{"KO": dec(61)},
			LatestPrices(prices, day(5)),
		),
	)
}
