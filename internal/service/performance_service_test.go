package service

import (
	"database/sql"
	"testing"
	"time"

	"folio/internal/domain"
	"folio/internal/repository/mock_repository"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type performanceMocks struct {
	portfolios   *mock_repository.MockPortfolioRepository
	transactions *mock_repository.MockStockTransactionRepository
	splits       *mock_repository.MockStockSplitRepository
	prices       *mock_repository.MockStockPriceRepository
	dividends    *mock_repository.MockStockDividendRepository
	cash         *mock_repository.MockCashTransactionRepository
	forex        *mock_repository.MockForexTransactionRepository
}

func newPerformanceService(ctrl *gomock.Controller) (PerformanceService, performanceMocks) {
	m := performanceMocks{
		portfolios:   mock_repository.NewMockPortfolioRepository(ctrl),
		transactions: mock_repository.NewMockStockTransactionRepository(ctrl),
		splits:       mock_repository.NewMockStockSplitRepository(ctrl),
		prices:       mock_repository.NewMockStockPriceRepository(ctrl),
		dividends:    mock_repository.NewMockStockDividendRepository(ctrl),
		cash:         mock_repository.NewMockCashTransactionRepository(ctrl),
		forex:        mock_repository.NewMockForexTransactionRepository(ctrl),
	}
	return NewPerformanceService(
		zerolog.Nop(),
		testRates,
		m.portfolios,
		m.transactions,
		m.splits,
		m.prices,
		m.dividends,
		m.cash,
		m.forex,
	), m
}

// one deposit, one buy, a dividend and rising prices. The
// portfolio returns 5% then 10%
func expectPortfolioActivity(m performanceMocks, portfolioIDs []uuid.UUID) {
	tickers := []string{"AAPL"}
	m.cash.EXPECT().List(gomock.Any(), portfolioIDs, day(10)).Return([]domain.CashTransaction{
		{Currency: domain.Currency_USD, Amount: dec(1000), Date: day(1)},
	}, nil)
	m.forex.EXPECT().List(gomock.Any(), portfolioIDs, day(10)).Return([]domain.ForexTransaction{}, nil)
	m.transactions.EXPECT().List(gomock.Any(), portfolioIDs, day(10)).Return([]domain.StockTransaction{
		buy("AAPL", 10, 90, day(2)),
	}, nil)
	m.splits.EXPECT().List(gomock.Any(), tickers, day(10)).Return([]domain.StockSplit{}, nil)
	m.prices.EXPECT().List(gomock.Any(), tickers, time.Time{}, day(10)).Return([]domain.StockPrice{
		{Ticker: "AAPL", Date: day(2), Value: dec(90)},
		{Ticker: "AAPL", Date: day(5), Value: dec(95)},
		{Ticker: "AAPL", Date: day(10), Value: dec(105)},
	}, nil)
	m.dividends.EXPECT().List(gomock.Any(), tickers, time.Time{}, day(10)).Return([]domain.StockDividend{
		{Ticker: "AAPL", Amount: dec(0.5), Date: day(7)},
	}, nil)
}

func TestPerformanceService(t *testing.T) {
	var tx *sql.Tx
	portfolioIDs := []uuid.UUID{uuid.New()}
	scope := Scope{OwnerID: uuid.New(), PortfolioIDs: portfolioIDs}
	dates := []time.Time{day(5), day(10)}

	t.Run("position performance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, m := newPerformanceService(ctrl)

		m.transactions.EXPECT().ListByTicker(gomock.Any(), portfolioIDs, "AAPL", day(10)).Return([]domain.StockTransaction{
			buy("AAPL", 10, 100, day(1)),
		}, nil)
		m.splits.EXPECT().List(gomock.Any(), []string{"AAPL"}, day(10)).Return([]domain.StockSplit{}, nil)
		m.prices.EXPECT().List(gomock.Any(), []string{"AAPL"}, time.Time{}, day(10)).Return([]domain.StockPrice{
			{Ticker: "AAPL", Date: day(1), Value: dec(100)},
			{Ticker: "AAPL", Date: day(5), Value: dec(110)},
			{Ticker: "AAPL", Date: day(10), Value: dec(121)},
		}, nil)
		m.dividends.EXPECT().List(gomock.Any(), []string{"AAPL"}, time.Time{}, day(10)).Return([]domain.StockDividend{
			{Ticker: "AAPL", Amount: dec(1.1), Date: day(7)},
		}, nil)

		out, err := service.GetPositionPerformance(tx, scope, "AAPL", dates)
		require.NoError(t, err)
		require.Equal(t, "0.1", out["2022-03-05"].Performance().String())
		require.Equal(t, "0.11", out["2022-03-10"].Performance().String())
		require.True(t, dec(11).Equal(out["2022-03-10"].Dividends))
	})

	t.Run("portfolio performance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, m := newPerformanceService(ctrl)
		expectPortfolioActivity(m, portfolioIDs)

		out, err := service.GetPortfolioPerformance(tx, scope, dates)
		require.NoError(t, err)
		require.Equal(
			t,
			"",
			cmp.Diff(
				map[string]domain.PerformanceSnapshot{
					"2022-03-05": {
						Date:         day(5),
						BaseSize:     dec(0),
						Appreciation: dec(50),
						Dividends:    dec(0),
						CashFlow:     dec(1000),
					},
					"2022-03-10": {
						Date:         day(10),
						BaseSize:     dec(1050),
						Appreciation: dec(100),
						Dividends:    dec(5),
						CashFlow:     dec(0),
					},
				},
				out,
			),
		)
	})

	t.Run("time weighted return", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, m := newPerformanceService(ctrl)
		expectPortfolioActivity(m, portfolioIDs)

		twr, err := service.GetTimeWeightedReturn(tx, scope, dates)
		require.NoError(t, err)
		require.Equal(t, "0.155", twr.String())
	})

	t.Run("summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, m := newPerformanceService(ctrl)
		expectPortfolioActivity(m, portfolioIDs)

		summary, err := service.GetPerformanceSummary(tx, scope, dates)
		require.NoError(t, err)
		require.Len(t, summary.Periods, 2)
		require.Equal(t, day(5), summary.Periods[0].Date)
		require.Equal(t, "0.155", summary.TimeWeightedReturn.String())
		require.Equal(t, "0.05", summary.CumulativeReturns["2022-03-05"].String())
		require.InDelta(t, 0.035355, summary.Volatility, 1e-6)
	})

	t.Run("no dates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, _ := newPerformanceService(ctrl)

		out, err := service.GetPortfolioPerformance(tx, scope, nil)
		require.NoError(t, err)
		require.Empty(t, out)
	})
}
