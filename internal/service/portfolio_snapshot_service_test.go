package service

import (
	"database/sql"
	"testing"
	"time"

	folio_errors "folio/internal"
	"folio/internal/domain"
	"folio/internal/repository/mock_repository"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
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

type snapshotMocks struct {
	portfolios   *mock_repository.MockPortfolioRepository
	transactions *mock_repository.MockStockTransactionRepository
	splits       *mock_repository.MockStockSplitRepository
	prices       *mock_repository.MockStockPriceRepository
	dividends    *mock_repository.MockStockDividendRepository
}

func newSnapshotService(ctrl *gomock.Controller) (PortfolioSnapshotService, snapshotMocks) {
	m := snapshotMocks{
		portfolios:   mock_repository.NewMockPortfolioRepository(ctrl),
		transactions: mock_repository.NewMockStockTransactionRepository(ctrl),
		splits:       mock_repository.NewMockStockSplitRepository(ctrl),
		prices:       mock_repository.NewMockStockPriceRepository(ctrl),
		dividends:    mock_repository.NewMockStockDividendRepository(ctrl),
	}
	return NewPortfolioSnapshotService(zerolog.Nop(), m.portfolios, m.transactions, m.splits, m.prices, m.dividends), m
}

func TestPortfolioSnapshotService_GetPortfolioSnapshotSeries(t *testing.T) {
	var tx *sql.Tx
	ownerID := uuid.New()
	portfolios := []domain.Portfolio{
		{PortfolioID: uuid.New(), OwnerID: ownerID, Name: "growth"},
		{PortfolioID: uuid.New(), OwnerID: ownerID, Name: "income"},
	}
	portfolioIDs := domain.PortfolioIDs(portfolios)
	tickers := []string{"AAPL", "MSFT"}

	t.Run("all portfolios of the owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, m := newSnapshotService(ctrl)

		m.portfolios.EXPECT().ListByOwner(gomock.Any(), ownerID).Return(portfolios, nil)
		m.transactions.EXPECT().List(gomock.Any(), portfolioIDs, day(10)).Return([]domain.StockTransaction{
			buy("AAPL", 10, 100, day(1)),
			buy("MSFT", 5, 200, day(3)),
			buy("AAPL", -4, 60, day(8)),
		}, nil)
		m.splits.EXPECT().List(gomock.Any(), tickers, day(10)).Return([]domain.StockSplit{
			{Ticker: "AAPL", Ratio: dec(2), Date: day(5)},
		}, nil)
		m.prices.EXPECT().LatestPrices(gomock.Any(), tickers, day(10)).Return(map[string]decimal.Decimal{
			"AAPL": dec(60),
		}, nil)
		m.dividends.EXPECT().LatestDividends(gomock.Any(), tickers, day(10)).Return(map[string]decimal.Decimal{
			"MSFT": dec(0.75),
		}, nil)

		out, err := service.GetPortfolioSnapshotSeries(tx, Scope{OwnerID: ownerID}, []time.Time{day(10), day(4)})
		require.NoError(t, err)
		require.Len(t, out, 2)

		early := out["2022-03-04"]
		require.Equal(t, ownerID, early.OwnerID)
		require.Equal(t, day(4), early.Date)
		require.Equal(t, int64(10), early.Shares("AAPL"))
		require.True(t, dec(100).Equal(early.Positions["AAPL"].PurchasePrice))
		// interim snapshots use prices as of the last date
		require.True(t, dec(60).Equal(early.Positions["AAPL"].Price))
		require.True(t, dec(200).Equal(early.Positions["MSFT"].Price))
		require.True(t, dec(3).Equal(early.Positions["MSFT"].Dividend))

		late := out["2022-03-10"]
		require.Equal(t, int64(16), late.Shares("AAPL"))
		require.True(t, dec(50).Equal(late.Positions["AAPL"].PurchasePrice))
		require.True(t, dec(960).Equal(late.Positions["AAPL"].MarketValue()))
		require.True(t, late.Positions["AAPL"].Dividend.IsZero())
		require.Equal(t, 2, late.PositionCount())
	})

	t.Run("negative position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, m := newSnapshotService(ctrl)
		scope := Scope{OwnerID: ownerID, PortfolioIDs: portfolioIDs[:1]}

		m.transactions.EXPECT().List(gomock.Any(), portfolioIDs[:1], day(10)).Return([]domain.StockTransaction{
			buy("AAPL", 1, 100, day(1)),
			buy("AAPL", -2, 100, day(2)),
		}, nil)
		m.splits.EXPECT().List(gomock.Any(), []string{"AAPL"}, day(10)).Return(nil, nil)
		m.prices.EXPECT().LatestPrices(gomock.Any(), []string{"AAPL"}, day(10)).Return(map[string]decimal.Decimal{}, nil)
		m.dividends.EXPECT().LatestDividends(gomock.Any(), []string{"AAPL"}, day(10)).Return(map[string]decimal.Decimal{}, nil)

		_, err := service.GetPortfolioSnapshot(tx, scope, day(10))
		require.ErrorAs(t, err, &folio_errors.ErrNegativePosition{})
	})

	t.Run("no dates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, _ := newSnapshotService(ctrl)

		out, err := service.GetPortfolioSnapshotSeries(tx, Scope{OwnerID: ownerID}, nil)
		require.NoError(t, err)
		require.Empty(t, out)
	})

	t.Run("nothing traded yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, m := newSnapshotService(ctrl)

		m.portfolios.EXPECT().ListByOwner(gomock.Any(), ownerID).Return(portfolios, nil)
		m.transactions.EXPECT().List(gomock.Any(), portfolioIDs, day(1)).Return([]domain.StockTransaction{}, nil)
		m.splits.EXPECT().List(gomock.Any(), []string{}, day(1)).Return([]domain.StockSplit{}, nil)
		m.prices.EXPECT().LatestPrices(gomock.Any(), []string{}, day(1)).Return(map[string]decimal.Decimal{}, nil)
		m.dividends.EXPECT().LatestDividends(gomock.Any(), []string{}, day(1)).Return(map[string]decimal.Decimal{}, nil)

		out, err := service.GetPortfolioSnapshot(tx, Scope{OwnerID: ownerID}, day(1))
		require.NoError(t, err)
		require.Equal(t, 0, out.PositionCount())
		require.Equal(t, day(1), out.Date)
	})
}
