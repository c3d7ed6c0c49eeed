package service

import (
	"database/sql"
	"testing"
	"time"

	folio_errors "folio/internal"
	"folio/internal/domain"
	"folio/internal/repository/mock_repository"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestIndicatorService_GetPortfolioIndicators(t *testing.T) {
	var tx *sql.Tx
	portfolioIDs := []uuid.UUID{uuid.New()}
	scope := Scope{OwnerID: uuid.New(), PortfolioIDs: portfolioIDs}
	asOf := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	setup := func(ctrl *gomock.Controller) (
		IndicatorService,
		*mock_repository.MockStockTransactionRepository,
		*mock_repository.MockCashTransactionRepository,
		*mock_repository.MockStockRepository,
		*MockPortfolioSnapshotService,
		*MockCashBalanceService,
	) {
		transactions := mock_repository.NewMockStockTransactionRepository(ctrl)
		cash := mock_repository.NewMockCashTransactionRepository(ctrl)
		stocks := mock_repository.NewMockStockRepository(ctrl)
		snapshots := NewMockPortfolioSnapshotService(ctrl)
		balances := NewMockCashBalanceService(ctrl)
		service := NewIndicatorService(
			zerolog.Nop(),
			testRates,
			mock_repository.NewMockPortfolioRepository(ctrl),
			transactions,
			cash,
			stocks,
			snapshots,
			balances,
		)
		return service, transactions, cash, stocks, snapshots, balances
	}

	t.Run("headline figures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, transactions, cash, stocks, snapshots, balances := setup(ctrl)

		firstDeposit := asOf.AddDate(-1, 0, 0)
		snapshot := domain.NewPortfolioSnapshot(scope.OwnerID)
		snapshot.Date = asOf
		snapshot.Positions["AAPL"] = domain.Position{Ticker: "AAPL", Shares: 10, Price: dec(120), PurchasePrice: dec(100), Dividend: dec(0)}

		cash.EXPECT().FirstDate(gomock.Any(), portfolioIDs, asOf).Return(&firstDeposit, nil)
		transactions.EXPECT().List(gomock.Any(), portfolioIDs, asOf).Return([]domain.StockTransaction{
			buy("AAPL", 10, 100, firstDeposit.AddDate(0, 0, 1)),
		}, nil)
		snapshots.EXPECT().GetPortfolioSnapshot(gomock.Any(), scope, asOf).Return(snapshot, nil)
		balances.EXPECT().GetPortfolioCashBalanceSnapshot(gomock.Any(), scope, asOf).
			Return(domain.CashBalance{USD: dec(0), EUR: dec(0), HUF: dec(30000)}, nil)
		balances.EXPECT().GetInvestedCapitalSnapshot(gomock.Any(), scope, asOf).
			Return(domain.CashBalance{USD: dec(1100), EUR: dec(0), HUF: dec(0)}, nil)
		stocks.EXPECT().Sectors(gomock.Any(), []string{"AAPL"}).Return(map[string]string{"AAPL": "Technology"}, nil)

		out, err := service.GetPortfolioIndicators(tx, scope, asOf)
		require.NoError(t, err)
		require.True(t, dec(1200).Equal(out.AssetsUnderManagement))
		require.True(t, dec(100).Equal(out.Cash))
		require.True(t, dec(1100).Equal(out.InvestedCapital))
		require.Equal(t, "0.1818181818181818", out.Roic.String())
		require.True(t, dec(1000).Equal(out.GrossCapitalDeployed))
		require.Equal(t, "1", out.ExposureConcentration.String())
		require.Equal(t, 1, out.PositionCount)
		require.Equal(
			t,
			"",
			cmp.Diff(map[string]decimal.Decimal{"Technology": dec(1)}, out.SectorDistribution),
		)
	})

	t.Run("no transaction data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, transactions, cash, _, _, _ := setup(ctrl)

		cash.EXPECT().FirstDate(gomock.Any(), portfolioIDs, asOf).Return(nil, nil)
		transactions.EXPECT().List(gomock.Any(), portfolioIDs, asOf).Return([]domain.StockTransaction{}, nil)

		_, err := service.GetPortfolioIndicators(tx, scope, asOf)
		require.ErrorIs(t, err, folio_errors.ErrNoTransactionData)
	})

	t.Run("deposit only after the date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, transactions, cash, _, _, _ := setup(ctrl)

		later := asOf.AddDate(0, 6, 0)
		cash.EXPECT().FirstDate(gomock.Any(), portfolioIDs, asOf).Return(&later, nil)
		transactions.EXPECT().List(gomock.Any(), portfolioIDs, asOf).Return([]domain.StockTransaction{}, nil)

		out, err := service.GetPortfolioIndicators(tx, scope, asOf)
		require.ErrorIs(t, err, folio_errors.ErrNoTransactionData)
		require.Nil(t, out)
	})
}
