package prices

import (
	"database/sql"
	"fmt"
	"folio/internal/domain"
	"folio/internal/repository/mock_repository"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type stubPriceClient map[string]decimal.Decimal

func (c stubPriceClient) GetLatestPrice(ticker string) (*domain.StockPrice, error) {
	price, ok := c[ticker]
	if !ok {
		return nil, fmt.Errorf("no quote for %s", ticker)
	}
	return &domain.StockPrice{
		Ticker: ticker,
		Date:   time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
		Value:  price,
	}, nil
}

func TestPriceUpdater_UpdatePrices(t *testing.T) {
	client := stubPriceClient{
		"AAPL": decimal.NewFromInt(190),
		"MSFT": decimal.NewFromInt(410),
	}

	t.Run("stores every quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockStockPriceRepository(ctrl)
		updater := PriceUpdater{Client: client, Repository: repo, Logger: zerolog.Nop()}

		repo.EXPECT().Add(nil, gomock.Any()).DoAndReturn(func(_ *sql.Tx, prices []domain.StockPrice) error {
			require.Len(t, prices, 2)
			return nil
		})

		updated, err := updater.UpdatePrices(nil, []string{"AAPL", "MSFT"})
		require.NoError(t, err)
		require.Len(t, updated, 2)
		require.Equal(t, "MSFT", updated[1].Ticker)
	})

	t.Run("keeps going past a failed ticker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockStockPriceRepository(ctrl)
		updater := PriceUpdater{Client: client, Repository: repo, Logger: zerolog.Nop()}

		repo.EXPECT().Add(nil, gomock.Any()).DoAndReturn(func(_ *sql.Tx, prices []domain.StockPrice) error {
			require.Len(t, prices, 1)
			return nil
		})

		updated, err := updater.UpdatePrices(nil, []string{"NOPE", "AAPL"})
		require.ErrorContains(t, err, "NOPE")
		require.Len(t, updated, 1)
		require.Equal(t, "AAPL", updated[0].Ticker)
	})

	t.Run("nothing to store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockStockPriceRepository(ctrl)
		updater := PriceUpdater{Client: client, Repository: repo, Logger: zerolog.Nop()}

		updated, err := updater.UpdatePrices(nil, []string{})
		require.NoError(t, err)
		require.Empty(t, updated)
	})
}
