package prices

import (
	"database/sql"
	"fmt"
	"folio/internal/domain"
	"folio/internal/repository"

	"github.com/rs/zerolog"
)

type PriceUpdater struct {
	Client     PriceClient
	Repository repository.StockPriceRepository
	Logger     zerolog.Logger
}

// UpdatePrices fetches and stores the latest close of each ticker.
// A ticker that fails is logged and skipped, and the returned error
// names every one that failed
func (u PriceUpdater) UpdatePrices(tx *sql.Tx, tickers []string) ([]domain.StockPrice, error) {
	updated := []domain.StockPrice{}
	failed := []string{}
	for _, ticker := range tickers {
		price, err := u.Client.GetLatestPrice(ticker)
		if err != nil {
			u.Logger.Error().Err(err).Str("ticker", ticker).Msg("failed to get latest price")
			failed = append(failed, ticker)
			continue
		}
		updated = append(updated, *price)
	}

	if len(updated) > 0 {
		if err := u.Repository.Add(tx, updated); err != nil {
			return nil, err
		}
	}
	u.Logger.Info().Int("updated", len(updated)).Int("failed", len(failed)).Msg("updated prices")

	if len(failed) > 0 {
		return updated, fmt.Errorf("failed to update prices of %v", failed)
	}
	return updated, nil
}
