package repository

import (
	"database/sql"
	"fmt"
	"folio/internal/db/models/postgres/public/model"
	. "folio/internal/db/models/postgres/public/table"
	"folio/internal/domain"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/shopspring/decimal"
)

type StockPriceRepository interface {
	List(tx *sql.Tx, tickers []string, from, until time.Time) ([]domain.StockPrice, error)
	// LatestPrices is the most recent close of each ticker on or
	// before `on`. Tickers without a price are left out
	LatestPrices(tx *sql.Tx, tickers []string, on time.Time) (map[string]decimal.Decimal, error)
	// Add stores prices, replacing any existing close for the same
	// ticker and date
	Add(tx *sql.Tx, prices []domain.StockPrice) error
}

type stockPriceRepositoryHandler struct{}

func NewStockPriceRepository() StockPriceRepository {
	return stockPriceRepositoryHandler{}
}

func (h stockPriceRepositoryHandler) List(tx *sql.Tx, tickers []string, from, until time.Time) ([]domain.StockPrice, error) {
	if len(tickers) == 0 {
		return []domain.StockPrice{}, nil
	}
	query := StockPrice.SELECT(StockPrice.AllColumns).
		WHERE(postgres.AND(
			StockPrice.Ticker.IN(stringExpressions(tickers)...),
			StockPrice.Date.GT_EQ(postgres.DateT(from)),
			StockPrice.Date.LT_EQ(postgres.DateT(until)),
		)).
		ORDER_BY(StockPrice.Date.ASC())

	results := []model.StockPrice{}
	err := query.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}

	out := make([]domain.StockPrice, len(results))
	for i, p := range results {
		out[i] = domain.StockPrice{
			Ticker: p.Ticker,
			Date:   p.Date,
			Value:  p.Price,
		}
	}
	return out, nil
}

func (h stockPriceRepositoryHandler) LatestPrices(tx *sql.Tx, tickers []string, on time.Time) (map[string]decimal.Decimal, error) {
	out := map[string]decimal.Decimal{}
	if len(tickers) == 0 {
		return out, nil
	}
	query := StockPrice.SELECT(StockPrice.AllColumns).
		WHERE(postgres.AND(
			StockPrice.Ticker.IN(stringExpressions(tickers)...),
			StockPrice.Date.LT_EQ(postgres.DateT(on)),
		)).
		ORDER_BY(StockPrice.Date.ASC())

	results := []model.StockPrice{}
	err := query.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest prices: %w", err)
	}

	// rows are ascending, the latest one per ticker wins
	for _, p := range results {
		out[p.Ticker] = p.Price
	}
	return out, nil
}

func (h stockPriceRepositoryHandler) Add(tx *sql.Tx, prices []domain.StockPrice) error {
	if len(prices) == 0 {
		return nil
	}
	models := make([]model.StockPrice, len(prices))
	for i, p := range prices {
		models[i] = model.StockPrice{
			Ticker: p.Ticker,
			Price:  p.Value,
			Date:   p.Date,
		}
	}

	query := StockPrice.INSERT(StockPrice.MutableColumns).
		MODELS(models).
		ON_CONFLICT(StockPrice.Ticker, StockPrice.Date).
		DO_UPDATE(postgres.SET(
			StockPrice.Price.SET(StockPrice.EXCLUDED.Price),
		))

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add prices: %w", err)
	}
	return nil
}
