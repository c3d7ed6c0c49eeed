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

type StockDividendRepository interface {
	List(tx *sql.Tx, tickers []string, from, until time.Time) ([]domain.StockDividend, error)
	// LatestDividends is the most recent per share payout of each
	// ticker on or before `on`
	LatestDividends(tx *sql.Tx, tickers []string, on time.Time) (map[string]decimal.Decimal, error)
}

type stockDividendRepositoryHandler struct{}

func NewStockDividendRepository() StockDividendRepository {
	return stockDividendRepositoryHandler{}
}

func (h stockDividendRepositoryHandler) List(tx *sql.Tx, tickers []string, from, until time.Time) ([]domain.StockDividend, error) {
	if len(tickers) == 0 {
		return []domain.StockDividend{}, nil
	}
	query := StockDividend.SELECT(StockDividend.AllColumns).
		WHERE(postgres.AND(
			StockDividend.Ticker.IN(stringExpressions(tickers)...),
			StockDividend.Date.GT_EQ(postgres.DateT(from)),
			StockDividend.Date.LT_EQ(postgres.DateT(until)),
		)).
		ORDER_BY(StockDividend.Date.ASC())

	results := []model.StockDividend{}
	err := query.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list dividends: %w", err)
	}

	out := make([]domain.StockDividend, len(results))
	for i, d := range results {
		id := d.StockDividendID
		out[i] = domain.StockDividend{
			StockDividendID: &id,
			Ticker:          d.Ticker,
			Amount:          d.Amount,
			Date:            d.Date,
		}
	}
	return out, nil
}

func (h stockDividendRepositoryHandler) LatestDividends(tx *sql.Tx, tickers []string, on time.Time) (map[string]decimal.Decimal, error) {
	out := map[string]decimal.Decimal{}
	if len(tickers) == 0 {
		return out, nil
	}
	query := StockDividend.SELECT(StockDividend.AllColumns).
		WHERE(postgres.AND(
			StockDividend.Ticker.IN(stringExpressions(tickers)...),
			StockDividend.Date.LT_EQ(postgres.DateT(on)),
		)).
		ORDER_BY(StockDividend.Date.ASC())

	results := []model.StockDividend{}
	err := query.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest dividends: %w", err)
	}

	// rows are ascending, the latest one per ticker wins
	for _, d := range results {
		out[d.Ticker] = d.Amount
	}
	return out, nil
}
