package repository

import (
	"database/sql"
	"fmt"
	"folio/internal/db/models/postgres/public/model"
	. "folio/internal/db/models/postgres/public/table"
)

type StockRepository interface {
	// Sectors maps tickers to their sector. Unknown tickers and
	// stocks without a sector are left out
	Sectors(tx *sql.Tx, tickers []string) (map[string]string, error)
}

type stockRepositoryHandler struct{}

func NewStockRepository() StockRepository {
	return stockRepositoryHandler{}
}

func (h stockRepositoryHandler) Sectors(tx *sql.Tx, tickers []string) (map[string]string, error) {
	out := map[string]string{}
	if len(tickers) == 0 {
		return out, nil
	}
	query := Stock.SELECT(Stock.AllColumns).
		WHERE(Stock.Ticker.IN(stringExpressions(tickers)...))

	results := []model.Stock{}
	err := query.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to get stock sectors: %w", err)
	}

	for _, s := range results {
		if s.Sector != nil {
			out[s.Ticker] = *s.Sector
		}
	}
	return out, nil
}
