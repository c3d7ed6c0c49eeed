package repository

import (
	"database/sql"
	"fmt"
	"folio/internal/db/models/postgres/public/model"
	. "folio/internal/db/models/postgres/public/table"
	"folio/internal/domain"
	"time"

	"github.com/go-jet/jet/v2/postgres"
)

type StockSplitRepository interface {
	List(tx *sql.Tx, tickers []string, until time.Time) ([]domain.StockSplit, error)
}

type stockSplitRepositoryHandler struct{}

func NewStockSplitRepository() StockSplitRepository {
	return stockSplitRepositoryHandler{}
}

func (h stockSplitRepositoryHandler) List(tx *sql.Tx, tickers []string, until time.Time) ([]domain.StockSplit, error) {
	if len(tickers) == 0 {
		return []domain.StockSplit{}, nil
	}
	query := StockSplit.SELECT(StockSplit.AllColumns).
		WHERE(postgres.AND(
			StockSplit.Ticker.IN(stringExpressions(tickers)...),
			StockSplit.Date.LT_EQ(postgres.DateT(until)),
		)).
		ORDER_BY(StockSplit.Date.ASC())

	results := []model.StockSplit{}
	err := query.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock splits: %w", err)
	}

	out := make([]domain.StockSplit, len(results))
	for i, s := range results {
		id := s.StockSplitID
		out[i] = domain.StockSplit{
			StockSplitID: &id,
			Ticker:       s.Ticker,
			Ratio:        s.Ratio,
			Date:         s.Date,
		}
	}
	return out, nil
}
