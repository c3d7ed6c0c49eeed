package repository

import (
	"database/sql"
	"fmt"
	"folio/internal/db/models/postgres/public/model"
	. "folio/internal/db/models/postgres/public/table"
	"folio/internal/domain"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type StockTransactionRepository interface {
	List(tx *sql.Tx, portfolioIDs []uuid.UUID, until time.Time) ([]domain.StockTransaction, error)
	ListByTicker(tx *sql.Tx, portfolioIDs []uuid.UUID, ticker string, until time.Time) ([]domain.StockTransaction, error)
	// SumValue is the signed sum of price * amount, what trading
	// has taken out of cash
	SumValue(tx *sql.Tx, portfolioIDs []uuid.UUID, until time.Time) (decimal.Decimal, error)
}

type stockTransactionRepositoryHandler struct{}

func NewStockTransactionRepository() StockTransactionRepository {
	return stockTransactionRepositoryHandler{}
}

func stockTransactionFromDb(t model.StockTransaction) domain.StockTransaction {
	id := t.StockTransactionID
	return domain.StockTransaction{
		StockTransactionID: &id,
		PortfolioID:        t.PortfolioID,
		Ticker:             t.Ticker,
		Amount:             t.Amount,
		Price:              t.Price,
		Date:               t.Date,
	}
}

func (h stockTransactionRepositoryHandler) list(tx *sql.Tx, condition postgres.BoolExpression) ([]domain.StockTransaction, error) {
	query := StockTransaction.SELECT(StockTransaction.AllColumns).
		WHERE(condition).
		ORDER_BY(StockTransaction.Date.ASC(), StockTransaction.StockTransactionID.ASC())

	results := []model.StockTransaction{}
	err := query.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock transactions: %w", err)
	}

	out := make([]domain.StockTransaction, len(results))
	for i, t := range results {
		out[i] = stockTransactionFromDb(t)
	}
	return out, nil
}

func (h stockTransactionRepositoryHandler) List(tx *sql.Tx, portfolioIDs []uuid.UUID, until time.Time) ([]domain.StockTransaction, error) {
	if len(portfolioIDs) == 0 {
		return []domain.StockTransaction{}, nil
	}
	return h.list(tx, postgres.AND(
		StockTransaction.PortfolioID.IN(uuidExpressions(portfolioIDs)...),
		StockTransaction.Date.LT_EQ(postgres.DateT(until)),
	))
}

func (h stockTransactionRepositoryHandler) ListByTicker(tx *sql.Tx, portfolioIDs []uuid.UUID, ticker string, until time.Time) ([]domain.StockTransaction, error) {
	if len(portfolioIDs) == 0 {
		return []domain.StockTransaction{}, nil
	}
	return h.list(tx, postgres.AND(
		StockTransaction.PortfolioID.IN(uuidExpressions(portfolioIDs)...),
		StockTransaction.Ticker.EQ(postgres.String(ticker)),
		StockTransaction.Date.LT_EQ(postgres.DateT(until)),
	))
}

func (h stockTransactionRepositoryHandler) SumValue(tx *sql.Tx, portfolioIDs []uuid.UUID, until time.Time) (decimal.Decimal, error) {
	if len(portfolioIDs) == 0 {
		return decimal.Zero, nil
	}
	value := StockTransaction.Price.MUL(postgres.FloatExp(StockTransaction.Amount))
	query := StockTransaction.SELECT(
		postgres.COALESCE(postgres.SUMf(value), postgres.Float(0)).AS("total"),
	).WHERE(postgres.AND(
		StockTransaction.PortfolioID.IN(uuidExpressions(portfolioIDs)...),
		StockTransaction.Date.LT_EQ(postgres.DateT(until)),
	))

	var result struct {
		Total decimal.Decimal `alias:"total"`
	}
	err := query.Query(tx, &result)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum stock transaction value: %w", err)
	}
	return result.Total, nil
}
