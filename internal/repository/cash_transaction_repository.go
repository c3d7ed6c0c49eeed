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

type CashTransactionRepository interface {
	List(tx *sql.Tx, portfolioIDs []uuid.UUID, until time.Time) ([]domain.CashTransaction, error)
	SumByCurrency(tx *sql.Tx, portfolioIDs []uuid.UUID, until time.Time) (domain.CashBalance, error)
	// FirstDate is the earliest cash transaction on or before until,
	// nil when there is none
	FirstDate(tx *sql.Tx, portfolioIDs []uuid.UUID, until time.Time) (*time.Time, error)
}

type cashTransactionRepositoryHandler struct{}

func NewCashTransactionRepository() CashTransactionRepository {
	return cashTransactionRepositoryHandler{}
}

func cashTransactionFromDb(c model.CashTransaction) (domain.CashTransaction, error) {
	currency, err := domain.ParseCurrency(c.Currency)
	if err != nil {
		return domain.CashTransaction{}, err
	}
	id := c.CashTransactionID
	return domain.CashTransaction{
		CashTransactionID: &id,
		PortfolioID:       c.PortfolioID,
		Currency:          currency,
		Amount:            c.Amount,
		Date:              c.Date,
	}, nil
}

func (h cashTransactionRepositoryHandler) condition(portfolioIDs []uuid.UUID, until time.Time) postgres.BoolExpression {
	return postgres.AND(
		CashTransaction.PortfolioID.IN(uuidExpressions(portfolioIDs)...),
		CashTransaction.Date.LT_EQ(postgres.DateT(until)),
	)
}

func (h cashTransactionRepositoryHandler) List(tx *sql.Tx, portfolioIDs []uuid.UUID, until time.Time) ([]domain.CashTransaction, error) {
	if len(portfolioIDs) == 0 {
		return []domain.CashTransaction{}, nil
	}
	query := CashTransaction.SELECT(CashTransaction.AllColumns).
		WHERE(h.condition(portfolioIDs, until)).
		ORDER_BY(CashTransaction.Date.ASC(), CashTransaction.CashTransactionID.ASC())

	results := []model.CashTransaction{}
	err := query.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash transactions: %w", err)
	}

	out := make([]domain.CashTransaction, len(results))
	for i, c := range results {
		out[i], err = cashTransactionFromDb(c)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

type currencyTotal struct {
	Currency string          `alias:"currency"`
	Total    decimal.Decimal `alias:"total"`
}

func addTotals(balance domain.CashBalance, totals []currencyTotal) (domain.CashBalance, error) {
	for _, t := range totals {
		currency, err := domain.ParseCurrency(t.Currency)
		if err != nil {
			return domain.CashBalance{}, err
		}
		balance, err = balance.Add(currency, t.Total)
		if err != nil {
			return domain.CashBalance{}, err
		}
	}
	return balance, nil
}

func (h cashTransactionRepositoryHandler) SumByCurrency(tx *sql.Tx, portfolioIDs []uuid.UUID, until time.Time) (domain.CashBalance, error) {
	if len(portfolioIDs) == 0 {
		return domain.CashBalance{}, nil
	}
	query := CashTransaction.SELECT(
		CashTransaction.Currency.AS("currency"),
		postgres.SUMf(CashTransaction.Amount).AS("total"),
	).
		WHERE(h.condition(portfolioIDs, until)).
		GROUP_BY(CashTransaction.Currency)

	totals := []currencyTotal{}
	err := query.Query(tx, &totals)
	if err != nil {
		return domain.CashBalance{}, fmt.Errorf("failed to sum cash transactions: %w", err)
	}

	return addTotals(domain.CashBalance{}, totals)
}

func (h cashTransactionRepositoryHandler) FirstDate(tx *sql.Tx, portfolioIDs []uuid.UUID, until time.Time) (*time.Time, error) {
	if len(portfolioIDs) == 0 {
		return nil, nil
	}
	query := CashTransaction.SELECT(
		postgres.MIN(CashTransaction.Date).AS("first"),
	).WHERE(h.condition(portfolioIDs, until))

	var result struct {
		First *time.Time `alias:"first"`
	}
	err := query.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get first cash transaction date: %w", err)
	}
	return result.First, nil
}
