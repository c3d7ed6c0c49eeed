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
)

type ForexTransactionRepository interface {
	List(tx *sql.Tx, portfolioIDs []uuid.UUID, until time.Time) ([]domain.ForexTransaction, error)
	// NetByCurrency is what conversions added to each currency,
	// negative for the ones converted from
	NetByCurrency(tx *sql.Tx, portfolioIDs []uuid.UUID, until time.Time) (domain.CashBalance, error)
}

type forexTransactionRepositoryHandler struct{}

func NewForexTransactionRepository() ForexTransactionRepository {
	return forexTransactionRepositoryHandler{}
}

func forexTransactionFromDb(f model.ForexTransaction) (domain.ForexTransaction, error) {
	source, err := domain.ParseCurrency(f.SourceCurrency)
	if err != nil {
		return domain.ForexTransaction{}, err
	}
	target, err := domain.ParseCurrency(f.TargetCurrency)
	if err != nil {
		return domain.ForexTransaction{}, err
	}
	id := f.ForexTransactionID
	return domain.ForexTransaction{
		ForexTransactionID: &id,
		PortfolioID:        f.PortfolioID,
		SourceCurrency:     source,
		TargetCurrency:     target,
		Amount:             f.Amount,
		Ratio:              f.Ratio,
		Date:               f.Date,
	}, nil
}

func (h forexTransactionRepositoryHandler) condition(portfolioIDs []uuid.UUID, until time.Time) postgres.BoolExpression {
	return postgres.AND(
		ForexTransaction.PortfolioID.IN(uuidExpressions(portfolioIDs)...),
		ForexTransaction.Date.LT_EQ(postgres.DateT(until)),
	)
}

func (h forexTransactionRepositoryHandler) List(tx *sql.Tx, portfolioIDs []uuid.UUID, until time.Time) ([]domain.ForexTransaction, error) {
	if len(portfolioIDs) == 0 {
		return []domain.ForexTransaction{}, nil
	}
	query := ForexTransaction.SELECT(ForexTransaction.AllColumns).
		WHERE(h.condition(portfolioIDs, until)).
		ORDER_BY(ForexTransaction.Date.ASC(), ForexTransaction.ForexTransactionID.ASC())

	results := []model.ForexTransaction{}
	err := query.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list forex transactions: %w", err)
	}

	out := make([]domain.ForexTransaction, len(results))
	for i, f := range results {
		out[i], err = forexTransactionFromDb(f)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (h forexTransactionRepositoryHandler) NetByCurrency(tx *sql.Tx, portfolioIDs []uuid.UUID, until time.Time) (domain.CashBalance, error) {
	if len(portfolioIDs) == 0 {
		return domain.CashBalance{}, nil
	}

	outgoing := ForexTransaction.SELECT(
		ForexTransaction.SourceCurrency.AS("currency"),
		postgres.SUMf(ForexTransaction.Amount).MUL(postgres.Float(-1)).AS("total"),
	).
		WHERE(h.condition(portfolioIDs, until)).
		GROUP_BY(ForexTransaction.SourceCurrency)

	incoming := ForexTransaction.SELECT(
		ForexTransaction.TargetCurrency.AS("currency"),
		postgres.SUMf(ForexTransaction.Amount.MUL(ForexTransaction.Ratio)).AS("total"),
	).
		WHERE(h.condition(portfolioIDs, until)).
		GROUP_BY(ForexTransaction.TargetCurrency)

	totals := []currencyTotal{}
	err := postgres.UNION_ALL(outgoing, incoming).Query(tx, &totals)
	if err != nil {
		return domain.CashBalance{}, fmt.Errorf("failed to net forex transactions: %w", err)
	}

	return addTotals(domain.CashBalance{}, totals)
}
