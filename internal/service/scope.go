package service

import (
	"database/sql"
	"fmt"
	"folio/internal/domain"
	"folio/internal/repository"
	"folio/internal/util"
	"time"

	"github.com/google/uuid"
)

// Scope selects the portfolios a figure is computed over. No
// PortfolioIDs means every portfolio of the owner
type Scope struct {
	OwnerID      uuid.UUID
	PortfolioIDs []uuid.UUID
}

func resolvePortfolioIDs(tx *sql.Tx, portfolioRepository repository.PortfolioRepository, scope Scope) ([]uuid.UUID, error) {
	if len(scope.PortfolioIDs) > 0 {
		return scope.PortfolioIDs, nil
	}
	portfolios, err := portfolioRepository.ListByOwner(tx, scope.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve portfolios: %w", err)
	}
	return domain.PortfolioIDs(portfolios), nil
}

func tickersOf(transactions []domain.StockTransaction) []string {
	set := util.NewSet()
	for _, t := range transactions {
		set.Add(t.Ticker)
	}
	return set.List()
}

func dividendDates(dividends []domain.StockDividend) []time.Time {
	out := make([]time.Time, len(dividends))
	for i, d := range dividends {
		out[i] = d.Date
	}
	return out
}

func priceDates(prices []domain.StockPrice) []time.Time {
	out := make([]time.Time, len(prices))
	for i, p := range prices {
		out[i] = p.Date
	}
	return out
}
