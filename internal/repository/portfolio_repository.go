package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"folio/internal/db/models/postgres/public/model"
	. "folio/internal/db/models/postgres/public/table"
	"folio/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type PortfolioRepository interface {
	Get(tx *sql.Tx, portfolioID uuid.UUID) (*domain.Portfolio, error)
	ListByOwner(tx *sql.Tx, ownerID uuid.UUID) ([]domain.Portfolio, error)
}

type portfolioRepositoryHandler struct{}

func NewPortfolioRepository() PortfolioRepository {
	return portfolioRepositoryHandler{}
}

func portfolioFromDb(p model.Portfolio) domain.Portfolio {
	return domain.Portfolio{
		PortfolioID: p.PortfolioID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
	}
}

func (h portfolioRepositoryHandler) Get(tx *sql.Tx, portfolioID uuid.UUID) (*domain.Portfolio, error) {
	query := Portfolio.SELECT(Portfolio.AllColumns).
		WHERE(Portfolio.PortfolioID.EQ(postgres.UUID(portfolioID)))

	result := model.Portfolio{}
	err := query.Query(tx, &result)
	if err != nil && errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("portfolio %s not found", portfolioID)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get portfolio %s: %w", portfolioID, err)
	}

	out := portfolioFromDb(result)
	return &out, nil
}

func (h portfolioRepositoryHandler) ListByOwner(tx *sql.Tx, ownerID uuid.UUID) ([]domain.Portfolio, error) {
	query := Portfolio.SELECT(Portfolio.AllColumns).
		WHERE(Portfolio.OwnerID.EQ(postgres.UUID(ownerID))).
		ORDER_BY(Portfolio.CreatedAt.ASC())

	results := []model.Portfolio{}
	err := query.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios of %s: %w", ownerID, err)
	}

	out := make([]domain.Portfolio, len(results))
	for i, p := range results {
		out[i] = portfolioFromDb(p)
	}
	return out, nil
}
