package cli

import (
	"database/sql"
	"flag"
	"fmt"
	"folio/internal/config"
	db_utils "folio/internal/db/utils"
	"folio/internal/repository"
	"folio/internal/service"
	"folio/internal/util"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type app struct {
	db     *sql.DB
	cfg    *config.Config
	logger zerolog.Logger

	snapshots   service.PortfolioSnapshotService
	cash        service.CashBalanceService
	performance service.PerformanceService
	indicators  service.IndicatorService
	prices      repository.StockPriceRepository
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := util.NewLogger(cfg.Log.Level, cfg.Log.Pretty)

	dbConn, err := db_utils.New(cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	rates := cfg.FxRates()
	portfolioRepository := repository.NewPortfolioRepository()
	stockTransactionRepository := repository.NewStockTransactionRepository()
	stockSplitRepository := repository.NewStockSplitRepository()
	stockPriceRepository := repository.NewStockPriceRepository()
	stockDividendRepository := repository.NewStockDividendRepository()
	cashTransactionRepository := repository.NewCashTransactionRepository()
	forexTransactionRepository := repository.NewForexTransactionRepository()
	stockRepository := repository.NewStockRepository()

	snapshots := service.NewPortfolioSnapshotService(
		logger,
		portfolioRepository,
		stockTransactionRepository,
		stockSplitRepository,
		stockPriceRepository,
		stockDividendRepository,
	)
	cash := service.NewCashBalanceService(
		logger,
		rates,
		portfolioRepository,
		cashTransactionRepository,
		forexTransactionRepository,
		stockTransactionRepository,
		stockDividendRepository,
		snapshots,
	)

	return &app{
		db:        dbConn,
		cfg:       cfg,
		logger:    logger,
		snapshots: snapshots,
		cash:      cash,
		prices:    stockPriceRepository,
		performance: service.NewPerformanceService(
			logger,
			rates,
			portfolioRepository,
			stockTransactionRepository,
			stockSplitRepository,
			stockPriceRepository,
			stockDividendRepository,
			cashTransactionRepository,
			forexTransactionRepository,
		),
		indicators: service.NewIndicatorService(
			logger,
			rates,
			portfolioRepository,
			stockTransactionRepository,
			cashTransactionRepository,
			stockRepository,
			snapshots,
			cash,
		),
	}, nil
}

func (a *app) run(fn func(tx *sql.Tx) error) error {
	defer a.db.Close()
	return db_utils.ReadOnly(a.db, fn)
}

// transaction commits fn's writes and leaves the db open so it can
// be called repeatedly
func (a *app) transaction(fn func(tx *sql.Tx) error) error {
	return db_utils.Transaction(a.db, fn)
}

type scopeFlags struct {
	owner      string
	portfolios string
}

func (s *scopeFlags) register(f *flag.FlagSet) {
	f.StringVar(&s.owner, "owner", "", "owner id")
	f.StringVar(&s.portfolios, "portfolios", "", "comma separated portfolio ids (defaults to all of the owner's)")
}

func (s scopeFlags) scope() (service.Scope, error) {
	ownerID, err := uuid.Parse(s.owner)
	if err != nil {
		return service.Scope{}, fmt.Errorf("invalid owner id %q: %w", s.owner, err)
	}
	out := service.Scope{OwnerID: ownerID}
	for _, raw := range strings.Split(s.portfolios, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return service.Scope{}, fmt.Errorf("invalid portfolio id %q: %w", raw, err)
		}
		out.PortfolioIDs = append(out.PortfolioIDs, id)
	}
	return out, nil
}

// parseDate reads a YYYY-MM-DD date, today when empty
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return util.StartOfDay(time.Now()), nil
	}
	return util.ParseDate(s)
}

// dateSeries steps from `from` to `to` every `step` days. `to` is
// always the last date, even off the step
func dateSeries(from, to time.Time, step int) ([]time.Time, error) {
	if step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %d", step)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%s is before %s", util.DateStr(to), util.DateStr(from))
	}
	out := []time.Time{}
	for d := from; d.Before(to); d = d.AddDate(0, 0, step) {
		out = append(out, d)
	}
	return append(out, to), nil
}
