package cli

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"folio/internal/prices"
	"folio/internal/service"
	"folio/internal/util"
	"net/http"
	"strings"
	"time"

	"github.com/google/subcommands"
)

type syncPricesCmd struct {
	scopeFlags
	tickers  string
	schedule string
}

func (*syncPricesCmd) Name() string     { return "sync-prices" }
func (*syncPricesCmd) Synopsis() string { return "store the latest close of held tickers" }
func (*syncPricesCmd) Usage() string {
	return `folio sync-prices -owner <id> [-portfolios <id,...>] [-tickers <t,...>] [-schedule <cron>]

  Fetches the latest quote of every ticker held today, or of the
  given tickers, from Alpha Vantage and stores it. With -schedule
  it keeps running and syncs on the cron schedule, e.g. "30 22 * * 1-5".
`
}

func (c *syncPricesCmd) SetFlags(f *flag.FlagSet) {
	c.scopeFlags.register(f)
	f.StringVar(&c.tickers, "tickers", "", "comma separated tickers (defaults to current holdings)")
	f.StringVar(&c.schedule, "schedule", "", "cron schedule to keep syncing on")
}

func (c *syncPricesCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	tickers := splitTickers(c.tickers)
	var scope service.Scope
	if len(tickers) == 0 {
		var err error
		scope, err = c.scope()
		if err != nil {
			return usageError(err)
		}
	}

	a, err := newApp()
	if err != nil {
		return failure(err)
	}
	defer a.db.Close()
	if a.cfg.Prices.AlphaVantageKey == "" {
		return failure(errors.New("ALPHA_VANTAGE_API_KEY is required"))
	}
	updater := prices.PriceUpdater{
		Client: prices.AlphaVantageClient{
			HttpClient: &http.Client{Timeout: 30 * time.Second},
			ApiKey:     a.cfg.Prices.AlphaVantageKey,
			MaxRetries: a.cfg.Prices.MaxRetries,
			Logger:     a.logger,
		},
		Repository: a.prices,
		Logger:     a.logger,
	}

	sync := func() error {
		return a.transaction(func(tx *sql.Tx) error {
			toSync := tickers
			if len(toSync) == 0 {
				snapshot, err := a.snapshots.GetPortfolioSnapshot(tx, scope, util.StartOfDay(time.Now()))
				if err != nil {
					return err
				}
				toSync = snapshot.Tickers()
			}
			updated, err := updater.UpdatePrices(tx, toSync)
			for _, p := range updated {
				fmt.Printf("%s\t%s\t%s\n", p.Ticker, util.DateStr(p.Date), p.Value.String())
			}
			return err
		})
	}

	if c.schedule != "" {
		err = prices.Schedule(ctx, a.logger, c.schedule, sync)
	} else {
		err = sync()
	}
	if err != nil {
		return failure(err)
	}
	return subcommands.ExitSuccess
}

func splitTickers(s string) []string {
	out := []string{}
	for _, t := range strings.Split(s, ",") {
		t = strings.ToUpper(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
