package cli

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"folio/internal/util"

	folio_errors "folio/internal"

	"github.com/google/subcommands"
)

type indicatorsCmd struct {
	scopeFlags
	date string
}

func (*indicatorsCmd) Name() string     { return "indicators" }
func (*indicatorsCmd) Synopsis() string { return "print headline portfolio figures" }
func (*indicatorsCmd) Usage() string {
	return `folio indicators -owner <id> [-portfolios <id,...>] [-d <date>]

  Prints AUM, cash, ROIC, concentration and distributions as of the date.
`
}

func (c *indicatorsCmd) SetFlags(f *flag.FlagSet) {
	c.scopeFlags.register(f)
	f.StringVar(&c.date, "d", "", "as of date (defaults to today)")
}

func (c *indicatorsCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	scope, err := c.scope()
	if err != nil {
		return usageError(err)
	}
	date, err := parseDate(c.date)
	if err != nil {
		return usageError(err)
	}

	a, err := newApp()
	if err != nil {
		return failure(err)
	}
	err = a.run(func(tx *sql.Tx) error {
		indicators, err := a.indicators.GetPortfolioIndicators(tx, scope, date)
		if err != nil {
			return err
		}
		util.Pprint(indicators)
		return nil
	})
	if errors.Is(err, folio_errors.ErrNoTransactionData) {
		fmt.Println(err)
		return subcommands.ExitSuccess
	}
	if err != nil {
		return failure(err)
	}
	return subcommands.ExitSuccess
}
