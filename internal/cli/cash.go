package cli

import (
	"context"
	"database/sql"
	"flag"
	"folio/internal/util"

	"github.com/google/subcommands"
)

type cashCmd struct {
	scopeFlags
	from     string
	to       string
	step     int
	invested bool
}

func (*cashCmd) Name() string     { return "cash" }
func (*cashCmd) Synopsis() string { return "print cash balances or invested capital over time" }
func (*cashCmd) Usage() string {
	return `folio cash -owner <id> [-portfolios <id,...>] [-from <date>] [-to <date>] [-step <days>] [-invested]

  Prints the USD, EUR and HUF balance on every date of the series.
  Without -from only the balance on -to is printed.
`
}

func (c *cashCmd) SetFlags(f *flag.FlagSet) {
	c.scopeFlags.register(f)
	f.StringVar(&c.from, "from", "", "first date of the series")
	f.StringVar(&c.to, "to", "", "last date of the series (defaults to today)")
	f.IntVar(&c.step, "step", 30, "days between dates")
	f.BoolVar(&c.invested, "invested", false, "print invested capital instead of cash")
}

func (c *cashCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	scope, err := c.scope()
	if err != nil {
		return usageError(err)
	}
	to, err := parseDate(c.to)
	if err != nil {
		return usageError(err)
	}

	a, err := newApp()
	if err != nil {
		return failure(err)
	}

	if c.from == "" {
		err = a.run(func(tx *sql.Tx) error {
			get := a.cash.GetPortfolioCashBalanceSnapshot
			if c.invested {
				get = a.cash.GetInvestedCapitalSnapshot
			}
			balance, err := get(tx, scope, to)
			if err != nil {
				return err
			}
			util.Pprint(map[string]interface{}{
				"date":    util.DateStr(to),
				"balance": balance,
				"usd":     a.cash.BalanceToUsd(balance),
			})
			return nil
		})
		if err != nil {
			return failure(err)
		}
		return subcommands.ExitSuccess
	}

	from, err := util.ParseDate(c.from)
	if err != nil {
		return usageError(err)
	}
	dates, err := dateSeries(from, to, c.step)
	if err != nil {
		return usageError(err)
	}

	err = a.run(func(tx *sql.Tx) error {
		get := a.cash.GetPortfolioCashBalanceSeries
		if c.invested {
			get = a.cash.GetInvestedCapital
		}
		series, err := get(tx, scope, dates)
		if err != nil {
			return err
		}
		util.Pprint(series)
		return nil
	})
	if err != nil {
		return failure(err)
	}
	return subcommands.ExitSuccess
}
