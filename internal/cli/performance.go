package cli

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"folio/internal/util"

	"github.com/google/subcommands"
)

type performanceCmd struct {
	scopeFlags
	from   string
	to     string
	step   int
	ticker string
}

func (*performanceCmd) Name() string     { return "performance" }
func (*performanceCmd) Synopsis() string { return "print period over period performance" }
func (*performanceCmd) Usage() string {
	return `folio performance -owner <id> -from <date> [-to <date>] [-step <days>] [-ticker <ticker>]

  Splits the range into periods of -step days and prints the return of
  each period and the time weighted return over all of them. With
  -ticker only that position is measured.
`
}

func (c *performanceCmd) SetFlags(f *flag.FlagSet) {
	c.scopeFlags.register(f)
	f.StringVar(&c.from, "from", "", "start of the first period")
	f.StringVar(&c.to, "to", "", "end of the last period (defaults to today)")
	f.IntVar(&c.step, "step", 30, "days per period")
	f.StringVar(&c.ticker, "ticker", "", "measure a single position")
}

func (c *performanceCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	scope, err := c.scope()
	if err != nil {
		return usageError(err)
	}
	if c.from == "" {
		return usageError(fmt.Errorf("-from is required"))
	}
	from, err := util.ParseDate(c.from)
	if err != nil {
		return usageError(err)
	}
	to, err := parseDate(c.to)
	if err != nil {
		return usageError(err)
	}
	dates, err := dateSeries(from, to, c.step)
	if err != nil {
		return usageError(err)
	}

	a, err := newApp()
	if err != nil {
		return failure(err)
	}
	err = a.run(func(tx *sql.Tx) error {
		if c.ticker != "" {
			periods, err := a.performance.GetPositionPerformance(tx, scope, c.ticker, dates)
			if err != nil {
				return err
			}
			util.Pprint(periods)
			return nil
		}

		summary, err := a.performance.GetPerformanceSummary(tx, scope, dates)
		if err != nil {
			return err
		}
		util.Pprint(summary)
		return nil
	})
	if err != nil {
		return failure(err)
	}
	return subcommands.ExitSuccess
}
