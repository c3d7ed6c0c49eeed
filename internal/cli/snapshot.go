package cli

import (
	"context"
	"database/sql"
	"flag"
	"folio/internal/util"

	"github.com/google/subcommands"
)

type snapshotCmd struct {
	scopeFlags
	date string
}

func (*snapshotCmd) Name() string     { return "snapshot" }
func (*snapshotCmd) Synopsis() string { return "print the positions held on a date" }
func (*snapshotCmd) Usage() string {
	return `folio snapshot -owner <id> [-portfolios <id,...>] [-d <date>]

  Replays trades and splits and prints the positions held on the date.
`
}

func (c *snapshotCmd) SetFlags(f *flag.FlagSet) {
	c.scopeFlags.register(f)
	f.StringVar(&c.date, "d", "", "snapshot date (defaults to today)")
}

func (c *snapshotCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
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
		snapshot, err := a.snapshots.GetPortfolioSnapshot(tx, scope, date)
		if err != nil {
			return err
		}
		util.Pprint(map[string]interface{}{
			"date":                   util.DateStr(snapshot.Date),
			"positions":              snapshot.Positions,
			"assetsUnderManagement":  snapshot.AssetsUnderManagement(),
			"capitalInvested":        snapshot.CapitalInvested(),
			"dividendIncome":         snapshot.DividendIncome(),
			"sizeDistribution":       snapshot.SizeDistribution(),
			"sizeAtCostDistribution": snapshot.SizeAtCostDistribution(),
			"dividendDistribution":   snapshot.DividendDistribution(),
		})
		return nil
	})
	if err != nil {
		return failure(err)
	}
	return subcommands.ExitSuccess
}
