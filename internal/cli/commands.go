package cli

import (
	"fmt"
	"os"

	"github.com/google/subcommands"
)

var Commands = []subcommands.Command{
	&snapshotCmd{},
	&cashCmd{},
	&performanceCmd{},
	&indicatorsCmd{},
	&syncPricesCmd{},
}

func failure(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

func usageError(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitUsageError
}
