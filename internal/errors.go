package folio_errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrNegativePosition means a transaction sold more shares
// than were held. It points at an ingestion problem upstream
// (duplicate or out of order transactions) and must not be
// clamped away.
type ErrNegativePosition struct {
	Ticker string
	Shares int64
	Date   time.Time
}

func (e ErrNegativePosition) Error() string {
	return fmt.Sprintf(
		"Negative position size is not allowed. %s would hold %d shares on %s",
		e.Ticker,
		e.Shares,
		e.Date.Format("2006-01-02"),
	)
}

type ErrUnknownCurrency struct {
	Currency string
}

func (e ErrUnknownCurrency) Error() string {
	return fmt.Sprintf("unknown currency %q", e.Currency)
}

// ErrNoTransactionData is returned by callers that need at least
// one position, when the snapshot as of the date is empty
var ErrNoTransactionData = errors.New("no transaction data before selected date")
