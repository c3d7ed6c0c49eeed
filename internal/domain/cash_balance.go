package domain

import (
	folio_errors "folio/internal"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	Currency_USD Currency = "USD"
	Currency_EUR Currency = "EUR"
	Currency_HUF Currency = "HUF"
)

var Currencies = []Currency{Currency_USD, Currency_EUR, Currency_HUF}

func ParseCurrency(s string) (Currency, error) {
	for _, c := range Currencies {
		if string(c) == s {
			return c, nil
		}
	}
	return "", folio_errors.ErrUnknownCurrency{Currency: s}
}

func (c Currency) String() string { return string(c) }

// CashBalance holds one balance per supported currency.
// It is a value type; With and Add return updated copies
type CashBalance struct {
	USD decimal.Decimal
	EUR decimal.Decimal
	HUF decimal.Decimal
}

func (c CashBalance) Get(currency Currency) (decimal.Decimal, error) {
	switch currency {
	case Currency_USD:
		return c.USD, nil
	case Currency_EUR:
		return c.EUR, nil
	case Currency_HUF:
		return c.HUF, nil
	}
	return decimal.Zero, folio_errors.ErrUnknownCurrency{Currency: string(currency)}
}

func (c CashBalance) With(currency Currency, amount decimal.Decimal) (CashBalance, error) {
	switch currency {
	case Currency_USD:
		c.USD = amount
	case Currency_EUR:
		c.EUR = amount
	case Currency_HUF:
		c.HUF = amount
	default:
		return c, folio_errors.ErrUnknownCurrency{Currency: string(currency)}
	}
	return c, nil
}

func (c CashBalance) Add(currency Currency, amount decimal.Decimal) (CashBalance, error) {
	current, err := c.Get(currency)
	if err != nil {
		return c, err
	}
	return c.With(currency, current.Add(amount))
}

// Plus adds two balances component-wise
func (c CashBalance) Plus(o CashBalance) CashBalance {
	return CashBalance{
		USD: c.USD.Add(o.USD),
		EUR: c.EUR.Add(o.EUR),
		HUF: c.HUF.Add(o.HUF),
	}
}

func (c CashBalance) Equal(o CashBalance) bool {
	return c.USD.Equal(o.USD) && c.EUR.Equal(o.EUR) && c.HUF.Equal(o.HUF)
}

func (c CashBalance) IsZero() bool {
	return c.USD.IsZero() && c.EUR.IsZero() && c.HUF.IsZero()
}

func (c CashBalance) Copy() CashBalance {
	return c
}

// FxRates are quoted the usual way: USD/HUF is the
// number of forints per dollar, EUR/USD the number
// of dollars per euro
type FxRates struct {
	UsdHuf decimal.Decimal
	EurUsd decimal.Decimal
}

// ToUSD collapses a balance into a single dollar figure
func (r FxRates) ToUSD(balance CashBalance) decimal.Decimal {
	out := balance.USD.Add(balance.EUR.Mul(r.EurUsd))
	if !r.UsdHuf.IsZero() {
		out = out.Add(balance.HUF.Div(r.UsdHuf))
	}
	return out
}

func (r FxRates) Convert(currency Currency, amount decimal.Decimal) (decimal.Decimal, error) {
	b, err := CashBalance{}.With(currency, amount)
	if err != nil {
		return decimal.Zero, err
	}
	return r.ToUSD(b), nil
}
