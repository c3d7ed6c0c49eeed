package domain

import (
	"testing"

	folio_errors "folio/internal"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func TestCashBalance(t *testing.T) {
	t.Run("index by currency", func(t *testing.T) {
		b, err := CashBalance{}.Add(Currency_HUF, dec(1000))
		require.NoError(t, err)
		b, err = b.Add(Currency_USD, dec(100))
		require.NoError(t, err)

		huf, err := b.Get(Currency_HUF)
		require.NoError(t, err)
		require.True(t, huf.Equal(dec(1000)))
		require.True(t, b.Equal(CashBalance{HUF: dec(1000), USD: dec(100), EUR: decimal.Zero}))
	})

	t.Run("unknown currency", func(t *testing.T) {
		_, err := CashBalance{}.Get(Currency("GBP"))
		require.ErrorAs(t, err, &folio_errors.ErrUnknownCurrency{})

		_, err = CashBalance{}.With(Currency("GBP"), dec(1))
		require.ErrorAs(t, err, &folio_errors.ErrUnknownCurrency{})

		_, err = ParseCurrency("gbp")
		require.Error(t, err)
	})

	t.Run("structural equality", func(t *testing.T) {
		a := CashBalance{USD: dec(10), EUR: dec(1.5)}
		b := CashBalance{USD: decimal.RequireFromString("10.00"), EUR: dec(1.5), HUF: decimal.Zero}
		require.True(t, a.Equal(b))
		require.False(t, a.Equal(CashBalance{USD: dec(10)}))
	})

	t.Run("setting does not alias", func(t *testing.T) {
		a := CashBalance{USD: dec(10)}
		b, err := a.With(Currency_USD, dec(20))
		require.NoError(t, err)
		require.True(t, a.USD.Equal(dec(10)))
		require.True(t, b.USD.Equal(dec(20)))
	})
}

func TestFxRates_ToUSD(t *testing.T) {
	rates := FxRates{UsdHuf: dec(400), EurUsd: dec(1.1)}
	usd := rates.ToUSD(CashBalance{USD: dec(100), EUR: dec(10), HUF: dec(4000)})
	require.True(t, usd.Equal(dec(121)), usd.String())

	converted, err := rates.Convert(Currency_HUF, dec(800))
	require.NoError(t, err)
	require.True(t, converted.Equal(dec(2)))
}
