package kernel_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money with valid amount and currency", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("12.50"), "EUR")

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "12.50", m.AmountFixed())
		assert.Equal(t, "EUR", m.Currency())
	})

	t.Run("should round half up to two digits", func(t *testing.T) {
		testCases := []struct {
			amount   string
			expected string
		}{
			{"1.005", "1.01"},
			{"1.004", "1.00"},
			{"2.999", "3.00"},
			{"0.1", "0.10"},
			{"5", "5.00"},
		}

		for _, tc := range testCases {
			m, err := kernel.NewMoney(decimal.RequireFromString(tc.amount), "EUR")

			require.NoError(t, err)
			assert.Equal(t, tc.expected, m.AmountFixed(), "amount %s", tc.amount)
		}
	})

	t.Run("should reject empty currency", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(1), "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject malformed currency codes", func(t *testing.T) {
		for _, currency := range []string{"eur", "EURO", "E1R", "EU"} {
			_, err := kernel.NewMoney(decimal.NewFromInt(1), currency)

			require.Error(t, err, "currency %q", currency)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("should parse decimal string", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("7.25", "USD")

		require.NoError(t, err)
		assert.Equal(t, "7.25 USD", m.String())
	})

	t.Run("should reject malformed amount", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("seven", "USD")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("should add amounts with equal currency", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("10.00", "EUR")
		b, _ := kernel.NewMoneyFromString("2.50", "EUR")

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.Equal(t, "12.50", sum.AmountFixed())
		assert.Equal(t, "EUR", sum.Currency())
	})

	t.Run("should be exact across repeated additions", func(t *testing.T) {
		sum, _ := kernel.NewZeroMoney("EUR")
		cent, _ := kernel.NewMoneyFromString("0.10", "EUR")

		var err error
		for range 100 {
			sum, err = sum.Add(cent)
			require.NoError(t, err)
		}

		assert.Equal(t, "10.00", sum.AmountFixed())
	})

	t.Run("should reject currency mismatch", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("10.00", "EUR")
		b, _ := kernel.NewMoneyFromString("2.50", "USD")

		_, err := a.Add(b)

		require.Error(t, err)
		require.ErrorIs(t, err, kernel.ErrCurrencyMismatch)
	})

	t.Run("should reject zero-value money", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("10.00", "EUR")
		var b kernel.Money

		_, err := a.Add(b)

		require.Error(t, err)
	})
}

func TestMoney_Multiply(t *testing.T) {
	t.Run("should multiply by integer quantity", func(t *testing.T) {
		unit, _ := kernel.NewMoneyFromString("5.00", "EUR")

		subtotal, err := unit.MultiplyInt(3)

		require.NoError(t, err)
		assert.Equal(t, "15.00", subtotal.AmountFixed())
	})

	t.Run("should re-round after decimal factor", func(t *testing.T) {
		unit, _ := kernel.NewMoneyFromString("3.33", "EUR")

		scaled, err := unit.Multiply(decimal.RequireFromString("1.5"))

		require.NoError(t, err)
		assert.Equal(t, "5.00", scaled.AmountFixed()) // 4.995 rounds half up
	})
}

func TestMoney_Comparisons(t *testing.T) {
	zero, _ := kernel.NewZeroMoney("EUR")
	small, _ := kernel.NewMoneyFromString("1.00", "EUR")
	large, _ := kernel.NewMoneyFromString("2.00", "EUR")

	t.Run("IsZero", func(t *testing.T) {
		assert.True(t, zero.IsZero())
		assert.False(t, small.IsZero())
	})

	t.Run("IsGreaterThan", func(t *testing.T) {
		assert.True(t, large.IsGreaterThan(small))
		assert.False(t, small.IsGreaterThan(large))
		assert.False(t, small.IsGreaterThan(small))
	})

	t.Run("IsEqual", func(t *testing.T) {
		other, _ := kernel.NewMoneyFromString("1.00", "EUR")
		otherCurrency, _ := kernel.NewMoneyFromString("1.00", "USD")

		assert.True(t, small.IsEqual(other))
		assert.False(t, small.IsEqual(large))
		assert.False(t, small.IsEqual(otherCurrency))
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}
