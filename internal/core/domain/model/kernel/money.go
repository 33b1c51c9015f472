package kernel

import (
	"errors"
	"fmt"
	"regexp"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of fractional digits every stored amount is
// rounded to. Amounts are rounded half-up on construction and after every
// arithmetic operation, so no rounding drift accumulates across additions.
const moneyScale = 2

var (
	// ErrMoneyIsNotConstructed is returned when using a zero-value Money.
	ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
		"money must be created via NewMoney, NewMoneyFromString, or NewZeroMoney")

	// ErrCurrencyMismatch is returned by arithmetic between two Money values
	// bound to different currencies. The system does not assume a single
	// currency; mixing currencies inside one order is a caller error.
	ErrCurrencyMismatch = errors.New("money currency mismatch")
)

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Money is a value object binding a decimal amount to an ISO-4217-style
// currency code. The amount is always stored pre-rounded to two fractional
// digits using round-half-up.
//
// Money is immutable; arithmetic returns new values. The zero value is
// invalid and must be created through a constructor.
type Money struct { //nolint:recvcheck //using for validation
	amount   decimal.Decimal
	currency string
	guard    guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount and a currency code.
// The amount is rounded to two fractional digits half-up. The currency must
// be a three-letter uppercase code.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	money := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		money.setAmount(amount),
		money.setCurrency(currency),
	); err != nil {
		return Money{}, err
	}

	return money, nil
}

// NewMoneyFromString parses a decimal string ("12.50") into a Money value.
// Used when amounts arrive from transport or persistence as text.
func NewMoneyFromString(amount string, currency string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}

	return NewMoney(d, currency)
}

// NewZeroMoney creates a zero amount bound to the given currency.
// An order's total starts as zero money; the currency it carries anchors
// the currency of every item added afterwards.
func NewZeroMoney(currency string) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

// Add returns the sum of two Money values.
// Returns ErrCurrencyMismatch if the currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}

	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.currency, other.currency)
	}

	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Multiply scales the amount by the given factor and re-rounds to two
// fractional digits.
func (m Money) Multiply(factor decimal.Decimal) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount.Mul(factor), m.currency)
}

// MultiplyInt scales the amount by an integer factor, such as an item
// quantity.
func (m Money) MultiplyInt(factor int) (Money, error) {
	return m.Multiply(decimal.NewFromInt(int64(factor)))
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsGreaterThan compares amounts. Currencies are assumed equal when
// comparing within one order; the comparison ignores the currency code.
func (m Money) IsGreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsEqual reports whether both amount and currency are equal.
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// Amount returns the decimal amount, scaled to two fractional digits.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// AmountFixed returns the amount as a fixed-point string with two decimals
// ("12.50"), the serialization contract for persistence and export.
func (m Money) AmountFixed() string {
	return m.amount.StringFixed(moneyScale)
}

// Currency returns the three-letter currency code.
func (m Money) Currency() string {
	return m.currency
}

// String implements fmt.Stringer, e.g. "12.50 EUR".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.AmountFixed(), m.currency)
}

// Validate checks that the Money value was created via a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m *Money) setAmount(amount decimal.Decimal) error {
	// decimal.Round rounds half away from zero, which is half-up for the
	// non-negative amounts used in pricing.
	m.amount = amount.Round(moneyScale)
	return nil
}

func (m *Money) setCurrency(currency string) error {
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}

	if !currencyCodePattern.MatchString(currency) {
		return errs.NewValueIsInvalidErrorWithCause(
			"currency",
			fmt.Errorf("%q is not a three-letter uppercase code", currency),
		)
	}

	m.currency = currency
	return nil
}
