package domain

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/money_archetype/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Money is an immutable amount bound to a supported currency.
// Build it with Create or CreateFromNumeric; the zero Money is rejected by every operation.
type Money struct {
	_        [0]func() // not comparable with ==; use Equal
	amount   decimal.Decimal
	currency Currency
}

// New is the no-argument constructor. A Money always needs an explicit amount
// and currency, so it always fails with apperrors.ErrUnsupported.
func New() (Money, error) {
	return Money{}, fmt.Errorf("money requires an amount and a currency: %w", apperrors.ErrUnsupported)
}

// Create returns a Money for the given amount and ISO alphabetic currency code (any casing).
func Create(amount decimal.Decimal, currency string) (Money, error) {
	if err := validateInput(isoCurrencyInput{Currency: currency}); err != nil {
		return Money{}, err
	}
	return Money{amount: amount, currency: currenciesByISOCode[strings.ToUpper(currency)]}, nil
}

// CreateFromNumeric returns a Money for the given amount and ISO numeric currency code.
func CreateFromNumeric(amount decimal.Decimal, currency int) (Money, error) {
	if err := validateInput(numericCurrencyInput{Currency: currency}); err != nil {
		return Money{}, err
	}
	return Money{amount: amount, currency: currenciesByNumericCode[currency]}, nil
}

// IsCurrencyValid reports whether Create would accept the alphabetic code.
func IsCurrencyValid(currency string) bool { return IsValidISOCode(currency) }

// IsNumericCurrencyValid reports whether CreateFromNumeric would accept the numeric code.
func IsNumericCurrencyValid(currency int) bool { return IsValidNumericCode(currency) }

// HasCurrencyError is the negation of IsCurrencyValid.
func HasCurrencyError(currency string) bool { return !IsCurrencyValid(currency) }

// HasNumericCurrencyError is the negation of IsNumericCurrencyValid.
func HasNumericCurrencyError(currency int) bool { return !IsNumericCurrencyValid(currency) }

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal { return m.amount }

// Currency returns the currency of m.
func (m Money) Currency() Currency { return m.currency }

// Validate returns apperrors.ErrUnsupported if m was not built by a validated constructor.
func (m Money) Validate() error {
	if !isRegistered(m.currency) {
		return fmt.Errorf("money without a validated currency: %w", apperrors.ErrUnsupported)
	}
	return nil
}

// Equal reports whether m and other have the same currency and numerically equal amounts.
// The amount holds a *big.Int, so == would compare pointers; Money is made
// incomparable and Equal is the only equality.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.amount.IsZero() }

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool { return m.amount.IsNegative() }

// IsPositive reports whether the amount is above zero.
func (m Money) IsPositive() bool { return m.amount.IsPositive() }

// Neg returns m with the sign of the amount flipped.
func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg(), currency: m.currency}
}

// Add returns m + other. Both must share a currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Sub returns m - other. Both must share a currency.
func (m Money) Sub(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Sub(other.amount), currency: m.currency}, nil
}

// Mul returns m with its amount multiplied by factor.
func (m Money) Mul(factor int64) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(factor)), currency: m.currency}, nil
}

// Div returns m with its amount divided by divisor.
// Non-terminating quotients are rounded to decimal.DivisionPrecision places.
func (m Money) Div(divisor int64) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if divisor == 0 {
		return Money{}, fmt.Errorf("divide %s by 0: %w", m, apperrors.ErrDivisionByZero)
	}
	return Money{amount: m.amount.Div(decimal.NewFromInt(divisor)), currency: m.currency}, nil
}

// Cmp compares the amounts of m and other: -1 if m < other, 0 if equal, +1 if m > other.
func (m Money) Cmp(other Money) (int, error) {
	if err := m.sameCurrency(other); err != nil {
		return 0, err
	}
	return m.amount.Cmp(other.amount), nil
}

// GreaterThan reports whether m > other.
func (m Money) GreaterThan(other Money) (bool, error) {
	cmp, err := m.Cmp(other)
	return err == nil && cmp > 0, err
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) (bool, error) {
	cmp, err := m.Cmp(other)
	return err == nil && cmp < 0, err
}

// GreaterThanOrEqual reports whether m >= other.
func (m Money) GreaterThanOrEqual(other Money) (bool, error) {
	cmp, err := m.Cmp(other)
	return err == nil && cmp >= 0, err
}

// LessThanOrEqual reports whether m <= other.
func (m Money) LessThanOrEqual(other Money) (bool, error) {
	cmp, err := m.Cmp(other)
	return err == nil && cmp <= 0, err
}

// String renders m for debugging, e.g. "10.12 PLN".
func (m Money) String() string {
	return m.amount.String() + " " + m.currency.isoCode
}

// LogValue implements slog.LogValuer.
func (m Money) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("amount", m.amount.String()),
		slog.String("currency", m.currency.isoCode),
	)
}

func (m Money) sameCurrency(other Money) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if err := other.Validate(); err != nil {
		return err
	}
	if m.currency != other.currency {
		return apperrors.NewCurrencyMismatchError(m.currency.isoCode, other.currency.isoCode)
	}
	return nil
}
