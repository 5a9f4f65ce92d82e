package domain

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/SscSPs/money_archetype/internal/apperrors"
)

// Currency represents one of the supported currencies.
// Values can only be obtained from the registry: the canonical accessors
// (PLN, USD, EUR) or the lookup functions.
type Currency struct {
	name        string // e.g., "Polish zloty"
	isoCode     string // e.g., "PLN"
	numericCode int    // e.g., 985
}

var (
	pln = Currency{name: "Polish zloty", isoCode: "PLN", numericCode: 985}
	usd = Currency{name: "United States dollar", isoCode: "USD", numericCode: 840}
	eur = Currency{name: "Euro", isoCode: "EUR", numericCode: 978}
)

// Both tables are filled at package init and only read afterwards.
var (
	currenciesByISOCode = map[string]Currency{
		pln.isoCode: pln,
		usd.isoCode: usd,
		eur.isoCode: eur,
	}
	currenciesByNumericCode = map[int]Currency{
		pln.numericCode: pln,
		usd.numericCode: usd,
		eur.numericCode: eur,
	}
)

// PLN returns the Polish zloty.
func PLN() Currency { return pln }

// USD returns the United States dollar.
func USD() Currency { return usd }

// EUR returns the Euro.
func EUR() Currency { return eur }

// Name returns the display name of the currency.
func (c Currency) Name() string { return c.name }

// ISOCode returns the upper-case ISO 4217 alphabetic code.
func (c Currency) ISOCode() string { return c.isoCode }

// NumericCode returns the ISO 4217 numeric code.
func (c Currency) NumericCode() int { return c.numericCode }

// IsZero reports whether c is the zero Currency, which is not a registry entry.
func (c Currency) IsZero() bool { return c == Currency{} }

// String returns the ISO code.
func (c Currency) String() string { return c.isoCode }

// LogValue implements slog.LogValuer.
func (c Currency) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("iso_code", c.isoCode),
		slog.Int("numeric_code", c.numericCode),
	)
}

// GetByISOCode resolves a currency by its alphabetic code, ignoring case.
func GetByISOCode(code string) (Currency, error) {
	currency, ok := lookupISOCode(code)
	if !ok {
		return Currency{}, fmt.Errorf("currency %q: %w", code, apperrors.ErrUnsupportedCurrency)
	}
	return currency, nil
}

// GetByNumericCode resolves a currency by its numeric code.
func GetByNumericCode(code int) (Currency, error) {
	currency, ok := lookupNumericCode(code)
	if !ok {
		return Currency{}, fmt.Errorf("currency %d: %w", code, apperrors.ErrUnsupportedCurrency)
	}
	return currency, nil
}

// IsValidISOCode reports whether code (in any casing) names a supported currency.
func IsValidISOCode(code string) bool {
	_, ok := lookupISOCode(code)
	return ok
}

// IsValidNumericCode reports whether code is the numeric code of a supported currency.
func IsValidNumericCode(code int) bool {
	_, ok := lookupNumericCode(code)
	return ok
}

// Currencies returns every supported currency ordered by ISO code.
// The slice is a copy; changing it does not affect the registry.
func Currencies() []Currency {
	list := make([]Currency, 0, len(currenciesByISOCode))
	for _, c := range currenciesByISOCode {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].isoCode < list[j].isoCode })
	return list
}

func lookupISOCode(code string) (Currency, bool) {
	currency, ok := currenciesByISOCode[strings.ToUpper(code)]
	return currency, ok
}

func lookupNumericCode(code int) (Currency, bool) {
	currency, ok := currenciesByNumericCode[code]
	return currency, ok
}

// isRegistered reports whether c is exactly one of the registry entries.
func isRegistered(c Currency) bool {
	registered, ok := currenciesByISOCode[c.isoCode]
	return ok && registered == c
}
