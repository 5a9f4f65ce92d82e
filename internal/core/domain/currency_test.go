package domain_test

import (
	"log/slog"
	"sync"
	"testing"

	"github.com/SscSPs/money_archetype/internal/apperrors"
	"github.com/SscSPs/money_archetype/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByISOCode(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		want    domain.Currency
		wantErr bool
	}{
		{name: "lower case", code: "pln", want: domain.PLN()},
		{name: "mixed case", code: "Pln", want: domain.PLN()},
		{name: "upper case", code: "PLN", want: domain.PLN()},
		{name: "dollar", code: "usd", want: domain.USD()},
		{name: "euro", code: "EUR", want: domain.EUR()},
		{name: "too long", code: "PLNN", wantErr: true},
		{name: "unknown", code: "aaa", wantErr: true},
		{name: "real but unsupported", code: "GBP", wantErr: true},
		{name: "empty", code: "", wantErr: true},
		{name: "whitespace", code: " ", wantErr: true},
		{name: "padded", code: " PLN", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.GetByISOCode(tt.code)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrUnsupportedCurrency)
				assert.True(t, got.IsZero())
				assert.False(t, domain.IsValidISOCode(tt.code))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, domain.IsValidISOCode(tt.code))
		})
	}
}

func TestGetByNumericCode(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		want    domain.Currency
		wantErr bool
	}{
		{name: "zloty", code: 985, want: domain.PLN()},
		{name: "dollar", code: 840, want: domain.USD()},
		{name: "euro", code: 978, want: domain.EUR()},
		{name: "negative", code: -1, wantErr: true},
		{name: "zero", code: 0, wantErr: true},
		{name: "one", code: 1, wantErr: true},
		{name: "unassigned", code: 999, wantErr: true},
		{name: "real but unsupported", code: 826, wantErr: true},
		{name: "four digits", code: 9850, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.GetByNumericCode(tt.code)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrUnsupportedCurrency)
				assert.False(t, domain.IsValidNumericCode(tt.code))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, domain.IsValidNumericCode(tt.code))
		})
	}
}

func TestCanonicalCurrencies(t *testing.T) {
	tests := []struct {
		currency    domain.Currency
		name        string
		isoCode     string
		numericCode int
	}{
		{domain.PLN(), "Polish zloty", "PLN", 985},
		{domain.USD(), "United States dollar", "USD", 840},
		{domain.EUR(), "Euro", "EUR", 978},
	}

	for _, tt := range tests {
		t.Run(tt.isoCode, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.currency.Name())
			assert.Equal(t, tt.isoCode, tt.currency.ISOCode())
			assert.Equal(t, tt.numericCode, tt.currency.NumericCode())
			assert.Equal(t, tt.isoCode, tt.currency.String())
			assert.False(t, tt.currency.IsZero())

			byISO, err := domain.GetByISOCode(tt.isoCode)
			require.NoError(t, err)
			byNumeric, err := domain.GetByNumericCode(tt.numericCode)
			require.NoError(t, err)
			assert.True(t, byISO == tt.currency)
			assert.True(t, byNumeric == tt.currency)
		})
	}

	assert.NotEqual(t, domain.PLN(), domain.USD())
	assert.True(t, domain.Currency{}.IsZero())
}

func TestCurrencies(t *testing.T) {
	list := domain.Currencies()
	assert.Equal(t, []domain.Currency{domain.EUR(), domain.PLN(), domain.USD()}, list)

	list[0] = domain.USD()
	assert.Equal(t, domain.EUR(), domain.Currencies()[0])
}

func TestCurrency_LogValue(t *testing.T) {
	attrs := domain.EUR().LogValue().Group()
	require.Len(t, attrs, 2)
	assert.Equal(t, "iso_code", attrs[0].Key)
	assert.Equal(t, "EUR", attrs[0].Value.String())
	assert.Equal(t, "numeric_code", attrs[1].Key)
	assert.Equal(t, int64(978), attrs[1].Value.Int64())
	assert.Equal(t, slog.KindGroup, domain.EUR().LogValue().Kind())
}

func TestCurrencyLookup_ConcurrentReaders(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c, err := domain.GetByISOCode("eur")
				assert.NoError(t, err)
				assert.Equal(t, domain.EUR(), c)
				assert.True(t, domain.IsValidNumericCode(840))
			}
		}()
	}
	wg.Wait()
}
