package accounting

import (
	"fmt"

	"github.com/SscSPs/money_archetype/internal/apperrors"
	"github.com/SscSPs/money_archetype/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Sum adds up items, which must all share one currency.
// An empty slice has no currency to tag the result with and is rejected.
func Sum(items []domain.Money) (domain.Money, error) {
	if len(items) == 0 {
		return domain.Money{}, apperrors.NewArgumentError("items", "empty")
	}
	total := items[0]
	if err := total.Validate(); err != nil {
		return domain.Money{}, fmt.Errorf("item 0: %w", err)
	}
	for i, item := range items[1:] {
		var err error
		total, err = total.Add(item)
		if err != nil {
			return domain.Money{}, fmt.Errorf("item %d: %w", i+1, err)
		}
	}
	return total, nil
}

// SumIn adds up items in the given currency. An empty slice sums to zero.
func SumIn(currency domain.Currency, items []domain.Money) (domain.Money, error) {
	total, err := domain.Create(decimal.Zero, currency.ISOCode())
	if err != nil {
		return domain.Money{}, err
	}
	for i, item := range items {
		total, err = total.Add(item)
		if err != nil {
			return domain.Money{}, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return total, nil
}

// Max returns the largest of items.
func Max(items []domain.Money) (domain.Money, error) {
	return pick(items, domain.Money.GreaterThan)
}

// Min returns the smallest of items.
func Min(items []domain.Money) (domain.Money, error) {
	return pick(items, domain.Money.LessThan)
}

func pick(items []domain.Money, better func(domain.Money, domain.Money) (bool, error)) (domain.Money, error) {
	if len(items) == 0 {
		return domain.Money{}, apperrors.NewArgumentError("items", "empty")
	}
	best := items[0]
	if err := best.Validate(); err != nil {
		return domain.Money{}, fmt.Errorf("item 0: %w", err)
	}
	for i, item := range items[1:] {
		ok, err := better(item, best)
		if err != nil {
			return domain.Money{}, fmt.Errorf("item %d: %w", i+1, err)
		}
		if ok {
			best = item
		}
	}
	return best, nil
}
