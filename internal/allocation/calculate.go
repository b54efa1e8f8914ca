package allocation

import (
	"github.com/shopspring/decimal"
)

// Calculate returns the raw amounts for a single income event before caps
// are applied.
//
// Percentage categories receive value percent of the income. Fixed
// categories receive their value. Walking the categories in Order, every
// amount is clamped to the part of the income that earlier categories have
// not claimed yet, so the raw amounts never add up to more than the income.
// The same clamp is used for single events and monthly aggregates.
//
// Amounts are truncated to cents. Whatever is left is allocated to savings by
// the Redistributor.
//
// The income must be positive, callers reject other amounts before.
func Calculate(income decimal.Decimal, p Policy) Amounts {
	raw := NewAmounts()
	unclaimed := income

	for _, c := range Order {
		rule := p[c]

		var amount decimal.Decimal
		switch rule.Mode {
		case Fixed:
			amount = rule.Value
		default:
			amount = income.Mul(rule.Value).Div(hundred)
		}

		amount = cents(decimal.Min(amount, unclaimed))
		if amount.IsNegative() {
			amount = decimal.Zero
		}

		raw[c] = amount
		unclaimed = unclaimed.Sub(amount)
	}

	return raw
}

// CalculateAggregate sums the raw amounts of every income event.
func CalculateAggregate(incomes []decimal.Decimal, p Policy) Amounts {
	sum := NewAmounts()
	for _, income := range incomes {
		sum = sum.Add(Calculate(income, p))
	}
	return sum
}
