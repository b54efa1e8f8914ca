package allocation

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Amounts holds one monetary amount per category.
type Amounts map[Category]decimal.Decimal

// NewAmounts returns Amounts with every category set to zero.
func NewAmounts() Amounts {
	a := make(Amounts, len(Order))
	for _, c := range Order {
		a[c] = decimal.Zero
	}
	return a
}

// Total returns the sum over all categories.
func (a Amounts) Total() decimal.Decimal {
	total := decimal.Zero
	for _, c := range Order {
		total = total.Add(a[c])
	}
	return total
}

// Add returns the per-category sum of a and b.
func (a Amounts) Add(b Amounts) Amounts {
	sum := NewAmounts()
	for _, c := range Order {
		sum[c] = a[c].Add(b[c])
	}
	return sum
}

// Equal reports whether a and b hold the same value for every category.
func (a Amounts) Equal(b Amounts) bool {
	for _, c := range Order {
		if !a[c].Equal(b[c]) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the amounts with all four categories present.
func (a Amounts) MarshalJSON() ([]byte, error) {
	out := make(map[Category]decimal.Decimal, len(Order))
	for _, c := range Order {
		out[c] = a[c]
	}
	return json.Marshal(out)
}

var hundred = decimal.NewFromInt(100)

// cents truncates to whole cents. Truncating instead of rounding guarantees
// that the per-category amounts never sum up to more than the income.
func cents(d decimal.Decimal) decimal.Decimal {
	return d.Truncate(2)
}
