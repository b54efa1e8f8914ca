package allocation

import (
	"github.com/shopspring/decimal"
)

// Income is an income event as seen by the allocation.
type Income struct {
	Amount                decimal.Decimal
	ExcludeFromAllocation bool // Deposits to cash accounts count as income, but are not allocated
}

// MonthBalances are the category balances of one month.
type MonthBalances struct {
	Balances       Amounts         // Allocated per category
	Income         decimal.Decimal // All income of the month, including excluded events
	Allocated      decimal.Decimal // Income that was allocated. Always equal to Balances.Total()
	SavingsOverCap decimal.Decimal // How far savings is above its cap
}

// ComputeMonthBalances derives the category balances of a month from all of
// its income events.
//
// The raw amounts of all allocated events are summed up first and caps are
// applied to the sums, not to single events. A later event can therefore
// reduce what an earlier event was allowed to claim, which is why balances
// are always derived from the complete month and never updated incrementally.
func ComputeMonthBalances(incomes []Income, p Policy) MonthBalances {
	total := decimal.Zero
	allocatable := make([]decimal.Decimal, 0, len(incomes))

	for _, i := range incomes {
		total = total.Add(i.Amount)
		if !i.ExcludeFromAllocation {
			allocatable = append(allocatable, i.Amount)
		}
	}

	allocated := decimal.Sum(decimal.Zero, allocatable...)
	res := DefaultRedistributor.Apply(CalculateAggregate(allocatable, p), NewAmounts(), p.Caps(), allocated)

	return MonthBalances{
		Balances:       res.Amounts,
		Income:         total,
		Allocated:      allocated,
		SavingsOverCap: res.SinkOverCap,
	}
}
