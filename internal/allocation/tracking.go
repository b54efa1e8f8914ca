package allocation

import (
	"github.com/shopspring/decimal"
)

// Expense is an expense as seen by the category tracking.
type Expense struct {
	Amount   decimal.Decimal
	Category *Category
}

// Transfer is a transfer between two accounts as seen by the category tracking.
type Transfer struct {
	Amount   decimal.Decimal
	Category *Category
}

// Spent returns the amount spent per category.
//
// For the investment category, only investments count. Expenses tagged as
// investment are ignored. For all other categories, the expenses tagged with
// the category are summed up.
func Spent(expenses []Expense, investments []decimal.Decimal) Amounts {
	spent := NewAmounts()

	for _, e := range expenses {
		if e.Category == nil || *e.Category == Investment || !e.Category.Valid() {
			continue
		}
		spent[*e.Category] = spent[*e.Category].Add(e.Amount)
	}

	spent[Investment] = decimal.Sum(decimal.Zero, investments...)
	return spent
}

// Transferred returns the amount transferred per category.
func Transferred(transfers []Transfer) Amounts {
	transferred := NewAmounts()

	for _, t := range transfers {
		if t.Category == nil || !t.Category.Valid() {
			continue
		}
		transferred[*t.Category] = transferred[*t.Category].Add(t.Amount)
	}

	return transferred
}

// Carryover splits the net of a month into a credit for the next month if it
// is positive and a debit if it is negative. Only the directly preceding
// month is ever carried over.
func Carryover(allocated, spent decimal.Decimal) (carryover, overspending decimal.Decimal) {
	net := allocated.Sub(spent)
	if net.IsPositive() {
		return net, decimal.Zero
	}
	return decimal.Zero, net.Neg()
}

// Snapshot is the state of a category in a month.
type Snapshot struct {
	Allocated    decimal.Decimal `json:"allocated" example:"750"`    // Allocated this month
	Spent        decimal.Decimal `json:"spent" example:"512.30"`     // Spent this month
	Transferred  decimal.Decimal `json:"transferred" example:"100"`  // Transferred this month
	Carryover    decimal.Decimal `json:"carryover" example:"42.10"`  // Surplus of the previous month
	Overspending decimal.Decimal `json:"overspending" example:"0"`   // Deficit of the previous month
	Available    decimal.Decimal `json:"available" example:"792.10"` // allocated + carryover - overspending
	Remaining    decimal.Decimal `json:"remaining" example:"179.80"` // What is left, never negative
	Overspent    decimal.Decimal `json:"overspent" example:"0"`      // How far the category is overspent this month
}

// Figures are the inputs to compute a Snapshot.
type Figures struct {
	Allocated         decimal.Decimal
	Spent             decimal.Decimal
	Transferred       decimal.Decimal
	PreviousAllocated decimal.Decimal
	PreviousSpent     decimal.Decimal
}

// Track computes the snapshot of category c.
//
// Transfers consume the funds of all categories but investment. For
// investment, only recorded investments reduce what remains.
func Track(c Category, f Figures) Snapshot {
	carryover, overspending := Carryover(f.PreviousAllocated, f.PreviousSpent)
	available := f.Allocated.Add(carryover).Sub(overspending)

	remaining := available.Sub(f.Spent)
	if c != Investment {
		remaining = remaining.Sub(f.Transferred)
	}

	overspent := decimal.Zero
	if remaining.IsNegative() {
		overspent = remaining.Neg()
		remaining = decimal.Zero
	}

	return Snapshot{
		Allocated:    f.Allocated.Round(2),
		Spent:        f.Spent.Round(2),
		Transferred:  f.Transferred.Round(2),
		Carryover:    carryover.Round(2),
		Overspending: overspending.Round(2),
		Available:    available.Round(2),
		Remaining:    remaining.Round(2),
		Overspent:    overspent.Round(2),
	}
}

// Point is one month of a category's history.
type Point struct {
	Month     string          `json:"month" example:"Jan 2026"`
	Allocated decimal.Decimal `json:"allocated" example:"750"`
	Spent     decimal.Decimal `json:"spent" example:"512.30"`
	Remaining decimal.Decimal `json:"remaining" example:"237.70"` // allocated - spent, negative when overspent
}

// Project returns the history point of every category for one month.
func Project(label string, allocated, spent Amounts) map[Category]Point {
	points := make(map[Category]Point, len(Order))
	for _, c := range Order {
		points[c] = Point{
			Month:     label,
			Allocated: allocated[c].Round(2),
			Spent:     spent[c].Round(2),
			Remaining: allocated[c].Sub(spent[c]).Round(2),
		}
	}
	return points
}
