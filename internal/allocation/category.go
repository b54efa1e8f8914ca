// Package allocation splits income into the four budget categories and
// derives the monthly figures tracked per category.
//
// Everything in this package is pure arithmetic on decimals. Reading and
// writing ledgers and cached balances is done by the tracking package.
package allocation

import (
	"errors"
	"fmt"
)

// swagger:enum Category
type Category string

const (
	FixedCosts        Category = "fixedCosts"
	Investment        Category = "investment"
	GuiltFreeSpending Category = "guiltFreeSpending"
	Savings           Category = "savings"
)

// Order is the order in which categories are allocated and in which capped
// excess is redistributed. The last category is the sink for excess and
// rounding remainders.
var Order = []Category{FixedCosts, Investment, GuiltFreeSpending, Savings}

var ErrCategoryInvalid = errors.New("the category must be one of fixedCosts, investment, guiltFreeSpending, savings")

// ParseCategory returns the Category for a string.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w, got '%s'", ErrCategoryInvalid, s)
	}
	return c, nil
}

// Valid reports if c is one of the four budget categories.
func (c Category) Valid() bool {
	switch c {
	case FixedCosts, Investment, GuiltFreeSpending, Savings:
		return true
	}
	return false
}
