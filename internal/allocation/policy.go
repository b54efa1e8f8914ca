package allocation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// swagger:enum Mode
type Mode string

const (
	Percentage Mode = "percentage"
	Fixed      Mode = "fixed"
)

var (
	ErrModeInvalid           = errors.New("the allocation mode must be either percentage or fixed")
	ErrValueNegative         = errors.New("allocation values must not be negative")
	ErrCapNegative           = errors.New("allocation caps must not be negative")
	ErrPercentageTooHigh     = errors.New("the percentages of all categories must not add up to more than 100")
	ErrPolicyCategoryMissing = errors.New("the allocation policy must configure every category")
)

// Rule is the allocation rule for a single category.
type Rule struct {
	Mode  Mode
	Value decimal.Decimal
	Cap   decimal.NullDecimal // Monthly ceiling on the cumulative allocation, not on spending
}

// Policy configures how income is split. It must contain a Rule for every category.
type Policy map[Category]Rule

// DefaultPolicy is the policy every user starts with.
func DefaultPolicy() Policy {
	return Policy{
		FixedCosts:        {Mode: Percentage, Value: decimal.NewFromInt(50)},
		Savings:           {Mode: Percentage, Value: decimal.NewFromInt(20)},
		Investment:        {Mode: Percentage, Value: decimal.NewFromInt(10)},
		GuiltFreeSpending: {Mode: Percentage, Value: decimal.NewFromInt(20)},
	}
}

// Validate checks the policy. Percentages below 100 in total are valid,
// the shortfall is allocated to savings.
func (p Policy) Validate() error {
	percentages := decimal.Zero

	for _, c := range Order {
		rule, ok := p[c]
		if !ok {
			return fmt.Errorf("%w, %s is missing", ErrPolicyCategoryMissing, c)
		}

		if rule.Mode != Percentage && rule.Mode != Fixed {
			return fmt.Errorf("%w, got '%s' for %s", ErrModeInvalid, rule.Mode, c)
		}

		if rule.Value.IsNegative() {
			return fmt.Errorf("%w, %s is %s", ErrValueNegative, c, rule.Value)
		}

		if rule.Cap.Valid && rule.Cap.Decimal.IsNegative() {
			return fmt.Errorf("%w, %s is %s", ErrCapNegative, c, rule.Cap.Decimal)
		}

		if rule.Mode == Percentage {
			percentages = percentages.Add(rule.Value)
		}
	}

	if percentages.GreaterThan(hundred) {
		return fmt.Errorf("%w, they add up to %s", ErrPercentageTooHigh, percentages)
	}

	return nil
}

// Caps returns the caps of all capped categories.
func (p Policy) Caps() map[Category]decimal.Decimal {
	caps := make(map[Category]decimal.Decimal)
	for c, rule := range p {
		if rule.Cap.Valid {
			caps[c] = rule.Cap.Decimal
		}
	}
	return caps
}
