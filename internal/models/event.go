package models

import (
	"strings"
	"time"

	"github.com/fund-split/backend/internal/allocation"
	"github.com/fund-split/backend/internal/types"
	"github.com/shopspring/decimal"
)

// normalize validates the amount of a ledger event, trims its note and
// defaults its date to now.
func normalize(amount decimal.Decimal, date *time.Time, note *string) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	*note = strings.TrimSpace(*note)

	if date.IsZero() {
		*date = time.Now().In(time.UTC)
	} else {
		*date = date.In(time.UTC)
	}

	return nil
}

// recordedIn is the month income counts towards: the month it was
// recorded in. The date of the income does not matter.
func recordedIn(createdAt time.Time) types.Month {
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return types.MonthOf(createdAt)
}

// validCategory checks an optional category.
func validCategory(c *allocation.Category) (*allocation.Category, error) {
	if c == nil || *c == "" {
		return nil, nil
	}

	parsed, err := allocation.ParseCategory(string(*c))
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}
