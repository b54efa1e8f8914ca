package models

import (
	"time"

	"github.com/fund-split/backend/internal/allocation"
	"github.com/fund-split/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryBalance is the cached allocation of a category in a month.
//
// The rows of a month are overwritten whenever the month is recomputed and
// are never updated incrementally.
type CategoryBalance struct {
	UserID    uuid.UUID           `gorm:"primaryKey"`
	User      User                `json:"-"`
	Category  allocation.Category `gorm:"primaryKey"`
	Month     types.Month         `gorm:"primaryKey"`
	Balance   decimal.Decimal     `gorm:"type:DECIMAL(20,8)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CategoryBalance) Self() string {
	return "Category Balance"
}

// balancesOf returns the rows for the balances of a month.
func balancesOf(userID uuid.UUID, month types.Month, balances allocation.Amounts) []CategoryBalance {
	rows := make([]CategoryBalance, 0, len(allocation.Order))
	for _, c := range allocation.Order {
		rows = append(rows, CategoryBalance{
			UserID:   userID,
			Category: c,
			Month:    month,
			Balance:  balances[c],
		})
	}
	return rows
}
