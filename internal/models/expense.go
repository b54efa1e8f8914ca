package models

import (
	"time"

	"github.com/fund-split/backend/internal/allocation"
	"github.com/fund-split/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is money spent from an account, optionally tagged with a category.
type Expense struct {
	DefaultModel
	User      User      `json:"-"`
	UserID    uuid.UUID `gorm:"index:idx_expense_user_month"`
	Account   Account   `json:"-"`
	AccountID *uuid.UUID
	Amount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Category  *allocation.Category
	Date      time.Time
	Month     types.Month `gorm:"index:idx_expense_user_month"`
	Note      string
}

func (Expense) Self() string {
	return "Expense"
}

func (e *Expense) AfterFind(tx *gorm.DB) error {
	err := e.DefaultModel.AfterFind(tx)
	e.Date = e.Date.In(time.UTC)
	return err
}

func (e *Expense) BeforeSave(_ *gorm.DB) (err error) {
	if e.AccountID != nil && *e.AccountID == uuid.Nil {
		e.AccountID = nil
	}

	e.Category, err = validCategory(e.Category)
	if err != nil {
		return err
	}

	err = normalize(e.Amount, &e.Date, &e.Note)
	if err != nil {
		return err
	}

	// Spending counts towards the month it happened in
	e.Month = types.MonthOf(e.Date)
	return nil
}

// BeforeCreate verifies references and sets the category from the
// user's match rules when none is given.
func (e *Expense) BeforeCreate(tx *gorm.DB) (err error) {
	_ = e.DefaultModel.BeforeCreate(tx)

	err = userExists(tx, e.UserID)
	if err != nil {
		return err
	}

	if e.AccountID != nil {
		_, err = ownedAccount(tx, e.UserID, *e.AccountID)
		if err != nil {
			return err
		}
	}

	if e.Category == nil {
		e.Category, err = MatchCategory(tx, e.UserID, e.Note)
	}

	return err
}
