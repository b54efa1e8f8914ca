package models

import (
	"time"

	"github.com/fund-split/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income is an income event.
//
// Income counts towards the month it was recorded in, its date is only
// informational. Income deposited to a cash account counts towards the
// income of the month, but is excluded from allocation. Income is never
// updated, only deleted.
type Income struct {
	DefaultModel
	User                  User            `json:"-"`
	UserID                uuid.UUID       `gorm:"index:idx_income_user_month"`
	Account               Account         `json:"-"`
	AccountID             *uuid.UUID      // The account the income was deposited to
	Amount                decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date                  time.Time
	Month                 types.Month `gorm:"index:idx_income_user_month"`
	Note                  string
	ExcludeFromAllocation bool
}

func (Income) Self() string {
	return "Income"
}

func (i *Income) AfterFind(tx *gorm.DB) error {
	err := i.DefaultModel.AfterFind(tx)
	i.Date = i.Date.In(time.UTC)
	return err
}

func (i *Income) BeforeSave(_ *gorm.DB) error {
	if i.AccountID != nil && *i.AccountID == uuid.Nil {
		i.AccountID = nil
	}

	err := normalize(i.Amount, &i.Date, &i.Note)
	if err != nil {
		return err
	}

	if i.Month.IsZero() {
		i.Month = recordedIn(i.CreatedAt)
	}
	return nil
}

// BeforeCreate verifies the references of the income and excludes
// deposits to cash accounts from allocation.
func (i *Income) BeforeCreate(tx *gorm.DB) error {
	_ = i.DefaultModel.BeforeCreate(tx)

	err := userExists(tx, i.UserID)
	if err != nil {
		return err
	}

	if i.AccountID == nil {
		return nil
	}

	account, err := ownedAccount(tx, i.UserID, *i.AccountID)
	if err != nil {
		return err
	}

	if account.IsCash() {
		i.ExcludeFromAllocation = true
	}

	return nil
}
