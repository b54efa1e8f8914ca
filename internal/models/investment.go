package models

import (
	"time"

	"github.com/fund-split/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Investment is money invested, e.g. buying shares. Investments are the
// only thing counting as spent for the investment category.
type Investment struct {
	DefaultModel
	User      User      `json:"-"`
	UserID    uuid.UUID `gorm:"index:idx_investment_user_month"`
	Account   Account   `json:"-"`
	AccountID *uuid.UUID
	Amount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date      time.Time
	Month     types.Month `gorm:"index:idx_investment_user_month"`
	Note      string
}

func (Investment) Self() string {
	return "Investment"
}

func (i *Investment) AfterFind(tx *gorm.DB) error {
	err := i.DefaultModel.AfterFind(tx)
	i.Date = i.Date.In(time.UTC)
	return err
}

func (i *Investment) BeforeSave(_ *gorm.DB) error {
	if i.AccountID != nil && *i.AccountID == uuid.Nil {
		i.AccountID = nil
	}

	err := normalize(i.Amount, &i.Date, &i.Note)
	if err != nil {
		return err
	}

	// Spending counts towards the month it happened in
	i.Month = types.MonthOf(i.Date)
	return nil
}

func (i *Investment) BeforeCreate(tx *gorm.DB) error {
	_ = i.DefaultModel.BeforeCreate(tx)

	err := userExists(tx, i.UserID)
	if err != nil || i.AccountID == nil {
		return err
	}

	_, err = ownedAccount(tx, i.UserID, *i.AccountID)
	return err
}
