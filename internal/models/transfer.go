package models

import (
	"time"

	"github.com/fund-split/backend/internal/allocation"
	"github.com/fund-split/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transfer moves money between two accounts of a user.
type Transfer struct {
	DefaultModel
	User                 User      `json:"-"`
	UserID               uuid.UUID `gorm:"index:idx_transfer_user_month"`
	SourceAccountID      uuid.UUID `gorm:"check:source_destination_different,source_account_id != destination_account_id"`
	SourceAccount        Account   `json:"-"`
	DestinationAccountID uuid.UUID
	DestinationAccount   Account         `json:"-"`
	Amount               decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Category             *allocation.Category
	Date                 time.Time
	Month                types.Month `gorm:"index:idx_transfer_user_month"`
	Note                 string
}

func (Transfer) Self() string {
	return "Transfer"
}

func (t *Transfer) AfterFind(tx *gorm.DB) error {
	err := t.DefaultModel.AfterFind(tx)
	t.Date = t.Date.In(time.UTC)
	return err
}

func (t *Transfer) BeforeSave(_ *gorm.DB) (err error) {
	if t.SourceAccountID == t.DestinationAccountID {
		return ErrSourceEqualsDestination
	}

	t.Category, err = validCategory(t.Category)
	if err != nil {
		return err
	}

	err = normalize(t.Amount, &t.Date, &t.Note)
	if err != nil {
		return err
	}

	// Spending counts towards the month it happened in
	t.Month = types.MonthOf(t.Date)
	return nil
}

// BeforeCreate verifies that both accounts belong to the user.
func (t *Transfer) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	err := userExists(tx, t.UserID)
	if err != nil {
		return err
	}

	for _, id := range []uuid.UUID{t.SourceAccountID, t.DestinationAccountID} {
		_, err = ownedAccount(tx, t.UserID, id)
		if err != nil {
			return err
		}
	}

	return nil
}
