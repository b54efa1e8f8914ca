package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// swagger:enum AccountType
type AccountType string

const (
	AccountChecking   AccountType = "checking"
	AccountSavings    AccountType = "savings"
	AccountCash       AccountType = "cash"
	AccountInvestment AccountType = "investment"
	AccountCredit     AccountType = "credit"
)

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	switch t {
	case AccountChecking, AccountSavings, AccountCash, AccountInvestment, AccountCredit:
		return true
	}
	return false
}

// Account is a bank-like account of a user.
type Account struct {
	DefaultModel
	User   User      `json:"-"`
	UserID uuid.UUID `gorm:"uniqueIndex:idx_account_user_name"`
	Name   string    `gorm:"uniqueIndex:idx_account_user_name"`
	Type   AccountType
	Note   string
	Hidden bool
}

func (Account) Self() string {
	return "Account"
}

// IsCash reports whether income deposited to the account bypasses allocation.
func (a Account) IsCash() bool {
	return a.Type == AccountCash
}

// BeforeSave trims whitespace from all strings and verifies the type.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Note = strings.TrimSpace(a.Note)

	if a.Type == "" {
		a.Type = AccountChecking
	}

	if !a.Type.Valid() {
		return fmt.Errorf("%w, got '%s'", ErrAccountTypeInvalid, a.Type)
	}

	return nil
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	_ = a.DefaultModel.BeforeCreate(tx)
	return userExists(tx, a.UserID)
}

// userExists verifies that the user with the ID exists.
func userExists(tx *gorm.DB, id uuid.UUID) error {
	return tx.First(&User{}, "id = ?", id).Error
}

// ownedAccount returns the account with the ID if it belongs to the user.
func ownedAccount(tx *gorm.DB, userID, id uuid.UUID) (Account, error) {
	var account Account
	err := tx.First(&account, "id = ?", id).Error
	if err != nil {
		return Account{}, err
	}

	if account.UserID != userID {
		return Account{}, fmt.Errorf("%w: %s", ErrAccountNotOwned, id)
	}

	return account, nil
}
