package models

import (
	"fmt"
	"strings"

	"github.com/fund-split/backend/internal/allocation"
	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// User is the owner of a budget.
type User struct {
	DefaultModel
	Name     string
	Note     string
	Currency string // ISO 4217 code, defaults to USD
}

func (User) Self() string {
	return "User"
}

// BeforeSave trims whitespace and normalizes the currency code.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Note = strings.TrimSpace(u.Note)

	if u.Name == "" {
		return ErrUserNameEmpty
	}

	if strings.TrimSpace(u.Currency) == "" {
		u.Currency = currency.USD.String()
	}

	unit, err := currency.ParseISO(strings.TrimSpace(u.Currency))
	if err != nil {
		return fmt.Errorf("%w, got '%s'", ErrCurrencyInvalid, u.Currency)
	}
	u.Currency = unit.String()

	return nil
}

// AfterCreate gives every new user the default allocation policy.
func (u *User) AfterCreate(tx *gorm.DB) error {
	rules := rulesOf(u.ID, allocation.DefaultPolicy())
	return tx.Create(&rules).Error
}
