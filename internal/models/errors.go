package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// ErrPolicyMissing is returned when income is submitted for a user
// without an allocation policy.
var ErrPolicyMissing = fmt.Errorf("%w allocation policy for the user, configure fund allocation first", ErrResourceNotFound)

var (
	ErrInvalidAmount           = errors.New("the amount must be greater than zero")
	ErrAccountNameNotUnique    = errors.New("the account name must be unique for the user")
	ErrAccountTypeInvalid      = errors.New("the account type must be one of checking, savings, cash, investment, credit")
	ErrAccountNotOwned         = errors.New("the account does not belong to the user")
	ErrSourceEqualsDestination = errors.New("source and destination accounts for a transfer must be different")
	ErrCurrencyInvalid         = errors.New("the currency must be an ISO 4217 currency code")
	ErrUserNameEmpty           = errors.New("the name of a user must not be empty")
	ErrMatchRuleEmpty          = errors.New("the match of a match rule must not be empty")
)
