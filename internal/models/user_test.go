package models_test

import (
	"github.com/fund-split/backend/internal/allocation"
	"github.com/fund-split/backend/internal/models"
)

func (suite *TestSuiteStandard) TestUserTrimWhitespace() {
	user := suite.createTestUser(models.User{
		Name: "\t Ada   ",
		Note: " Pays the rent ",
	})

	suite.Assert().Equal("Ada", user.Name)
	suite.Assert().Equal("Pays the rent", user.Note)
}

func (suite *TestSuiteStandard) TestUserNameEmpty() {
	err := models.DB.Create(&models.User{Name: "   "}).Error
	suite.Assert().ErrorIs(err, models.ErrUserNameEmpty)
}

func (suite *TestSuiteStandard) TestUserCurrency() {
	tests := []struct {
		name     string
		currency string
		expected string
		err      error
	}{
		{"Default", "", "USD", nil},
		{"Lowercase", "eur", "EUR", nil},
		{"Whitespace", " JPY ", "JPY", nil},
		{"Invalid", "EURO", "", models.ErrCurrencyInvalid},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			user := models.User{Name: tt.name, Currency: tt.currency}
			err := models.DB.Create(&user).Error

			if tt.err != nil {
				suite.Assert().ErrorIs(err, tt.err)
				return
			}

			suite.Require().Nil(err)
			suite.Assert().Equal(tt.expected, user.Currency)
		})
	}
}

func (suite *TestSuiteStandard) TestUserDefaultPolicy() {
	user := suite.createTestUser(models.User{})

	p, err := models.LoadPolicy(models.DB, user.ID)
	suite.Require().Nil(err)

	for _, c := range allocation.Order {
		suite.Assert().Equal(allocation.Percentage, p[c].Mode)
		suite.Assert().True(p[c].Value.Equal(allocation.DefaultPolicy()[c].Value), "%s is %s", c, p[c].Value)
		suite.Assert().False(p[c].Cap.Valid)
	}
}
