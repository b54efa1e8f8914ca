package models_test

import (
	"github.com/fund-split/backend/internal/allocation"
	"github.com/fund-split/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestMatchCategory() {
	user := suite.createTestUser(models.User{})

	_ = suite.createTestMatchRule(models.MatchRule{UserID: user.ID, Priority: 2, Match: "*", Category: allocation.GuiltFreeSpending})
	_ = suite.createTestMatchRule(models.MatchRule{UserID: user.ID, Priority: 1, Match: "Rent*", Category: allocation.FixedCosts})
	_ = suite.createTestMatchRule(models.MatchRule{UserID: user.ID, Priority: 1, Match: "*Insurance*", Category: allocation.FixedCosts})

	tests := []struct {
		note     string
		expected *allocation.Category
	}{
		{"Rent March", ptr(allocation.FixedCosts)},
		{"Car Insurance 2026", ptr(allocation.FixedCosts)},
		{"Concert tickets", ptr(allocation.GuiltFreeSpending)},
		{"", nil},
	}

	for _, tt := range tests {
		suite.Run(tt.note, func() {
			c, err := models.MatchCategory(models.DB, user.ID, tt.note)
			suite.Require().Nil(err)
			suite.Assert().Equal(tt.expected, c)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseCategoryFromMatchRule() {
	user := suite.createTestUser(models.User{})
	_ = suite.createTestMatchRule(models.MatchRule{UserID: user.ID, Match: "Rent*", Category: allocation.FixedCosts})

	matched := models.Expense{UserID: user.ID, Amount: decimal.NewFromInt(900), Note: "Rent April"}
	suite.Require().Nil(models.DB.Create(&matched).Error)
	suite.Assert().Equal(ptr(allocation.FixedCosts), matched.Category)

	// An explicit category is never overwritten
	explicit := models.Expense{UserID: user.ID, Amount: decimal.NewFromInt(900), Note: "Rent for the holiday flat", Category: ptr(allocation.GuiltFreeSpending)}
	suite.Require().Nil(models.DB.Create(&explicit).Error)
	suite.Assert().Equal(ptr(allocation.GuiltFreeSpending), explicit.Category)

	unmatched := models.Expense{UserID: user.ID, Amount: decimal.NewFromInt(3), Note: "Coffee"}
	suite.Require().Nil(models.DB.Create(&unmatched).Error)
	suite.Assert().Nil(unmatched.Category)
}

// Match rules of other users do not apply.
func (suite *TestSuiteStandard) TestMatchCategoryOtherUser() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{Name: "Other"})
	_ = suite.createTestMatchRule(models.MatchRule{UserID: other.ID, Match: "*", Category: allocation.Savings})

	c, err := models.MatchCategory(models.DB, user.ID, "Anything")
	suite.Require().Nil(err)
	suite.Assert().Nil(c)
}

func ptr[T any](v T) *T {
	return &v
}

func (suite *TestSuiteStandard) TestMatchRuleValidation() {
	user := suite.createTestUser(models.User{})

	err := models.DB.Create(&models.MatchRule{UserID: user.ID, Match: "  ", Category: allocation.Savings}).Error
	suite.Assert().ErrorIs(err, models.ErrMatchRuleEmpty)

	err = models.DB.Create(&models.MatchRule{UserID: user.ID, Match: "Rent*", Category: "rent"}).Error
	suite.Assert().ErrorIs(err, allocation.ErrCategoryInvalid)

	rule := suite.createTestMatchRule(models.MatchRule{UserID: user.ID, Match: " Rent* ", Category: allocation.FixedCosts})
	suite.Assert().Equal("Rent*", rule.Match)
}
