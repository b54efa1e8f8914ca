package models_test

import (
	"time"

	"github.com/fund-split/backend/internal/allocation"
	"github.com/fund-split/backend/internal/models"
	"github.com/fund-split/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestIncomeDefaults() {
	user := suite.createTestUser(models.User{})

	income := models.Income{UserID: user.ID, Amount: decimal.NewFromInt(1000), Note: "  Salary "}
	err := models.DB.Create(&income).Error
	suite.Require().Nil(err)

	suite.Assert().Equal("Salary", income.Note)
	suite.Assert().False(income.Date.IsZero())
	suite.Assert().Equal(types.MonthOf(time.Now()), income.Month)
	suite.Assert().False(income.ExcludeFromAllocation)
}

func (suite *TestSuiteStandard) TestIncomeMonthIsRecordingMonth() {
	user := suite.createTestUser(models.User{})
	backdated := time.Date(2020, 1, 31, 23, 30, 0, 0, time.UTC)

	income := models.Income{UserID: user.ID, Amount: decimal.NewFromInt(1000), Date: backdated}
	suite.Require().Nil(models.DB.Create(&income).Error)
	suite.Assert().Equal(types.MonthOf(time.Now()), income.Month, "The date of an income must not pick its month")
	suite.Assert().True(income.Date.Equal(backdated))

	recorded := models.Income{UserID: user.ID, Amount: decimal.NewFromInt(1000), Date: backdated, Month: types.NewMonth(2026, 3)}
	suite.Require().Nil(models.DB.Create(&recorded).Error)
	suite.Assert().Equal(types.NewMonth(2026, 3), recorded.Month)
}

func (suite *TestSuiteStandard) TestSpendingMonthFromDate() {
	user := suite.createTestUser(models.User{})

	expense := models.Expense{
		UserID: user.ID,
		Amount: decimal.NewFromInt(10),
		Date:   time.Date(2026, 3, 31, 23, 30, 0, 0, time.UTC),
		Month:  types.NewMonth(2020, 1),
	}
	suite.Require().Nil(models.DB.Create(&expense).Error)
	suite.Assert().Equal(types.NewMonth(2026, 3), expense.Month)
}

func (suite *TestSuiteStandard) TestIncomeCashAccountIsExcluded() {
	user := suite.createTestUser(models.User{})
	cash := suite.createTestAccount(models.Account{UserID: user.ID, Name: "Wallet", Type: models.AccountCash})
	checking := suite.createTestAccount(models.Account{UserID: user.ID, Name: "Bank"})

	toCash := models.Income{UserID: user.ID, AccountID: &cash.ID, Amount: decimal.NewFromInt(200)}
	suite.Require().Nil(models.DB.Create(&toCash).Error)
	suite.Assert().True(toCash.ExcludeFromAllocation)

	toChecking := models.Income{UserID: user.ID, AccountID: &checking.ID, Amount: decimal.NewFromInt(200)}
	suite.Require().Nil(models.DB.Create(&toChecking).Error)
	suite.Assert().False(toChecking.ExcludeFromAllocation)
}

func (suite *TestSuiteStandard) TestEventAmountMustBePositive() {
	user := suite.createTestUser(models.User{})
	a := suite.createTestAccount(models.Account{UserID: user.ID, Name: "A"})
	b := suite.createTestAccount(models.Account{UserID: user.ID, Name: "B"})

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		suite.Assert().ErrorIs(models.DB.Create(&models.Income{UserID: user.ID, Amount: amount}).Error, models.ErrInvalidAmount)
		suite.Assert().ErrorIs(models.DB.Create(&models.Expense{UserID: user.ID, Amount: amount}).Error, models.ErrInvalidAmount)
		suite.Assert().ErrorIs(models.DB.Create(&models.Investment{UserID: user.ID, Amount: amount}).Error, models.ErrInvalidAmount)
		suite.Assert().ErrorIs(models.DB.Create(&models.Transfer{UserID: user.ID, SourceAccountID: a.ID, DestinationAccountID: b.ID, Amount: amount}).Error, models.ErrInvalidAmount)
	}
}

func (suite *TestSuiteStandard) TestEventAccountOfOtherUser() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{Name: "Other"})
	account := suite.createTestAccount(models.Account{UserID: other.ID, Name: "Not yours"})

	err := models.DB.Create(&models.Expense{UserID: user.ID, AccountID: &account.ID, Amount: decimal.NewFromInt(5)}).Error
	suite.Assert().ErrorIs(err, models.ErrAccountNotOwned)
}

func (suite *TestSuiteStandard) TestExpenseCategoryInvalid() {
	user := suite.createTestUser(models.User{})
	c := allocation.Category("groceries")

	err := models.DB.Create(&models.Expense{UserID: user.ID, Amount: decimal.NewFromInt(5), Category: &c}).Error
	suite.Assert().ErrorIs(err, allocation.ErrCategoryInvalid)
}

func (suite *TestSuiteStandard) TestTransferSourceEqualsDestination() {
	user := suite.createTestUser(models.User{})
	account := suite.createTestAccount(models.Account{UserID: user.ID, Name: "Loop"})

	err := models.DB.Create(&models.Transfer{
		UserID:               user.ID,
		SourceAccountID:      account.ID,
		DestinationAccountID: account.ID,
		Amount:               decimal.NewFromInt(10),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrSourceEqualsDestination)
}
