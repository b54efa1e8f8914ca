package tracking_test

import (
	"context"
	"sync"

	"github.com/fund-split/backend/internal/allocation"
	"github.com/fund-split/backend/internal/models"
	"github.com/fund-split/backend/internal/tracking"
	"github.com/fund-split/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var march = types.NewMonth(2026, 3)

func (suite *TestSuiteStandard) cached(userID uuid.UUID, month types.Month) allocation.Amounts {
	rows, err := models.Ledger{}.CategoryBalances(context.Background(), userID, month)
	suite.Require().Nil(err)

	amounts := allocation.NewAmounts()
	for _, r := range rows {
		amounts[r.Category] = r.Balance
	}
	return amounts
}

func (suite *TestSuiteStandard) TestAddIncomeAggregates() {
	user := suite.createTestUser()
	ctx := context.Background()

	_, first, err := suite.service.AddIncome(ctx, tracking.IncomeInput{UserID: user.ID, Amount: d("1000")})
	suite.Require().Nil(err)
	suite.Assert().True(first.FixedCosts.Equal(d("500")))
	suite.Assert().True(first.Total.Equal(d("1000")))
	suite.Assert().Nil(first.DepositedToAccountName)

	income, second, err := suite.service.AddIncome(ctx, tracking.IncomeInput{UserID: user.ID, Amount: d("500"), Note: "Side job"})
	suite.Require().Nil(err)
	suite.Assert().Equal(march, income.Month)
	suite.Assert().Equal("Side job", income.Note)
	suite.Assert().True(second.Income.Equal(d("500")))
	suite.Assert().True(second.FixedCosts.Equal(d("250")))
	suite.Assert().True(second.Savings.Equal(d("100")))
	suite.Assert().True(second.Investment.Equal(d("50")))
	suite.Assert().True(second.GuiltFreeSpending.Equal(d("100")))
	suite.Assert().True(second.Total.Equal(d("500")))

	suite.assertAmounts(map[allocation.Category]string{
		allocation.FixedCosts:        "750",
		allocation.Savings:           "300",
		allocation.Investment:        "150",
		allocation.GuiltFreeSpending: "300",
	}, suite.cached(user.ID, march))
}

func (suite *TestSuiteStandard) TestAddIncomeCap() {
	user := suite.createTestUser()
	ctx := context.Background()

	p := allocation.DefaultPolicy()
	p[allocation.FixedCosts] = allocation.Rule{Mode: allocation.Percentage, Value: d("50"), Cap: decimal.NewNullDecimal(d("600"))}
	suite.Require().Nil(suite.service.UpdatePolicy(ctx, user.ID, p))

	for range 2 {
		_, calc, err := suite.service.AddIncome(ctx, tracking.IncomeInput{UserID: user.ID, Amount: d("1000")})
		suite.Require().Nil(err)
		suite.Assert().True(calc.Total.Equal(d("1000")), "The breakdown must add up to the income, is %s", calc.Total)
	}

	suite.assertAmounts(map[allocation.Category]string{
		allocation.FixedCosts:        "600",
		allocation.Savings:           "800",
		allocation.Investment:        "200",
		allocation.GuiltFreeSpending: "400",
	}, suite.cached(user.ID, march))
}

func (suite *TestSuiteStandard) TestAddIncomeCashAccount() {
	user := suite.createTestUser()
	wallet := suite.createTestAccount(models.Account{UserID: user.ID, Name: "Wallet", Type: models.AccountCash})

	income, calc, err := suite.service.AddIncome(context.Background(), tracking.IncomeInput{UserID: user.ID, AccountID: &wallet.ID, Amount: d("200")})
	suite.Require().Nil(err)

	suite.Assert().True(income.ExcludeFromAllocation)
	suite.Assert().True(calc.IsCashAccount)
	suite.Require().NotNil(calc.DepositedToAccountName)
	suite.Assert().Equal("Wallet", *calc.DepositedToAccountName)
	suite.Assert().True(calc.Income.Equal(d("200")))
	suite.Assert().True(calc.Total.IsZero())

	for _, c := range allocation.Order {
		suite.Assert().True(suite.cached(user.ID, march)[c].IsZero(), "%s must not receive cash income", c)
	}
}

func (suite *TestSuiteStandard) TestAddIncomePolicyMissing() {
	user := suite.createTestUser()
	suite.Require().Nil(models.DB.Where("user_id = ?", user.ID).Delete(&models.AllocationRule{}).Error)

	_, _, err := suite.service.AddIncome(context.Background(), tracking.IncomeInput{UserID: user.ID, Amount: d("1000")})
	suite.Assert().ErrorIs(err, models.ErrPolicyMissing)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Income{}).Where("user_id = ?", user.ID).Count(&count).Error)
	suite.Assert().Zero(count, "No income must be stored without a policy")

	rows, err := models.Ledger{}.CategoryBalances(context.Background(), user.ID, march)
	suite.Require().Nil(err)
	suite.Assert().Len(rows, 0, "No balances must be written without a policy")
}

func (suite *TestSuiteStandard) TestAddIncomeInvalid() {
	user := suite.createTestUser()
	other := suite.createTestUser()
	account := suite.createTestAccount(models.Account{UserID: other.ID, Name: "Not yours"})

	tests := []struct {
		name string
		in   tracking.IncomeInput
		err  error
	}{
		{"Zero", tracking.IncomeInput{UserID: user.ID, Amount: decimal.Zero}, models.ErrInvalidAmount},
		{"Negative", tracking.IncomeInput{UserID: user.ID, Amount: d("-10")}, models.ErrInvalidAmount},
		{"Unknown user", tracking.IncomeInput{UserID: uuid.New(), Amount: d("10")}, models.ErrResourceNotFound},
		{"Account of other user", tracking.IncomeInput{UserID: user.ID, AccountID: &account.ID, Amount: d("10")}, models.ErrAccountNotOwned},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, _, err := suite.service.AddIncome(context.Background(), tt.in)
			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestRecomputeIsIdempotent() {
	user := suite.createTestUser()
	ctx := context.Background()

	suite.create(
		&models.Income{UserID: user.ID, Amount: d("1000"), Date: now, Month: types.MonthOf(now)},
		&models.Income{UserID: user.ID, Amount: d("333.33"), Date: now, Month: types.MonthOf(now)},
	)

	first, err := suite.service.Recompute(ctx, user.ID, march)
	suite.Require().Nil(err)
	second, err := suite.service.Recompute(ctx, user.ID, march)
	suite.Require().Nil(err)

	suite.Assert().True(first.Balances.Equal(second.Balances))
	suite.Assert().True(first.Balances.Equal(suite.cached(user.ID, march)))
	suite.Assert().True(first.Allocated.Equal(d("1333.33")))
}

func (suite *TestSuiteStandard) TestRecomputeHealsCache() {
	user := suite.createTestUser()
	ctx := context.Background()

	_, _, err := suite.service.AddIncome(ctx, tracking.IncomeInput{UserID: user.ID, Amount: d("1000")})
	suite.Require().Nil(err)

	stale := allocation.NewAmounts()
	stale[allocation.Savings] = d("99999")
	suite.Require().Nil(models.Ledger{}.UpsertCategoryBalances(ctx, user.ID, march, stale))

	_, err = suite.service.Recompute(ctx, user.ID, march)
	suite.Require().Nil(err)

	suite.assertAmounts(map[allocation.Category]string{
		allocation.FixedCosts:        "500",
		allocation.Savings:           "200",
		allocation.Investment:        "100",
		allocation.GuiltFreeSpending: "200",
	}, suite.cached(user.ID, march))
}

func (suite *TestSuiteStandard) TestAddIncomeConcurrent() {
	user := suite.createTestUser()
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := suite.service.AddIncome(ctx, tracking.IncomeInput{UserID: user.ID, Amount: d("100")})
			suite.Assert().Nil(err)
		}()
	}
	wg.Wait()

	suite.assertAmounts(map[allocation.Category]string{
		allocation.FixedCosts:        "500",
		allocation.Savings:           "200",
		allocation.Investment:        "100",
		allocation.GuiltFreeSpending: "200",
	}, suite.cached(user.ID, march))
}

func (suite *TestSuiteStandard) TestDeleteIncome() {
	user := suite.createTestUser()
	ctx := context.Background()

	_, _, err := suite.service.AddIncome(ctx, tracking.IncomeInput{UserID: user.ID, Amount: d("1000")})
	suite.Require().Nil(err)
	income, _, err := suite.service.AddIncome(ctx, tracking.IncomeInput{UserID: user.ID, Amount: d("500")})
	suite.Require().Nil(err)

	suite.Require().Nil(suite.service.DeleteIncome(ctx, income.ID))

	suite.assertAmounts(map[allocation.Category]string{
		allocation.FixedCosts:        "500",
		allocation.Savings:           "200",
		allocation.Investment:        "100",
		allocation.GuiltFreeSpending: "200",
	}, suite.cached(user.ID, march))

	err = suite.service.DeleteIncome(ctx, income.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestResetIncome() {
	user := suite.createTestUser()
	ctx := context.Background()

	_, _, err := suite.service.AddIncome(ctx, tracking.IncomeInput{UserID: user.ID, Amount: d("1000")})
	suite.Require().Nil(err)

	suite.Require().Nil(suite.service.ResetIncome(ctx, user.ID))

	incomes, err := models.Ledger{}.Incomes(ctx, user.ID, march)
	suite.Require().Nil(err)
	suite.Assert().Len(incomes, 0)

	rows, err := models.Ledger{}.CategoryBalances(ctx, user.ID, march)
	suite.Require().Nil(err)
	suite.Assert().Len(rows, 0)
}

func (suite *TestSuiteStandard) TestUpdatePolicyRecomputes() {
	user := suite.createTestUser()
	ctx := context.Background()

	_, _, err := suite.service.AddIncome(ctx, tracking.IncomeInput{UserID: user.ID, Amount: d("1000")})
	suite.Require().Nil(err)

	p := allocation.DefaultPolicy()
	p[allocation.FixedCosts] = allocation.Rule{Mode: allocation.Fixed, Value: d("700")}
	p[allocation.Savings] = allocation.Rule{Mode: allocation.Percentage, Value: d("0")}
	p[allocation.Investment] = allocation.Rule{Mode: allocation.Percentage, Value: d("0")}
	p[allocation.GuiltFreeSpending] = allocation.Rule{Mode: allocation.Percentage, Value: d("0")}
	suite.Require().Nil(suite.service.UpdatePolicy(ctx, user.ID, p))

	suite.assertAmounts(map[allocation.Category]string{
		allocation.FixedCosts:        "700",
		allocation.Savings:           "300",
		allocation.Investment:        "0",
		allocation.GuiltFreeSpending: "0",
	}, suite.cached(user.ID, march))

	invalid := allocation.DefaultPolicy()
	invalid[allocation.Savings] = allocation.Rule{Mode: allocation.Percentage, Value: d("90")}
	err = suite.service.UpdatePolicy(ctx, user.ID, invalid)
	suite.Assert().ErrorIs(err, allocation.ErrPercentageTooHigh)
}

func (suite *TestSuiteStandard) TestAddIncomeCountsTowardsCurrentMonth() {
	user := suite.createTestUser()
	ctx := context.Background()
	february := now.AddDate(0, -1, 0)

	income, calc, err := suite.service.AddIncome(ctx, tracking.IncomeInput{UserID: user.ID, Amount: d("1000"), Date: february})
	suite.Require().Nil(err)
	suite.Assert().True(calc.FixedCosts.Equal(d("500")))
	suite.Assert().Equal(march, income.Month, "Income must count towards the month it is recorded in")
	suite.Assert().True(income.Date.Equal(february), "The date must be kept as it was submitted")

	suite.assertAmounts(map[allocation.Category]string{
		allocation.FixedCosts: "500",
		allocation.Savings:    "200",
	}, suite.cached(user.ID, march))

	rows, err := models.Ledger{}.CategoryBalances(ctx, user.ID, types.MonthOf(february))
	suite.Require().Nil(err)
	suite.Assert().Len(rows, 0, "A backdated income must not touch the balances of its date's month")
}

func (suite *TestSuiteStandard) TestResetIncomeConcurrent() {
	user := suite.createTestUser()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%3 == 0 {
				suite.Assert().Nil(suite.service.ResetIncome(ctx, user.ID))
				return
			}

			_, _, err := suite.service.AddIncome(ctx, tracking.IncomeInput{UserID: user.ID, Amount: d("100")})
			suite.Assert().Nil(err)
		}()
	}
	wg.Wait()

	incomes, err := models.Ledger{}.Incomes(ctx, user.ID, march)
	suite.Require().Nil(err)

	events := make([]allocation.Income, 0, len(incomes))
	for _, i := range incomes {
		events = append(events, allocation.Income{Amount: i.Amount, ExcludeFromAllocation: i.ExcludeFromAllocation})
	}
	expected := allocation.ComputeMonthBalances(events, allocation.DefaultPolicy()).Balances

	suite.Assert().True(expected.Equal(suite.cached(user.ID, march)), "The balances must match the income that survived the resets")
}
