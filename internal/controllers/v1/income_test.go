package v1_test

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fund-split/backend/internal/allocation"
	v1 "github.com/fund-split/backend/internal/controllers/v1"
	"github.com/fund-split/backend/internal/models"
	"github.com/fund-split/backend/internal/types"
	"github.com/fund-split/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var march = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func (suite *TestSuiteStandard) TestIncomeCreate() {
	user := suite.createTestUser(v1.UserEditable{})

	calculation := suite.createTestIncome(v1.IncomeEditable{UserID: user.ID, Amount: decimal.NewFromInt(1000), Date: march, Note: "Salary"})
	suite.assertDecimal(1000, calculation.Income)
	suite.assertDecimal(500, calculation.FixedCosts)
	suite.assertDecimal(200, calculation.Savings)
	suite.assertDecimal(100, calculation.Investment)
	suite.assertDecimal(200, calculation.GuiltFreeSpending)
	suite.assertDecimal(1000, calculation.Total)
	suite.assertDecimal(0, calculation.SavingsOverCap)
	suite.Assert().Nil(calculation.DepositedToAccountName)
	suite.Assert().False(calculation.IsCashAccount)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/tracking?user=%s&month=2026-03", user.ID), calculation.Links.Tracking)

	// The second income is broken down on its own
	calculation = suite.createTestIncome(v1.IncomeEditable{UserID: user.ID, Amount: decimal.NewFromInt(500), Date: march.AddDate(0, 0, 5)})
	suite.assertDecimal(250, calculation.FixedCosts)
	suite.assertDecimal(100, calculation.Savings)
	suite.assertDecimal(50, calculation.Investment)
	suite.assertDecimal(100, calculation.GuiltFreeSpending)

	// The balances of the month cover both
	balances, err := models.Ledger{}.CategoryBalances(context.Background(), user.ID, types.NewMonth(2026, 3))
	suite.Require().Nil(err)
	suite.Require().Len(balances, 4)

	expected := map[allocation.Category]int64{
		allocation.FixedCosts:        750,
		allocation.Savings:           300,
		allocation.Investment:        150,
		allocation.GuiltFreeSpending: 300,
	}
	for _, b := range balances {
		suite.assertDecimal(expected[b.Category], b.Balance, b.Category)
	}
}

func (suite *TestSuiteStandard) TestIncomeCreateBackdated() {
	user := suite.createTestUser(v1.UserEditable{})
	february := march.AddDate(0, -1, 0)

	calculation := suite.createTestIncome(v1.IncomeEditable{UserID: user.ID, Amount: decimal.NewFromInt(1000), Date: february})
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/tracking?user=%s&month=2026-03", user.ID), calculation.Links.Tracking)

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/incomes?user=%s&month=2026-03", user.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.IncomeListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1, "Income must count towards the month it was submitted in")
	suite.Assert().True(response.Data[0].Date.Equal(february))

	balances, err := models.Ledger{}.CategoryBalances(context.Background(), user.ID, types.NewMonth(2026, 2))
	suite.Require().Nil(err)
	suite.Assert().Len(balances, 0)
}

func (suite *TestSuiteStandard) TestIncomeCreateAccounts() {
	user := suite.createTestUser(v1.UserEditable{})
	checking := suite.createTestAccount(v1.AccountEditable{UserID: user.ID, Name: "Checking"})
	wallet := suite.createTestAccount(v1.AccountEditable{UserID: user.ID, Name: "Wallet", Type: models.AccountCash})

	calculation := suite.createTestIncome(v1.IncomeEditable{UserID: user.ID, AccountID: &checking.ID, Amount: decimal.NewFromInt(100)})
	suite.Require().NotNil(calculation.DepositedToAccountName)
	suite.Assert().Equal("Checking", *calculation.DepositedToAccountName)
	suite.assertDecimal(100, calculation.Total)

	calculation = suite.createTestIncome(v1.IncomeEditable{UserID: user.ID, AccountID: &wallet.ID, Amount: decimal.NewFromInt(100)})
	suite.Assert().True(calculation.IsCashAccount)
	suite.assertDecimal(100, calculation.Income)
	suite.assertDecimal(0, calculation.Total, "Cash deposits must not be allocated")
	suite.assertDecimal(0, calculation.FixedCosts)

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/incomes?account=%s", wallet.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.IncomeListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().True(response.Data[0].ExcludeFromAllocation)
}

func (suite *TestSuiteStandard) TestIncomeCreateFails() {
	user := suite.createTestUser(v1.UserEditable{})
	other := suite.createTestUser(v1.UserEditable{Name: "Other"})
	foreign := suite.createTestAccount(v1.AccountEditable{UserID: other.ID})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Zero amount", v1.IncomeEditable{UserID: user.ID}, http.StatusBadRequest},
		{"Negative amount", v1.IncomeEditable{UserID: user.ID, Amount: decimal.NewFromInt(-10)}, http.StatusBadRequest},
		{"Unknown user", v1.IncomeEditable{UserID: uuid.New(), Amount: decimal.NewFromInt(10)}, http.StatusNotFound},
		{"Unknown account", v1.IncomeEditable{UserID: user.ID, AccountID: ptr(uuid.New()), Amount: decimal.NewFromInt(10)}, http.StatusNotFound},
		{"Account of other user", v1.IncomeEditable{UserID: user.ID, AccountID: &foreign.ID, Amount: decimal.NewFromInt(10)}, http.StatusBadRequest},
		{"Broken body", `{ "amount": true }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/incomes", tt.body)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
		})
	}

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Income{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count, "Rejected income must not be stored")
}

func (suite *TestSuiteStandard) TestIncomeCreatePolicyMissing() {
	user := suite.createTestUser(v1.UserEditable{})
	suite.Require().Nil(models.DB.Where("user_id = ?", user.ID).Delete(&models.AllocationRule{}).Error)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/incomes", v1.IncomeEditable{UserID: user.ID, Amount: decimal.NewFromInt(10)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var response v1.IncomeCalculationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.ErrPolicyMissing.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestIncomeGetList() {
	user := suite.createTestUser(v1.UserEditable{})
	other := suite.createTestUser(v1.UserEditable{Name: "Other"})

	_ = suite.createTestIncome(v1.IncomeEditable{UserID: user.ID, Amount: decimal.NewFromInt(1000), Date: march})
	suite.at(march.AddDate(0, 1, 0))
	_ = suite.createTestIncome(v1.IncomeEditable{UserID: user.ID, Amount: decimal.NewFromInt(1200), Date: march.AddDate(0, 1, 0)})
	suite.at(march)
	_ = suite.createTestIncome(v1.IncomeEditable{UserID: other.ID, Amount: decimal.NewFromInt(50), Date: march})

	tests := []struct {
		query string
		len   int
	}{
		{"", 3},
		{fmt.Sprintf("user=%s", user.ID), 2},
		{"month=2026-03", 2},
		{fmt.Sprintf("user=%s&month=2026-04", user.ID), 1},
		{"month=2025-12", 0},
		{"offset=1&limit=1", 1},
	}

	for _, tt := range tests {
		suite.Run(tt.query, func() {
			r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/incomes?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var response v1.IncomeListResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Assert().Len(response.Data, tt.len)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/incomes?user=%s", user.ID), "")
	var response v1.IncomeListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data[0].Amount.Equal(decimal.NewFromInt(1200)), "Incomes must be sorted newest first")

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/incomes?month=March", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestIncomeDelete() {
	user := suite.createTestUser(v1.UserEditable{})

	_ = suite.createTestIncome(v1.IncomeEditable{UserID: user.ID, Amount: decimal.NewFromInt(1000), Date: march})
	second := suite.createTestIncome(v1.IncomeEditable{UserID: user.ID, Amount: decimal.NewFromInt(500), Date: march})

	r := test.Request(suite.T(), http.MethodGet, second.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodDelete, second.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, second.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, second.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// The balances only cover the remaining income
	balances, err := models.Ledger{}.CategoryBalances(context.Background(), user.ID, types.NewMonth(2026, 3))
	suite.Require().Nil(err)
	for _, b := range balances {
		if b.Category == allocation.FixedCosts {
			suite.assertDecimal(500, b.Balance)
		}
	}
}

func (suite *TestSuiteStandard) TestIncomeReset() {
	user := suite.createTestUser(v1.UserEditable{})
	other := suite.createTestUser(v1.UserEditable{Name: "Other"})

	_ = suite.createTestIncome(v1.IncomeEditable{UserID: user.ID, Amount: decimal.NewFromInt(1000)})
	_ = suite.createTestIncome(v1.IncomeEditable{UserID: other.ID, Amount: decimal.NewFromInt(1000)})

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"No confirmation", fmt.Sprintf("user=%s", user.ID), http.StatusBadRequest},
		{"Wrong confirmation", fmt.Sprintf("user=%s&confirm=yes", user.ID), http.StatusBadRequest},
		{"No user", "confirm=yes-please-delete-everything", http.StatusBadRequest},
		{"Unknown user", fmt.Sprintf("user=%s&confirm=yes-please-delete-everything", uuid.New()), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/incomes?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
		})
	}

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/incomes?user=%s&confirm=yes-please-delete-everything", user.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Income{}).Where("user_id = ?", user.ID).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)

	suite.Require().Nil(models.DB.Model(&models.CategoryBalance{}).Where("user_id = ?", user.ID).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)

	suite.Require().Nil(models.DB.Model(&models.Income{}).Where("user_id = ?", other.ID).Count(&count).Error)
	suite.Assert().Equal(int64(1), count, "Income of other users must be kept")
}
