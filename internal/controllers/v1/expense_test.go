package v1_test

import (
	"fmt"
	"net/http"

	"github.com/fund-split/backend/internal/allocation"
	v1 "github.com/fund-split/backend/internal/controllers/v1"
	"github.com/fund-split/backend/internal/types"
	"github.com/fund-split/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestExpensesCreate() {
	user := suite.createTestUser(v1.UserEditable{})
	account := suite.createTestAccount(v1.AccountEditable{UserID: user.ID})

	expense := suite.createTestExpense(v1.ExpenseEditable{
		UserID:    user.ID,
		AccountID: &account.ID,
		Amount:    decimal.RequireFromString("14.99"),
		Category:  ptr(allocation.GuiltFreeSpending),
		Date:      march,
		Note:      "Concert tickets",
	})

	suite.Assert().True(expense.Amount.Equal(decimal.RequireFromString("14.99")))
	suite.Assert().Equal(ptr(allocation.GuiltFreeSpending), expense.Category)
	suite.Assert().Equal(types.NewMonth(2026, 3), expense.Month)
	suite.Assert().Equal(user.Links.Self, expense.Links.User)
}

func (suite *TestSuiteStandard) TestExpensesCreateMatchRule() {
	user := suite.createTestUser(v1.UserEditable{})
	_ = suite.createTestMatchRule(v1.MatchRuleCreate{UserID: user.ID, MatchRuleEditable: v1.MatchRuleEditable{Match: "Rent*", Category: allocation.FixedCosts}})

	matched := suite.createTestExpense(v1.ExpenseEditable{UserID: user.ID, Amount: decimal.NewFromInt(900), Note: "Rent March"})
	suite.Assert().Equal(ptr(allocation.FixedCosts), matched.Category)

	explicit := suite.createTestExpense(v1.ExpenseEditable{UserID: user.ID, Amount: decimal.NewFromInt(900), Note: "Rent for the holiday flat", Category: ptr(allocation.GuiltFreeSpending)})
	suite.Assert().Equal(ptr(allocation.GuiltFreeSpending), explicit.Category)

	unmatched := suite.createTestExpense(v1.ExpenseEditable{UserID: user.ID, Amount: decimal.NewFromInt(4), Note: "Coffee"})
	suite.Assert().Nil(unmatched.Category)
}

func (suite *TestSuiteStandard) TestExpensesCreateFails() {
	user := suite.createTestUser(v1.UserEditable{})
	other := suite.createTestUser(v1.UserEditable{Name: "Other"})
	foreign := suite.createTestAccount(v1.AccountEditable{UserID: other.ID})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Zero amount", []v1.ExpenseEditable{{UserID: user.ID}}, http.StatusBadRequest},
		{"Invalid category", `[{ "amount": "10", "category": "groceries" }]`, http.StatusBadRequest},
		{"Account of other user", []v1.ExpenseEditable{{UserID: user.ID, AccountID: &foreign.ID, Amount: decimal.NewFromInt(10)}}, http.StatusBadRequest},
		{"Unknown user", []v1.ExpenseEditable{{UserID: uuid.New(), Amount: decimal.NewFromInt(10)}}, http.StatusNotFound},
		{"Broken body", `{ "amount": "10" }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", tt.body)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesGetList() {
	user := suite.createTestUser(v1.UserEditable{})
	account := suite.createTestAccount(v1.AccountEditable{UserID: user.ID})

	_ = suite.createTestExpense(v1.ExpenseEditable{UserID: user.ID, AccountID: &account.ID, Amount: decimal.NewFromInt(900), Category: ptr(allocation.FixedCosts), Date: march, Note: "Rent"})
	_ = suite.createTestExpense(v1.ExpenseEditable{UserID: user.ID, Amount: decimal.NewFromInt(40), Category: ptr(allocation.GuiltFreeSpending), Date: march, Note: "Dinner"})
	_ = suite.createTestExpense(v1.ExpenseEditable{UserID: user.ID, Amount: decimal.NewFromInt(35), Category: ptr(allocation.GuiltFreeSpending), Date: march.AddDate(0, 1, 0), Note: "Dinner"})
	_ = suite.createTestExpense(v1.ExpenseEditable{UserID: user.ID, Amount: decimal.NewFromInt(3), Date: march})

	tests := []struct {
		query string
		len   int
	}{
		{"", 4},
		{fmt.Sprintf("user=%s", user.ID), 4},
		{fmt.Sprintf("account=%s", account.ID), 1},
		{"month=2026-03", 3},
		{"month=2026-04", 1},
		{"category=guiltFreeSpending", 2},
		{"category=guiltFreeSpending&month=2026-03", 1},
		{"note=dinn", 2},
		{"note=", 1},
		{"limit=2", 2},
	}

	for _, tt := range tests {
		suite.Run(tt.query, func() {
			r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Assert().Len(response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesGetAndDelete() {
	user := suite.createTestUser(v1.UserEditable{})
	expense := suite.createTestExpense(v1.ExpenseEditable{UserID: user.ID, Amount: decimal.NewFromInt(10)})

	r := test.Request(suite.T(), http.MethodGet, expense.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodDelete, expense.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, expense.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
