package v1_test

import (
	"fmt"
	"net/http"

	"github.com/fund-split/backend/internal/allocation"
	v1 "github.com/fund-split/backend/internal/controllers/v1"
	"github.com/fund-split/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestMatchRulesCreate() {
	user := suite.createTestUser(v1.UserEditable{})

	rule := suite.createTestMatchRule(v1.MatchRuleCreate{
		UserID:            user.ID,
		MatchRuleEditable: v1.MatchRuleEditable{Priority: 2, Match: " *Insurance* ", Category: allocation.FixedCosts},
	})

	suite.Assert().Equal("*Insurance*", rule.Match)
	suite.Assert().Equal(uint(2), rule.Priority)
	suite.Assert().Equal(user.Links.Self, rule.Links.User)
}

func (suite *TestSuiteStandard) TestMatchRulesCreateFails() {
	user := suite.createTestUser(v1.UserEditable{})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Empty match", []v1.MatchRuleCreate{{UserID: user.ID, MatchRuleEditable: v1.MatchRuleEditable{Match: " ", Category: allocation.Savings}}}, http.StatusBadRequest},
		{"Invalid category", []v1.MatchRuleCreate{{UserID: user.ID, MatchRuleEditable: v1.MatchRuleEditable{Match: "Rent*", Category: "rent"}}}, http.StatusBadRequest},
		{"Unknown user", []v1.MatchRuleCreate{{UserID: uuid.New(), MatchRuleEditable: v1.MatchRuleEditable{Match: "Rent*", Category: allocation.FixedCosts}}}, http.StatusNotFound},
		{"Broken body", `[{ "priority": -1 }]`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/match-rules", tt.body)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestMatchRulesGetList() {
	user := suite.createTestUser(v1.UserEditable{})
	other := suite.createTestUser(v1.UserEditable{Name: "Other"})

	_ = suite.createTestMatchRule(v1.MatchRuleCreate{UserID: user.ID, MatchRuleEditable: v1.MatchRuleEditable{Priority: 3, Match: "*", Category: allocation.GuiltFreeSpending}})
	_ = suite.createTestMatchRule(v1.MatchRuleCreate{UserID: user.ID, MatchRuleEditable: v1.MatchRuleEditable{Priority: 1, Match: "Rent*", Category: allocation.FixedCosts}})
	_ = suite.createTestMatchRule(v1.MatchRuleCreate{UserID: other.ID, MatchRuleEditable: v1.MatchRuleEditable{Priority: 1, Match: "ETF*", Category: allocation.Investment}})

	tests := []struct {
		query string
		len   int
	}{
		{"", 3},
		{fmt.Sprintf("user=%s", user.ID), 2},
		{"priority=1", 2},
		{"category=fixedCosts", 1},
		{"match=rent", 1},
		{fmt.Sprintf("user=%s&match=etf", user.ID), 0},
	}

	for _, tt := range tests {
		suite.Run(tt.query, func() {
			r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/match-rules?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var response v1.MatchRuleListResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Assert().Len(response.Data, tt.len)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/match-rules?user=%s", user.ID), "")
	var response v1.MatchRuleListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Rent*", response.Data[0].Match, "Match rules must be sorted by priority")
}

func (suite *TestSuiteStandard) TestMatchRulesUpdate() {
	user := suite.createTestUser(v1.UserEditable{})
	rule := suite.createTestMatchRule(v1.MatchRuleCreate{UserID: user.ID, MatchRuleEditable: v1.MatchRuleEditable{Priority: 4, Match: "Rent*", Category: allocation.FixedCosts}})

	r := test.Request(suite.T(), http.MethodPatch, rule.Links.Self, map[string]any{
		"priority": 0,
		"category": allocation.GuiltFreeSpending,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MatchRuleResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(uint(0), response.Data.Priority)
	suite.Assert().Equal(allocation.GuiltFreeSpending, response.Data.Category)
	suite.Assert().Equal("Rent*", response.Data.Match)

	r = test.Request(suite.T(), http.MethodPatch, rule.Links.Self, `{ "match": "" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, rule.Links.Self, `{ "category": "food" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/match-rules/%s", uuid.New()), `{ "match": "x" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestMatchRulesDelete() {
	user := suite.createTestUser(v1.UserEditable{})
	rule := suite.createTestMatchRule(v1.MatchRuleCreate{UserID: user.ID, MatchRuleEditable: v1.MatchRuleEditable{Match: "Rent*", Category: allocation.FixedCosts}})

	r := test.Request(suite.T(), http.MethodDelete, rule.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, rule.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// Expenses are no longer categorized by the deleted rule
	expense := suite.createTestExpense(v1.ExpenseEditable{UserID: user.ID, Amount: decimal.NewFromInt(900), Note: "Rent"})
	suite.Assert().Nil(expense.Category)
}
