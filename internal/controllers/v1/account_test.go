package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/fund-split/backend/internal/controllers/v1"
	"github.com/fund-split/backend/internal/models"
	"github.com/fund-split/backend/test"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestAccountsCreate() {
	user := suite.createTestUser(v1.UserEditable{})
	account := suite.createTestAccount(v1.AccountEditable{UserID: user.ID, Name: " Checking ", Note: "Main"})

	suite.Assert().Equal("Checking", account.Name)
	suite.Assert().Equal(models.AccountChecking, account.Type, "Accounts must default to checking")
	suite.Assert().Equal(user.Links.Self, account.Links.User)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/incomes?account=%s", account.ID), account.Links.Incomes)
}

func (suite *TestSuiteStandard) TestAccountsCreateFails() {
	user := suite.createTestUser(v1.UserEditable{})
	_ = suite.createTestAccount(v1.AccountEditable{UserID: user.ID, Name: "Checking"})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Duplicate name", []v1.AccountEditable{{UserID: user.ID, Name: "Checking"}}, http.StatusBadRequest},
		{"Invalid type", []v1.AccountEditable{{UserID: user.ID, Name: "Wallet", Type: "piggybank"}}, http.StatusBadRequest},
		{"Unknown user", []v1.AccountEditable{{UserID: uuid.New(), Name: "Wallet"}}, http.StatusNotFound},
		{"Broken body", `[{ "name": false }]`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/accounts", tt.body)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
		})
	}
}

// Account names only need to be unique per user.
func (suite *TestSuiteStandard) TestAccountsSameNameOtherUser() {
	user := suite.createTestUser(v1.UserEditable{})
	other := suite.createTestUser(v1.UserEditable{Name: "Other"})

	_ = suite.createTestAccount(v1.AccountEditable{UserID: user.ID, Name: "Checking"})
	_ = suite.createTestAccount(v1.AccountEditable{UserID: other.ID, Name: "Checking"})
}

func (suite *TestSuiteStandard) TestAccountsGetList() {
	user := suite.createTestUser(v1.UserEditable{})
	other := suite.createTestUser(v1.UserEditable{Name: "Other"})

	_ = suite.createTestAccount(v1.AccountEditable{UserID: user.ID, Name: "Checking"})
	_ = suite.createTestAccount(v1.AccountEditable{UserID: user.ID, Name: "Wallet", Type: models.AccountCash})
	_ = suite.createTestAccount(v1.AccountEditable{UserID: user.ID, Name: "Old savings", Type: models.AccountSavings, Hidden: true})
	_ = suite.createTestAccount(v1.AccountEditable{UserID: other.ID, Name: "Checking"})

	tests := []struct {
		query string
		len   int
	}{
		{"", 4},
		{fmt.Sprintf("user=%s", user.ID), 3},
		{fmt.Sprintf("user=%s", other.ID), 1},
		{fmt.Sprintf("user=%s", uuid.New()), 0},
		{"type=cash", 1},
		{"hidden=true", 1},
		{"hidden=false", 3},
		{"name=check", 2},
		{fmt.Sprintf("user=%s&name=sav", user.ID), 1},
		{"limit=1", 1},
	}

	for _, tt := range tests {
		suite.Run(tt.query, func() {
			r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/accounts?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var response v1.AccountListResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Assert().Len(response.Data, tt.len)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/accounts?user=not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAccountsGetAndDelete() {
	user := suite.createTestUser(v1.UserEditable{})
	account := suite.createTestAccount(v1.AccountEditable{UserID: user.ID})

	r := test.Request(suite.T(), http.MethodGet, account.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(account.ID, response.Data.ID)

	r = test.Request(suite.T(), http.MethodDelete, account.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, account.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
