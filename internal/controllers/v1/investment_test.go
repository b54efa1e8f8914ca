package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/fund-split/backend/internal/controllers/v1"
	"github.com/fund-split/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createTestInvestment(editable v1.InvestmentEditable) v1.Investment {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/investments", []v1.InvestmentEditable{editable})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.InvestmentCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return *response.Data[0].Data
}

func (suite *TestSuiteStandard) TestInvestmentsCreateAndList() {
	user := suite.createTestUser(v1.UserEditable{})
	depot := suite.createTestAccount(v1.AccountEditable{UserID: user.ID, Name: "Depot"})

	investment := suite.createTestInvestment(v1.InvestmentEditable{UserID: user.ID, AccountID: &depot.ID, Amount: decimal.NewFromInt(100), Date: march, Note: "ETF"})
	suite.Assert().Equal("ETF", investment.Note)
	_ = suite.createTestInvestment(v1.InvestmentEditable{UserID: user.ID, Amount: decimal.NewFromInt(50), Date: march.AddDate(0, 1, 0)})

	tests := []struct {
		query string
		len   int
	}{
		{"", 2},
		{fmt.Sprintf("user=%s", user.ID), 2},
		{fmt.Sprintf("account=%s", depot.ID), 1},
		{"month=2026-03", 1},
		{"month=2026-05", 0},
	}

	for _, tt := range tests {
		suite.Run(tt.query, func() {
			r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/investments?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var response v1.InvestmentListResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Assert().Len(response.Data, tt.len)
		})
	}

	r := test.Request(suite.T(), http.MethodDelete, investment.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, investment.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestInvestmentsCreateFails() {
	user := suite.createTestUser(v1.UserEditable{})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/investments", []v1.InvestmentEditable{{UserID: user.ID, Amount: decimal.NewFromInt(-1)}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/investments", []v1.InvestmentEditable{{UserID: uuid.New(), Amount: decimal.NewFromInt(1)}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
