package v1_test

import (
	"fmt"
	"net/http"

	"github.com/fund-split/backend/internal/allocation"
	v1 "github.com/fund-split/backend/internal/controllers/v1"
	"github.com/fund-split/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createTestTransfer(editable v1.TransferEditable) v1.Transfer {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transfers", []v1.TransferEditable{editable})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.TransferCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return *response.Data[0].Data
}

func (suite *TestSuiteStandard) TestTransfersCreateAndList() {
	user := suite.createTestUser(v1.UserEditable{})
	checking := suite.createTestAccount(v1.AccountEditable{UserID: user.ID, Name: "Checking"})
	savings := suite.createTestAccount(v1.AccountEditable{UserID: user.ID, Name: "Savings"})
	wallet := suite.createTestAccount(v1.AccountEditable{UserID: user.ID, Name: "Wallet"})

	transfer := suite.createTestTransfer(v1.TransferEditable{
		UserID:               user.ID,
		SourceAccountID:      checking.ID,
		DestinationAccountID: savings.ID,
		Amount:               decimal.NewFromInt(200),
		Category:             ptr(allocation.Savings),
		Date:                 march,
	})
	suite.Assert().Equal(checking.ID, transfer.SourceAccountID)
	suite.Assert().Equal(ptr(allocation.Savings), transfer.Category)

	_ = suite.createTestTransfer(v1.TransferEditable{
		UserID:               user.ID,
		SourceAccountID:      savings.ID,
		DestinationAccountID: wallet.ID,
		Amount:               decimal.NewFromInt(50),
		Date:                 march.AddDate(0, 1, 0),
	})

	tests := []struct {
		query string
		len   int
	}{
		{"", 2},
		{fmt.Sprintf("account=%s", checking.ID), 1},
		{fmt.Sprintf("account=%s", savings.ID), 2},
		{fmt.Sprintf("account=%s", wallet.ID), 1},
		{"month=2026-04", 1},
		{"category=savings", 1},
	}

	for _, tt := range tests {
		suite.Run(tt.query, func() {
			r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/transfers?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var response v1.TransferListResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Assert().Len(response.Data, tt.len)
		})
	}

	r := test.Request(suite.T(), http.MethodDelete, transfer.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, transfer.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransfersCreateFails() {
	user := suite.createTestUser(v1.UserEditable{})
	other := suite.createTestUser(v1.UserEditable{Name: "Other"})
	checking := suite.createTestAccount(v1.AccountEditable{UserID: user.ID, Name: "Checking"})
	savings := suite.createTestAccount(v1.AccountEditable{UserID: user.ID, Name: "Savings"})
	foreign := suite.createTestAccount(v1.AccountEditable{UserID: other.ID})

	tests := []struct {
		name     string
		transfer v1.TransferEditable
		status   int
	}{
		{"Same account", v1.TransferEditable{UserID: user.ID, SourceAccountID: checking.ID, DestinationAccountID: checking.ID, Amount: decimal.NewFromInt(10)}, http.StatusBadRequest},
		{"Zero amount", v1.TransferEditable{UserID: user.ID, SourceAccountID: checking.ID, DestinationAccountID: savings.ID}, http.StatusBadRequest},
		{"Account of other user", v1.TransferEditable{UserID: user.ID, SourceAccountID: checking.ID, DestinationAccountID: foreign.ID, Amount: decimal.NewFromInt(10)}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transfers", []v1.TransferEditable{tt.transfer})
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
		})
	}
}
