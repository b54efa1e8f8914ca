package v1

import (
	"fmt"

	"github.com/fund-split/backend/internal/models"
	ez_uuid "github.com/fund-split/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AccountEditable struct {
	UserID uuid.UUID          `json:"userId" example:"95685c82-53c6-455d-b235-f49960b73b21"` // ID of the user the account belongs to
	Name   string             `json:"name" example:"Checking"`                               // Name of the account. Must be unique per user
	Type   models.AccountType `json:"type" example:"checking" default:"checking"`            // One of checking, savings, cash, investment, credit. Income deposited to cash accounts is not allocated
	Note   string             `json:"note" example:"Main account"`                           // A note about the account
	Hidden bool               `json:"hidden" example:"false" default:"false"`                // Hidden accounts are not shown in user interfaces by default
}

func (editable AccountEditable) model() models.Account {
	return models.Account{
		UserID: editable.UserID,
		Name:   editable.Name,
		Type:   editable.Type,
		Note:   editable.Note,
		Hidden: editable.Hidden,
	}
}

type AccountLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`           // The account itself
	User    string `json:"user" example:"https://example.com/api/v1/users/95685c82-53c6-455d-b235-f49960b73b21"`              // The user the account belongs to
	Incomes string `json:"incomes" example:"https://example.com/api/v1/incomes?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Income deposited to the account
}

// Account is the API representation of an Account.
type Account struct {
	models.DefaultModel
	AccountEditable
	Links AccountLinks `json:"links"`
}

func newAccount(c *gin.Context, model models.Account) Account {
	url := c.GetString(string(models.DBContextURL))

	return Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			UserID: model.UserID,
			Name:   model.Name,
			Type:   model.Type,
			Note:   model.Note,
			Hidden: model.Hidden,
		},
		Links: AccountLinks{
			Self:    fmt.Sprintf("%s/v1/accounts/%s", url, model.ID),
			User:    fmt.Sprintf("%s/v1/users/%s", url, model.UserID),
			Incomes: fmt.Sprintf("%s/v1/incomes?account=%s", url, model.ID),
		},
	}
}

type AccountListResponse struct {
	Data       []Account   `json:"data"`                                                          // List of Accounts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type AccountCreateResponse struct {
	Data  []AccountResponse `json:"data"`                                                          // List of the created Accounts or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (a *AccountCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AccountResponse{Error: &s})
	return highestStatus(err, currentStatus)
}

type AccountResponse struct {
	Data  *Account `json:"data"`                                                          // Data for the Account
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AccountQueryFilter struct {
	UserID ez_uuid.UUID       `form:"user"`                       // By ID of the user
	Name   string             `form:"name" filterField:"false"`   // By name
	Type   models.AccountType `form:"type"`                       // By type
	Hidden bool               `form:"hidden"`                     // Is the account hidden?
	Offset uint               `form:"offset" filterField:"false"` // The offset of the first Account returned. Defaults to 0.
	Limit  int                `form:"limit" filterField:"false"`  // Maximum number of Accounts to return. Defaults to 50.
}

func (f AccountQueryFilter) model() models.Account {
	return models.Account{
		UserID: f.UserID.UUID,
		Type:   f.Type,
		Hidden: f.Hidden,
	}
}
