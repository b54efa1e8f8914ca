package v1

import (
	"fmt"
	"time"

	"github.com/fund-split/backend/internal/allocation"
	"github.com/fund-split/backend/internal/models"
	"github.com/fund-split/backend/internal/types"
	ez_uuid "github.com/fund-split/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ExpenseEditable struct {
	UserID    uuid.UUID            `json:"userId" example:"95685c82-53c6-455d-b235-f49960b73b21"`    // ID of the user
	AccountID *uuid.UUID           `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // ID of the account the money was spent from
	Amount    decimal.Decimal      `json:"amount" example:"14.99" swaggertype:"string"`              // The amount spent. Must be greater than zero
	Category  *allocation.Category `json:"category" example:"guiltFreeSpending"`                     // The category the expense is spent from. Set from the match rules of the user when empty
	Date      time.Time            `json:"date" example:"2026-03-04T00:00:00Z"`                      // Date of the expense. Defaults to now
	Note      string               `json:"note" example:"Concert tickets"`                           // A note about the expense
}

func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		UserID:    editable.UserID,
		AccountID: editable.AccountID,
		Amount:    editable.Amount,
		Category:  editable.Category,
		Date:      editable.Date,
		Note:      editable.Note,
	}
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/5b1a3f8f-3a18-4d44-a5d6-7a3c2f4e0d11"` // The expense itself
	User string `json:"user" example:"https://example.com/api/v1/users/95685c82-53c6-455d-b235-f49960b73b21"`    // The user the expense belongs to
}

// Expense is the API representation of an Expense.
type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Month types.Month  `json:"month" swaggertype:"string" example:"2026-03-01T00:00:00Z"` // The month the expense counts towards
	Links ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			UserID:    model.UserID,
			AccountID: model.AccountID,
			Amount:    model.Amount,
			Category:  model.Category,
			Date:      model.Date,
			Note:      model.Note,
		},
		Month: model.Month,
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
			User: fmt.Sprintf("%s/v1/users/%s", url, model.UserID),
		},
	}
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of Expenses
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseCreateResponse struct {
	Data  []ExpenseResponse `json:"data"`                                                          // List of the created Expenses or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (e *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, ExpenseResponse{Error: &s})
	return highestStatus(err, currentStatus)
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // Data for the Expense
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	UserID    ez_uuid.UUID        `form:"user"`                                         // By ID of the user
	AccountID ez_uuid.UUID        `form:"account"`                                      // By ID of the account
	Month     types.Month         `form:"month" swaggertype:"string" example:"2026-03"` // By month in YYYY-MM format
	Category  allocation.Category `form:"category"`                                     // By category
	Note      string              `form:"note" filterField:"false"`                     // By note
	Offset    uint                `form:"offset" filterField:"false"`                   // The offset of the first Expense returned. Defaults to 0.
	Limit     int                 `form:"limit" filterField:"false"`                    // Maximum number of Expenses to return. Defaults to 50.
}

func (f ExpenseQueryFilter) model() models.Expense {
	e := models.Expense{
		UserID:    f.UserID.UUID,
		Month:     f.Month,
		AccountID: f.AccountID.Ptr(),
	}

	if f.Category != "" {
		e.Category = &f.Category
	}

	return e
}
