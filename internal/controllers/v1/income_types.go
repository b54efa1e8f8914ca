package v1

import (
	"fmt"
	"time"

	"github.com/fund-split/backend/internal/models"
	"github.com/fund-split/backend/internal/tracking"
	"github.com/fund-split/backend/internal/types"
	ez_uuid "github.com/fund-split/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type IncomeEditable struct {
	UserID    uuid.UUID       `json:"userId" example:"95685c82-53c6-455d-b235-f49960b73b21"`    // ID of the user receiving the income
	AccountID *uuid.UUID      `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // ID of the account the income is deposited to
	Amount    decimal.Decimal `json:"amount" example:"1000" swaggertype:"string"`               // The amount received. Must be greater than zero
	Date      time.Time       `json:"date" example:"2026-03-01T00:00:00Z"`                      // Date of the income, informational only. The income counts towards the month it is submitted in. Defaults to now
	Note      string          `json:"note" example:"Salary March"`                              // A note about the income
}

func (editable IncomeEditable) input() tracking.IncomeInput {
	return tracking.IncomeInput{
		UserID:    editable.UserID,
		AccountID: editable.AccountID,
		Amount:    editable.Amount,
		Date:      editable.Date,
		Note:      editable.Note,
	}
}

type IncomeLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/incomes/2c3a5aa6-98a8-4fc1-b7c4-bd2ee6c3b1c4"`                         // The income itself
	User     string `json:"user" example:"https://example.com/api/v1/users/95685c82-53c6-455d-b235-f49960b73b21"`                           // The user the income belongs to
	Tracking string `json:"tracking" example:"https://example.com/api/v1/tracking?user=95685c82-53c6-455d-b235-f49960b73b21&month=2026-03"` // The category tracking of the month of the income
}

// Income is the API representation of an Income.
type Income struct {
	models.DefaultModel
	IncomeEditable
	Month                 types.Month `json:"month" swaggertype:"string" example:"2026-03-01T00:00:00Z"` // The month the income counts towards
	ExcludeFromAllocation bool        `json:"excludeFromAllocation" example:"false"`                     // Income deposited to cash accounts is not allocated
	Links                 IncomeLinks `json:"links"`
}

func newIncome(c *gin.Context, model models.Income) Income {
	url := c.GetString(string(models.DBContextURL))

	return Income{
		DefaultModel: model.DefaultModel,
		IncomeEditable: IncomeEditable{
			UserID:    model.UserID,
			AccountID: model.AccountID,
			Amount:    model.Amount,
			Date:      model.Date,
			Note:      model.Note,
		},
		Month:                 model.Month,
		ExcludeFromAllocation: model.ExcludeFromAllocation,
		Links: IncomeLinks{
			Self:     fmt.Sprintf("%s/v1/incomes/%s", url, model.ID),
			User:     fmt.Sprintf("%s/v1/users/%s", url, model.UserID),
			Tracking: fmt.Sprintf("%s/v1/tracking?user=%s&month=%s", url, model.UserID, model.Month),
		},
	}
}

// IncomeCalculation is the breakdown of a submitted income.
type IncomeCalculation struct {
	tracking.IncomeCalculation
	Links IncomeLinks `json:"links"` // Links of the stored income
}

type IncomeCalculationResponse struct {
	Data  *IncomeCalculation `json:"data"`                                                                                        // The breakdown of the income
	Error *string            `json:"error" example:"there is no allocation policy for the user, configure fund allocation first"` // The error, if any occurred
}

type IncomeListResponse struct {
	Data       []Income    `json:"data"`                                                          // List of Incomes
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type IncomeResponse struct {
	Data  *Income `json:"data"`                                                          // Data for the Income
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type IncomeQueryFilter struct {
	UserID    ez_uuid.UUID `form:"user"`                                         // By ID of the user
	AccountID ez_uuid.UUID `form:"account"`                                      // By ID of the account
	Month     types.Month  `form:"month" swaggertype:"string" example:"2026-03"` // By month in YYYY-MM format
	Offset    uint         `form:"offset" filterField:"false"`                   // The offset of the first Income returned. Defaults to 0.
	Limit     int          `form:"limit" filterField:"false"`                    // Maximum number of Incomes to return. Defaults to 50.
}

func (f IncomeQueryFilter) model() models.Income {
	return models.Income{
		UserID:    f.UserID.UUID,
		Month:     f.Month,
		AccountID: f.AccountID.Ptr(),
	}
}

// IncomeResetQuery confirms deleting all income of a user.
type IncomeResetQuery struct {
	UserID  ez_uuid.UUID `form:"user"`    // ID of the user
	Confirm string       `form:"confirm"` // Must be "yes-please-delete-everything"
}
