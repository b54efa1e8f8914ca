package v1

import (
	"fmt"
	"time"

	"github.com/fund-split/backend/internal/models"
	"github.com/fund-split/backend/internal/types"
	ez_uuid "github.com/fund-split/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InvestmentEditable struct {
	UserID    uuid.UUID       `json:"userId" example:"95685c82-53c6-455d-b235-f49960b73b21"`    // ID of the user
	AccountID *uuid.UUID      `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // ID of the account the money was invested from
	Amount    decimal.Decimal `json:"amount" example:"100" swaggertype:"string"`                // The amount invested. Must be greater than zero
	Date      time.Time       `json:"date" example:"2026-03-05T00:00:00Z"`                      // Date of the investment. Defaults to now
	Note      string          `json:"note" example:"ETF savings plan"`                          // A note about the investment
}

func (editable InvestmentEditable) model() models.Investment {
	return models.Investment{
		UserID:    editable.UserID,
		AccountID: editable.AccountID,
		Amount:    editable.Amount,
		Date:      editable.Date,
		Note:      editable.Note,
	}
}

type InvestmentLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/investments/8f1c2b7e-9a4d-4c1e-8e2a-6b5d4c3a2f10"` // The investment itself
	User string `json:"user" example:"https://example.com/api/v1/users/95685c82-53c6-455d-b235-f49960b73b21"`       // The user the investment belongs to
}

// Investment is the API representation of an Investment.
type Investment struct {
	models.DefaultModel
	InvestmentEditable
	Month types.Month     `json:"month" swaggertype:"string" example:"2026-03-01T00:00:00Z"` // The month the investment counts towards
	Links InvestmentLinks `json:"links"`
}

func newInvestment(c *gin.Context, model models.Investment) Investment {
	url := c.GetString(string(models.DBContextURL))

	return Investment{
		DefaultModel: model.DefaultModel,
		InvestmentEditable: InvestmentEditable{
			UserID:    model.UserID,
			AccountID: model.AccountID,
			Amount:    model.Amount,
			Date:      model.Date,
			Note:      model.Note,
		},
		Month: model.Month,
		Links: InvestmentLinks{
			Self: fmt.Sprintf("%s/v1/investments/%s", url, model.ID),
			User: fmt.Sprintf("%s/v1/users/%s", url, model.UserID),
		},
	}
}

type InvestmentListResponse struct {
	Data       []Investment `json:"data"`                                                          // List of Investments
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type InvestmentCreateResponse struct {
	Data  []InvestmentResponse `json:"data"`                                                          // List of the created Investments or their respective error
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (i *InvestmentCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	i.Data = append(i.Data, InvestmentResponse{Error: &s})
	return highestStatus(err, currentStatus)
}

type InvestmentResponse struct {
	Data  *Investment `json:"data"`                                                          // Data for the Investment
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type InvestmentQueryFilter struct {
	UserID    ez_uuid.UUID `form:"user"`                                         // By ID of the user
	AccountID ez_uuid.UUID `form:"account"`                                      // By ID of the account
	Month     types.Month  `form:"month" swaggertype:"string" example:"2026-03"` // By month in YYYY-MM format
	Offset    uint         `form:"offset" filterField:"false"`                   // The offset of the first Investment returned. Defaults to 0.
	Limit     int          `form:"limit" filterField:"false"`                    // Maximum number of Investments to return. Defaults to 50.
}

func (f InvestmentQueryFilter) model() models.Investment {
	return models.Investment{
		UserID:    f.UserID.UUID,
		Month:     f.Month,
		AccountID: f.AccountID.Ptr(),
	}
}
