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

type TransferEditable struct {
	UserID               uuid.UUID            `json:"userId" example:"95685c82-53c6-455d-b235-f49960b73b21"`               // ID of the user
	SourceAccountID      uuid.UUID            `json:"sourceAccountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`      // ID of the account the money is transferred from
	DestinationAccountID uuid.UUID            `json:"destinationAccountId" example:"1e2d4d0e-65a3-4b6e-9c0f-5c1f3c6a8a42"` // ID of the account the money is transferred to
	Amount               decimal.Decimal      `json:"amount" example:"200" swaggertype:"string"`                           // The amount transferred. Must be greater than zero
	Category             *allocation.Category `json:"category" example:"savings"`                                          // The category the transfer moves funds of
	Date                 time.Time            `json:"date" example:"2026-03-02T00:00:00Z"`                                 // Date of the transfer. Defaults to now
	Note                 string               `json:"note" example:"Monthly savings"`                                      // A note about the transfer
}

func (editable TransferEditable) model() models.Transfer {
	return models.Transfer{
		UserID:               editable.UserID,
		SourceAccountID:      editable.SourceAccountID,
		DestinationAccountID: editable.DestinationAccountID,
		Amount:               editable.Amount,
		Category:             editable.Category,
		Date:                 editable.Date,
		Note:                 editable.Note,
	}
}

type TransferLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transfers/0d0b64a1-5d53-4e0e-9b3c-41f2b0b2a6c7"` // The transfer itself
	User string `json:"user" example:"https://example.com/api/v1/users/95685c82-53c6-455d-b235-f49960b73b21"`     // The user the transfer belongs to
}

// Transfer is the API representation of a Transfer.
type Transfer struct {
	models.DefaultModel
	TransferEditable
	Month types.Month   `json:"month" swaggertype:"string" example:"2026-03-01T00:00:00Z"` // The month the transfer counts towards
	Links TransferLinks `json:"links"`
}

func newTransfer(c *gin.Context, model models.Transfer) Transfer {
	url := c.GetString(string(models.DBContextURL))

	return Transfer{
		DefaultModel: model.DefaultModel,
		TransferEditable: TransferEditable{
			UserID:               model.UserID,
			SourceAccountID:      model.SourceAccountID,
			DestinationAccountID: model.DestinationAccountID,
			Amount:               model.Amount,
			Category:             model.Category,
			Date:                 model.Date,
			Note:                 model.Note,
		},
		Month: model.Month,
		Links: TransferLinks{
			Self: fmt.Sprintf("%s/v1/transfers/%s", url, model.ID),
			User: fmt.Sprintf("%s/v1/users/%s", url, model.UserID),
		},
	}
}

type TransferListResponse struct {
	Data       []Transfer  `json:"data"`                                                          // List of Transfers
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type TransferCreateResponse struct {
	Data  []TransferResponse `json:"data"`                                                          // List of the created Transfers or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (t *TransferCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransferResponse{Error: &s})
	return highestStatus(err, currentStatus)
}

type TransferResponse struct {
	Data  *Transfer `json:"data"`                                                          // Data for the Transfer
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransferQueryFilter struct {
	UserID    ez_uuid.UUID        `form:"user"`                                         // By ID of the user
	AccountID ez_uuid.UUID        `form:"account" filterField:"false"`                  // By ID of the source or destination account
	Month     types.Month         `form:"month" swaggertype:"string" example:"2026-03"` // By month in YYYY-MM format
	Category  allocation.Category `form:"category"`                                     // By category
	Offset    uint                `form:"offset" filterField:"false"`                   // The offset of the first Transfer returned. Defaults to 0.
	Limit     int                 `form:"limit" filterField:"false"`                    // Maximum number of Transfers to return. Defaults to 50.
}

func (f TransferQueryFilter) model() models.Transfer {
	t := models.Transfer{
		UserID: f.UserID.UUID,
		Month:  f.Month,
	}

	if f.Category != "" {
		t.Category = &f.Category
	}

	return t
}
