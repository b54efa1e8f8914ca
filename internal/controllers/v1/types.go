package v1

import (
	"github.com/fund-split/backend/internal/models"
	"github.com/fund-split/backend/internal/tracking"
	"github.com/fund-split/backend/internal/types"
	ez_uuid "github.com/fund-split/backend/internal/uuid"
)

// service is shared by all handlers so that recomputations of the same
// user and month are serialized within the process.
var service = tracking.NewService(models.Ledger{}, nil)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// QueryUserMonth selects a month of a user.
type QueryUserMonth struct {
	UserID ez_uuid.UUID `form:"user"`                                         // ID of the user
	Month  types.Month  `form:"month" swaggertype:"string" example:"2026-03"` // Year and month in YYYY-MM format. Defaults to the current month
}

// month returns the month of the query, defaulting to the current one.
func (q QueryUserMonth) month() types.Month {
	if q.Month.IsZero() {
		return types.MonthOf(service.Now())
	}
	return q.Month
}

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}
