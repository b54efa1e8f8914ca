package v1

import (
	"github.com/fund-split/backend/internal/allocation"
	"github.com/fund-split/backend/internal/tracking"
	"github.com/fund-split/backend/internal/types"
	"github.com/shopspring/decimal"
)

type TrackingResponse struct {
	Data  *tracking.Report `json:"data"`                                                                                        // The tracking of all categories
	Error *string          `json:"error" example:"there is no allocation policy for the user, configure fund allocation first"` // The error, if any occurred
}

type HistoryResponse struct {
	Data  *tracking.HistoryReport `json:"data"`                                                                                        // The history of all categories
	Error *string                 `json:"error" example:"there is no allocation policy for the user, configure fund allocation first"` // The error, if any occurred
}

// Balances are the recomputed category balances of a month.
type Balances struct {
	Month          string                                  `json:"month" example:"2026-03"`    // The month in YYYY-MM format
	Balances       map[allocation.Category]decimal.Decimal `json:"balances"`                   // Allocated per category
	Income         decimal.Decimal                         `json:"income" example:"1500"`      // All income of the month, including cash deposits
	Allocated      decimal.Decimal                         `json:"allocated" example:"1300"`   // Income that was allocated to the categories
	SavingsOverCap decimal.Decimal                         `json:"savingsOverCap" example:"0"` // How far savings is above its cap
}

func newBalances(month types.Month, b allocation.MonthBalances) Balances {
	return Balances{
		Month:          month.String(),
		Balances:       b.Balances,
		Income:         b.Income,
		Allocated:      b.Allocated,
		SavingsOverCap: b.SavingsOverCap,
	}
}

type BalancesResponse struct {
	Data  *Balances `json:"data"`                                                                                        // The recomputed balances
	Error *string   `json:"error" example:"there is no allocation policy for the user, configure fund allocation first"` // The error, if any occurred
}
