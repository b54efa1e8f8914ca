package v1

import (
	"net/http"

	"github.com/fund-split/backend/internal/httputil"
	"github.com/fund-split/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Users       string `json:"users" example:"https://example.com/api/v1/users"`                  // URL of User collection endpoint
	Accounts    string `json:"accounts" example:"https://example.com/api/v1/accounts"`            // URL of Account collection endpoint
	Incomes     string `json:"incomes" example:"https://example.com/api/v1/incomes"`              // URL of Income collection endpoint
	Expenses    string `json:"expenses" example:"https://example.com/api/v1/expenses"`            // URL of Expense collection endpoint
	Transfers   string `json:"transfers" example:"https://example.com/api/v1/transfers"`          // URL of Transfer collection endpoint
	Investments string `json:"investments" example:"https://example.com/api/v1/investments"`      // URL of Investment collection endpoint
	MatchRules  string `json:"matchRules" example:"https://example.com/api/v1/match-rules"`       // URL of Match Rule collection endpoint
	Tracking    string `json:"tracking" example:"https://example.com/api/v1/tracking"`            // URL of the category tracking endpoint
	History     string `json:"history" example:"https://example.com/api/v1/history"`              // URL of the category history endpoint
	Recompute   string `json:"recompute" example:"https://example.com/api/v1/balances/recompute"` // URL of the endpoint recomputing category balances
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Users:       url + "/v1/users",
			Accounts:    url + "/v1/accounts",
			Incomes:     url + "/v1/incomes",
			Expenses:    url + "/v1/expenses",
			Transfers:   url + "/v1/transfers",
			Investments: url + "/v1/investments",
			MatchRules:  url + "/v1/match-rules",
			Tracking:    url + "/v1/tracking",
			History:     url + "/v1/history",
			Recompute:   url + "/v1/balances/recompute",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
