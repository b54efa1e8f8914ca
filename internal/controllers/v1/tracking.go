package v1

import (
	"net/http"

	"github.com/fund-split/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterTrackingRoutes registers the routes for category tracking,
// history and recomputation with the RouterGroup that is passed.
func RegisterTrackingRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/tracking", OptionsTracking)
	r.GET("/tracking", GetTracking)

	r.OPTIONS("/history", OptionsHistory)
	r.GET("/history", GetHistory)

	r.OPTIONS("/balances/recompute", OptionsRecompute)
	r.POST("/balances/recompute", Recompute)
}

// bindUserMonth binds the query and verifies that the user is set.
func bindUserMonth(c *gin.Context) (QueryUserMonth, error) {
	var query QueryUserMonth
	err := c.ShouldBindQuery(&query)
	if err != nil {
		return QueryUserMonth{}, err
	}

	if query.UserID.IsNil() {
		return QueryUserMonth{}, errUserParameter
	}

	return query, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Tracking
// @Success		204
// @Router			/v1/tracking [options]
func OptionsTracking(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get category tracking
// @Description	Returns allocated, spent, transferred and carried over funds of all categories for a month
// @Tags			Tracking
// @Produce		json
// @Success		200		{object}	TrackingResponse
// @Failure		400		{object}	TrackingResponse
// @Failure		404		{object}	TrackingResponse
// @Failure		500		{object}	TrackingResponse
// @Param			user	query		string	true	"ID of the user"
// @Param			month	query		string	false	"The month in YYYY-MM format. Defaults to the current month"
// @Router			/v1/tracking [get]
func GetTracking(c *gin.Context) {
	query, err := bindUserMonth(c)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TrackingResponse{Error: &e})
		return
	}

	report, err := service.Tracking(c.Request.Context(), query.UserID.UUID, query.month())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TrackingResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, TrackingResponse{Data: &report})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Tracking
// @Success		204
// @Router			/v1/history [options]
func OptionsHistory(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get category history
// @Description	Returns allocated and spent funds of all categories for the six months ending with the month, oldest first
// @Tags			Tracking
// @Produce		json
// @Success		200		{object}	HistoryResponse
// @Failure		400		{object}	HistoryResponse
// @Failure		404		{object}	HistoryResponse
// @Failure		500		{object}	HistoryResponse
// @Param			user	query		string	true	"ID of the user"
// @Param			month	query		string	false	"The last month in YYYY-MM format. Defaults to the current month"
// @Router			/v1/history [get]
func GetHistory(c *gin.Context) {
	query, err := bindUserMonth(c)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, HistoryResponse{Error: &e})
		return
	}

	history, err := service.History(c.Request.Context(), query.UserID.UUID, query.month())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HistoryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, HistoryResponse{Data: &history})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Tracking
// @Success		204
// @Router			/v1/balances/recompute [options]
func OptionsRecompute(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Recompute category balances
// @Description	Derives the category balances of the month from all of its income and overwrites the stored balances
// @Tags			Tracking
// @Produce		json
// @Success		200		{object}	BalancesResponse
// @Failure		400		{object}	BalancesResponse
// @Failure		404		{object}	BalancesResponse
// @Failure		500		{object}	BalancesResponse
// @Param			user	query		string	true	"ID of the user"
// @Param			month	query		string	false	"The month in YYYY-MM format. Defaults to the current month"
// @Router			/v1/balances/recompute [post]
func Recompute(c *gin.Context) {
	query, err := bindUserMonth(c)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BalancesResponse{Error: &e})
		return
	}

	month := query.month()
	balances, err := service.Recompute(c.Request.Context(), query.UserID.UUID, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BalancesResponse{Error: &e})
		return
	}

	data := newBalances(month, balances)
	c.JSON(http.StatusOK, BalancesResponse{Data: &data})
}
