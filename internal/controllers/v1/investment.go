package v1

import (
	"net/http"

	"github.com/fund-split/backend/internal/httputil"
	"github.com/fund-split/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterInvestmentRoutes registers the routes for investments with
// the RouterGroup that is passed.
func RegisterInvestmentRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsInvestmentList)
		r.GET("", GetInvestments)
		r.POST("", CreateInvestments)
	}

	// Investment with ID
	{
		r.OPTIONS("/:id", OptionsInvestmentDetail)
		r.GET("/:id", GetInvestment)
		r.DELETE("/:id", DeleteInvestment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Investments
// @Success		204
// @Router			/v1/investments [options]
func OptionsInvestmentList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Investments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/investments/{id} [options]
func OptionsInvestmentDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Investment{}, httputil.OptionsGetDelete)
}

// @Summary		Create investments
// @Description	Creates investments from the list of submitted investment data. The response code is the highest response code number that a single investment creation would have caused. If it is not equal to 201, at least one investment has an error.
// @Tags			Investments
// @Produce		json
// @Success		201			{object}	InvestmentCreateResponse
// @Failure		400			{object}	InvestmentCreateResponse
// @Failure		404			{object}	InvestmentCreateResponse
// @Failure		500			{object}	InvestmentCreateResponse
// @Param			investments	body		[]InvestmentEditable	true	"Investments"
// @Router			/v1/investments [post]
func CreateInvestments(c *gin.Context) {
	var investments []InvestmentEditable

	err := httputil.BindData(c, &investments)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentCreateResponse{Error: &e})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := InvestmentCreateResponse{}

	for _, editable := range investments {
		investment := editable.model()

		err = models.DB.Create(&investment).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newInvestment(c, investment)
		r.Data = append(r.Data, InvestmentResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get investments
// @Description	Returns a list of investments, newest first. Investments are the only spending of the investment category
// @Tags			Investments
// @Produce		json
// @Success		200			{object}	InvestmentListResponse
// @Failure		400			{object}	InvestmentListResponse
// @Failure		500			{object}	InvestmentListResponse
// @Param			user		query		string	false	"Filter by user ID"
// @Param			account		query		string	false	"Filter by account ID"
// @Param			month		query		string	false	"Filter by month in YYYY-MM format"
// @Param			offset		query		uint	false	"The offset of the first Investment returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of Investments to return. Defaults to 50."
// @Router			/v1/investments [get]
func GetInvestments(c *gin.Context) {
	var filter InvestmentQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, InvestmentListResponse{Error: &s})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("date DESC, created_at DESC").
		Where(filter.model(), queryFields...)

	limit := limit(setFields, filter.Limit)
	q = q.Offset(int(filter.Offset)).Limit(limit)

	var investments []models.Investment
	err := q.Find(&investments).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentListResponse{Error: &e})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentListResponse{Error: &e})
		return
	}

	data := make([]Investment, 0, len(investments))
	for _, investment := range investments {
		data = append(data, newInvestment(c, investment))
	}

	c.JSON(http.StatusOK, InvestmentListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get investment
// @Description	Returns a specific investment
// @Tags			Investments
// @Produce		json
// @Success		200	{object}	InvestmentResponse
// @Failure		400	{object}	InvestmentResponse
// @Failure		404	{object}	InvestmentResponse
// @Failure		500	{object}	InvestmentResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/investments/{id} [get]
func GetInvestment(c *gin.Context) {
	investment, err := fromURI[models.Investment](c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentResponse{Error: &e})
		return
	}

	data := newInvestment(c, investment)
	c.JSON(http.StatusOK, InvestmentResponse{Data: &data})
}

// @Summary		Delete investment
// @Description	Deletes an investment
// @Tags			Investments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/investments/{id} [delete]
func DeleteInvestment(c *gin.Context) {
	deleteResource(c, models.Investment{})
}
