package v1

import (
	"net/http"

	"github.com/fund-split/backend/internal/httputil"
	"github.com/fund-split/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterIncomeRoutes registers the routes for incomes with
// the RouterGroup that is passed.
func RegisterIncomeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsIncomeList)
		r.GET("", GetIncomes)
		r.POST("", CreateIncome)
		r.DELETE("", DeleteIncomes)
	}

	// Income with ID
	{
		r.OPTIONS("/:id", OptionsIncomeDetail)
		r.GET("/:id", GetIncome)
		r.DELETE("/:id", DeleteIncome)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Router			/v1/incomes [options]
func OptionsIncomeList(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/incomes/{id} [options]
func OptionsIncomeDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Income{}, httputil.OptionsGetDelete)
}

// @Summary		Submit income
// @Description	Stores an income event, allocates it to the categories according to the allocation policy of the user and recomputes the category balances of its month. Income deposited to a cash account is stored, but not allocated.
// @Tags			Incomes
// @Accept			json
// @Produce		json
// @Success		201		{object}	IncomeCalculationResponse
// @Failure		400		{object}	IncomeCalculationResponse
// @Failure		404		{object}	IncomeCalculationResponse
// @Failure		500		{object}	IncomeCalculationResponse
// @Param			income	body		IncomeEditable	true	"Income"
// @Router			/v1/incomes [post]
func CreateIncome(c *gin.Context) {
	var editable IncomeEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeCalculationResponse{Error: &e})
		return
	}

	income, calculation, err := service.AddIncome(c.Request.Context(), editable.input())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeCalculationResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, IncomeCalculationResponse{Data: &IncomeCalculation{
		IncomeCalculation: calculation,
		Links:             newIncome(c, income).Links,
	}})
}

// @Summary		Get incomes
// @Description	Returns a list of incomes, newest first
// @Tags			Incomes
// @Produce		json
// @Success		200		{object}	IncomeListResponse
// @Failure		400		{object}	IncomeListResponse
// @Failure		500		{object}	IncomeListResponse
// @Param			user	query		string	false	"Filter by user ID"
// @Param			account	query		string	false	"Filter by account ID"
// @Param			month	query		string	false	"Filter by month in YYYY-MM format"
// @Param			offset	query		uint	false	"The offset of the first Income returned. Defaults to 0."
// @Param			limit	query		int		false	"Maximum number of Incomes to return. Defaults to 50."
// @Router			/v1/incomes [get]
func GetIncomes(c *gin.Context) {
	var filter IncomeQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, IncomeListResponse{Error: &s})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	limit := limit(setFields, filter.Limit)
	q := models.DB.
		Order("date DESC, created_at DESC").
		Where(filter.model(), queryFields...).
		Offset(int(filter.Offset)).
		Limit(limit)

	var incomes []models.Income
	err := q.Find(&incomes).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeListResponse{Error: &e})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeListResponse{Error: &e})
		return
	}

	data := make([]Income, 0, len(incomes))
	for _, income := range incomes {
		data = append(data, newIncome(c, income))
	}

	c.JSON(http.StatusOK, IncomeListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get income
// @Description	Returns a specific income
// @Tags			Incomes
// @Produce		json
// @Success		200	{object}	IncomeResponse
// @Failure		400	{object}	IncomeResponse
// @Failure		404	{object}	IncomeResponse
// @Failure		500	{object}	IncomeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/incomes/{id} [get]
func GetIncome(c *gin.Context) {
	income, err := fromURI[models.Income](c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &e})
		return
	}

	data := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &data})
}

// @Summary		Delete income
// @Description	Deletes an income and recomputes the category balances of its month
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/incomes/{id} [delete]
func DeleteIncome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = service.DeleteIncome(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, gin.H{})
}

// @Summary		Delete all income
// @Description	Permanently deletes all income and all category balances of a user
// @Tags			Incomes
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			user	query		string	true	"ID of the user"
// @Param			confirm	query		string	true	"Confirmation to delete all income. Must be set to 'yes-please-delete-everything'"
// @Router			/v1/incomes [delete]
func DeleteIncomes(c *gin.Context) {
	var params IncomeResetQuery
	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{Error: errCleanupConfirmation.Error()})
		return
	}

	if params.UserID.IsNil() {
		c.JSON(http.StatusBadRequest, httpError{Error: errUserParameter.Error()})
		return
	}

	var user models.User
	err = models.DB.First(&user, "id = ?", params.UserID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = service.ResetIncome(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, gin.H{})
}
