package v1

import (
	"net/http"

	"github.com/fund-split/backend/internal/httputil"
	"github.com/fund-split/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterTransferRoutes registers the routes for transfers with
// the RouterGroup that is passed.
func RegisterTransferRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransferList)
		r.GET("", GetTransfers)
		r.POST("", CreateTransfers)
	}

	// Transfer with ID
	{
		r.OPTIONS("/:id", OptionsTransferDetail)
		r.GET("/:id", GetTransfer)
		r.DELETE("/:id", DeleteTransfer)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transfers
// @Success		204
// @Router			/v1/transfers [options]
func OptionsTransferList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transfers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transfers/{id} [options]
func OptionsTransferDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Transfer{}, httputil.OptionsGetDelete)
}

// @Summary		Create transfers
// @Description	Creates transfers from the list of submitted transfer data. The response code is the highest response code number that a single transfer creation would have caused. If it is not equal to 201, at least one transfer has an error.
// @Tags			Transfers
// @Produce		json
// @Success		201			{object}	TransferCreateResponse
// @Failure		400			{object}	TransferCreateResponse
// @Failure		404			{object}	TransferCreateResponse
// @Failure		500			{object}	TransferCreateResponse
// @Param			transfers	body		[]TransferEditable	true	"Transfers"
// @Router			/v1/transfers [post]
func CreateTransfers(c *gin.Context) {
	var transfers []TransferEditable

	err := httputil.BindData(c, &transfers)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferCreateResponse{Error: &e})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TransferCreateResponse{}

	for _, editable := range transfers {
		transfer := editable.model()

		err = models.DB.Create(&transfer).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newTransfer(c, transfer)
		r.Data = append(r.Data, TransferResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get transfers
// @Description	Returns a list of transfers, newest first
// @Tags			Transfers
// @Produce		json
// @Success		200			{object}	TransferListResponse
// @Failure		400			{object}	TransferListResponse
// @Failure		500			{object}	TransferListResponse
// @Param			user		query		string	false	"Filter by user ID"
// @Param			account		query		string	false	"Filter by source or destination account ID"
// @Param			month		query		string	false	"Filter by month in YYYY-MM format"
// @Param			category	query		string	false	"Filter by category"
// @Param			offset		query		uint	false	"The offset of the first Transfer returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of Transfers to return. Defaults to 50."
// @Router			/v1/transfers [get]
func GetTransfers(c *gin.Context) {
	var filter TransferQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransferListResponse{Error: &s})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("date DESC, created_at DESC").
		Where(filter.model(), queryFields...)

	if !filter.AccountID.IsNil() {
		q = q.Where("source_account_id = ? OR destination_account_id = ?", filter.AccountID.UUID, filter.AccountID.UUID)
	}

	limit := limit(setFields, filter.Limit)
	q = q.Offset(int(filter.Offset)).Limit(limit)

	var transfers []models.Transfer
	err := q.Find(&transfers).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferListResponse{Error: &e})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferListResponse{Error: &e})
		return
	}

	data := make([]Transfer, 0, len(transfers))
	for _, transfer := range transfers {
		data = append(data, newTransfer(c, transfer))
	}

	c.JSON(http.StatusOK, TransferListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get transfer
// @Description	Returns a specific transfer
// @Tags			Transfers
// @Produce		json
// @Success		200	{object}	TransferResponse
// @Failure		400	{object}	TransferResponse
// @Failure		404	{object}	TransferResponse
// @Failure		500	{object}	TransferResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transfers/{id} [get]
func GetTransfer(c *gin.Context) {
	transfer, err := fromURI[models.Transfer](c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferResponse{Error: &e})
		return
	}

	data := newTransfer(c, transfer)
	c.JSON(http.StatusOK, TransferResponse{Data: &data})
}

// @Summary		Delete transfer
// @Description	Deletes a transfer
// @Tags			Transfers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transfers/{id} [delete]
func DeleteTransfer(c *gin.Context) {
	deleteResource(c, models.Transfer{})
}
