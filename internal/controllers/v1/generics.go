package v1

import (
	"net/http"
	"reflect"

	"github.com/fund-split/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

type resource interface {
	models.User | models.Account | models.Income | models.Expense | models.Transfer | models.Investment | models.MatchRule
}

// patch copies the fields named in fields from editable to model. The
// fields must have the same name and type on both.
func patch(model any, editable any, fields []any) {
	dst := reflect.Indirect(reflect.ValueOf(model))
	src := reflect.Indirect(reflect.ValueOf(editable))

	for _, f := range fields {
		name := f.(string)
		dst.FieldByName(name).Set(src.FieldByName(name))
	}
}

// fromURI returns the resource with the ID from the URI.
func fromURI[R resource](c *gin.Context) (R, error) {
	var r R

	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return r, err
	}

	err = models.DB.First(&r, "id = ?", uri.ID.UUID).Error
	return r, err
}

// resourceOptionsDetail responds to an OPTIONS request for a resource with an ID.
func resourceOptionsDetail[R resource](c *gin.Context, _ R, options gin.HandlerFunc) {
	_, err := fromURI[R](c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	options(c)
}

// deleteResource deletes the resource with the ID from the URI.
func deleteResource[R resource](c *gin.Context, _ R) {
	r, err := fromURI[R](c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&r).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, gin.H{})
}

// limit returns the limit for a collection query, 50 unless the limit is
// set in the query string.
func limit(setFields []string, requested int) int {
	if slices.Contains(setFields, "Limit") {
		return requested
	}
	return 50
}
