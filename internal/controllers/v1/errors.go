package v1

import (
	"errors"
	"net/http"

	"github.com/fund-split/backend/internal/models"
)

// status returns the HTTP status code for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// highestStatus returns the status for err if it is higher than current.
// Collection creation responds with the highest status of all resources.
func highestStatus(err error, current int) int {
	if s := status(err); s > current {
		return s
	}

	return current
}

var (
	errUserParameter       = errors.New("the user parameter must be set")
	errCleanupConfirmation = errors.New("the confirmation for deleting all income was incorrect. Set confirm to 'yes-please-delete-everything'")
)

// httpError is used for error responses that contain a body.
type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}
