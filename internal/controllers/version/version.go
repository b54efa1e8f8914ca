// Package version reports the build of the running backend.
package version

import (
	"net/http"
	"runtime"

	"github.com/fund-split/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Data Object `json:"data"` // Data object for the version endpoint
}

type Object struct {
	Version   string `json:"version" example:"1.1.0"`      // Version of the running Fund Split backend
	GoVersion string `json:"goVersion" example:"go1.22.4"` // Go release the backend was built with
}

// RegisterRoutes registers the version endpoints, reporting version as the
// backend version.
func RegisterRoutes(r *gin.RouterGroup, version string) {
	r.OPTIONS("", Options)
	r.GET("", Get(version))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns the handler for the version endpoint.
//
//	@Summary		API version
//	@Description	Returns the software version of the API and the Go release it was built with
//	@Tags			General
//	@Success		200	{object}	Response
//	@Router			/version [get]
func Get(version string) gin.HandlerFunc {
	response := Response{Data: Object{
		Version:   version,
		GoVersion: runtime.Version(),
	}}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response)
	}
}
