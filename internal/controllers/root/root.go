// Package root serves the entrypoint of the API.
package root

import (
	"net/http"

	"github.com/fund-split/backend/internal/httputil"
	"github.com/fund-split/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"` // Links to all top level endpoints
}

type Links struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"` // Swagger UI
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"`      // Health check, verifies the database connection
	Version string `json:"version" example:"https://example.com/api/version"`      // Version of the running backend
	Metrics string `json:"metrics" example:"https://example.com/api/metrics"`      // Prometheus metrics
	V1      string `json:"v1" example:"https://example.com/api/v1"`                // Links to all v1 resources
}

// newLinks returns the links for the API served at base.
func newLinks(base string) Links {
	return Links{
		Docs:    base + "/docs/index.html",
		Healthz: base + "/healthz",
		Version: base + "/version",
		Metrics: base + "/metrics",
		V1:      base + "/v1",
	}
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		API root
// @Description	Entrypoint for the API, linking to all top level endpoints
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Links: newLinks(c.GetString(string(models.DBContextURL)))})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
