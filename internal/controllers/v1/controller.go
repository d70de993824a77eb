// Package v1 contains the HTTP handlers for the v1 API.
//
// Handlers are thin: they bind the request, call the engine and render the
// result. All validation and all writes happen in the engine.
package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sahana-eden/budget/internal/models"
	"github.com/sahana-eden/budget/internal/rollup"
)

type Controller struct {
	Engine *rollup.Engine
}

// URIID is the ID of a resource in the path.
type URIID struct {
	ID uint `uri:"id" binding:"required" example:"17"` // ID of the resource
}

// bindID binds the ID in the path. If binding fails, the error response is written.
func bindID(c *gin.Context) (uint, bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: fmt.Sprintf("the resource ID must be a positive integer: %s", err.Error()),
		})
		return 0, false
	}

	return uri.ID, true
}

// render writes data with the status passed in, or the error response if err is set.
func render(c *gin.Context, code int, data any, err error) {
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(code, data)
}

// baseURL is the configured URL of the API.
func baseURL(c *gin.Context) string {
	return c.GetString(string(models.DBContextURL))
}

// RegisterRoutes registers all v1 resources with the group that is passed.
func (co Controller) RegisterRoutes(v1 *gin.RouterGroup) {
	co.RegisterItemRoutes(v1.Group("/items"))
	co.RegisterStaffRoutes(v1.Group("/staff"))
	co.RegisterLocationRoutes(v1.Group("/locations"))
	co.RegisterKitRoutes(v1.Group("/kits"))
	co.RegisterBundleRoutes(v1.Group("/bundles"))
	co.RegisterBudgetRoutes(v1.Group("/budgets"))
	co.RegisterLineRoutes(v1)
	co.RegisterMaintenanceRoutes(v1)
}
