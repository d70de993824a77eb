package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sahana-eden/budget/internal/httputil"
	"github.com/sahana-eden/budget/internal/rollup"
)

type VerifyResponse struct {
	Data []rollup.Drift `json:"data"` // Stored totals that do not match their definition. Empty when consistent.
}

func (co Controller) RegisterMaintenanceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/verify", httputil.OptionsGet)
	r.GET("/verify", co.Verify)
	r.OPTIONS("/refresh", httputil.OptionsPost)
	r.POST("/refresh", co.RefreshAll)
}

// @Summary		Verify totals
// @Description	Recalculates all totals and reports every stored total that differs. Nothing is written.
// @Tags			Maintenance
// @Produce		json
// @Success		200	{object}	VerifyResponse
// @Failure		500	{object}	httpError
// @Router			/v1/verify [get]
func (co Controller) Verify(c *gin.Context) {
	drifts, err := co.Engine.Verify(c.Request.Context())
	if drifts == nil {
		drifts = []rollup.Drift{}
	}

	render(c, http.StatusOK, VerifyResponse{Data: drifts}, err)
}

// @Summary		Refresh all budgets
// @Description	Recalculates every kit, bundle and budget from their definitions
// @Tags			Maintenance
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/v1/refresh [post]
func (co Controller) RefreshAll(c *gin.Context) {
	noContent(c, co.Engine.RefreshAll(c.Request.Context()))
}
