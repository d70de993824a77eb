package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sahana-eden/budget/internal/httputil"
	"github.com/sahana-eden/budget/internal/models"
	"github.com/sahana-eden/budget/internal/rollup"
)

// KitItemEditable is the quantity of a kit line.
type KitItemEditable struct {
	Quantity uint `json:"quantity" example:"3"` // Number of units
}

// RegisterLineRoutes registers the routes for single lines of kits,
// bundles and budgets. Lines are created on their parent.
func (co Controller) RegisterLineRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/kit-items/:id", httputil.OptionsPatchDelete)
	r.PATCH("/kit-items/:id", co.UpdateKitItem)
	r.DELETE("/kit-items/:id", co.DeleteKitItem)

	r.OPTIONS("/bundle-kits/:id", httputil.OptionsPatchDelete)
	r.PATCH("/bundle-kits/:id", co.UpdateBundleKit)
	r.DELETE("/bundle-kits/:id", co.DeleteBundleKit)

	r.OPTIONS("/bundle-items/:id", httputil.OptionsPatchDelete)
	r.PATCH("/bundle-items/:id", co.UpdateBundleItem)
	r.DELETE("/bundle-items/:id", co.DeleteBundleItem)

	r.OPTIONS("/budget-staff/:id", httputil.OptionsPatchDelete)
	r.PATCH("/budget-staff/:id", co.UpdateBudgetStaff)
	r.DELETE("/budget-staff/:id", co.DeleteBudgetStaff)

	r.OPTIONS("/budget-bundles/:id", httputil.OptionsPatchDelete)
	r.PATCH("/budget-bundles/:id", co.UpdateBudgetBundle)
	r.DELETE("/budget-bundles/:id", co.DeleteBudgetBundle)
}

// noContent writes 204 or the error response.
func noContent(c *gin.Context, err error) {
	if err != nil {
		abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Update kit item
// @Tags			Lines
// @Accept			json
// @Produce		json
// @Success		200		{object}	KitItemResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		uint			true	"ID of the line"
// @Param			line	body		KitItemEditable	true	"Line"
// @Router			/v1/kit-items/{id} [patch]
func (co Controller) UpdateKitItem(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var editable KitItemEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	line, err := co.Engine.UpdateKitItemQuantity(c.Request.Context(), id, editable.Quantity)
	render(c, http.StatusOK, KitItemResponse{Data: line}, err)
}

// @Summary		Delete kit item
// @Tags			Lines
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the line"
// @Router			/v1/kit-items/{id} [delete]
func (co Controller) DeleteKitItem(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	noContent(c, co.Engine.RemoveKitItem(c.Request.Context(), id))
}

// @Summary		Update bundle kit
// @Tags			Lines
// @Accept			json
// @Produce		json
// @Success		200		{object}	BundleKitResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		uint				true	"ID of the line"
// @Param			line	body		models.Consumption	true	"Consumption"
// @Router			/v1/bundle-kits/{id} [patch]
func (co Controller) UpdateBundleKit(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var consumption models.Consumption
	if err := httputil.BindData(c, &consumption); err != nil {
		return
	}

	line, err := co.Engine.UpdateBundleKit(c.Request.Context(), id, consumption)
	render(c, http.StatusOK, BundleKitResponse{Data: line}, err)
}

// @Summary		Delete bundle kit
// @Tags			Lines
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the line"
// @Router			/v1/bundle-kits/{id} [delete]
func (co Controller) DeleteBundleKit(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	noContent(c, co.Engine.RemoveBundleKit(c.Request.Context(), id))
}

// @Summary		Update bundle item
// @Tags			Lines
// @Accept			json
// @Produce		json
// @Success		200		{object}	BundleItemResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		uint				true	"ID of the line"
// @Param			line	body		models.Consumption	true	"Consumption"
// @Router			/v1/bundle-items/{id} [patch]
func (co Controller) UpdateBundleItem(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var consumption models.Consumption
	if err := httputil.BindData(c, &consumption); err != nil {
		return
	}

	line, err := co.Engine.UpdateBundleItem(c.Request.Context(), id, consumption)
	render(c, http.StatusOK, BundleItemResponse{Data: line}, err)
}

// @Summary		Delete bundle item
// @Tags			Lines
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the line"
// @Router			/v1/bundle-items/{id} [delete]
func (co Controller) DeleteBundleItem(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	noContent(c, co.Engine.RemoveBundleItem(c.Request.Context(), id))
}

// @Summary		Update budget staff
// @Description	Replaces all fields of a staff line
// @Tags			Lines
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetStaffResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		uint				true	"ID of the line"
// @Param			line	body		rollup.StaffLine	true	"Line"
// @Router			/v1/budget-staff/{id} [patch]
func (co Controller) UpdateBudgetStaff(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var line rollup.StaffLine
	if err := httputil.BindData(c, &line); err != nil {
		return
	}

	updated, err := co.Engine.UpdateBudgetStaff(c.Request.Context(), id, line)
	render(c, http.StatusOK, BudgetStaffResponse{Data: updated}, err)
}

// @Summary		Delete budget staff
// @Tags			Lines
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the line"
// @Router			/v1/budget-staff/{id} [delete]
func (co Controller) DeleteBudgetStaff(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	noContent(c, co.Engine.RemoveBudgetStaff(c.Request.Context(), id))
}

// @Summary		Update budget bundle
// @Description	Replaces all fields of a bundle line
// @Tags			Lines
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetBundleResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		uint				true	"ID of the line"
// @Param			line	body		rollup.BundleLine	true	"Line"
// @Router			/v1/budget-bundles/{id} [patch]
func (co Controller) UpdateBudgetBundle(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var line rollup.BundleLine
	if err := httputil.BindData(c, &line); err != nil {
		return
	}

	updated, err := co.Engine.UpdateBudgetBundle(c.Request.Context(), id, line)
	render(c, http.StatusOK, BudgetBundleResponse{Data: updated}, err)
}

// @Summary		Delete budget bundle
// @Tags			Lines
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the line"
// @Router			/v1/budget-bundles/{id} [delete]
func (co Controller) DeleteBudgetBundle(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	noContent(c, co.Engine.RemoveBudgetBundle(c.Request.Context(), id))
}
