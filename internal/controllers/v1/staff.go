package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sahana-eden/budget/internal/httputil"
	"github.com/sahana-eden/budget/internal/models"
	"github.com/sahana-eden/budget/internal/rollup"
	"github.com/shopspring/decimal"
)

// StaffEditable represents all user configurable parameters of a staff type.
type StaffEditable struct {
	Name     string          `json:"name" example:"Field Engineer"`                   // Unique name of the staff type
	Grade    string          `json:"grade" example:"P3"`                              // Grade of the staff type
	Salary   decimal.Decimal `json:"salary" swaggertype:"string" example:"4200"`      // Monthly salary
	Travel   decimal.Decimal `json:"travel" swaggertype:"string" example:"850"`       // One-time travel cost
	Currency string          `json:"currency" example:"USD"`                          // ISO 4217 code. Defaults to the configured currency
	Comments string          `json:"comments" example:"Deployed for the first phase"` // Free text comments
}

func (editable StaffEditable) model() models.Staff {
	return models.Staff{
		Name:     editable.Name,
		Grade:    editable.Grade,
		Salary:   editable.Salary,
		Travel:   editable.Travel,
		Currency: editable.Currency,
		Comments: editable.Comments,
	}
}

type StaffLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/staff/5"` // The staff type itself
}

type Staff struct {
	models.Staff
	Links StaffLinks `json:"links"`
}

func newStaff(c *gin.Context, model models.Staff) Staff {
	return Staff{
		Staff: model,
		Links: StaffLinks{
			Self: fmt.Sprintf("%s/v1/staff/%d", baseURL(c), model.ID),
		},
	}
}

type StaffResponse struct {
	Data Staff `json:"data"` // Data for the staff type
}

type StaffListResponse struct {
	Data []Staff `json:"data"` // List of staff types
}

type StaffQueryFilter struct {
	Name    string `form:"name"`    // Glob pattern for the name
	Grade   string `form:"grade"`   // Exact grade
	Deleted bool   `form:"deleted"` // Include soft-deleted staff types
}

// RegisterStaffRoutes registers the routes for staff types with
// the RouterGroup that is passed.
func (co Controller) RegisterStaffRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetStaffList)
		r.POST("", co.CreateStaff)
	}

	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", co.GetStaff)
		r.PATCH("/:id", co.UpdateStaff)
		r.DELETE("/:id", co.DeleteStaff)
		r.OPTIONS("/:id/soft-delete", httputil.OptionsPost)
		r.POST("/:id/soft-delete", co.SoftDeleteStaff)
		r.OPTIONS("/:id/restore", httputil.OptionsPost)
		r.POST("/:id/restore", co.RestoreStaff)
	}
}

// @Summary		Create staff type
// @Tags			Staff
// @Accept			json
// @Produce		json
// @Success		201		{object}	StaffResponse
// @Failure		400		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			staff	body		StaffEditable	true	"Staff type"
// @Router			/v1/staff [post]
func (co Controller) CreateStaff(c *gin.Context) {
	var editable StaffEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	staff, err := co.Engine.CreateStaff(c.Request.Context(), editable.model())
	render(c, http.StatusCreated, StaffResponse{Data: newStaff(c, staff)}, err)
}

// @Summary		Get staff types
// @Tags			Staff
// @Produce		json
// @Success		200		{object}	StaffListResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			name	query		string	false	"Filter by name, * matches any characters"
// @Param			grade	query		string	false	"Filter by grade"
// @Param			deleted	query		bool	false	"Include soft-deleted staff types"
// @Router			/v1/staff [get]
func (co Controller) GetStaffList(c *gin.Context) {
	var filter StaffQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	staff, err := co.Engine.ListStaff(c.Request.Context(), rollup.StaffFilter{
		Name:           filter.Name,
		Grade:          filter.Grade,
		IncludeDeleted: filter.Deleted,
	})
	if err != nil {
		abort(c, err)
		return
	}

	data := make([]Staff, 0, len(staff))
	for _, s := range staff {
		data = append(data, newStaff(c, s))
	}

	c.JSON(http.StatusOK, StaffListResponse{Data: data})
}

// @Summary		Get staff type
// @Tags			Staff
// @Produce		json
// @Success		200	{object}	StaffResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the staff type"
// @Router			/v1/staff/{id} [get]
func (co Controller) GetStaff(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	staff, err := co.Engine.GetStaff(c.Request.Context(), id)
	render(c, http.StatusOK, StaffResponse{Data: newStaff(c, staff)}, err)
}

// @Summary		Update staff type
// @Description	Salary and travel changes propagate to all budgets using the staff type.
// @Tags			Staff
// @Accept			json
// @Produce		json
// @Success		200		{object}	StaffResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		uint			true	"ID of the staff type"
// @Param			staff	body		StaffEditable	true	"Staff type"
// @Router			/v1/staff/{id} [patch]
func (co Controller) UpdateStaff(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	fields, err := httputil.GetBodyFields(c, StaffEditable{})
	if err != nil {
		return
	}

	if len(fields) == 0 {
		co.GetStaff(c)
		return
	}

	var editable StaffEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	staff, err := co.Engine.UpdateStaff(c.Request.Context(), id, editable.model(), fields...)
	render(c, http.StatusOK, StaffResponse{Data: newStaff(c, staff)}, err)
}

// @Summary		Delete staff type
// @Tags			Staff
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the staff type"
// @Router			/v1/staff/{id} [delete]
func (co Controller) DeleteStaff(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := co.Engine.DeleteStaff(c.Request.Context(), id); err != nil {
		abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Soft-delete staff type
// @Tags			Staff
// @Produce		json
// @Success		200	{object}	StaffResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the staff type"
// @Router			/v1/staff/{id}/soft-delete [post]
func (co Controller) SoftDeleteStaff(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	staff, err := co.Engine.SoftDeleteStaff(c.Request.Context(), id)
	render(c, http.StatusOK, StaffResponse{Data: newStaff(c, staff)}, err)
}

// @Summary		Restore staff type
// @Tags			Staff
// @Produce		json
// @Success		200	{object}	StaffResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the staff type"
// @Router			/v1/staff/{id}/restore [post]
func (co Controller) RestoreStaff(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	staff, err := co.Engine.RestoreStaff(c.Request.Context(), id)
	render(c, http.StatusOK, StaffResponse{Data: newStaff(c, staff)}, err)
}
