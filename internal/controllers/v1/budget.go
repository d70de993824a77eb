package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sahana-eden/budget/internal/httputil"
	"github.com/sahana-eden/budget/internal/models"
	"github.com/sahana-eden/budget/internal/rollup"
)

// BudgetEditable represents all user configurable parameters of a budget.
type BudgetEditable struct {
	Name        string `json:"name" example:"Haiti Earthquake Response"`                      // Unique name of the budget
	Description string `json:"description" example:"Telecommunications for the first months"` // Description of the budget
	Comments    string `json:"comments" example:""`                                           // Free text comments
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Name:        editable.Name,
		Description: editable.Description,
		Comments:    editable.Comments,
	}
}

type BudgetLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/budgets/1"`              // The budget itself
	Lines    string `json:"lines" example:"https://example.com/api/v1/budgets/1/lines"`       // Staff and bundle lines
	Totals   string `json:"totals" example:"https://example.com/api/v1/budgets/1/totals"`     // Totals of the budget
	Snapshot string `json:"snapshot" example:"https://example.com/api/v1/budgets/1/snapshot"` // Snapshot for export
	Refresh  string `json:"refresh" example:"https://example.com/api/v1/budgets/1/refresh"`   // Recalculates the budget
}

type Budget struct {
	models.Budget
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	self := fmt.Sprintf("%s/v1/budgets/%d", baseURL(c), model.ID)

	return Budget{
		Budget: model,
		Links: BudgetLinks{
			Self:     self,
			Lines:    self + "/lines",
			Totals:   self + "/totals",
			Snapshot: self + "/snapshot",
			Refresh:  self + "/refresh",
		},
	}
}

type BudgetResponse struct {
	Data Budget `json:"data"` // Data for the budget
}

type BudgetListResponse struct {
	Data []Budget `json:"data"` // List of budgets
}

type BudgetTotalsResponse struct {
	Data models.BudgetCosts `json:"data"` // Totals of the budget
}

type BudgetLinesResponse struct {
	Data rollup.BudgetLines `json:"data"` // Lines of the budget
}

type BudgetStaffResponse struct {
	Data models.BudgetStaff `json:"data"` // The line
}

type BudgetBundleResponse struct {
	Data models.BudgetBundle `json:"data"` // The line
}

type SnapshotResponse struct {
	Data rollup.Snapshot `json:"data"` // The snapshot
}

type BudgetQueryFilter struct {
	Name    string `form:"name"`    // Glob pattern for the name
	Deleted bool   `form:"deleted"` // Include deleted budgets
}

// BudgetLinesEditable replaces all lines of a budget.
type BudgetLinesEditable struct {
	Staff   []rollup.StaffLine  `json:"staff"`   // Staff lines
	Bundles []rollup.BundleLine `json:"bundles"` // Bundle lines
}

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetBudgets)
		r.POST("", co.CreateBudget)
	}

	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", co.GetBudget)
		r.PATCH("/:id", co.UpdateBudget)
		r.DELETE("/:id", co.DeleteBudget)
		r.OPTIONS("/:id/totals", httputil.OptionsGet)
		r.GET("/:id/totals", co.GetBudgetTotals)
		r.OPTIONS("/:id/snapshot", httputil.OptionsGet)
		r.GET("/:id/snapshot", co.GetSnapshot)
		r.OPTIONS("/:id/refresh", httputil.OptionsPost)
		r.POST("/:id/refresh", co.RefreshBudget)
	}

	{
		r.OPTIONS("/:id/lines", httputil.OptionsGetPut)
		r.GET("/:id/lines", co.GetBudgetLines)
		r.PUT("/:id/lines", co.SetBudgetLines)
		r.OPTIONS("/:id/staff", httputil.OptionsPost)
		r.POST("/:id/staff", co.AddBudgetStaff)
		r.OPTIONS("/:id/bundles", httputil.OptionsPost)
		r.POST("/:id/bundles", co.AddBudgetBundle)
	}
}

// @Summary		Create budget
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets [post]
func (co Controller) CreateBudget(c *gin.Context) {
	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	budget, err := co.Engine.CreateBudget(c.Request.Context(), editable.model())
	render(c, http.StatusCreated, BudgetResponse{Data: newBudget(c, budget)}, err)
}

// @Summary		Get budgets
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetListResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			name	query		string	false	"Filter by name, * matches any characters"
// @Param			deleted	query		bool	false	"Include deleted budgets"
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	budgets, err := co.Engine.ListBudgets(c.Request.Context(), rollup.BudgetFilter{
		Name:           filter.Name,
		IncludeDeleted: filter.Deleted,
	})
	if err != nil {
		abort(c, err)
		return
	}

	data := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		data = append(data, newBudget(c, budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Get budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the budget"
// @Router			/v1/budgets/{id} [get]
func (co Controller) GetBudget(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	budget, err := co.Engine.GetBudget(c.Request.Context(), id)
	render(c, http.StatusOK, BudgetResponse{Data: newBudget(c, budget)}, err)
}

// @Summary		Update budget
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		uint			true	"ID of the budget"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{id} [patch]
func (co Controller) UpdateBudget(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	fields, err := httputil.GetBodyFields(c, BudgetEditable{})
	if err != nil {
		return
	}

	if len(fields) == 0 {
		co.GetBudget(c)
		return
	}

	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	budget, err := co.Engine.UpdateBudget(c.Request.Context(), id, editable.model(), fields...)
	render(c, http.StatusOK, BudgetResponse{Data: newBudget(c, budget)}, err)
}

// @Summary		Delete budget
// @Description	Deletes a budget together with all of its lines
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the budget"
// @Router			/v1/budgets/{id} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := co.Engine.DeleteBudget(c.Request.Context(), id); err != nil {
		abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Get budget totals
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetTotalsResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the budget"
// @Router			/v1/budgets/{id}/totals [get]
func (co Controller) GetBudgetTotals(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	totals, err := co.Engine.BudgetTotals(c.Request.Context(), id)
	render(c, http.StatusOK, BudgetTotalsResponse{Data: totals}, err)
}

// @Summary		Get budget snapshot
// @Description	Returns the budget with all lines, their contents and costs, read in one transaction
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	SnapshotResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the budget"
// @Router			/v1/budgets/{id}/snapshot [get]
func (co Controller) GetSnapshot(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	snapshot, err := co.Engine.Snapshot(c.Request.Context(), id)
	render(c, http.StatusOK, SnapshotResponse{Data: snapshot}, err)
}

// @Summary		Refresh budget
// @Description	Recalculates every kit, bundle and the budget itself from their definitions. Idempotent.
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the budget"
// @Router			/v1/budgets/{id}/refresh [post]
func (co Controller) RefreshBudget(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	budget, err := co.Engine.Refresh(c.Request.Context(), id)
	render(c, http.StatusOK, BudgetResponse{Data: newBudget(c, budget)}, err)
}

// @Summary		Get budget lines
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetLinesResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the budget"
// @Router			/v1/budgets/{id}/lines [get]
func (co Controller) GetBudgetLines(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	lines, err := co.Engine.BudgetLines(c.Request.Context(), id)
	render(c, http.StatusOK, BudgetLinesResponse{Data: lines}, err)
}

// @Summary		Set budget lines
// @Description	Replaces all staff and bundle lines of a budget
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetLinesResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		uint				true	"ID of the budget"
// @Param			lines	body		BudgetLinesEditable	true	"Lines"
// @Router			/v1/budgets/{id}/lines [put]
func (co Controller) SetBudgetLines(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var editable BudgetLinesEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	lines, err := co.Engine.SetBudgetLines(c.Request.Context(), id, editable.Staff, editable.Bundles)
	render(c, http.StatusOK, BudgetLinesResponse{Data: lines}, err)
}

// @Summary		Add budget staff
// @Description	Deploys a staff type in a budget. The same staff type can be deployed at different locations or for different projects.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetStaffResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		uint				true	"ID of the budget"
// @Param			line	body		rollup.StaffLine	true	"Line"
// @Router			/v1/budgets/{id}/staff [post]
func (co Controller) AddBudgetStaff(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var line rollup.StaffLine
	if err := httputil.BindData(c, &line); err != nil {
		return
	}

	created, err := co.Engine.AddBudgetStaff(c.Request.Context(), id, line)
	render(c, http.StatusCreated, BudgetStaffResponse{Data: created}, err)
}

// @Summary		Add budget bundle
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetBundleResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		uint				true	"ID of the budget"
// @Param			line	body		rollup.BundleLine	true	"Line"
// @Router			/v1/budgets/{id}/bundles [post]
func (co Controller) AddBudgetBundle(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var line rollup.BundleLine
	if err := httputil.BindData(c, &line); err != nil {
		return
	}

	created, err := co.Engine.AddBudgetBundle(c.Request.Context(), id, line)
	render(c, http.StatusCreated, BudgetBundleResponse{Data: created}, err)
}
