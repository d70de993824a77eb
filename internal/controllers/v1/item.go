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

// ItemEditable represents all user configurable parameters of an item.
type ItemEditable struct {
	Code         string              `json:"code" example:"VSAT-01"`                                 // Unique code of the item
	Description  string              `json:"description" example:"VSAT terminal"`                    // Description of the item
	Category     models.ItemCategory `json:"category" example:"Satellite"`                           // Category of the item
	CostType     models.CostType     `json:"costType" example:"one-time"`                            // Informational cost type
	UnitCost     decimal.Decimal     `json:"unitCost" swaggertype:"string" example:"1500.00"`        // One-time cost per unit
	MonthlyCost  decimal.Decimal     `json:"monthlyCost" swaggertype:"string" example:"40.00"`       // Recurring cost per unit and month
	MinuteCost   decimal.Decimal     `json:"minuteCost" swaggertype:"string" example:"0.50"`         // Cost per minute of airtime
	MegabyteCost decimal.Decimal     `json:"megabyteCost" swaggertype:"string" example:"2.00"`       // Cost per megabyte of traffic
	Comments     string              `json:"comments" example:"Ordered from the regional warehouse"` // Free text comments
}

func (editable ItemEditable) model() models.Item {
	return models.Item{
		Code:         editable.Code,
		Description:  editable.Description,
		Category:     editable.Category,
		CostType:     editable.CostType,
		UnitCost:     editable.UnitCost,
		MonthlyCost:  editable.MonthlyCost,
		MinuteCost:   editable.MinuteCost,
		MegabyteCost: editable.MegabyteCost,
		Comments:     editable.Comments,
	}
}

type ItemLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/items/4"` // The item itself
}

type Item struct {
	models.Item
	Links ItemLinks `json:"links"`
}

func newItem(c *gin.Context, model models.Item) Item {
	return Item{
		Item: model,
		Links: ItemLinks{
			Self: fmt.Sprintf("%s/v1/items/%d", baseURL(c), model.ID),
		},
	}
}

type ItemResponse struct {
	Data Item `json:"data"` // Data for the item
}

type ItemListResponse struct {
	Data []Item `json:"data"` // List of items
}

type ItemQueryFilter struct {
	Code     string `form:"code"`     // Glob pattern for the code
	Category string `form:"category"` // Exact category
	CostType string `form:"costType"` // Exact cost type
	Deleted  bool   `form:"deleted"`  // Include soft-deleted items
}

// RegisterItemRoutes registers the routes for items with
// the RouterGroup that is passed.
func (co Controller) RegisterItemRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetItems)
		r.POST("", co.CreateItem)
	}

	// Item with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", co.GetItem)
		r.PATCH("/:id", co.UpdateItem)
		r.DELETE("/:id", co.DeleteItem)
		r.OPTIONS("/:id/soft-delete", httputil.OptionsPost)
		r.POST("/:id/soft-delete", co.SoftDeleteItem)
		r.OPTIONS("/:id/restore", httputil.OptionsPost)
		r.POST("/:id/restore", co.RestoreItem)
	}
}

// @Summary		Create item
// @Description	Creates a new item
// @Tags			Items
// @Accept			json
// @Produce		json
// @Success		201		{object}	ItemResponse
// @Failure		400		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			item	body		ItemEditable	true	"Item"
// @Router			/v1/items [post]
func (co Controller) CreateItem(c *gin.Context) {
	var editable ItemEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	item, err := co.Engine.CreateItem(c.Request.Context(), editable.model())
	render(c, http.StatusCreated, ItemResponse{Data: newItem(c, item)}, err)
}

// @Summary		Get items
// @Description	Returns a list of items ordered by code
// @Tags			Items
// @Produce		json
// @Success		200			{object}	ItemListResponse
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			code		query		string	false	"Filter by code, * matches any characters"
// @Param			category	query		string	false	"Filter by category"
// @Param			costType	query		string	false	"Filter by cost type"
// @Param			deleted		query		bool	false	"Include soft-deleted items"
// @Router			/v1/items [get]
func (co Controller) GetItems(c *gin.Context) {
	var filter ItemQueryFilter

	// Every parameter is bound into a string or bool
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	items, err := co.Engine.ListItems(c.Request.Context(), rollup.ItemFilter{
		Code:           filter.Code,
		Category:       models.ItemCategory(filter.Category),
		CostType:       models.CostType(filter.CostType),
		IncludeDeleted: filter.Deleted,
	})
	if err != nil {
		abort(c, err)
		return
	}

	data := make([]Item, 0, len(items))
	for _, item := range items {
		data = append(data, newItem(c, item))
	}

	c.JSON(http.StatusOK, ItemListResponse{Data: data})
}

// @Summary		Get item
// @Description	Returns a specific item, soft-deleted items included
// @Tags			Items
// @Produce		json
// @Success		200	{object}	ItemResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the item"
// @Router			/v1/items/{id} [get]
func (co Controller) GetItem(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	item, err := co.Engine.GetItem(c.Request.Context(), id)
	render(c, http.StatusOK, ItemResponse{Data: newItem(c, item)}, err)
}

// @Summary		Update item
// @Description	Updates an item. Only values to be updated need to be specified. Cost changes propagate to all kits, bundles and budgets using the item.
// @Tags			Items
// @Accept			json
// @Produce		json
// @Success		200		{object}	ItemResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		uint			true	"ID of the item"
// @Param			item	body		ItemEditable	true	"Item"
// @Router			/v1/items/{id} [patch]
func (co Controller) UpdateItem(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	fields, err := httputil.GetBodyFields(c, ItemEditable{})
	if err != nil {
		return
	}

	if len(fields) == 0 {
		co.GetItem(c)
		return
	}

	var editable ItemEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	item, err := co.Engine.UpdateItem(c.Request.Context(), id, editable.model(), fields...)
	render(c, http.StatusOK, ItemResponse{Data: newItem(c, item)}, err)
}

// @Summary		Delete item
// @Description	Deletes an item permanently. Fails while any kit or bundle uses it.
// @Tags			Items
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the item"
// @Router			/v1/items/{id} [delete]
func (co Controller) DeleteItem(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := co.Engine.DeleteItem(c.Request.Context(), id); err != nil {
		abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Soft-delete item
// @Description	Marks an item as deleted. It stops contributing to all totals immediately.
// @Tags			Items
// @Produce		json
// @Success		200	{object}	ItemResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the item"
// @Router			/v1/items/{id}/soft-delete [post]
func (co Controller) SoftDeleteItem(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	item, err := co.Engine.SoftDeleteItem(c.Request.Context(), id)
	render(c, http.StatusOK, ItemResponse{Data: newItem(c, item)}, err)
}

// @Summary		Restore item
// @Description	Restores a soft-deleted item
// @Tags			Items
// @Produce		json
// @Success		200	{object}	ItemResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the item"
// @Router			/v1/items/{id}/restore [post]
func (co Controller) RestoreItem(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	item, err := co.Engine.RestoreItem(c.Request.Context(), id)
	render(c, http.StatusOK, ItemResponse{Data: newItem(c, item)}, err)
}
