package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sahana-eden/budget/internal/httputil"
	"github.com/sahana-eden/budget/internal/models"
	"github.com/sahana-eden/budget/internal/rollup"
)

// KitEditable represents all user configurable parameters of a kit.
// The totals are calculated and can not be set.
type KitEditable struct {
	Code        string `json:"code" example:"VSAT-KIT"`                    // Unique code of the kit
	Description string `json:"description" example:"Satellite uplink kit"` // Description of the kit
	Comments    string `json:"comments" example:""`                        // Free text comments
}

func (editable KitEditable) model() models.Kit {
	return models.Kit{
		Code:        editable.Code,
		Description: editable.Description,
		Comments:    editable.Comments,
	}
}

type KitLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/kits/2"`          // The kit itself
	Items  string `json:"items" example:"https://example.com/api/v1/kits/2/items"`   // Items of the kit
	Totals string `json:"totals" example:"https://example.com/api/v1/kits/2/totals"` // Totals of the kit
}

type Kit struct {
	models.Kit
	Links KitLinks `json:"links"`
}

func newKit(c *gin.Context, model models.Kit) Kit {
	self := fmt.Sprintf("%s/v1/kits/%d", baseURL(c), model.ID)

	return Kit{
		Kit: model,
		Links: KitLinks{
			Self:   self,
			Items:  self + "/items",
			Totals: self + "/totals",
		},
	}
}

type KitResponse struct {
	Data Kit `json:"data"` // Data for the kit
}

type KitListResponse struct {
	Data []Kit `json:"data"` // List of kits
}

type KitTotalsResponse struct {
	Data models.KitCosts `json:"data"` // Totals of the kit
}

type KitItemResponse struct {
	Data models.KitItem `json:"data"` // The line
}

type KitItemListResponse struct {
	Data []models.KitItem `json:"data"` // Lines of the kit, ordered by ID
}

type KitQueryFilter struct {
	Code    string `form:"code"`    // Glob pattern for the code
	Deleted bool   `form:"deleted"` // Include soft-deleted kits
}

// RegisterKitRoutes registers the routes for kits with
// the RouterGroup that is passed.
func (co Controller) RegisterKitRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetKits)
		r.POST("", co.CreateKit)
	}

	// Kit with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", co.GetKit)
		r.PATCH("/:id", co.UpdateKit)
		r.DELETE("/:id", co.DeleteKit)
		r.OPTIONS("/:id/totals", httputil.OptionsGet)
		r.GET("/:id/totals", co.GetKitTotals)
	}

	// Contents
	{
		r.OPTIONS("/:id/items", httputil.OptionsGetPostPutPatch)
		r.GET("/:id/items", co.GetKitItems)
		r.POST("/:id/items", co.AddKitItem)
		r.PUT("/:id/items", co.SetKitItems)
		r.PATCH("/:id/items", co.UpdateKitItems)
	}
}

// @Summary		Create kit
// @Description	Creates a new, empty kit
// @Tags			Kits
// @Accept			json
// @Produce		json
// @Success		201	{object}	KitResponse
// @Failure		400	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			kit	body		KitEditable	true	"Kit"
// @Router			/v1/kits [post]
func (co Controller) CreateKit(c *gin.Context) {
	var editable KitEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	kit, err := co.Engine.CreateKit(c.Request.Context(), editable.model())
	render(c, http.StatusCreated, KitResponse{Data: newKit(c, kit)}, err)
}

// @Summary		Get kits
// @Tags			Kits
// @Produce		json
// @Success		200		{object}	KitListResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			code	query		string	false	"Filter by code, * matches any characters"
// @Param			deleted	query		bool	false	"Include deleted kits"
// @Router			/v1/kits [get]
func (co Controller) GetKits(c *gin.Context) {
	var filter KitQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	kits, err := co.Engine.ListKits(c.Request.Context(), rollup.KitFilter{
		Code:           filter.Code,
		IncludeDeleted: filter.Deleted,
	})
	if err != nil {
		abort(c, err)
		return
	}

	data := make([]Kit, 0, len(kits))
	for _, kit := range kits {
		data = append(data, newKit(c, kit))
	}

	c.JSON(http.StatusOK, KitListResponse{Data: data})
}

// @Summary		Get kit
// @Tags			Kits
// @Produce		json
// @Success		200	{object}	KitResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the kit"
// @Router			/v1/kits/{id} [get]
func (co Controller) GetKit(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	kit, err := co.Engine.GetKit(c.Request.Context(), id)
	render(c, http.StatusOK, KitResponse{Data: newKit(c, kit)}, err)
}

// @Summary		Update kit
// @Description	Updates the descriptive fields of a kit. The totals can not be set.
// @Tags			Kits
// @Accept			json
// @Produce		json
// @Success		200	{object}	KitResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint		true	"ID of the kit"
// @Param			kit	body		KitEditable	true	"Kit"
// @Router			/v1/kits/{id} [patch]
func (co Controller) UpdateKit(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	fields, err := httputil.GetBodyFields(c, KitEditable{})
	if err != nil {
		return
	}

	if len(fields) == 0 {
		co.GetKit(c)
		return
	}

	var editable KitEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	kit, err := co.Engine.UpdateKit(c.Request.Context(), id, editable.model(), fields...)
	render(c, http.StatusOK, KitResponse{Data: newKit(c, kit)}, err)
}

// @Summary		Delete kit
// @Description	Deletes a kit and its lines. Fails while any bundle uses the kit.
// @Tags			Kits
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the kit"
// @Router			/v1/kits/{id} [delete]
func (co Controller) DeleteKit(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := co.Engine.DeleteKit(c.Request.Context(), id); err != nil {
		abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Get kit totals
// @Tags			Kits
// @Produce		json
// @Success		200	{object}	KitTotalsResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the kit"
// @Router			/v1/kits/{id}/totals [get]
func (co Controller) GetKitTotals(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	totals, err := co.Engine.KitTotals(c.Request.Context(), id)
	render(c, http.StatusOK, KitTotalsResponse{Data: totals}, err)
}

// @Summary		Get kit items
// @Description	Returns the lines of a kit with their items
// @Tags			Kits
// @Produce		json
// @Success		200	{object}	KitItemListResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the kit"
// @Router			/v1/kits/{id}/items [get]
func (co Controller) GetKitItems(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	lines, err := co.Engine.KitItems(c.Request.Context(), id)
	render(c, http.StatusOK, KitItemListResponse{Data: lines}, err)
}

// @Summary		Add kit item
// @Description	Adds an item to a kit. If the kit already contains the item, the existing line is returned as existingId.
// @Tags			Kits
// @Accept			json
// @Produce		json
// @Success		201		{object}	KitItemResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		uint			true	"ID of the kit"
// @Param			line	body		rollup.KitLine	true	"Line"
// @Router			/v1/kits/{id}/items [post]
func (co Controller) AddKitItem(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var line rollup.KitLine
	if err := httputil.BindData(c, &line); err != nil {
		return
	}

	created, err := co.Engine.AddKitItem(c.Request.Context(), id, line.ItemID, line.Quantity)
	render(c, http.StatusCreated, KitItemResponse{Data: created}, err)
}

// @Summary		Set kit items
// @Description	Replaces the contents of a kit. Lines of items that stay keep their ID.
// @Tags			Kits
// @Accept			json
// @Produce		json
// @Success		200		{object}	KitItemListResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		uint				true	"ID of the kit"
// @Param			lines	body		[]rollup.KitLine	true	"Lines"
// @Router			/v1/kits/{id}/items [put]
func (co Controller) SetKitItems(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var lines []rollup.KitLine
	if err := httputil.BindData(c, &lines); err != nil {
		return
	}

	result, err := co.Engine.SetKitItems(c.Request.Context(), id, lines)
	render(c, http.StatusOK, KitItemListResponse{Data: result}, err)
}

// @Summary		Update kit items
// @Description	Edits several lines of a kit at once. All edits are applied or none is.
// @Tags			Kits
// @Accept			json
// @Produce		json
// @Success		200		{object}	KitItemListResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		uint					true	"ID of the kit"
// @Param			edits	body		[]rollup.KitItemEdit	true	"Edits"
// @Router			/v1/kits/{id}/items [patch]
func (co Controller) UpdateKitItems(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var edits []rollup.KitItemEdit
	if err := httputil.BindData(c, &edits); err != nil {
		return
	}

	result, err := co.Engine.UpdateKitItems(c.Request.Context(), id, edits)
	render(c, http.StatusOK, KitItemListResponse{Data: result}, err)
}
