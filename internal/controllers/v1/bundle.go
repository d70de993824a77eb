package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sahana-eden/budget/internal/httputil"
	"github.com/sahana-eden/budget/internal/models"
	"github.com/sahana-eden/budget/internal/rollup"
)

// BundleEditable represents all user configurable parameters of a bundle.
type BundleEditable struct {
	Name        string `json:"name" example:"Field Office Connectivity"`                     // Unique name of the bundle
	Description string `json:"description" example:"Everything a field office needs online"` // Description of the bundle
	Comments    string `json:"comments" example:""`                                          // Free text comments
}

func (editable BundleEditable) model() models.Bundle {
	return models.Bundle{
		Name:        editable.Name,
		Description: editable.Description,
		Comments:    editable.Comments,
	}
}

type BundleLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/bundles/1"`              // The bundle itself
	Contents string `json:"contents" example:"https://example.com/api/v1/bundles/1/contents"` // Kits and items of the bundle
	Totals   string `json:"totals" example:"https://example.com/api/v1/bundles/1/totals"`     // Totals of the bundle
}

type Bundle struct {
	models.Bundle
	Links BundleLinks `json:"links"`
}

func newBundle(c *gin.Context, model models.Bundle) Bundle {
	self := fmt.Sprintf("%s/v1/bundles/%d", baseURL(c), model.ID)

	return Bundle{
		Bundle: model,
		Links: BundleLinks{
			Self:     self,
			Contents: self + "/contents",
			Totals:   self + "/totals",
		},
	}
}

type BundleResponse struct {
	Data Bundle `json:"data"` // Data for the bundle
}

type BundleListResponse struct {
	Data []Bundle `json:"data"` // List of bundles
}

type BundleTotalsResponse struct {
	Data models.BundleCosts `json:"data"` // Totals of the bundle
}

type BundleContentsResponse struct {
	Data rollup.BundleContents `json:"data"` // Lines of the bundle
}

type BundleKitResponse struct {
	Data models.BundleKit `json:"data"` // The line
}

type BundleItemResponse struct {
	Data models.BundleItem `json:"data"` // The line
}

type BundleQueryFilter struct {
	Name    string `form:"name"`    // Glob pattern for the name
	Deleted bool   `form:"deleted"` // Include deleted bundles
}

// BundleKitCreate adds a kit to a bundle.
type BundleKitCreate struct {
	KitID uint `json:"kitId" example:"2"` // ID of the kit
	models.Consumption
}

// BundleItemCreate adds an item directly to a bundle.
type BundleItemCreate struct {
	ItemID uint `json:"itemId" example:"4"` // ID of the item
	models.Consumption
}

// RegisterBundleRoutes registers the routes for bundles with
// the RouterGroup that is passed.
func (co Controller) RegisterBundleRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetBundles)
		r.POST("", co.CreateBundle)
	}

	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", co.GetBundle)
		r.PATCH("/:id", co.UpdateBundle)
		r.DELETE("/:id", co.DeleteBundle)
		r.OPTIONS("/:id/totals", httputil.OptionsGet)
		r.GET("/:id/totals", co.GetBundleTotals)
	}

	{
		r.OPTIONS("/:id/contents", httputil.OptionsGetPut)
		r.GET("/:id/contents", co.GetBundleContents)
		r.PUT("/:id/contents", co.SetBundleContents)
		r.OPTIONS("/:id/kits", httputil.OptionsPost)
		r.POST("/:id/kits", co.AddBundleKit)
		r.OPTIONS("/:id/items", httputil.OptionsPost)
		r.POST("/:id/items", co.AddBundleItem)
	}
}

// @Summary		Create bundle
// @Tags			Bundles
// @Accept			json
// @Produce		json
// @Success		201		{object}	BundleResponse
// @Failure		400		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			bundle	body		BundleEditable	true	"Bundle"
// @Router			/v1/bundles [post]
func (co Controller) CreateBundle(c *gin.Context) {
	var editable BundleEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	bundle, err := co.Engine.CreateBundle(c.Request.Context(), editable.model())
	render(c, http.StatusCreated, BundleResponse{Data: newBundle(c, bundle)}, err)
}

// @Summary		Get bundles
// @Tags			Bundles
// @Produce		json
// @Success		200		{object}	BundleListResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			name	query		string	false	"Filter by name, * matches any characters"
// @Param			deleted	query		bool	false	"Include deleted bundles"
// @Router			/v1/bundles [get]
func (co Controller) GetBundles(c *gin.Context) {
	var filter BundleQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	bundles, err := co.Engine.ListBundles(c.Request.Context(), rollup.BundleFilter{
		Name:           filter.Name,
		IncludeDeleted: filter.Deleted,
	})
	if err != nil {
		abort(c, err)
		return
	}

	data := make([]Bundle, 0, len(bundles))
	for _, bundle := range bundles {
		data = append(data, newBundle(c, bundle))
	}

	c.JSON(http.StatusOK, BundleListResponse{Data: data})
}

// @Summary		Get bundle
// @Tags			Bundles
// @Produce		json
// @Success		200	{object}	BundleResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the bundle"
// @Router			/v1/bundles/{id} [get]
func (co Controller) GetBundle(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	bundle, err := co.Engine.GetBundle(c.Request.Context(), id)
	render(c, http.StatusOK, BundleResponse{Data: newBundle(c, bundle)}, err)
}

// @Summary		Update bundle
// @Tags			Bundles
// @Accept			json
// @Produce		json
// @Success		200		{object}	BundleResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		uint			true	"ID of the bundle"
// @Param			bundle	body		BundleEditable	true	"Bundle"
// @Router			/v1/bundles/{id} [patch]
func (co Controller) UpdateBundle(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	fields, err := httputil.GetBodyFields(c, BundleEditable{})
	if err != nil {
		return
	}

	if len(fields) == 0 {
		co.GetBundle(c)
		return
	}

	var editable BundleEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	bundle, err := co.Engine.UpdateBundle(c.Request.Context(), id, editable.model(), fields...)
	render(c, http.StatusOK, BundleResponse{Data: newBundle(c, bundle)}, err)
}

// @Summary		Delete bundle
// @Description	Deletes a bundle and its lines. Fails while any budget uses the bundle.
// @Tags			Bundles
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the bundle"
// @Router			/v1/bundles/{id} [delete]
func (co Controller) DeleteBundle(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := co.Engine.DeleteBundle(c.Request.Context(), id); err != nil {
		abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Get bundle totals
// @Tags			Bundles
// @Produce		json
// @Success		200	{object}	BundleTotalsResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the bundle"
// @Router			/v1/bundles/{id}/totals [get]
func (co Controller) GetBundleTotals(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	totals, err := co.Engine.BundleTotals(c.Request.Context(), id)
	render(c, http.StatusOK, BundleTotalsResponse{Data: totals}, err)
}

// @Summary		Get bundle contents
// @Tags			Bundles
// @Produce		json
// @Success		200	{object}	BundleContentsResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the bundle"
// @Router			/v1/bundles/{id}/contents [get]
func (co Controller) GetBundleContents(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	contents, err := co.Engine.BundleContents(c.Request.Context(), id)
	render(c, http.StatusOK, BundleContentsResponse{Data: contents}, err)
}

// @Summary		Set bundle contents
// @Description	Replaces the kits and items of a bundle. Each entry references exactly one kit or one item.
// @Tags			Bundles
// @Accept			json
// @Produce		json
// @Success		200			{object}	BundleContentsResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		409			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		uint					true	"ID of the bundle"
// @Param			contents	body		[]rollup.BundleContent	true	"Contents"
// @Router			/v1/bundles/{id}/contents [put]
func (co Controller) SetBundleContents(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var contents []rollup.BundleContent
	if err := httputil.BindData(c, &contents); err != nil {
		return
	}

	result, err := co.Engine.SetBundleContents(c.Request.Context(), id, contents)
	render(c, http.StatusOK, BundleContentsResponse{Data: result}, err)
}

// @Summary		Add bundle kit
// @Tags			Bundles
// @Accept			json
// @Produce		json
// @Success		201		{object}	BundleKitResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		uint			true	"ID of the bundle"
// @Param			line	body		BundleKitCreate	true	"Line"
// @Router			/v1/bundles/{id}/kits [post]
func (co Controller) AddBundleKit(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var line BundleKitCreate
	if err := httputil.BindData(c, &line); err != nil {
		return
	}

	created, err := co.Engine.AddBundleKit(c.Request.Context(), id, line.KitID, line.Consumption)
	render(c, http.StatusCreated, BundleKitResponse{Data: created}, err)
}

// @Summary		Add bundle item
// @Tags			Bundles
// @Accept			json
// @Produce		json
// @Success		201		{object}	BundleItemResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		uint				true	"ID of the bundle"
// @Param			line	body		BundleItemCreate	true	"Line"
// @Router			/v1/bundles/{id}/items [post]
func (co Controller) AddBundleItem(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var line BundleItemCreate
	if err := httputil.BindData(c, &line); err != nil {
		return
	}

	created, err := co.Engine.AddBundleItem(c.Request.Context(), id, line.ItemID, line.Consumption)
	render(c, http.StatusCreated, BundleItemResponse{Data: created}, err)
}
