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

// LocationEditable represents all user configurable parameters of a location.
type LocationEditable struct {
	Code        string          `json:"code" example:"PAP"`                             // Unique code, at most 16 characters
	Description string          `json:"description" example:"Port-au-Prince"`           // Description of the location
	Subsistence decimal.Decimal `json:"subsistence" swaggertype:"string" example:"120"` // Monthly subsistence allowance
	HazardPay   decimal.Decimal `json:"hazardPay" swaggertype:"string" example:"250"`   // Monthly hazard pay
	Comments    string          `json:"comments" example:"Office in the UNDP compound"` // Free text comments
}

func (editable LocationEditable) model() models.Location {
	return models.Location{
		Code:        editable.Code,
		Description: editable.Description,
		Subsistence: editable.Subsistence,
		HazardPay:   editable.HazardPay,
		Comments:    editable.Comments,
	}
}

type LocationLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/locations/3"` // The location itself
}

type Location struct {
	models.Location
	Links LocationLinks `json:"links"`
}

func newLocation(c *gin.Context, model models.Location) Location {
	return Location{
		Location: model,
		Links: LocationLinks{
			Self: fmt.Sprintf("%s/v1/locations/%d", baseURL(c), model.ID),
		},
	}
}

type LocationResponse struct {
	Data Location `json:"data"` // Data for the location
}

type LocationListResponse struct {
	Data []Location `json:"data"` // List of locations
}

type LocationQueryFilter struct {
	Code    string `form:"code"`    // Glob pattern for the code
	Deleted bool   `form:"deleted"` // Include soft-deleted locations
}

// RegisterLocationRoutes registers the routes for locations with
// the RouterGroup that is passed.
func (co Controller) RegisterLocationRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetLocations)
		r.POST("", co.CreateLocation)
	}

	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", co.GetLocation)
		r.PATCH("/:id", co.UpdateLocation)
		r.DELETE("/:id", co.DeleteLocation)
		r.OPTIONS("/:id/soft-delete", httputil.OptionsPost)
		r.POST("/:id/soft-delete", co.SoftDeleteLocation)
		r.OPTIONS("/:id/restore", httputil.OptionsPost)
		r.POST("/:id/restore", co.RestoreLocation)
	}
}

// @Summary		Create location
// @Tags			Locations
// @Accept			json
// @Produce		json
// @Success		201			{object}	LocationResponse
// @Failure		400			{object}	httpError
// @Failure		409			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			location	body		LocationEditable	true	"Location"
// @Router			/v1/locations [post]
func (co Controller) CreateLocation(c *gin.Context) {
	var editable LocationEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	location, err := co.Engine.CreateLocation(c.Request.Context(), editable.model())
	render(c, http.StatusCreated, LocationResponse{Data: newLocation(c, location)}, err)
}

// @Summary		Get locations
// @Tags			Locations
// @Produce		json
// @Success		200		{object}	LocationListResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			code	query		string	false	"Filter by code, * matches any characters"
// @Param			deleted	query		bool	false	"Include soft-deleted locations"
// @Router			/v1/locations [get]
func (co Controller) GetLocations(c *gin.Context) {
	var filter LocationQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	locations, err := co.Engine.ListLocations(c.Request.Context(), rollup.LocationFilter{
		Code:           filter.Code,
		IncludeDeleted: filter.Deleted,
	})
	if err != nil {
		abort(c, err)
		return
	}

	data := make([]Location, 0, len(locations))
	for _, location := range locations {
		data = append(data, newLocation(c, location))
	}

	c.JSON(http.StatusOK, LocationListResponse{Data: data})
}

// @Summary		Get location
// @Tags			Locations
// @Produce		json
// @Success		200	{object}	LocationResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the location"
// @Router			/v1/locations/{id} [get]
func (co Controller) GetLocation(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	location, err := co.Engine.GetLocation(c.Request.Context(), id)
	render(c, http.StatusOK, LocationResponse{Data: newLocation(c, location)}, err)
}

// @Summary		Update location
// @Description	Subsistence and hazard pay changes propagate to all budgets with staff at the location.
// @Tags			Locations
// @Accept			json
// @Produce		json
// @Success		200			{object}	LocationResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		409			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		uint				true	"ID of the location"
// @Param			location	body		LocationEditable	true	"Location"
// @Router			/v1/locations/{id} [patch]
func (co Controller) UpdateLocation(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	fields, err := httputil.GetBodyFields(c, LocationEditable{})
	if err != nil {
		return
	}

	if len(fields) == 0 {
		co.GetLocation(c)
		return
	}

	var editable LocationEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	location, err := co.Engine.UpdateLocation(c.Request.Context(), id, editable.model(), fields...)
	render(c, http.StatusOK, LocationResponse{Data: newLocation(c, location)}, err)
}

// @Summary		Delete location
// @Tags			Locations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the location"
// @Router			/v1/locations/{id} [delete]
func (co Controller) DeleteLocation(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := co.Engine.DeleteLocation(c.Request.Context(), id); err != nil {
		abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Soft-delete location
// @Tags			Locations
// @Produce		json
// @Success		200	{object}	LocationResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the location"
// @Router			/v1/locations/{id}/soft-delete [post]
func (co Controller) SoftDeleteLocation(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	location, err := co.Engine.SoftDeleteLocation(c.Request.Context(), id)
	render(c, http.StatusOK, LocationResponse{Data: newLocation(c, location)}, err)
}

// @Summary		Restore location
// @Tags			Locations
// @Produce		json
// @Success		200	{object}	LocationResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the location"
// @Router			/v1/locations/{id}/restore [post]
func (co Controller) RestoreLocation(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	location, err := co.Engine.RestoreLocation(c.Request.Context(), id)
	render(c, http.StatusOK, LocationResponse{Data: newLocation(c, location)}, err)
}
