// Package item - item catalog API controller.
package item

import (
	"net/http"
	"strconv"

	"shopapi/api/response"
	itemapp "shopapi/application/item"

	"github.com/gin-gonic/gin"
)

// Controller item controller.
type Controller struct {
	itemService *itemapp.Service
}

// NewController creates the item controller.
func NewController(itemService *itemapp.Service) *Controller {
	return &Controller{itemService: itemService}
}

// RegisterRoutes registers item routes.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	itemGroup := router.Group("/items")
	{
		itemGroup.POST("", c.Create)
		itemGroup.GET("", c.List)
		itemGroup.GET("/:id", c.Get)
		itemGroup.PUT("/:id", c.Update)
	}
}

// Create adds an item.
// POST /api/v1/items
func (c *Controller) Create(ctx *gin.Context) {
	var req itemapp.CreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	it, err := c.itemService.Create(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, it, "item created successfully")
}

// List returns the catalog.
// GET /api/v1/items
func (c *Controller) List(ctx *gin.Context) {
	items, err := c.itemService.List(ctx.Request.Context())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, items, "items retrieved successfully")
}

// Get returns one item.
// GET /api/v1/items/:id
func (c *Controller) Get(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		response.HandleError(ctx, err, "invalid item id", http.StatusBadRequest)
		return
	}

	it, err := c.itemService.Get(ctx.Request.Context(), id)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, it, "item retrieved successfully")
}

// Update changes an item's base fields.
// PUT /api/v1/items/:id
func (c *Controller) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		response.HandleError(ctx, err, "invalid item id", http.StatusBadRequest)
		return
	}

	var req itemapp.UpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	it, err := c.itemService.Update(ctx.Request.Context(), id, req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, it, "item updated successfully")
}
