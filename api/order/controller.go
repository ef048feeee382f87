/*
Package order - order API controller.

The listing endpoint takes a strategy token selecting how the result
set is materialized; unknown tokens and strategy/paging combinations
that cannot be honored fail with 400 before any query runs.
*/
package order

import (
	"net/http"
	"strconv"

	"shopapi/api/response"
	orderapp "shopapi/application/order"

	"github.com/gin-gonic/gin"
)

// Controller order controller.
type Controller struct {
	orderService *orderapp.Service
}

// NewController creates the order controller.
func NewController(orderService *orderapp.Service) *Controller {
	return &Controller{orderService: orderService}
}

// RegisterRoutes registers order routes.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	orderGroup := router.Group("/orders")
	{
		orderGroup.POST("", c.Place)
		orderGroup.GET("", c.List)
		orderGroup.GET("/:id", c.Get)
		orderGroup.POST("/:id/cancel", c.Cancel)
	}
}

// Place creates an order.
// POST /api/v1/orders
func (c *Controller) Place(ctx *gin.Context) {
	var req orderapp.PlaceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	o, err := c.orderService.Place(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, o, "order placed successfully")
}

// Get returns one order.
// GET /api/v1/orders/:id
func (c *Controller) Get(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		response.HandleError(ctx, err, "invalid order id", http.StatusBadRequest)
		return
	}

	o, err := c.orderService.Get(ctx.Request.Context(), id)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, o, "order retrieved successfully")
}

// Cancel cancels an order. Cancelling twice is a no-op that still
// returns 200 with the cancelled order.
// POST /api/v1/orders/:id/cancel
func (c *Controller) Cancel(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		response.HandleError(ctx, err, "invalid order id", http.StatusBadRequest)
		return
	}

	o, err := c.orderService.Cancel(ctx.Request.Context(), id)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, o, "order cancelled successfully")
}

// List materializes an order listing.
// GET /api/v1/orders?strategy=dto-batch&status=ORDER&member_name=kim&offset=0&limit=100
func (c *Controller) List(ctx *gin.Context) {
	req := orderapp.ListRequest{
		Strategy:   ctx.DefaultQuery("strategy", "dto-batch"),
		Status:     ctx.Query("status"),
		MemberName: ctx.Query("member_name"),
	}

	if raw := ctx.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			response.HandleError(ctx, err, "invalid offset", http.StatusBadRequest)
			return
		}
		req.Offset = &offset
	}
	if raw := ctx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			response.HandleError(ctx, err, "invalid limit", http.StatusBadRequest)
			return
		}
		req.Limit = &limit
	}

	views, err := c.orderService.List(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, views, "orders retrieved successfully")
}
