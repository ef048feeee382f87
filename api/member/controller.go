/*
Package member - member API controller.

Controllers parse parameters, call the application service and hand the
result to the response package. Binding failures return 400 directly;
business errors go through HandleAppError for code-to-status mapping.
*/
package member

import (
	"net/http"
	"strconv"

	"shopapi/api/response"
	memberapp "shopapi/application/member"

	"github.com/gin-gonic/gin"
)

// Controller member controller.
type Controller struct {
	memberService *memberapp.Service
}

// NewController creates the member controller.
func NewController(memberService *memberapp.Service) *Controller {
	return &Controller{memberService: memberService}
}

// RegisterRoutes registers member routes.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	memberGroup := router.Group("/members")
	{
		memberGroup.POST("", c.Register)
		memberGroup.GET("", c.List)
		memberGroup.GET("/:id", c.Get)
		memberGroup.PUT("/:id", c.Update)
	}
}

// Register creates a member.
// POST /api/v1/members
func (c *Controller) Register(ctx *gin.Context) {
	var req memberapp.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	m, err := c.memberService.Register(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, m, "member registered successfully")
}

// List returns all members.
// GET /api/v1/members
func (c *Controller) List(ctx *gin.Context) {
	members, err := c.memberService.List(ctx.Request.Context())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, members, "members retrieved successfully")
}

// Get returns one member.
// GET /api/v1/members/:id
func (c *Controller) Get(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		response.HandleError(ctx, err, "invalid member id", http.StatusBadRequest)
		return
	}

	m, err := c.memberService.Get(ctx.Request.Context(), id)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, m, "member retrieved successfully")
}

// Update renames a member.
// PUT /api/v1/members/:id
func (c *Controller) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		response.HandleError(ctx, err, "invalid member id", http.StatusBadRequest)
		return
	}

	var req memberapp.UpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	m, err := c.memberService.UpdateName(ctx.Request.Context(), id, req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, m, "member updated successfully")
}
