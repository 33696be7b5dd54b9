package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/motorline/dealerdesk-api/internal/application/service"
	"github.com/motorline/dealerdesk-api/internal/presentation/http/dto/response"
	"github.com/motorline/dealerdesk-api/pkg/permission"
)

// PermissionHandler handles menu permission HTTP requests
type PermissionHandler struct {
	permissionService *service.PermissionService
}

// NewPermissionHandler creates a new permission handler
func NewPermissionHandler(permissionService *service.PermissionService) *PermissionHandler {
	return &PermissionHandler{permissionService: permissionService}
}

// Get handles GET /permissions/:role
func (h *PermissionHandler) Get(c *gin.Context) {
	result, err := h.permissionService.GetPermissions(c.Request.Context(), c.Param("role"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Permissions retrieved successfully", result)
}

// List handles GET /permissions
func (h *PermissionHandler) List(c *gin.Context) {
	result, err := h.permissionService.ListPermissions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Permissions retrieved successfully", result)
}

// Upsert handles PUT /permissions/:role
func (h *PermissionHandler) Upsert(c *gin.Context) {
	var tree permission.Tree
	if err := c.ShouldBindJSON(&tree); err != nil {
		response.BadRequest(c, "Permission tree must be nested objects with boolean leaves")
		return
	}

	result, err := h.permissionService.UpsertPermissions(c.Request.Context(), c.Param("role"), tree)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Permissions updated successfully", result)
}

// Mine handles GET /permissions/me, resolving the caller's own tree
func (h *PermissionHandler) Mine(c *gin.Context) {
	role := GetUserRole(c)
	if role == "" {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	result, err := h.permissionService.GetPermissions(c.Request.Context(), role)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Permissions retrieved successfully", result)
}
