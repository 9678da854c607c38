package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"eventboard/internal/app/models/dto"
	"eventboard/internal/app/services"
	"eventboard/internal/middleware"
	"eventboard/internal/pkg/helpers"
)

// AdminUserController exposes account administration for ADMIN.
type AdminUserController struct {
	userService services.UserService
}

// NewAdminUserController creates a new AdminUserController
func NewAdminUserController(userService services.UserService) *AdminUserController {
	return &AdminUserController{
		userService: userService,
	}
}

// ListUsers retrieves a page of accounts
// @Summary List accounts
// @Description Retrieves a page of accounts ordered by username
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page index (0-based)" default(0)
// @Param size query int false "Page size" default(5)
// @Success 200 {object} dto.APIResponse{data=dto.UserListResponse} "Accounts retrieved"
// @Failure 403 {object} dto.APIResponse "Insufficient role"
// @Router /admin/users [get]
func (c *AdminUserController) ListUsers(ctx *gin.Context) {
	page := helpers.ParsePageQuery(ctx)

	list, err := c.userService.GetAllUsers(ctx, page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      list,
		Timestamp: time.Now(),
	})
}

// UpdateUserRoles replaces an account's role set
// @Summary Replace account roles
// @Description Replaces the target account's role set with the requested set
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.UpdateRolesRequest true "New role set"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Roles replaced"
// @Failure 400 {object} dto.APIResponse "Unknown role"
// @Failure 404 {object} dto.APIResponse "User not found"
// @Router /admin/users/{id}/roles [put]
func (c *AdminUserController) UpdateUserRoles(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user ID")
		errorDetail = errorDetail.WithDetails("User ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	var req dto.UpdateRolesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid role data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	user, err := c.userService.UpdateUserRoles(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      user,
		Timestamp: time.Now(),
	})
}
