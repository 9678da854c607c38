package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"eventboard/internal/app/models/dto"
	"eventboard/internal/app/services"
	"eventboard/internal/middleware"
)

// UserSettingsController handles the caller's own account settings
type UserSettingsController struct {
	userService services.UserService
}

// NewUserSettingsController creates a new UserSettingsController
func NewUserSettingsController(userService services.UserService) *UserSettingsController {
	return &UserSettingsController{
		userService: userService,
	}
}

// ChangePassword replaces the caller's password
// @Summary Change own password
// @Description Replaces the authenticated user's password and redirects to logout
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "New password"
// @Success 200 {object} dto.APIResponse{data=dto.RedirectResponse} "Password changed"
// @Failure 400 {object} dto.APIResponse "Empty password"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /user/settings/password [put]
func (c *UserSettingsController) ChangePassword(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"),
		})
		return
	}

	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid password data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	redirect, err := c.userService.ChangeOwnPassword(ctx, principal, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      redirect,
		Timestamp: time.Now(),
	})
}
