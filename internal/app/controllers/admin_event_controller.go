package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"eventboard/internal/app/models/dto"
	"eventboard/internal/app/services"
	"eventboard/internal/middleware"
	"eventboard/internal/pkg/helpers"
)

// AdminEventController exposes event moderation for ADMIN and MANAGEMENT.
// The role gate lives in the route group; the handlers still pass the
// principal through so moderation actions are attributed in the logs.
type AdminEventController struct {
	eventPostService services.EventPostService
	imageService     services.ImageService
}

// NewAdminEventController creates a new AdminEventController
func NewAdminEventController(eventPostService services.EventPostService, imageService services.ImageService) *AdminEventController {
	return &AdminEventController{
		eventPostService: eventPostService,
		imageService:     imageService,
	}
}

// ListEvents retrieves a page of all event posts
// @Summary List event posts (moderation)
// @Description Retrieves a page of all event posts for moderation
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page index (0-based)" default(0)
// @Param size query int false "Page size" default(5)
// @Success 200 {object} dto.APIResponse{data=dto.EventPostListResponse} "Events retrieved"
// @Failure 403 {object} dto.APIResponse "Insufficient role"
// @Router /admin/events [get]
func (c *AdminEventController) ListEvents(ctx *gin.Context) {
	page := helpers.ParsePageQuery(ctx)

	list, err := c.eventPostService.GetAllPosts(ctx, page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      list,
		Timestamp: time.Now(),
	})
}

// UpdateEvent replaces any event post
// @Summary Update any event post
// @Description Replaces an event post regardless of owner
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event post ID"
// @Param request body dto.EventPostRequest true "Event information"
// @Success 200 {object} dto.APIResponse{data=dto.EventPostResponse} "Event updated"
// @Failure 400 {object} dto.APIResponse "Invalid event data"
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Router /admin/events/{id} [put]
func (c *AdminEventController) UpdateEvent(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"),
		})
		return
	}

	postID, err := parsePostID(ctx)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid event ID")
		errorDetail = errorDetail.WithDetails("Event ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	var req dto.EventPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid event data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	event, err := c.eventPostService.UpdatePostByID(ctx, principal, postID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      event,
		Timestamp: time.Now(),
	})
}

// DeleteEvent removes any event post
// @Summary Delete any event post
// @Description Deletes an event post regardless of owner
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event post ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Event deleted"
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Router /admin/events/{id} [delete]
func (c *AdminEventController) DeleteEvent(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"),
		})
		return
	}

	postID, err := parsePostID(ctx)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid event ID")
		errorDetail = errorDetail.WithDetails("Event ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	if err := c.eventPostService.DeletePostByID(ctx, principal, postID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Event deleted successfully"},
		Timestamp: time.Now(),
	})
}

// UploadEventImage attaches an image to any event post
// @Summary Upload an image for any event post
// @Description Uploads an image and records its URL, skipping the ownership check
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event post ID"
// @Param image formData file true "Image file"
// @Success 200 {object} dto.APIResponse{data=dto.EventPostResponse} "Image attached"
// @Failure 400 {object} dto.APIResponse "No image provided"
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Router /admin/events/{id}/image [post]
func (c *AdminEventController) UploadEventImage(ctx *gin.Context) {
	postID, err := parsePostID(ctx)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid event ID")
		errorDetail = errorDetail.WithDetails("Event ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Image file is required")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	// Nil principal: the route group's role gate already authorized this.
	event, err := c.imageService.AttachImage(ctx, nil, postID, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      event,
		Timestamp: time.Now(),
	})
}
