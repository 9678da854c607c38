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

// EventPostController handles event post operations
type EventPostController struct {
	eventPostService services.EventPostService
	imageService     services.ImageService
}

// NewEventPostController creates a new EventPostController
func NewEventPostController(eventPostService services.EventPostService, imageService services.ImageService) *EventPostController {
	return &EventPostController{
		eventPostService: eventPostService,
		imageService:     imageService,
	}
}

// GetAllEvents retrieves a page of event posts
// @Summary List event posts
// @Description Retrieves a page of event posts, newest first by default
// @Tags events
// @Produce json
// @Param page query int false "Page index (0-based)" default(0)
// @Param size query int false "Page size" default(5)
// @Param sort query string false "Sort key" Enums(postedAt, title, startDay, location)
// @Param order query string false "Sort direction" Enums(asc, desc)
// @Success 200 {object} dto.APIResponse{data=dto.EventPostListResponse} "Events retrieved"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /events [get]
func (c *EventPostController) GetAllEvents(ctx *gin.Context) {
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

// CreateEvent creates an event post owned by the caller
// @Summary Create an event post
// @Description Creates a new event post owned by the authenticated user
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EventPostRequest true "Event information"
// @Success 201 {object} dto.APIResponse{data=dto.EventPostResponse} "Event created"
// @Failure 400 {object} dto.APIResponse "Invalid event data"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /user/events [post]
func (c *EventPostController) CreateEvent(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"),
		})
		return
	}

	var req dto.EventPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid event data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	event, err := c.eventPostService.AddEvent(ctx, principal, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      event,
		Timestamp: time.Now(),
	})
}

// CreateEventLegacy creates an event post with no recorded owner
// @Summary Create an event post (legacy)
// @Description Creates an event post without an owner; restricted to ADMIN and MANAGEMENT
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EventPostRequest true "Event information"
// @Success 201 {object} dto.APIResponse{data=dto.EventPostResponse} "Event created"
// @Failure 400 {object} dto.APIResponse "Invalid event data"
// @Failure 403 {object} dto.APIResponse "Insufficient role"
// @Router /events/post [post]
func (c *EventPostController) CreateEventLegacy(ctx *gin.Context) {
	var req dto.EventPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid event data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	event, err := c.eventPostService.AddEventAnonymous(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      event,
		Timestamp: time.Now(),
	})
}

// GetOwnEvents retrieves the caller's own event posts
// @Summary List own event posts
// @Description Retrieves a page of the authenticated user's event posts
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page index (0-based)" default(0)
// @Param size query int false "Page size" default(5)
// @Success 200 {object} dto.APIResponse{data=dto.EventPostListResponse} "Events retrieved"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /user/events [get]
func (c *EventPostController) GetOwnEvents(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"),
		})
		return
	}

	page := helpers.ParsePageQuery(ctx)

	list, err := c.eventPostService.GetPostsOfUser(ctx, principal.Username, page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      list,
		Timestamp: time.Now(),
	})
}

// UpdateEvent replaces an event post
// @Summary Update an event post
// @Description Replaces an event post; allowed for the owner, ADMIN and MANAGEMENT
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event post ID"
// @Param request body dto.EventPostRequest true "Event information"
// @Success 200 {object} dto.APIResponse{data=dto.EventPostResponse} "Event updated"
// @Failure 400 {object} dto.APIResponse "Invalid event data"
// @Failure 403 {object} dto.APIResponse "Not the owner"
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Router /user/events/{id} [put]
func (c *EventPostController) UpdateEvent(ctx *gin.Context) {
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

// DeleteEvent removes an event post
// @Summary Delete an event post
// @Description Deletes an event post; allowed for the owner, ADMIN and MANAGEMENT
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event post ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Event deleted"
// @Failure 403 {object} dto.APIResponse "Not the owner"
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Router /user/events/{id} [delete]
func (c *EventPostController) DeleteEvent(ctx *gin.Context) {
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

// UploadEventImage attaches an image to an event post
// @Summary Upload an event image
// @Description Uploads an image and records its URL on the event post
// @Tags events
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event post ID"
// @Param image formData file true "Image file"
// @Success 200 {object} dto.APIResponse{data=dto.EventPostResponse} "Image attached"
// @Failure 400 {object} dto.APIResponse "No image provided"
// @Failure 403 {object} dto.APIResponse "Not the owner"
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Router /user/events/{id}/image [post]
func (c *EventPostController) UploadEventImage(ctx *gin.Context) {
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

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Image file is required")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	event, err := c.imageService.AttachImage(ctx, principal, postID, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      event,
		Timestamp: time.Now(),
	})
}

func parsePostID(ctx *gin.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}
