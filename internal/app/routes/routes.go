package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventboard/internal/app/controllers"
	"eventboard/internal/app/models"
	"eventboard/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	eventPostController *controllers.EventPostController,
	adminEventController *controllers.AdminEventController,
	adminUserController *controllers.AdminUserController,
	userSettingsController *controllers.UserSettingsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.GET("/events", eventPostController.GetAllEvents)

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Legacy posting endpoint; restricted to elevated roles and the
		// created posts carry no owner.
		legacyPost := authenticated.Group("/events")
		legacyPost.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleManagement))
		{
			legacyPost.POST("/post", eventPostController.CreateEventLegacy)
		}

		// Routes operating on the caller's own posts and settings
		user := authenticated.Group("/user")
		{
			user.GET("/events", eventPostController.GetOwnEvents)
			user.POST("/events", eventPostController.CreateEvent)
			user.PUT("/events/:id", eventPostController.UpdateEvent)
			user.DELETE("/events/:id", eventPostController.DeleteEvent)
			user.POST("/events/:id/image", eventPostController.UploadEventImage)

			user.PUT("/settings/password", userSettingsController.ChangePassword)
		}

		// Moderation surface for ADMIN and MANAGEMENT
		adminEvents := authenticated.Group("/admin/events")
		adminEvents.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleManagement))
		{
			adminEvents.GET("", adminEventController.ListEvents)
			adminEvents.PUT("/:id", adminEventController.UpdateEvent)
			adminEvents.DELETE("/:id", adminEventController.DeleteEvent)
			adminEvents.POST("/:id/image", adminEventController.UploadEventImage)
		}

		// Account administration, ADMIN only
		adminUsers := authenticated.Group("/admin/users")
		adminUsers.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			adminUsers.GET("", adminUserController.ListUsers)
			adminUsers.PUT("/:id/roles", adminUserController.UpdateUserRoles)
		}
	}
}
