package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventboard/internal/app/models"
	"eventboard/internal/app/models/dto"
	"eventboard/internal/pkg/apperrors"
	"eventboard/internal/pkg/auth"
)

// principalKey is the gin context key holding the authenticated principal.
const principalKey = "principal"

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// JWTAuth middleware for JWT token validation
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.APIResponse{
				Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"),
			})
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.APIResponse{
				Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Invalid token format"),
			})
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			message := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) || errors.Is(err, apperrors.ErrTokenExpired) {
				errorCode = dto.ErrorCodeExpiredToken
				message = "Token expired"
			}

			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.APIResponse{
				Error: dto.NewErrorDetail(errorCode, message),
			})
			return
		}

		c.Set(principalKey, &models.Principal{
			UserID:   claims.UserID,
			Username: claims.Username,
			Roles:    models.RolesFromStrings(claims.Roles),
		})

		c.Next()
	}
}

// RoleRequired middleware to check if the principal holds any of the given roles
func (m *AuthMiddleware) RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.APIResponse{
				Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"),
			})
			return
		}

		if !principal.Roles.HasAny(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.APIResponse{
				Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"),
			})
			return
		}

		c.Next()
	}
}

// GetPrincipal returns the authenticated principal set by JWTAuth.
func GetPrincipal(c *gin.Context) (*models.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*models.Principal)
	return principal, ok
}
