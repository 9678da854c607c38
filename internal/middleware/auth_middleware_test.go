package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"eventboard/internal/app/models"
	"eventboard/internal/middleware"
	"eventboard/internal/pkg/auth"
)

func setupAuthTest(t *testing.T) (*auth.JWTService, *middleware.AuthMiddleware) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	return jwtService, middleware.NewAuthMiddleware(jwtService)
}

func issueToken(t *testing.T, jwtService *auth.JWTService, roles ...models.Role) string {
	t.Helper()
	token, _, err := jwtService.GenerateToken(&models.User{
		ID:       1,
		Username: "alice",
		Roles:    roles,
	})
	assert.NoError(t, err)
	return token
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	_, authMiddleware := setupAuthTest(t)

	router := gin.New()
	router.GET("/protected", authMiddleware.JWTAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	_, authMiddleware := setupAuthTest(t)

	router := gin.New()
	router.GET("/protected", authMiddleware.JWTAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ValidTokenSetsPrincipal(t *testing.T) {
	jwtService, authMiddleware := setupAuthTest(t)
	token := issueToken(t, jwtService, models.RoleUser)

	var principal *models.Principal
	router := gin.New()
	router.GET("/protected", authMiddleware.JWTAuth(), func(c *gin.Context) {
		p, ok := middleware.GetPrincipal(c)
		assert.True(t, ok)
		principal = p
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), principal.UserID)
	assert.Equal(t, "alice", principal.Username)
	assert.Equal(t, models.Roles{models.RoleUser}, principal.Roles)
}

func TestRoleRequired(t *testing.T) {
	jwtService, authMiddleware := setupAuthTest(t)

	router := gin.New()
	router.GET("/admin",
		authMiddleware.JWTAuth(),
		authMiddleware.RoleRequired(models.RoleAdmin, models.RoleManagement),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		name     string
		roles    []models.Role
		wantCode int
	}{
		{"plain user forbidden", []models.Role{models.RoleUser}, http.StatusForbidden},
		{"admin allowed", []models.Role{models.RoleAdmin}, http.StatusOK},
		{"management allowed", []models.Role{models.RoleManagement, models.RoleUser}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := issueToken(t, jwtService, tt.roles...)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
