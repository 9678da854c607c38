package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"eventboard/internal/app/models"
	"eventboard/internal/pkg/auth"
)

func testJWTService(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testJWTService(time.Hour)
	user := &models.User{
		ID:       1,
		Username: "alice",
		Roles:    models.Roles{models.RoleUser, models.RoleAdmin},
	}

	token, expiresIn, err := svc.GenerateToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateAndExtractClaims(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, []string{"USER", "ADMIN"}, claims.Roles)
	assert.Equal(t, "test", claims.Issuer)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := testJWTService(-time.Minute)
	user := &models.User{ID: 1, Username: "alice", Roles: models.Roles{models.RoleUser}}

	token, _, err := svc.GenerateToken(user)
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := testJWTService(time.Hour)
	user := &models.User{ID: 1, Username: "alice", Roles: models.Roles{models.RoleUser}}

	token, _, err := svc.GenerateToken(user)
	assert.NoError(t, err)

	other := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "different-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := auth.ExtractBearerToken("Bearer abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = auth.ExtractBearerToken("abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = auth.ExtractBearerToken("")
	assert.ErrorIs(t, err, auth.ErrInvalidFormat)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cretpass")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cretpass", hash)

	assert.True(t, auth.CheckPassword(hash, "s3cretpass"))
	assert.False(t, auth.CheckPassword(hash, "wrong"))
}
