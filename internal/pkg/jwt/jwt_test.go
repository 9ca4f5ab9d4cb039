package jwt

import (
	"context"
	"testing"

	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "user@example.com", user.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "user@example.com", claims["email"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateRefreshToken_Type(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	tokenString, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims["type"])
	assert.Equal(t, "user-1", claims["user_id"])
	_, hasRole := claims["role"]
	assert.False(t, hasRole, "refresh tokens must not carry a role")
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration", "24h")

	_, _, err := svc.GenerateAccessToken("user-1", "user@example.com", user.RoleMember)
	assert.Error(t, err)
}

func TestVerify_RejectsForeignSecret(t *testing.T) {
	issuer := NewJWTService("some-other-secret", "1h", "24h")
	verifier := NewJWTService(testSecret, "1h", "24h")

	tokenString, _, err := issuer.GenerateAccessToken("user-1", "user@example.com", user.RoleMember)
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(verifier.JWTAuth(), tokenString)
	assert.Error(t, err)
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	cookie := svc.RefreshTokenCookie("tok", 1700000000)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "tok", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/auth", cookie.Path)

	cleared := svc.ClearedRefreshTokenCookie()
	assert.Empty(t, cleared.Value)
	assert.True(t, cleared.Expires.Before(cookie.Expires))
}
