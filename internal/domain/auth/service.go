package auth

import (
	"context"

	"github.com/attendly/attendance-backend-go/internal/domain/user"
)

type AuthService interface {
	SignUp(ctx context.Context, req SignUpRequest, track SessionTrackingRequest) (AuthResponse, error)
	SignIn(ctx context.Context, req SignInRequest, track SessionTrackingRequest) (AuthResponse, error)
	// SignOut revokes the refresh token. Revoking an unknown or already
	// revoked token is not an error: local sign-out always wins.
	SignOut(ctx context.Context, refreshToken string) error
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Profile(ctx context.Context, userID string) (user.Profile, error)
	SignInWithGoogle(ctx context.Context, email string, googleID string, name string, track SessionTrackingRequest) (AuthResponse, error)
}
