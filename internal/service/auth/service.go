package auth

import (
	"context"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	jwt.Service
	postgresql.JWTRepository
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, jwtService jwt.Service, jwtRepository postgresql.JWTRepository) auth.AuthService {
	return &AuthServiceImpl{
		db:             db,
		UserRepository: userRepository,
		Service:        jwtService,
		JWTRepository:  jwtRepository,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// issueTokens generates an access/refresh token pair and persists the
// refresh token inside one transaction.
func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User, track auth.SessionTrackingRequest) (auth.AuthResponse, error) {
	response := auth.AuthResponse{
		TokenType: "Bearer",
		User:      userData.ToProfile(),
	}

	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		response.AccessToken, response.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		response.RefreshToken, response.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		err = a.CreateRefreshToken(txCtx, userData.ID, response.RefreshToken, response.RefreshTokenExpiresIn, track)
		if err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.AuthResponse{}, err
	}

	return response, nil
}

// SignUp implements auth.AuthService.
func (a *AuthServiceImpl) SignUp(ctx context.Context, req auth.SignUpRequest, track auth.SessionTrackingRequest) (auth.AuthResponse, error) {
	exists, err := a.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to check existing email: %w", err)
	}
	if exists {
		return auth.AuthResponse{}, auth.ErrEmailAlreadyExists
	}

	hashedPassword, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := user.RoleMember
	if req.Role != "" {
		if !user.ValidRole(req.Role) {
			return auth.AuthResponse{}, user.ErrInvalidRole
		}
		role = user.Role(req.Role)
	}

	newUser := user.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: &hashedPassword,
		FullName:     req.FullName,
		Role:         role,
	}
	newUser, err = a.UserRepository.Create(ctx, newUser)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return a.issueTokens(ctx, newUser, track)
}

// SignIn implements auth.AuthService.
func (a *AuthServiceImpl) SignIn(ctx context.Context, req auth.SignInRequest, track auth.SessionTrackingRequest) (auth.AuthResponse, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == user.ErrUserNotFound {
			return auth.AuthResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	// OAuth-only accounts have no password to compare
	if userData.PasswordHash == nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, userData, track)
}

// SignOut implements auth.AuthService. Revoking an unknown token is a
// no-op so the caller can always clear its local session.
func (a *AuthServiceImpl) SignOut(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	return postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		_, isRevoked, err := a.JWTRepository.IsRefreshTokenRevoked(txCtx, refreshToken)
		if err != nil {
			if err == pgx.ErrNoRows {
				return nil
			}
			return fmt.Errorf("failed to check if refresh token is revoked: %w", err)
		}
		if !isRevoked {
			if err := a.JWTRepository.RevokeRefreshToken(txCtx, refreshToken); err != nil {
				return fmt.Errorf("failed to revoke refresh token: %w", err)
			}
		}
		return nil
	})
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	var accessTokenResponse auth.AccessTokenResponse

	// Verify signature and expiry
	token, err := jwtauth.VerifyToken(a.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	// Check the database for revocation, passing the raw token
	userID, isRevoked, err := a.JWTRepository.IsRefreshTokenRevoked(ctx, req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if isRevoked {
		// A revoked token being replayed may have leaked. Drop every live
		// session for the user so the stolen token buys nothing.
		if err := a.JWTRepository.RevokeAllForUser(ctx, userID); err != nil {
			return auth.AccessTokenResponse{}, fmt.Errorf("failed to revoke user sessions: %w", err)
		}
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrUserNotFound
	}

	accessTokenResponse.AccessToken, accessTokenResponse.AccessTokenExpiresIn, err =
		a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessTokenResponse, nil
}

// Profile implements auth.AuthService.
func (a *AuthServiceImpl) Profile(ctx context.Context, userID string) (user.Profile, error) {
	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if err == user.ErrUserNotFound {
			return user.Profile{}, auth.ErrUserNotFound
		}
		return user.Profile{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return userData.ToProfile(), nil
}

// SignInWithGoogle implements auth.AuthService.
func (a *AuthServiceImpl) SignInWithGoogle(ctx context.Context, email string, googleID string, name string, track auth.SessionTrackingRequest) (auth.AuthResponse, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, email)
	if err != nil && err != user.ErrUserNotFound {
		return auth.AuthResponse{}, fmt.Errorf("failed to get user data by email: %w", err)
	}

	// First Google sign-in creates a member account
	if userData.ID == "" {
		var fullName *string
		if name != "" {
			fullName = &name
		}
		newUser := user.User{
			ID:              uuid.NewString(),
			Email:           email,
			PasswordHash:    nil,
			FullName:        fullName,
			Role:            user.RoleMember,
			OAuthProvider:   func(s string) *string { return &s }("google"),
			OAuthProviderID: &googleID,
		}
		userData, err = a.UserRepository.Create(ctx, newUser)
		if err != nil {
			return auth.AuthResponse{}, fmt.Errorf("failed to create user: %w", err)
		}
	}

	// Existing password account gets its Google identity linked
	if userData.OAuthProvider == nil || userData.OAuthProviderID == nil {
		userData, err = a.UserRepository.LinkGoogleAccount(ctx, googleID, userData.Email)
		if err != nil {
			return auth.AuthResponse{}, err
		}
	}

	return a.issueTokens(ctx, userData, track)
}
