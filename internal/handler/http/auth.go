package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/handler/http/middleware"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/attendly/attendance-backend-go/internal/pkg/oauth"
)

type AuthHandler interface {
	SignUp(w http.ResponseWriter, r *http.Request)
	SignIn(w http.ResponseWriter, r *http.Request)
	SignOut(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
	SignInWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService    jwt.Service
	authService   auth.AuthService
	googleService oauth.GoogleService
	frontendURL   string
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService, googleService oauth.GoogleService, frontendURL string) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:    jwtService,
		authService:   authService,
		googleService: googleService,
		frontendURL:   frontendURL,
	}
}

func sessionTracking(r *http.Request) auth.SessionTrackingRequest {
	return auth.SessionTrackingRequest{
		UserAgent: r.UserAgent(),
		IPAddress: r.RemoteAddr,
	}
}

// SignUp implements AuthHandler.
func (a *AuthHandlerImpl) SignUp(w http.ResponseWriter, r *http.Request) {
	var signUpReq auth.SignUpRequest

	if err := json.NewDecoder(r.Body).Decode(&signUpReq); err != nil {
		slog.Error("SignUp decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := signUpReq.Validate(); err != nil {
		slog.Error("SignUp validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	authResponse, err := a.authService.SignUp(r.Context(), signUpReq, sessionTracking(r))
	if err != nil {
		slog.Error("SignUp service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(authResponse.RefreshToken, authResponse.RefreshTokenExpiresIn))
	slog.Info("User signed up successfully", "email", signUpReq.Email)
	response.Created(w, "User registered successfully", authResponse)
}

// SignIn implements AuthHandler.
func (a *AuthHandlerImpl) SignIn(w http.ResponseWriter, r *http.Request) {
	var signInReq auth.SignInRequest

	if err := json.NewDecoder(r.Body).Decode(&signInReq); err != nil {
		slog.Error("SignIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := signInReq.Validate(); err != nil {
		slog.Error("SignIn validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	authResponse, err := a.authService.SignIn(r.Context(), signInReq, sessionTracking(r))
	if err != nil {
		slog.Error("SignIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(authResponse.RefreshToken, authResponse.RefreshTokenExpiresIn))
	slog.Info("User signed in successfully")
	response.SuccessWithMessage(w, "User signed in successfully", authResponse)
}

// SignOut implements AuthHandler. The session always ends for the caller,
// even when no refresh token cookie was sent.
func (a *AuthHandlerImpl) SignOut(w http.ResponseWriter, r *http.Request) {
	var refreshToken string
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		refreshToken = cookie.Value
	}

	if err := a.authService.SignOut(r.Context(), refreshToken); err != nil {
		// Revocation failures must not keep the user signed in
		slog.Error("SignOut revocation error", "error", err)
	}

	http.SetCookie(w, a.jwtService.ClearedRefreshTokenCookie())
	response.SuccessWithMessage(w, "User signed out successfully", nil)
}

// RefreshToken implements AuthHandler.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var refreshTokenReq auth.RefreshTokenRequest

	// Cookie is the preferred transport, JSON body the fallback
	refreshTokenCookie, err := r.Cookie("refresh_token")
	if err == nil && refreshTokenCookie.Value != "" {
		refreshTokenReq.RefreshToken = refreshTokenCookie.Value
	} else {
		if err := json.NewDecoder(r.Body).Decode(&refreshTokenReq); err != nil {
			slog.Error("RefreshToken decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	if err := refreshTokenReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	accessTokenResponse, err := a.authService.RefreshToken(r.Context(), refreshTokenReq)
	if err != nil {
		slog.Error("RefreshToken service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, accessTokenResponse)
}

// Profile implements AuthHandler.
func (a *AuthHandlerImpl) Profile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	profile, err := a.authService.Profile(r.Context(), userID)
	if err != nil {
		slog.Error("Profile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}

// SignInWithGoogle implements AuthHandler.
func (a *AuthHandlerImpl) SignInWithGoogle(w http.ResponseWriter, r *http.Request) {
	state := a.googleService.GenerateState(r.UserAgent())
	cookie := &http.Cookie{
		Name:     "state",
		Value:    state,
		Path:     "/auth/oauth/callback/google",
		Expires:  time.Now().Add(5 * time.Minute),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
	url := a.googleService.RedirectURL(state)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler.
func (a *AuthHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	redirectWithError := func(errorMsg string) {
		redirectURL := fmt.Sprintf("%s/auth/callback/google?error=%s", a.frontendURL, url.QueryEscape(errorMsg))
		http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
	}

	stateReq, err := r.Cookie("state")
	if err != nil {
		slog.Error("State cookie not found", "error", err)
		redirectWithError("state_cookie_not_found")
		return
	}

	if errorValue := r.URL.Query().Get("error"); errorValue == "access_denied" {
		slog.Error("Google access denied by user", "error", auth.ErrGoogleAccessDenied)
		redirectWithError("access_denied")
		return
	} else if errorValue != "" {
		slog.Error("Error in OAuth callback", "error", errorValue)
		redirectWithError(errorValue)
		return
	}

	stateParam := r.URL.Query().Get("state")
	if stateParam == "" || stateParam != stateReq.Value {
		slog.Error("State mismatch", "error", auth.ErrStateMismatch)
		redirectWithError("state_mismatch")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		slog.Error("Code value is empty")
		redirectWithError("code_empty")
		return
	}

	token, err := a.googleService.VerifyToken(r.Context(), code)
	if err != nil {
		slog.Error("Failed to verify token", "error", err)
		redirectWithError("token_verification_failed")
		return
	}

	userGoogle, err := a.googleService.VerifyUser(r.Context(), token)
	if err != nil {
		slog.Error("Failed to verify user", "error", err)
		redirectWithError("user_verification_failed")
		return
	}
	if !userGoogle.VerifiedEmail {
		slog.Error("Google email not verified", "error", auth.ErrGoogleEmailNotVerified)
		redirectWithError("email_not_verified")
		return
	}

	authResponse, err := a.authService.SignInWithGoogle(r.Context(), userGoogle.Email, userGoogle.GoogleID, userGoogle.Name, sessionTracking(r))
	if err != nil {
		slog.Error("Failed to sign in with Google", "error", err)
		redirectWithError("sign_in_failed")
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(authResponse.RefreshToken, authResponse.RefreshTokenExpiresIn))

	slog.Info("User signed in successfully via Google OAuth")

	redirectURL := fmt.Sprintf("%s/auth/callback/google?access_token=%s&expires_in=%d",
		a.frontendURL,
		url.QueryEscape(authResponse.AccessToken),
		authResponse.AccessTokenExpiresIn,
	)
	http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
}
