package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/attendly/attendance-backend-go/internal/config"
	"github.com/attendly/attendance-backend-go/internal/handler/http/middleware"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	dashboardHandler DashboardHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.SignUp)
		r.Post("/signin", authHandler.SignIn)
		r.Post("/signout", authHandler.SignOut)
		r.Post("/refresh", authHandler.RefreshToken)
		r.Route("/oauth", func(r chi.Router) {
			r.Get("/google", authHandler.SignInWithGoogle)
			r.Get("/callback/google", authHandler.OAuthCallbackGoogle)
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/", apiIndex)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/profile", authHandler.Profile)

			r.Route("/member", func(r chi.Router) {
				r.Route("/attendance", func(r chi.Router) {
					r.Get("/", attendanceHandler.ListMine)
					r.Post("/checkin", attendanceHandler.CheckIn)
					r.Post("/checkout", attendanceHandler.CheckOut)
				})
				r.Route("/leaves", func(r chi.Router) {
					r.Get("/", leaveHandler.ListMine)
					r.Post("/", leaveHandler.Create)
				})
			})

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Get("/dashboard", dashboardHandler.Overview)
				r.Get("/users", dashboardHandler.Users)
				r.Route("/leaves", func(r chi.Router) {
					r.Get("/", leaveHandler.ListAll)
					r.Post("/approve", leaveHandler.Decide)
				})
				r.Route("/export", func(r chi.Router) {
					r.Get("/attendance", reportHandler.ExportAttendance)
					r.Get("/leaves", reportHandler.ExportLeaves)
				})
			})
		})
	})

	return r
}

// apiIndex lists the available endpoint groups.
func apiIndex(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]interface{}{
		"name":    "attendance-backend",
		"version": "v1.0.0",
		"endpoints": map[string]string{
			"auth":       "/auth",
			"profile":    "/api/profile",
			"attendance": "/api/member/attendance",
			"leaves":     "/api/member/leaves",
			"admin":      "/api/admin",
			"health":     "/health",
		},
	})
}
