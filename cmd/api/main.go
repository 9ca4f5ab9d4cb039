package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/attendly/attendance-backend-go/internal/config"
	appHTTP "github.com/attendly/attendance-backend-go/internal/handler/http"
	"github.com/attendly/attendance-backend-go/internal/pkg/cron"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/attendly/attendance-backend-go/internal/pkg/oauth"
	"github.com/attendly/attendance-backend-go/internal/pkg/officenet"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/attendly/attendance-backend-go/internal/service/attendance"
	authService "github.com/attendly/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/attendly/attendance-backend-go/internal/service/dashboard"
	leaveService "github.com/attendly/attendance-backend-go/internal/service/leave"
	reportService "github.com/attendly/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(context.Background()); err != nil {
		log.Fatal("Error ensuring database schema: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	officeNet := officenet.NewChecker(cfg.Attendance.OfficeNetworks)

	authSvc := authService.NewAuthService(db, userRepo, jwtService, jwtRepo)
	attendanceSvc, err := attendanceService.NewAttendanceService(
		attendanceRepo,
		officeNet,
		cfg.Attendance.LateAfter,
		time.Duration(cfg.Attendance.SessionMaxMinutes)*time.Minute,
	)
	if err != nil {
		log.Fatal("Error building attendance service: ", err)
	}
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	dashboardSvc := dashboardService.NewDashboardService(userRepo, attendanceRepo, attendanceSvc)
	reportSvc := reportService.NewReportService(reportRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		attendanceHandler,
		leaveHandler,
		dashboardHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
