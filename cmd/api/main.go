package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/leavehub/leavehub-backend-go/internal/config"
	appHTTP "github.com/leavehub/leavehub-backend-go/internal/handler/http"
	"github.com/leavehub/leavehub-backend-go/internal/pkg/cache"
	"github.com/leavehub/leavehub-backend-go/internal/pkg/database"
	"github.com/leavehub/leavehub-backend-go/internal/pkg/jwt"
	"github.com/leavehub/leavehub-backend-go/internal/pkg/oauth"
	"github.com/leavehub/leavehub-backend-go/internal/repository/postgresql"
	"github.com/leavehub/leavehub-backend-go/internal/repository/rediskv"
	attendanceService "github.com/leavehub/leavehub-backend-go/internal/service/attendance"
	authService "github.com/leavehub/leavehub-backend-go/internal/service/auth"
	calendarService "github.com/leavehub/leavehub-backend-go/internal/service/calendar"
	notificationService "github.com/leavehub/leavehub-backend-go/internal/service/notification"
	requestService "github.com/leavehub/leavehub-backend-go/internal/service/request"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgresDB(context.Background(), cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	redisClient, err := cache.NewRedis(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		fmt.Println("Error connecting to redis:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	requestRepo := postgresql.NewRequestRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	viewStateStore := rediskv.NewViewStateStore(redisClient)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(employeeRepo, jwtSvc)
	requestSvc := requestService.NewRequestService(requestRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(employeeRepo, requestRepo, holidayRepo, cfg.Attendance.MatchStartDateOnly)
	calendarSvc := calendarService.NewCalendarService(requestRepo, employeeRepo, holidayRepo)
	notificationSvc := notificationService.NewNotificationService(requestRepo, viewStateStore)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc, googleSvc, cfg.App.FrontendURL)
	requestHandler := appHTTP.NewRequestHandler(requestSvc)
	reportHandler := appHTTP.NewReportHandler(attendanceSvc)
	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc)

	router := appHTTP.NewRouter(
		jwtSvc,
		cfg.App.Env,
		cfg.App.FrontendURL,
		authHandler,
		requestHandler,
		reportHandler,
		calendarHandler,
		notificationHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
