package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/leavehub/leavehub-backend-go/internal/handler/http/middleware"
	"github.com/leavehub/leavehub-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	appEnv string,
	frontendURL string,
	authHandler AuthHandler,
	requestHandler RequestHandler,
	reportHandler ReportHandler,
	calendarHandler CalendarHandler,
	notificationHandler NotificationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "leavehub-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/login/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
			})
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", authHandler.Me)

			r.Route("/requests", func(r chi.Router) {
				r.Post("/", requestHandler.Create)
				r.Get("/my", requestHandler.ListMine)

				// Approver only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Get("/", requestHandler.ListAll)
					r.Get("/pending", requestHandler.ListPending)
					r.Get("/stats", requestHandler.DashboardStats)
					r.Post("/{id}/approve", requestHandler.Approve)
					r.Post("/{id}/reject", requestHandler.Reject)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequireApprover)
				r.Get("/attendance/today", reportHandler.TodayAttendance)
				r.Get("/attendance/today/department", reportHandler.DepartmentAttendance)
				r.Get("/holidays/tomorrow", reportHandler.TomorrowHoliday)
			})

			r.Route("/calendar", func(r chi.Router) {
				r.Get("/{year}/{month}", calendarHandler.Month)
				r.Get("/{year}/{month}/summary", calendarHandler.MonthlySummary)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/unread", notificationHandler.UnreadCounts)
				r.Post("/viewed", notificationHandler.MarkViewed)
			})
		})
	})
	return r
}
