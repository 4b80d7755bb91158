package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/leaveflow/leaveflow-backend-go/internal/handler/http/middleware"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	env string,
	frontendURL string,
	authHandler AuthHandler,
	leaveHandler LeaveHandler,
	announcementHandler AnnouncementHandler,
	entitlementHandler EntitlementHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "leaveflow"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Post("/auth/logout-all", authHandler.LogoutAll)

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Submit)
				r.Get("/my", leaveHandler.ListMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", leaveHandler.ListAll)
					r.Patch("/{id}/approve", leaveHandler.Approve)
					r.Patch("/{id}/reject", leaveHandler.Reject)
				})
			})

			r.Route("/announcements", func(r chi.Router) {
				r.Get("/", announcementHandler.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", announcementHandler.Create)
					r.Patch("/{id}/deactivate", announcementHandler.Deactivate)
				})
			})

			// Admin only
			r.Route("/entitlements", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/{userID}", entitlementHandler.Get)
				r.Put("/{userID}", entitlementHandler.Put)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/batch/{userID}", dashboardHandler.Batch)
				r.Get("/overview", dashboardHandler.Overview)
				r.Get("/entitlement", dashboardHandler.Entitlement)
				r.Get("/history", dashboardHandler.History)
			})
		})
	})
	return r
}
