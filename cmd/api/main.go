package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/leaveflow/leaveflow-backend-go/internal/config"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/announcement"
	"github.com/leaveflow/leaveflow-backend-go/internal/fixtures"
	appHTTP "github.com/leaveflow/leaveflow-backend-go/internal/handler/http"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/cache"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/database"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/jwt"
	"github.com/leaveflow/leaveflow-backend-go/internal/repository/postgresql"
	announcementService "github.com/leaveflow/leaveflow-backend-go/internal/service/announcement"
	authService "github.com/leaveflow/leaveflow-backend-go/internal/service/auth"
	dashboardService "github.com/leaveflow/leaveflow-backend-go/internal/service/dashboard"
	entitlementService "github.com/leaveflow/leaveflow-backend-go/internal/service/entitlement"
	leaveService "github.com/leaveflow/leaveflow-backend-go/internal/service/leave"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	dsn := cfg.DatabaseURL()
	if err := database.RunMigrations(context.Background(), dsn); err != nil {
		log.Fatal("Error running migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	entitlementRepo := postgresql.NewEntitlementRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)

	announcementCache, err := cache.New[[]announcement.Announcement](64)
	if err != nil {
		log.Fatal("Error creating announcement cache: ", err)
	}
	defer announcementCache.Close()

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, refreshTokenRepo, JWTService)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo)
	entitlementSvc := entitlementService.NewEntitlementService(
		entitlementRepo,
		userRepo,
		leaveRequestRepo,
		fixtures.DefaultEntitlements(),
	)
	announcementSvc := announcementService.NewAnnouncementService(
		announcementRepo,
		announcementCache,
		cfg.Dashboard.AnnouncementTTL,
	)
	dashboardSvc := dashboardService.NewDashboardService(
		leaveRequestRepo,
		leaveSvc,
		entitlementSvc,
		announcementSvc,
		cfg.Dashboard.FetchTimeout,
	)

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	announcementHandler := appHTTP.NewAnnouncementHandler(announcementSvc)
	entitlementHandler := appHTTP.NewEntitlementHandler(entitlementSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc, entitlementSvc, leaveSvc)

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.Env,
		cfg.App.FrontendURL,
		authHandler,
		leaveHandler,
		announcementHandler,
		entitlementHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
