package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"costbook/internal/config"
	"costbook/internal/database"
	"costbook/internal/handlers"
	"costbook/internal/middleware"
	"costbook/internal/repositories"
	"costbook/internal/services"
	"costbook/internal/worksheet"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// @title Costbook API
// @version 1.0
// @description Proposal reconciliation and costing workflow for construction bids.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	blacklistedTokenRepo := repositories.NewBlacklistedTokenRepository(db)
	auditLogRepo := repositories.NewAuditLogRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	lineItemRepo := repositories.NewLineItemRepository(db)
	rateRepo := repositories.NewRateRepository(db)
	versionRepo := repositories.NewVersionRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	passwordService := services.NewPasswordService()
	tokenService := services.NewTokenService(&cfg.JWT)
	auditService := services.NewAuditService(auditLogRepo)
	authService := services.NewAuthService(
		userRepo,
		refreshTokenRepo,
		auditLogRepo,
		blacklistedTokenRepo,
		passwordService,
		tokenService,
		metrics,
		logger,
	)
	projectService := services.NewProjectService(projectRepo, auditService, metrics, logger)
	proposalService := services.NewProposalService(lineItemRepo, projectRepo, auditService, metrics, logger)
	populateService := services.NewPopulateService(lineItemRepo, rateRepo, auditService, metrics, logger)
	masterRatesService := services.NewMasterRatesService(rateRepo, versionRepo, auditService, metrics, logger)
	worksheetManager := worksheet.NewManager()
	worksheetService := services.NewWorksheetService(worksheetManager, lineItemRepo, auditService, metrics, logger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	projectHandler := handlers.NewProjectHandler(projectService)
	fileHandler := handlers.NewFileHandler(proposalService, populateService, masterRatesService, worksheetService)
	exportHandler := handlers.NewExportHandler(worksheetService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// Public routes
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)
	e.POST("/refresh", authHandler.RefreshToken)

	// Authenticated routes
	api := e.Group("/api", middleware.RequireAuth(tokenService, blacklistedTokenRepo))
	api.POST("/logout", authHandler.Logout)

	api.POST("/projects", projectHandler.CreateProject)
	api.GET("/projects", projectHandler.ListProjects)
	api.GET("/projects/:projectId", projectHandler.GetProject)
	api.GET("/projects/:projectId/files", fileHandler.ListFiles)
	api.POST("/projects/:projectId/upload-proposal", fileHandler.UploadProposal)

	api.GET("/files/contents/:fileName", fileHandler.GetFileContents)
	api.POST("/files/populate/:fileName", fileHandler.Populate)
	api.PUT("/files/update-line-item", fileHandler.UpdateLineItem)
	api.POST("/files/sort/category", fileHandler.SortByCategory)
	api.POST("/files/sort/line", fileHandler.SortByLine)

	api.GET("/files/download/csv/:fileName", exportHandler.DownloadCSV)
	api.GET("/files/download/pdf/:fileName", exportHandler.DownloadPDF)
	api.GET("/files/chart/:fileName", exportHandler.Chart)

	api.POST("/upload-master-rates", fileHandler.UploadMasterRates)
	api.GET("/versions", fileHandler.ListVersions)
	api.GET("/version-content/:versionId", fileHandler.GetVersionContent)

	// Start server with graceful shutdown
	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("Starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
