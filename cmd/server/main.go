package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cartapp "github.com/emporium/backend/internal/application/cart"
	catalogapp "github.com/emporium/backend/internal/application/catalog"
	checkoutapp "github.com/emporium/backend/internal/application/checkout"
	identityapp "github.com/emporium/backend/internal/application/identity"
	"github.com/emporium/backend/internal/infrastructure/auth"
	"github.com/emporium/backend/internal/infrastructure/config"
	"github.com/emporium/backend/internal/infrastructure/logger"
	"github.com/emporium/backend/internal/infrastructure/persistence"
	"github.com/emporium/backend/internal/infrastructure/session"
	"github.com/emporium/backend/internal/interfaces/http/handler"
	"github.com/emporium/backend/internal/interfaces/http/middleware"
	"github.com/emporium/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.FromSettings(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Emporium Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database and schema
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}

	ctx := context.Background()
	if err := persistence.Seed(ctx, db, log); err != nil {
		log.Fatal("Failed to seed demo data", zap.Error(err))
	}

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)

	// Infrastructure services
	sessionStore := session.NewStore(cfg.Session.Path, log)
	tokenService := auth.NewTokenService(cfg.JWT)

	// Application services
	productService := catalogapp.NewProductService(productRepo, log)
	cartService := cartapp.NewCartService(productRepo, log)
	authService := identityapp.NewAuthService(userRepo, tokenService, sessionStore, cartService, log)
	checkoutService := checkoutapp.NewCheckoutService(orderRepo, userRepo, cartService, authService, log)

	// Restore any persisted session from a previous run
	if err := authService.Restore(ctx); err != nil {
		log.Error("Failed to restore persisted session", zap.Error(err))
	}

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		engine.Use(middleware.CORSWithOrigins(cfg.HTTP.CORSAllowOrigins))
	}

	requireAuth := middleware.SessionAuth(authService)

	r := router.NewRouter(engine)
	r.Register(handler.NewSystemHandler(db)).
		Register(handler.NewProductHandler(productService)).
		Register(handler.NewAuthHandler(authService, requireAuth)).
		Register(handler.NewCartHandler(cartService, authService, log)).
		Register(handler.NewCheckoutHandler(checkoutService, requireAuth)).
		Register(handler.NewDashboardHandler(authService, checkoutService, requireAuth))
	r.Setup()

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	// Flush the session blob so the next run can restore the visitor
	if err := authService.Persist(); err != nil {
		log.Error("Failed to persist session on shutdown", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}

	log.Info("Server stopped")
}
