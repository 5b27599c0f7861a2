package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	_ "github.com/M0nkiiii/Screentime-Management/ddd/adapter/http"
	"github.com/M0nkiiii/Screentime-Management/ddd/application/app"
	"github.com/M0nkiiii/Screentime-Management/ddd/infrastructure/prediction"
	"github.com/M0nkiiii/Screentime-Management/internal/resource"
	"github.com/M0nkiiii/Screentime-Management/pkg/cache"
	"github.com/M0nkiiii/Screentime-Management/pkg/config"
	"github.com/M0nkiiii/Screentime-Management/pkg/logger"
	"github.com/M0nkiiii/Screentime-Management/pkg/manager"
	"github.com/M0nkiiii/Screentime-Management/pkg/middleware"
	"github.com/M0nkiiii/Screentime-Management/pkg/redisclient"
	"github.com/M0nkiiii/Screentime-Management/pkg/repository"
)

// Run is the entrypoint of the screen-time service.
func Run() {
	fmt.Println("[STARTUP] Starting screen-time service...")

	cfgPath := resolveConfigPath()
	fmt.Println("[STARTUP] Loading config file...")

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("[ERROR] Failed to load config (%s): %v\n", cfgPath, err)
		os.Exit(1)
	}
	config.SetGlobalConfig(cfg)
	fmt.Printf("[STARTUP] Config file loaded: %s\n", cfgPath)

	fmt.Println("[STARTUP] Initializing logger...")
	logService := logger.NewLogger(cfg)
	logger.SetGlobalLogger(logService)
	logger.Infof("Screen-time service starting version=%s env=%s", "1.0.0", "development")

	// Initialize database connection and expose it via internal resource package.
	logger.Infof("Initializing database connection...")
	db, err := repository.NewDatabase(&cfg.Database)
	if err != nil {
		logger.Fatal(fmt.Sprintf("Failed to initialize database error=%v", err))
	}
	defer db.Close()
	resource.SetMainDB(db.Self)
	logger.Infof("Database connected")

	// Initialize Redis client (optional). If initialization fails we log it
	// and continue without the dashboard cache.
	if cfg.Cache.Enabled {
		logger.Infof("Initializing Redis client...")
		redisCli, err := redisclient.New(cfg.Redis)
		if err != nil {
			logger.Errorf("Failed to initialize redis; dashboard caching disabled error=%v", err)
		} else {
			defer func() {
				logger.Infof("Closing Redis client...")
				_ = redisCli.Close()
			}()
			app.SetDefaultCache(cache.NewRedisCache(redisCli.Raw(), cfg.Cache.TTL))
			logger.Infof("Dashboard cache enabled ttl=%s", cfg.Cache.TTL)
		}
	} else {
		logger.Infof("Dashboard cache disabled by config")
	}

	// Wire the prediction collaborator used by the daily usage endpoints.
	if cfg.Prediction.BaseURL != "" {
		app.SetDefaultPredictor(prediction.NewClient(cfg.Prediction))
		logger.Infof("Prediction client configured base_url=%s", cfg.Prediction.BaseURL)
	} else {
		logger.Warnf("Prediction base URL is not configured, prediction endpoints will fail")
	}

	// Create Gin engine and common middlewares.
	logger.Infof("Creating HTTP routes...")
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestContextMiddleware(),
		middleware.RequestLogMiddleware(),
	)

	// Health check endpoint.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"service":   "screentime-service",
			"timestamp": time.Now().Unix(),
		})
	})

	// Controllers register themselves via init() side effects in the
	// adapter package; attach their routes to the engine here.
	logger.Infof("Registering routes...")
	manager.RegisterAllRoutes(router)
	logger.Infof("Routes registered")

	// Start HTTP server with graceful shutdown.
	port := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:    port,
		Handler: router,
	}

	go func() {
		logger.Infof("HTTP server starting port=%s service=%s", port, "screentime-service")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(fmt.Sprintf("Failed to start HTTP server error=%v", err))
		}
	}()

	logger.Infof("HTTP server started port=%s health_url=%s", port, fmt.Sprintf("http://localhost%s/health", port))

	// Wait for termination signal.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infof("Received shutdown signal, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal(fmt.Sprintf("Server forced to close error=%v", err))
	}

	logger.Infof("Server exited safely")

	if logService != nil {
		logger.Infof("Closing logger...")
		logService.Close()
	}
}

// resolveConfigPath determines which config file to use.
func resolveConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	if env := os.Getenv("CONFIG_ENV"); env != "" {
		return fmt.Sprintf("configs/config.%s.yaml", env)
	}
	return "configs/config.dev.yaml"
}
