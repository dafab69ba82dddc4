package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"parkpulse-analytics/config"
	"parkpulse-analytics/controllers/operator"
	"parkpulse-analytics/db"
	"parkpulse-analytics/middleware"
	"parkpulse-analytics/pkg/cache"
	pkgconfig "parkpulse-analytics/pkg/config"
	"parkpulse-analytics/pkg/goroutinepool"
	"parkpulse-analytics/pkg/monitoring"
	"parkpulse-analytics/pkg/websocket"
	"parkpulse-analytics/redis"
	"parkpulse-analytics/router"
	"parkpulse-analytics/services/stream_service"
)

// Injected at build time.
var (
	Version            = "dev"
	BuildTime          = "unknown"
	GitCommit          = "unknown"
	DefaultServiceName = "parkpulse-analytics"
	DefaultRouterMode  = "all"
	DefaultPort        = "8801"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "-version", "--version", "-v":
			fmt.Printf("ParkPulse Analytics\n")
			fmt.Printf("Version: %s\n", Version)
			fmt.Printf("Build Time: %s\n", BuildTime)
			fmt.Printf("Git Commit: %s\n", GitCommit)
			return
		case "-help", "--help", "-h":
			fmt.Printf("ParkPulse Analytics - read-only rollups for park operators and partners\n\n")
			fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
			fmt.Printf("Options:\n")
			fmt.Printf("  -version, -v     print version info\n")
			fmt.Printf("  -help, -h        print this help\n\n")
			fmt.Printf("Environment Variables:\n")
			fmt.Printf("  SERVICE_NAME     service name (default: %s)\n", DefaultServiceName)
			fmt.Printf("  ROUTER_MODE      router mode (default: %s)\n", DefaultRouterMode)
			fmt.Printf("  PORT             listen port (default: %s)\n", DefaultPort)
			fmt.Printf("\nAvailable Router Modes:\n")
			fmt.Printf("  all      - operator and partner endpoints (default)\n")
			fmt.Printf("  operator - operator dashboard endpoints only\n")
			fmt.Printf("  partner  - partner analytics endpoints only\n")
			return
		}
	}

	serviceName := getEnv("SERVICE_NAME", DefaultServiceName)
	routerMode := getEnv("ROUTER_MODE", DefaultRouterMode)
	port := getEnv("PORT", DefaultPort)

	log.Printf("starting %s (mode: %s, port: %s)...", serviceName, routerMode, port)

	redisConfig := config.LoadConfig()
	redis.InitRedis(redisConfig)

	pkgconfig.InitConfig()
	if err := pkgconfig.GetConfig().Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// All day windows are computed in the operating timezone, not UTC.
	loc, err := time.LoadLocation("Africa/Lagos")
	if err != nil {
		panic("cannot load timezone: " + err.Error())
	}
	time.Local = loc

	db.Init()
	cache.InitCache()

	// The live dashboard feed only runs where operator routes are served.
	var hub *websocket.Hub
	var feed *stream_service.DashboardFeed
	if routerMode == "operator" || routerMode == "all" {
		hub = websocket.NewHub()
		go hub.Run()
		operator.InitStream(hub)

		feed = stream_service.NewDashboardFeed(hub)
		go feed.Start()
	}

	gin.SetMode(gin.ReleaseMode)
	app := gin.New()

	app.Use(middleware.Recovery())
	app.Use(middleware.RequestID())
	app.Use(middleware.Performance())
	app.Use(middleware.Cors())
	app.Use(middleware.SecureHeaders())
	app.Use(middleware.ErrorHandler())

	// Read-only rollups are cheap but not free; keep a sane ceiling.
	app.Use(middleware.RateLimit(1000))

	app.Use(monitoring.PrometheusMiddleware())

	app.GET("/metrics", gin.WrapH(promhttp.Handler()))

	app.GET("/health", func(c *gin.Context) {
		healthData := gin.H{
			"service":    serviceName,
			"mode":       routerMode,
			"status":     "healthy",
			"timestamp":  time.Now(),
			"goroutines": goroutinepool.GetPool().GetStats(),
			"database":   db.GetStats(),
			"redis":      redis.IsConnected(),
		}
		if cache.GlobalCache != nil {
			healthData["cache"] = cache.GlobalCache.GetStats()
		}
		if hub != nil {
			healthData["dashboard_feed"] = hub.GetStats()
		}
		c.JSON(http.StatusOK, healthData)
	})

	switch routerMode {
	case "operator":
		log.Print("registering operator routes...")
		router.InitOperator(app)
	case "partner":
		log.Print("registering partner routes...")
		router.InitPartner(app)
	default:
		log.Print("registering all routes...")
		router.InitOperator(app)
		router.InitPartner(app)
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      app,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("listening on :%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Print("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if feed != nil {
		feed.Stop()
	}

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("forced server shutdown: %v", err)
	}

	goroutinepool.Stop()
	redis.CloseRedis()

	log.Print("server stopped")
}
