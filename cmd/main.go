package main

import (
	"context"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/gurramshanthraju/Shopify-App/internal/handler"
	"github.com/gurramshanthraju/Shopify-App/internal/middleware"
	"github.com/gurramshanthraju/Shopify-App/internal/repository"
	"github.com/gurramshanthraju/Shopify-App/internal/session"
	"github.com/gurramshanthraju/Shopify-App/internal/sessionkv"
	"github.com/gurramshanthraju/Shopify-App/internal/store"
	"github.com/gurramshanthraju/Shopify-App/pkg/config"
	"github.com/gurramshanthraju/Shopify-App/pkg/jwtutil"
	"github.com/gurramshanthraju/Shopify-App/pkg/logger"
	"github.com/gurramshanthraju/Shopify-App/prometheus"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	if err := logger.InitLogger(&logger.LogConfig{
		Level:       cfg.Log.Level,
		Environment: cfg.Server.Env,
		ServiceName: cfg.ServiceName,
	}); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	log.Info("Starting storefront dashboard service...", cfg.LogFields()...)

	// Initialize JWT utility
	jwtutil.Initialize(&jwtutil.JWTConfig{
		SigningKey:      cfg.JWT.SigningKey,
		ExpirationHours: cfg.JWT.ExpirationHours,
	})
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics()
	log.Info("Prometheus metrics initialized")

	// Open the session KV: Redis when configured, otherwise in-process
	// memory (sessions then do not survive a restart).
	ctx := context.Background()
	var kv sessionkv.KV
	if cfg.Session.RedisURL != "" {
		redisKV, err := sessionkv.NewRedis(cfg.Session.RedisURL)
		if err != nil {
			log.Fatal("Failed to open session store", zap.Error(err))
		}
		if err := redisKV.Ping(ctx); err != nil {
			log.Fatal("Failed to reach session store", zap.Error(err))
		}
		kv = redisKV
		log.Info("Session store connected", zap.String("backend", "redis"))
	} else {
		kv = sessionkv.NewMemory()
		log.Warn("No SESSION_REDIS_URL configured, sessions will not survive restarts")
	}

	// Seed the entity store and build the read layer
	entities := store.Seed()
	repo := repository.New(entities)
	log.Info("Entity store seeded",
		zap.Int("tenants", len(entities.Tenants())),
		zap.Int("users", len(entities.Users())))

	// Session manager, restoring any persisted session from the KV
	sessions := session.NewManager(entities, kv, cfg.Session.SimulatedLatency, log)
	sessions.Restore(ctx)
	prometheus.SetSessionActive(sessions.IsAuthenticated())

	// Handlers
	authHandler := handler.NewAuthHandler(sessions)
	dashboardHandler := handler.NewDashboardHandler(repo)
	explorerHandler := handler.NewExplorerHandler(repo)
	tenantHandler := handler.NewTenantHandler(entities)

	// Initialize Echo framework
	e := echo.New()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware())
	e.Use(prometheus.MetricsMiddleware())

	// Public routes - no authentication required
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", handler.MetricsHandler)

	// Authentication routes
	auth := e.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/logout", authHandler.Logout)

	// API routes - all require authentication
	api := e.Group("/api")
	api.Use(middleware.AuthMiddleware)

	api.GET("/session", authHandler.Session)

	// Dashboard aggregations
	dashboard := api.Group("/dashboard")
	dashboard.GET("/overview", dashboardHandler.Overview)
	dashboard.GET("/top-customers", dashboardHandler.TopCustomers)
	dashboard.GET("/recent-orders", dashboardHandler.RecentOrders)
	dashboard.GET("/top-products", dashboardHandler.TopProducts)
	dashboard.GET("/trends", dashboardHandler.Trends)

	// Data explorer
	api.GET("/customers", explorerHandler.Customers)
	api.GET("/orders", explorerHandler.Orders)
	api.GET("/products", explorerHandler.Products)

	// Tenant management
	tenants := api.Group("/tenants")
	tenants.GET("", tenantHandler.List)
	tenants.POST("", tenantHandler.Create)
	tenants.POST("/:id/reconnect", tenantHandler.Reconnect)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
