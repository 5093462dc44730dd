package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/oceanline/cruise-admin-backend/internal/config"
	"github.com/oceanline/cruise-admin-backend/internal/database"
	"github.com/oceanline/cruise-admin-backend/internal/handlers"
	"github.com/oceanline/cruise-admin-backend/internal/middleware"
	"github.com/oceanline/cruise-admin-backend/internal/services"
	"github.com/oceanline/cruise-admin-backend/pkg/jwt"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting OceanLine Cruise Admin Backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Set log level
	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database connection
	logger.Info("Connecting to database...")
	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Database connection established")

	// The cruise repository runs transactions and needs the raw sqlx handle
	sqlxDB, ok := db.(*database.PostgresDB)
	if !ok {
		logger.Fatal("Failed to cast database connection to PostgresDB")
	}

	// Initialize repositories
	adminRepo := database.NewAdminRepository(db)
	categoryRepo := database.NewRoomCategoryRepository(db)
	roomRepo := database.NewRoomRepository(db)
	staffRepo := database.NewStaffRepository(db)
	activityRepo := database.NewActivityRepository(db)
	cruiseRepo := database.NewCruiseRepository(sqlxDB.DB)
	dashboardRepo := database.NewDashboardRepository(db)

	// Initialize services
	logger.Info("Initializing services...")
	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.TokenExpiry)
	authService := services.NewAuthService(adminRepo, jwtService, cfg.Security.BcryptCost)
	financeService := services.NewFinanceService()
	tripService := services.NewTripService(cruiseRepo, categoryRepo, roomRepo, staffRepo, activityRepo, financeService)
	dashboardService := services.NewDashboardService(dashboardRepo, roomRepo, staffRepo, activityRepo)
	reportService := services.NewReportService()
	exportService := services.NewExportService()
	logger.Info("Services initialized")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, adminRepo)
	categoryHandler := handlers.NewRoomCategoryHandler(categoryRepo, roomRepo)
	roomHandler := handlers.NewRoomHandler(roomRepo, categoryRepo)
	staffHandler := handlers.NewStaffHandler(staffRepo)
	activityHandler := handlers.NewActivityHandler(activityRepo)
	cruiseHandler := handlers.NewCruiseHandler(tripService, reportService, exportService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Initialize Gin router
	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	if cfg.Security.EnableRequestLog {
		router.Use(requestLogger(logger))
	}

	// CORS configuration
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	// Health check and metrics endpoints
	router.GET("/health", healthCheckHandler(db))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := router.Group("/api")
	{
		// Authentication routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)

			authProtected := auth.Group("")
			authProtected.Use(middleware.AuthMiddleware(jwtService))
			{
				authProtected.GET("/me", authHandler.Me)
				authProtected.GET("/sessions", authHandler.Sessions)
			}
		}

		// Everything below requires a valid admin token
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(jwtService))
		{
			// Room categories
			categories := protected.Group("/room-categories")
			{
				categories.GET("", categoryHandler.GetAll)
				categories.GET("/availability", categoryHandler.GetAvailability)
				categories.GET("/:id", categoryHandler.GetByID)
				categories.PUT("/:id", categoryHandler.Update)
			}

			// Rooms
			rooms := protected.Group("/rooms")
			{
				rooms.GET("", roomHandler.GetAll)
				rooms.POST("", roomHandler.Create)
				rooms.GET("/:id", roomHandler.GetByID)
				rooms.PUT("/:id", roomHandler.Update)
				rooms.DELETE("/:id", roomHandler.Delete)
			}

			// Staff
			staff := protected.Group("/staff")
			{
				staff.GET("", staffHandler.GetAll)
				staff.POST("", staffHandler.Create)
				staff.GET("/:id", staffHandler.GetByID)
				staff.PUT("/:id", staffHandler.Update)
				staff.DELETE("/:id", staffHandler.Delete)
			}

			// Activities
			activities := protected.Group("/activities")
			{
				activities.GET("", activityHandler.GetAll)
				activities.POST("", activityHandler.Create)
				activities.GET("/:id", activityHandler.GetByID)
				activities.PUT("/:id", activityHandler.Update)
				activities.DELETE("/:id", activityHandler.Delete)
			}

			// Cruises / trips
			cruises := protected.Group("/cruises")
			{
				cruises.GET("", cruiseHandler.GetAll)
				cruises.POST("", cruiseHandler.Create)
				cruises.GET("/archived", cruiseHandler.GetArchived)
				cruises.GET("/export", cruiseHandler.Export)
				cruises.POST("/history", cruiseHandler.CreateHistory)
				cruises.PUT("/:id/history", cruiseHandler.UpdateHistory)
				cruises.GET("/:id", cruiseHandler.GetByID)
				cruises.DELETE("/:id", cruiseHandler.Delete)
				cruises.PUT("/:id/archive", cruiseHandler.Archive)
				cruises.GET("/:id/report", cruiseHandler.Report)
			}

			// Dashboard
			dashboard := protected.Group("/dashboard")
			{
				dashboard.GET("/stats", dashboardHandler.GetStats)
				dashboard.GET("/monthly-revenue", dashboardHandler.GetMonthlyRevenue)
			}
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited successfully")
}

// requestLogger middleware for logging HTTP requests
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		fields := logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"ip":         c.ClientIP(),
			"latency_ms": latency.Milliseconds(),
			"user_agent": c.Request.UserAgent(),
		}

		entry := logger.WithFields(fields)

		status := c.Writer.Status()
		switch {
		case status >= 500:
			entry.Error("Request completed with server error")
		case status >= 400:
			entry.Warn("Request completed with client error")
		default:
			entry.Info("Request completed successfully")
		}
	}
}

// healthCheckHandler returns a health check endpoint
func healthCheckHandler(db database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "unhealthy",
				"error":    err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"database":  "healthy",
			"version":   version,
			"timestamp": time.Now().Unix(),
		})
	}
}
