package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tracklite/task-tracker-api/internal/auth"
	"github.com/tracklite/task-tracker-api/internal/config"
	"github.com/tracklite/task-tracker-api/internal/database"
	"github.com/tracklite/task-tracker-api/internal/handlers"
	"github.com/tracklite/task-tracker-api/internal/logger"
	"github.com/tracklite/task-tracker-api/internal/middleware"
	"github.com/tracklite/task-tracker-api/internal/repository"
	"github.com/tracklite/task-tracker-api/internal/services"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load(ctx)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// Initialize logger
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.GinMode != "release",
	})

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Seed the bootstrap admin account on an empty database
	if err := database.SeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin user")
	}

	// Initialize repositories
	taskRepo := repository.NewTaskRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authService := services.NewAuthService(userRepo, tokens)
	taskService := services.NewTaskService(taskRepo)
	employeeService := services.NewEmployeeService(employeeRepo)
	dashboardService := services.NewDashboardService(taskRepo, employeeRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes (public)
	r.POST("/auth/login", authHandler.Login)

	// Employee routes (protected; mutations admin-only)
	employees := r.Group("/employees")
	employees.Use(middleware.RequireAuth(authService))
	{
		employees.GET("", employeeHandler.ListEmployees)
		employees.POST("", middleware.RequireAdmin(), employeeHandler.CreateEmployee)
		employees.PUT("/:id", middleware.RequireAdmin(), employeeHandler.UpdateEmployee)
		employees.DELETE("/:id", middleware.RequireAdmin(), employeeHandler.DeleteEmployee)
	}

	// Task routes (protected; mutations admin-only)
	tasks := r.Group("/tasks")
	tasks.Use(middleware.RequireAuth(authService))
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.POST("", middleware.RequireAdmin(), taskHandler.CreateTask)
		tasks.PUT("/:id", middleware.RequireAdmin(), taskHandler.UpdateTask)
		tasks.DELETE("/:id", middleware.RequireAdmin(), taskHandler.DeleteTask)
	}

	// Dashboard (protected)
	r.GET("/dashboard", middleware.RequireAuth(authService), dashboardHandler.GetDashboard)

	// Fallback route
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": fmt.Sprintf("Route %s %s not found", c.Request.Method, c.Request.URL.Path),
		})
	})

	// Start server
	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("server starting")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
