package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"problem-bank/internal/adapter"
	"problem-bank/internal/cache"
	"problem-bank/internal/config"
	"problem-bank/internal/database"
	"problem-bank/internal/handler"
	"problem-bank/internal/logger"
	"problem-bank/internal/middleware"
	"problem-bank/internal/repository"
	"problem-bank/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		requestID, _ := c.Locals(middleware.RequestIDKey).(string)
		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("request_id", requestID),
		)

		return err
	}
}

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Connect to Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
	appLogger.Info("Successfully connected to Redis")

	// Initialize repositories
	userRepository := repository.NewSQLXUserRepository(db)
	categoryRepository := repository.NewCategoryDatabaseAdapter(db)
	problemRepository := repository.NewProblemDatabaseAdapter(db)
	courseRepository := repository.NewCourseDatabaseAdapter(db)

	// Initialize services
	authService, err := service.NewAuthService(userRepository, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	categoryService := service.NewCategoryService(categoryRepository, cacheAdapter, cfg)
	problemService := service.NewProblemService(problemRepository, cacheAdapter, cfg)
	courseService := service.NewCourseService(courseRepository)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	problemHandler := handler.NewProblemHandler(problemService)
	courseHandler := handler.NewCourseHandler(courseService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	// Public routes
	app.Post("/signup", authHandler.Signup)
	app.Post("/login", authHandler.Login)

	// Everything else requires a valid bearer token.
	protected := middleware.Protected(authService)

	categoryGroup := app.Group("/category", protected)
	categoryGroup.Get("/list", categoryHandler.ListCategories)

	problemGroup := app.Group("/problem", protected)
	problemGroup.Get("/list", problemHandler.ListProblems)
	problemGroup.Get("/:uuid", problemHandler.GetProblem)

	courseGroup := app.Group("/course", protected)
	courseGroup.Get("/list", courseHandler.ListCourses)
	courseGroup.Get("/:uuid", courseHandler.GetCourse)
	courseGroup.Post("/add", courseHandler.AddCourse)

	adminGroup := app.Group("/admin", protected)
	adminGroup.Post("/category/add", categoryHandler.AddCategory)
	adminGroup.Post("/problem/add", problemHandler.AddProblem)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
