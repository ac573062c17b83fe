package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"tasktrack/internal/config"
	"tasktrack/internal/handlers"
	"tasktrack/internal/repositories"
	"tasktrack/internal/routes"
	"tasktrack/internal/services"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "tasktrack/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	ctx := context.Background()
	db, err := repositories.Open(ctx, cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	if err := repositories.EnsureSchema(ctx, db); err != nil {
		log.Fatal("failed to ensure schema: ", err)
	}

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	taskRepo := repositories.NewTaskRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)

	// === Services ===
	authService := services.NewAuthService()

	var emailService services.EmailService
	if cfg.Email.SMTPHost != "" {
		emailService = services.NewEmailService(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword,
			cfg.Email.FromEmail,
		)
	}

	userService := services.NewUserService(userRepo, categoryRepo, authService, emailService)
	categoryService := services.NewCategoryService(categoryRepo)
	taskService := services.NewTaskService(taskRepo)
	statsService := services.NewStatsService(taskRepo)

	sessionTTL := time.Duration(cfg.Session.TTLHours) * time.Hour
	sessionService := services.NewSessionService(sessionRepo, sessionTTL)
	if err := sessionService.CleanupExpired(ctx); err != nil {
		log.Printf("failed to clean up expired sessions: %v", err)
	}

	// === Handlers ===
	cookie := handlers.SessionCookie{
		Name:   cfg.Session.CookieName,
		MaxAge: int(sessionTTL / time.Second),
		Secure: cfg.Session.Secure,
	}
	authHandler := handlers.NewAuthHandler(userService, sessionService, cookie)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	taskHandler := handlers.NewTaskHandler(taskService, userService)
	statsHandler := handlers.NewStatsHandler(statsService)
	pagesHandler := handlers.NewPagesHandler(sessionService, cfg.Session.CookieName)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.LoadHTMLGlob(cfg.Templates)

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/healthz", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupRoutes(
		router,
		authHandler,
		categoryHandler,
		taskHandler,
		statsHandler,
		pagesHandler,
		sessionService,
		cfg.Session.CookieName,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server failed: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
