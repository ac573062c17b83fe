package routes

import (
	"github.com/gin-gonic/gin"

	"tasktrack/internal/handlers"
	"tasktrack/internal/middleware"
	"tasktrack/internal/services"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	categoryHandler *handlers.CategoryHandler,
	taskHandler *handlers.TaskHandler,
	statsHandler *handlers.StatsHandler,
	pagesHandler *handlers.PagesHandler,
	sessions services.SessionService,
	cookieName string,
) *gin.Engine {

	// ---- pages (handle their own redirects)
	r.GET("/", pagesHandler.Index)
	r.GET("/register", pagesHandler.RegisterPage)
	r.GET("/dashboard", pagesHandler.Dashboard)
	r.GET("/tasks", pagesHandler.TasksPage)

	// ---- public API
	r.POST("/api/register", authHandler.Register)
	r.POST("/api/login", authHandler.Login)
	// logout stays public so a second call after the session is gone
	// still succeeds
	r.POST("/api/logout", authHandler.Logout)

	// ---- session-protected API
	api := r.Group("/api", middleware.SessionAuth(sessions, cookieName))

	categories := api.Group("/categories")
	{
		categories.GET("", categoryHandler.GetAll)
		categories.POST("", categoryHandler.Create)
		categories.DELETE("/:id", categoryHandler.Delete)
	}

	tasks := api.Group("/tasks")
	{
		tasks.GET("", taskHandler.GetAll)
		tasks.POST("", taskHandler.Create)
		tasks.GET("/export", taskHandler.Export)
		tasks.GET("/:id", taskHandler.GetByID)
		tasks.PUT("/:id", taskHandler.Update)
		tasks.DELETE("/:id", taskHandler.Delete)
	}

	api.GET("/stats", statsHandler.GetStats)

	return r
}
