package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/vouchly-dev/vouchly/internal/handlers"
	"github.com/vouchly-dev/vouchly/internal/middleware"
	"github.com/vouchly-dev/vouchly/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/ws/:project_id", middleware.AuthMiddleware(), handlers.WebSocket)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.CreateUser)
			auth.POST("/login", handlers.LoginUser)
			auth.POST("/logout", handlers.LogoutUser)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		user := api.Group("/user", middleware.AuthMiddleware())
		{
			user.PATCH("/profile", handlers.UpdateProfile)
			user.PATCH("/password", handlers.UpdatePassword)
			user.GET("/notifications", handlers.GetNotificationSettings)
			user.PATCH("/notifications", handlers.UpdateNotificationSettings)
			user.DELETE("/account", handlers.DeleteAccount)
		}

		projects := api.Group("/projects", middleware.AuthMiddleware())
		{
			projects.POST("", handlers.CreateProject)
			projects.GET("", handlers.ListProjects)
			projects.GET("/:project_id", handlers.GetProject)
			projects.PATCH("/:project_id", handlers.UpdateProject)
			projects.DELETE("/:project_id", handlers.DeleteProject)

			// Dashboard and embed endpoints
			projects.GET("/:project_id/dashboard", handlers.GetDashboard)
			projects.GET("/:project_id/embed", handlers.GetEmbedCode)

			// Moderation endpoints
			projects.GET("/:project_id/testimonials", handlers.ListProjectTestimonials)
			projects.PATCH("/:project_id/testimonials/:testimonial_id", handlers.ModerateTestimonial)
			projects.DELETE("/:project_id/testimonials/:testimonial_id", handlers.DeleteTestimonial)
		}

		api.GET("/testimonials", middleware.AuthMiddleware(), handlers.ListTestimonials)

		// Public endpoints keyed by share token
		api.GET("/submit/:share_id", handlers.GetSubmissionForm)
		api.POST("/submit/:share_id", handlers.SubmitTestimonial)
		api.GET("/widget/:share_id", handlers.GetWidget)
	}

	return r
}
