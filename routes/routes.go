package routes

import (
	"net/http"
	"time"

	"carewell/handlers"
	"carewell/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)
	}
}

// RegisterAccountRoutes registers profile endpoints.
func RegisterAccountRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.DELETE("/me", hb.DeleteUserHandler)
		api.DELETE("/me/session", hb.RevokeUserAuthTokenHandler)
		api.POST("/me/documents/upload/:type", hb.UploadProfileDocumentHandler)
		api.DELETE("/me/documents/id/:id", hb.RemoveProfileDocumentHandler)
	}
}

// RegisterApplicationRoutes registers the application wizard endpoints.
func RegisterApplicationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/application")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/resume", hb.ResumeApplicationHandler)
		api.PUT("/draft", hb.AutosaveHandler)
		api.POST("/advance", hb.AdvanceStepHandler)
		api.POST("/retreat", hb.RetreatStepHandler)
		api.POST("/submit", hb.SubmitApplicationHandler)
		api.GET("", hb.ListApplicationsHandler)
	}
}

// RegisterDocumentRoutes registers document upload and download endpoints.
func RegisterDocumentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/documents")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/upload/:type", hb.UploadDocumentHandler)
		api.POST("/from-profile", hb.AttachProfileDocumentHandler)
		api.DELETE("/id/:id", hb.RemoveDocumentHandler)
		api.GET("/id/:id/url", hb.GetDownloadURLHandler)
	}
}

// RegisterPaymentRoutes registers payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/options/:applicationID", hb.GetPaymentOptionsHandler)
		api.POST("", hb.RecordPaymentHandler)
		api.GET("", hb.ListPaymentsHandler)
		api.GET("/application/:applicationID", hb.ListApplicationPaymentsHandler)
	}
}

// RegisterJobRoutes registers the public job board endpoints.
func RegisterJobRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/jobs")
	{
		api.GET("", hb.ListJobsHandler)
		api.GET("/:id", hb.GetJobHandler)
	}
}

// RegisterNotificationRoutes registers the in-app notification inbox.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("", hb.ListNotificationsHandler)
		api.PATCH("/:id/read", hb.MarkNotificationReadHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware(hb.UserRepo))
		adminGroup.GET("/applications", hb.AdminListApplicationsHandler)
		adminGroup.GET("/applications/:id", hb.AdminGetApplicationHandler)
		adminGroup.PATCH("/applications/:id/status", hb.AdminUpdateApplicationStatusHandler)
		adminGroup.PATCH("/applications/:id/documents/:documentID/verify", hb.AdminVerifyDocumentHandler)
		adminGroup.GET("/settings/payments", hb.AdminGetPaymentSettingsHandler)
		adminGroup.PUT("/settings/payments", hb.AdminUpdatePaymentSettingsHandler)
		adminGroup.GET("/users", hb.AdminListUsersHandler)
		adminGroup.GET("/notifications", hb.AdminInboxHandler)
		adminGroup.POST("/jobs", hb.CreateJobHandler)
		adminGroup.PUT("/jobs/:id", hb.UpdateJobHandler)
		adminGroup.DELETE("/jobs/:id", hb.DeleteJobHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Carewell"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterAccountRoutes(r, hb)
	RegisterApplicationRoutes(r, hb)
	RegisterDocumentRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterJobRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
