package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carewell/config"
	"carewell/cron"
	"carewell/database"
	applicationRepoPkg "carewell/database/repository/application"
	jobRepoPkg "carewell/database/repository/job"
	notificationRepoPkg "carewell/database/repository/notification"
	paymentRepoPkg "carewell/database/repository/payment"
	settingsRepoPkg "carewell/database/repository/settings"
	userRepoPkg "carewell/database/repository/user"
	"carewell/handlers"
	"carewell/middleware"
	"carewell/routes"
	"carewell/services/admin"
	"carewell/services/application"
	"carewell/services/document"
	"carewell/services/job"
	"carewell/services/notification"
	"carewell/services/payment"
	"carewell/services/tasks"
	"carewell/services/user"
	"carewell/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// Task queue client for background work (blob cleanup, reminders).
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
	defer asynqClient.Close()
	enqueuer := &tasks.AsynqEnqueuer{Client: asynqClient}

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	applicationRepo := applicationRepoPkg.NewMongoApplicationRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()
	jobRepo := jobRepoPkg.NewMongoJobRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	// Settings change rarely and are read on every submission and payment;
	// they go through the generic Redis cache.
	settingsRepo := settingsRepoPkg.NewCachedSettingsRepo(settingsRepoPkg.NewMongoSettingsRepo(), utils.GetCacheClient())

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	notificationService := &notification.DefaultNotificationService{
		Repo:  notificationRepo,
		Users: userRepo,
	}

	applicationService := &application.DefaultApplicationService{
		Repo:         applicationRepo,
		Users:        userRepo,
		Settings:     settingsRepo,
		Notification: notificationService,
	}

	documentService := &document.DefaultDocumentService{
		Applications: applicationService,
		Users:        userService,
		Storage:      storageService,
		Tasks:        enqueuer,
	}

	paymentService := &payment.DefaultPaymentService{
		Repo:         paymentRepo,
		Applications: applicationRepo,
		Settings:     settingsRepo,
		Notification: notificationService,
		Intents:      payment.StripeIntentClient{},
		Tasks:        enqueuer,
	}

	jobService := &job.DefaultJobService{
		Repo: jobRepo,
	}

	adminService := &admin.DefaultAdminService{
		Applications: applicationRepo,
		Users:        userRepo,
		Settings:     settingsRepo,
		Notification: notificationService,
	}

	// handlers.
	userHandler := handlers.NewUserHandler(userService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	jobHandler := handlers.NewJobHandler(jobService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	adminHandler := handlers.NewAdminHandler(adminService, notificationService)

	// Background worker consuming the task queue.
	cron.InitTaskWorker(storageService, applicationRepo, notificationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Account endpoints.
		RegisterUserHandler:        userHandler.RegisterUserHandler,
		AuthenticateUserHandler:    userHandler.AuthenticateUserHandler,
		GetProfileHandler:          userHandler.GetProfileHandler,
		UpdateProfileHandler:       userHandler.UpdateProfileHandler,
		RevokeUserAuthTokenHandler: userHandler.RevokeUserAuthTokenHandler,
		DeleteUserHandler:          userHandler.DeleteUserHandler,

		// Standing profile documents.
		UploadProfileDocumentHandler: documentHandler.UploadProfileDocumentHandler,
		RemoveProfileDocumentHandler: documentHandler.RemoveProfileDocumentHandler,

		// Application wizard endpoints.
		ResumeApplicationHandler: applicationHandler.ResumeHandler,
		AutosaveHandler:          applicationHandler.AutosaveHandler,
		AdvanceStepHandler:       applicationHandler.AdvanceHandler,
		RetreatStepHandler:       applicationHandler.RetreatHandler,
		SubmitApplicationHandler: applicationHandler.SubmitHandler,
		ListApplicationsHandler:  applicationHandler.ListHandler,

		// Document endpoints.
		UploadDocumentHandler:        documentHandler.UploadDocumentHandler,
		AttachProfileDocumentHandler: documentHandler.AttachProfileDocumentHandler,
		RemoveDocumentHandler:        documentHandler.RemoveDocumentHandler,
		GetDownloadURLHandler:        documentHandler.GetDownloadURLHandler,

		// Payment endpoints.
		GetPaymentOptionsHandler:       paymentHandler.GetOptionsHandler,
		RecordPaymentHandler:           paymentHandler.RecordPaymentHandler,
		ListPaymentsHandler:            paymentHandler.ListPaymentsHandler,
		ListApplicationPaymentsHandler: paymentHandler.ListApplicationPaymentsHandler,

		// Job endpoints.
		ListJobsHandler:  jobHandler.ListJobsHandler,
		GetJobHandler:    jobHandler.GetJobHandler,
		CreateJobHandler: jobHandler.CreateJobHandler,
		UpdateJobHandler: jobHandler.UpdateJobHandler,
		DeleteJobHandler: jobHandler.DeleteJobHandler,

		// Notification endpoints.
		ListNotificationsHandler:    notificationHandler.ListHandler,
		MarkNotificationReadHandler: notificationHandler.MarkReadHandler,

		// Admin endpoints.
		AdminListApplicationsHandler:        adminHandler.ListApplicationsHandler,
		AdminGetApplicationHandler:          adminHandler.GetApplicationHandler,
		AdminUpdateApplicationStatusHandler: adminHandler.UpdateApplicationStatusHandler,
		AdminVerifyDocumentHandler:          adminHandler.VerifyDocumentHandler,
		AdminGetPaymentSettingsHandler:      adminHandler.GetPaymentSettingsHandler,
		AdminUpdatePaymentSettingsHandler:   adminHandler.UpdatePaymentSettingsHandler,
		AdminListUsersHandler:               adminHandler.ListUsersHandler,
		AdminInboxHandler:                   adminHandler.AdminInboxHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
