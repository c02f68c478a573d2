package handlers

import (
	userRepoPkg "carewell/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Account endpoints
	RegisterUserHandler        gin.HandlerFunc
	AuthenticateUserHandler    gin.HandlerFunc
	GetProfileHandler          gin.HandlerFunc
	UpdateProfileHandler       gin.HandlerFunc
	RevokeUserAuthTokenHandler gin.HandlerFunc
	DeleteUserHandler          gin.HandlerFunc

	// Standing profile documents
	UploadProfileDocumentHandler gin.HandlerFunc
	RemoveProfileDocumentHandler gin.HandlerFunc

	// Application wizard endpoints
	ResumeApplicationHandler gin.HandlerFunc
	AutosaveHandler          gin.HandlerFunc
	AdvanceStepHandler       gin.HandlerFunc
	RetreatStepHandler       gin.HandlerFunc
	SubmitApplicationHandler gin.HandlerFunc
	ListApplicationsHandler  gin.HandlerFunc

	// Document endpoints
	UploadDocumentHandler        gin.HandlerFunc
	AttachProfileDocumentHandler gin.HandlerFunc
	RemoveDocumentHandler        gin.HandlerFunc
	GetDownloadURLHandler        gin.HandlerFunc

	// Payment endpoints
	GetPaymentOptionsHandler       gin.HandlerFunc
	RecordPaymentHandler           gin.HandlerFunc
	ListPaymentsHandler            gin.HandlerFunc
	ListApplicationPaymentsHandler gin.HandlerFunc

	// Job endpoints
	ListJobsHandler  gin.HandlerFunc
	GetJobHandler    gin.HandlerFunc
	CreateJobHandler gin.HandlerFunc
	UpdateJobHandler gin.HandlerFunc
	DeleteJobHandler gin.HandlerFunc

	// Notification endpoints
	ListNotificationsHandler    gin.HandlerFunc
	MarkNotificationReadHandler gin.HandlerFunc

	// Admin endpoints
	AdminListApplicationsHandler        gin.HandlerFunc
	AdminGetApplicationHandler          gin.HandlerFunc
	AdminUpdateApplicationStatusHandler gin.HandlerFunc
	AdminVerifyDocumentHandler          gin.HandlerFunc
	AdminGetPaymentSettingsHandler      gin.HandlerFunc
	AdminUpdatePaymentSettingsHandler   gin.HandlerFunc
	AdminListUsersHandler               gin.HandlerFunc
	AdminInboxHandler                   gin.HandlerFunc
}
