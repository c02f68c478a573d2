package handlers

import (
	"net/http"
	"strconv"

	"carewell/models"
	"carewell/services/admin"
	"carewell/services/notification"
	"carewell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the admin console endpoints.
type AdminHandler struct {
	Service       admin.AdminService
	Notifications notification.NotificationService
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(svc admin.AdminService, notif notification.NotificationService) *AdminHandler {
	return &AdminHandler{Service: svc, Notifications: notif}
}

// ListApplicationsHandler handles GET /api/admin/applications.
func (h *AdminHandler) ListApplicationsHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	result, err := h.Service.ListApplications(c, c.Query("status"), c.Query("userId"), page, pageSize)
	if err != nil {
		utils.GetLogger().Error("Failed to list applications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetApplicationHandler handles GET /api/admin/applications/:id.
func (h *AdminHandler) GetApplicationHandler(c *gin.Context) {
	app, err := h.Service.GetApplication(c, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app)
}

// UpdateApplicationStatusHandler handles PATCH /api/admin/applications/:id/status.
func (h *AdminHandler) UpdateApplicationStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.Service.UpdateApplicationStatus(c, c.Param("id"), req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app)
}

// VerifyDocumentHandler handles PATCH /api/admin/applications/:id/documents/:documentID/verify.
func (h *AdminHandler) VerifyDocumentHandler(c *gin.Context) {
	app, err := h.Service.VerifyDocument(c, c.Param("id"), c.Param("documentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app)
}

// GetPaymentSettingsHandler handles GET /api/admin/settings/payments.
func (h *AdminHandler) GetPaymentSettingsHandler(c *gin.Context) {
	settings, err := h.Service.GetPaymentSettings(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdatePaymentSettingsHandler handles PUT /api/admin/settings/payments.
func (h *AdminHandler) UpdatePaymentSettingsHandler(c *gin.Context) {
	var settings models.PaymentSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdatePaymentSettings(c, settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment settings updated"})
}

// ListUsersHandler handles GET /api/admin/users.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Service.GetAllUsers(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// AdminInboxHandler handles GET /api/admin/notifications.
func (h *AdminHandler) AdminInboxHandler(c *gin.Context) {
	notifications, err := h.Notifications.GetAdminInbox(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, notifications)
}
