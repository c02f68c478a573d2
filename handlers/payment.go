package handlers

import (
	"errors"
	"net/http"

	"carewell/models"
	"carewell/services/payment"
	"carewell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes payment endpoints.
type PaymentHandler struct {
	Service payment.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler instance.
func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

// GetOptionsHandler handles GET /api/payments/options/:applicationID.
func (h *PaymentHandler) GetOptionsHandler(c *gin.Context) {
	userID := c.GetString("userID")
	applicationID := c.Param("applicationID")

	options, err := h.Service.GetOptions(c, userID, applicationID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"options": options})
}

// RecordPaymentHandler handles POST /api/payments.
func (h *PaymentHandler) RecordPaymentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.GetString("userID")

	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.Service.RecordPayment(c, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, payment.ErrExceedsBalance):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to record payment", zap.String("userID", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, p)
}

// ListPaymentsHandler handles GET /api/payments.
func (h *PaymentHandler) ListPaymentsHandler(c *gin.Context) {
	userID := c.GetString("userID")
	payments, err := h.Service.ListForUser(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payments)
}

// ListApplicationPaymentsHandler handles GET /api/payments/application/:applicationID.
func (h *PaymentHandler) ListApplicationPaymentsHandler(c *gin.Context) {
	userID := c.GetString("userID")
	applicationID := c.Param("applicationID")

	payments, err := h.Service.ListForApplication(c, userID, applicationID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payments)
}
