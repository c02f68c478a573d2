package handlers

import (
	"errors"
	"net/http"

	applicationRepo "carewell/database/repository/application"
	"carewell/models"
	"carewell/services/application"
	"carewell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ApplicationHandler exposes the wizard endpoints.
type ApplicationHandler struct {
	Service application.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler instance.
func NewApplicationHandler(svc application.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Service: svc}
}

// ResumeHandler handles GET /api/application/resume. It returns the draft the
// user should continue from, including required document types for the client.
func (h *ApplicationHandler) ResumeHandler(c *gin.Context) {
	userID := c.GetString("userID")
	app, err := h.Service.Resume(c, userID)
	if err != nil {
		utils.GetLogger().Error("Failed to resume draft", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"application":       app,
		"requiredDocuments": application.RequiredDocumentTypes(),
	})
}

// AutosaveHandler handles PUT /api/application/draft. Every field edit sends
// the full draft; saving is never blocked on validation.
func (h *ApplicationHandler) AutosaveHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var update models.ApplicationDraftUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.Service.Autosave(c, userID, update)
	if err != nil {
		var conflict *applicationRepo.VersionConflictError
		if errors.As(err, &conflict) {
			c.JSON(http.StatusConflict, gin.H{
				"error":         "draft was changed elsewhere",
				"storedVersion": conflict.Stored,
			})
			return
		}
		utils.GetLogger().Error("Autosave failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app)
}

// AdvanceHandler handles POST /api/application/advance.
func (h *ApplicationHandler) AdvanceHandler(c *gin.Context) {
	userID := c.GetString("userID")
	app, err := h.Service.Advance(c, userID)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// RetreatHandler handles POST /api/application/retreat.
func (h *ApplicationHandler) RetreatHandler(c *gin.Context) {
	userID := c.GetString("userID")
	app, err := h.Service.Retreat(c, userID)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// SubmitHandler handles POST /api/application/submit.
func (h *ApplicationHandler) SubmitHandler(c *gin.Context) {
	userID := c.GetString("userID")
	app, err := h.Service.Submit(c, userID)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// ListHandler handles GET /api/application.
func (h *ApplicationHandler) ListHandler(c *gin.Context) {
	userID := c.GetString("userID")
	apps, err := h.Service.ListForUser(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, apps)
}

// respondWizardError maps wizard errors to HTTP statuses: gate failures and
// bad transitions are client errors, everything else is a 500.
func respondWizardError(c *gin.Context, err error) {
	var stepErr *application.StepValidationError
	switch {
	case errors.As(err, &stepErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":            stepErr.Error(),
			"step":             stepErr.Step,
			"missingFields":    stepErr.MissingFields,
			"missingDocuments": stepErr.MissingDocuments,
		})
	case errors.Is(err, application.ErrNoDraft):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, application.ErrNotAtReviewStep), errors.Is(err, application.ErrAlreadySubmitted):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("Wizard operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
