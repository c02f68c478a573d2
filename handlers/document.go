package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"carewell/models"
	"carewell/services/document"

	"github.com/gin-gonic/gin"
)

// DocumentHandler exposes document upload and management endpoints.
type DocumentHandler struct {
	Service document.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler instance.
func NewDocumentHandler(svc document.DocumentService) *DocumentHandler {
	return &DocumentHandler{Service: svc}
}

// UploadDocumentHandler handles POST /api/documents/upload/:type. The file is
// staged to a temp path and uploaded to storage, then attached to the draft.
func (h *DocumentHandler) UploadDocumentHandler(c *gin.Context) {
	userID := c.GetString("userID")
	docType := models.DocumentType(c.Param("type"))
	if !models.ValidDocumentType(docType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid document type"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempDir := os.TempDir()
	tempFilePath := filepath.Join(tempDir, fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	app, err := h.Service.Attach(c, userID, docType, tempFilePath, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload document", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app)
}

// AttachProfileDocumentHandler handles POST /api/documents/from-profile.
func (h *DocumentHandler) AttachProfileDocumentHandler(c *gin.Context) {
	userID := c.GetString("userID")
	var req struct {
		ProfileDocumentID string `json:"profileDocumentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.Service.AttachFromProfile(c, userID, req.ProfileDocumentID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app)
}

// RemoveDocumentHandler handles DELETE /api/documents/id/:id.
func (h *DocumentHandler) RemoveDocumentHandler(c *gin.Context) {
	userID := c.GetString("userID")
	documentID := c.Param("id")

	app, err := h.Service.Remove(c, userID, documentID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app)
}

// GetDownloadURLHandler handles GET /api/documents/id/:id/url.
func (h *DocumentHandler) GetDownloadURLHandler(c *gin.Context) {
	userID := c.GetString("userID")
	documentID := c.Param("id")

	url, err := h.Service.DownloadURL(c, userID, documentID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadURL": url})
}

// UploadProfileDocumentHandler handles POST /api/users/me/documents/upload/:type.
// The document lands on the profile so later applications can reuse it.
func (h *DocumentHandler) UploadProfileDocumentHandler(c *gin.Context) {
	userID := c.GetString("userID")
	docType := models.DocumentType(c.Param("type"))
	if !models.ValidDocumentType(docType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid document type"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempDir := os.TempDir()
	tempFilePath := filepath.Join(tempDir, fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	usr, err := h.Service.AddProfileDocument(c, userID, docType, tempFilePath, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload document", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// RemoveProfileDocumentHandler handles DELETE /api/users/me/documents/id/:id.
func (h *DocumentHandler) RemoveProfileDocumentHandler(c *gin.Context) {
	userID := c.GetString("userID")
	documentID := c.Param("id")

	usr, err := h.Service.RemoveProfileDocument(c, userID, documentID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}
