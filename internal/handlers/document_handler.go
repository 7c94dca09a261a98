package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hustlepro/internal/models"
	"hustlepro/internal/services"
)

type DocumentHandler struct {
	Service *services.DocumentService
}

type createDocumentRequest struct {
	OwnerType  models.DocumentOwner `json:"owner_type" binding:"required"`
	OwnerID    string               `json:"owner_id" binding:"required"`
	Title      string               `json:"title" binding:"required"`
	Type       models.DocumentType  `json:"type" binding:"required"`
	Content    string               `json:"content"`
	IsImported bool                 `json:"is_imported"`
	FileName   string               `json:"file_name"`
	FileType   string               `json:"file_type"`
	FileSize   int64                `json:"file_size"`
}

type updateDocumentRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

func NewDocumentHandler(service *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{Service: service}
}

// @Summary      Create a document on a client or task
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Success      201  {object}  models.Document
// @Failure      400  {object}  map[string]string
// @Router       /documents [post]
func (h *DocumentHandler) Create(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req createDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc := &models.Document{
		UserID:     userID,
		OwnerType:  req.OwnerType,
		OwnerID:    req.OwnerID,
		Title:      req.Title,
		Type:       req.Type,
		Content:    req.Content,
		IsImported: req.IsImported,
		FileName:   req.FileName,
		FileType:   req.FileType,
		FileSize:   req.FileSize,
	}
	if err := h.Service.Create(c.Request.Context(), doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// @Summary      Update a document's title and content
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Document
// @Failure      404  {object}  map[string]string
// @Router       /documents/{id} [put]
func (h *DocumentHandler) Update(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	existing, err := h.Service.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil || existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}
	var req updateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing.Title = req.Title
	existing.Content = req.Content

	if err := h.Service.Update(c.Request.Context(), existing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, existing)
}

// @Summary      Get a document
// @Tags         Documents
// @Produce      json
// @Success      200  {object}  models.Document
// @Failure      404  {object}  map[string]string
// @Router       /documents/{id} [get]
func (h *DocumentHandler) GetByID(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	doc, err := h.Service.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil || doc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// @Summary      List documents for an owner
// @Tags         Documents
// @Produce      json
// @Param        owner_type  query  string  true  "client or task"
// @Param        owner_id    query  string  true  "owner id"
// @Success      200  {array}  models.Document
// @Router       /documents [get]
func (h *DocumentHandler) ListByOwner(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	owner := models.DocumentOwner(c.Query("owner_type"))
	ownerID := c.Query("owner_id")
	docs, err := h.Service.ListByOwner(c.Request.Context(), userID, owner, ownerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, docs)
}

// @Summary      Delete a document
// @Tags         Documents
// @Success      204
// @Router       /documents/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	if err := h.Service.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
