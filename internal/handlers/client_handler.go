package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hustlepro/internal/models"
	"hustlepro/internal/services"
)

type ClientHandler struct {
	Service *services.ClientService
}

type clientRequest struct {
	Name    string              `json:"name" binding:"required"`
	Email   string              `json:"email" binding:"required"`
	Phone   string              `json:"phone"`
	Address string              `json:"address"`
	Company string              `json:"company"`
	Status  models.ClientStatus `json:"status"`
	LogoURL string              `json:"logo_url"`
}

func NewClientHandler(service *services.ClientService) *ClientHandler {
	return &ClientHandler{Service: service}
}

// @Summary      Create a client
// @Tags         Clients
// @Accept       json
// @Produce      json
// @Success      201  {object}  models.Client
// @Failure      400  {object}  map[string]string
// @Router       /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	client := &models.Client{
		UserID:  userID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Company: req.Company,
		Status:  req.Status,
		LogoURL: req.LogoURL,
	}
	if err := h.Service.Create(c.Request.Context(), client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, client)
}

// @Summary      Update a client
// @Tags         Clients
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Client
// @Failure      404  {object}  map[string]string
// @Router       /clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	existing, err := h.Service.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil || existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing.Name = req.Name
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Address = req.Address
	existing.Company = req.Company
	existing.LogoURL = req.LogoURL
	if req.Status != "" {
		existing.Status = req.Status
	}

	if err := h.Service.Update(c.Request.Context(), existing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, existing)
}

// @Summary      Get a client with its documents
// @Tags         Clients
// @Produce      json
// @Success      200  {object}  models.Client
// @Failure      404  {object}  map[string]string
// @Router       /clients/{id} [get]
func (h *ClientHandler) GetByID(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	client, err := h.Service.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil || client == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// @Summary      List clients
// @Tags         Clients
// @Produce      json
// @Success      200  {array}  models.Client
// @Router       /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	clients, err := h.Service.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, clients)
}

// @Summary      Delete a client
// @Tags         Clients
// @Success      204
// @Router       /clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
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
