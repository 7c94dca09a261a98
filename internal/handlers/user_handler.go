package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hustlepro/internal/services"
)

type UserHandler struct {
	Service services.UserService
}

func NewUserHandler(service services.UserService) *UserHandler {
	return &UserHandler{Service: service}
}

type updateProfileRequest struct {
	Name         string `json:"name" binding:"required"`
	BusinessName string `json:"business_name"`
	UPIID        string `json:"upi_id"`
	Phone        string `json:"phone"`
}

// @Summary      Get own profile
// @Tags         Profile
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  map[string]string
// @Router       /profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	user, err := h.Service.GetByID(c.Request.Context(), userID)
	if err != nil || user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary      Update own profile
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      400  {object}  map[string]string
// @Router       /profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.Service.GetByID(c.Request.Context(), userID)
	if err != nil || user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	user.Name = req.Name
	user.BusinessName = req.BusinessName
	user.UPIID = req.UPIID
	user.Phone = req.Phone

	if err := h.Service.UpdateProfile(c.Request.Context(), user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}
