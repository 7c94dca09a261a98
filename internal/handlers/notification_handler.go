package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hustlepro/internal/services"
)

type NotificationHandler struct {
	Service *services.NotificationService
	Reports *services.ReportService
}

func NewNotificationHandler(service *services.NotificationService, reports *services.ReportService) *NotificationHandler {
	return &NotificationHandler{Service: service, Reports: reports}
}

// @Summary      List the latest feed entries
// @Tags         Notifications
// @Produce      json
// @Success      200  {array}  models.Notification
// @Router       /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	items, err := h.Service.ListLatest(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary      Mark a feed entry as read
// @Tags         Notifications
// @Success      204
// @Router       /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	if err := h.Service.MarkRead(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Clear the feed
// @Tags         Notifications
// @Success      204
// @Router       /notifications [delete]
func (h *NotificationHandler) Clear(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	if err := h.Service.Clear(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Derived dashboard banners
// @Description  Recomputed from the current collections on every call; never persisted
// @Tags         Notifications
// @Produce      json
// @Success      200  {array}  models.Advisory
// @Router       /notifications/advisories [get]
func (h *NotificationHandler) Advisories(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	advisories, err := h.Reports.Advisories(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, advisories)
}
