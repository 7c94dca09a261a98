package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hustlepro/internal/models"
	"hustlepro/internal/services"
)

type TaskHandler struct {
	Service *services.TaskService
}

type taskRequest struct {
	ClientID    string              `json:"client_id" binding:"required"`
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Deadline    time.Time           `json:"deadline" binding:"required"`
	Price       float64             `json:"price"`
	Priority    models.TaskPriority `json:"priority"`
	Status      models.TaskStatus   `json:"status"`
}

func NewTaskHandler(service *services.TaskService) *TaskHandler {
	return &TaskHandler{Service: service}
}

// @Summary      Create a task
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Success      201  {object}  models.Task
// @Failure      400  {object}  map[string]string
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	task := &models.Task{
		UserID:      userID,
		ClientID:    req.ClientID,
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		Price:       req.Price,
		Priority:    req.Priority,
		Status:      req.Status,
	}
	if err := h.Service.Create(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, task)
}

// @Summary      Update a task
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Task
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	existing, err := h.Service.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil || existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing.ClientID = req.ClientID
	existing.Title = req.Title
	existing.Description = req.Description
	existing.Deadline = req.Deadline
	existing.Price = req.Price
	existing.Priority = req.Priority
	existing.Status = req.Status

	if err := h.Service.Update(c.Request.Context(), existing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, existing)
}

// @Summary      Get a task with its documents
// @Tags         Tasks
// @Produce      json
// @Success      200  {object}  models.Task
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	task, err := h.Service.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil || task == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// @Summary      List tasks
// @Tags         Tasks
// @Produce      json
// @Success      200  {array}  models.Task
// @Router       /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	tasks, err := h.Service.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// @Summary      Delete a task
// @Tags         Tasks
// @Success      204
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
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
