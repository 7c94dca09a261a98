package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hustlepro/internal/models"
	"hustlepro/internal/services"
)

type PaymentHandler struct {
	Service *services.PaymentService
}

type paymentRequest struct {
	ClientID        string               `json:"client_id" binding:"required"`
	InvoiceID       string               `json:"invoice_id"`
	Amount          float64              `json:"amount" binding:"required"`
	Date            time.Time            `json:"date"`
	Method          models.PaymentMethod `json:"method"`
	Status          models.PaymentState  `json:"status"`
	ReferenceNumber string               `json:"reference_number"`
	Notes           string               `json:"notes"`
}

func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: service}
}

// @Summary      Record a payment
// @Description  A completed payment linked to an invoice is applied to that invoice
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Success      201  {object}  models.Payment
// @Failure      400  {object}  map[string]string
// @Router       /payments [post]
func (h *PaymentHandler) Record(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p := &models.Payment{
		UserID:          userID,
		ClientID:        req.ClientID,
		InvoiceID:       req.InvoiceID,
		Amount:          req.Amount,
		Date:            req.Date,
		Method:          req.Method,
		Status:          req.Status,
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
	}
	if err := h.Service.Record(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.Printf("[payment][record] amount=%.2f invoiceID=%q userID=%s", p.Amount, p.InvoiceID, userID)
	c.JSON(http.StatusCreated, p)
}

// @Summary      Update a payment
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Payment
// @Failure      404  {object}  map[string]string
// @Router       /payments/{id} [put]
func (h *PaymentHandler) Update(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	existing, err := h.Service.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil || existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "payment not found"})
		return
	}
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing.ClientID = req.ClientID
	existing.InvoiceID = req.InvoiceID
	existing.Amount = req.Amount
	if !req.Date.IsZero() {
		existing.Date = req.Date
	}
	existing.Method = req.Method
	existing.Status = req.Status
	existing.ReferenceNumber = req.ReferenceNumber
	existing.Notes = req.Notes

	if err := h.Service.Update(c.Request.Context(), existing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, existing)
}

// @Summary      Get a payment
// @Tags         Payments
// @Produce      json
// @Success      200  {object}  models.Payment
// @Failure      404  {object}  map[string]string
// @Router       /payments/{id} [get]
func (h *PaymentHandler) GetByID(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	p, err := h.Service.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil || p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "payment not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      List payments
// @Tags         Payments
// @Produce      json
// @Success      200  {array}  models.Payment
// @Router       /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	payments, err := h.Service.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payments)
}

// @Summary      Delete a payment
// @Tags         Payments
// @Success      204
// @Router       /payments/{id} [delete]
func (h *PaymentHandler) Delete(c *gin.Context) {
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
