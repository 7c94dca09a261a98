package handlers

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hustlepro/internal/models"
	"hustlepro/internal/pdf"
	"hustlepro/internal/services"
)

type InvoiceHandler struct {
	Service   *services.InvoiceService
	Reminders *services.ReminderService
	Users     services.UserService
	PDF       pdf.Generator
}

type invoiceRequest struct {
	ClientID string               `json:"client_id" binding:"required"`
	DueDate  time.Time            `json:"due_date" binding:"required"`
	Status   models.InvoiceStatus `json:"status"`
	Items    []models.InvoiceItem `json:"items" binding:"required"`
	TaxRate  float64              `json:"tax_rate"`
	Notes    string               `json:"notes"`
}

func NewInvoiceHandler(service *services.InvoiceService, reminders *services.ReminderService,
	users services.UserService, generator pdf.Generator) *InvoiceHandler {
	return &InvoiceHandler{Service: service, Reminders: reminders, Users: users, PDF: generator}
}

// @Summary      Create an invoice
// @Description  Computes totals, assigns the next invoice number, and builds a UPI payment link
// @Tags         Invoices
// @Accept       json
// @Produce      json
// @Success      201  {object}  models.Invoice
// @Failure      400  {object}  map[string]string
// @Router       /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req invoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	inv := &models.Invoice{
		UserID:   userID,
		ClientID: req.ClientID,
		DueDate:  req.DueDate,
		Status:   req.Status,
		Items:    req.Items,
		TaxRate:  req.TaxRate,
		Notes:    req.Notes,
	}
	if err := h.Service.Create(c.Request.Context(), inv); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.Printf("[invoice][create] created number=%s total=%.2f userID=%s", inv.InvoiceNumber, inv.Total, userID)
	c.JSON(http.StatusCreated, inv)
}

// @Summary      Update an invoice
// @Tags         Invoices
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Invoice
// @Failure      404  {object}  map[string]string
// @Router       /invoices/{id} [put]
func (h *InvoiceHandler) Update(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	existing, err := h.Service.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil || existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}
	var req invoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing.ClientID = req.ClientID
	existing.DueDate = req.DueDate
	if req.Status != "" {
		existing.Status = req.Status
	}
	existing.Items = req.Items
	existing.TaxRate = req.TaxRate
	existing.Notes = req.Notes

	if err := h.Service.Update(c.Request.Context(), existing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, existing)
}

// @Summary      Get an invoice
// @Tags         Invoices
// @Produce      json
// @Success      200  {object}  models.Invoice
// @Failure      404  {object}  map[string]string
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	inv, err := h.Service.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil || inv == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}
	c.JSON(http.StatusOK, inv)
}

// @Summary      List invoices
// @Tags         Invoices
// @Produce      json
// @Success      200  {array}  models.Invoice
// @Router       /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	invoices, err := h.Service.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// @Summary      Delete an invoice
// @Tags         Invoices
// @Success      204
// @Router       /invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
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

// @Summary      Mark an invoice as sent
// @Tags         Invoices
// @Produce      json
// @Success      200  {object}  models.Invoice
// @Failure      400  {object}  map[string]string
// @Router       /invoices/{id}/send [post]
func (h *InvoiceHandler) MarkSent(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	inv, err := h.Service.MarkSent(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inv)
}

// @Summary      Generate the UPI payment link
// @Tags         Invoices
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /invoices/{id}/payment-link [post]
func (h *InvoiceHandler) GeneratePaymentLink(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	link, err := h.Service.GeneratePaymentLink(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment_link": link})
}

type reminderRequest struct {
	Method string `json:"method" binding:"required"`
}

// @Summary      Send a payment reminder
// @Description  Delivers over email or returns a prefilled deep link for whatsapp
// @Tags         Invoices
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /invoices/{id}/reminder [post]
func (h *InvoiceHandler) SendReminder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req reminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	link, err := h.Reminders.Send(c.Request.Context(), userID, c.Param("id"), req.Method)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.Printf("[invoice][reminder] sent via=%s invoiceID=%s userID=%s", req.Method, c.Param("id"), userID)
	c.JSON(http.StatusOK, gin.H{"message": "Reminder sent", "link": link})
}

// @Summary      Download the invoice as PDF
// @Tags         Invoices
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      404  {object}  map[string]string
// @Router       /invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	inv, err := h.Service.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil || inv == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}
	client, err := h.Service.Clients.GetByID(c.Request.Context(), userID, inv.ClientID)
	if err != nil || client == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}
	businessName := "HustlePro"
	upiID := ""
	if user, err := h.Users.GetByID(c.Request.Context(), userID); err == nil && user != nil {
		if user.BusinessName != "" {
			businessName = user.BusinessName
		}
		upiID = user.UPIID
	}

	var buf bytes.Buffer
	err = h.PDF.GenerateInvoice(&buf, pdf.InvoiceData{
		Invoice:      inv,
		Client:       client,
		BusinessName: businessName,
		UPIID:        upiID,
		GeneratedAt:  time.Now(),
	})
	if err != nil {
		log.Printf("[invoice][pdf] generation failed for invoiceID=%s: err=%v", inv.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate pdf"})
		return
	}
	filename := fmt.Sprintf("%s.pdf", inv.InvoiceNumber)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
