package handlers

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hustlepro/internal/analytics"
	"hustlepro/internal/pdf"
	"hustlepro/internal/services"
)

type ReportsHandler struct {
	Service *services.ReportService
	PDF     pdf.Generator
}

func NewReportsHandler(service *services.ReportService, generator pdf.Generator) *ReportsHandler {
	return &ReportsHandler{Service: service, PDF: generator}
}

// @Summary      Analytics summary
// @Description  All dashboard metrics for the selected date range
// @Tags         Reports
// @Produce      json
// @Param        range  query  string  false  "weekly|monthly|quarterly|yearly|all (default monthly)"
// @Success      200  {object}  analytics.Summary
// @Router       /reports/summary [get]
func (h *ReportsHandler) Summary(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	r := analytics.ParseRange(c.Query("range"))
	summary, err := h.Service.Summary(c.Request.Context(), userID, r)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary      Monthly earnings series
// @Tags         Reports
// @Produce      json
// @Param        months  query  int  false  "number of trailing months (default 6)"
// @Success      200  {array}  analytics.MonthEarnings
// @Router       /reports/monthly-earnings [get]
func (h *ReportsHandler) MonthlyEarnings(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	months, _ := strconv.Atoi(c.DefaultQuery("months", "6"))
	if months < 1 {
		months = 6
	}
	series, err := h.Service.MonthlyEarnings(c.Request.Context(), userID, months)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, series)
}

// @Summary      Revenue report
// @Tags         Reports
// @Produce      json
// @Success      200  {array}  analytics.RevenueReportRow
// @Router       /reports/revenue [get]
func (h *ReportsHandler) Revenue(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	rows, err := h.Service.Revenue(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary      Task status report
// @Tags         Reports
// @Produce      json
// @Success      200  {array}  analytics.TaskStatusRow
// @Router       /reports/task-status [get]
func (h *ReportsHandler) TaskStatus(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	rows, err := h.Service.TaskStatus(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary      Invoice aging report
// @Tags         Reports
// @Produce      json
// @Success      200  {array}  analytics.InvoiceAgingRow
// @Router       /reports/invoice-aging [get]
func (h *ReportsHandler) InvoiceAging(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	rows, err := h.Service.InvoiceAging(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary      Client summary report
// @Tags         Reports
// @Produce      json
// @Success      200  {array}  analytics.ClientSummaryRow
// @Router       /reports/client-summary [get]
func (h *ReportsHandler) ClientSummary(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	rows, err := h.Service.ClientSummary(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary      Download a report as PDF
// @Tags         Reports
// @Produce      application/pdf
// @Param        type  path  string  true  "revenue|task-status|invoice-aging|client-summary"
// @Success      200  {file}  binary
// @Failure      400  {object}  map[string]string
// @Router       /reports/{type}/pdf [get]
func (h *ReportsHandler) DownloadPDF(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	reportType := c.Param("type")
	now := time.Now()
	data := pdf.ReportData{GeneratedAt: now}

	ctx := c.Request.Context()
	switch reportType {
	case "revenue":
		rows, err := h.Service.Revenue(ctx, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		data.Title = "Revenue Report"
		data.Headers = []string{"Client", "Total Revenue", "Total Invoiced", "Pending Amount", "Collection Rate"}
		for _, r := range rows {
			data.Rows = append(data.Rows, []string{
				r.ClientName,
				fmt.Sprintf("%.2f", r.TotalRevenue),
				fmt.Sprintf("%.2f", r.TotalInvoiced),
				fmt.Sprintf("%.2f", r.PendingAmount),
				fmt.Sprintf("%.1f%%", r.CollectionRate),
			})
		}
	case "task-status":
		rows, err := h.Service.TaskStatus(ctx, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		data.Title = "Task Status Report"
		data.Headers = []string{"Task", "Client", "Status", "Priority", "Deadline", "Price", "Days Overdue"}
		for _, r := range rows {
			data.Rows = append(data.Rows, []string{
				r.TaskTitle,
				r.ClientName,
				string(r.Status),
				string(r.Priority),
				r.Deadline.Format("2006-01-02"),
				fmt.Sprintf("%.2f", r.Price),
				strconv.Itoa(r.DaysOverdue),
			})
		}
	case "invoice-aging":
		rows, err := h.Service.InvoiceAging(ctx, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		data.Title = "Invoice Aging Report"
		data.Headers = []string{"Invoice #", "Client", "Total", "Pending Amount", "Due Date", "Days Overdue", "Aging Category"}
		for _, r := range rows {
			data.Rows = append(data.Rows, []string{
				r.InvoiceNumber,
				r.ClientName,
				fmt.Sprintf("%.2f", r.Total),
				fmt.Sprintf("%.2f", r.PendingAmount),
				r.DueDate.Format("2006-01-02"),
				strconv.Itoa(r.DaysOverdue),
				r.AgingCategory,
			})
		}
	case "client-summary":
		rows, err := h.Service.ClientSummary(ctx, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		data.Title = "Client Summary Report"
		data.Headers = []string{"Client", "Total Tasks", "Completion Rate", "Total Revenue", "Pending Amount", "Avg Payment Delay"}
		for _, r := range rows {
			data.Rows = append(data.Rows, []string{
				r.ClientName,
				strconv.Itoa(r.TotalTasks),
				fmt.Sprintf("%.1f%%", r.CompletionRate),
				fmt.Sprintf("%.2f", r.TotalRevenue),
				fmt.Sprintf("%.2f", r.PendingAmount),
				fmt.Sprintf("%.1f days", r.AvgPaymentDelay),
			})
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown report type"})
		return
	}

	var buf bytes.Buffer
	if err := h.PDF.GenerateReport(&buf, data); err != nil {
		log.Printf("[reports][pdf] generation failed type=%s: err=%v", reportType, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate pdf"})
		return
	}
	filename := fmt.Sprintf("hustlepro-%s-%s.pdf", reportType, now.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
