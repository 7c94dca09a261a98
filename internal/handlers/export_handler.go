package handlers

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hustlepro/internal/services"
)

type ExportHandler struct {
	Service *services.ExportService
}

func NewExportHandler(service *services.ExportService) *ExportHandler {
	return &ExportHandler{Service: service}
}

// @Summary      Download a CSV export
// @Tags         Exports
// @Produce      text/csv
// @Param        type   path   string  true   "invoices|payments|clients|tasks|revenue|task-status|invoice-aging|client-summary"
// @Param        range  query  string  false  "current-month|all (default all)"
// @Success      200  {file}  binary
// @Failure      400  {object}  map[string]string
// @Router       /exports/{type}/csv [get]
func (h *ExportHandler) DownloadCSV(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	exportType := c.Param("type")
	if !services.IsValidExportType(exportType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown export type"})
		return
	}
	dateRange := c.DefaultQuery("range", "all")

	var buf bytes.Buffer
	if err := h.Service.WriteCSV(c.Request.Context(), &buf, userID, exportType, dateRange); err != nil {
		log.Printf("[export][csv] failed type=%s range=%s: err=%v", exportType, dateRange, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	filename := services.ExportFileName(exportType, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
