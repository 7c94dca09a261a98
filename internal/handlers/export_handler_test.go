package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"hustlepro/internal/analytics"
	"hustlepro/internal/models"
	"hustlepro/internal/services"
)

type fixedCollections struct {
	c analytics.Collections
}

func (f fixedCollections) Collections(ctx context.Context, userID string) (analytics.Collections, error) {
	return f.c, nil
}

func newExportRouter(c analytics.Collections) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewExportHandler(services.NewExportService(fixedCollections{c: c}))
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", "user1") })
	r.GET("/exports/:type/csv", h.DownloadCSV)
	return r
}

func TestDownloadCSVClients(t *testing.T) {
	r := newExportRouter(analytics.Collections{
		Clients: []models.Client{
			{ID: "c1", Name: "Acme Studio", Email: "acme@example.com", Phone: "9876543210", Address: "12 Main Rd"},
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/exports/clients/csv", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	require.Contains(t, w.Header().Get("Content-Disposition"), "attachment; filename=")
	require.Contains(t, w.Header().Get("Content-Disposition"), "hustlepro-clients-")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "Name,Email,Phone,Address", strings.TrimSpace(lines[0]))
	require.Contains(t, lines[1], "Acme Studio")
}

func TestDownloadCSVUnknownType(t *testing.T) {
	r := newExportRouter(analytics.Collections{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/exports/ledger/csv", nil))

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "unknown export type")
}
