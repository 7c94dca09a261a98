package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hustlepro/internal/models"
)

func TestFormatInvoiceNumber(t *testing.T) {
	require.Equal(t, "INV-2026-0001", formatInvoiceNumber(2026, 1))
	require.Equal(t, "INV-2026-0042", formatInvoiceNumber(2026, 42))
	require.Equal(t, "INV-2027-12345", formatInvoiceNumber(2027, 12345))
}

func TestComputeTotalsAppliesDefaultTaxRate(t *testing.T) {
	svc := &InvoiceService{}
	inv := &models.Invoice{
		Items: []models.InvoiceItem{
			{Description: "design", Amount: 600},
			{Description: "development", Amount: 400},
		},
	}
	svc.computeTotals(inv)

	require.InDelta(t, 1000, inv.Subtotal, 1e-9)
	require.InDelta(t, models.DefaultTaxRate, inv.TaxRate, 1e-9)
	require.InDelta(t, 180, inv.TaxAmount, 1e-9)
	require.InDelta(t, 1180, inv.Total, 1e-9)
}

func TestComputeTotalsKeepsExplicitTaxRate(t *testing.T) {
	svc := &InvoiceService{}
	inv := &models.Invoice{
		TaxRate: 0.05,
		Items:   []models.InvoiceItem{{Description: "consulting", Amount: 2000}},
	}
	svc.computeTotals(inv)

	require.InDelta(t, 100, inv.TaxAmount, 1e-9)
	require.InDelta(t, 2100, inv.Total, 1e-9)
}
