package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildUPILink(t *testing.T) {
	link := BuildUPILink("freelancer@upi", "HustlePro", 1180, "INV-2026-0003")
	require.Equal(t,
		"upi://pay?pa=freelancer%40upi&pn=HustlePro&am=1180.00&cu=INR&tn=Payment%20for%20Invoice%20INV-2026-0003",
		link)
}

func TestBuildWhatsAppLinkStripsNonDigits(t *testing.T) {
	link := BuildWhatsAppLink("+91 98765-43210", "Hi there")
	require.Equal(t, "https://wa.me/919876543210?text=Hi%20there", link)
}

func TestBuildMailtoLink(t *testing.T) {
	link := BuildMailtoLink("client@example.com", "Invoice INV-2026-0001", "Please find attached")
	require.Equal(t,
		"mailto:client@example.com?subject=Invoice%20INV-2026-0001&body=Please%20find%20attached",
		link)
}

func TestNewRefreshTokenLength(t *testing.T) {
	tok, err := NewRefreshToken(32)
	require.NoError(t, err)
	require.Len(t, tok, 64)

	tok2, err := NewRefreshToken(0)
	require.NoError(t, err)
	require.Len(t, tok2, 64)
	require.NotEqual(t, tok, tok2)
}
