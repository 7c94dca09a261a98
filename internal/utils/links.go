package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// escape is QueryEscape with %20 for spaces, the form UPI apps and
// mail clients expect inside deep links.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// BuildUPILink builds a upi://pay deep link. Parameter order is fixed:
// scanner apps are picky about it.
func BuildUPILink(vpa, payeeName string, amount float64, invoiceNumber string) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%.2f&cu=INR&tn=%s",
		escape(vpa),
		escape(payeeName),
		amount,
		escape("Payment for Invoice "+invoiceNumber),
	)
}

// BuildWhatsAppLink returns a wa.me link with the message prefilled.
// Only digits survive in the phone part.
func BuildWhatsAppLink(phone, message string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits.String(), escape(message))
}

// BuildMailtoLink returns a mailto link with subject and body prefilled.
func BuildMailtoLink(email, subject, body string) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", email, escape(subject), escape(body))
}
